package rentals

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for rental history operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[History], error)

	Find(ctx context.Context, id uuid.UUID) (*History, error)

	// ByLandlord returns every history recorded against the landlord, oldest lease first.
	ByLandlord(ctx context.Context, landlordID uuid.UUID) ([]History, error)

	// ByTenant returns every history recorded against the tenant, oldest lease first.
	ByTenant(ctx context.Context, tenantID uuid.UUID) ([]History, error)

	Create(ctx context.Context, cmd CreateCommand) (*History, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
