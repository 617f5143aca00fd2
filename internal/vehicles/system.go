package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for vehicle domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Vehicle], error)

	Find(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindByChassis(ctx context.Context, chassis string) (*Vehicle, error)
	FindByRegistration(ctx context.Context, registration string) (*Vehicle, error)
	Stolen(ctx context.Context) ([]Vehicle, error)
	Tampered(ctx context.Context) ([]Vehicle, error)

	Create(ctx context.Context, cmd CreateCommand) (*Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)
	VerifyWithAI(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)

	ReportStolen(ctx context.Context, chassis, details string) (*Vehicle, error)
	ReportTampered(ctx context.Context, chassis, details string) (*Vehicle, error)

	// TransferOwnership records a change of owner and resets the purchase
	// date to today.
	TransferOwnership(ctx context.Context, chassis, ownerName, ownerID string) (*Vehicle, error)
}
