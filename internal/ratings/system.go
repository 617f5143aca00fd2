package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/lexicon"
	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for rating operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Rating], error)

	Find(ctx context.Context, id uuid.UUID) (*Rating, error)
	ByLandlord(ctx context.Context, landlordID uuid.UUID) ([]Rating, error)
	ByTenant(ctx context.Context, tenantID uuid.UUID) ([]Rating, error)
	ByProperty(ctx context.Context, address string) ([]Rating, error)
	ByLandlordAndType(ctx context.Context, landlordID uuid.UUID, t Type) ([]Rating, error)
	ByTenantAndType(ctx context.Context, tenantID uuid.UUID, t Type) ([]Rating, error)

	// Create stores a rating and folds its value into the rated party's
	// aggregate within the same transaction.
	Create(ctx context.Context, cmd CreateCommand) (*Rating, error)

	// Update and Delete recompute the rated party's aggregate from the
	// ratings that remain stored.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AnalyzeSentiment(text string) (lexicon.Analysis, error)
}
