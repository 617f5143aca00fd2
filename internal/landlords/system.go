package landlords

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for landlord domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Landlord], error)

	Find(ctx context.Context, id uuid.UUID) (*Landlord, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]Landlord, error)

	// FindByIdentifier resolves a verification identifier to a landlord.
	// Returns nil without error when nothing matches, the identifier is blank,
	// or the identifier type is not supported.
	FindByIdentifier(ctx context.Context, identifier string, idType party.IdentifierType) (*Landlord, error)

	Create(ctx context.Context, cmd CreateCommand) (*Landlord, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Landlord, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SaveAssessment persists a computed trust assessment onto the landlord.
	SaveAssessment(ctx context.Context, id uuid.UUID, a party.Assessment) (*Landlord, error)
}
