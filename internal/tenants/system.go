package tenants

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for tenant domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Tenant], error)

	Find(ctx context.Context, id uuid.UUID) (*Tenant, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]Tenant, error)

	// FindByIdentifier resolves a verification identifier to a tenant.
	// PROPERTY_ADDRESS is not a tenant attribute and never matches.
	FindByIdentifier(ctx context.Context, identifier string, idType party.IdentifierType) (*Tenant, error)

	Create(ctx context.Context, cmd CreateCommand) (*Tenant, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error

	SaveAssessment(ctx context.Context, id uuid.UUID, a party.Assessment) (*Tenant, error)
}
