package lands

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/pagination"
)

// ResolveCriteria identifies a stand from loosely extracted document fields.
type ResolveCriteria struct {
	StandNumber   string
	OwnerIDNumber string
	OwnerName     string
}

// System defines the public contract for land domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Land], error)

	Find(ctx context.Context, id uuid.UUID) (*Land, error)
	FindByStandNumber(ctx context.Context, stand string) (*Land, error)

	// Resolve returns the first stand matched by stand number, then owner
	// ID number, then owner name substring. Returns nil without error when
	// nothing matches.
	Resolve(ctx context.Context, c ResolveCriteria) (*Land, error)

	Create(ctx context.Context, cmd CreateCommand) (*Land, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Land, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)
	VerifyWithAI(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)
}
