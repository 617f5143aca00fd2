package books

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/pagination"
)

// System defines the public contract for book catalog operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Book], error)

	Find(ctx context.Context, id uuid.UUID) (*Book, error)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)
	Create(ctx context.Context, cmd CreateCommand) (*Book, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
