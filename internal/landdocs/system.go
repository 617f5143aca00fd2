package landdocs

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/lands"
	"github.com/JaimeStill/attest/pkg/pagination"
)

// LandResolver finds the registry record a document most likely refers to.
type LandResolver interface {
	Resolve(ctx context.Context, c lands.ResolveCriteria) (*lands.Land, error)
}

// System defines the public contract for land document verification.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)

	// Verify stores the scan, checks its extracted fields against the land
	// registry, and records the outcome.
	Verify(ctx context.Context, cmd VerifyCommand) (*Document, error)

	// Download returns the stored scan. The caller must close the reader.
	Download(ctx context.Context, id uuid.UUID) (*Document, io.ReadCloser, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
