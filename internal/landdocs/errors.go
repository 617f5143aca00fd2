package landdocs

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/storage"
)

const entity = "land document"

// Domain errors for land document operations.
var (
	ErrInvalidID    = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidFile  = faults.InvalidInput(entity, "", "a document file is required")
	ErrEmptyFile    = faults.InvalidInput(entity, "", "document file is empty")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps land document errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, storage.ErrNotFound) {
		return storage.MapHTTPStatus(err)
	}
	return faults.MapHTTPStatus(err)
}
