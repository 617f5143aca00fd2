package books

import "github.com/JaimeStill/attest/pkg/faults"

const entity = "book"

// Domain errors for book operations.
var (
	ErrInvalidID   = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody = faults.InvalidInput(entity, "", "request body is not valid JSON")
)

// MapHTTPStatus maps book domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
