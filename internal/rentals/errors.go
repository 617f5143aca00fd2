package rentals

import "github.com/JaimeStill/attest/pkg/faults"

const entity = "rental history"

// Domain errors for rental history operations.
var (
	ErrInvalidID   = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody = faults.InvalidInput(entity, "", "request body is not valid JSON")
)

// MapHTTPStatus maps rental domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
