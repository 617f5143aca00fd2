package lands

import "github.com/JaimeStill/attest/pkg/faults"

const entity = "land"

// Domain errors for land operations.
var (
	ErrInvalidID     = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody   = faults.InvalidInput(entity, "", "request body is not valid JSON")
	ErrNoStandNumber = faults.InvalidInput(entity, "", "stand number is required")
)

// MapHTTPStatus maps land domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
