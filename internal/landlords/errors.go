package landlords

import (
	"github.com/JaimeStill/attest/pkg/faults"
)

const entity = "landlord"

// Domain errors for landlord operations.
var (
	ErrInvalidID      = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody    = faults.InvalidInput(entity, "", "request body is not valid JSON")
	ErrNoSearchFields = faults.InvalidInput(entity, "", "one of id_number, email, phone, name, or address is required")
)

// MapHTTPStatus maps landlord domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
