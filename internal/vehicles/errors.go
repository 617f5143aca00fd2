package vehicles

import "github.com/JaimeStill/attest/pkg/faults"

const entity = "vehicle"

// Domain errors for vehicle operations.
var (
	ErrInvalidID       = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody     = faults.InvalidInput(entity, "", "request body is not valid JSON")
	ErrNoIdentifier    = faults.InvalidInput(entity, "", "Either chassis number or registration number must be provided")
	ErrMissingDetails  = faults.InvalidInput(entity, "", "report_details is required")
	ErrMissingNewOwner = faults.InvalidInput(entity, "", "new_owner_name and new_owner_id are required")
)

// MapHTTPStatus maps vehicle domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
