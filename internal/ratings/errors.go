package ratings

import "github.com/JaimeStill/attest/pkg/faults"

const entity = "rating"

// Domain errors for rating operations.
var (
	ErrInvalidID      = faults.InvalidInput(entity, "", "id must be a valid UUID")
	ErrInvalidBody    = faults.InvalidInput(entity, "", "request body is not valid JSON")
	ErrInvalidType    = faults.InvalidInput(entity, "", "rating_type must be LANDLORD_TO_TENANT or TENANT_TO_LANDLORD")
	ErrEmptyText      = faults.InvalidInput(entity, "", "text is required for sentiment analysis")
	ErrMissingAddress = faults.InvalidInput(entity, "", "address query parameter is required")
)

// MapHTTPStatus maps rating domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return faults.MapHTTPStatus(err)
}
