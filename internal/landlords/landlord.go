// Package landlords implements the landlord domain.
// It covers registration and search, lookup by verification identifier, and
// persistence of the trust assessment computed during verification.
package landlords

import (
	"time"

	"github.com/google/uuid"
)

// Landlord is a registered landlord with its rating aggregate and the most
// recent trust assessment. Assessment fields stay nil until a verification runs.
type Landlord struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	IDNumber            string    `json:"id_number"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address"`
	VerificationStatus  string    `json:"verification_status"`
	AverageRating       float64   `json:"average_rating"`
	TotalRatings        int       `json:"total_ratings"`
	TrustScore          *int      `json:"trust_score"`
	Classification      *string   `json:"classification"`
	ResponsivenessScore *int      `json:"responsiveness_score"`
	FairnessScore       *int      `json:"fairness_score"`
	DepositReturnRate   *float64  `json:"deposit_return_rate"`
	BehavioralSummary   *string   `json:"behavioral_summary"`
	RedFlags            []string  `json:"red_flags"`
	ManagedProperties   []string  `json:"managed_properties"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register a landlord.
type CreateCommand struct {
	Name              string   `json:"name" validate:"required"`
	IDNumber          string   `json:"id_number" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,phone"`
	Address           string   `json:"address"`
	ManagedProperties []string `json:"managed_properties"`
}

// UpdateCommand replaces a landlord's contact details.
// ManagedProperties is only replaced when non-empty.
type UpdateCommand struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,phone"`
	Address           string   `json:"address"`
	ManagedProperties []string `json:"managed_properties"`
}

// SearchCriteria selects landlords by a single field. The first non-empty
// field in the order IDNumber, Email, Phone, Name, Address is used.
// IDNumber, Email, and Phone match exactly; Name and Address match substrings.
type SearchCriteria struct {
	IDNumber string
	Email    string
	Phone    string
	Name     string
	Address  string
}
