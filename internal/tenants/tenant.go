// Package tenants implements the tenant domain.
// Tenants are registered with contact and employment details, looked up by
// verification identifier, and carry the latest computed trust assessment.
package tenants

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is a registered tenant with its rating aggregate and the most recent
// trust assessment.
type Tenant struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	IDNumber           string              `json:"id_number"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	CurrentAddress     string              `json:"current_address"`
	EmploymentStatus   string              `json:"employment_status"`
	Employer           string              `json:"employer"`
	MonthlyIncome      decimal.NullDecimal `json:"monthly_income"`
	VerificationStatus string              `json:"verification_status"`
	AverageRating      float64             `json:"average_rating"`
	TotalRatings       int                 `json:"total_ratings"`
	TrustScore         *int                `json:"trust_score"`
	Classification     *string             `json:"classification"`
	BehavioralSummary  *string             `json:"behavioral_summary"`
	RedFlags           []string            `json:"red_flags"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// CreateCommand carries the data needed to register a tenant.
type CreateCommand struct {
	Name             string              `json:"name" validate:"required"`
	IDNumber         string              `json:"id_number" validate:"required"`
	Email            string              `json:"email" validate:"required,email"`
	Phone            string              `json:"phone" validate:"required,phone"`
	CurrentAddress   string              `json:"current_address"`
	EmploymentStatus string              `json:"employment_status"`
	Employer         string              `json:"employer"`
	MonthlyIncome    decimal.NullDecimal `json:"monthly_income"`
}

// UpdateCommand replaces a tenant's contact and employment details.
type UpdateCommand struct {
	Name             string              `json:"name" validate:"required"`
	Email            string              `json:"email" validate:"required,email"`
	Phone            string              `json:"phone" validate:"required,phone"`
	CurrentAddress   string              `json:"current_address"`
	EmploymentStatus string              `json:"employment_status"`
	Employer         string              `json:"employer"`
	MonthlyIncome    decimal.NullDecimal `json:"monthly_income"`
}

// SearchCriteria selects tenants by a single field, taking the first non-empty
// field in the order IDNumber, Email, Phone, Name, Address.
type SearchCriteria struct {
	IDNumber string
	Email    string
	Phone    string
	Name     string
	Address  string
}
