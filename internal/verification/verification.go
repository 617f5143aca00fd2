// Package verification answers "should I rent to or from this person?".
// It resolves an identifier to a landlord or tenant, gathers the party's
// rental histories and ratings, runs the scoring rules, persists the
// resulting assessment, and returns a report.
package verification

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JaimeStill/attest/pkg/formatting"
)

// LandlordRequest asks for a landlord verification. Include flags default to true.
type LandlordRequest struct {
	Identifier        string `json:"identifier"`
	IdentifierType    string `json:"identifier_type"`
	IncludeProperties *bool  `json:"include_properties"`
	IncludeRatings    *bool  `json:"include_ratings"`
}

// TenantRequest asks for a tenant verification. Include flags default to true.
type TenantRequest struct {
	Identifier           string `json:"identifier"`
	IdentifierType       string `json:"identifier_type"`
	IncludeRentalHistory *bool  `json:"include_rental_history"`
	IncludeRatings       *bool  `json:"include_ratings"`
}

// LandlordResponse is the landlord verification report. Score fields are
// only populated when the landlord exists.
type LandlordResponse struct {
	ID                  *uuid.UUID       `json:"id,omitempty"`
	Name                string           `json:"name,omitempty"`
	IDNumber            string           `json:"id_number,omitempty"`
	Phone               string           `json:"phone,omitempty"`
	Address             string           `json:"address,omitempty"`
	Exists              bool             `json:"exists"`
	VerificationStatus  string           `json:"verification_status"`
	AverageRating       *float64         `json:"average_rating,omitempty"`
	TrustScore          *int             `json:"trust_score,omitempty"`
	Classification      string           `json:"classification,omitempty"`
	ResponsivenessScore *int             `json:"responsiveness_score,omitempty"`
	FairnessScore       *int             `json:"fairness_score,omitempty"`
	DepositReturnRate   *float64         `json:"deposit_return_rate,omitempty"`
	BehavioralSummary   string           `json:"behavioral_summary,omitempty"`
	RedFlags            []string         `json:"red_flags"`
	ManagedProperties   []string         `json:"managed_properties,omitempty"`
	Properties          []Property       `json:"properties,omitempty"`
	Ratings             []LandlordRating `json:"ratings,omitempty"`
	Message             string           `json:"message"`
}

// Property aggregates the records of one managed property. History-derived
// fields are nil when no history mentions the property.
type Property struct {
	PropertyAddress string           `json:"property_address"`
	ManagedSince    *formatting.Date `json:"managed_since"`
	TotalTenants    *int             `json:"total_tenants"`
	TotalDisputes   *int             `json:"total_disputes"`
	TotalEvictions  *int             `json:"total_evictions"`
	AverageRating   *float64         `json:"average_rating"`
	TenantNames     []string         `json:"tenant_names"`
}

// LandlordRating is a tenant's rating of the landlord as shown in a report.
type LandlordRating struct {
	TenantName         string          `json:"tenant_name"`
	RatingValue        float64         `json:"rating_value"`
	Review             string          `json:"review"`
	PropertyAddress    string          `json:"property_address"`
	RatingDate         formatting.Date `json:"rating_date"`
	Responsiveness     *int            `json:"responsiveness"`
	MaintenanceQuality *int            `json:"maintenance_quality"`
	Fairness           *int            `json:"fairness"`
	DepositHandling    *int            `json:"deposit_handling"`
	PrivacyRespect     *int            `json:"privacy_respect"`
	DetectedTraits     []string        `json:"detected_traits"`
}

// TenantResponse is the tenant verification report. Score fields are only
// populated when the tenant exists.
type TenantResponse struct {
	ID                 *uuid.UUID      `json:"id,omitempty"`
	Name               string          `json:"name,omitempty"`
	IDNumber           string          `json:"id_number,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	CurrentAddress     string          `json:"current_address,omitempty"`
	Exists             bool            `json:"exists"`
	VerificationStatus string          `json:"verification_status"`
	AverageRating      *float64        `json:"average_rating,omitempty"`
	TrustScore         *int            `json:"trust_score,omitempty"`
	Classification     string          `json:"classification,omitempty"`
	BehavioralSummary  string          `json:"behavioral_summary,omitempty"`
	RedFlags           []string        `json:"red_flags"`
	RentalHistory      []TenantHistory `json:"rental_history,omitempty"`
	Ratings            []TenantRating  `json:"ratings,omitempty"`
	Message            string          `json:"message"`
}

// TenantHistory is one tenancy as shown in a tenant report.
type TenantHistory struct {
	PropertyAddress    string           `json:"property_address"`
	LeaseStartDate     formatting.Date  `json:"lease_start_date"`
	LeaseEndDate       *formatting.Date `json:"lease_end_date"`
	RentAmount         decimal.Decimal  `json:"rent_amount"`
	OnTimePayments     bool             `json:"on_time_payments"`
	LatePaymentsCount  int              `json:"late_payments_count"`
	PropertyDamage     bool             `json:"property_damage"`
	DamageDescription  string           `json:"damage_description"`
	HadDisputes        bool             `json:"had_disputes"`
	DisputeDescription string           `json:"dispute_description"`
	EvictionFiled      bool             `json:"eviction_filed"`
	EvictionReason     string           `json:"eviction_reason"`
	LandlordName       string           `json:"landlord_name"`
}

// TenantRating is a landlord's rating of the tenant as shown in a report.
type TenantRating struct {
	LandlordName      string          `json:"landlord_name"`
	RatingValue       float64         `json:"rating_value"`
	Review            string          `json:"review"`
	PropertyAddress   string          `json:"property_address"`
	RatingDate        formatting.Date `json:"rating_date"`
	PaymentTimeliness *int            `json:"payment_timeliness"`
	PropertyCare      *int            `json:"property_care"`
	Communication     *int            `json:"communication"`
	RuleAdherence     *int            `json:"rule_adherence"`
	Cleanliness       *int            `json:"cleanliness"`
	DetectedTraits    []string        `json:"detected_traits"`
}

func flag(b *bool) bool {
	return b == nil || *b
}
