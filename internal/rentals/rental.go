// Package rentals records tenancies between a tenant and a landlord.
// A rental history is immutable once created; it feeds the trust score,
// classification, and red-flag rules for both parties.
package rentals

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JaimeStill/attest/pkg/formatting"
)

// History is a single tenancy record.
type History struct {
	ID                           uuid.UUID           `json:"id"`
	TenantID                     uuid.UUID           `json:"tenant_id"`
	TenantName                   string              `json:"tenant_name"`
	LandlordID                   uuid.UUID           `json:"landlord_id"`
	LandlordName                 string              `json:"landlord_name"`
	PropertyAddress              string              `json:"property_address"`
	LeaseStartDate               formatting.Date     `json:"lease_start_date"`
	LeaseEndDate                 *formatting.Date    `json:"lease_end_date"`
	RentAmount                   decimal.Decimal     `json:"rent_amount"`
	DepositAmount                decimal.NullDecimal `json:"deposit_amount"`
	SecurityDepositReturned      bool                `json:"security_deposit_returned"`
	DepositDeductionReason       string              `json:"deposit_deduction_reason"`
	OnTimePayments               bool                `json:"on_time_payments"`
	LatePaymentsCount            int                 `json:"late_payments_count"`
	PropertyDamage               bool                `json:"property_damage"`
	DamageDescription            string              `json:"damage_description"`
	HadDisputes                  bool                `json:"had_disputes"`
	DisputeDescription           string              `json:"dispute_description"`
	EvictionFiled                bool                `json:"eviction_filed"`
	EvictionReason               string              `json:"eviction_reason"`
	LandlordResponsivenessRating *int                `json:"landlord_responsiveness_rating"`
	LandlordFairnessRating       *int                `json:"landlord_fairness_rating"`
	TenantCleanlinessRating      *int                `json:"tenant_cleanliness_rating"`
	TenantCooperationRating      *int                `json:"tenant_cooperation_rating"`
	CreatedAt                    time.Time           `json:"created_at"`
	UpdatedAt                    time.Time           `json:"updated_at"`
}

// CreateCommand carries the data needed to record a tenancy.
type CreateCommand struct {
	TenantID                     uuid.UUID           `json:"tenant_id" validate:"required"`
	LandlordID                   uuid.UUID           `json:"landlord_id" validate:"required"`
	PropertyAddress              string              `json:"property_address" validate:"required"`
	LeaseStartDate               formatting.Date     `json:"lease_start_date" validate:"required"`
	LeaseEndDate                 *formatting.Date    `json:"lease_end_date"`
	RentAmount                   decimal.Decimal     `json:"rent_amount"`
	DepositAmount                decimal.NullDecimal `json:"deposit_amount"`
	SecurityDepositReturned      bool                `json:"security_deposit_returned"`
	DepositDeductionReason       string              `json:"deposit_deduction_reason"`
	OnTimePayments               bool                `json:"on_time_payments"`
	LatePaymentsCount            int                 `json:"late_payments_count" validate:"gte=0"`
	PropertyDamage               bool                `json:"property_damage"`
	DamageDescription            string              `json:"damage_description"`
	HadDisputes                  bool                `json:"had_disputes"`
	DisputeDescription           string              `json:"dispute_description"`
	EvictionFiled                bool                `json:"eviction_filed"`
	EvictionReason               string              `json:"eviction_reason"`
	LandlordResponsivenessRating *int                `json:"landlord_responsiveness_rating" validate:"omitempty,min=1,max=5"`
	LandlordFairnessRating       *int                `json:"landlord_fairness_rating" validate:"omitempty,min=1,max=5"`
	TenantCleanlinessRating      *int                `json:"tenant_cleanliness_rating" validate:"omitempty,min=1,max=5"`
	TenantCooperationRating      *int                `json:"tenant_cooperation_rating" validate:"omitempty,min=1,max=5"`
}

// Counts tallies the adverse events across a set of histories.
type Counts struct {
	Records      int
	Disputes     int
	Evictions    int
	Damages      int
	LatePayments int
	OnTime       int
}

// Tally counts the adverse events across histories.
func Tally(histories []History) Counts {
	c := Counts{Records: len(histories)}
	for _, h := range histories {
		if h.HadDisputes {
			c.Disputes++
		}
		if h.EvictionFiled {
			c.Evictions++
		}
		if h.PropertyDamage {
			c.Damages++
		}
		if h.OnTimePayments {
			c.OnTime++
		}
		c.LatePayments += h.LatePaymentsCount
	}
	return c
}
