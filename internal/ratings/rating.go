// Package ratings records the ratings landlords and tenants give each other.
// Each write keeps the rated party's average and count in step with the
// stored ratings and analyzes the review text with the lexicon matcher.
package ratings

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/formatting"
)

// Type is the direction of a rating.
type Type string

const (
	LandlordToTenant Type = "LANDLORD_TO_TENANT"
	TenantToLandlord Type = "TENANT_TO_LANDLORD"
)

// TenantMetrics are the 1 to 5 scores a landlord gives a tenant.
type TenantMetrics struct {
	PaymentTimeliness *int `json:"payment_timeliness" validate:"omitempty,min=1,max=5"`
	PropertyCare      *int `json:"property_care" validate:"omitempty,min=1,max=5"`
	Communication     *int `json:"communication" validate:"omitempty,min=1,max=5"`
	RuleAdherence     *int `json:"rule_adherence" validate:"omitempty,min=1,max=5"`
	Cleanliness       *int `json:"cleanliness" validate:"omitempty,min=1,max=5"`
}

// LandlordMetrics are the 1 to 5 scores a tenant gives a landlord.
type LandlordMetrics struct {
	Responsiveness     *int `json:"responsiveness" validate:"omitempty,min=1,max=5"`
	MaintenanceQuality *int `json:"maintenance_quality" validate:"omitempty,min=1,max=5"`
	Fairness           *int `json:"fairness" validate:"omitempty,min=1,max=5"`
	DepositHandling    *int `json:"deposit_handling" validate:"omitempty,min=1,max=5"`
	PrivacyRespect     *int `json:"privacy_respect" validate:"omitempty,min=1,max=5"`
}

// Rating is a stored rating with the names of both parties.
type Rating struct {
	ID              uuid.UUID        `json:"id"`
	LandlordID      uuid.UUID        `json:"landlord_id"`
	LandlordName    string           `json:"landlord_name"`
	TenantID        uuid.UUID        `json:"tenant_id"`
	TenantName      string           `json:"tenant_name"`
	RatingType      Type             `json:"rating_type"`
	RatingValue     float64          `json:"rating_value"`
	Review          string           `json:"review"`
	PropertyAddress string           `json:"property_address"`
	LeaseStartDate  *formatting.Date `json:"lease_start_date"`
	LeaseEndDate    *formatting.Date `json:"lease_end_date"`
	TenantMetrics
	LandlordMetrics
	SentimentScore *float64  `json:"sentiment_score"`
	DetectedTraits []string  `json:"detected_traits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to record a rating.
type CreateCommand struct {
	LandlordID      uuid.UUID        `json:"landlord_id" validate:"required"`
	TenantID        uuid.UUID        `json:"tenant_id" validate:"required"`
	RatingType      Type             `json:"rating_type" validate:"required,oneof=LANDLORD_TO_TENANT TENANT_TO_LANDLORD"`
	RatingValue     float64          `json:"rating_value" validate:"required,gte=1,lte=5"`
	Review          string           `json:"review"`
	PropertyAddress string           `json:"property_address"`
	LeaseStartDate  *formatting.Date `json:"lease_start_date"`
	LeaseEndDate    *formatting.Date `json:"lease_end_date"`
	TenantMetrics
	LandlordMetrics
}

// UpdateCommand replaces a rating's value, review, and metrics. The rating
// direction is fixed at creation; lease dates are only replaced when given.
type UpdateCommand struct {
	RatingValue     float64          `json:"rating_value" validate:"required,gte=1,lte=5"`
	Review          string           `json:"review"`
	PropertyAddress string           `json:"property_address"`
	LeaseStartDate  *formatting.Date `json:"lease_start_date"`
	LeaseEndDate    *formatting.Date `json:"lease_end_date"`
	TenantMetrics
	LandlordMetrics
}

// SentimentRequest is the body of the sentiment analysis endpoint.
type SentimentRequest struct {
	Text string `json:"text"`
}

// metricsFor keeps only the metric set that belongs to the rating direction.
func metricsFor(t Type, tm TenantMetrics, lm LandlordMetrics) (TenantMetrics, LandlordMetrics) {
	switch t {
	case LandlordToTenant:
		return tm, LandlordMetrics{}
	case TenantToLandlord:
		return TenantMetrics{}, lm
	default:
		return TenantMetrics{}, LandlordMetrics{}
	}
}

// Aggregate is a party's running rating average and count.
type Aggregate struct {
	Average float64 `json:"average_rating"`
	Total   int     `json:"total_ratings"`
}

// Apply folds one more rating value into the aggregate.
func (a Aggregate) Apply(value float64) Aggregate {
	if a.Total == 0 {
		return Aggregate{Average: value, Total: 1}
	}
	return Aggregate{
		Average: (a.Average*float64(a.Total) + value) / float64(a.Total+1),
		Total:   a.Total + 1,
	}
}
