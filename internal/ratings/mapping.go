package ratings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "ratings", "r").
	Project("id", "ID").
	Project("landlord_id", "LandlordID").
	Project("tenant_id", "TenantID").
	Project("rating_type", "RatingType").
	Project("rating_value", "RatingValue").
	Project("review", "Review").
	Project("property_address", "PropertyAddress").
	Project("lease_start_date", "LeaseStartDate").
	Project("lease_end_date", "LeaseEndDate").
	Project("payment_timeliness", "PaymentTimeliness").
	Project("property_care", "PropertyCare").
	Project("communication", "Communication").
	Project("rule_adherence", "RuleAdherence").
	Project("cleanliness", "Cleanliness").
	Project("responsiveness", "Responsiveness").
	Project("maintenance_quality", "MaintenanceQuality").
	Project("fairness", "Fairness").
	Project("deposit_handling", "DepositHandling").
	Project("privacy_respect", "PrivacyRespect").
	Project("sentiment_score", "SentimentScore").
	Project("detected_traits", "DetectedTraits").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "landlords", "l", "JOIN", "l.id = r.landlord_id").
	Project("name", "LandlordName").
	Join("public", "tenants", "t", "JOIN", "t.id = r.tenant_id").
	Project("name", "TenantName")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

// Filters contains optional filtering criteria for rating queries.
type Filters struct {
	LandlordID      *uuid.UUID `json:"landlord_id,omitempty"`
	TenantID        *uuid.UUID `json:"tenant_id,omitempty"`
	RatingType      *Type      `json:"rating_type,omitempty"`
	PropertyAddress *string    `json:"property_address,omitempty"`
	MinValue        *float64   `json:"min_value,omitempty"`
	MaxValue        *float64   `json:"max_value,omitempty"`
	MinSentiment    *float64   `json:"min_sentiment,omitempty"`
	MaxSentiment    *float64   `json:"max_sentiment,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("LandlordID", f.LandlordID).
		WhereEquals("TenantID", f.TenantID).
		WhereEquals("RatingType", f.RatingType).
		WhereContains("PropertyAddress", f.PropertyAddress).
		WhereAtLeast("RatingValue", f.MinValue).
		WhereAtMost("RatingValue", f.MaxValue).
		WhereAtLeast("SentimentScore", f.MinSentiment).
		WhereAtMost("SentimentScore", f.MaxSentiment)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if l := values.Get("landlord_id"); l != "" {
		if id, err := uuid.Parse(l); err == nil {
			f.LandlordID = &id
		}
	}

	if t := values.Get("tenant_id"); t != "" {
		if id, err := uuid.Parse(t); err == nil {
			f.TenantID = &id
		}
	}

	if rt := values.Get("rating_type"); rt != "" {
		t := Type(strings.ToUpper(rt))
		f.RatingType = &t
	}

	if a := values.Get("property_address"); a != "" {
		f.PropertyAddress = &a
	}

	f.MinValue = parseFloat(values.Get("min_value"))
	f.MaxValue = parseFloat(values.Get("max_value"))
	f.MinSentiment = parseFloat(values.Get("min_sentiment"))
	f.MaxSentiment = parseFloat(values.Get("max_sentiment"))

	return f
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func scanRating(s repository.Scanner) (Rating, error) {
	var r Rating
	var traitsRaw []byte

	err := s.Scan(
		&r.ID,
		&r.LandlordID,
		&r.TenantID,
		&r.RatingType,
		&r.RatingValue,
		&r.Review,
		&r.PropertyAddress,
		&r.LeaseStartDate,
		&r.LeaseEndDate,
		&r.PaymentTimeliness,
		&r.PropertyCare,
		&r.Communication,
		&r.RuleAdherence,
		&r.Cleanliness,
		&r.Responsiveness,
		&r.MaintenanceQuality,
		&r.Fairness,
		&r.DepositHandling,
		&r.PrivacyRespect,
		&r.SentimentScore,
		&traitsRaw,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.LandlordName,
		&r.TenantName,
	)
	if err != nil {
		return r, err
	}

	if r.DetectedTraits, err = repository.DecodeList(traitsRaw); err != nil {
		return r, fmt.Errorf("unmarshal detected_traits: %w", err)
	}

	return r, nil
}
