package landlords

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "landlords", "l").
	Project("id", "ID").
	Project("name", "Name").
	Project("id_number", "IDNumber").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("address", "Address").
	Project("verification_status", "VerificationStatus").
	Project("average_rating", "AverageRating").
	Project("total_ratings", "TotalRatings").
	Project("trust_score", "TrustScore").
	Project("classification", "Classification").
	Project("responsiveness_score", "ResponsivenessScore").
	Project("fairness_score", "FairnessScore").
	Project("deposit_return_rate", "DepositReturnRate").
	Project("behavioral_summary", "BehavioralSummary").
	Project("red_flags", "RedFlags").
	Project("managed_properties", "ManagedProperties").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// Oldest registration first; ID breaks ties so first-match lookups are stable.
var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

const returning = `RETURNING id, name, id_number, email, phone, address, verification_status,
		average_rating, total_ratings, trust_score, classification, responsiveness_score,
		fairness_score, deposit_return_rate, behavioral_summary, red_flags,
		managed_properties, created_at, updated_at`

// Filters contains optional filtering criteria for landlord queries.
// VerificationStatus and Classification match exactly. Name matches substrings.
type Filters struct {
	VerificationStatus *string `json:"verification_status,omitempty"`
	Classification     *string `json:"classification,omitempty"`
	Name               *string `json:"name,omitempty"`
	MinTrustScore      *int    `json:"min_trust_score,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("VerificationStatus", f.VerificationStatus).
		WhereEquals("Classification", f.Classification).
		WhereContains("Name", f.Name)

	if f.MinTrustScore != nil {
		b.WhereAtLeast("TrustScore", *f.MinTrustScore)
	}
	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("verification_status"); s != "" {
		f.VerificationStatus = &s
	}

	if c := values.Get("classification"); c != "" {
		f.Classification = &c
	}

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if ts := values.Get("min_trust_score"); ts != "" {
		if v, err := strconv.Atoi(ts); err == nil {
			f.MinTrustScore = &v
		}
	}

	return f
}

func scanLandlord(s repository.Scanner) (Landlord, error) {
	var l Landlord
	var redFlagsRaw, propertiesRaw []byte

	err := s.Scan(
		&l.ID,
		&l.Name,
		&l.IDNumber,
		&l.Email,
		&l.Phone,
		&l.Address,
		&l.VerificationStatus,
		&l.AverageRating,
		&l.TotalRatings,
		&l.TrustScore,
		&l.Classification,
		&l.ResponsivenessScore,
		&l.FairnessScore,
		&l.DepositReturnRate,
		&l.BehavioralSummary,
		&redFlagsRaw,
		&propertiesRaw,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return l, err
	}

	if l.RedFlags, err = repository.DecodeList(redFlagsRaw); err != nil {
		return l, fmt.Errorf("unmarshal red_flags: %w", err)
	}
	if l.ManagedProperties, err = repository.DecodeList(propertiesRaw); err != nil {
		return l, fmt.Errorf("unmarshal managed_properties: %w", err)
	}

	return l, nil
}
