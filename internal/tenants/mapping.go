package tenants

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tenants", "t").
	Project("id", "ID").
	Project("name", "Name").
	Project("id_number", "IDNumber").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("current_address", "CurrentAddress").
	Project("employment_status", "EmploymentStatus").
	Project("employer", "Employer").
	Project("monthly_income", "MonthlyIncome").
	Project("verification_status", "VerificationStatus").
	Project("average_rating", "AverageRating").
	Project("total_ratings", "TotalRatings").
	Project("trust_score", "TrustScore").
	Project("classification", "Classification").
	Project("behavioral_summary", "BehavioralSummary").
	Project("red_flags", "RedFlags").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

const returning = `RETURNING id, name, id_number, email, phone, current_address,
		employment_status, employer, monthly_income, verification_status,
		average_rating, total_ratings, trust_score, classification,
		behavioral_summary, red_flags, created_at, updated_at`

// Filters contains optional filtering criteria for tenant queries.
type Filters struct {
	VerificationStatus *string `json:"verification_status,omitempty"`
	Classification     *string `json:"classification,omitempty"`
	EmploymentStatus   *string `json:"employment_status,omitempty"`
	Name               *string `json:"name,omitempty"`
	MinTrustScore      *int    `json:"min_trust_score,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("VerificationStatus", f.VerificationStatus).
		WhereEquals("Classification", f.Classification).
		WhereEqualFold("EmploymentStatus", f.EmploymentStatus).
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

	if e := values.Get("employment_status"); e != "" {
		f.EmploymentStatus = &e
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

func scanTenant(s repository.Scanner) (Tenant, error) {
	var t Tenant
	var redFlagsRaw []byte

	err := s.Scan(
		&t.ID,
		&t.Name,
		&t.IDNumber,
		&t.Email,
		&t.Phone,
		&t.CurrentAddress,
		&t.EmploymentStatus,
		&t.Employer,
		&t.MonthlyIncome,
		&t.VerificationStatus,
		&t.AverageRating,
		&t.TotalRatings,
		&t.TrustScore,
		&t.Classification,
		&t.BehavioralSummary,
		&redFlagsRaw,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}

	if t.RedFlags, err = repository.DecodeList(redFlagsRaw); err != nil {
		return t, fmt.Errorf("unmarshal red_flags: %w", err)
	}

	return t, nil
}
