package rentals

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "rental_histories", "rh").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("landlord_id", "LandlordID").
	Project("property_address", "PropertyAddress").
	Project("lease_start_date", "LeaseStartDate").
	Project("lease_end_date", "LeaseEndDate").
	Project("rent_amount", "RentAmount").
	Project("deposit_amount", "DepositAmount").
	Project("security_deposit_returned", "SecurityDepositReturned").
	Project("deposit_deduction_reason", "DepositDeductionReason").
	Project("on_time_payments", "OnTimePayments").
	Project("late_payments_count", "LatePaymentsCount").
	Project("property_damage", "PropertyDamage").
	Project("damage_description", "DamageDescription").
	Project("had_disputes", "HadDisputes").
	Project("dispute_description", "DisputeDescription").
	Project("eviction_filed", "EvictionFiled").
	Project("eviction_reason", "EvictionReason").
	Project("landlord_responsiveness_rating", "LandlordResponsivenessRating").
	Project("landlord_fairness_rating", "LandlordFairnessRating").
	Project("tenant_cleanliness_rating", "TenantCleanlinessRating").
	Project("tenant_cooperation_rating", "TenantCooperationRating").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "tenants", "t", "JOIN", "t.id = rh.tenant_id").
	Project("name", "TenantName").
	Join("public", "landlords", "l", "JOIN", "l.id = rh.landlord_id").
	Project("name", "LandlordName")

var defaultSort = []query.SortField{
	{Field: "LeaseStartDate"},
	{Field: "CreatedAt"},
}

// Filters contains optional filtering criteria for rental history queries.
type Filters struct {
	TenantID        *uuid.UUID `json:"tenant_id,omitempty"`
	LandlordID      *uuid.UUID `json:"landlord_id,omitempty"`
	PropertyAddress *string    `json:"property_address,omitempty"`
	Disputes        *bool      `json:"had_disputes,omitempty"`
	Evictions       *bool      `json:"eviction_filed,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TenantID", f.TenantID).
		WhereEquals("LandlordID", f.LandlordID).
		WhereContains("PropertyAddress", f.PropertyAddress).
		WhereEquals("HadDisputes", f.Disputes).
		WhereEquals("EvictionFiled", f.Evictions)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant_id"); t != "" {
		if id, err := uuid.Parse(t); err == nil {
			f.TenantID = &id
		}
	}

	if l := values.Get("landlord_id"); l != "" {
		if id, err := uuid.Parse(l); err == nil {
			f.LandlordID = &id
		}
	}

	if a := values.Get("property_address"); a != "" {
		f.PropertyAddress = &a
	}

	if d := values.Get("had_disputes"); d != "" {
		v := d == "true"
		f.Disputes = &v
	}

	if e := values.Get("eviction_filed"); e != "" {
		v := e == "true"
		f.Evictions = &v
	}

	return f
}

func scanHistory(s repository.Scanner) (History, error) {
	var h History
	err := s.Scan(
		&h.ID,
		&h.TenantID,
		&h.LandlordID,
		&h.PropertyAddress,
		&h.LeaseStartDate,
		&h.LeaseEndDate,
		&h.RentAmount,
		&h.DepositAmount,
		&h.SecurityDepositReturned,
		&h.DepositDeductionReason,
		&h.OnTimePayments,
		&h.LatePaymentsCount,
		&h.PropertyDamage,
		&h.DamageDescription,
		&h.HadDisputes,
		&h.DisputeDescription,
		&h.EvictionFiled,
		&h.EvictionReason,
		&h.LandlordResponsivenessRating,
		&h.LandlordFairnessRating,
		&h.TenantCleanlinessRating,
		&h.TenantCooperationRating,
		&h.CreatedAt,
		&h.UpdatedAt,
		&h.TenantName,
		&h.LandlordName,
	)
	return h, err
}
