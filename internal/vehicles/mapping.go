package vehicles

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "vehicles", "v").
	Project("id", "ID").
	Project("chassis_number", "ChassisNumber").
	Project("registration_number", "RegistrationNumber").
	Project("make", "Make").
	Project("model", "Model").
	Project("year", "Year").
	Project("color", "Color").
	Project("engine_number", "EngineNumber").
	Project("current_owner_name", "CurrentOwnerName").
	Project("current_owner_id", "CurrentOwnerID").
	Project("purchase_date", "PurchaseDate").
	Project("is_stolen", "IsStolen").
	Project("has_been_tampered", "HasBeenTampered").
	Project("verification_status", "VerificationStatus").
	Project("verification_notes", "VerificationNotes").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

const returning = `RETURNING id, chassis_number, registration_number, make, model, year, color,
		engine_number, current_owner_name, current_owner_id, purchase_date, is_stolen,
		has_been_tampered, verification_status, verification_notes, created_at, updated_at`

// Filters contains optional filtering criteria for vehicle queries.
// Make, Model, and OwnerName match substrings; the rest match exactly.
type Filters struct {
	Make               *string `json:"make,omitempty"`
	Model              *string `json:"model,omitempty"`
	Year               *int    `json:"year,omitempty"`
	OwnerName          *string `json:"owner_name,omitempty"`
	OwnerID            *string `json:"owner_id,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	Stolen             *bool   `json:"stolen,omitempty"`
	Tampered           *bool   `json:"tampered,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Make", f.Make).
		WhereContains("Model", f.Model).
		WhereEquals("Year", f.Year).
		WhereContains("CurrentOwnerName", f.OwnerName).
		WhereEquals("CurrentOwnerID", f.OwnerID).
		WhereEquals("VerificationStatus", f.VerificationStatus).
		WhereEquals("IsStolen", f.Stolen).
		WhereEquals("HasBeenTampered", f.Tampered)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if m := values.Get("make"); m != "" {
		f.Make = &m
	}

	if m := values.Get("model"); m != "" {
		f.Model = &m
	}

	if y := values.Get("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			f.Year = &v
		}
	}

	if n := values.Get("owner_name"); n != "" {
		f.OwnerName = &n
	}

	if id := values.Get("owner_id"); id != "" {
		f.OwnerID = &id
	}

	if s := values.Get("verification_status"); s != "" {
		f.VerificationStatus = &s
	}

	if s := values.Get("stolen"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			f.Stolen = &v
		}
	}

	if t := values.Get("tampered"); t != "" {
		if v, err := strconv.ParseBool(t); err == nil {
			f.Tampered = &v
		}
	}

	return f
}

func scanVehicle(s repository.Scanner) (Vehicle, error) {
	var v Vehicle
	err := s.Scan(
		&v.ID,
		&v.ChassisNumber,
		&v.RegistrationNumber,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.Color,
		&v.EngineNumber,
		&v.CurrentOwnerName,
		&v.CurrentOwnerID,
		&v.PurchaseDate,
		&v.IsStolen,
		&v.HasBeenTampered,
		&v.VerificationStatus,
		&v.VerificationNotes,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}
