package lands

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "lands", "ld").
	Project("id", "ID").
	Project("stand_number", "StandNumber").
	Project("location", "Location").
	Project("title", "Title").
	Project("owner_name", "OwnerName").
	Project("owner_id_number", "OwnerIDNumber").
	Project("is_allocated", "IsAllocated").
	Project("allocation_date", "AllocationDate").
	Project("property_size_square_meters", "PropertySizeSquareMeters").
	Project("property_type", "PropertyType").
	Project("verification_status", "VerificationStatus").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

const returning = `RETURNING id, stand_number, location, title, owner_name, owner_id_number,
		is_allocated, allocation_date, property_size_square_meters, property_type,
		verification_status, created_at, updated_at`

// Filters contains optional filtering criteria for land queries.
// Location and OwnerName match substrings; the rest match exactly.
type Filters struct {
	Location           *string `json:"location,omitempty"`
	OwnerName          *string `json:"owner_name,omitempty"`
	OwnerIDNumber      *string `json:"owner_id_number,omitempty"`
	Allocated          *bool   `json:"allocated,omitempty"`
	PropertyType       *string `json:"property_type,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Location", f.Location).
		WhereContains("OwnerName", f.OwnerName).
		WhereEquals("OwnerIDNumber", f.OwnerIDNumber).
		WhereEquals("IsAllocated", f.Allocated).
		WhereEqualFold("PropertyType", f.PropertyType).
		WhereEquals("VerificationStatus", f.VerificationStatus)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if l := values.Get("location"); l != "" {
		f.Location = &l
	}

	if n := values.Get("owner_name"); n != "" {
		f.OwnerName = &n
	}

	if id := values.Get("owner_id_number"); id != "" {
		f.OwnerIDNumber = &id
	}

	if a := values.Get("allocated"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Allocated = &v
		}
	}

	if t := values.Get("property_type"); t != "" {
		f.PropertyType = &t
	}

	if s := values.Get("verification_status"); s != "" {
		f.VerificationStatus = &s
	}

	return f
}

func scanLand(s repository.Scanner) (Land, error) {
	var l Land
	err := s.Scan(
		&l.ID,
		&l.StandNumber,
		&l.Location,
		&l.Title,
		&l.OwnerName,
		&l.OwnerIDNumber,
		&l.IsAllocated,
		&l.AllocationDate,
		&l.PropertySizeSquareMeters,
		&l.PropertyType,
		&l.VerificationStatus,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}
