package rentals_test

import (
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/rentals"
)

func TestTally(t *testing.T) {
	histories := []rentals.History{
		{OnTimePayments: true},
		{HadDisputes: true, LatePaymentsCount: 2},
		{HadDisputes: true, EvictionFiled: true, PropertyDamage: true, LatePaymentsCount: 4},
	}

	got := rentals.Tally(histories)
	want := rentals.Counts{
		Records:      3,
		Disputes:     2,
		Evictions:    1,
		Damages:      1,
		LatePayments: 6,
		OnTime:       1,
	}
	if got != want {
		t.Errorf("Tally() = %+v, want %+v", got, want)
	}
}

func TestTallyEmpty(t *testing.T) {
	if got := rentals.Tally(nil); got != (rentals.Counts{}) {
		t.Errorf("Tally(nil) = %+v, want zero", got)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	tenantID := uuid.New()
	values := url.Values{
		"tenant_id":      {tenantID.String()},
		"landlord_id":    {"not-a-uuid"},
		"had_disputes":   {"true"},
		"eviction_filed": {"no"},
	}

	f := rentals.FiltersFromQuery(values)

	if f.TenantID == nil || *f.TenantID != tenantID {
		t.Errorf("tenant id = %v, want %v", f.TenantID, tenantID)
	}
	if f.LandlordID != nil {
		t.Errorf("landlord id = %v, want nil for a malformed value", f.LandlordID)
	}
	if f.Disputes == nil || !*f.Disputes {
		t.Errorf("disputes = %v, want true", f.Disputes)
	}
	if f.Evictions == nil || *f.Evictions {
		t.Errorf("evictions = %v, want false", f.Evictions)
	}
	if f.PropertyAddress != nil {
		t.Errorf("property address = %v, want nil", f.PropertyAddress)
	}
}
