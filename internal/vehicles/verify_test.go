package vehicles_test

import (
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/vehicles"
	"github.com/JaimeStill/attest/pkg/formatting"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) formatting.Date {
	return formatting.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func sampleVehicle() *vehicles.Vehicle {
	purchased := date(2024, time.March, 10)
	return &vehicles.Vehicle{
		ChassisNumber:      "JH4KA7561PC008269",
		RegistrationNumber: ptr("ABC-123"),
		Make:               "Toyota",
		Model:              "Corolla",
		Year:               ptr(2019),
		CurrentOwnerName:   ptr("Jane Driver"),
		CurrentOwnerID:     ptr("ID555"),
		PurchaseDate:       &purchased,
		VerificationStatus: party.StatusVerified,
	}
}

func TestReportNotFound(t *testing.T) {
	req := vehicles.VerifyRequest{ChassisNumber: "NOPE"}
	resp := vehicles.Report(req, nil, date(2026, time.January, 1))

	if resp.Exists {
		t.Error("exists = true, want false")
	}
	if resp.VerificationStatus != party.StatusNotFound {
		t.Errorf("status = %s, want NOT_FOUND", resp.VerificationStatus)
	}
	if resp.Message != "Vehicle not found with the provided details" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.ChassisNumber != "NOPE" {
		t.Errorf("chassis = %q, want echoed request", resp.ChassisNumber)
	}
	if resp.OwnershipHistory != nil {
		t.Errorf("history = %v, want nil", resp.OwnershipHistory)
	}
}

func TestReportFound(t *testing.T) {
	v := sampleVehicle()
	resp := vehicles.Report(vehicles.VerifyRequest{ChassisNumber: v.ChassisNumber}, v, date(2026, time.January, 1))

	if !resp.Exists || resp.Make != "Toyota" || resp.Model != "Corolla" {
		t.Errorf("resp = %+v", resp)
	}
	if want := "Vehicle found: Toyota Corolla (2019). Current owner: Jane Driver"; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}

	if len(resp.OwnershipHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(resp.OwnershipHistory))
	}

	current, prev := resp.OwnershipHistory[0], resp.OwnershipHistory[1]
	if current.OwnerName != "Jane Driver" || current.StartDate == nil || current.StartDate.String() != "2024-03-10" {
		t.Errorf("current owner = %+v", current)
	}
	if prev.OwnerName != "Previous Owner" || prev.OwnerID == nil || *prev.OwnerID != "PREV-JH4KA" {
		t.Errorf("previous owner = %+v", prev)
	}
	if prev.EndDate.String() != "2024-03-09" || prev.StartDate.String() != "2022-03-09" {
		t.Errorf("previous tenure = %s to %s, want 2022-03-09 to 2024-03-09", prev.StartDate, prev.EndDate)
	}
}

func TestReportWithoutPurchaseDate(t *testing.T) {
	v := sampleVehicle()
	v.PurchaseDate = nil
	v.ChassisNumber = "AB1"

	resp := vehicles.Report(vehicles.VerifyRequest{ChassisNumber: "AB1"}, v, date(2026, time.June, 15))

	prev := resp.OwnershipHistory[1]
	if prev.EndDate.String() != "2025-06-15" || prev.StartDate.String() != "2023-06-15" {
		t.Errorf("previous tenure = %s to %s", prev.StartDate, prev.EndDate)
	}
	if *prev.OwnerID != "PREV-AB1" {
		t.Errorf("previous owner id = %s, want PREV-AB1", *prev.OwnerID)
	}
}

func TestReportWarnings(t *testing.T) {
	v := sampleVehicle()
	v.Year = nil
	v.CurrentOwnerName = nil
	v.IsStolen = true
	v.HasBeenTampered = true

	resp := vehicles.Report(vehicles.VerifyRequest{}, v, date(2026, time.January, 1))

	want := "Vehicle found: Toyota Corolla (unknown year)" +
		". WARNING: This vehicle has been reported as stolen!" +
		". WARNING: This vehicle has been reported as tampered with!"
	if resp.Message != want {
		t.Errorf("message:\ngot  %q\nwant %q", resp.Message, want)
	}
	if resp.OwnershipHistory != nil {
		t.Error("no history expected without a current owner")
	}
}

func TestEnhance(t *testing.T) {
	tests := []struct {
		name       string
		resp       vehicles.VerifyResponse
		confidence float64
		want       string
		suffix     bool
	}{
		{
			name:       "missing with high confidence",
			resp:       vehicles.VerifyResponse{Message: "Vehicle not found with the provided details"},
			confidence: 0.95,
			want:       "AI analysis confirms with high confidence that this vehicle does not exist in our records.",
		},
		{
			name:       "missing with lower confidence",
			resp:       vehicles.VerifyResponse{},
			confidence: 0.9,
			want:       "AI analysis suggests this vehicle may not be registered. Recommend further investigation.",
		},
		{
			name:       "stolen",
			resp:       vehicles.VerifyResponse{Exists: true, IsStolen: true, HasBeenTampered: true, Message: "Vehicle found"},
			confidence: 0.8,
			want:       " AI analysis confirms this vehicle is stolen with 80.00% confidence.",
			suffix:     true,
		},
		{
			name:       "tampered",
			resp:       vehicles.VerifyResponse{Exists: true, HasBeenTampered: true, Message: "Vehicle found"},
			confidence: 0.75,
			want:       " AI analysis indicates potential tampering with 75.00% confidence. Recommend physical inspection.",
			suffix:     true,
		},
		{
			name:       "clean",
			resp:       vehicles.VerifyResponse{Exists: true, Message: "Vehicle found"},
			confidence: 0.7,
			want:       " AI analysis confirms this vehicle's legitimacy with 70.00% confidence.",
			suffix:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.resp
			vehicles.Enhance(&resp, tt.confidence)

			if resp.ConfidenceScore == nil || *resp.ConfidenceScore != tt.confidence {
				t.Errorf("confidence = %v, want %v", resp.ConfidenceScore, tt.confidence)
			}

			if tt.suffix {
				if !strings.HasPrefix(resp.Message, "Vehicle found") || !strings.HasSuffix(resp.Message, tt.want) {
					t.Errorf("message = %q, want original with suffix %q", resp.Message, tt.want)
				}
				return
			}
			if resp.Message != tt.want {
				t.Errorf("message = %q, want %q", resp.Message, tt.want)
			}
		})
	}
}
