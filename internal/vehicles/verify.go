package vehicles

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/formatting"
)

// previousOwnerName labels the simulated prior ownership entry.
const previousOwnerName = "Previous Owner"

// Report builds the verification response for req. A nil v reports the
// vehicle as not found. today anchors the simulated ownership history.
func Report(req VerifyRequest, v *Vehicle, today formatting.Date) VerifyResponse {
	resp := VerifyResponse{
		ChassisNumber:      req.ChassisNumber,
		RegistrationNumber: req.RegistrationNumber,
	}

	if v == nil {
		resp.VerificationStatus = party.StatusNotFound
		resp.Message = "Vehicle not found with the provided details"
		return resp
	}

	resp.Exists = true
	resp.Make = v.Make
	resp.Model = v.Model
	resp.Year = v.Year
	resp.CurrentOwnerName = v.CurrentOwnerName
	resp.PurchaseDate = v.PurchaseDate
	resp.IsStolen = v.IsStolen
	resp.HasBeenTampered = v.HasBeenTampered
	resp.VerificationStatus = v.VerificationStatus
	resp.Message = describe(v)
	resp.OwnershipHistory = ownershipHistory(v, today)

	return resp
}

// Enhance appends the AI analysis verdict to resp at the given confidence.
func Enhance(resp *VerifyResponse, c float64) {
	resp.ConfidenceScore = &c
	pct := confidence.Percent(c)

	switch {
	case !resp.Exists && c > 0.9:
		resp.Message = "AI analysis confirms with high confidence that this vehicle does not exist in our records."
	case !resp.Exists:
		resp.Message = "AI analysis suggests this vehicle may not be registered. Recommend further investigation."
	case resp.IsStolen:
		resp.Message += fmt.Sprintf(" AI analysis confirms this vehicle is stolen with %s%% confidence.", pct)
	case resp.HasBeenTampered:
		resp.Message += fmt.Sprintf(" AI analysis indicates potential tampering with %s%% confidence. Recommend physical inspection.", pct)
	default:
		resp.Message += fmt.Sprintf(" AI analysis confirms this vehicle's legitimacy with %s%% confidence.", pct)
	}
}

func describe(v *Vehicle) string {
	var b strings.Builder
	year := "unknown year"
	if v.Year != nil {
		year = fmt.Sprint(*v.Year)
	}
	fmt.Fprintf(&b, "Vehicle found: %s %s (%s)", v.Make, v.Model, year)

	if v.CurrentOwnerName != nil {
		b.WriteString(". Current owner: " + *v.CurrentOwnerName)
	}
	if v.IsStolen {
		b.WriteString(". WARNING: This vehicle has been reported as stolen!")
	}
	if v.HasBeenTampered {
		b.WriteString(". WARNING: This vehicle has been reported as tampered with!")
	}
	return b.String()
}

// ownershipHistory lists the current owner followed by a simulated previous
// owner whose tenure ends the day before the purchase date, or a year ago
// when the purchase date is unknown, and spans two years.
func ownershipHistory(v *Vehicle, today formatting.Date) []Ownership {
	if v.CurrentOwnerName == nil {
		return nil
	}

	end := today.AddYears(-1)
	if v.PurchaseDate != nil {
		end = v.PurchaseDate.AddDays(-1)
	}
	start := end.AddYears(-2)

	prefix := v.ChassisNumber[:min(5, len(v.ChassisNumber))]
	prevID := "PREV-" + prefix

	return []Ownership{
		{
			OwnerName: *v.CurrentOwnerName,
			OwnerID:   v.CurrentOwnerID,
			StartDate: v.PurchaseDate,
		},
		{
			OwnerName: previousOwnerName,
			OwnerID:   &prevID,
			StartDate: &start,
			EndDate:   &end,
		},
	}
}

// note formats a timestamped line appended to a vehicle's verification notes.
func note(at time.Time, format string, args ...any) string {
	return fmt.Sprintf("\n[%s] ", at.Format("2006-01-02T15:04:05")) + fmt.Sprintf(format, args...)
}
