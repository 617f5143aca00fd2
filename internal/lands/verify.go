package lands

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/party"
)

// Report builds the verification response for req. A nil l reports the
// stand as not found.
func Report(req VerifyRequest, l *Land) VerifyResponse {
	resp := VerifyResponse{
		StandNumber: req.StandNumber,
		Location:    req.Location,
	}

	if l == nil {
		resp.VerificationStatus = party.StatusNotFound
		resp.Message = "The stand does not exist"
		return resp
	}

	resp.Exists = true
	resp.IsAllocated = l.IsAllocated
	resp.OwnerName = l.OwnerName
	resp.VerificationStatus = l.VerificationStatus

	if l.IsAllocated {
		owner := ""
		if l.OwnerName != nil {
			owner = *l.OwnerName
		}
		resp.Message = "The stand is already allocated to " + owner
	} else {
		resp.Message = "The stand exists but is not allocated to anyone"
	}

	return resp
}

// Enhance appends the AI analysis verdict to resp at the given confidence.
func Enhance(resp *VerifyResponse, c float64) {
	resp.ConfidenceScore = &c
	pct := confidence.Percent(c)

	switch {
	case !resp.Exists && c > 0.9:
		resp.Message = "AI analysis confirms with high confidence that this stand does not exist in our records."
	case !resp.Exists:
		resp.Message = "AI analysis suggests this stand may not be registered. Recommend further investigation."
	case resp.IsAllocated:
		resp.Message += fmt.Sprintf(". AI analysis confirms this with %s%% confidence.", pct)
	default:
		resp.Message += fmt.Sprintf(". AI analysis suggests this land may be available for allocation with %s%% confidence.", pct)
	}
}

// LocationMatches reports whether either location contains the other,
// ignoring case.
func LocationMatches(recorded, requested string) bool {
	a := strings.ToLower(recorded)
	b := strings.ToLower(requested)
	return strings.Contains(a, b) || strings.Contains(b, a)
}
