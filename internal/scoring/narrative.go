package scoring

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/lexicon"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/tenants"
)

// NegativeSentiment is the mean sentiment below which reviews are flagged.
const NegativeSentiment = -0.3

// LandlordRedFlags lists the landlord's warning signs in a fixed order.
func LandlordRedFlags(l *landlords.Landlord, histories []rentals.History, rs []ratings.Rating) []string {
	flags := []string{}
	if l == nil {
		return flags
	}
	rs = ofType(rs, ratings.TenantToLandlord)
	c := rentals.Tally(histories)

	if c.Evictions > 0 {
		flags = append(flags, fmt.Sprintf("Has filed %d eviction(s)", c.Evictions))
	}
	if c.Disputes > 0 {
		flags = append(flags, fmt.Sprintf("Has been involved in %d dispute(s)", c.Disputes))
	}

	if avg, ok := MeanValue(rs); ok {
		if avg <= 2 {
			flags = append(flags, fmt.Sprintf("Low average rating (%.1f/5)", oneDecimal(avg)))
		}
		if MeanMetric(rs, Responsiveness, 0) <= 2 {
			flags = append(flags, "Poor responsiveness to tenant issues")
		}
		if MeanMetric(rs, MaintenanceQuality, 0) <= 2 {
			flags = append(flags, "Poor maintenance quality")
		}
		if MeanMetric(rs, DepositHandling, 0) <= 2 {
			flags = append(flags, "Issues with security deposit returns")
		}
		if MeanSentiment(rs) < NegativeSentiment {
			flags = append(flags, "Predominantly negative reviews")
		}
	}

	return flags
}

// TenantRedFlags lists the tenant's warning signs in a fixed order.
func TenantRedFlags(t *tenants.Tenant, histories []rentals.History, rs []ratings.Rating) []string {
	flags := []string{}
	if t == nil {
		return flags
	}
	rs = ofType(rs, ratings.LandlordToTenant)
	c := rentals.Tally(histories)

	if c.Evictions > 0 {
		flags = append(flags, fmt.Sprintf("Has %d eviction(s) on record", c.Evictions))
	}
	if c.Damages > 0 {
		flags = append(flags, fmt.Sprintf("Has caused property damage %d time(s)", c.Damages))
	}
	if c.Disputes > 0 {
		flags = append(flags, fmt.Sprintf("Has been involved in %d dispute(s)", c.Disputes))
	}
	if c.LatePayments >= 3 {
		flags = append(flags, fmt.Sprintf("Has %d late payment(s)", c.LatePayments))
	}

	if avg, ok := MeanValue(rs); ok {
		if avg <= 2 {
			flags = append(flags, fmt.Sprintf("Low average rating (%.1f/5)", oneDecimal(avg)))
		}
		if MeanSentiment(rs) < NegativeSentiment {
			flags = append(flags, "Predominantly negative reviews")
		}
	}

	return flags
}

// LandlordSummary describes the landlord's record in plain sentences.
func LandlordSummary(l *landlords.Landlord, histories []rentals.History, rs []ratings.Rating) string {
	if l == nil {
		return "No landlord information available."
	}
	rs = ofType(rs, ratings.TenantToLandlord)

	var sb strings.Builder

	if n := len(l.ManagedProperties); n > 0 {
		fmt.Fprintf(&sb, "Landlord manages %d properties. ", n)
	}

	if len(histories) > 0 {
		c := rentals.Tally(histories)
		fmt.Fprintf(&sb, "Has %d rental records. ", c.Records)
		if c.Disputes > 0 {
			fmt.Fprintf(&sb, "Has been involved in %d dispute(s). ", c.Disputes)
		}
		if c.Evictions > 0 {
			fmt.Fprintf(&sb, "Has filed %d eviction(s). ", c.Evictions)
		}
	}

	avg, ok := MeanValue(rs)
	if !ok {
		sb.WriteString("No rating information available.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Average rating from tenants is %.1f/5. ", oneDecimal(avg))

	metrics := []struct {
		label  string
		metric Metric
	}{
		{"Responsiveness", Responsiveness},
		{"Maintenance quality", MaintenanceQuality},
		{"Fairness", Fairness},
		{"Deposit handling", DepositHandling},
	}
	for _, m := range metrics {
		if mean, ok := meanMetric(rs, m.metric); ok {
			fmt.Fprintf(&sb, "%s: %.1f/5. ", m.label, oneDecimal(mean))
		}
	}

	writeTraits(&sb, rs)
	return sb.String()
}

// TenantSummary describes the tenant's record in plain sentences.
func TenantSummary(t *tenants.Tenant, histories []rentals.History, rs []ratings.Rating) string {
	if t == nil {
		return "No tenant information available."
	}
	rs = ofType(rs, ratings.LandlordToTenant)

	var sb strings.Builder

	if len(histories) > 0 {
		c := rentals.Tally(histories)
		fmt.Fprintf(&sb, "Tenant has %d rental records. ", c.Records)

		if c.LatePayments > 0 {
			fmt.Fprintf(&sb, "Has %d late payment(s). ", c.LatePayments)
		} else {
			sb.WriteString("Has consistent on-time payment history. ")
		}

		if c.Damages > 0 {
			fmt.Fprintf(&sb, "Has caused property damage %d time(s). ", c.Damages)
		} else {
			sb.WriteString("Has maintained properties well. ")
		}

		if c.Disputes > 0 {
			fmt.Fprintf(&sb, "Has been involved in %d dispute(s). ", c.Disputes)
		}
		if c.Evictions > 0 {
			fmt.Fprintf(&sb, "Has %d eviction(s) on record. ", c.Evictions)
		}
	} else {
		sb.WriteString("No rental history records available. ")
	}

	avg, ok := MeanValue(rs)
	if !ok {
		sb.WriteString("No rating information available.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Average rating from landlords is %.1f/5. ", oneDecimal(avg))
	writeTraits(&sb, rs)
	return sb.String()
}

// CommonTraits collects the distinct detected traits in first-seen order.
func CommonTraits(rs []ratings.Rating) []string {
	seen := make(map[string]bool)
	traits := []string{}
	for _, r := range rs {
		for _, t := range r.DetectedTraits {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			traits = append(traits, t)
		}
	}
	return traits
}

func writeTraits(sb *strings.Builder, rs []ratings.Rating) {
	if traits := CommonTraits(rs); len(traits) > 0 {
		fmt.Fprintf(sb, "Commonly mentioned traits: %s.", lexicon.JoinTraits(traits))
	}
}
