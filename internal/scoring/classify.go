package scoring

import (
	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/tenants"
)

// Score thresholds shared by both parties.
const (
	AvoidBelow   = 40
	CautionBelow = 70
)

// ClassifyLandlord applies the Avoid rules, then the Caution rules, and
// otherwise returns Safe. A nil landlord or score is Unknown.
func ClassifyLandlord(l *landlords.Landlord, score *int, rs []ratings.Rating) string {
	if l == nil || score == nil {
		return party.Unknown
	}
	rs = ofType(rs, ratings.TenantToLandlord)

	veryLow := countWhere(rs, func(r ratings.Rating) bool { return r.RatingValue <= 1.5 })
	badDeposits := countWhere(rs, atMost(DepositHandling, 1))
	if veryLow >= 3 || badDeposits >= 3 || *score < AvoidBelow {
		return party.Avoid
	}

	low := countWhere(rs, func(r ratings.Rating) bool { return r.RatingValue <= 2.5 })
	slow := countWhere(rs, atMost(Responsiveness, 2))
	neglect := countWhere(rs, atMost(MaintenanceQuality, 2))
	if low >= 2 || slow >= 2 || neglect >= 2 || *score < CautionBelow {
		return party.Caution
	}

	return party.Safe
}

// ClassifyTenant applies the Avoid rules, then the Caution rules, and
// otherwise returns Safe. A nil tenant or score is Unknown.
func ClassifyTenant(t *tenants.Tenant, score *int, histories []rentals.History) string {
	if t == nil || score == nil {
		return party.Unknown
	}
	c := rentals.Tally(histories)

	if c.Evictions > 0 || c.Damages >= 2 || *score < AvoidBelow {
		return party.Avoid
	}

	if c.Disputes > 0 || c.Damages > 0 || c.LatePayments >= 3 || *score < CautionBelow {
		return party.Caution
	}

	return party.Safe
}
