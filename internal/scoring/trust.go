package scoring

import (
	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/tenants"
)

// BaseScore is the starting trust score before any evidence is applied.
const BaseScore = 70

// LandlordTrustScore scores a landlord from 0 to 100. A nil landlord scores 0.
func LandlordTrustScore(l *landlords.Landlord, histories []rentals.History, rs []ratings.Rating) int {
	if l == nil {
		return 0
	}
	rs = ofType(rs, ratings.TenantToLandlord)
	c := rentals.Tally(histories)

	score := BaseScore
	score -= c.Disputes * 5
	score -= c.Evictions * 10

	if avg, ok := MeanValue(rs); ok {
		score = adjust(score, (avg-Neutral)*10)
		for _, m := range []Metric{Responsiveness, MaintenanceQuality, Fairness, DepositHandling} {
			score = adjust(score, (MeanMetric(rs, m, Neutral)-Neutral)*2.5)
		}
		score = adjust(score, MeanSentiment(rs)*10)
	}

	return clamp(score)
}

// TenantTrustScore scores a tenant from 0 to 100. A nil tenant scores 0.
func TenantTrustScore(t *tenants.Tenant, histories []rentals.History, rs []ratings.Rating) int {
	if t == nil {
		return 0
	}
	rs = ofType(rs, ratings.LandlordToTenant)
	c := rentals.Tally(histories)

	score := BaseScore
	score -= c.LatePayments * 3
	score -= c.Damages * 10
	score -= c.Disputes * 5
	score -= c.Evictions * 20
	score += c.OnTime * 2

	if avg, ok := MeanValue(rs); ok {
		score = adjust(score, (avg-Neutral)*10)
		score = adjust(score, MeanSentiment(rs)*10)
	}

	return clamp(score)
}

// ResponsivenessScore maps mean landlord responsiveness onto 0 to 100.
// Unrated landlords score 50.
func ResponsivenessScore(rs []ratings.Rating) int {
	return metricPercent(ofType(rs, ratings.TenantToLandlord), Responsiveness)
}

// FairnessScore maps mean landlord fairness onto 0 to 100.
// Unrated landlords score 50.
func FairnessScore(rs []ratings.Rating) int {
	return metricPercent(ofType(rs, ratings.TenantToLandlord), Fairness)
}

func metricPercent(rs []ratings.Rating, m Metric) int {
	if len(rs) == 0 {
		return 50
	}
	return clamp(int(MeanMetric(rs, m, Neutral) / 5 * 100))
}

// DepositReturnRate is the percentage of ratings that scored deposit handling
// 4 or higher, or 0 when unrated.
func DepositReturnRate(rs []ratings.Rating) float64 {
	rs = ofType(rs, ratings.TenantToLandlord)
	if len(rs) == 0 {
		return 0
	}
	good := countWhere(rs, func(r ratings.Rating) bool {
		return r.DepositHandling != nil && *r.DepositHandling >= 4
	})
	return float64(good) / float64(len(rs)) * 100
}
