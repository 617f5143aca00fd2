// Package scoring turns a party's rental histories and ratings into a trust
// score, a classification tier, red flags, and a behavioral summary.
//
// Every function is pure. Callers pass the ratings in the direction that
// concerns the party; ratings in the other direction are ignored.
package scoring

import (
	"math"

	"github.com/JaimeStill/attest/internal/ratings"
)

// Neutral is the assumed 1 to 5 value when nothing has been rated.
const Neutral = 3.0

// Metric selects one optional 1 to 5 score from a rating.
type Metric func(ratings.Rating) *int

// Landlord metrics.
var (
	Responsiveness     Metric = func(r ratings.Rating) *int { return r.Responsiveness }
	MaintenanceQuality Metric = func(r ratings.Rating) *int { return r.MaintenanceQuality }
	Fairness           Metric = func(r ratings.Rating) *int { return r.Fairness }
	DepositHandling    Metric = func(r ratings.Rating) *int { return r.DepositHandling }
)

// MeanValue is the mean rating value. The boolean is false for an empty list.
func MeanValue(rs []ratings.Rating) (float64, bool) {
	if len(rs) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range rs {
		sum += r.RatingValue
	}
	return sum / float64(len(rs)), true
}

// MeanMetric averages the ratings that carry the metric, returning fallback
// when none do.
func MeanMetric(rs []ratings.Rating, m Metric, fallback float64) float64 {
	mean, ok := meanMetric(rs, m)
	if !ok {
		return fallback
	}
	return mean
}

func meanMetric(rs []ratings.Rating, m Metric) (float64, bool) {
	var sum float64
	var n int
	for _, r := range rs {
		if v := m(r); v != nil {
			sum += float64(*v)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanSentiment averages the analyzed reviews, defaulting to 0.
func MeanSentiment(rs []ratings.Rating) float64 {
	var sum float64
	var n int
	for _, r := range rs {
		if r.SentimentScore != nil {
			sum += *r.SentimentScore
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func ofType(rs []ratings.Rating, t ratings.Type) []ratings.Rating {
	out := make([]ratings.Rating, 0, len(rs))
	for _, r := range rs {
		if r.RatingType == t {
			out = append(out, r)
		}
	}
	return out
}

func countWhere(rs []ratings.Rating, pred func(ratings.Rating) bool) int {
	n := 0
	for _, r := range rs {
		if pred(r) {
			n++
		}
	}
	return n
}

func atMost(m Metric, limit int) func(ratings.Rating) bool {
	return func(r ratings.Rating) bool {
		v := m(r)
		return v != nil && *v <= limit
	}
}

// adjust adds delta to an integer score, truncating toward zero.
func adjust(score int, delta float64) int {
	return int(float64(score) + delta)
}

func clamp(score int) int {
	return max(0, min(100, score))
}

// oneDecimal formats v with one decimal place, rounding halves away from zero.
func oneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
