// Package lexicon scores review text against fixed keyword lists.
// It produces a sentiment score in [-1, 1] and a set of behavioral trait labels.
// Matching is exact on lower-cased word tokens; there is no stemming.
package lexicon

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

var positiveWords = set(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"outstanding", "helpful", "responsive", "clean", "reliable", "honest",
	"fair", "professional", "recommend", "satisfied", "happy", "pleased",
	"impressed", "positive", "best",
)

var negativeWords = set(
	"bad", "poor", "terrible", "awful", "horrible", "disappointing",
	"unresponsive", "dirty", "messy", "unreliable", "dishonest", "unfair",
	"unprofessional", "rude", "avoid", "dissatisfied", "unhappy", "unimpressed",
	"negative", "worst", "late", "damage", "broken", "issue", "problem",
	"complaint", "delay", "neglect",
)

// Analysis is the combined result of scoring one review.
type Analysis struct {
	SentimentScore float64  `json:"sentiment_score"`
	DetectedTraits []string `json:"detected_traits"`
}

// Analyze scores text for sentiment and traits.
func Analyze(text string) Analysis {
	return Analysis{
		SentimentScore: Sentiment(text),
		DetectedTraits: Traits(text),
	}
}

// Sentiment returns (positive - negative) / (positive + negative) over the
// keyword hits in text, or exactly 0 when nothing matches.
func Sentiment(text string) float64 {
	var pos, neg int
	for _, w := range tokenize(text) {
		if _, ok := positiveWords[w]; ok {
			pos++
		} else if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	if pos+neg == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func tokenize(text string) []string {
	words := nonWord.Split(strings.ToLower(text), -1)
	tokens := words[:0]
	for _, w := range words {
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
