package lexicon

import "strings"

// axis is one trait dimension. Keywords before the midpoint of the list
// (len/2, truncated) count toward the positive label and the rest toward
// the negative label.
type axis struct {
	keywords []string
	positive string
	negative string
}

var axes = []axis{
	{
		keywords: []string{"clean", "tidy", "neat", "organized", "spotless", "dirty", "messy", "unclean"},
		positive: "Clean",
		negative: "Messy",
	},
	{
		keywords: []string{"responsive", "quick", "prompt", "timely", "slow", "unresponsive", "delayed"},
		positive: "Responsive",
		negative: "Unresponsive",
	},
	{
		keywords: []string{"reliable", "dependable", "consistent", "unreliable", "inconsistent"},
		positive: "Reliable",
		negative: "Unreliable",
	},
	{
		keywords: []string{"respectful", "considerate", "polite", "disrespectful", "rude", "inconsiderate"},
		positive: "Respectful",
		negative: "Disrespectful",
	},
	{
		keywords: []string{"communicative", "clear", "informative", "uncommunicative", "unclear"},
		positive: "Communicative",
		negative: "Uncommunicative",
	},
}

// Traits returns the trait labels detected in text, in axis order.
// An axis contributes only when one side strictly outnumbers the other.
func Traits(text string) []string {
	tokens := tokenize(text)
	traits := make([]string, 0)

	for _, a := range axes {
		pos, neg := a.count(tokens)
		switch {
		case pos > neg && pos > 0:
			traits = append(traits, a.positive)
		case neg > pos && neg > 0:
			traits = append(traits, a.negative)
		}
	}

	return traits
}

func (a axis) count(tokens []string) (pos, neg int) {
	mid := len(a.keywords) / 2
	for _, t := range tokens {
		for i, k := range a.keywords {
			if t != k {
				continue
			}
			if i < mid {
				pos++
			} else {
				neg++
			}
		}
	}
	return pos, neg
}

// JoinTraits renders traits as a comma-separated display string.
func JoinTraits(traits []string) string {
	return strings.Join(traits, ", ")
}

// SplitTraits parses a comma-separated trait string, trimming blanks.
func SplitTraits(s string) []string {
	traits := make([]string, 0)
	for part := range strings.SplitSeq(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			traits = append(traits, t)
		}
	}
	return traits
}
