package lexicon_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/attest/internal/lexicon"
)

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"no keywords", "the flat is on the third floor", 0},
		{"empty", "", 0},
		{"balanced", "great location but terrible plumbing", 0},
		{"all positive", "Great!!! Landlord, very HELPFUL.", 1},
		{"all negative", "rude and dishonest", -1},
		{"mixed", "good good bad", 1.0 / 3.0},
		{"repeated negative", "late late late, but fair", -0.5},
		{"no stemming", "helpfully cleaned", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lexicon.Sentiment(tt.text); got != tt.want {
				t.Errorf("Sentiment(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTraits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "nothing notable", []string{}},
		{"single positive", "always clean and tidy", []string{"Clean"}},
		{"single negative", "messy kitchen", []string{"Messy"}},
		{"tie contributes nothing", "clean but dirty", []string{}},
		{"axis order", "rude tenant, kept the place clean", []string{"Clean", "Disrespectful"}},
		{"split by index", "spotless unit", []string{"Messy"}},
		{"responsiveness split by index", "timely replies", []string{"Unresponsive"}},
		{
			"every axis",
			"neat, prompt, dependable, polite and clear",
			[]string{"Clean", "Responsive", "Reliable", "Respectful", "Communicative"},
		},
		{"case insensitive", "UNRELIABLE and Inconsistent", []string{"Unreliable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexicon.Traits(tt.text)
			if got == nil {
				t.Fatal("Traits returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Traits(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	a := lexicon.Analyze("Very responsive and reliable landlord, quick to fix issues")

	// responsive, reliable positive; issues is not a keyword (no stemming)
	if a.SentimentScore != 1 {
		t.Errorf("sentiment = %v, want 1", a.SentimentScore)
	}
	want := []string{"Responsive", "Reliable"}
	if !slices.Equal(a.DetectedTraits, want) {
		t.Errorf("traits = %v, want %v", a.DetectedTraits, want)
	}
}

func TestJoinSplitTraits(t *testing.T) {
	if got := lexicon.JoinTraits([]string{"Clean", "Reliable"}); got != "Clean, Reliable" {
		t.Errorf("JoinTraits = %q", got)
	}
	if got := lexicon.JoinTraits(nil); got != "" {
		t.Errorf("JoinTraits(nil) = %q, want empty", got)
	}

	got := lexicon.SplitTraits(" Clean, ,Messy ,")
	if !slices.Equal(got, []string{"Clean", "Messy"}) {
		t.Errorf("SplitTraits = %v", got)
	}
	if got := lexicon.SplitTraits(""); got == nil || len(got) != 0 {
		t.Errorf("SplitTraits(\"\") = %v, want empty non-nil", got)
	}
}
