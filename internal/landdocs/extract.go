package landdocs

import (
	"regexp"
	"strings"

	"github.com/JaimeStill/attest/internal/lands"
)

// sampleText stands in for OCR output until a text recognition backend is
// available.
const sampleText = "STAND NUMBER: S12345\n" +
	"OWNER: John Doe\n" +
	"ID NUMBER: ID98765432\n" +
	"LOCATION: Sample Location\n" +
	"ALLOCATION DATE: 2023-01-15"

// TextExtractor recovers the printed text of a document scan.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// SampleExtractor returns a fixed sample document regardless of input.
type SampleExtractor struct{}

func (SampleExtractor) Extract([]byte) (string, error) {
	return sampleText, nil
}

var (
	standPattern = regexp.MustCompile(`(?i)STAND\s*(?:NUMBER|NO|#)?\s*[:\-]?\s*(\w+)`)
	ownerPattern = regexp.MustCompile(`(?i)OWNER[ \t]*[:\-]?[ \t]*(\w[\w \t]*)`)
	idPattern    = regexp.MustCompile(`(?i)ID\s*(?:NUMBER)?\s*[:\-]?\s*(\w+)`)
)

// Confidence assigned to each field the parser recognizes.
const (
	standConfidence = 85
	ownerConfidence = 80
	idConfidence    = 90
)

// Extraction holds the fields recovered from a document. Nil fields were
// not found.
type Extraction struct {
	StandNumber      *string
	OwnerName        *string
	IDNumber         *string
	ConfidenceScores map[string]int
}

// Parse scans text for a stand number, owner name, and ID number, recording
// a confidence score for each field found.
func Parse(text string) Extraction {
	e := Extraction{ConfidenceScores: map[string]int{}}

	if m := standPattern.FindStringSubmatch(text); m != nil {
		e.StandNumber = &m[1]
		e.ConfidenceScores["stand_number"] = standConfidence
	}

	if m := ownerPattern.FindStringSubmatch(text); m != nil {
		owner := strings.TrimSpace(m[1])
		e.OwnerName = &owner
		e.ConfidenceScores["owner_name"] = ownerConfidence
	}

	if m := idPattern.FindStringSubmatch(text); m != nil {
		e.IDNumber = &m[1]
		e.ConfidenceScores["id_number"] = idConfidence
	}

	return e
}

// Supplement fills fields the extraction missed from caller-supplied values.
func (e *Extraction) Supplement(stand, owner, id string) {
	if e.StandNumber == nil && stand != "" {
		e.StandNumber = &stand
	}
	if e.OwnerName == nil && owner != "" {
		e.OwnerName = &owner
	}
	if e.IDNumber == nil && id != "" {
		e.IDNumber = &id
	}
}

// Empty reports whether no field was recovered.
func (e Extraction) Empty() bool {
	return e.StandNumber == nil && e.OwnerName == nil && e.IDNumber == nil
}

// Criteria converts the extraction into registry lookup criteria.
func (e Extraction) Criteria() lands.ResolveCriteria {
	return lands.ResolveCriteria{
		StandNumber:   deref(e.StandNumber),
		OwnerIDNumber: deref(e.IDNumber),
		OwnerName:     deref(e.OwnerName),
	}
}

// Outcome is the verdict of comparing an extraction with a registry record.
type Outcome struct {
	Land    *lands.Land
	Matched bool
	Status  string
	Message string
}

// Assess compares e against the resolved record. Ownership is confirmed
// when the stand number matches and either the owner name or ID number does.
func Assess(e Extraction, land *lands.Land) Outcome {
	if e.Empty() {
		return Outcome{
			Status:  StatusInsufficientData,
			Message: "Could not extract sufficient data from the document for verification",
		}
	}

	if land == nil {
		return Outcome{
			Status:  StatusNotFound,
			Message: "No matching land record found in the database.",
		}
	}

	standMatches := e.StandNumber != nil && strings.EqualFold(*e.StandNumber, land.StandNumber)
	ownerMatches := e.OwnerName != nil && land.OwnerName != nil &&
		strings.Contains(strings.ToLower(*land.OwnerName), strings.ToLower(*e.OwnerName))
	idMatches := e.IDNumber != nil && land.OwnerIDNumber != nil &&
		strings.EqualFold(*e.IDNumber, *land.OwnerIDNumber)

	if standMatches && (ownerMatches || idMatches) {
		return Outcome{
			Land:    land,
			Matched: true,
			Status:  StatusVerified,
			Message: "Document verification successful. Land ownership confirmed.",
		}
	}

	return Outcome{
		Land:    land,
		Status:  StatusMismatch,
		Message: "Document verification failed. Extracted information does not match records.",
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
