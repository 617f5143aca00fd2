// Package landdocs verifies uploaded land ownership documents.
// A scan is stored in blob storage, its text is extracted and parsed for a
// stand number, owner name, and owner ID number, and the parsed fields are
// checked against the land registry. Each attempt is kept as a record.
package landdocs

import (
	"time"

	"github.com/google/uuid"
)

// Verification outcomes.
const (
	StatusVerified         = "VERIFIED"
	StatusMismatch         = "MISMATCH"
	StatusNotFound         = "NOT_FOUND"
	StatusInsufficientData = "INSUFFICIENT_DATA"
)

// Document is a stored verification attempt for an uploaded land document.
type Document struct {
	ID                   uuid.UUID      `json:"id"`
	Filename             string         `json:"filename"`
	ContentType          string         `json:"content_type"`
	SizeBytes            int64          `json:"size_bytes"`
	PageCount            *int           `json:"page_count"`
	StorageKey           string         `json:"storage_key"`
	ExtractedStandNumber *string        `json:"extracted_stand_number"`
	ExtractedOwnerName   *string        `json:"extracted_owner_name"`
	ExtractedIDNumber    *string        `json:"extracted_id_number"`
	LandID               *uuid.UUID     `json:"land_id"`
	RecordStandNumber    *string        `json:"record_stand_number"`
	RecordOwnerName      *string        `json:"record_owner_name"`
	RecordIDNumber       *string        `json:"record_id_number"`
	Matched              bool           `json:"matched"`
	VerificationStatus   string         `json:"verification_status"`
	Message              string         `json:"message"`
	ConfidenceScores     map[string]int `json:"confidence_scores"`
	CreatedAt            time.Time      `json:"created_at"`
}

// VerifyCommand carries an uploaded scan plus any fields the caller already
// knows. Known fields fill gaps the extraction leaves; they never override it.
// PageCount is optional and set by the caller for PDF scans.
type VerifyCommand struct {
	Data          []byte
	Filename      string
	ContentType   string
	PageCount     *int
	StandNumber   string
	OwnerName     string
	OwnerIDNumber string
}
