package landdocs

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "land_documents", "ldoc").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("extracted_stand_number", "ExtractedStandNumber").
	Project("extracted_owner_name", "ExtractedOwnerName").
	Project("extracted_id_number", "ExtractedIDNumber").
	Project("land_id", "LandID").
	Project("record_stand_number", "RecordStandNumber").
	Project("record_owner_name", "RecordOwnerName").
	Project("record_id_number", "RecordIDNumber").
	Project("matched", "Matched").
	Project("verification_status", "VerificationStatus").
	Project("message", "Message").
	Project("confidence_scores", "ConfidenceScores").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

const returning = `RETURNING id, filename, content_type, size_bytes, page_count, storage_key,
		extracted_stand_number, extracted_owner_name, extracted_id_number, land_id,
		record_stand_number, record_owner_name, record_id_number, matched,
		verification_status, message, confidence_scores, created_at`

// Filters contains optional filtering criteria for land document queries.
// Filename and StandNumber use case-insensitive contains matching.
type Filters struct {
	VerificationStatus *string `json:"verification_status,omitempty"`
	Matched            *bool   `json:"matched,omitempty"`
	Filename           *string `json:"filename,omitempty"`
	StandNumber        *string `json:"stand_number,omitempty"`
	ContentType        *string `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("VerificationStatus", f.VerificationStatus).
		WhereEquals("Matched", f.Matched).
		WhereContains("Filename", f.Filename).
		WhereContains("ExtractedStandNumber", f.StandNumber).
		WhereEquals("ContentType", f.ContentType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("verification_status"); s != "" {
		f.VerificationStatus = &s
	}

	if m := values.Get("matched"); m != "" {
		if v, err := strconv.ParseBool(m); err == nil {
			f.Matched = &v
		}
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if sn := values.Get("stand_number"); sn != "" {
		f.StandNumber = &sn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	var scoresRaw []byte

	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&d.ExtractedStandNumber,
		&d.ExtractedOwnerName,
		&d.ExtractedIDNumber,
		&d.LandID,
		&d.RecordStandNumber,
		&d.RecordOwnerName,
		&d.RecordIDNumber,
		&d.Matched,
		&d.VerificationStatus,
		&d.Message,
		&scoresRaw,
		&d.CreatedAt,
	)
	if err != nil {
		return d, err
	}

	if d.ConfidenceScores, err = repository.DecodeMap[int](scoresRaw); err != nil {
		return d, fmt.Errorf("unmarshal confidence_scores: %w", err)
	}

	return d, nil
}
