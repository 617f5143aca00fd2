// Package lands implements the land stand registry and stand verification.
package lands

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/formatting"
)

// Land is a registered land stand.
type Land struct {
	ID                       uuid.UUID        `json:"id"`
	StandNumber              string           `json:"stand_number"`
	Location                 string           `json:"location"`
	Title                    string           `json:"title"`
	OwnerName                *string          `json:"owner_name"`
	OwnerIDNumber            *string          `json:"owner_id_number"`
	IsAllocated              bool             `json:"is_allocated"`
	AllocationDate           *formatting.Date `json:"allocation_date"`
	PropertySizeSquareMeters *float64         `json:"property_size_square_meters"`
	PropertyType             *string          `json:"property_type"`
	VerificationStatus       string           `json:"verification_status"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

// CreateCommand carries the data needed to register a stand.
type CreateCommand struct {
	StandNumber              string           `json:"stand_number" validate:"required"`
	Location                 string           `json:"location" validate:"required"`
	Title                    string           `json:"title" validate:"required"`
	OwnerName                *string          `json:"owner_name"`
	OwnerIDNumber            *string          `json:"owner_id_number"`
	IsAllocated              bool             `json:"is_allocated"`
	AllocationDate           *formatting.Date `json:"allocation_date"`
	PropertySizeSquareMeters *float64         `json:"property_size_square_meters" validate:"omitempty,gt=0"`
	PropertyType             *string          `json:"property_type"`
	VerificationStatus       string           `json:"verification_status"`
}

// UpdateCommand overwrites only the fields that are present.
type UpdateCommand struct {
	StandNumber              *string          `json:"stand_number" validate:"omitempty,min=1"`
	Location                 *string          `json:"location" validate:"omitempty,min=1"`
	Title                    *string          `json:"title" validate:"omitempty,min=1"`
	OwnerName                *string          `json:"owner_name"`
	OwnerIDNumber            *string          `json:"owner_id_number"`
	IsAllocated              *bool            `json:"is_allocated"`
	AllocationDate           *formatting.Date `json:"allocation_date"`
	PropertySizeSquareMeters *float64         `json:"property_size_square_meters" validate:"omitempty,gt=0"`
	PropertyType             *string          `json:"property_type"`
	VerificationStatus       *string          `json:"verification_status"`
}

func (cmd UpdateCommand) apply(l *Land) {
	if cmd.StandNumber != nil {
		l.StandNumber = *cmd.StandNumber
	}
	if cmd.Location != nil {
		l.Location = *cmd.Location
	}
	if cmd.Title != nil {
		l.Title = *cmd.Title
	}
	if cmd.OwnerName != nil {
		l.OwnerName = cmd.OwnerName
	}
	if cmd.OwnerIDNumber != nil {
		l.OwnerIDNumber = cmd.OwnerIDNumber
	}
	if cmd.IsAllocated != nil {
		l.IsAllocated = *cmd.IsAllocated
	}
	if cmd.AllocationDate != nil {
		l.AllocationDate = cmd.AllocationDate
	}
	if cmd.PropertySizeSquareMeters != nil {
		l.PropertySizeSquareMeters = cmd.PropertySizeSquareMeters
	}
	if cmd.PropertyType != nil {
		l.PropertyType = cmd.PropertyType
	}
	if cmd.VerificationStatus != nil {
		l.VerificationStatus = *cmd.VerificationStatus
	}
}

// VerifyRequest identifies a stand by number, optionally narrowed by location.
type VerifyRequest struct {
	StandNumber string `json:"stand_number"`
	Location    string `json:"location"`
}

// VerifyResponse reports whether a stand exists and who holds it.
type VerifyResponse struct {
	StandNumber        string   `json:"stand_number"`
	Location           string   `json:"location,omitempty"`
	Exists             bool     `json:"exists"`
	IsAllocated        bool     `json:"is_allocated"`
	OwnerName          *string  `json:"owner_name,omitempty"`
	VerificationStatus string   `json:"verification_status"`
	Message            string   `json:"message"`
	ConfidenceScore    *float64 `json:"confidence_score,omitempty"`
}
