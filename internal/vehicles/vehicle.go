// Package vehicles implements the vehicle registry: CRUD over vehicle records,
// stolen and tampering reports, ownership transfers, and verification by
// chassis or registration number.
package vehicles

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/formatting"
)

// Verification statuses specific to vehicles.
const (
	StatusReportedStolen   = "REPORTED_STOLEN"
	StatusReportedTampered = "REPORTED_TAMPERED"
)

// Vehicle is a registered vehicle.
type Vehicle struct {
	ID                 uuid.UUID        `json:"id"`
	ChassisNumber      string           `json:"chassis_number"`
	RegistrationNumber *string          `json:"registration_number"`
	Make               string           `json:"make"`
	Model              string           `json:"model"`
	Year               *int             `json:"year"`
	Color              string           `json:"color"`
	EngineNumber       string           `json:"engine_number"`
	CurrentOwnerName   *string          `json:"current_owner_name"`
	CurrentOwnerID     *string          `json:"current_owner_id"`
	PurchaseDate       *formatting.Date `json:"purchase_date"`
	IsStolen           bool             `json:"is_stolen"`
	HasBeenTampered    bool             `json:"has_been_tampered"`
	VerificationStatus string           `json:"verification_status"`
	VerificationNotes  *string          `json:"verification_notes"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CreateCommand carries the data needed to register a vehicle.
// Flags default to false and the status to PENDING when omitted.
type CreateCommand struct {
	ChassisNumber      string           `json:"chassis_number" validate:"required"`
	RegistrationNumber *string          `json:"registration_number"`
	Make               string           `json:"make"`
	Model              string           `json:"model"`
	Year               *int             `json:"year" validate:"omitempty,gte=1886"`
	Color              string           `json:"color"`
	EngineNumber       string           `json:"engine_number"`
	CurrentOwnerName   *string          `json:"current_owner_name"`
	CurrentOwnerID     *string          `json:"current_owner_id"`
	PurchaseDate       *formatting.Date `json:"purchase_date"`
	IsStolen           *bool            `json:"is_stolen"`
	HasBeenTampered    *bool            `json:"has_been_tampered"`
	VerificationStatus string           `json:"verification_status"`
	VerificationNotes  *string          `json:"verification_notes"`
}

// UpdateCommand overwrites only the fields that are present.
type UpdateCommand struct {
	ChassisNumber      *string          `json:"chassis_number" validate:"omitempty,min=1"`
	RegistrationNumber *string          `json:"registration_number"`
	Make               *string          `json:"make"`
	Model              *string          `json:"model"`
	Year               *int             `json:"year" validate:"omitempty,gte=1886"`
	Color              *string          `json:"color"`
	EngineNumber       *string          `json:"engine_number"`
	CurrentOwnerName   *string          `json:"current_owner_name"`
	CurrentOwnerID     *string          `json:"current_owner_id"`
	PurchaseDate       *formatting.Date `json:"purchase_date"`
	IsStolen           *bool            `json:"is_stolen"`
	HasBeenTampered    *bool            `json:"has_been_tampered"`
	VerificationStatus *string          `json:"verification_status"`
	VerificationNotes  *string          `json:"verification_notes"`
}

// apply overwrites v with every non-nil field of cmd.
func (cmd UpdateCommand) apply(v *Vehicle) {
	if cmd.ChassisNumber != nil {
		v.ChassisNumber = *cmd.ChassisNumber
	}
	if cmd.RegistrationNumber != nil {
		v.RegistrationNumber = cmd.RegistrationNumber
	}
	if cmd.Make != nil {
		v.Make = *cmd.Make
	}
	if cmd.Model != nil {
		v.Model = *cmd.Model
	}
	if cmd.Year != nil {
		v.Year = cmd.Year
	}
	if cmd.Color != nil {
		v.Color = *cmd.Color
	}
	if cmd.EngineNumber != nil {
		v.EngineNumber = *cmd.EngineNumber
	}
	if cmd.CurrentOwnerName != nil {
		v.CurrentOwnerName = cmd.CurrentOwnerName
	}
	if cmd.CurrentOwnerID != nil {
		v.CurrentOwnerID = cmd.CurrentOwnerID
	}
	if cmd.PurchaseDate != nil {
		v.PurchaseDate = cmd.PurchaseDate
	}
	if cmd.IsStolen != nil {
		v.IsStolen = *cmd.IsStolen
	}
	if cmd.HasBeenTampered != nil {
		v.HasBeenTampered = *cmd.HasBeenTampered
	}
	if cmd.VerificationStatus != nil {
		v.VerificationStatus = *cmd.VerificationStatus
	}
	if cmd.VerificationNotes != nil {
		v.VerificationNotes = cmd.VerificationNotes
	}
}

// VerifyRequest identifies a vehicle by chassis number or, failing that,
// registration number.
type VerifyRequest struct {
	ChassisNumber      string `json:"chassis_number"`
	RegistrationNumber string `json:"registration_number"`
}

// Ownership is one entry of a vehicle's ownership history.
type Ownership struct {
	OwnerName string           `json:"owner_name"`
	OwnerID   *string          `json:"owner_id,omitempty"`
	StartDate *formatting.Date `json:"start_date,omitempty"`
	EndDate   *formatting.Date `json:"end_date,omitempty"`
}

// VerifyResponse reports whether a vehicle is registered and flags any
// stolen or tampering reports against it.
type VerifyResponse struct {
	ChassisNumber      string           `json:"chassis_number,omitempty"`
	RegistrationNumber string           `json:"registration_number,omitempty"`
	Exists             bool             `json:"exists"`
	Make               string           `json:"make,omitempty"`
	Model              string           `json:"model,omitempty"`
	Year               *int             `json:"year,omitempty"`
	CurrentOwnerName   *string          `json:"current_owner_name,omitempty"`
	PurchaseDate       *formatting.Date `json:"purchase_date,omitempty"`
	IsStolen           bool             `json:"is_stolen"`
	HasBeenTampered    bool             `json:"has_been_tampered"`
	VerificationStatus string           `json:"verification_status"`
	Message            string           `json:"message"`
	ConfidenceScore    *float64         `json:"confidence_score,omitempty"`
	OwnershipHistory   []Ownership      `json:"ownership_history,omitempty"`
}
