package vehicles_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/vehicles"
	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
)

var testPagination = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var vehicleColumns = []string{
	"id", "chassis_number", "registration_number", "make", "model", "year", "color",
	"engine_number", "current_owner_name", "current_owner_id", "purchase_date", "is_stolen",
	"has_been_tampered", "verification_status", "verification_notes", "created_at", "updated_at",
}

func newRepo(t *testing.T, src confidence.Source) (vehicles.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return vehicles.New(db, src, discard(), testPagination), mock
}

func stolenRow() *sqlmock.Rows {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(vehicleColumns).AddRow(
		"3f2504e0-4f89-11d3-9a0c-0305e82c3301", "JH4KA7561PC008269", "ABC-123", "Honda", "Civic", 2018, "Blue",
		"ENG1", "Jane Driver", "ID555", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), true,
		false, vehicles.StatusReportedStolen, nil, now, now,
	)
}

func TestVerifyNoIdentifier(t *testing.T) {
	sys, mock := newRepo(t, confidence.Fixed(0.5))

	_, err := sys.Verify(context.Background(), vehicles.VerifyRequest{ChassisNumber: "  "})
	if !errors.Is(err, vehicles.ErrNoIdentifier) {
		t.Errorf("err = %v, want ErrNoIdentifier", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database use: %v", err)
	}
}

func TestVerifyNotFound(t *testing.T) {
	sys, mock := newRepo(t, confidence.Fixed(0.5))

	mock.ExpectQuery("WHERE v.registration_number = \\$1").
		WithArgs("XYZ-999").
		WillReturnRows(sqlmock.NewRows(vehicleColumns))

	resp, err := sys.Verify(context.Background(), vehicles.VerifyRequest{RegistrationNumber: " XYZ-999 "})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if resp.Exists || resp.VerificationStatus != party.StatusNotFound {
		t.Errorf("resp = %+v, want not found", resp)
	}
	if resp.RegistrationNumber != "XYZ-999" {
		t.Errorf("registration = %q, want trimmed request value", resp.RegistrationNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestVerifyPrefersChassis(t *testing.T) {
	sys, mock := newRepo(t, confidence.Fixed(0.5))

	mock.ExpectQuery("WHERE v.chassis_number = \\$1").
		WithArgs("JH4KA7561PC008269").
		WillReturnRows(stolenRow())

	resp, err := sys.VerifyWithAI(context.Background(), vehicles.VerifyRequest{
		ChassisNumber:      "JH4KA7561PC008269",
		RegistrationNumber: "ignored",
	})
	if err != nil {
		t.Fatalf("VerifyWithAI() error = %v", err)
	}

	if !resp.Exists || !resp.IsStolen {
		t.Errorf("resp = %+v, want existing stolen vehicle", resp)
	}
	if resp.ConfidenceScore == nil || math.Abs(*resp.ConfidenceScore-0.85) > 1e-9 {
		t.Errorf("confidence = %v, want 0.85", resp.ConfidenceScore)
	}
	if !strings.HasSuffix(resp.Message, "AI analysis confirms this vehicle is stolen with 85.00% confidence.") {
		t.Errorf("message = %q", resp.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReportRequiresDetails(t *testing.T) {
	sys, mock := newRepo(t, confidence.Fixed(0.5))

	_, err := sys.ReportStolen(context.Background(), "JH4KA7561PC008269", " ")
	if !errors.Is(err, vehicles.ErrMissingDetails) {
		t.Errorf("err = %v, want ErrMissingDetails", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database use: %v", err)
	}
}

func TestReportUnknownChassis(t *testing.T) {
	sys, mock := newRepo(t, confidence.Fixed(0.5))

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("MISSING").
		WillReturnRows(sqlmock.NewRows(vehicleColumns))
	mock.ExpectRollback()

	_, err := sys.ReportTampered(context.Background(), "MISSING", "odometer rolled back")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTransferOwnershipRequiresOwner(t *testing.T) {
	sys, _ := newRepo(t, confidence.Fixed(0.5))

	tests := []struct {
		name, owner, id string
	}{
		{"missing name", "", "ID1"},
		{"missing id", "New Owner", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.TransferOwnership(context.Background(), "JH4KA7561PC008269", tt.owner, tt.id)
			if !errors.Is(err, vehicles.ErrMissingNewOwner) {
				t.Errorf("err = %v, want ErrMissingNewOwner", err)
			}
		})
	}
}
