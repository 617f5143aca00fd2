package lands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/lands"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/pagination"
)

var testPagination = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

var landColumns = []string{
	"id", "stand_number", "location", "title", "owner_name", "owner_id_number",
	"is_allocated", "allocation_date", "property_size_square_meters", "property_type",
	"verification_status", "created_at", "updated_at",
}

func landRow(stand, location string) *sqlmock.Rows {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(landColumns).AddRow(
		"9b2f7f3e-2d6c-4a8e-9f3e-1c2d3e4f5a6b", stand, location, "Title Deed", "John Doe", "ID98765432",
		true, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), 450.5, "RESIDENTIAL",
		party.StatusVerified, now, now,
	)
}

func newRepo(t *testing.T) (lands.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return lands.New(db, confidence.Fixed(0.5), discard(), testPagination), mock
}

func TestResolveFallsThrough(t *testing.T) {
	sys, mock := newRepo(t)

	mock.ExpectQuery("WHERE ld.stand_number = \\$1").
		WithArgs("S999").
		WillReturnRows(sqlmock.NewRows(landColumns))
	mock.ExpectQuery("WHERE ld.owner_id_number = \\$1").
		WithArgs("ID98765432").
		WillReturnRows(landRow("S12345", "Harare"))

	l, err := sys.Resolve(context.Background(), lands.ResolveCriteria{
		StandNumber:   "S999",
		OwnerIDNumber: "ID98765432",
		OwnerName:     "John",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if l == nil || l.StandNumber != "S12345" {
		t.Fatalf("land = %+v, want S12345 matched by owner id", l)
	}
	if l.PropertySizeSquareMeters == nil || *l.PropertySizeSquareMeters != 450.5 {
		t.Errorf("size = %v", l.PropertySizeSquareMeters)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResolveNothing(t *testing.T) {
	sys, mock := newRepo(t)

	l, err := sys.Resolve(context.Background(), lands.ResolveCriteria{})
	if err != nil || l != nil {
		t.Errorf("Resolve(empty) = %v, %v; want nil, nil", l, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database use: %v", err)
	}
}

func TestVerifyRequiresStand(t *testing.T) {
	sys, _ := newRepo(t)

	_, err := sys.Verify(context.Background(), lands.VerifyRequest{StandNumber: "  ", Location: "Harare"})
	if !errors.Is(err, lands.ErrNoStandNumber) {
		t.Errorf("err = %v, want ErrNoStandNumber", err)
	}
}

func TestVerifyLocationFallback(t *testing.T) {
	tests := []struct {
		name     string
		location string
		recorded string
		exists   bool
	}{
		{"overlapping location", "harare", "Harare North", true},
		{"unrelated location", "Bulawayo", "Harare North", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, mock := newRepo(t)

			mock.ExpectQuery("WHERE ld.stand_number = \\$1 AND ld.location = \\$2").
				WithArgs("S12345", tt.location).
				WillReturnRows(sqlmock.NewRows(landColumns))
			mock.ExpectQuery("WHERE ld.stand_number = \\$1").
				WithArgs("S12345").
				WillReturnRows(landRow("S12345", tt.recorded))

			resp, err := sys.Verify(context.Background(), lands.VerifyRequest{StandNumber: "S12345", Location: tt.location})
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if resp.Exists != tt.exists {
				t.Errorf("exists = %v, want %v", resp.Exists, tt.exists)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestVerifyWithAIUnknownStand(t *testing.T) {
	sys, mock := newRepo(t)

	mock.ExpectQuery("WHERE ld.stand_number = \\$1").
		WithArgs("S404").
		WillReturnRows(sqlmock.NewRows(landColumns))

	resp, err := sys.VerifyWithAI(context.Background(), lands.VerifyRequest{StandNumber: "S404"})
	if err != nil {
		t.Fatalf("VerifyWithAI() error = %v", err)
	}
	if resp.Exists {
		t.Error("exists = true, want false")
	}
	want := "AI analysis suggests this stand may not be registered. Recommend further investigation."
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
