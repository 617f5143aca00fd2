package formatting_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/JaimeStill/attest/pkg/formatting"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"calendar date", "2024-03-15", "2024-03-15", false},
		{"surrounding whitespace", " 2024-03-15 ", "2024-03-15", false},
		{"rfc3339 truncated", "2024-03-15T22:10:00Z", "2024-03-15", false},
		{"garbage", "15/03/2024", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := formatting.NewDate(time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC))

	if got := d.String(); got != "2024-02-29" {
		t.Errorf("NewDate = %s, want 2024-02-29", got)
	}
	if got := d.AddDays(-1).String(); got != "2024-02-28" {
		t.Errorf("AddDays(-1) = %s, want 2024-02-28", got)
	}
	if got := d.AddYears(-2).String(); got != "2022-03-01" {
		t.Errorf("AddYears(-2) = %s, want 2022-03-01", got)
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Start formatting.Date  `json:"start"`
		End   *formatting.Date `json:"end"`
	}

	t.Run("marshals as calendar date", func(t *testing.T) {
		d := formatting.NewDate(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC))
		data, err := json.Marshal(payload{Start: d})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"start":"2023-07-01","end":null}`
		if string(data) != want {
			t.Errorf("json = %s, want %s", data, want)
		}
	})

	t.Run("unmarshals null end", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"start":"2023-07-01","end":null}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Start.String() != "2023-07-01" {
			t.Errorf("start = %s, want 2023-07-01", p.Start)
		}
		if p.End != nil {
			t.Errorf("end = %v, want nil", p.End)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"start":"July 1"}`), &p); err == nil {
			t.Error("expected error for malformed date")
		}
	})
}

func TestDateScan(t *testing.T) {
	var d formatting.Date

	if err := d.Scan(time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2021-12-31" {
		t.Errorf("scanned = %s, want 2021-12-31", d)
	}

	if err := d.Scan("2020-01-02"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2020-01-02" {
		t.Errorf("scanned = %s, want 2020-01-02", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
