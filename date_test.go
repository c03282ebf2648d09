package books

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-01-04", want: NewDate(2026, time.January, 4)},
		{in: "2026-1-4", want: NewDate(2026, time.January, 4)},
		{in: "not a date", wantErr: true},
		{in: "2026/01/04", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	d := day("2026-01-04")
	if !d.Before(day("2026-01-05")) {
		t.Error("Before() = false for the next day")
	}
	if !d.After(day("2025-12-31")) {
		t.Error("After() = false across a year boundary")
	}
	if d.Before(d) || d.After(d) {
		t.Error("a date orders against itself")
	}
}

func TestDate_Add_Normalizes(t *testing.T) {
	if got := day("2026-01-31").Add(1); got != day("2026-02-01") {
		t.Errorf("Add(1) = %s, want 2026-02-01", got)
	}
	// Leap year.
	if got := day("2024-02-28").Add(1); got != day("2024-02-29") {
		t.Errorf("Add(1) = %s, want 2024-02-29", got)
	}
}

func TestDate_MonthLabel(t *testing.T) {
	if got := day("2026-01-04").MonthLabel(); got != "January 2026" {
		t.Errorf("MonthLabel() = %q, want %q", got, "January 2026")
	}
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(day("2026-01-04"))
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	if string(data) != `"2026-01-04"` {
		t.Errorf("Marshal() = %s, want \"2026-01-04\"", data)
	}
	var d Date
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if d != day("2026-01-04") {
		t.Errorf("round trip = %s, want 2026-01-04", d)
	}
}
