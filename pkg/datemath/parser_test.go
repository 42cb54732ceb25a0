package datemath_test

import (
	"testing"
	"time"

	"dayplanner/pkg/datemath"
)

func TestValidID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2025-01-31", true},
		{"2025-02-30", true}, // shape only, calendar validity is not checked
		{"2025-1-31", false},
		{"25-01-31", false},
		{"2025/01/31", false},
		{"tomorrow", false},
		{"", false},
		{"2025-01-31x", false},
	}

	for _, tc := range cases {
		if got := datemath.ValidID(tc.in); got != tc.want {
			t.Errorf("ValidID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"17:60", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := datemath.ValidTimeOfDay(tc.in); got != tc.want {
			t.Errorf("ValidTimeOfDay(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTodayTomorrow(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	base := time.Date(2025, 12, 31, 22, 15, 0, 0, time.UTC)

	if got := p.Today(base); got != "2025-12-31" {
		t.Errorf("Today = %q, want 2025-12-31", got)
	}
	if got := p.Tomorrow(base); got != "2026-01-01" {
		t.Errorf("Tomorrow = %q, want 2026-01-01", got)
	}
}

func TestTodayCrossesTimezone(t *testing.T) {
	p, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 23:00 UTC on the 1st is already the 2nd in Tokyo.
	base := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	if got := p.Today(base); got != "2025-06-02" {
		t.Errorf("Today in Tokyo = %q, want 2025-06-02", got)
	}
}

func TestNextDay(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	t.Run("plain day", func(t *testing.T) {
		got, err := p.NextDay("2025-03-14")
		if err != nil {
			t.Fatalf("NextDay: %v", err)
		}
		if got != "2025-03-15" {
			t.Errorf("NextDay = %q, want 2025-03-15", got)
		}
	})

	t.Run("month rollover", func(t *testing.T) {
		got, err := p.NextDay("2025-01-31")
		if err != nil {
			t.Fatalf("NextDay: %v", err)
		}
		if got != "2025-02-01" {
			t.Errorf("NextDay = %q, want 2025-02-01", got)
		}
	})

	t.Run("non-calendar date errors", func(t *testing.T) {
		if _, err := p.NextDay("2025-02-30"); err == nil {
			t.Error("expected error for 2025-02-30")
		}
	})
}

func TestAt(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	got, err := p.At("2025-05-01", "17:30")
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	want := time.Date(2025, 5, 1, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At = %v, want %v", got, want)
	}

	if _, err := p.At("2025-05-01", "25:00"); err == nil {
		t.Error("expected error for out-of-range clock time")
	}
}

func TestNewParserInvalidTimezone(t *testing.T) {
	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
