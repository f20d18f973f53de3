package listing

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	t.Run("needs both bounds", func(t *testing.T) {
		for _, tc := range [][2]string{{"", ""}, {"2026-01-01", ""}, {"", "2026-01-31"}} {
			r, err := ParseDateRange(tc[0], tc[1], loc)
			if err != nil {
				t.Fatalf("ParseDateRange(%q, %q): %v", tc[0], tc[1], err)
			}
			if r != nil {
				t.Errorf("ParseDateRange(%q, %q) = %+v, want nil", tc[0], tc[1], r)
			}
		}
	})

	t.Run("whole days in location", func(t *testing.T) {
		r, err := ParseDateRange("2026-01-01", "2026-01-31", loc)
		if err != nil {
			t.Fatal(err)
		}
		wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, loc)
		wantUntil := time.Date(2026, 2, 1, 0, 0, 0, 0, loc)
		if !r.From.Equal(wantFrom) || !r.Until.Equal(wantUntil) {
			t.Errorf("got [%v, %v), want [%v, %v)", r.From, r.Until, wantFrom, wantUntil)
		}
		if !inRange(r, time.Date(2026, 1, 31, 23, 59, 59, 0, loc)) {
			t.Error("last second of end day should be included")
		}
		if inRange(r, wantUntil) {
			t.Error("midnight after end day should be excluded")
		}
		if !inRange(r, wantFrom) {
			t.Error("start instant should be included")
		}
	})

	t.Run("single day", func(t *testing.T) {
		r, err := ParseDateRange("2026-03-10", "2026-03-10", nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := r.Until.Sub(r.From); got != 24*time.Hour {
			t.Errorf("span = %v, want 24h", got)
		}
		if r.Empty() {
			t.Error("single day range should not be empty")
		}
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		r, err := ParseDateRange("2026-03-10", "2026-03-01", nil)
		if err != nil {
			t.Fatal(err)
		}
		if !r.Empty() {
			t.Error("expected empty range")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		cases := [][2]string{
			{"2026-13-01", "2026-01-31"},
			{"2026-01-01", "31/01/2026"},
			{"yesterday", "today"},
			{"2026-1-1", "2026-01-31"},
		}
		for _, tc := range cases {
			_, err := ParseDateRange(tc[0], tc[1], loc)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDateRange(%q, %q) error = %v, want ErrInvalidDate", tc[0], tc[1], err)
			}
		}
	})
}
