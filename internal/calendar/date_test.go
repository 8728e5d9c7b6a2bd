package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestNewDate_Validation(t *testing.T) {
	cases := []struct {
		name    string
		y       int
		m       time.Month
		d       int
		wantErr bool
	}{
		{"leap_day", 2024, time.February, 29, false},
		{"non_leap_feb_29", 2023, time.February, 29, true},
		{"feb_30", 2024, time.February, 30, true},
		{"day_zero", 2024, time.March, 0, true},
		{"month_13", 2024, 13, 1, true},
		{"year_zero", 0, time.January, 1, true},
		{"year_10000", 10000, time.January, 1, true},
		{"first_representable", MinYear, time.January, 1, false},
		{"last_representable", MaxYear, time.December, 31, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDate(tc.y, tc.m, tc.d)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewDate(%d, %d, %d) err = %v, wantErr %v", tc.y, tc.m, tc.d, err, tc.wantErr)
			}
		})
	}
}

func TestAddDays_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"leap_day_forward", MustDate(2024, time.February, 29), 1, MustDate(2024, time.March, 1)},
		{"march_first_back", MustDate(2024, time.March, 1), -1, MustDate(2024, time.February, 29)},
		{"jan_31_plus_week", MustDate(2024, time.January, 31), 7, MustDate(2024, time.February, 7)},
		{"new_year", MustDate(2023, time.December, 31), 1, MustDate(2024, time.January, 1)},
		{"week_back_over_year", MustDate(2024, time.January, 3), -7, MustDate(2023, time.December, 27)},
		{"non_leap_feb", MustDate(2023, time.February, 28), 1, MustDate(2023, time.March, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.from.AddDays(tc.n)
			if err != nil {
				t.Fatalf("AddDays returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("%s.AddDays(%d) = %s, want %s", tc.from, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddDays_RoundTrip(t *testing.T) {
	start := MustDate(2019, time.November, 20)
	d := start
	for i := 0; i < 2000; i++ {
		for _, n := range []int{1, 7} {
			fwd, err := d.AddDays(n)
			if err != nil {
				t.Fatalf("%s.AddDays(%d): %v", d, n, err)
			}
			back, err := fwd.AddDays(-n)
			if err != nil {
				t.Fatalf("%s.AddDays(%d): %v", fwd, -n, err)
			}
			if back != d {
				t.Fatalf("%s +%d -%d = %s, want %s", d, n, n, back, d)
			}
		}
		d, _ = d.AddDays(1)
	}
}

func TestAddDays_RangeBoundaries(t *testing.T) {
	last := MustDate(MaxYear, time.December, 31)
	got, err := last.AddDays(1)
	if !errors.Is(err, ErrDateOutOfRange) {
		t.Fatalf("AddDays past max err = %v, want ErrDateOutOfRange", err)
	}
	if got != last {
		t.Fatalf("AddDays past max returned %s, want unchanged %s", got, last)
	}

	first := MustDate(MinYear, time.January, 1)
	if _, err := first.AddDays(-7); !errors.Is(err, ErrDateOutOfRange) {
		t.Fatalf("AddDays before min err = %v, want ErrDateOutOfRange", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d != MustDate(2024, time.February, 29) {
		t.Fatalf("ParseDate = %s", d)
	}
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Fatalf("expected error for 2024-02-30")
	}
	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatalf("expected error for non-ISO input")
	}
}

func TestDateFormatting(t *testing.T) {
	d := MustDate(2024, time.March, 5)
	if got := d.Title(); got != "03/2024" {
		t.Fatalf("Title = %q, want 03/2024", got)
	}
	if got := d.String(); got != "2024-03-05" {
		t.Fatalf("String = %q, want 2024-03-05", got)
	}
}

func TestToday_UsesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })

	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	if got := Today(now); got != MustDate(2024, time.April, 1) {
		t.Fatalf("Today = %s, want 2024-04-01", got)
	}
}

func TestIsWeekend(t *testing.T) {
	if !MustDate(2024, time.March, 2).IsWeekend() {
		t.Fatalf("2024-03-02 (Saturday) should be weekend")
	}
	if !MustDate(2024, time.March, 3).IsWeekend() {
		t.Fatalf("2024-03-03 (Sunday) should be weekend")
	}
	if MustDate(2024, time.March, 1).IsWeekend() {
		t.Fatalf("2024-03-01 (Friday) should not be weekend")
	}
}
