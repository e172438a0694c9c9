package util

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "calendar day", input: "2025-03-09", expected: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp truncated to utc day", input: "2025-03-09T23:30:00-02:00", expected: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: " 2024-02-29 ", expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) expected error, got %s", tt.input, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Fatalf("ParseDay(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "calendar day is midnight", input: "2025-03-09", expected: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp keeps instant", input: "2025-03-09T23:30:00-02:00", expected: time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC)},
		{name: "garbage", input: "03/09/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTime(%q) expected error, got %s", tt.input, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseTime(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) || got.Location() != time.UTC {
				t.Fatalf("ParseTime(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDayBoundaries(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 7, 4, 18, 45, 12, 99, time.FixedZone("UTC+8", 8*3600))

	if got, want := StartOfDay(ts), time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("StartOfDay = %s, want %s", got, want)
	}
	if got, want := EndOfDay(ts), time.Date(2025, 7, 4, 23, 59, 59, 999999999, time.UTC); !got.Equal(want) {
		t.Fatalf("EndOfDay = %s, want %s", got, want)
	}
	if got := FormatDay(ts); got != "2025-07-04" {
		t.Fatalf("FormatDay = %s, want 2025-07-04", got)
	}

	start, end := MonthBounds(2024, time.December)
	if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("MonthBounds = %s..%s", start, end)
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "single digit hour", input: "7:05", expected: 7*60 + 5},
		{name: "last minute", input: "23:59", expected: 23*60 + 59},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "1000", wantErr: true},
		{name: "one digit minute", input: "10:5", wantErr: true},
		{name: "negative hour", input: "-0:30", wantErr: true},
		{name: "plus sign", input: "+9:00", wantErr: true},
		{name: "signed minute", input: "9:+5", wantErr: true},
		{name: "spaces", input: " 9:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error", tt.input)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("ParseClock(%q) = %d, want %d", tt.input, got, tt.expected)
			}
			if tt.input != "7:05" && FormatClock(got) != tt.input {
				t.Fatalf("FormatClock(%d) = %s, want %s", got, FormatClock(got), tt.input)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
