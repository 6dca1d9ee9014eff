package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestWeekStart(t *testing.T) {
	// 2024-05-13 is a Monday.
	monday := date(2024, time.May, 13, 0, 0)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday morning", in: date(2024, time.May, 13, 8, 30), want: monday},
		{name: "monday midnight", in: monday, want: monday},
		{name: "wednesday", in: date(2024, time.May, 15, 12, 0), want: monday},
		{name: "sunday late", in: date(2024, time.May, 19, 23, 59), want: monday},
		{name: "next monday", in: date(2024, time.May, 20, 0, 1), want: date(2024, time.May, 20, 0, 0)},
		{name: "across month boundary", in: date(2024, time.June, 1, 10, 0), want: date(2024, time.May, 27, 0, 0)},
		{name: "across year boundary", in: date(2025, time.January, 1, 10, 0), want: date(2024, time.December, 30, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("WeekStart(%v) weekday = %v, want Monday", tt.in, got.Weekday())
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{name: "same instant", a: date(2024, time.May, 15, 9, 0), b: date(2024, time.May, 15, 9, 0), want: true},
		{name: "morning and night", a: date(2024, time.May, 15, 0, 0), b: date(2024, time.May, 15, 23, 59), want: true},
		{name: "consecutive days", a: date(2024, time.May, 15, 23, 59), b: date(2024, time.May, 16, 0, 0), want: false},
		{name: "same day different month", a: date(2024, time.May, 15, 9, 0), b: date(2024, time.June, 15, 9, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameWeek(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{name: "monday and sunday", a: date(2024, time.May, 13, 0, 0), b: date(2024, time.May, 19, 23, 59), want: true},
		{name: "sunday and next monday", a: date(2024, time.May, 19, 23, 59), b: date(2024, time.May, 20, 0, 0), want: false},
		{name: "seven days apart", a: date(2024, time.May, 15, 10, 0), b: date(2024, time.May, 22, 10, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameWeek(tt.a, tt.b); got != tt.want {
				t.Errorf("SameWeek() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDayAndNextWeek(t *testing.T) {
	if !NextDay(date(2024, time.February, 28, 23, 0), date(2024, time.February, 29, 1, 0)) {
		t.Error("NextDay() = false for Feb 28 -> Feb 29 in a leap year")
	}
	if NextDay(date(2024, time.May, 15, 1, 0), date(2024, time.May, 15, 23, 0)) {
		t.Error("NextDay() = true for the same date")
	}
	if NextDay(date(2024, time.May, 15, 1, 0), date(2024, time.May, 17, 1, 0)) {
		t.Error("NextDay() = true for a two day gap")
	}

	// Sunday of one week, Monday of the next.
	if !NextWeek(date(2024, time.May, 19, 22, 0), date(2024, time.May, 20, 6, 0)) {
		t.Error("NextWeek() = false for Sunday -> following Monday")
	}
	// Monday of one week, Sunday of the next.
	if !NextWeek(date(2024, time.May, 13, 6, 0), date(2024, time.May, 26, 22, 0)) {
		t.Error("NextWeek() = false for Monday -> Sunday of the following week")
	}
	if NextWeek(date(2024, time.May, 13, 6, 0), date(2024, time.May, 27, 6, 0)) {
		t.Error("NextWeek() = true for a two week gap")
	}
}

func TestParseTimestamp(t *testing.T) {
	want := date(2024, time.May, 15, 9, 30)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "round trip", in: FormatTimestamp(want), want: want},
		{name: "naive with space", in: "2024-05-15 09:30:00.123456", want: want.Add(123456 * time.Microsecond)},
		{name: "naive iso", in: "2024-05-15T09:30:00", want: want},
		{name: "bare date", in: "2024-05-15", want: date(2024, time.May, 15, 0, 0)},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
