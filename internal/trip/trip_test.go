package trip

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVariants_Count(t *testing.T) {
	tests := []struct {
		name         string
		flexibleDays int
		want         int
	}{
		{"no flexibility", 0, 1},
		{"one day", 1, 3},
		{"two days", 2, 5},
		{"five days", 5, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Request{
				CheckIn:      date(2026, time.July, 10),
				CheckOut:     date(2026, time.July, 13),
				FlexibleDays: tt.flexibleDays,
			}
			got := q.Variants()
			if len(got) != tt.want {
				t.Errorf("Variants() returned %d ranges, want %d", len(got), tt.want)
			}
			if !got[0].CheckIn.Equal(q.CheckIn) || !got[0].CheckOut.Equal(q.CheckOut) {
				t.Errorf("Variants()[0] = %v, want exact requested range", got[0])
			}
		})
	}
}

func TestVariants_Order(t *testing.T) {
	q := Request{
		CheckIn:      date(2026, time.July, 10),
		CheckOut:     date(2026, time.July, 13),
		FlexibleDays: 2,
	}

	want := []DateRange{
		{date(2026, time.July, 10), date(2026, time.July, 13)},
		{date(2026, time.July, 11), date(2026, time.July, 14)},
		{date(2026, time.July, 9), date(2026, time.July, 12)},
		{date(2026, time.July, 12), date(2026, time.July, 15)},
		{date(2026, time.July, 8), date(2026, time.July, 11)},
	}

	got := q.Variants()
	if len(got) != len(want) {
		t.Fatalf("Variants() returned %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].CheckIn.Equal(want[i].CheckIn) || !got[i].CheckOut.Equal(want[i].CheckOut) {
			t.Errorf("Variants()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVariants_PreservesStayLength(t *testing.T) {
	q := Request{
		CheckIn:      date(2026, time.August, 1),
		CheckOut:     date(2026, time.August, 5),
		FlexibleDays: 3,
	}

	for i, r := range q.Variants() {
		if r.Nights() != 4 {
			t.Errorf("Variants()[%d] has %d nights, want 4", i, r.Nights())
		}
	}
}

func TestDateRange_Nights(t *testing.T) {
	r := DateRange{CheckIn: date(2026, time.July, 10), CheckOut: date(2026, time.July, 13)}
	if got := r.Nights(); got != 3 {
		t.Errorf("Nights() = %d, want 3", got)
	}
}

func TestDateRange_Valid(t *testing.T) {
	tests := []struct {
		name  string
		r     DateRange
		valid bool
	}{
		{"normal range", DateRange{date(2026, time.July, 10), date(2026, time.July, 13)}, true},
		{"same day", DateRange{date(2026, time.July, 10), date(2026, time.July, 10)}, false},
		{"reversed", DateRange{date(2026, time.July, 13), date(2026, time.July, 10)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestFormatURLDate(t *testing.T) {
	got := FormatURLDate(date(2026, time.July, 10))
	want := "2026-07-10T00:00:00.000Z"
	if got != want {
		t.Errorf("FormatURLDate() = %q, want %q", got, want)
	}
}
