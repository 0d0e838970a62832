package trip

import (
	"fmt"
	"time"
)

// DateRange is a single check-in/check-out window to search for.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Nights returns the stay length in nights.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Valid reports whether the range represents at least one night.
func (r DateRange) Valid() bool {
	return r.CheckOut.After(r.CheckIn)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"))
}

// Request is a requested stay plus a flexibility window. FlexibleDays is the
// number of days the check-in may shift in either direction if the exact
// dates are unavailable.
type Request struct {
	CheckIn      time.Time
	CheckOut     time.Time
	FlexibleDays int
}

// Variants returns candidate date ranges in booking priority order: the exact
// requested range first, then for each offset 1..FlexibleDays the later range
// followed by the earlier one, all keeping the requested stay length. The
// result always has 1 + 2*FlexibleDays entries; no deduplication and no
// past-date filtering is done here.
func (q Request) Variants() []DateRange {
	stay := q.CheckOut.Sub(q.CheckIn)
	variants := make([]DateRange, 0, 1+2*q.FlexibleDays)
	variants = append(variants, DateRange{CheckIn: q.CheckIn, CheckOut: q.CheckOut})

	for offset := 1; offset <= q.FlexibleDays; offset++ {
		for _, sign := range []int{1, -1} {
			ci := q.CheckIn.AddDate(0, 0, offset*sign)
			variants = append(variants, DateRange{CheckIn: ci, CheckOut: ci.Add(stay)})
		}
	}
	return variants
}

// FormatURLDate renders a date the way the reservation site's query
// parameters expect it.
func FormatURLDate(t time.Time) string {
	return t.Format("2006-01-02") + "T00:00:00.000Z"
}
