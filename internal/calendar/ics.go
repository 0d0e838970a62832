package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/shengkai/banff-booker/internal/trip"
)

// Stay describes a booked (or about-to-be-booked) campsite stay.
type Stay struct {
	Campground string
	Site       string
	Dates      trip.DateRange
}

// GenerateICS generates an iCalendar (.ics) all-day event covering the stay,
// so the trip can be dropped straight into the camper's calendar.
func GenerateICS(stay Stay) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Banff Booker//banff-booker//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@banff-booker\r\n", stayUID(stay)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", time.Now().UTC().Format("20060102T150405Z")))

	// All-day event: DTEND is exclusive, which matches check-out day.
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(stay.Dates.CheckIn)))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(stay.Dates.CheckOut)))

	summary := fmt.Sprintf("Camping - %s", stay.Campground)
	if stay.Site != "" {
		summary = fmt.Sprintf("%s (site %s)", summary, stay.Site)
	}
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("%d night(s) at %s\nBooked via reservation.pc.gc.ca",
		stay.Dates.Nights(), stay.Campground)
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(stay.Campground+", Banff National Park")))
	ics.WriteString("URL:https://reservation.pc.gc.ca/\r\n")
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// stayUID builds a stable identifier from the stay itself.
func stayUID(stay Stay) string {
	slug := strings.ToLower(strings.ReplaceAll(stay.Campground, " ", "-"))
	return fmt.Sprintf("%s-%s-%s", slug, stay.Site, stay.Dates.CheckIn.Format("20060102"))
}

// formatICSDate formats a date for an all-day iCalendar value
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
