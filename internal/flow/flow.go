package flow

import (
	"strings"
	"time"
)

// ReservationURL is the reservation system's landing page.
const ReservationURL = "https://reservation.pc.gc.ca/"

// Page is the subset of the browser session the flow drives. It is satisfied
// by *browser.Session.
type Page interface {
	Navigate(url string) error
	HTML() (string, error)
	Click(selector string) error
	ClickButton(name string, timeout time.Duration) error
	CheckBox(name string, timeout time.Duration) error
	WaitVisible(selector string, timeout time.Duration) error
	Screenshot(path string) error
	Sleep(d time.Duration) error
}

// containsAny reports whether the HTML contains any of the marker strings,
// case-insensitively.
func containsAny(html string, markers []string) bool {
	lower := strings.ToLower(html)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
