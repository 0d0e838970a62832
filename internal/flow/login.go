package flow

import (
	"time"

	"github.com/shengkai/banff-booker/internal/logger"
)

// Markers that only appear once the user is signed in. The French variant
// covers accounts set to the site's other language.
var signedInMarkers = []string{
	"Sign Out",
	"My Account",
	"Déconnexion",
}

const loginPollInterval = 2 * time.Second

// SignedIn reports whether a page snapshot shows a signed-in session.
func SignedIn(html string) bool {
	return containsAny(html, signedInMarkers)
}

// WaitForLogin navigates to the reservation site and polls until the user
// has signed in manually with GCKey, or the timeout passes.
func WaitForLogin(page Page, timeout time.Duration) (bool, error) {
	if err := page.Navigate(ReservationURL); err != nil {
		return false, err
	}

	logger.Info("waiting for manual login", logger.Fields{
		"timeout_minutes": timeout.Minutes(),
	})

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		html, err := page.HTML()
		if err == nil && SignedIn(html) {
			logger.Info("login detected", nil)
			return true, nil
		}
		if err := page.Sleep(loginPollInterval); err != nil {
			return false, err
		}
	}

	logger.Warn("login wait timed out", nil)
	return false, nil
}
