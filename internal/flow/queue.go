package flow

import (
	"time"

	"github.com/shengkai/banff-booker/internal/logger"
	"github.com/shengkai/banff-booker/internal/notify"
)

// Markers for the virtual waiting room the site enables on busy mornings.
var queueMarkers = []string{
	"waiting room",
	"salle d'attente",
	"Your estimated wait time",
	"you are in line",
}

const queuePollInterval = 3 * time.Second

// InQueue reports whether a page snapshot looks like the virtual waiting
// room.
func InQueue(html string) bool {
	return containsAny(html, queueMarkers)
}

// WaitThroughQueue polls until the session has passed through the virtual
// queue, alerting the operator when it happens. Returns true immediately if
// no queue is active.
func WaitThroughQueue(page Page, notifier notify.Notifier, timeout time.Duration) (bool, error) {
	html, err := page.HTML()
	if err != nil {
		return false, err
	}
	if !InQueue(html) {
		return true, nil
	}

	logger.Info("virtual waiting room detected", logger.Fields{
		"timeout_minutes": timeout.Minutes(),
	})

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if err := page.Sleep(queuePollInterval); err != nil {
			return false, err
		}
		html, err := page.HTML()
		if err != nil {
			continue
		}
		if !InQueue(html) {
			logger.Info("through the queue", nil)
			if notifier != nil {
				_ = notifier.Alert("Banff Booker", "You are through the queue!")
			}
			return true, nil
		}
	}

	logger.Warn("queue wait timed out", nil)
	return false, nil
}
