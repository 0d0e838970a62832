package flow

import (
	"time"

	"github.com/shengkai/banff-booker/internal/config"
	"github.com/shengkai/banff-booker/internal/logger"
	"github.com/shengkai/banff-booker/internal/notify"
	"github.com/shengkai/banff-booker/internal/storage"
	"github.com/shengkai/banff-booker/internal/trip"
)

// Runner ties the booking steps together for a full run.
type Runner struct {
	Page     Page
	Config   *config.Config
	Notifier notify.Notifier
	Store    *storage.Storage
	DryRun   bool
}

// screenshot captures a named screenshot into the data directory,
// best-effort.
func (r *Runner) screenshot(name string) string {
	if r.Store == nil || r.Page == nil {
		return ""
	}
	// Stamped so retries across date variants do not overwrite each other.
	path := r.Store.ScreenshotPath(name + "_" + time.Now().Format("20060102_150405"))
	if err := r.Page.Screenshot(path); err != nil {
		logger.Debug("screenshot failed", logger.Fields{"name": name})
		return ""
	}
	return path
}

// record appends an attempt to the journal, best-effort.
func (r *Runner) record(attempt storage.Attempt) {
	if r.Store == nil {
		return
	}
	if err := r.Store.RecordAttempt(attempt); err != nil {
		logger.Warn("could not record attempt", logger.Fields{
			"campground": attempt.Campground,
		})
	}
}

// Run works through every campground and date variant in priority order
// until one books, then pauses for the human to pay. Returns the successful
// attempt, or nil when every option is exhausted.
func (r *Runner) Run() (*storage.Attempt, error) {
	req, err := r.Config.TripRequest()
	if err != nil {
		return nil, err
	}
	variants := req.Variants()

	for _, campground := range r.Config.Campgrounds {
		for _, dates := range variants {
			attempt, err := r.tryOne(campground, dates)
			if err != nil {
				logger.Error("attempt failed", logger.Fields{
					"campground": campground.Name,
					"dates":      dates.String(),
				}, err)
				continue
			}
			if attempt != nil {
				return attempt, nil
			}
		}
	}
	return nil, nil
}

// tryOne runs a single campground/date-range attempt. A non-nil attempt
// means the reservation reached the confirmation page.
func (r *Runner) tryOne(campground config.Campground, dates trip.DateRange) (*storage.Attempt, error) {
	attempt := storage.Attempt{
		Campground: campground.Name,
		Dates:      dates,
		At:         time.Now().UTC(),
	}

	if err := NavigateToCampground(r.Page, campground, dates, r.Config.Party.Size); err != nil {
		attempt.Outcome = storage.OutcomeNavError
		r.record(attempt)
		return nil, err
	}

	result, err := Book(r.Page, r.Config.PreferredSections, r.Config.PreferredSites, r.DryRun, func(name string) {
		attempt.Screenshot = r.screenshot(name)
	})
	attempt.Section = result.Section
	attempt.Site = result.Site
	attempt.Outcome = result.Outcome
	r.record(attempt)
	if err != nil {
		return nil, err
	}

	if result.Outcome == storage.OutcomeBooked {
		return &attempt, nil
	}
	return nil, nil
}

// PauseBeforePayment alerts the operator and holds the flow until the
// context behind the page ends (the user closes the browser or interrupts
// the process). Payment is always completed manually.
func (r *Runner) PauseBeforePayment() {
	logger.Info("paused before payment", nil)
	if r.Notifier != nil {
		_ = r.Notifier.Alert("Banff Booker", "Booking ready for payment! Review now.")
	}
	r.screenshot("pre_payment")

	for {
		if err := r.Page.Sleep(5 * time.Second); err != nil {
			return
		}
	}
}
