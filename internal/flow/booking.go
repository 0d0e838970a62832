package flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/shengkai/banff-booker/internal/logger"
	"github.com/shengkai/banff-booker/internal/scraper"
	"github.com/shengkai/banff-booker/internal/selection"
	"github.com/shengkai/banff-booker/internal/storage"
)

const (
	reserveTimeout     = 10 * time.Second
	acknowledgeTimeout = 4 * time.Second
	detailsTimeout     = 10 * time.Second
	panelSettleDelay   = 1 * time.Second
)

// BookResult reports what the booking step selected and how far it got.
type BookResult struct {
	Section string
	Site    string
	Outcome storage.Outcome
}

// Book runs section and site selection on the current results page and, when
// not a dry run, clicks through the reservation confirmation. Screenshots
// are captured on each failure path; shot may be nil to disable them.
func Book(page Page, preferredSections, preferredSites []string, dryRun bool, shot func(name string)) (BookResult, error) {
	if shot == nil {
		shot = func(string) {}
	}
	result := BookResult{}

	html, err := page.HTML()
	if err != nil {
		return result, err
	}

	// Details buttons only appear at site level; without them the page is
	// still showing sections.
	if !scraper.AtSiteLevel(strings.NewReader(html)) {
		sections, err := scraper.ParseSections(strings.NewReader(html))
		if err != nil {
			shot("sections_error")
			result.Outcome = storage.OutcomeNoSections
			return result, fmt.Errorf("listing sections: %w", err)
		}

		section, ok := selection.ChooseSection(sections, preferredSections, preferredSites)
		if !ok {
			logger.Warn("no available sections", nil)
			shot("no_sections")
			result.Outcome = storage.OutcomeNoSections
			return result, nil
		}
		result.Section = section.Name
		logger.Info("section chosen", logger.Fields{
			"section":    section.Name,
			"candidates": len(sections),
		})

		if dryRun {
			result.Outcome = storage.OutcomeBooked
			return result, nil
		}

		if err := page.Click(section.Selector); err != nil {
			shot("section_click_error")
			result.Outcome = storage.OutcomeNoSections
			return result, fmt.Errorf("expanding section %s: %w", section.Name, err)
		}

		// Some campgrounds skip straight to labelled site buttons, so a
		// missing Details affordance is not fatal.
		if err := page.WaitVisible(".btn-view-details", detailsTimeout); err != nil {
			logger.Debug("no details buttons after section click", nil)
		}
		if err := page.Sleep(panelSettleDelay); err != nil {
			return result, err
		}

		if html, err = page.HTML(); err != nil {
			return result, err
		}
	}

	sites, err := scraper.ParseSites(strings.NewReader(html))
	if err != nil {
		shot("sites_error")
		result.Outcome = storage.OutcomeNoSites
		return result, fmt.Errorf("listing sites: %w", err)
	}

	site, ok := selection.ChooseSite(sites, preferredSites)
	if !ok {
		logger.Warn("no available sites", logger.Fields{"section": result.Section})
		shot("no_sites")
		result.Outcome = storage.OutcomeNoSites
		return result, nil
	}
	result.Site = site.Name
	logger.Info("site chosen", logger.Fields{
		"site":       site.Name,
		"candidates": len(sites),
	})

	if dryRun {
		result.Outcome = storage.OutcomeBooked
		return result, nil
	}

	if err := page.Click(site.Selector); err != nil {
		shot("site_click_error")
		result.Outcome = storage.OutcomeNoSites
		return result, fmt.Errorf("selecting site %s: %w", site.Name, err)
	}

	if err := reserve(page, shot); err != nil {
		result.Outcome = storage.OutcomeReserveErr
		return result, err
	}

	result.Outcome = storage.OutcomeBooked
	return result, nil
}

// reserve clicks Reserve, handles the optional Acknowledge dialog, checks
// the confirmation checkbox, and confirms the reservation details.
func reserve(page Page, shot func(name string)) error {
	if err := page.ClickButton("Reserve", reserveTimeout); err != nil {
		shot("reserve_error")
		return err
	}
	if err := page.Sleep(panelSettleDelay); err != nil {
		return err
	}

	// Only shown for some campground notices.
	if err := page.ClickButton("Acknowledge", acknowledgeTimeout); err != nil {
		logger.Debug("no acknowledge dialog", nil)
	} else if err := page.Sleep(panelSettleDelay); err != nil {
		return err
	}

	if err := page.CheckBox("All reservation details are", reserveTimeout); err != nil {
		shot("reserve_error")
		return fmt.Errorf("acknowledging reservation details: %w", err)
	}

	if err := page.ClickButton("Confirm reservation details", reserveTimeout); err != nil {
		shot("reserve_error")
		return fmt.Errorf("confirming reservation details: %w", err)
	}

	logger.Info("reservation details confirmed", nil)
	return nil
}
