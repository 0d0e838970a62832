package flow

import (
	"fmt"
	"time"

	"github.com/shengkai/banff-booker/internal/config"
	"github.com/shengkai/banff-booker/internal/logger"
	"github.com/shengkai/banff-booker/internal/trip"
)

// SearchURL builds the campground search results URL. The reservation app
// carries the whole search in query parameters, which lets the flow skip the
// search form entirely.
func SearchURL(campground config.Campground, dates trip.DateRange, partySize int) string {
	return fmt.Sprintf(
		"%s%s?mapId=-2147483535&searchTabGroupId=0&bookingCategoryId=0"+
			"&startDate=%s&endDate=%s&nights=%d&partySize=%d",
		ReservationURL,
		campground.URLSlug,
		trip.FormatURLDate(dates.CheckIn),
		trip.FormatURLDate(dates.CheckOut),
		dates.Nights(),
		partySize,
	)
}

// settleDelay gives the Angular app time to render results after the
// document itself loads.
const settleDelay = 3 * time.Second

// NavigateToCampground loads the search results page for one campground and
// date range.
func NavigateToCampground(page Page, campground config.Campground, dates trip.DateRange, partySize int) error {
	url := SearchURL(campground, dates, partySize)
	logger.Info("searching campground", logger.Fields{
		"campground": campground.Name,
		"dates":      dates.String(),
		"party_size": partySize,
	})

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", campground.Name, err)
	}
	return page.Sleep(settleDelay)
}
