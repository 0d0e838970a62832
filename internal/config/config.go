// Package config loads and validates the YAML configuration file that tells
// the booker which campgrounds, dates, and sites to try.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shengkai/banff-booker/internal/campground"
	"github.com/shengkai/banff-booker/internal/trip"
)

// Campground identifies one campground to search, in priority order.
type Campground struct {
	Name    string `yaml:"name"`
	URLSlug string `yaml:"url_slug"`
}

// Dates holds the requested stay and flexibility window.
type Dates struct {
	CheckIn      string `yaml:"check_in"`
	CheckOut     string `yaml:"check_out"`
	FlexibleDays int    `yaml:"flexible_days"`
}

// Party describes who is camping and with what equipment.
type Party struct {
	Size      int    `yaml:"size"`
	Equipment string `yaml:"equipment"`
}

// Notifications toggles the alert channels.
type Notifications struct {
	Sound   bool `yaml:"sound"`
	Desktop bool `yaml:"desktop"`
}

// Config is the full user configuration.
type Config struct {
	Campgrounds       []Campground  `yaml:"campgrounds"`
	Dates             Dates         `yaml:"dates"`
	Party             Party         `yaml:"party"`
	PreferredSections []string      `yaml:"preferred_sections"`
	PreferredSites    []string      `yaml:"preferred_sites"`
	Notifications     Notifications `yaml:"notifications"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{
		Party:         Party{Size: 2, Equipment: "tent"},
		Notifications: Notifications{Sound: true, Desktop: true},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Campgrounds) == 0 {
		return fmt.Errorf("at least one campground is required")
	}
	for i := range c.Campgrounds {
		cg := &c.Campgrounds[i]
		if cg.Name == "" {
			return fmt.Errorf("campground %d: name is required", i)
		}
		// Known Banff campgrounds can be listed by name alone.
		if cg.URLSlug == "" {
			info := campground.Lookup(cg.Name)
			if info == nil {
				return fmt.Errorf("campground %q: url_slug is required for campgrounds outside the built-in directory", cg.Name)
			}
			cg.URLSlug = info.URLSlug
		}
	}

	req, err := c.TripRequest()
	if err != nil {
		return err
	}
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("check_out must be after check_in")
	}
	if req.FlexibleDays < 0 {
		return fmt.Errorf("flexible_days must not be negative")
	}
	if c.Party.Size < 1 {
		return fmt.Errorf("party size must be at least 1")
	}
	return nil
}

// TripRequest converts the configured dates into a trip request.
func (c *Config) TripRequest() (trip.Request, error) {
	checkIn, err := time.Parse("2006-01-02", c.Dates.CheckIn)
	if err != nil {
		return trip.Request{}, fmt.Errorf("parsing check_in: %w", err)
	}
	checkOut, err := time.Parse("2006-01-02", c.Dates.CheckOut)
	if err != nil {
		return trip.Request{}, fmt.Errorf("parsing check_out: %w", err)
	}
	return trip.Request{
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		FlexibleDays: c.Dates.FlexibleDays,
	}, nil
}
