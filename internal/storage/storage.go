package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shengkai/banff-booker/internal/trip"
)

// Outcome classifies how a single search attempt ended.
type Outcome string

const (
	OutcomeNoSections Outcome = "no_sections"
	OutcomeNoSites    Outcome = "no_sites"
	OutcomeNavError   Outcome = "nav_error"
	OutcomeReserveErr Outcome = "reserve_error"
	OutcomeBooked     Outcome = "booked"
)

// Attempt records one campground/date-range search attempt.
type Attempt struct {
	Campground string         `json:"campground"`
	Dates      trip.DateRange `json:"dates"`
	Section    string         `json:"section,omitempty"`
	Site       string         `json:"site,omitempty"`
	Outcome    Outcome        `json:"outcome"`
	Screenshot string         `json:"screenshot,omitempty"`
	At         time.Time      `json:"at"`
}

// Journal is the on-disk record of attempts from past runs.
type Journal struct {
	Attempts  []Attempt `json:"attempts"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// Storage handles persistence of the attempt journal and screenshots.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "screenshots"), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// DataDir returns the resolved data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

// ScreenshotPath returns the path a named screenshot should be written to.
func (s *Storage) ScreenshotPath(name string) string {
	return filepath.Join(s.dataDir, "screenshots", name+".png")
}

// ProfileDir returns the browser profile directory, creating it if needed.
func (s *Storage) ProfileDir() (string, error) {
	dir := filepath.Join(s.dataDir, "browser-profile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating profile directory: %w", err)
	}
	return dir, nil
}

func (s *Storage) journalPath() string {
	return filepath.Join(s.dataDir, "attempts.json")
}

// LoadJournal loads the attempt journal from disk. A missing file returns an
// empty journal, not an error.
func (s *Storage) LoadJournal() (*Journal, error) {
	data, err := os.ReadFile(s.journalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Journal{}, nil
		}
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	var journal Journal
	if err := json.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("parsing journal: %w", err)
	}
	return &journal, nil
}

// SaveJournal saves the journal to disk
func (s *Storage) SaveJournal(journal *Journal) error {
	journal.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(journal, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}

	if err := os.WriteFile(s.journalPath(), data, 0644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}

// RecordAttempt appends an attempt to the journal and saves it.
func (s *Storage) RecordAttempt(attempt Attempt) error {
	journal, err := s.LoadJournal()
	if err != nil {
		return err
	}
	if attempt.At.IsZero() {
		attempt.At = time.Now().UTC()
	}
	journal.Attempts = append(journal.Attempts, attempt)
	return s.SaveJournal(journal)
}
