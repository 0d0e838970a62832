package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shengkai/banff-booker/internal/storage"
	"github.com/shengkai/banff-booker/internal/trip"
)

func sampleJournal() *storage.Journal {
	dates := trip.DateRange{
		CheckIn:  time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC),
	}
	return &storage.Journal{
		Attempts: []storage.Attempt{
			{
				Campground: "Two Jack Lakeside",
				Dates:      dates,
				Outcome:    storage.OutcomeNoSites,
				At:         time.Date(2026, time.January, 9, 8, 0, 0, 0, time.UTC),
			},
			{
				Campground: "Tunnel Mountain Village I",
				Dates:      dates,
				Section:    "A",
				Site:       "A21",
				Outcome:    storage.OutcomeBooked,
				At:         time.Date(2026, time.January, 9, 8, 1, 0, 0, time.UTC),
			},
		},
	}
}

func TestWriteAttempts_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAttempts(&buf, sampleJournal(), FormatText); err != nil {
		t.Fatalf("WriteAttempts failed: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"Two Jack Lakeside",
		"Tunnel Mountain Village I",
		"no_sites",
		"booked",
		"site: A21",
		"Total: 2 attempts",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q:\n%s", want, got)
		}
	}
}

func TestWriteAttempts_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAttempts(&buf, &storage.Journal{}, FormatText); err != nil {
		t.Fatalf("WriteAttempts failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No attempts recorded.") {
		t.Errorf("empty journal output = %q", buf.String())
	}
}

func TestWriteAttempts_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAttempts(&buf, sampleJournal(), FormatJSON); err != nil {
		t.Fatalf("WriteAttempts failed: %v", err)
	}

	var decoded storage.Journal
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Attempts) != 2 {
		t.Errorf("decoded %d attempts, want 2", len(decoded.Attempts))
	}
	if decoded.Attempts[1].Site != "A21" {
		t.Errorf("attempt site = %q, want A21", decoded.Attempts[1].Site)
	}
}

func TestWriteAttempts_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAttempts(&buf, sampleJournal(), OutputFormat("yaml")); err == nil {
		t.Error("WriteAttempts() succeeded for unknown format, want error")
	}
}
