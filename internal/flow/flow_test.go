package flow

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shengkai/banff-booker/internal/config"
	"github.com/shengkai/banff-booker/internal/storage"
	"github.com/shengkai/banff-booker/internal/trip"
)

// fakePage is a scripted Page: HTML() returns the queued snapshots in order
// (the last one repeats) and every interaction is recorded.
type fakePage struct {
	htmls     []string
	htmlIdx   int
	navigated []string
	clicks    []string
	buttons   []string
	checks    []string
	waits     []string
	shots     []string
}

func (f *fakePage) Navigate(url string) error { f.navigated = append(f.navigated, url); return nil }

func (f *fakePage) HTML() (string, error) {
	if len(f.htmls) == 0 {
		return "", nil
	}
	html := f.htmls[f.htmlIdx]
	if f.htmlIdx < len(f.htmls)-1 {
		f.htmlIdx++
	}
	return html, nil
}

func (f *fakePage) Click(selector string) error { f.clicks = append(f.clicks, selector); return nil }

func (f *fakePage) ClickButton(name string, timeout time.Duration) error {
	f.buttons = append(f.buttons, name)
	return nil
}

func (f *fakePage) CheckBox(name string, timeout time.Duration) error {
	f.checks = append(f.checks, name)
	return nil
}

func (f *fakePage) WaitVisible(selector string, timeout time.Duration) error {
	f.waits = append(f.waits, selector)
	return nil
}

func (f *fakePage) Screenshot(path string) error { f.shots = append(f.shots, path); return nil }

func (f *fakePage) Sleep(d time.Duration) error { return nil }

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestSignedIn(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"sign out link", `<a href="/logout">Sign Out</a>`, true},
		{"my account link", `<a>My Account</a>`, true},
		{"french sign out", `<a>Déconnexion</a>`, true},
		{"case insensitive", `<a>SIGN OUT</a>`, true},
		{"signed out page", `<a href="/login">Sign In</a>`, false},
		{"empty page", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedIn(tt.html); got != tt.want {
				t.Errorf("SignedIn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInQueue(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"waiting room banner", `<h1>You are now in the waiting room</h1>`, true},
		{"french waiting room", `<h1>Salle d'attente</h1>`, true},
		{"wait time estimate", `<p>Your estimated wait time is 12 minutes</p>`, true},
		{"normal page", `<h1>Find a campsite</h1>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InQueue(tt.html); got != tt.want {
				t.Errorf("InQueue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchURL(t *testing.T) {
	campground := config.Campground{Name: "Two Jack Lakeside", URLSlug: "TwoJackLakeside"}
	dates := trip.DateRange{
		CheckIn:  time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC),
	}

	got := SearchURL(campground, dates, 4)

	for _, want := range []string{
		"https://reservation.pc.gc.ca/TwoJackLakeside?",
		"startDate=2026-07-10T00:00:00.000Z",
		"endDate=2026-07-13T00:00:00.000Z",
		"nights=3",
		"partySize=4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SearchURL() = %q, missing %q", got, want)
		}
	}
}

func TestBook_DryRunChoosesSection(t *testing.T) {
	page := &fakePage{htmls: []string{loadFixture(t, "sections_page.html")}}

	result, err := Book(page, []string{"Loops 22"}, nil, true, nil)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if result.Section != "Loops 22-27" {
		t.Errorf("Section = %q, want %q", result.Section, "Loops 22-27")
	}
	if len(page.clicks) != 0 || len(page.buttons) != 0 {
		t.Errorf("dry run must not click: clicks=%v buttons=%v", page.clicks, page.buttons)
	}
}

func TestBook_SiteLevelReserves(t *testing.T) {
	page := &fakePage{htmls: []string{loadFixture(t, "sites_panels.html")}}

	result, err := Book(page, nil, []string{"A55"}, false, nil)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if result.Site != "A55" {
		t.Errorf("Site = %q, want %q", result.Site, "A55")
	}
	if result.Outcome != storage.OutcomeBooked {
		t.Errorf("Outcome = %q, want booked", result.Outcome)
	}

	if len(page.clicks) != 1 || !strings.Contains(page.clicks[0], `data-resource="A55"`) {
		t.Errorf("expected one click on the A55 panel header, got %v", page.clicks)
	}
	wantButtons := []string{"Reserve", "Acknowledge", "Confirm reservation details"}
	if len(page.buttons) != len(wantButtons) {
		t.Fatalf("buttons clicked = %v, want %v", page.buttons, wantButtons)
	}
	for i, want := range wantButtons {
		if page.buttons[i] != want {
			t.Errorf("buttons[%d] = %q, want %q", i, page.buttons[i], want)
		}
	}
	if len(page.checks) != 1 || !strings.Contains(page.checks[0], "All reservation details are") {
		t.Errorf("checkbox interactions = %v", page.checks)
	}
}

func TestBook_SectionThenSites(t *testing.T) {
	page := &fakePage{htmls: []string{
		loadFixture(t, "sections_page.html"),
		loadFixture(t, "sites_panels.html"),
	}}

	result, err := Book(page, nil, []string{"A50"}, false, nil)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	// "A50" derives section "A", then matches site A50 after expansion.
	if result.Section != "A" {
		t.Errorf("Section = %q, want %q", result.Section, "A")
	}
	if result.Site != "A50" {
		t.Errorf("Site = %q, want %q", result.Site, "A50")
	}
	if len(page.clicks) != 2 {
		t.Errorf("expected section click then site click, got %v", page.clicks)
	}
}

func TestBook_NoSections(t *testing.T) {
	shots := []string{}
	page := &fakePage{htmls: []string{"<html><body></body></html>"}}

	result, err := Book(page, nil, nil, false, func(name string) { shots = append(shots, name) })
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if result.Outcome != storage.OutcomeNoSections {
		t.Errorf("Outcome = %q, want no_sections", result.Outcome)
	}
	if len(shots) != 1 || shots[0] != "no_sections" {
		t.Errorf("screenshots = %v, want [no_sections]", shots)
	}
}
