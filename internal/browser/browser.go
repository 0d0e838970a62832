// Package browser manages the headed Chrome session the booking flow drives.
//
// The session uses a persistent profile directory so the user's sign-in
// cookies survive between runs, and runs headed by default because the human
// completes login and payment in the same window the flow is driving.
package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// userAgent mirrors a stock desktop Chrome so the reservation site
	// serves the same markup it serves a human.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/122.0.0.0 Safari/537.36"

	navigateTimeout = 30 * time.Second
	clickTimeout    = 10 * time.Second
)

// Options configures the browser launch.
type Options struct {
	ProfileDir string
	Headless   bool
}

// Session is a live Chrome session.
type Session struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// Launch starts Chrome and returns a ready session. Close must be called to
// shut the browser down.
func Launch(parent context.Context, opts Options) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1280, 900),
	)
	if opts.ProfileDir != "" {
		allocOpts = append(allocOpts, chromedp.UserDataDir(opts.ProfileDir))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(ctx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("starting Chrome: %w", err)
	}

	return &Session{ctx: ctx, cancelCtx: cancelCtx, cancelAlloc: cancelAlloc}, nil
}

// Close shuts down the browser and its allocator.
func (s *Session) Close() {
	s.cancelCtx()
	s.cancelAlloc()
}

// Context exposes the underlying chromedp context for callers that need to
// run their own actions.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Navigate loads a URL and waits for the document to be ready.
func (s *Session) Navigate(url string) error {
	ctx, cancel := context.WithTimeout(s.ctx, navigateTimeout)
	defer cancel()

	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

// HTML returns the current outer HTML of the page body.
func (s *Session) HTML() (string, error) {
	ctx, cancel := context.WithTimeout(s.ctx, clickTimeout)
	defer cancel()

	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("reading page HTML: %w", err)
	}
	return html, nil
}

// Click clicks the first element matching a CSS selector.
func (s *Session) Click(selector string) error {
	ctx, cancel := context.WithTimeout(s.ctx, clickTimeout)
	defer cancel()

	if err := chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("clicking %s: %w", selector, err)
	}
	return nil
}

// ClickButton clicks the first button whose accessible label or text
// contains the given name, waiting up to the timeout for it to appear.
func (s *Session) ClickButton(name string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	sel := fmt.Sprintf(`//button[contains(@aria-label,%q) or contains(normalize-space(.),%q)]`, name, name)
	if err := chromedp.Run(ctx,
		chromedp.WaitVisible(sel, chromedp.BySearch),
		chromedp.Click(sel, chromedp.BySearch),
	); err != nil {
		return fmt.Errorf("clicking button %q: %w", name, err)
	}
	return nil
}

// CheckBox checks the checkbox whose accessible label contains the given
// name.
func (s *Session) CheckBox(name string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	sel := fmt.Sprintf(`//*[(@role="checkbox" or @type="checkbox") and contains(@aria-label,%q)]`, name)
	if err := chromedp.Run(ctx,
		chromedp.WaitVisible(sel, chromedp.BySearch),
		chromedp.Click(sel, chromedp.BySearch),
	); err != nil {
		return fmt.Errorf("checking %q: %w", name, err)
	}
	return nil
}

// WaitVisible waits for an element matching the CSS selector to become
// visible.
func (s *Session) WaitVisible(selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("waiting for %s: %w", selector, err)
	}
	return nil
}

// Screenshot captures the viewport as a PNG at the given path.
func (s *Session) Screenshot(path string) error {
	ctx, cancel := context.WithTimeout(s.ctx, clickTimeout)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return fmt.Errorf("capturing screenshot: %w", err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("writing screenshot: %w", err)
	}
	return nil
}

// Sleep pauses the flow, returning early if the session context ends.
func (s *Session) Sleep(d time.Duration) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	case <-time.After(d):
		return nil
	}
}
