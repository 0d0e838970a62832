package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shengkai/banff-booker/internal/browser"
	"github.com/shengkai/banff-booker/internal/calendar"
	"github.com/shengkai/banff-booker/internal/config"
	"github.com/shengkai/banff-booker/internal/flow"
	"github.com/shengkai/banff-booker/internal/logger"
	"github.com/shengkai/banff-booker/internal/notify"
	"github.com/shengkai/banff-booker/internal/storage"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNoBooking = 2
)

var (
	flagConfig       string
	flagDataDir      string
	flagLoginTimeout int
	flagQueueTimeout int
	flagDryRun       bool
	flagHeadless     bool
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banff-booker",
		Short: "Semi-automated campsite booking for Banff National Park",
		Long: `A semi-automated helper for booking frontcountry campsites on
Parks Canada's reservation system (reservation.pc.gc.ca).

You handle login and payment; the tool handles speed: it waits through the
virtual queue, searches your campgrounds and date variants in priority
order, picks a section and site from your preferences, and clicks through
reservation confirmation, then pauses so you can pay.`,
		RunE: runBook,
	}

	cmd.Flags().StringVarP(&flagConfig, "config", "c", "config.yaml", "Path to YAML config file")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.banff-booker", "Data directory for the journal, screenshots, and browser profile")
	cmd.Flags().IntVar(&flagLoginTimeout, "login-timeout", 15, "Minutes to wait for manual login")
	cmd.Flags().IntVar(&flagQueueTimeout, "queue-timeout", 120, "Minutes to wait in the virtual queue")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report selection decisions without clicking anything")
	cmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run Chrome headless (login must already be cached in the profile)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newAttemptsCmd())

	return cmd
}

// runBook is the main booking flow
func runBook(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	notifier := buildNotifier(cfg)

	profileDir, err := store.ProfileDir()
	if err != nil {
		return err
	}

	session, err := browser.Launch(context.Background(), browser.Options{
		ProfileDir: profileDir,
		Headless:   flagHeadless,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	ok, err := flow.WaitForLogin(session, time.Duration(flagLoginTimeout)*time.Minute)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("login not detected within %d minutes", flagLoginTimeout)
	}
	_ = notifier.Alert("Banff Booker", "Login successful")

	ok, err = flow.WaitThroughQueue(session, notifier, time.Duration(flagQueueTimeout)*time.Minute)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("still in the virtual queue after %d minutes", flagQueueTimeout)
	}

	runner := &flow.Runner{
		Page:     session,
		Config:   cfg,
		Notifier: notifier,
		Store:    store,
		DryRun:   flagDryRun,
	}

	booked, err := runner.Run()
	if err != nil {
		return err
	}
	if booked == nil {
		fmt.Fprintln(os.Stdout, "Could not book any campsite; all campgrounds and date variants exhausted.")
		fmt.Fprintln(os.Stdout, "The browser stays open for a manual attempt. Press Ctrl+C to exit.")
		holdOpen(session)
		os.Exit(ExitNoBooking)
	}

	if flagDryRun {
		fmt.Fprintf(os.Stdout, "Dry run: would book %s at %s (%s); no clicks were made.\n",
			booked.Site, booked.Campground, booked.Dates.String())
		return nil
	}

	writeStayICS(store, booked)

	fmt.Fprintln(os.Stdout, "Reservation confirmed. Review the booking and complete payment in the browser window.")
	runner.PauseBeforePayment()
	return nil
}

// writeStayICS drops a calendar file for the stay into the data directory,
// best-effort.
func writeStayICS(store *storage.Storage, booked *storage.Attempt) {
	ics := calendar.GenerateICS(calendar.Stay{
		Campground: booked.Campground,
		Site:       booked.Site,
		Dates:      booked.Dates,
	})
	path := filepath.Join(store.DataDir(), "stay.ics")
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		logger.Warn("could not write calendar file", logger.Fields{"path": path})
		return
	}
	fmt.Fprintf(os.Stdout, "Calendar file written to %s\n", path)
}

// holdOpen keeps the browser alive until the session or process ends.
func holdOpen(session *browser.Session) {
	for {
		if err := session.Sleep(5 * time.Second); err != nil {
			return
		}
	}
}

// buildNotifier assembles the alert channels the config enables.
func buildNotifier(cfg *config.Config) notify.Notifier {
	var channels []notify.Notifier
	if cfg.Notifications.Sound {
		channels = append(channels, notify.NewBell())
	}
	if cfg.Notifications.Desktop {
		channels = append(channels, notify.NewDesktop())
	}
	if len(channels) == 0 {
		return notify.NewDryRun()
	}
	return notify.NewMulti(channels...)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
