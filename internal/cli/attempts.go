package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shengkai/banff-booker/internal/storage"
)

var flagAttemptsFormat string

// newAttemptsCmd creates the attempts subcommand
func newAttemptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "Show the attempt journal from past runs",
		RunE:  runAttempts,
	}
	cmd.Flags().StringVar(&flagAttemptsFormat, "format", "text", "Output format: text or json")
	return cmd
}

func runAttempts(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagAttemptsFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagAttemptsFormat)
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	journal, err := store.LoadJournal()
	if err != nil {
		return fmt.Errorf("loading journal: %w", err)
	}

	return WriteAttempts(os.Stdout, journal, format)
}
