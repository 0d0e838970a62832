package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shengkai/banff-booker/internal/storage"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteAttempts writes the attempt journal in the specified format
func WriteAttempts(w io.Writer, journal *storage.Journal, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(journal)
	case FormatText:
		return writeAttemptsText(w, journal)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeAttemptsText outputs the journal as human-readable text
func writeAttemptsText(w io.Writer, journal *storage.Journal) error {
	if len(journal.Attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded.")
		return nil
	}

	for _, a := range journal.Attempts {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			a.At.Format("2006-01-02 15:04"), a.Campground, a.Dates.String(), a.Outcome)
		if a.Section != "" || a.Site != "" {
			fmt.Fprintf(w, "    section: %s  site: %s\n", orDash(a.Section), orDash(a.Site))
		}
		if a.Screenshot != "" {
			fmt.Fprintf(w, "    screenshot: %s\n", a.Screenshot)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d attempts\n", len(journal.Attempts))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
