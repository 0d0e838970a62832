package notify

import (
	"fmt"
	"io"
	"os"
)

// DryRun prints alerts instead of delivering them
type DryRun struct {
	out io.Writer
}

// NewDryRun creates a new dry-run notifier
func NewDryRun() *DryRun {
	return &DryRun{out: os.Stdout}
}

// Alert prints the notification that would have been shown
func (n *DryRun) Alert(title, message string) error {
	fmt.Fprintf(n.out, "[notify] %s: %s\n", title, message)
	return nil
}
