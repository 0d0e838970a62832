package notify

import (
	"fmt"
	"os"
)

// Notifier defines the interface for alerting the operator
type Notifier interface {
	// Alert delivers a single notification
	Alert(title, message string) error
}

// Bell writes the terminal bell character, repeated so the alert is hard to
// miss in a backgrounded terminal.
type Bell struct {
	Times int
}

// NewBell creates a bell notifier with a sensible repeat count
func NewBell() *Bell {
	return &Bell{Times: 3}
}

// Alert rings the terminal bell
func (b *Bell) Alert(title, message string) error {
	times := b.Times
	if times < 1 {
		times = 1
	}
	for i := 0; i < times; i++ {
		fmt.Fprint(os.Stdout, "\a")
	}
	return nil
}

// Multi fans an alert out to several notifiers. Delivery failures on one
// channel do not stop the others; the first error is returned.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a notifier that delivers to all the given notifiers
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// Alert delivers the notification on every channel
func (m *Multi) Alert(title, message string) error {
	var firstErr error
	for _, n := range m.notifiers {
		if err := n.Alert(title, message); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
