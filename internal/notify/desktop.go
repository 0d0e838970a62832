package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Desktop shows a desktop notification using the platform's native
// mechanism. Falls back to the terminal bell when the platform command is
// unavailable or fails.
type Desktop struct {
	goos     string
	fallback Notifier
}

// NewDesktop creates a desktop notifier for the current platform
func NewDesktop() *Desktop {
	return &Desktop{goos: runtime.GOOS, fallback: NewBell()}
}

// Alert shows the notification, ringing the bell instead on failure
func (d *Desktop) Alert(title, message string) error {
	name, args, err := desktopCommand(d.goos, title, message)
	if err != nil {
		return d.fallback.Alert(title, message)
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return d.fallback.Alert(title, message)
	}
	return nil
}

// desktopCommand builds the platform notification command.
func desktopCommand(goos, title, message string) (name string, args []string, err error) {
	switch goos {
	case "linux":
		return "notify-send", []string{title, message}, nil
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		return "osascript", []string{"-e", script}, nil
	case "windows":
		script := strings.Join([]string{
			"[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] > $null;",
			"$xml = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02);",
			`$text = $xml.GetElementsByTagName("text");`,
			fmt.Sprintf("$text[0].AppendChild($xml.CreateTextNode(%q)) > $null;", title),
			fmt.Sprintf("$text[1].AppendChild($xml.CreateTextNode(%q)) > $null;", message),
			"$toast = [Windows.UI.Notifications.ToastNotification]::new($xml);",
			`[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("BanffBooker").Show($toast)`,
		}, " ")
		return "powershell", []string{"-Command", script}, nil
	default:
		return "", nil, fmt.Errorf("no desktop notification support for %s", goos)
	}
}
