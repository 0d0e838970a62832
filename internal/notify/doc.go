// Package notify alerts the human operator at the moments that need them:
// login detected, through the virtual queue, booking ready for payment.
//
// Alerts are best-effort. The desktop channel shells out to the platform's
// notification command (notify-send, osascript, or a PowerShell toast) and
// degrades to the terminal bell when that fails; nothing in the booking flow
// ever stops because a notification could not be delivered.
package notify
