// Package console formats the messages printed by the command line tool.
package console

import (
	"fmt"
	"math"
	"time"
)

// MessageType selects the color of a message.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// DecorateText wraps `s` in the color of `msgType`.
// Unknown types leave `s` untouched.
func DecorateText(s string, msgType MessageType) string {
	var c string
	switch msgType {
	case DefaultMessage:
		c = DefaultColor
	case StatusMessage:
		c = StatusColor
	case SuccessMessage:
		c = SuccessColor
	case ErrorMessage:
		c = ErrorColor
	default:
		return s
	}
	return c + s + DefaultColor
}

// FormatTime returns a human readable duration, such as "1m 3.20s".
func FormatTime(d time.Duration) string {
	secs := math.Mod(d.Seconds(), 60)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), secs)
	default:
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(d.Minutes())%60, secs)
	}
}
