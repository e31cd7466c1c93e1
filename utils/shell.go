package utils

import (
	"github.com/alessio/shellescape"
)

// ShellQuote quotes s so that a POSIX shell, such as the one adb runs remote
// commands through, reads it back as a single word.
func ShellQuote(s string) string {
	return shellescape.Quote(s)
}
