package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color definitions.
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

// Success prints a success message in green.
func Success(w io.Writer, format string, a ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", a...)
}

// Error prints an error message in red.
func Error(w io.Writer, format string, a ...any) {
	errorColor.Fprintf(w, "✗ "+format+"\n", a...)
}

// Warning prints a warning message in yellow.
func Warning(w io.Writer, format string, a ...any) {
	warningColor.Fprintf(w, "⚠ "+format+"\n", a...)
}

// Info prints an info message in cyan.
func Info(w io.Writer, format string, a ...any) {
	infoColor.Fprintf(w, "ℹ "+format+"\n", a...)
}

// Bold formats text in bold.
func Bold(format string, a ...any) string {
	return boldColor.Sprintf(format, a...)
}

// isYes reports whether a confirmation answer means yes.
func isYes(response string) bool {
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	}
	return false
}

// PrintKeyValue prints a key-value pair with the key highlighted.
func PrintKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s: %s\n", boldColor.Sprint(key), value)
}
