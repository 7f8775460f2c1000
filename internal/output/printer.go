package output

import (
	"os"

	"github.com/fatih/color"
)

// Successf prints a green confirmation line.
func Successf(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(os.Stdout, "✓ "+format+"\n", args...)
}

// Warnf prints a yellow warning line to stderr.
func Warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// Infof prints a cyan informational line.
func Infof(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(os.Stdout, format+"\n", args...)
}

// Titlef prints a bold section title.
func Titlef(format string, args ...interface{}) {
	color.New(color.Bold).Fprintf(os.Stdout, format+"\n", args...)
}
