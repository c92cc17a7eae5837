package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)

	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOutput redirects printer output. Passing nil restores stdout/stderr.
func SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	out, errOut = stdout, stderr
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(out, msg)
}

// Warning prints a warning message in yellow to stderr
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprint(errOut, msg)
}

// Error prints a formatted error with title, explanation and suggestions to
// stderr and returns a simple error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	return ErrorWithContext(title, explanation, nil, suggestions)
}

// ErrorWithContext is Error with key/value details printed between the
// explanation and the suggestions
func ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(errOut, "%s\n", explanation)
	}

	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for k := range context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(errOut, "\n")
		for _, k := range keys {
			fmt.Fprintf(errOut, "  %s: %s\n", k, context[k])
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return &ReportedError{Title: title}
}

// ReportedError is returned once an error has been printed to stderr
type ReportedError struct {
	Title string
}

func (e *ReportedError) Error() string {
	return e.Title
}

// IsReported reports whether err was already printed by this package
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
