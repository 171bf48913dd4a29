package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/tsng/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	plain   bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// SetOutput redirects the report and disables colors
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
	r.plain = true
}

// ReportWarning prints a one-line warning
func (r *DiagnosticReporter) ReportWarning(message string) {
	fmt.Fprintf(r.out, "%s %s\n", r.paint("!", color.FgYellow, color.Bold), message)
}

// ReportError prints err with its kind, location, suggestions and, in verbose mode, its context
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint("ERROR: Transform Failed", color.FgRed, color.Bold))
	fmt.Fprintf(r.out, "=======================\n\n")

	var te errors.TransformError
	if !stderrors.As(err, &te) {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
		return
	}

	kind := te.ErrorCode().String()
	fmt.Fprintf(r.out, "Type: %s\n", kind)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(kind)+6))

	fmt.Fprintf(r.out, "Message: %s\n\n", messageOf(err))

	if loc := te.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if r.verbose {
		r.printContext(te.Context())
		if cause := te.Unwrap(); cause != nil {
			fmt.Fprintf(r.out, "Underlying cause: %s\n\n", cause.Error())
		}
	}

	if suggestions := te.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if !r.verbose {
		fmt.Fprintf(r.out, "Run with --verbose for more detailed output\n")
	}
}

// printContext prints context entries sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	if len(context) == 0 {
		return
	}

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) paint(s string, attrs ...color.Attribute) string {
	if r.plain {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

// messageOf returns the message of the first transform error in the chain without its
// location prefix
func messageOf(err error) string {
	var base *errors.BaseError
	if stderrors.As(err, &base) {
		return base.Message
	}
	return err.Error()
}

// formatContextKey turns snake_case context keys into labels
func formatContextKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
