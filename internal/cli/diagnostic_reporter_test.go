package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/tsng/internal/errors"
)

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(false)
	reporter.SetOutput(&buf)

	reporter.ReportWarning("This is a test warning")
	assert.Equal(t, "! This is a test warning\n", buf.String())
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	unresolved := errors.NewUnresolvedDependencyError("controllers/Home.ts", "controller app.Home", "services.IMissing").
		WithContext("parameter", "missing")

	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains []string
		absent   []string
	}{
		{
			name: "transform error",
			err:  unresolved,
			contains: []string{
				"ERROR: Transform Failed",
				"Type: UnresolvedDependency",
				"Message: can't resolve dependency for controller app.Home with name 'services.IMissing'",
				"Location: controllers/Home.ts",
				"Run with --verbose",
			},
			absent: []string{"Context:"},
		},
		{
			name:    "verbose shows context",
			verbose: true,
			err:     unresolved,
			contains: []string{
				"Context:",
				"   Parameter: missing",
				"   Type: services.IMissing",
			},
			absent: []string{"Run with --verbose"},
		},
		{
			name:     "wrapped transform error",
			err:      fmt.Errorf("push a.ts: %w", errors.ConfigurationError("newline", "bad").WithSuggestion("Use lf")),
			contains: []string{"Type: ConfigurationError", "Message: invalid 'newline': bad", "Suggestions:", "   1. Use lf"},
		},
		{
			name:     "plain error",
			err:      stderrors.New("disk full"),
			contains: []string{"Message: disk full"},
			absent:   []string{"Type:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewDiagnosticReporter(tt.verbose)
			reporter.SetOutput(&buf)

			reporter.ReportError(tt.err)

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestFormatContextKey(t *testing.T) {
	assert.Equal(t, "Existing File", formatContextKey("existing_file"))
	assert.Equal(t, "Module", formatContextKey("module"))
}
