package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(level)
	d.SetOutput(&out, &errOut)
	return d, &out, &errOut
}

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    DiagnosticLevel
		expected string
	}{
		{"silent", DiagnosticSilent, ""},
		{"error", DiagnosticError, ""},
		{"info", DiagnosticInfo, "[WARN] w\n[INFO] i\n"},
		{"verbose", DiagnosticVerbose, "[WARN] w\n[INFO] i\n[VERBOSE] v\n"},
		{"debug", DiagnosticDebug, "[WARN] w\n[INFO] i\n[VERBOSE] v\n[DEBUG] d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out, _ := newTestDiagnostics(tt.level)
			d.Warn("w")
			d.Info("i")
			d.Verbose("v")
			d.Debug("d")
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestDiagnosticErrorsGoToErrorOutput(t *testing.T) {
	d, out, errOut := newTestDiagnostics(DiagnosticError)
	d.Error("failed %d", 1)
	assert.Empty(t, out.String())
	assert.Equal(t, "[ERROR] failed 1\n", errOut.String())

	d, _, errOut = newTestDiagnostics(DiagnosticSilent)
	d.Error("hidden")
	assert.Empty(t, errOut.String())
}

func TestDiagnosticIndentAndSummary(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)
	d.Section("tsng")
	d.Indent()
	d.List("a")
	d.Item("b")
	d.Unindent()
	d.Unindent()
	d.Summary("Done", []SummaryItem{{"Files", 2}, {"Modules", 1}})

	assert.Equal(t, "tsng\n  - a\n  ✓ b\n\nDone\n   Files: 2\n   Modules: 1\n\n", out.String())
}
