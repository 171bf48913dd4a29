package transform

import (
	"fmt"

	"github.com/toyz/tsng/internal/emitter"
	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/parser"
	"github.com/toyz/tsng/internal/registry"
	"github.com/toyz/tsng/internal/utils"
)

// Transform is one two-phase session: Process every file, then Emit once.
// A session is not safe for concurrent use; create one per invocation.
type Transform struct {
	opts   Options
	diag   *utils.DiagnosticSystem
	parser parser.SourceParser
	reg    *registry.Registry

	failed  error
	emitted bool
}

// New creates a session. A nil diag discards diagnostics.
func New(opts Options, diag *utils.DiagnosticSystem) (*Transform, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if diag == nil {
		diag = utils.NewSilentDiagnostics()
	}

	reg := registry.New()
	diag.Debug("session %s started", reg.ID())

	return &Transform{
		opts:   opts,
		diag:   diag,
		parser: parser.NewParser(opts.NewLine),
		reg:    reg,
	}, nil
}

// Process scans one file and merges it into the session. The first error is sticky:
// every later Process or Emit call returns it.
func (t *Transform) Process(file models.SourceFile) error {
	if t.failed != nil {
		return t.failed
	}
	if t.emitted {
		return errors.Newf(errors.ConfigurationErrorCode, "cannot process %s after emit", file.Path)
	}

	result, err := t.parser.ParseSource(file.Path, string(file.Content))
	if err != nil {
		t.failed = err
		return err
	}

	if result.Module != nil {
		t.diag.Debug("%s: module %s, %d component(s)", file.Path, result.Module.Name, result.ComponentCount())
	} else {
		t.diag.Debug("%s: no module", file.Path)
	}

	before := t.reg.Stats().Modules
	if err := t.reg.Add(result); err != nil {
		t.failed = err
		return err
	}
	if t.reg.Stats().Modules > before {
		t.diag.Verbose("registered module %s", result.Module.Name)
	}
	return nil
}

// Emit builds every output file and pushes them to sink in order. It runs at most once.
// Nothing is pushed when emission fails.
func (t *Transform) Emit(sink Sink) error {
	if t.failed != nil {
		return t.failed
	}
	if t.emitted {
		return errors.New(errors.ConfigurationErrorCode, "transform already emitted")
	}
	t.emitted = true

	outputs, err := emitter.New(t.reg, emitter.Options{
		NewLine:   t.opts.NewLine,
		Extension: t.opts.Extension,
	}).Emit()
	if err != nil {
		t.failed = err
		return err
	}

	for _, out := range outputs {
		if out.Created {
			t.diag.Verbose("created %s", out.Path)
		}
		if err := sink.Push(out); err != nil {
			return fmt.Errorf("push %s: %w", out.Path, err)
		}
	}

	stats := t.reg.Stats()
	t.diag.Debug("session %s emitted %d file(s) for %d module(s)", t.reg.ID(), len(outputs), stats.Modules)
	return nil
}

// Stats returns the session's running totals
func (t *Transform) Stats() registry.Stats {
	return t.reg.Stats()
}

// SessionID returns the id of the session's registry
func (t *Transform) SessionID() string {
	return t.reg.ID()
}
