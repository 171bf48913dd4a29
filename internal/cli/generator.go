package cli

import (
	"path/filepath"
	"time"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/transform"
	"github.com/toyz/tsng/internal/utils"
)

// GenerationSummary contains summary information about a run
type GenerationSummary struct {
	FilesProcessed int
	Modules        int
	Controllers    int
	Services       int
	Directives     int
	Filters        int
	WrittenFiles   []string
	CreatedModules []string
	RemovedFiles   []string
}

// Generator coordinates a CLI run: scan, transform, write
type Generator struct {
	scanner      *DirectoryScanner
	baseResolver *BaseResolver
	cleaner      *Cleaner
	reporter     *DiagnosticReporter
	diagnostics  *utils.DiagnosticSystem
	summary      GenerationSummary
}

// NewGenerator creates a new CLI generator. A nil diagnostics discards progress output.
func NewGenerator(diagnostics *utils.DiagnosticSystem, verbose bool) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}
	return &Generator{
		scanner:      NewDirectoryScanner(),
		baseResolver: NewBaseResolver(),
		cleaner:      NewCleaner(),
		reporter:     NewDiagnosticReporter(verbose),
		diagnostics:  diagnostics,
	}
}

// Reporter returns the reporter used for failed runs
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes a complete run for cfg. With cfg.Clean set it only removes synthesized
// module files from the output directory.
func (g *Generator) Run(cfg Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	if err := cfg.Validate(); err != nil {
		return utils.WrapValidateError("configuration", err)
	}

	base, err := g.baseResolver.ResolveBase(cfg.Base, cfg.Sources)
	if err != nil {
		return errors.ConfigurationError("base", err.Error()).
			WithSuggestion("Pass --base explicitly")
	}

	out := base
	if cfg.Out != "" {
		if out, err = filepath.Abs(cfg.Out); err != nil {
			return errors.ConfigurationError("out", err.Error())
		}
	}

	extension := cfg.Extension
	if extension == "" {
		extension = transform.DefaultExtension
	}

	g.diagnostics.Debug("Base directory: %s", base)
	g.diagnostics.Debug("Output directory: %s", out)

	if cfg.Clean {
		return g.clean(out, extension)
	}

	files, err := g.scanner.ScanSources(base, cfg.Sources, extension, cfg.Exclude)
	if err != nil {
		return utils.WrapLoadError("sources", err)
	}
	if len(files) == 0 {
		return errors.Newf(errors.ConfigurationErrorCode, "no %s files found in the specified sources", extension).
			WithContext("sources", cfg.Sources).
			WithSuggestions(
				"Check that the specified directories exist",
				"Use the dir/... form to scan subdirectories",
				"Check that --exclude does not match every file",
			)
	}
	g.diagnostics.Info("Found %d source files", len(files))

	newLine, err := cfg.LineSeparator(files[0].Content)
	if err != nil {
		return err
	}

	tr, err := transform.New(transform.Options{NewLine: newLine, Extension: extension}, g.diagnostics)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := tr.Process(file); err != nil {
			return err
		}
		g.summary.FilesProcessed++
	}

	writer := NewOutputWriter(out)
	if err := tr.Emit(writer); err != nil {
		return err
	}

	stats := tr.Stats()
	g.summary.Modules = stats.Modules
	g.summary.Controllers = stats.Controllers
	g.summary.Services = stats.Services
	g.summary.Directives = stats.Directives
	g.summary.Filters = stats.Filters
	g.summary.WrittenFiles = writer.Written()
	g.summary.CreatedModules = writer.Created()

	g.diagnostics.Verbose("Transform finished in %v", time.Since(startTime))
	return nil
}

func (g *Generator) clean(out, extension string) error {
	removed, err := g.cleaner.CleanGeneratedFiles(out, extension)
	g.summary.RemovedFiles = removed
	if err != nil {
		return err
	}

	for _, file := range removed {
		g.diagnostics.Verbose("Removed %s", file)
	}
	return nil
}
