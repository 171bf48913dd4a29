package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/tsng/internal/cli"
	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/utils"
)

// Version is set via -ldflags
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], nil, nil))
}

// execute runs the root command and returns the process exit status. Nil writers keep the
// terminal defaults, anything else disables colors.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var reported reportedError
		if !stderrors.As(err, &reported) {
			fmt.Fprintf(orDefault(stderr, os.Stderr), "Error: %s\n", errors.Describe(err))
		}
		return 1
	}
	return 0
}

// reportedError marks an error already printed by the diagnostic reporter
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := cli.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:   "tsng [flags] <dir|dir/...|file>...",
		Short: "Generate AngularJS registrations from annotated TypeScript",
		Long: `tsng scans TypeScript sources for controllers, services, directives and filters
and writes the AngularJS module and component registrations next to them.

Sources:
  ./src/...          Scan src and all its subdirectories
  ./src/controllers  Scan only the given directory
  ./src/app.ts       Transform a single file

Configuration is read from .tsng.yaml (or .toml/.json) in the working directory,
TSNG_* environment variables and flags, flags taking precedence.`,
		Example: `  tsng ./src/...                      # Rewrite sources in place
  tsng --out build ./src/...          # Write results to build/
  tsng --newline crlf ./src/...       # Force CRLF line endings
  tsng --exclude "*.spec.ts" ./src/...
  tsng --clean --out build ./src/...  # Remove synthesized module files`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				v.Set("sources", args)
			}

			cfg, err := cli.LoadConfig(v, configFile)
			if err != nil {
				return report(cli.NewDiagnosticReporter(false), stderr, err)
			}
			return run(cfg, stdout, stderr)
		},
	}

	if stdout != nil {
		cmd.SetOut(stdout)
	}
	if stderr != nil {
		cmd.SetErr(stderr)
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./.tsng.yaml)")
	flags.String("out", "", "output directory (default rewrites sources in place)")
	flags.String("base", "", "directory output paths are relative to (default is the common parent of the sources)")
	flags.String("newline", cli.NewLineAuto, "line separator: lf, crlf, cr or auto")
	flags.String("ext", cli.DefaultConfig().Extension, "source and module file extension")
	flags.StringSlice("exclude", nil, "glob patterns of files to skip")
	flags.Bool("clean", false, "delete synthesized module files from the output directory")
	flags.BoolP("verbose", "v", false, "enable verbose output and detailed error reporting")
	flags.BoolP("quiet", "q", false, "only show errors")

	for _, name := range []string{"out", "base", "newline", "ext", "exclude", "clean", "verbose", "quiet"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

// run executes one generation and prints its outcome
func run(cfg *cli.Config, stdout, stderr io.Writer) error {
	var diagnostics *utils.DiagnosticSystem
	switch {
	case cfg.Quiet:
		diagnostics = utils.NewQuietDiagnostics()
	case cfg.Verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if stdout != nil || stderr != nil {
		diagnostics.SetOutput(orDefault(stdout, os.Stdout), orDefault(stderr, os.Stderr))
	}

	diagnostics.Section("tsng")

	if diagnostics.Level() >= utils.DiagnosticVerbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Sources: %s", strings.Join(cfg.Sources, ", "))
		if cfg.Out != "" {
			diagnostics.List("Output: %s", cfg.Out)
		}
		diagnostics.List("Line separator: %s", cfg.NewLine)
	}

	generator := cli.NewGenerator(diagnostics, cfg.Verbose)
	if err := generator.Run(*cfg); err != nil {
		return report(generator.Reporter(), stderr, err)
	}

	summary := generator.GetSummary()
	if cfg.Clean {
		diagnostics.Summary("Clean Complete!", []utils.SummaryItem{
			{Label: "Module files removed", Value: len(summary.RemovedFiles)},
		})
		return nil
	}

	diagnostics.Summary("Transform Complete!", []utils.SummaryItem{
		{Label: "Files processed", Value: summary.FilesProcessed},
		{Label: "Files written", Value: len(summary.WrittenFiles)},
		{Label: "Modules", Value: summary.Modules},
		{Label: "Module files created", Value: len(summary.CreatedModules)},
		{Label: "Controllers", Value: summary.Controllers},
		{Label: "Services", Value: summary.Services},
		{Label: "Directives", Value: summary.Directives},
		{Label: "Filters", Value: summary.Filters},
	})

	if diagnostics.Level() >= utils.DiagnosticVerbose && len(summary.WrittenFiles) > 0 {
		diagnostics.Subsection("Written Files")
		diagnostics.Indent()
		for _, file := range summary.WrittenFiles {
			diagnostics.Item("%s", file)
		}
		diagnostics.Unindent()
	}

	diagnostics.Success("Registrations are up to date")
	return nil
}

// report prints err through reporter and hands it back to cobra for the exit status
func report(reporter *cli.DiagnosticReporter, stderr io.Writer, err error) error {
	if stderr != nil {
		reporter.SetOutput(stderr)
	}
	reporter.ReportError(err)
	return reportedError{err: err}
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
