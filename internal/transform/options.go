package transform

import (
	"runtime"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/utils"
)

// DefaultExtension is the suffix given to synthesized module files
const DefaultExtension = ".ts"

// Options configures a transform session
type Options struct {
	// NewLine splits input for scanning and joins output. It must match the sources.
	NewLine string
	// Extension is appended to a module name to name a synthesized module file.
	Extension string
}

// DefaultOptions returns the platform line separator and the default extension
func DefaultOptions() Options {
	return Options{
		NewLine:   PlatformNewLine(),
		Extension: DefaultExtension,
	}
}

// PlatformNewLine returns "\r\n" on Windows and "\n" elsewhere
func PlatformNewLine() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Validate checks the options, filling in the default extension when it is unset
func (o *Options) Validate() error {
	if o.NewLine == "" {
		return errors.ConfigurationError("newLine", "the line separator cannot be empty").
			WithSuggestion(`Use "\n", "\r\n" or "\r"`)
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if err := utils.ValidateExtension("extension")(o.Extension); err != nil {
		return errors.ConfigurationError("extension", err.Error())
	}
	return nil
}
