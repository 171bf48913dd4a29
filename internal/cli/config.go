package cli

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/transform"
	"github.com/toyz/tsng/internal/utils"
)

const (
	// ConfigFileName is the name of the optional config file in the working directory, without extension
	ConfigFileName = ".tsng"
	// EnvPrefix prefixes every environment override, e.g. TSNG_OUT
	EnvPrefix = "TSNG"
)

// Line separator names accepted by the newline setting
const (
	NewLineAuto = "auto"
	NewLineLF   = "lf"
	NewLineCRLF = "crlf"
	NewLineCR   = "cr"
)

// Config holds the configuration for a tsng run
type Config struct {
	// Sources is the list of directories or files to transform.
	// A directory ending in "/..." is walked recursively.
	Sources []string `mapstructure:"sources"`

	// Base is the directory output paths are relative to.
	// If empty, the common parent of Sources is used.
	Base string `mapstructure:"base"`

	// Out is the destination directory. If empty, files are rewritten in place under Base.
	Out string `mapstructure:"out"`

	// NewLine is one of lf, crlf, cr or auto
	NewLine string `mapstructure:"newline"`

	// Extension names synthesized module files
	Extension string `mapstructure:"ext"`

	// Exclude holds glob patterns matched against paths relative to each source directory
	Exclude []string `mapstructure:"exclude"`

	// Clean removes synthesized module files from the output directory instead of generating
	Clean bool `mapstructure:"clean"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `mapstructure:"verbose"`

	// Quiet only shows errors
	Quiet bool `mapstructure:"quiet"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		NewLine:   NewLineAuto,
		Extension: transform.DefaultExtension,
	}
}

// NewViper creates a viper instance with tsng's defaults, config file lookup and environment
// overrides. Flags are bound on top by the caller.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("sources", defaults.Sources)
	v.SetDefault("base", defaults.Base)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("newline", defaults.NewLine)
	v.SetDefault("ext", defaults.Extension)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("clean", defaults.Clean)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("quiet", defaults.Quiet)

	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file, explicit when configFile is set, and decodes the
// merged settings. A missing implicit config file is not an error.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to read config file", err).
				WithContext("config_file", configFile).
				WithSuggestion("Check that the file exists and is valid YAML, TOML or JSON")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to decode configuration", err)
	}
	return &cfg, nil
}

// Validate checks the configuration before a run
func (c *Config) Validate() error {
	if c.NewLine != "" {
		chain := utils.NewValidatorChain[string]().
			Add(utils.IsOneOf("newline", NewLineAuto, NewLineLF, NewLineCRLF, NewLineCR))
		if err := chain.Validate(strings.ToLower(c.NewLine)); err != nil {
			return errors.ConfigurationError("newline", err.Error())
		}
	}

	sources := utils.NewValidatorChain(
		utils.SliceNotEmpty[string]("sources"),
		utils.ValidateEach("sources", utils.NotEmpty("source")),
	)
	if err := sources.Validate(c.Sources); err != nil {
		return errors.ConfigurationError("sources", err.Error()).
			WithSuggestion("Pass at least one directory, e.g. tsng ./src/...")
	}

	if c.Extension != "" {
		if err := utils.ValidateExtension("ext")(c.Extension); err != nil {
			return errors.ConfigurationError("ext", err.Error())
		}
	}

	if err := utils.ValidateEach("exclude", utils.ValidGlob("exclude"))(c.Exclude); err != nil {
		return errors.ConfigurationError("exclude", err.Error())
	}

	exclusive := utils.Custom("quiet", "cannot be combined with verbose", func(cfg *Config) bool {
		return !(cfg.Verbose && cfg.Quiet)
	})
	if err := exclusive(c); err != nil {
		return errors.ConfigurationError("quiet", err.Error())
	}
	return nil
}

// LineSeparator maps the newline setting to its separator. For auto, sample decides:
// the first line break found in it wins, and the platform default is used when it has none.
func (c *Config) LineSeparator(sample []byte) (string, error) {
	switch strings.ToLower(c.NewLine) {
	case NewLineLF:
		return "\n", nil
	case NewLineCRLF:
		return "\r\n", nil
	case NewLineCR:
		return "\r", nil
	case NewLineAuto, "":
		return DetectNewLine(sample), nil
	default:
		return "", errors.ConfigurationError("newline", fmt.Sprintf("unknown line separator %q", c.NewLine))
	}
}

// DetectNewLine returns the first line break in content, or the platform default
func DetectNewLine(content []byte) string {
	for i, b := range content {
		switch b {
		case '\n':
			return "\n"
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		}
	}
	return transform.PlatformNewLine()
}
