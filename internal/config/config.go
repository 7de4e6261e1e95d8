// Package config provides configuration loading for the spec splitter.
package config

import (
	"strings"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/spf13/pflag"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/codec"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/converters"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/splitter"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SPLITSPEC_"

// Config holds the application configuration.
//
// Keys are single words: the environment source turns every underscore
// after the prefix into a key separator, and command-line flags are loaded
// under their own names.
type Config struct {
	// OutputDir receives one file per tag.
	OutputDir string `koanf:"output"`
	// Encoding of the tag files: json or yaml.
	Encoding string `koanf:"encoding"`
	// Grouping is path or operation.
	Grouping string `koanf:"grouping"`
	// FollowComposition also collects definitions reached through allOf,
	// anyOf, oneOf and additionalProperties.
	FollowComposition bool `koanf:"composition"`
	// Verify reloads every tag document as Swagger 2.0 after writing.
	Verify bool `koanf:"verify"`
	// ReportFile, when set, receives a summary of the split.
	ReportFile   string `koanf:"report"`
	ReportFormat string `koanf:"format"`
}

// Option keys, shared by the config file, the environment (upper-cased
// behind EnvPrefix) and the command-line flags.
const (
	KeyOutput      = "output"
	KeyEncoding    = "encoding"
	KeyGrouping    = "grouping"
	KeyComposition = "composition"
	KeyVerify      = "verify"
	KeyReport      = "report"
	KeyFormat      = "format"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:    "specs",
		Encoding:     "json",
		Grouping:     string(splitter.GroupByPath),
		ReportFormat: "pdf",
	}
}

// Load returns the application configuration using go-libs config-loader.
// Values come from the defaults, then the optional file, then the
// environment, then the flags in flags that were set explicitly. flags may
// be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	opts := []configloader.Option[Config]{configloader.WithDefaults(Default())}
	if file != "" {
		opts = append(opts, configloader.WithFile[Config](file))
	}
	opts = append(opts, configloader.WithEnv[Config](EnvPrefix))
	if flags != nil {
		opts = append(opts, configloader.WithFlags[Config](flags))
	}

	cfg, err := configloader.NewConfigLoader(opts...).Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects unknown option values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return &domain.ConfigError{Option: "output directory", Value: c.OutputDir}
	}

	if _, err := codec.EncoderFor(c.Encoding); err != nil {
		return err
	}

	switch splitter.Grouping(strings.ToLower(c.Grouping)) {
	case splitter.GroupByPath, splitter.GroupByOperation:
	default:
		return &domain.ConfigError{Option: "grouping", Value: c.Grouping, Allowed: splitter.Groupings}
	}

	if c.ReportFile != "" {
		if _, err := converters.ForFormat(c.ReportFormat); err != nil {
			return err
		}
	}

	return nil
}

// SplitOptions returns the splitter options selected by the configuration.
func (c *Config) SplitOptions() splitter.Options {
	return splitter.Options{
		Grouping:          splitter.Grouping(strings.ToLower(c.Grouping)),
		FollowComposition: c.FollowComposition,
	}
}
