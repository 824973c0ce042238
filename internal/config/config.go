// Package config holds the settings of the catalog tool. Values come from
// command-line flags; Default supplies the starting point and Validate
// rejects bad combinations before anything runs.
package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
	Catalog CatalogConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string

	// Format is the log encoding: console or json (default: console)
	Format string
}

// CatalogConfig holds catalog loading settings.
type CatalogConfig struct {
	// File is loaded before the menu is shown when set
	File string

	// Delimiter separates fields in a catalog line (default: ",")
	Delimiter string

	// ValidateOnLoad runs prerequisite validation after every successful load
	ValidateOnLoad bool
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Catalog: CatalogConfig{
			Delimiter: ",",
		},
	}
}

// DelimiterRune returns the field delimiter as a rune.
func (c *CatalogConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log level %q must be one of debug, info, warn, error", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log format %q must be console or json", c.Logging.Format))
	}

	if utf8.RuneCountInString(c.Catalog.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("delimiter %q must be a single character", c.Catalog.Delimiter))
	} else if unicode.IsSpace(c.Catalog.DelimiterRune()) {
		errs = append(errs, "delimiter must not be whitespace")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return nil
}
