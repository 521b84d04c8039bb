// Package ui provides the terminal surfaces for browsing the catalog.
package ui

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gstanzl/gstanzl/internal/catalog"
	"github.com/gstanzl/gstanzl/internal/search"
)

// Browser runs one browse over the catalog on some output.
type Browser interface {
	// Run loads the catalog and serves queries until the user leaves
	// (interactive) or the first result set is written (plain).
	Run(ctx context.Context) error
}

// Config configures a browser.
type Config struct {
	Output       io.Writer
	Input        io.Reader
	Location     string
	Backend      search.Backend
	InitialQuery string
	ForcePlain   bool
	NoColor      bool
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithLocation sets the catalog location.
func WithLocation(location string) ConfigOption {
	return func(c *Config) {
		c.Location = location
	}
}

// WithBackend selects the search backend.
func WithBackend(b search.Backend) ConfigOption {
	return func(c *Config) {
		c.Backend = b
	}
}

// WithInitialQuery pre-fills the query control.
func WithInitialQuery(q string) ConfigOption {
	return func(c *Config) {
		c.InitialQuery = q
	}
}

// WithInput sets the keyboard input for the interactive browser.
func WithInput(r io.Reader) ConfigOption {
	return func(c *Config) {
		c.Input = r
	}
}

// WithForcePlain forces plain text output.
func WithForcePlain(force bool) ConfigOption {
	return func(c *Config) {
		c.ForcePlain = force
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) {
		c.NoColor = noColor
	}
}

// NewConfig creates a new Config with the given output and options.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{
		Output:   output,
		Location: catalog.DefaultLocation,
		Backend:  search.BackendFuzzy,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewBrowser creates an appropriate browser based on config and environment.
// It returns the interactive browser for terminals, and a plain text browser
// for CI environments, pipes, or when --plain is specified.
func NewBrowser(cfg Config) Browser {
	if cfg.ForcePlain {
		return NewPlainBrowser(cfg)
	}

	if !IsTTY(cfg.Output) {
		return NewPlainBrowser(cfg)
	}

	if DetectCI() {
		return NewPlainBrowser(cfg)
	}

	return NewTUIBrowser(cfg)
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}
