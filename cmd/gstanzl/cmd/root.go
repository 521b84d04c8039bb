// Package cmd provides the CLI commands for gstanzl.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gstanzl/gstanzl/internal/config"
	gerrors "github.com/gstanzl/gstanzl/internal/errors"
	"github.com/gstanzl/gstanzl/internal/logging"
	"github.com/gstanzl/gstanzl/internal/output"
	"github.com/gstanzl/gstanzl/internal/ui"
	"github.com/gstanzl/gstanzl/pkg/version"
)

// Global flags, shared by every command that loads settings.
var (
	catalogFlag string
	backendFlag string
	noColorFlag bool
	debugMode   bool
)

// NewRootCmd creates the root command for the gstanzl CLI.
func NewRootCmd() *cobra.Command {
	var (
		query string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "gstanzl",
		Short: "Browse and fuzzy-search a folk-song catalog",
		Long: `gstanzl loads a catalog of folk songs and lets you search it as you type.

Every keystroke re-runs the search over title, lyrics, tags, region, mood
and dialect. An empty query shows the whole catalog in its original order.

Run it in a terminal for the interactive browser; pipe it (or use --plain)
to print the result set as text.`,
		Example: `  gstanzl
  gstanzl --catalog https://example.org/songs.json
  gstanzl --query Berg --plain`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, query, plain)
		},
	}

	cmd.SetVersionTemplate("gstanzl version {{.Version}}\n")

	cmd.Flags().StringVarP(&query, "query", "q", "", "Initial search query")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print results as plain text instead of the interactive browser")

	cmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file path or http(s) URL (default from config: songs.json)")
	cmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Search backend: fuzzy or bleve")
	cmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Log at debug level to ~/.gstanzl/logs/")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(root.ErrOrStderr(), formatError(err))
	}
	return err
}

// formatError renders coded errors with their hint; flag and argument
// errors from cobra are printed as-is.
func formatError(err error) string {
	if gerrors.GetCode(err) != "" {
		return gerrors.FormatForCLI(err)
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// loadConfig loads the layered configuration for the working directory and
// applies the global flags on top.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, gerrors.InternalError("failed to get current directory", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, gerrors.ConfigError("failed to load configuration", err).
			WithSuggestion("Run 'gstanzl config show --source defaults' and compare with your config files")
	}

	if catalogFlag != "" {
		cfg.Catalog.Location = catalogFlag
	}
	if backendFlag != "" {
		cfg.Search.Backend = backendFlag
	}
	if noColorFlag {
		cfg.UI.NoColor = true
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, gerrors.ConfigError("invalid flags", err)
	}

	return cfg, nil
}

// loadSettings loads the configuration and installs the diagnostic log.
// The returned cleanup closes the log file.
func loadSettings() (*config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	cleanup, err := logging.Install(logging.Config{
		Level:     cfg.Logging.Level,
		FilePath:  cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	})
	if err != nil {
		return nil, nil, gerrors.InternalError("failed to open log file", err)
	}

	slog.Debug("settings_loaded",
		slog.String("catalog", cfg.Catalog.Location),
		slog.String("backend", cfg.Search.Backend),
		slog.String("version", version.Version))

	return cfg, cleanup, nil
}

// colorEnabled reports whether out gets colored output: it must be a
// terminal, and neither --no-color, NO_COLOR nor ui.no_color may be set.
// An unreadable config does not turn color off.
func colorEnabled(out io.Writer) bool {
	if noColorFlag || ui.DetectNoColor() || !ui.IsTTY(out) {
		return false
	}
	cfg, err := loadConfig()
	return err != nil || !cfg.UI.NoColor
}

// newOutput returns a status writer for cmd's stdout.
func newOutput(cmd *cobra.Command) *output.Writer {
	out := cmd.OutOrStdout()
	return output.NewColor(out, colorEnabled(out))
}

func runBrowse(cmd *cobra.Command, query string, plain bool) error {
	cfg, cleanup, err := loadSettings()
	if err != nil {
		return err
	}
	defer cleanup()

	browser := ui.NewBrowser(ui.NewConfig(cmd.OutOrStdout(),
		ui.WithLocation(cfg.Catalog.Location),
		ui.WithBackend(cfg.SearchBackend()),
		ui.WithInitialQuery(query),
		ui.WithForcePlain(plain),
		ui.WithNoColor(cfg.UI.NoColor),
		ui.WithInput(cmd.InOrStdin()),
	))

	return browser.Run(cmd.Context())
}
