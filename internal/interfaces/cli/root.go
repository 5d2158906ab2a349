// Package cli implements the gactl operator command line.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	JSONOutput bool
}

// NewRootCommand builds the gactl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	root := &cobra.Command{
		Use:           "gactl",
		Short:         "Operator tooling for the general-application decision engine",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "emit machine-readable JSON")

	root.AddCommand(
		newDeadlineCommand(opts),
		newPlanCommand(opts),
		newHolidaysCommand(opts),
		newMigrateCommand(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration for a subcommand: explicit file when
// given, environment otherwise.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

// newLogger builds a console logger at the requested level.
func newLogger(opts *RootOptions) (logging.Logger, error) {
	return logging.NewLogger(logging.Config{
		Level:       opts.LogLevel,
		Format:      "console",
		OutputPaths: []string{"stderr"},
	})
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
