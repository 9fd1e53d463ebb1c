// Package cli implements the ribbons command-line interface.
//
// This package provides commands for rendering flow datasets as two-column
// Sankey diagrams, exporting raw layout geometry, previewing color palettes,
// and interactively reordering label stacks. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, DOT, or node-link visualizations
//   - layout: Compute and export the layout geometry as JSON
//   - palette: Preview the generated color wheel for a set of labels
//   - order: Interactively reorder label stacks before rendering
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mwendler/ribbons/pkg/buildinfo"
	"github.com/mwendler/ribbons/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "ribbons"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ribbons",
		Short:        "Ribbons renders weighted flows as Sankey diagrams",
		Long:         `Ribbons is a CLI tool for rendering weighted flows between two sets of categorical labels as two-column Sankey diagrams, with smooth strips connecting the label stacks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so that config-file defaults can apply;
// [prepareOptions] falls back to svg when nothing names a format.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
