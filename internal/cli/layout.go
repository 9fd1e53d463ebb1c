package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwendler/ribbons/pkg/errors"
	flowio "github.com/mwendler/ribbons/pkg/io"
	"github.com/mwendler/ribbons/pkg/layout"
)

// layoutCommand creates the layout command for exporting raw geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		aspect float64
	)

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Compute layout geometry from a flow dataset",
		Long: `Compute layout geometry from a flow dataset.

The layout command reads a dataset (CSV or JSON) and writes the computed
stack positions and strip curves as JSON. The output holds pure geometry;
use 'render -f json' for the same document as part of a full render, or
feed the geometry to an external renderer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], aspect, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().Float64Var(&aspect, "aspect", layout.DefaultAspect, "vertical/horizontal extent ratio")

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes the JSON output.
func (c *CLI) runLayout(ctx context.Context, input string, aspect float64, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	dataset, err := flowio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}
	logger.Debugf("Loaded dataset: %d records", dataset.Len())

	l, err := layout.Compute(dataset, aspect)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Computed %d strips", len(l.Strips)))

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}
	if err := flowio.ExportLayoutJSON(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(dataset.Len(), len(dataset.AllLabels()), len(l.Strips))
	printNewline()
	printNextStep("Render", "ribbons render "+input)

	return nil
}
