package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/flow"
	flowio "github.com/mwendler/ribbons/pkg/io"
	"github.com/mwendler/ribbons/pkg/pipeline"
)

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		leftOrder  string
		rightOrder string
		noConfig   bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a flow dataset as a Sankey diagram",
		Long: `Render a flow dataset as a two-column Sankey diagram.

The dataset is read from a CSV file (with left, right, and optional
left_weight/right_weight columns) or a JSON array of records. Output
formats: svg (default), png, json (raw layout geometry), dot, and
nodelink (Graphviz-rendered SVG).

User defaults are read from ~/.config/ribbons/config.toml unless
--no-config is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if !noConfig {
				var err error
				cfg, err = loadConfig()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if err := prepareOptions(&opts, formatsStr, leftOrder, rightOrder, cfg); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot, nodelink (comma-separated)")
	cmd.Flags().Float64Var(&opts.Aspect, "aspect", 0, "vertical/horizontal extent ratio (default 4)")
	cmd.Flags().Float64Var(&opts.FontSize, "font-size", 0, "label font size in points (default 14)")
	cmd.Flags().BoolVar(&opts.RightColor, "right-color", false, "color strips by their right label instead of their left")
	cmd.Flags().StringToStringVar(&opts.Colors, "color", nil, "explicit label color, e.g. --color a=#ff0000 (must cover all labels)")
	cmd.Flags().StringVar(&leftOrder, "left-order", "", "comma-separated stacking order for the left labels (bottom first)")
	cmd.Flags().StringVar(&rightOrder, "right-order", "", "comma-separated stacking order for the right labels (bottom first)")
	cmd.Flags().BoolVar(&noConfig, "no-config", false, "ignore the user config file")

	return cmd
}

// runRender loads the dataset, executes the pipeline, and writes one file
// per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	dataset, err := flowio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}
	datasetOptions(dataset, &opts)
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.RecordCount, result.Stats.LabelCount, result.Stats.StripCount)

	return nil
}

// prepareOptions merges flag values and config-file defaults into opts.
// Flags win over config; when neither names a format the default is svg.
// Formats are validated only after the config has applied, so a formats
// entry in the config file takes effect exactly like the flag.
func prepareOptions(opts *pipeline.Options, formatsStr, leftOrder, rightOrder string, cfg Config) error {
	opts.Formats = parseFormats(formatsStr)
	opts.LeftLabels = parseLabels(leftOrder)
	opts.RightLabels = parseLabels(rightOrder)
	cfg.applyTo(opts)
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatSVG}
	}
	return pipeline.ValidateFormats(opts.Formats)
}

// datasetOptions copies the dataset's records into the pipeline options as
// parallel slices.
func datasetOptions(d *flow.Dataset, opts *pipeline.Options) {
	records := d.Records()
	opts.Left = make([]string, len(records))
	opts.Right = make([]string, len(records))
	opts.LeftWeight = make([]float64, len(records))
	opts.RightWeight = make([]float64, len(records))
	for i, rec := range records {
		opts.Left[i] = rec.Left
		opts.Right[i] = rec.Right
		opts.LeftWeight[i] = rec.LeftWeight
		opts.RightWeight[i] = rec.RightWeight
	}
}

// parseLabels parses a comma-separated label list, trimming whitespace.
// An empty string yields nil (keep first-seen order).
func parseLabels(s string) []string {
	if s == "" {
		return nil
	}
	labels := strings.Split(s, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	return labels
}

// formatExtensions maps output formats to file extensions.
var formatExtensions = map[string]string{
	pipeline.FormatSVG:      "svg",
	pipeline.FormatPNG:      "png",
	pipeline.FormatJSON:     "json",
	pipeline.FormatDOT:      "dot",
	pipeline.FormatNodelink: "nodelink.svg",
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
// This is used when generating multiple files (e.g., flows.svg, flows.dot).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, known := range formatExtensions {
		if strings.TrimPrefix(ext, ".") == known {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// writeArtifacts writes one file per rendered format and returns the paths.
// A single format honors the output path verbatim; multiple formats share
// a base path with per-format extensions.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	single := len(formats) == 1

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		var path string
		if single && output != "" {
			path = output
		} else {
			path = basePath(output, input) + "." + formatExtensions[format]
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
