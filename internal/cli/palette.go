package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	flowio "github.com/mwendler/ribbons/pkg/io"
	"github.com/mwendler/ribbons/pkg/palette"
)

// paletteCommand creates the palette command for previewing generated colors.
func (c *CLI) paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette [dataset|count]",
		Short: "Preview the generated color wheel",
		Long: `Preview the generated color wheel.

Given a dataset file, shows the color each label would receive during
rendering. Given a number, shows a wheel of that many evenly spaced
colors. Explicit colors passed to 'render' via --color override these.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(args[0])
		},
	}
	return cmd
}

// runPalette prints swatches for a numeric wheel or a dataset's labels.
func runPalette(arg string) error {
	if n, err := strconv.Atoi(arg); err == nil {
		if n <= 0 {
			return fmt.Errorf("count must be positive (got %d)", n)
		}
		fmt.Println(StyleTitle.Render("Color wheel"))
		for i, color := range palette.Wheel(n) {
			printSwatch(strconv.Itoa(i), color.Hex())
		}
		return nil
	}

	dataset, err := flowio.ReadFile(arg)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", arg, err)
	}

	labels := dataset.AllLabels()
	colors := palette.Assign(labels)

	fmt.Println(StyleTitle.Render("Label colors"))
	for _, label := range labels {
		printSwatch(label, colors[label].Hex())
	}
	printNewline()
	printDetail("%d labels", len(labels))
	return nil
}
