// Package pipeline provides the core visualization pipeline for ribbons.
//
// This package implements the complete validate → aggregate → layout →
// render pipeline used by the CLI and by library consumers. Centralizing
// the stages keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: build the dataset from parallel label/weight slices and
//     apply explicit label orderings
//  2. Layout: aggregate pair weights and compute stack and strip geometry
//  3. Render: resolve colors and produce output in the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Left:    []string{"a", "a", "b"},
//	    Right:   []string{"x", "y", "x"},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/layout"
	"github.com/mwendler/ribbons/pkg/render"
)

// Default values for layout and render options.
const (
	// DefaultAspect is the vertical extent of the diagram in units of its
	// horizontal extent.
	DefaultAspect = layout.DefaultAspect

	// DefaultFontSize is the label font size in points.
	DefaultFontSize = render.DefaultFontSize
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatNodelink = "nodelink"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, dot, nodelink)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the visualization pipeline.
type Options struct {
	// Input data (parallel slices; see flow.New for defaulting rules)
	Left        []string  `json:"left"`
	Right       []string  `json:"right"`
	LeftWeight  []float64 `json:"left_weight,omitempty"`
	RightWeight []float64 `json:"right_weight,omitempty"`

	// Explicit label stacking orders; nil keeps first-seen order
	LeftLabels  []string `json:"left_labels,omitempty"`
	RightLabels []string `json:"right_labels,omitempty"`

	// Layout options
	Aspect float64 `json:"aspect,omitempty"`

	// Render options
	Colors     map[string]string `json:"colors,omitempty"` // label → #rrggbb
	RightColor bool              `json:"right_color,omitempty"`
	FontSize   float64           `json:"font_size,omitempty"`
	Formats    []string          `json:"formats,omitempty"`

	// Deprecated compatibility options. They are honored but logged as
	// warnings; new callers should use the CLI output flags instead.
	FigureName string  `json:"figure_name,omitempty"` // Deprecated: writes <name>.png as a side effect
	ClosePlot  bool    `json:"close_plot,omitempty"`  // Deprecated: no-op
	FigWidth   float64 `json:"fig_width,omitempty"`   // Deprecated: explicit figure width in inches
	FigHeight  float64 `json:"fig_height,omitempty"`  // Deprecated: explicit figure height in inches

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Left) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no input data")
	}
	if o.Aspect == 0 {
		o.Aspect = DefaultAspect
	}
	if o.Aspect < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "aspect must be positive (got %v)", o.Aspect)
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// deprecated returns the names of deprecated options in use.
func (o *Options) deprecated() []string {
	var names []string
	if o.FigureName != "" {
		names = append(names, "figureName")
	}
	if o.ClosePlot {
		names = append(names, "closePlot")
	}
	if o.FigWidth > 0 || o.FigHeight > 0 {
		names = append(names, "figSize")
	}
	return names
}
