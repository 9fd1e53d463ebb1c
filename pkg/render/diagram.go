package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mwendler/ribbons/pkg/flow"
	"github.com/mwendler/ribbons/pkg/layout"
	"github.com/mwendler/ribbons/pkg/palette"
)

// Horizontal proportions of the diagram, as fractions of XMax.
const (
	// barDepth is the width of the colored bar beside each label column.
	barDepth = 0.02
	// textOffset is the gap between the bars and the label text anchors.
	textOffset = 0.05
)

// Fill opacities. Bars are nearly opaque; strips stay translucent so
// crossings remain readable.
const (
	BarAlpha   = 0.99
	StripAlpha = 0.65
)

// DefaultFontSize is the label font size in points.
const DefaultFontSize = 14.0

// Bar is one label's colored block beside a column.
type Bar struct {
	Side   flow.Side
	Label  string
	X0, X1 float64
	Y0, Y1 float64
	Color  colorful.Color
}

// Text is one label caption. AlignRight anchors the text's right edge at X
// (left-side labels); otherwise the left edge is anchored.
type Text struct {
	Label      string
	X, Y       float64
	AlignRight bool
}

// Region is one strip's fillable area between its lower and upper curves.
type Region struct {
	Left  string
	Right string
	X     []float64
	Lower []float64
	Upper []float64
	Color colorful.Color
}

// Diagram holds every drawable primitive of one rendered flow diagram,
// in diagram coordinates (y up, weight units).
type Diagram struct {
	Bars    []Bar
	Texts   []Text
	Regions []Region

	XMax     float64
	TopEdge  float64
	FontSize float64
}

// Options configures diagram assembly.
type Options struct {
	// RightColor colors each strip by its right label instead of its left.
	RightColor bool
	// FontSize overrides DefaultFontSize when positive.
	FontSize float64
}

// Build assembles a Diagram from a layout and a color map. The map must
// cover every label in the layout; resolve it with [palette.Resolve] first.
//
// Bars and texts are emitted before strips so sinks can draw primitives in
// slice order and get the correct occlusion.
func Build(l *layout.Layout, colors palette.Map, opts Options) *Diagram {
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	d := &Diagram{
		XMax:     l.XMax,
		TopEdge:  l.TopEdge,
		FontSize: fontSize,
	}

	for _, s := range l.LeftStacks {
		d.Bars = append(d.Bars, Bar{
			Side:  flow.SideLeft,
			Label: s.Label,
			X0:    -barDepth * l.XMax,
			X1:    0,
			Y0:    s.Bottom,
			Y1:    s.Top,
			Color: colors[s.Label],
		})
		d.Texts = append(d.Texts, Text{
			Label:      s.Label,
			X:          -textOffset * l.XMax,
			Y:          s.Bottom + 0.5*s.Extent,
			AlignRight: true,
		})
	}
	for _, s := range l.RightStacks {
		d.Bars = append(d.Bars, Bar{
			Side:  flow.SideRight,
			Label: s.Label,
			X0:    l.XMax,
			X1:    (1 + barDepth) * l.XMax,
			Y0:    s.Bottom,
			Y1:    s.Top,
			Color: colors[s.Label],
		})
		d.Texts = append(d.Texts, Text{
			Label: s.Label,
			X:     (1 + textOffset) * l.XMax,
			Y:     s.Bottom + 0.5*s.Extent,
		})
	}

	for _, strip := range l.Strips {
		colorLabel := strip.Left
		if opts.RightColor {
			colorLabel = strip.Right
		}
		d.Regions = append(d.Regions, Region{
			Left:  strip.Left,
			Right: strip.Right,
			X:     strip.X,
			Lower: strip.Lower,
			Upper: strip.Upper,
			Color: colors[colorLabel],
		})
	}

	return d
}
