// Package sink serializes assembled diagrams to output formats.
package sink

import (
	"bytes"
	"fmt"

	"github.com/mwendler/ribbons/pkg/fonts"
	"github.com/mwendler/ribbons/pkg/render"
)

// DefaultSVGHeight is the rendered diagram height in SVG user units.
const DefaultSVGHeight = 600.0

// textWidthFactor estimates glyph advance as a fraction of the font size.
// SVG has no text measurement at generation time, so margins are estimated.
const textWidthFactor = 0.6

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	height float64
}

// WithSVGHeight sets the rendered diagram height in user units
// (default 600).
func WithSVGHeight(h float64) SVGOption {
	return func(r *svgRenderer) { r.height = h }
}

// RenderSVG renders the diagram as a standalone SVG document. Axes are not
// drawn; the canvas holds only bars, strips, and label text.
func RenderSVG(d *render.Diagram, opts ...SVGOption) []byte {
	r := svgRenderer{height: DefaultSVGHeight}
	for _, opt := range opts {
		opt(&r)
	}

	scale := r.height / d.TopEdge
	fontSize := d.FontSize

	// Horizontal margins leave room for the estimated text extents.
	leftMargin := estTextWidth(maxLabelLen(d, true), fontSize) + 4
	rightMargin := estTextWidth(maxLabelLen(d, false), fontSize) + 4

	// Content spans -0.05..1.05 of XMax; the text anchors sit at the outer
	// edges of that span.
	offsetX := leftMargin + 0.05*d.XMax*scale
	width := offsetX + 1.05*d.XMax*scale + rightMargin
	height := r.height

	px := func(x float64) float64 { return offsetX + x*scale }
	py := func(y float64) float64 { return height - y*scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	for _, b := range d.Bars {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			px(b.X0), py(b.Y1), (b.X1-b.X0)*scale, (b.Y1-b.Y0)*scale, b.Color.Hex(), render.BarAlpha)
	}

	for _, reg := range d.Regions {
		buf.WriteString(`  <path d="`)
		for i := range reg.X {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&buf, "%s%.2f %.2f ", cmd, px(reg.X[i]), py(reg.Lower[i]))
		}
		for i := len(reg.X) - 1; i >= 0; i-- {
			fmt.Fprintf(&buf, "L%.2f %.2f ", px(reg.X[i]), py(reg.Upper[i]))
		}
		fmt.Fprintf(&buf, `Z" fill="%s" fill-opacity="%.2f"/>`+"\n", reg.Color.Hex(), render.StripAlpha)
	}

	for _, t := range d.Texts {
		anchor := "start"
		if t.AlignRight {
			anchor = "end"
		}
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="middle" font-family="%s" font-size="%.1f">%s</text>`+"\n",
			px(t.X), py(t.Y), anchor, fonts.FallbackFamily, fontSize, escapeText(t.Label))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// maxLabelLen returns the longest label length on one side, in runes.
func maxLabelLen(d *render.Diagram, alignRight bool) int {
	maxLen := 0
	for _, t := range d.Texts {
		if t.AlignRight != alignRight {
			continue
		}
		if n := len([]rune(t.Label)); n > maxLen {
			maxLen = n
		}
	}
	return maxLen
}

func estTextWidth(runes int, fontSize float64) float64 {
	return float64(runes) * fontSize * textWidthFactor
}

// escapeText escapes the XML special characters that can occur in labels.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
