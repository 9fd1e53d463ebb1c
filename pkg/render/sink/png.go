package sink

import (
	"bytes"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/fonts"
	"github.com/mwendler/ribbons/pkg/render"
)

// DPI is the raster export resolution.
const DPI = 150.0

// defaultHeightInches is the diagram height when no explicit figure size is
// given. The canvas width follows from the content's tight bounding box.
const defaultHeightInches = 4.8

// canvasPad is the padding around the tight bounding box, in pixels.
const canvasPad = 6.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	heightInches float64
	figWidth     float64
	figHeight    float64
}

// WithPNGHeight sets the diagram height in inches (default 4.8).
func WithPNGHeight(inches float64) PNGOption {
	return func(r *pngRenderer) { r.heightInches = inches }
}

// WithFigSize forces the output image to the given size in inches.
// The tightly rendered image is resampled to fit.
func WithFigSize(width, height float64) PNGOption {
	return func(r *pngRenderer) {
		r.figWidth = width
		r.figHeight = height
	}
}

// RenderPNG renders the diagram as a PNG at 150 DPI with a tight bounding
// box around bars, strips, and label text. It needs a TrueType face on the
// host system for the labels.
func RenderPNG(d *render.Diagram, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{heightInches: defaultHeightInches}
	for _, opt := range opts {
		opt(&r)
	}

	fontPath, err := fonts.Find()
	if err != nil {
		return nil, err
	}
	fontPx := d.FontSize * DPI / 72

	// Measuring context; the real canvas size depends on text extents.
	measure := gg.NewContext(1, 1)
	if err := measure.LoadFontFace(fontPath, fontPx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font %s", fontPath)
	}

	scale := r.heightInches * DPI / verticalExtent(d)

	var leftTextW, rightTextW float64
	for _, t := range d.Texts {
		w, _ := measure.MeasureString(t.Label)
		if t.AlignRight {
			leftTextW = math.Max(leftTextW, w)
		} else {
			rightTextW = math.Max(rightTextW, w)
		}
	}

	// Text anchors sit at -0.05 and 1.05 of XMax.
	offsetX := canvasPad + leftTextW + 0.05*d.XMax*scale
	width := int(math.Ceil(offsetX + 1.05*d.XMax*scale + rightTextW + canvasPad))
	height := int(math.Ceil(verticalExtent(d)*scale + 2*canvasPad))

	px := func(x float64) float64 { return offsetX + x*scale }
	py := func(y float64) float64 { return float64(height) - canvasPad - y*scale }

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if err := dc.LoadFontFace(fontPath, fontPx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font %s", fontPath)
	}

	for _, b := range d.Bars {
		dc.DrawRectangle(px(b.X0), py(b.Y1), (b.X1-b.X0)*scale, (b.Y1-b.Y0)*scale)
		dc.SetRGBA(b.Color.R, b.Color.G, b.Color.B, render.BarAlpha)
		dc.Fill()
	}

	for _, reg := range d.Regions {
		dc.MoveTo(px(reg.X[0]), py(reg.Lower[0]))
		for i := 1; i < len(reg.X); i++ {
			dc.LineTo(px(reg.X[i]), py(reg.Lower[i]))
		}
		for i := len(reg.X) - 1; i >= 0; i-- {
			dc.LineTo(px(reg.X[i]), py(reg.Upper[i]))
		}
		dc.ClosePath()
		dc.SetRGBA(reg.Color.R, reg.Color.G, reg.Color.B, render.StripAlpha)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	for _, t := range d.Texts {
		ax := 0.0
		if t.AlignRight {
			ax = 1.0
		}
		dc.DrawStringAnchored(t.Label, px(t.X), py(t.Y), ax, 0.5)
	}

	img := dc.Image()
	if r.figWidth > 0 && r.figHeight > 0 {
		img = imaging.Resize(img, int(r.figWidth*DPI), int(r.figHeight*DPI), imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// verticalExtent is the content height: the frame's top edge, or the tallest
// bar when the side laid out first overshoots it.
func verticalExtent(d *render.Diagram) float64 {
	top := d.TopEdge
	for _, b := range d.Bars {
		top = math.Max(top, b.Y1)
	}
	return top
}
