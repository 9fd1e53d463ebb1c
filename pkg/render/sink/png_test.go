package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/mwendler/ribbons/pkg/fonts"
)

func TestRenderPNG(t *testing.T) {
	if _, err := fonts.Find(); err != nil {
		t.Skipf("no system font available: %v", err)
	}

	d := diagramFixture(t,
		[]string{"a", "a", "b"},
		[]string{"x", "y", "x"},
	)

	data, err := RenderPNG(d)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Errorf("empty image %v", bounds)
	}
}

func TestRenderPNGFigSize(t *testing.T) {
	if _, err := fonts.Find(); err != nil {
		t.Skipf("no system font available: %v", err)
	}

	d := diagramFixture(t, []string{"a"}, []string{"x"})

	data, err := RenderPNG(d, WithFigSize(4, 2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 4x2 inches at 150 DPI
	if got := img.Bounds().Dx(); got != 600 {
		t.Errorf("width = %d, want 600", got)
	}
	if got := img.Bounds().Dy(); got != 300 {
		t.Errorf("height = %d, want 300", got)
	}
}
