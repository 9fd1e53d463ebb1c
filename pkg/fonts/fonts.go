// Package fonts locates label fonts for raster rendering.
//
// Raster output draws label text with a TrueType face, which must come from
// the host system. Discovery goes through go-findfont over a list of common
// serif faces, matching the serif family used for SVG output.
package fonts

import (
	"sync"

	"github.com/flopp/go-findfont"

	"github.com/mwendler/ribbons/pkg/errors"
)

// Family is the CSS font-family used in SVG output.
const Family = "serif"

// FallbackFamily provides fallbacks for systems without the preferred faces.
const FallbackFamily = `Georgia, 'Times New Roman', serif`

// serifCandidates are tried in order; the first face present on the host
// wins. Sans faces at the end keep text rendering working on minimal
// systems.
var serifCandidates = []string{
	"DejaVuSerif.ttf",
	"LiberationSerif-Regular.ttf",
	"Times New Roman.ttf",
	"Georgia.ttf",
	"FreeSerif.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
}

// Cache for the resolved font path (looked up once on first access).
var (
	foundPath string
	foundErr  error
	findOnce  sync.Once
)

// Find returns the path of a usable TrueType face on the host system.
// The result is cached after the first lookup.
func Find() (string, error) {
	findOnce.Do(func() {
		for _, name := range serifCandidates {
			if path, err := findfont.Find(name); err == nil {
				foundPath = path
				return
			}
		}
		foundErr = errors.New(errors.ErrCodeFileNotFound,
			"no usable TrueType font found on this system (tried %d candidates)", len(serifCandidates))
	})
	return foundPath, foundErr
}
