// Package palette assigns colors to diagram labels.
//
// When the caller supplies no explicit mapping, each distinct label (in
// first-seen order, left side before right) gets a color from an evenly
// spaced hue wheel at fixed lightness and saturation, so neighboring labels
// stay visually distinct for any label count.
//
// Explicit mappings are validated for coverage and otherwise passed through
// unchanged.
package palette

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mwendler/ribbons/pkg/errors"
)

// Hue wheel parameters. The small hue offset keeps the first color off pure
// red; lightness and saturation are fixed so the wheel reads as one family.
const (
	hueOffset  = 0.01
	lightness  = 0.60
	saturation = 0.65
)

// Map assigns a color to every label in a diagram.
type Map map[string]colorful.Color

// Wheel returns n evenly spaced colors from the hue wheel.
func Wheel(n int) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range colors {
		hue := float64(i)/float64(n) + hueOffset
		if hue >= 1 {
			hue -= 1
		}
		colors[i] = colorful.Hsl(hue*360, saturation, lightness)
	}
	return colors
}

// Assign builds a color map for the given labels in order, one wheel color
// per label. Duplicate labels keep their first color.
func Assign(labels []string) Map {
	m := make(Map, len(labels))
	wheel := Wheel(len(labels))
	for i, label := range labels {
		if _, ok := m[label]; !ok {
			m[label] = wheel[i]
		}
	}
	return m
}

// Validate checks that m covers every label. Returns
// COLOR_MAPPING_INCOMPLETE naming the missing labels, sorted for stable
// diagnostics.
func Validate(m Map, labels []string) error {
	var missing []string
	for _, label := range labels {
		if _, ok := m[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return errors.New(errors.ErrCodeColorMapIncomplete,
		"the color mapping is missing values for the following labels: %s",
		strings.Join(missing, ", "))
}

// Resolve returns the color map to use for labels: the explicit mapping when
// given (after coverage validation), otherwise a fresh wheel assignment.
// Explicit mappings pass through unmodified.
func Resolve(explicit Map, labels []string) (Map, error) {
	if explicit == nil {
		return Assign(labels), nil
	}
	if err := Validate(explicit, labels); err != nil {
		return nil, err
	}
	return explicit, nil
}

// ParseHexMap converts label → "#rrggbb" specs into a Map.
func ParseHexMap(specs map[string]string) (Map, error) {
	if specs == nil {
		return nil, nil
	}
	m := make(Map, len(specs))
	for label, spec := range specs {
		if err := errors.ValidateHexColor(spec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "label %q", label)
		}
		c, err := colorful.Hex(normalizeHex(spec))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "label %q", label)
		}
		m[label] = c
	}
	return m, nil
}

// normalizeHex expands #rgb to #rrggbb; colorful.Hex only accepts the long
// form.
func normalizeHex(spec string) string {
	if len(spec) != 4 {
		return spec
	}
	return "#" + strings.Repeat(string(spec[1]), 2) +
		strings.Repeat(string(spec[2]), 2) +
		strings.Repeat(string(spec[3]), 2)
}
