package layout

import (
	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/flow"
)

// DefaultAspect is the vertical extent of the diagram in units of its
// horizontal extent.
const DefaultAspect = 4.0

// Layout is the complete geometry of a diagram: label stacks on both sides,
// one strip per populated pair, and the frame dimensions. All values are in
// weight units; sinks scale them to device coordinates.
type Layout struct {
	LeftStacks  []Stack
	RightStacks []Stack
	Strips      []Strip

	// TopEdge is the vertical extent used for scaling. It is the top edge
	// of the side computed last (the right side), matching the historical
	// behavior of sequential per-side layout calls. See DESIGN.md.
	TopEdge float64

	// XMax is the horizontal extent, TopEdge / aspect.
	XMax float64

	Aspect float64
}

// Compute runs the full layout: per-side stacking followed by strip
// geometry. It is a pure function of the dataset and aspect; calling it
// twice on identical inputs yields identical layouts.
func Compute(d *flow.Dataset, aspect float64) (*Layout, error) {
	if aspect <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "aspect must be positive (got %v)", aspect)
	}

	a := d.Aggregate()

	leftStacks, _ := ComputeStacks(a, flow.SideLeft, d.LeftLabels())
	rightStacks, topEdge := ComputeStacks(a, flow.SideRight, d.RightLabels())

	xMax := topEdge / aspect

	return &Layout{
		LeftStacks:  leftStacks,
		RightStacks: rightStacks,
		Strips:      computeStrips(d, a, leftStacks, rightStacks, xMax),
		TopEdge:     topEdge,
		Aspect:      aspect,
		XMax:        xMax,
	}, nil
}
