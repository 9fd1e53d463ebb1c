package layout

import "github.com/mwendler/ribbons/pkg/flow"

// GapFraction is the spacing between consecutive label stacks, expressed as
// a fraction of the side's total weight.
const GapFraction = 0.02

// Stack is the vertical extent of one label's block on one side.
// Top == Bottom + Extent always holds.
type Stack struct {
	Label  string
	Bottom float64
	Top    float64
	Extent float64
}

// ComputeStacks assigns vertical positions to the given side's labels,
// iterating in stacking order. It returns the stacks plus the side's top
// edge, the Top of the last label placed.
//
// The code path is identical for both sides; only the weight column differs.
func ComputeStacks(a *flow.Aggregate, side flow.Side, labels []string) ([]Stack, float64) {
	gap := GapFraction * a.SideTotal(side)

	stacks := make([]Stack, len(labels))
	var topEdge float64
	for i, label := range labels {
		extent := a.Total(side, label)
		s := Stack{Label: label, Extent: extent}
		if i == 0 {
			s.Bottom = 0
		} else {
			s.Bottom = stacks[i-1].Top + gap
		}
		s.Top = s.Bottom + extent
		stacks[i] = s
		topEdge = s.Top
	}
	return stacks, topEdge
}

// StackFor returns the stack for label, or a zero Stack if absent.
func StackFor(stacks []Stack, label string) Stack {
	for _, s := range stacks {
		if s.Label == label {
			return s
		}
	}
	return Stack{}
}
