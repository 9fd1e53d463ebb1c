package layout

import "github.com/mwendler/ribbons/pkg/flow"

// Strip curve parameters. A strip edge starts as a 100-sample step function
// (half at the left offset, half at the right) and is smoothed by two passes
// of a uniform moving average, leaving 100 - 2*(smoothWindow-1) samples.
const (
	stepSamples  = 100
	smoothWindow = 20
	smoothCoeff  = 0.05
)

// Strip is the filled region connecting one left label to one right label.
// X holds the horizontal sample positions; Lower and Upper the smoothed edge
// curves, all of equal length.
type Strip struct {
	Left  string
	Right string
	X     []float64
	Lower []float64
	Upper []float64
}

// computeStrips generates a strip per (left, right) pair with at least one
// matching record. Pair iteration order is fixed: left labels outer, right
// labels inner. The per-label cursors advance by each pair's weight so the
// next strip in a column starts immediately above the previous one; this
// ordering is part of the layout contract.
func computeStrips(d *flow.Dataset, a *flow.Aggregate, leftStacks, rightStacks []Stack, xMax float64) []Strip {
	leftCursor := make(map[string]float64, len(leftStacks))
	for _, s := range leftStacks {
		leftCursor[s.Label] = s.Bottom
	}
	rightCursor := make(map[string]float64, len(rightStacks))
	for _, s := range rightStacks {
		rightCursor[s.Label] = s.Bottom
	}

	var strips []Strip
	for _, left := range d.LeftLabels() {
		for _, right := range d.RightLabels() {
			pw := a.Pair(left, right)
			if pw.Count == 0 {
				continue
			}

			lower := smoothedStep(leftCursor[left], rightCursor[right])
			upper := smoothedStep(leftCursor[left]+pw.LeftWeight, rightCursor[right]+pw.RightWeight)

			leftCursor[left] += pw.LeftWeight
			rightCursor[right] += pw.RightWeight

			strips = append(strips, Strip{
				Left:  left,
				Right: right,
				X:     linspace(0, xMax, len(lower)),
				Lower: lower,
				Upper: upper,
			})
		}
	}
	return strips
}

// smoothedStep builds the step function from a to b and applies two passes
// of the moving-average filter.
func smoothedStep(a, b float64) []float64 {
	ys := make([]float64, stepSamples)
	for i := range ys {
		if i < stepSamples/2 {
			ys[i] = a
		} else {
			ys[i] = b
		}
	}
	ys = movingAverage(ys)
	return movingAverage(ys)
}

// movingAverage convolves xs with smoothCoeff * ones(smoothWindow) keeping
// only fully-overlapping samples, so the output is shorter by
// smoothWindow - 1.
func movingAverage(xs []float64) []float64 {
	if len(xs) < smoothWindow {
		return nil
	}

	out := make([]float64, len(xs)-smoothWindow+1)
	var sum float64
	for i := 0; i < smoothWindow; i++ {
		sum += xs[i]
	}
	out[0] = smoothCoeff * sum
	for i := 1; i < len(out); i++ {
		sum += xs[i+smoothWindow-1] - xs[i-1]
		out[i] = smoothCoeff * sum
	}
	return out
}

// linspace returns n evenly spaced samples from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}
