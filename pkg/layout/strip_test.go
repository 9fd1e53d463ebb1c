package layout

import (
	"math"
	"testing"
)

func TestMovingAverageLength(t *testing.T) {
	xs := make([]float64, stepSamples)
	out := movingAverage(xs)
	if len(out) != stepSamples-smoothWindow+1 {
		t.Errorf("len = %d, want %d", len(out), stepSamples-smoothWindow+1)
	}

	// Two passes reduce 100 samples to 62.
	out = movingAverage(out)
	if len(out) != 62 {
		t.Errorf("len after second pass = %d, want 62", len(out))
	}
}

func TestMovingAverageConstant(t *testing.T) {
	xs := make([]float64, 40)
	for i := range xs {
		xs[i] = 3.5
	}
	for i, v := range movingAverage(xs) {
		if math.Abs(v-3.5) > tol {
			t.Errorf("out[%d] = %v, want 3.5", i, v)
		}
	}
}

func TestMovingAverageTooShort(t *testing.T) {
	if out := movingAverage(make([]float64, smoothWindow-1)); out != nil {
		t.Errorf("movingAverage() on short input = %v, want nil", out)
	}
}

func TestSmoothedStepEndpoints(t *testing.T) {
	ys := smoothedStep(2, 10)

	if len(ys) != 62 {
		t.Fatalf("len = %d, want 62", len(ys))
	}
	// The first and last samples only see the flat halves of the step, so
	// they hit the endpoints exactly.
	if math.Abs(ys[0]-2) > tol {
		t.Errorf("ys[0] = %v, want 2", ys[0])
	}
	if math.Abs(ys[len(ys)-1]-10) > tol {
		t.Errorf("ys[last] = %v, want 10", ys[len(ys)-1])
	}
}

func TestSmoothedStepMonotonicNoOvershoot(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{name: "rising", a: 0, b: 5},
		{name: "falling", a: 5, b: 0},
		{name: "flat", a: 1, b: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys := smoothedStep(tt.a, tt.b)
			lo := math.Min(tt.a, tt.b)
			hi := math.Max(tt.a, tt.b)
			rising := tt.b >= tt.a
			for i, v := range ys {
				if v < lo-tol || v > hi+tol {
					t.Fatalf("ys[%d] = %v outside [%v, %v]", i, v, lo, hi)
				}
				if i > 0 {
					if rising && ys[i] < ys[i-1]-tol {
						t.Fatalf("ys[%d] = %v < ys[%d] = %v, want monotonic rise", i, ys[i], i-1, ys[i-1])
					}
					if !rising && ys[i] > ys[i-1]+tol {
						t.Fatalf("ys[%d] = %v > ys[%d] = %v, want monotonic fall", i, ys[i], i-1, ys[i-1])
					}
				}
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	xs := linspace(0, 10, 5)
	want := []float64{0, 2.5, 5, 7.5, 10}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > tol {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestComputeSinglePair(t *testing.T) {
	d := mustDataset(t, []string{"1"}, []string{"2"}, nil, nil)

	l, err := Compute(d, DefaultAspect)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if len(l.Strips) != 1 {
		t.Fatalf("len(Strips) = %d, want 1", len(l.Strips))
	}
	s := l.Strips[0]
	if s.Left != "1" || s.Right != "2" {
		t.Errorf("strip labels = (%s, %s), want (1, 2)", s.Left, s.Right)
	}
	if len(s.X) != len(s.Lower) || len(s.Lower) != len(s.Upper) {
		t.Fatalf("curve lengths differ: %d, %d, %d", len(s.X), len(s.Lower), len(s.Upper))
	}
	if math.Abs(s.Lower[0]-0) > tol || math.Abs(s.Upper[0]-1) > tol {
		t.Errorf("left edge = (%v, %v), want (0, 1)", s.Lower[0], s.Upper[0])
	}
	last := len(s.X) - 1
	if math.Abs(s.X[0]) > tol || math.Abs(s.X[last]-l.XMax) > tol {
		t.Errorf("X spans [%v, %v], want [0, %v]", s.X[0], s.X[last], l.XMax)
	}
}

// Strips within a label's column stack in iteration order: each strip's
// lower edge starts where the previous strip's upper edge started.
func TestComputeStripStacking(t *testing.T) {
	d := mustDataset(t,
		[]string{"a", "a", "b"},
		[]string{"x", "y", "x"},
		nil, nil,
	)

	l, err := Compute(d, DefaultAspect)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Pair order: (a,x), (a,y), (b,x)
	if len(l.Strips) != 3 {
		t.Fatalf("len(Strips) = %d, want 3", len(l.Strips))
	}
	ax, ay, bx := l.Strips[0], l.Strips[1], l.Strips[2]
	if ax.Left != "a" || ax.Right != "x" || ay.Right != "y" || bx.Left != "b" {
		t.Fatalf("unexpected strip order: %v", []Strip{ax, ay, bx})
	}

	// Second strip of label "a" starts on the left where the first ended.
	if math.Abs(ay.Lower[0]-ax.Upper[0]) > tol {
		t.Errorf("ay.Lower[0] = %v, want %v", ay.Lower[0], ax.Upper[0])
	}

	// Second strip into label "x" starts on the right where the first ended.
	last := len(bx.Lower) - 1
	if math.Abs(bx.Lower[last]-ax.Upper[last]) > tol {
		t.Errorf("bx.Lower[last] = %v, want %v", bx.Lower[last], ax.Upper[last])
	}
}

// A pair whose records sum to zero weight still gets a strip; only pairs
// with no records at all are skipped.
func TestComputeZeroWeightPair(t *testing.T) {
	d := mustDataset(t,
		[]string{"a", "b"},
		[]string{"x", "y"},
		[]float64{0, 1},
		nil,
	)

	l, err := Compute(d, DefaultAspect)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(l.Strips) != 2 {
		t.Errorf("len(Strips) = %d, want 2", len(l.Strips))
	}
}

func TestComputeIdempotent(t *testing.T) {
	d := mustDataset(t,
		[]string{"a", "a", "b"},
		[]string{"x", "y", "x"},
		[]float64{1, 2, 3},
		nil,
	)

	first, err := Compute(d, DefaultAspect)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := Compute(d, DefaultAspect)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if first.TopEdge != second.TopEdge || first.XMax != second.XMax {
		t.Errorf("frame differs between runs")
	}
	for i := range first.Strips {
		for j := range first.Strips[i].Lower {
			if first.Strips[i].Lower[j] != second.Strips[i].Lower[j] ||
				first.Strips[i].Upper[j] != second.Strips[i].Upper[j] {
				t.Fatalf("strip %d sample %d differs between runs", i, j)
			}
		}
	}
}
