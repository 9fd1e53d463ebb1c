package flow

// Pair identifies one (left label, right label) combination.
type Pair struct {
	Left  string
	Right string
}

// PairWidth holds the summed weights of all records matching one pair.
// Count tracks how many records contributed; a pair with Count > 0 gets a
// strip even when its summed weight is zero.
type PairWidth struct {
	LeftWeight  float64
	RightWeight float64
	Count       int
}

// Aggregate holds the grouped weight tables derived from a Dataset.
type Aggregate struct {
	pairs       map[Pair]PairWidth
	leftTotals  map[string]float64
	rightTotals map[string]float64
}

// Aggregate groups records by (left, right) pair and sums weights per pair
// and per label. A single sequential pass in record order keeps the result a
// pure function of the input.
func (d *Dataset) Aggregate() *Aggregate {
	a := &Aggregate{
		pairs:       make(map[Pair]PairWidth),
		leftTotals:  make(map[string]float64, len(d.leftLabels)),
		rightTotals: make(map[string]float64, len(d.rightLabels)),
	}
	for _, r := range d.records {
		key := Pair{Left: r.Left, Right: r.Right}
		pw := a.pairs[key]
		pw.LeftWeight += r.LeftWeight
		pw.RightWeight += r.RightWeight
		pw.Count++
		a.pairs[key] = pw

		a.leftTotals[r.Left] += r.LeftWeight
		a.rightTotals[r.Right] += r.RightWeight
	}
	return a
}

// Pair returns the summed weights for one (left, right) pair.
// Pairs with no matching records return a zero PairWidth.
func (a *Aggregate) Pair(left, right string) PairWidth {
	return a.pairs[Pair{Left: left, Right: right}]
}

// Total returns the summed weight of one label on the given side.
func (a *Aggregate) Total(side Side, label string) float64 {
	if side == SideRight {
		return a.rightTotals[label]
	}
	return a.leftTotals[label]
}

// SideTotal returns the summed weight of all records on the given side.
// The layout engine derives the inter-label gap from this value.
func (a *Aggregate) SideTotal(side Side) float64 {
	totals := a.leftTotals
	if side == SideRight {
		totals = a.rightTotals
	}
	var sum float64
	for _, w := range totals {
		sum += w
	}
	return sum
}
