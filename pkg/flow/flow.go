package flow

import (
	"math"
	"slices"
	"strings"

	"github.com/mwendler/ribbons/pkg/errors"
)

// Side identifies one of the two diagram columns.
type Side string

// The two sides of a diagram.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Record is a single observation: a weighted flow from a left-side label to
// a right-side label. Left and right weights may differ, which lets a strip
// change width across the diagram.
type Record struct {
	Left        string
	Right       string
	LeftWeight  float64
	RightWeight float64
}

// Dataset is a validated collection of records together with the resolved
// stacking order of labels on each side. The zero value is not usable;
// construct with [New].
type Dataset struct {
	records     []Record
	leftLabels  []string
	rightLabels []string
}

// New builds a Dataset from parallel label and weight slices.
//
// left and right must have equal length. leftWeight may be nil, in which case
// every record gets weight 1. rightWeight may be nil, in which case it
// defaults to leftWeight. Label stacking order on each side defaults to
// first-seen order; override it with [Dataset.SetLabelOrder].
//
// Returns NULLS_IN_FRAME if any label entry is empty or any weight is NaN,
// and INVALID_INPUT if a label carries control characters or exceeds 256
// characters.
func New(left, right []string, leftWeight, rightWeight []float64) (*Dataset, error) {
	if len(left) != len(right) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"left and right must have equal length (got %d and %d)", len(left), len(right))
	}

	if leftWeight == nil {
		leftWeight = ones(len(left))
	}
	if rightWeight == nil {
		rightWeight = leftWeight
	}
	if len(leftWeight) != len(left) || len(rightWeight) != len(left) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"weights must match data length %d (got %d and %d)",
			len(left), len(leftWeight), len(rightWeight))
	}

	records := make([]Record, len(left))
	for i := range left {
		if left[i] == "" || right[i] == "" {
			return nil, errors.New(errors.ErrCodeNullsInFrame,
				"flow diagrams do not support null values (row %d)", i)
		}
		if err := errors.ValidateLabel(left[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "left label in row %d", i)
		}
		if err := errors.ValidateLabel(right[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "right label in row %d", i)
		}
		if math.IsNaN(leftWeight[i]) || math.IsNaN(rightWeight[i]) {
			return nil, errors.New(errors.ErrCodeNullsInFrame,
				"flow diagrams do not support null weights (row %d)", i)
		}
		records[i] = Record{
			Left:        left[i],
			Right:       right[i],
			LeftWeight:  leftWeight[i],
			RightWeight: rightWeight[i],
		}
	}

	d := &Dataset{records: records}
	d.leftLabels = uniqueInOrder(left)
	d.rightLabels = uniqueInOrder(right)
	return d, nil
}

// FromRecords builds a Dataset from pre-assembled records.
// Validation matches [New].
func FromRecords(records []Record) (*Dataset, error) {
	left := make([]string, len(records))
	right := make([]string, len(records))
	lw := make([]float64, len(records))
	rw := make([]float64, len(records))
	for i, r := range records {
		left[i] = r.Left
		right[i] = r.Right
		lw[i] = r.LeftWeight
		rw[i] = r.RightWeight
	}
	return New(left, right, lw, rw)
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the underlying records. The slice must not be mutated.
func (d *Dataset) Records() []Record { return d.records }

// LeftLabels returns the stacking order of labels on the left side,
// top of the stack first.
func (d *Dataset) LeftLabels() []string { return d.leftLabels }

// RightLabels returns the stacking order of labels on the right side.
func (d *Dataset) RightLabels() []string { return d.rightLabels }

// Labels returns the stacking order for the given side.
func (d *Dataset) Labels(side Side) []string {
	if side == SideRight {
		return d.rightLabels
	}
	return d.leftLabels
}

// AllLabels returns every distinct label, left-side labels first, each in
// first-seen order. This order drives default palette assignment.
func (d *Dataset) AllLabels() []string {
	all := make([]string, 0, len(d.leftLabels)+len(d.rightLabels))
	all = append(all, d.leftLabels...)
	for _, label := range d.rightLabels {
		if !slices.Contains(all, label) {
			all = append(all, label)
		}
	}
	return all
}

// SetLabelOrder overrides the stacking order on one or both sides.
// A nil slice leaves that side's order unchanged.
//
// Returns LABEL_MISMATCH if a supplied ordering does not contain exactly the
// distinct labels observed on that side; the message lists the symmetric
// difference for diagnosis.
func (d *Dataset) SetLabelOrder(leftLabels, rightLabels []string) error {
	if leftLabels != nil {
		if err := checkDataMatchesLabels(leftLabels, d.leftLabels, SideLeft); err != nil {
			return err
		}
		d.leftLabels = slices.Clone(leftLabels)
	}
	if rightLabels != nil {
		if err := checkDataMatchesLabels(rightLabels, d.rightLabels, SideRight); err != nil {
			return err
		}
		d.rightLabels = slices.Clone(rightLabels)
	}
	return nil
}

// checkDataMatchesLabels verifies that labels and observed distinct data
// values are equal as sets.
func checkDataMatchesLabels(labels, data []string, side Side) error {
	if len(labels) == 0 {
		return nil
	}

	labelSet := make(map[string]bool, len(labels))
	for _, l := range labels {
		labelSet[l] = true
	}
	dataSet := make(map[string]bool, len(data))
	for _, l := range data {
		dataSet[l] = true
	}

	var onlyLabels, onlyData []string
	for _, l := range labels {
		if !dataSet[l] {
			onlyLabels = append(onlyLabels, l)
		}
	}
	for _, l := range data {
		if !labelSet[l] {
			onlyData = append(onlyData, l)
		}
	}

	if len(onlyLabels) == 0 && len(onlyData) == 0 {
		return nil
	}

	var b strings.Builder
	if len(onlyLabels) > 0 {
		b.WriteString(" only in labels: " + strings.Join(onlyLabels, ","))
	}
	if len(onlyData) > 0 {
		b.WriteString(" only in data: " + strings.Join(onlyData, ","))
	}
	return errors.New(errors.ErrCodeLabelMismatch,
		"%s labels and data do not match.%s", side, b.String())
}

// uniqueInOrder returns the distinct values of xs in first-seen order.
func uniqueInOrder(xs []string) []string {
	seen := make(map[string]bool, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// ones returns a slice of n ones, the default weight vector.
func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
