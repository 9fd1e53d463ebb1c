package flow

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/mwendler/ribbons/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	d, err := New([]string{"a", "a", "b"}, []string{"x", "y", "x"}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	for i, r := range d.Records() {
		if r.LeftWeight != 1 || r.RightWeight != 1 {
			t.Errorf("record %d weights = (%v, %v), want (1, 1)", i, r.LeftWeight, r.RightWeight)
		}
	}
}

func TestNewRightWeightDefaultsToLeft(t *testing.T) {
	d, err := New([]string{"a", "b"}, []string{"x", "y"}, []float64{2, 3}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i, r := range d.Records() {
		if r.RightWeight != r.LeftWeight {
			t.Errorf("record %d right weight = %v, want %v", i, r.RightWeight, r.LeftWeight)
		}
	}
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]string{"a", "b"}, []string{"x"}, nil, nil)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("New() error = %v, want INVALID_INPUT", err)
	}

	_, err = New([]string{"a", "b"}, []string{"x", "y"}, []float64{1}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("New() error = %v, want INVALID_INPUT", err)
	}
}

func TestNewInvalidLabels(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
	}{
		{name: "control character in left label", left: []string{"a\x07"}, right: []string{"x"}},
		{name: "newline in right label", left: []string{"a"}, right: []string{"x\ny"}},
		{name: "overlong label", left: []string{strings.Repeat("a", 257)}, right: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.left, tt.right, nil, nil)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("New() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestNewNulls(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
		lw    []float64
	}{
		{name: "empty left label", left: []string{"a", ""}, right: []string{"x", "y"}},
		{name: "empty right label", left: []string{"a", "b"}, right: []string{"", "y"}},
		{name: "NaN weight", left: []string{"a", "b"}, right: []string{"x", "y"}, lw: []float64{1, math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.left, tt.right, tt.lw, nil)
			if !errors.Is(err, errors.ErrCodeNullsInFrame) {
				t.Errorf("New() error = %v, want NULLS_IN_FRAME", err)
			}
		})
	}
}

func TestLabelOrderDefaults(t *testing.T) {
	d, err := New([]string{"b", "a", "b"}, []string{"y", "x", "x"}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := d.LeftLabels(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("LeftLabels() = %v, want [b a]", got)
	}
	if got := d.RightLabels(); !slices.Equal(got, []string{"y", "x"}) {
		t.Errorf("RightLabels() = %v, want [y x]", got)
	}
}

func TestSetLabelOrder(t *testing.T) {
	d, err := New([]string{"a", "b"}, []string{"x", "y"}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := d.SetLabelOrder([]string{"b", "a"}, nil); err != nil {
		t.Fatalf("SetLabelOrder() error = %v", err)
	}
	if got := d.LeftLabels(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("LeftLabels() = %v, want [b a]", got)
	}
	// Right side untouched
	if got := d.RightLabels(); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("RightLabels() = %v, want [x y]", got)
	}
}

func TestSetLabelOrderMismatch(t *testing.T) {
	tests := []struct {
		name        string
		leftLabels  []string
		rightLabels []string
	}{
		{name: "missing label", leftLabels: []string{"a"}},
		{name: "extra label", leftLabels: []string{"a", "b", "c"}},
		{name: "wrong side", rightLabels: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New([]string{"a", "b"}, []string{"x", "y"}, nil, nil)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			err = d.SetLabelOrder(tt.leftLabels, tt.rightLabels)
			if !errors.Is(err, errors.ErrCodeLabelMismatch) {
				t.Errorf("SetLabelOrder() error = %v, want LABEL_MISMATCH", err)
			}
		})
	}
}

func TestAllLabels(t *testing.T) {
	// "x" appears on both sides and must be listed once, at its left-side
	// first-seen position.
	d, err := New([]string{"a", "x"}, []string{"x", "b"}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := d.AllLabels(); !slices.Equal(got, []string{"a", "x", "b"}) {
		t.Errorf("AllLabels() = %v, want [a x b]", got)
	}
}

func TestFromRecords(t *testing.T) {
	d, err := FromRecords([]Record{
		{Left: "a", Right: "x", LeftWeight: 2, RightWeight: 2},
		{Left: "b", Right: "x", LeftWeight: 1, RightWeight: 1},
	})
	if err != nil {
		t.Fatalf("FromRecords() error = %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}
