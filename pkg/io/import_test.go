package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/flow"
	"github.com/mwendler/ribbons/pkg/layout"
)

func TestReadCSV(t *testing.T) {
	input := "left,right,left_weight\na,x,2\nb,y,3\n"

	d, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	r := d.Records()[0]
	if r.Left != "a" || r.Right != "x" || r.LeftWeight != 2 {
		t.Errorf("record = %+v", r)
	}
	// right_weight column absent: defaults to left weight
	if r.RightWeight != 2 {
		t.Errorf("RightWeight = %v, want 2", r.RightWeight)
	}
}

func TestReadCSVColumnOrder(t *testing.T) {
	input := "right_weight,right,left,left_weight\n5,x,a,2\n"

	d, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	r := d.Records()[0]
	if r.Left != "a" || r.Right != "x" || r.LeftWeight != 2 || r.RightWeight != 5 {
		t.Errorf("record = %+v", r)
	}
}

func TestReadCSVNoWeights(t *testing.T) {
	input := "left,right\na,x\nb,y\n"

	d, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	for _, r := range d.Records() {
		if r.LeftWeight != 1 || r.RightWeight != 1 {
			t.Errorf("weights = (%v, %v), want (1, 1)", r.LeftWeight, r.RightWeight)
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{name: "missing left column", input: "l,right\na,x\n", code: errors.ErrCodeInvalidInput},
		{name: "missing right column", input: "left,r\na,x\n", code: errors.ErrCodeInvalidInput},
		{name: "bad weight", input: "left,right,left_weight\na,x,abc\n", code: errors.ErrCodeInvalidInput},
		{name: "empty label", input: "left,right\na,x\n,y\n", code: errors.ErrCodeNullsInFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadCSV() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	input := `[
		{"left": "a", "right": "x", "left_weight": 2, "right_weight": 3},
		{"left": "b", "right": "y"}
	]`

	d, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	r := d.Records()[0]
	if r.LeftWeight != 2 || r.RightWeight != 3 {
		t.Errorf("record 0 weights = (%v, %v), want (2, 3)", r.LeftWeight, r.RightWeight)
	}
	r = d.Records()[1]
	if r.LeftWeight != 1 || r.RightWeight != 1 {
		t.Errorf("record 1 weights = (%v, %v), want (1, 1)", r.LeftWeight, r.RightWeight)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadJSON() error = %v, want INVALID_INPUT", err)
	}
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.txt")
	if err := os.WriteFile(path, []byte("left,right\na,x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ReadFile() error = %v, want UNSUPPORTED", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteLayoutJSON(t *testing.T) {
	d, err := flow.New([]string{"a"}, []string{"x"}, nil, nil)
	if err != nil {
		t.Fatalf("flow.New() error = %v", err)
	}
	l, err := layout.Compute(d, layout.DefaultAspect)
	if err != nil {
		t.Fatalf("layout.Compute() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteLayoutJSON(l, &buf); err != nil {
		t.Fatalf("WriteLayoutJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"left_stacks", "right_stacks", "strips", "top_edge", "x_max"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
