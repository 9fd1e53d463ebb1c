package io

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwendler/ribbons/pkg/errors"
	"github.com/mwendler/ribbons/pkg/flow"
)

// CSV column names. left and right are required; the weight columns are
// optional and follow the same defaulting rules as [flow.New].
const (
	colLeft        = "left"
	colRight       = "right"
	colLeftWeight  = "left_weight"
	colRightWeight = "right_weight"
)

// ReadCSV parses a flow dataset from CSV. The first row must be a header
// naming the columns; column order is free.
func ReadCSV(r io.Reader) (*flow.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV header")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	leftIdx, ok := idx[colLeft]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "CSV is missing the %q column", colLeft)
	}
	rightIdx, ok := idx[colRight]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "CSV is missing the %q column", colRight)
	}
	lwIdx, hasLW := idx[colLeftWeight]
	rwIdx, hasRW := idx[colRightWeight]

	var left, right []string
	var lw, rw []float64
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV row %d", row)
		}
		left = append(left, rec[leftIdx])
		right = append(right, rec[rightIdx])
		if hasLW {
			w, err := strconv.ParseFloat(strings.TrimSpace(rec[lwIdx]), 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s in row %d", colLeftWeight, row)
			}
			lw = append(lw, w)
		}
		if hasRW {
			w, err := strconv.ParseFloat(strings.TrimSpace(rec[rwIdx]), 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s in row %d", colRightWeight, row)
			}
			rw = append(rw, w)
		}
		row++
	}

	return flow.New(left, right, lw, rw)
}

// record is the JSON serialization of one flow record.
type record struct {
	Left        string   `json:"left"`
	Right       string   `json:"right"`
	LeftWeight  *float64 `json:"left_weight,omitempty"`
	RightWeight *float64 `json:"right_weight,omitempty"`
}

// ReadJSON parses a flow dataset from a JSON array of record objects.
// Omitted left weights default to 1; omitted right weights default to the
// record's left weight.
func ReadJSON(r io.Reader) (*flow.Dataset, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON records")
	}

	left := make([]string, len(records))
	right := make([]string, len(records))
	lw := make([]float64, len(records))
	rw := make([]float64, len(records))
	for i, rec := range records {
		left[i] = rec.Left
		right[i] = rec.Right
		lw[i] = 1
		if rec.LeftWeight != nil {
			lw[i] = *rec.LeftWeight
		}
		rw[i] = lw[i]
		if rec.RightWeight != nil {
			rw[i] = *rec.RightWeight
		}
	}

	return flow.New(left, right, lw, rw)
}

// ReadFile reads a dataset from path, dispatching on the file extension
// (.csv or .json).
func ReadFile(path string) (*flow.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".csv"):
		return ReadCSV(f)
	case strings.HasSuffix(path, ".json"):
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported dataset format: %s (use .csv or .json)", path)
	}
}
