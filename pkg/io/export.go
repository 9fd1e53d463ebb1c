package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mwendler/ribbons/pkg/layout"
)

// layoutDoc is the JSON serialization of a computed layout.
type layoutDoc struct {
	LeftStacks  []stackDoc `json:"left_stacks"`
	RightStacks []stackDoc `json:"right_stacks"`
	Strips      []stripDoc `json:"strips"`
	TopEdge     float64    `json:"top_edge"`
	XMax        float64    `json:"x_max"`
	Aspect      float64    `json:"aspect"`
}

type stackDoc struct {
	Label  string  `json:"label"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
	Extent float64 `json:"extent"`
}

type stripDoc struct {
	Left  string    `json:"left"`
	Right string    `json:"right"`
	X     []float64 `json:"x"`
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// WriteLayoutJSON encodes a layout as indented JSON and writes it to w.
// The output holds the pure geometry only; colors and fonts are rendering
// concerns and are not part of it.
func WriteLayoutJSON(l *layout.Layout, w io.Writer) error {
	doc := layoutDoc{
		LeftStacks:  stackDocs(l.LeftStacks),
		RightStacks: stackDocs(l.RightStacks),
		Strips:      make([]stripDoc, len(l.Strips)),
		TopEdge:     l.TopEdge,
		XMax:        l.XMax,
		Aspect:      l.Aspect,
	}
	for i, s := range l.Strips {
		doc.Strips[i] = stripDoc{Left: s.Left, Right: s.Right, X: s.X, Lower: s.Lower, Upper: s.Upper}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayoutJSON writes a layout to a JSON file at path.
// This is a convenience wrapper around [WriteLayoutJSON].
func ExportLayoutJSON(l *layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayoutJSON(l, f)
}

func stackDocs(stacks []layout.Stack) []stackDoc {
	docs := make([]stackDoc, len(stacks))
	for i, s := range stacks {
		docs[i] = stackDoc{Label: s.Label, Bottom: s.Bottom, Top: s.Top, Extent: s.Extent}
	}
	return docs
}
