package sink

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/goccy/go-graphviz"

	"github.com/mwendler/ribbons/pkg/flow"
	"github.com/mwendler/ribbons/pkg/palette"
)

// Edge pen widths for the node-link view, in points.
const (
	minPenWidth = 1.0
	maxPenWidth = 8.0
)

// ToDOT converts the aggregated flow graph to Graphviz DOT for node-link
// visualization: left labels as one rank, right labels as another, one edge
// per populated pair with pen width proportional to the pair's left weight.
// Render the result with [GraphvizSVG].
//
// The two sides may share label names, so node identifiers are prefixed with
// their side.
func ToDOT(d *flow.Dataset, colors palette.Map) string {
	a := d.Aggregate()

	var maxWeight float64
	for _, left := range d.LeftLabels() {
		for _, right := range d.RightLabels() {
			maxWeight = math.Max(maxWeight, a.Pair(left, right).LeftWeight)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph flows {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, label := range d.LeftLabels() {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", "l:"+label, label, colors[label].Hex())
	}
	for _, label := range d.RightLabels() {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", "r:"+label, label, colors[label].Hex())
	}

	buf.WriteString("\n")
	for _, left := range d.LeftLabels() {
		for _, right := range d.RightLabels() {
			pw := a.Pair(left, right)
			if pw.Count == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [penwidth=%.2f, color=%q];\n",
				"l:"+left, "r:"+right, penWidth(pw.LeftWeight, maxWeight), colors[left].Hex())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func penWidth(weight, maxWeight float64) float64 {
	if maxWeight <= 0 {
		return minPenWidth
	}
	return minPenWidth + (maxPenWidth-minPenWidth)*weight/maxWeight
}

// GraphvizSVG renders a DOT graph to SVG using Graphviz.
func GraphvizSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
