// Package pkg provides the core libraries for ribbons flow diagrams.
//
// # Overview
//
// Ribbons renders two-column flow ("Sankey") diagrams: weighted movement of
// categorical items from a left set of labels to a right set. The pkg
// directory is organized into four main areas:
//
//  1. [flow] - Data model (records, validation, aggregation)
//  2. [layout] - Pure geometry (label stacks, strip curves)
//  3. [palette] / [render] - Colors, diagram assembly, output sinks
//  4. [pipeline] - Orchestration (validate → layout → render)
//
// # Architecture
//
// The typical data flow through ribbons:
//
//	Parallel label/weight slices (or CSV/JSON via [io])
//	         ↓
//	    [flow] package (validation + aggregation)
//	         ↓
//	    [layout] package (stack positions + strip curves)
//	         ↓
//	    [palette] + [render] packages (colors + drawable primitives)
//	         ↓
//	    SVG/PNG/JSON/DOT output via [render/sink]
//
// # Quick Start
//
// Compute a layout and render it to SVG:
//
//	import (
//	    "github.com/mwendler/ribbons/pkg/flow"
//	    "github.com/mwendler/ribbons/pkg/layout"
//	    "github.com/mwendler/ribbons/pkg/palette"
//	    "github.com/mwendler/ribbons/pkg/render"
//	    "github.com/mwendler/ribbons/pkg/render/sink"
//	)
//
//	// 1. Build and validate the dataset
//	d, _ := flow.New(
//	    []string{"a", "a", "b"},
//	    []string{"x", "y", "x"},
//	    nil, nil,
//	)
//
//	// 2. Compute geometry
//	l, _ := layout.Compute(d, layout.DefaultAspect)
//
//	// 3. Resolve colors and assemble the diagram
//	colors, _ := palette.Resolve(nil, d.AllLabels())
//	diagram := render.Build(l, colors, render.Options{})
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(diagram)
//
// The [pipeline] package wraps these stages behind a single Runner for use
// by the CLI and other callers.
//
// [flow]: github.com/mwendler/ribbons/pkg/flow
// [layout]: github.com/mwendler/ribbons/pkg/layout
// [palette]: github.com/mwendler/ribbons/pkg/palette
// [render]: github.com/mwendler/ribbons/pkg/render
// [render/sink]: github.com/mwendler/ribbons/pkg/render/sink
// [pipeline]: github.com/mwendler/ribbons/pkg/pipeline
// [io]: github.com/mwendler/ribbons/pkg/io
package pkg
