// Package render turns computed layouts into drawable diagrams and output
// artifacts.
//
// # Overview
//
// The geometry in [pkg/layout] is backend-independent; this package is its
// consumer. [Build] combines a layout with a color map into a [Diagram] of
// drawable primitives (bars, strips, label texts), and the [sink] subpackage
// serializes a Diagram to concrete formats:
//
//   - sink.RenderSVG: standalone SVG document, axes hidden
//   - sink.RenderPNG: raster image at 150 DPI with a tight bounding box
//   - sink.ToDOT + sink.GraphvizSVG: node-link view of the flow graph
//     rendered through Graphviz
//
// # Usage
//
//	l, _ := layout.Compute(dataset, layout.DefaultAspect)
//	colors, _ := palette.Resolve(nil, dataset.AllLabels())
//	d := render.Build(l, colors, render.Options{})
//	svg := sink.RenderSVG(d)
//
// [sink]: github.com/mwendler/ribbons/pkg/render/sink
package render
