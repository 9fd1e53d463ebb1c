// Package layout computes the geometry of two-column flow diagrams.
//
// The engine is pure: it consumes an aggregated [flow.Dataset] and returns
// coordinate data (label stacks and strip curves) without touching any
// rendering backend. Sinks in [pkg/render] consume the resulting [Layout].
//
// # Stacks
//
// Each side's labels are stacked bottom-up in label order. Consecutive labels
// are separated by a fixed gap of 2% of the side's total weight:
//
//	bottom[0] = 0
//	bottom[i] = top[i-1] + 0.02 * sideTotal   (i > 0)
//	top[i]    = bottom[i] + totalWeight(label[i])
//
// # Strips
//
// Every (left, right) pair with at least one record gets a strip. Its lower
// and upper edges start as step functions (100 samples, half at the left
// offset, half at the right offset) and are smoothed by two passes of a
// width-20 moving average in "valid" mode, leaving 62 samples. Strips stack
// within a label's column in iteration order: left labels outer, right labels
// inner, with a per-label cursor advanced by each pair's weight.
package layout
