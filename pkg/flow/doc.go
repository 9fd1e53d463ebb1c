// Package flow holds the data model for two-column flow diagrams.
//
// A diagram is described by parallel slices: for every observation there is a
// left-side label, a right-side label, and a weight per side. The package
// validates that input (missing values, label orderings, weight lengths) and
// aggregates it into per-pair and per-label weight tables that the layout
// engine consumes.
//
// # Validation
//
// Construction fails early with structured errors from [pkg/errors]:
//   - NULLS_IN_FRAME when a label entry is empty or a weight is NaN
//   - LABEL_MISMATCH when a caller-supplied label ordering does not cover
//     exactly the distinct values observed in the data
//
// # Aggregation
//
// [Dataset.Aggregate] produces an [Aggregate] with summed left and right
// weights per (left, right) pair plus per-label side totals. Aggregation is
// a single sequential pass, so results are a pure function of the input.
package flow
