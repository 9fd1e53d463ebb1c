// Package io reads flow datasets from files and exports computed layouts.
//
// Datasets can be read from CSV (header row: left,right[,left_weight
// [,right_weight]]) or from a JSON array of record objects. Layout export
// writes the pure geometry (stacks and strip curves) as JSON so external
// renderers can consume it without recomputing.
package io
