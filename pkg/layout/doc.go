// Package layout implements a constraint-based measure/arrange engine for
// panel UIs.
//
// It supports row, column, split, and box containers, fixed and
// weight-flexible sizing policies, per-node scale factors, and alignment
// modes. Types are re-exported through the root flexel package for public
// consumption.
//
// The main entry points are [Measure], which resolves a [Constraints] box
// into a [Size] for every node bottom-up, and [Arrange], which writes
// absolute [Rect] positions top-down. Each must be called exactly once per
// node per tick, in that order.
package layout
