// Package grid provides the row-major 2-D sample array underlying an
// astronomical image.
//
// # Coordinate System
//
// All indices are 0-based with (0,0) at the top-left:
//   - X: column (0 = leftmost)
//   - Y: row (0 = topmost)
//
// # Slicing Semantics
//
// Cut, Row and Col use half-open bounds: the lower bound is included, the
// upper bound excluded. Bounds are never validated; negative indices count
// backward from the end of the axis and anything outside the grid is
// silently clipped. Callers that need strict validation perform it before
// slicing.
package grid
