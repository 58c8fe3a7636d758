package grid

import "fmt"

// Grid is a row-major 2-D array of float64 samples. (0,0) is the top-left
// pixel; X increases rightward (columns), Y increases downward (rows).
//
// Slicing methods (Cut, Row, Col) use half-open bounds with NumPy-style
// index handling: negative indices count from the end of the axis, and
// out-of-range bounds are silently clipped rather than rejected.
type Grid struct {
	data   []float64
	width  int
	height int
}

// New creates a zero-filled grid. Degenerate dimensions are rejected here
// so downstream region arithmetic never sees an empty image.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d: both must be positive", width, height)
	}
	return &Grid{
		data:   make([]float64, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromRows builds a grid from row slices. All rows must have equal,
// non-zero length.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("invalid grid data: no rows or empty rows")
	}
	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged grid data: row %d has %d samples, want %d", y, len(row), width)
		}
		copy(g.data[y*width:(y+1)*width], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the sample at (x, y). Panics on out-of-range indices, the
// same contract as direct array indexing.
func (g *Grid) At(x, y int) float64 {
	g.check(x, y)
	return g.data[y*g.width+x]
}

// Set stores a sample at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.check(x, y)
	g.data[y*g.width+x] = v
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid index (%d,%d) out of range %dx%d", x, y, g.width, g.height))
	}
}

// clipIndex resolves a slice bound against an axis of length n: negative
// values count from the end, and the result is clipped to [0, n].
func clipIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// Cut returns a copy of the sub-array data[y1:y2, x1:x2] with half-open
// upper bounds. Bounds outside the grid are clipped, never rejected; an
// inverted or fully clipped range yields a 0-width or 0-height result.
func (g *Grid) Cut(x1, y1, x2, y2 int) *Grid {
	x1 = clipIndex(x1, g.width)
	x2 = clipIndex(x2, g.width)
	y1 = clipIndex(y1, g.height)
	y2 = clipIndex(y2, g.height)
	w := x2 - x1
	if w < 0 {
		w = 0
	}
	h := y2 - y1
	if h < 0 {
		h = 0
	}
	out := &Grid{
		data:   make([]float64, w*h),
		width:  w,
		height: h,
	}
	for y := 0; y < h; y++ {
		src := (y1+y)*g.width + x1
		copy(out.data[y*w:(y+1)*w], g.data[src:src+w])
	}
	return out
}

// Row returns a copy of data[y, x1:x2] with the same clipped half-open
// slicing as Cut. The row index y must be in range.
func (g *Grid) Row(y, x1, x2 int) []float64 {
	g.check(0, y)
	x1 = clipIndex(x1, g.width)
	x2 = clipIndex(x2, g.width)
	if x2 < x1 {
		x2 = x1
	}
	out := make([]float64, x2-x1)
	copy(out, g.data[y*g.width+x1:y*g.width+x2])
	return out
}

// Col returns a copy of data[y1:y2, x] with clipped half-open slicing.
// The column index x must be in range.
func (g *Grid) Col(x, y1, y2 int) []float64 {
	g.check(x, 0)
	y1 = clipIndex(y1, g.height)
	y2 = clipIndex(y2, g.height)
	if y2 < y1 {
		y2 = y1
	}
	out := make([]float64, y2-y1)
	for i := range out {
		out[i] = g.data[(y1+i)*g.width+x]
	}
	return out
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	out := &Grid{
		data:   make([]float64, len(g.data)),
		width:  g.width,
		height: g.height,
	}
	copy(out.data, g.data)
	return out
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// MinMax returns the smallest and largest sample values.
func (g *Grid) MinMax() (min, max float64) {
	min, max = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
