package astro

import "github.com/skystead/astro-tools-mcp/internal/grid"

// Cutout is a rectangular sub-array plus the half-open bounds actually
// used to extract it. When the requested window was shifted to fit the
// image, callers must map results back through these bounds, not the
// requested ones.
type Cutout struct {
	Data *grid.Grid `json:"-"`
	X1   int        `json:"x1"`
	Y1   int        `json:"y1"`
	X2   int        `json:"x2"`
	Y2   int        `json:"y2"`
}

// CrossCut holds one row segment and one column segment through a point,
// with the starting pixel of each segment.
type CrossCut struct {
	X0   int       `json:"x0"`
	Y0   int       `json:"y0"`
	XArr []float64 `json:"x_values"`
	YArr []float64 `json:"y_values"`
}

// CutoutData returns a copy of data[y1:y2, x1:x2] with half-open upper
// bounds. No validation beyond grid slicing semantics: out-of-range
// bounds are silently clipped.
func (im *Image) CutoutData(x1, y1, x2, y2 int) *grid.Grid {
	return im.data.Cut(x1, y1, x2, y2)
}

// CutoutAdjust extracts a window of size (x2-x1, y2-y1), shifting it as
// needed to stay inside the image: a window hanging off the low edge is
// moved to start at 0, one hanging off the high edge is moved to end at
// the image extent. Each axis adjusts independently. The returned bounds
// are the ones actually used.
func (im *Image) CutoutAdjust(x1, y1, x2, y2 int) Cutout {
	dx := x2 - x1
	dy := y2 - y1
	w, h := im.Size()

	if x1 < 0 {
		x1 = 0
		x2 = dx
	} else if x2 >= w {
		x2 = w
		x1 = x2 - dx
	}
	if y1 < 0 {
		y1 = 0
		y2 = dy
	} else if y2 >= h {
		y2 = h
		y1 = y2 - dy
	}

	return Cutout{
		Data: im.CutoutData(x1, y1, x2, y2),
		X1:   x1, Y1: y1, X2: x2, Y2: y2,
	}
}

// CutoutRadius extracts a (2*radius+1)-square window centered at (x, y),
// edge-shifted by CutoutAdjust when the window does not fit.
func (im *Image) CutoutRadius(x, y, radius int) Cutout {
	return im.CutoutAdjust(x-radius, y-radius, x+radius+1, y+radius+1)
}

// CutoutCross extracts the row and column segments of half-length radius
// centered at (x, y). Each segment is clipped independently to the image
// extent (a simple clamp, so segments are asymmetric near edges, never
// recentered). The point (x, y) itself must lie inside the image.
func (im *Image) CutoutCross(x, y, radius int) CrossCut {
	w, h := im.Size()
	x0 := max(0, x-radius)
	x1 := min(w-1, x+radius)
	y0 := max(0, y-radius)
	y1 := min(h-1, y+radius)
	return CrossCut{
		X0:   x0,
		Y0:   y0,
		XArr: im.data.Row(y, x0, x1+1),
		YArr: im.data.Col(x, y0, y1+1),
	}
}
