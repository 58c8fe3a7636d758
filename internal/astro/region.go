package astro

import "fmt"

// Region is a rectangular sub-area of the pixel grid with inclusive
// bounds: 0 <= X1 <= X2 < width and 0 <= Y1 <= Y2 < height.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// RegionError reports a region coordinate outside the valid range for its
// axis, or a malformed (inverted) region.
type RegionError struct {
	Coord string // offending coordinate, e.g. "x1"
	Value int
	Min   int
	Max   int // inclusive
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("%s value (%d) out of range (%d..%d)", e.Coord, e.Value, e.Min, e.Max)
}

// SetRegion replaces the tracked region after validating every coordinate
// against the image extent. Inverted bounds (x2 < x1 or y2 < y1) are
// rejected the same way as out-of-range ones.
func (im *Image) SetRegion(x1, y1, x2, y2 int) error {
	w, h := im.Size()
	if x1 < 0 || x1 >= w {
		return &RegionError{Coord: "x1", Value: x1, Min: 0, Max: w - 1}
	}
	if y1 < 0 || y1 >= h {
		return &RegionError{Coord: "y1", Value: y1, Min: 0, Max: h - 1}
	}
	if x2 < 0 || x2 >= w {
		return &RegionError{Coord: "x2", Value: x2, Min: 0, Max: w - 1}
	}
	if y2 < 0 || y2 >= h {
		return &RegionError{Coord: "y2", Value: y2, Min: 0, Max: h - 1}
	}
	if x2 < x1 {
		return &RegionError{Coord: "x2", Value: x2, Min: x1, Max: w - 1}
	}
	if y2 < y1 {
		return &RegionError{Coord: "y2", Value: y2, Min: y1, Max: h - 1}
	}
	im.x1, im.y1, im.x2, im.y2 = x1, y1, x2, y2
	return nil
}

// SetCompatibleRegion sets the maximal region consistent with the image
// extent that fits inside the requested box, and returns it. For any
// request whose upper corner is not left of pixel 0, this never fails.
func (im *Image) SetCompatibleRegion(x1, y1, x2, y2 int) (Region, error) {
	full := im.MaxRegion()
	u1 := min(max(full.X1, x1), x2)
	v1 := min(max(full.Y1, y1), y2)
	u2 := min(full.X2, x2)
	v2 := min(full.Y2, y2)
	if err := im.SetRegion(u1, v1, u2, v2); err != nil {
		return Region{}, err
	}
	return im.Region(), nil
}

// MaximizeRegion sets the region to the full image extent.
func (im *Image) MaximizeRegion() {
	im.x1, im.y1 = 0, 0
	im.x2, im.y2 = im.Width()-1, im.Height()-1
}

// Region returns the tracked region.
func (im *Image) Region() Region {
	return Region{X1: im.x1, Y1: im.y1, X2: im.x2, Y2: im.y2}
}

// MaxRegion returns the full image extent as a region.
func (im *Image) MaxRegion() Region {
	return Region{X1: 0, Y1: 0, X2: im.Width() - 1, Y2: im.Height() - 1}
}

// CopyRegionTo applies this image's region to other, which must be at
// least as large.
func (im *Image) CopyRegionTo(other *Image) error {
	return other.SetRegion(im.x1, im.y1, im.x2, im.y2)
}

// updateRegion re-clamps the region after the grid was replaced with one
// of different dimensions, so it is never left inconsistent.
func (im *Image) updateRegion() {
	w, h := im.Size()
	im.x1 = min(im.x1, w-1)
	im.y1 = min(im.y1, h-1)
	im.x2 = min(im.x2, w-1)
	im.y2 = min(im.y2, h-1)
}
