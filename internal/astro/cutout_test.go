package astro

import (
	"testing"

	"github.com/skystead/astro-tools-mcp/internal/grid"
)

// sequentialImage fills the image's grid with v = y*width + x.
func sequentialImage(t *testing.T, w, h int) *Image {
	t.Helper()
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = make([]float64, w)
		for x := range rows[y] {
			rows[y][x] = float64(y*w + x)
		}
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("grid.FromRows failed: %v", err)
	}
	im, err := New(g, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return im
}

func TestCutoutData(t *testing.T) {
	im := sequentialImage(t, 10, 8)

	c := im.CutoutData(2, 1, 6, 4)
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", c.Width(), c.Height())
	}
	if got := c.At(0, 0); got != float64(1*10+2) {
		t.Errorf("origin sample: got %v, want %v", got, 1*10+2)
	}

	// out-of-range bounds are clipped, not rejected
	c = im.CutoutData(8, 6, 100, 100)
	if c.Width() != 2 || c.Height() != 2 {
		t.Errorf("clipped dimensions: got %dx%d, want 2x2", c.Width(), c.Height())
	}
}

func TestCutoutRadius_Interior(t *testing.T) {
	im := sequentialImage(t, 20, 20)

	cut := im.CutoutRadius(10, 10, 3)
	if cut.Data.Width() != 7 || cut.Data.Height() != 7 {
		t.Fatalf("window: got %dx%d, want 7x7", cut.Data.Width(), cut.Data.Height())
	}
	if cut.X1 != 7 || cut.Y1 != 7 || cut.X2 != 14 || cut.Y2 != 14 {
		t.Errorf("bounds: got (%d,%d,%d,%d), want (7,7,14,14)", cut.X1, cut.Y1, cut.X2, cut.Y2)
	}
	// center of the window is the requested center
	if got := cut.Data.At(3, 3); got != float64(10*20+10) {
		t.Errorf("center sample: got %v, want %v", got, 10*20+10)
	}
}

func TestCutoutRadius_EdgeShift(t *testing.T) {
	im := sequentialImage(t, 10, 10)

	tests := []struct {
		name         string
		x, y, radius int
		wantX1, wantY1, wantX2, wantY2 int
	}{
		{"low corner", 1, 1, 3, 0, 0, 7, 7},
		{"high corner", 9, 9, 2, 5, 5, 10, 10},
		{"mixed: low x high y", 0, 9, 2, 0, 5, 5, 10},
		{"radius zero", 4, 4, 0, 4, 4, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cut := im.CutoutRadius(tt.x, tt.y, tt.radius)
			if cut.X1 != tt.wantX1 || cut.Y1 != tt.wantY1 || cut.X2 != tt.wantX2 || cut.Y2 != tt.wantY2 {
				t.Errorf("bounds: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					cut.X1, cut.Y1, cut.X2, cut.Y2,
					tt.wantX1, tt.wantY1, tt.wantX2, tt.wantY2)
			}
			// window size is preserved by the shift
			size := 2*tt.radius + 1
			if cut.Data.Width() != size || cut.Data.Height() != size {
				t.Errorf("window: got %dx%d, want %dx%d",
					cut.Data.Width(), cut.Data.Height(), size, size)
			}
		})
	}
}

func TestCutoutCross_Interior(t *testing.T) {
	im := sequentialImage(t, 15, 12)

	cross := im.CutoutCross(7, 6, 3)
	if cross.X0 != 4 || cross.Y0 != 3 {
		t.Errorf("starts: got (%d,%d), want (4,3)", cross.X0, cross.Y0)
	}
	if len(cross.XArr) != 7 || len(cross.YArr) != 7 {
		t.Fatalf("lengths: got (%d,%d), want (7,7)", len(cross.XArr), len(cross.YArr))
	}
	// row segment runs along y=6; column segment along x=7
	if cross.XArr[0] != float64(6*15+4) {
		t.Errorf("row start sample: got %v, want %v", cross.XArr[0], 6*15+4)
	}
	if cross.YArr[0] != float64(3*15+7) {
		t.Errorf("col start sample: got %v, want %v", cross.YArr[0], 3*15+7)
	}
}

func TestCutoutCross_EdgeClamped(t *testing.T) {
	im := sequentialImage(t, 10, 10)

	// Near the low corner the segments are clamped, not recentered:
	// asymmetric around the requested point.
	cross := im.CutoutCross(1, 2, 4)
	if cross.X0 != 0 || cross.Y0 != 0 {
		t.Errorf("starts: got (%d,%d), want (0,0)", cross.X0, cross.Y0)
	}
	if len(cross.XArr) != 6 { // columns 0..5
		t.Errorf("row length: got %d, want 6", len(cross.XArr))
	}
	if len(cross.YArr) != 7 { // rows 0..6
		t.Errorf("col length: got %d, want 7", len(cross.YArr))
	}

	// High corner.
	cross = im.CutoutCross(9, 9, 4)
	if cross.X0 != 5 || cross.Y0 != 5 {
		t.Errorf("starts: got (%d,%d), want (5,5)", cross.X0, cross.Y0)
	}
	if len(cross.XArr) != 5 || len(cross.YArr) != 5 {
		t.Errorf("lengths: got (%d,%d), want (5,5)", len(cross.XArr), len(cross.YArr))
	}
}
