package astro

import (
	"fmt"
	"math"

	"github.com/skystead/astro-tools-mcp/internal/sphere"
)

// Point is an integer pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CompassVector is an origin pixel plus the endpoints of the north and
// east arms, for overlay renderers drawing a sky-orientation indicator.
type CompassVector struct {
	Origin Point `json:"origin"`
	North  Point `json:"north"`
	East   Point `json:"east"`
}

// PixelToSky converts a pixel position to (RA, Dec) degrees by delegating
// to the injected WCS capability. Pixel coordinates outside the image are
// legitimate; the projection simply extrapolates.
func (im *Image) PixelToSky(x, y float64) (ra, dec float64, err error) {
	return im.wcs.PixelToSky(x, y)
}

// SkyToPixel converts (RA, Dec) degrees to a pixel position via the WCS
// capability.
func (im *Image) SkyToPixel(ra, dec float64) (x, y float64, err error) {
	return im.wcs.SkyToPixel(ra, dec)
}

// StarSeparation formats the angular separation between two sky points as
// sexagesimal text.
func (im *Image) StarSeparation(ra1, dec1, ra2, dec2 float64) string {
	return sphere.FormatSeparation(ra1, dec1, ra2, dec2)
}

// StarSeparationXY formats the angular separation between two pixel
// positions, converting each through the WCS first.
func (im *Image) StarSeparationXY(x1, y1, x2, y2 float64) (string, error) {
	raOrg, decOrg, err := im.PixelToSky(x1, y1)
	if err != nil {
		return "", err
	}
	raDst, decDst, err := im.PixelToSky(x2, y2)
	if err != nil {
		return "", err
	}
	return im.StarSeparation(raOrg, decOrg, raDst, decDst), nil
}

// PixelRadiusSky estimates the local pixel-per-angle scale along RA at a
// sky point: it projects the point and the point deltaDeg further in RA
// (wrapped past 360) and returns the horizontal pixel displacement.
func (im *Image) PixelRadiusSky(ra, dec, deltaDeg float64) (float64, error) {
	x1, _, err := im.SkyToPixel(ra, dec)
	if err != nil {
		return 0, err
	}
	ra2 := ra + deltaDeg
	if ra2 > 360.0 {
		ra2 = math.Mod(ra2, 360.0)
	}
	x2, _, err := im.SkyToPixel(ra2, dec)
	if err != nil {
		return 0, err
	}
	return math.Abs(x2 - x1), nil
}

// PixelRadiusXY is the pixel-anchored variant of PixelRadiusSky: the
// starting sky point is taken from the pixel position (x, y).
func (im *Image) PixelRadiusXY(x, y, deltaDeg float64) (float64, error) {
	ra, dec, err := im.PixelToSky(x, y)
	if err != nil {
		return 0, err
	}
	ra2 := ra + deltaDeg
	if ra2 > 360.0 {
		ra2 = math.Mod(ra2, 360.0)
	}
	x2, _, err := im.SkyToPixel(ra2, dec)
	if err != nil {
		return 0, err
	}
	return math.Abs(x2 - x), nil
}

// PixelRadiusCenter estimates the RA pixel scale at the image center.
func (im *Image) PixelRadiusCenter(deltaDeg float64) (float64, error) {
	return im.PixelRadiusXY(float64(im.Width()/2), float64(im.Height()/2), deltaDeg)
}

// Compass builds a sky-orientation indicator anchored at pixel (x, y):
// the east arm ends lenDegE degrees along RA (wrapped past 360), the
// north arm lenDegN degrees along Dec. Arm endpoints are rounded to the
// nearest integer pixel. The arms have equal on-screen length only when
// the caller pre-scaled the degree lengths per axis, as CompassCenter
// does.
func (im *Image) Compass(x, y int, lenDegE, lenDegN float64) (*CompassVector, error) {
	ra, dec, err := im.PixelToSky(float64(x), float64(y))
	if err != nil {
		return nil, err
	}

	raE := ra + lenDegE
	if raE > 360.0 {
		raE = math.Mod(raE, 360.0)
	}
	decN := dec + lenDegN

	xe, ye, err := im.SkyToPixel(raE, dec)
	if err != nil {
		return nil, err
	}
	xn, yn, err := im.SkyToPixel(ra, decN)
	if err != nil {
		return nil, err
	}

	return &CompassVector{
		Origin: Point{X: x, Y: y},
		North:  Point{X: int(math.Round(xn)), Y: int(math.Round(yn))},
		East:   Point{X: int(math.Round(xe)), Y: int(math.Round(ye))},
	}, nil
}

// CompassCenter builds a compass at the image center with arms of equal
// on-screen length. The local pixel scale is probed independently along
// RA and Dec with 1 degree offsets, the target arm length is a quarter of
// the smaller image dimension, and the degree length of each arm is
// back-solved from its axis scale. Planar pixel distance is good enough
// for the probe.
func (im *Image) CompassCenter() (*CompassVector, error) {
	x := im.Width() / 2
	y := im.Height() / 2

	ra, dec, err := im.PixelToSky(float64(x), float64(y))
	if err != nil {
		return nil, err
	}
	xe, ye, err := im.SkyToPixel(ra+1.0, dec)
	if err != nil {
		return nil, err
	}
	xn, yn, err := im.SkyToPixel(ra, dec+1.0)
	if err != nil {
		return nil, err
	}

	pxPerDegE := math.Hypot(xe-float64(x), ye-float64(y))
	pxPerDegN := math.Hypot(xn-float64(x), yn-float64(y))
	if pxPerDegE == 0 || pxPerDegN == 0 {
		return nil, fmt.Errorf("compass center: degenerate pixel scale (e=%g px/deg, n=%g px/deg)",
			pxPerDegE, pxPerDegN)
	}

	// Arm length approx 1/4 the smallest dimension.
	radiusPx := float64(min(im.Width(), im.Height())) / 4.0

	lenDegE := radiusPx / pxPerDegE
	lenDegN := radiusPx / pxPerDegN

	return im.Compass(x, y, lenDegE, lenDegN)
}
