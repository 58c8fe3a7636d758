// Package wcs defines the sky-projection capability consumed by the image
// abstraction: pixel to sky conversion and its inverse, rebuilt from header
// metadata whenever the header changes.
//
// The projection math itself belongs to the injected implementation.
// Linear, a small header-driven linear model, ships as the default
// capability; real instruments substitute their own Converter.
package wcs

import (
	"fmt"
	"math"

	"github.com/skystead/astro-tools-mcp/internal/header"
)

// Converter maps pixel coordinates to celestial coordinates and back.
// Pixel coordinates are 0-based and may be fractional; RA and Dec are in
// decimal degrees. Conversions may legitimately extrapolate beyond the
// image extent, so implementations must not range-check pixel inputs.
//
// LoadHeader must be called again after any header mutation; converting
// through stale projection state is a correctness bug.
type Converter interface {
	LoadHeader(h *header.Header) error
	PixelToSky(x, y float64) (ra, dec float64, err error)
	SkyToPixel(ra, dec float64) (x, y float64, err error)
}

// ProjectionError reports a conversion failure, typically missing or
// invalid projection parameters in the header.
type ProjectionError struct {
	Op     string
	Reason string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("wcs %s: %s", e.Op, e.Reason)
}

// Keywords read by the Linear converter. CRPIX values follow the FITS
// convention of being 1-based.
var linearKeywords = []string{"CRVAL1", "CRVAL2", "CRPIX1", "CRPIX2", "CDELT1", "CDELT2"}

// Linear is a minimal projection model: a linear plate with constant
// degree-per-pixel scale along each axis and cos(dec) compression applied
// to RA at the reference declination. It is exactly invertible, which also
// makes it the round-trip fixture used in tests.
//
// A Linear with no header loaded (or an incomplete one) is not ready:
// conversions fail with a ProjectionError until a complete header arrives.
type Linear struct {
	crval1, crval2 float64
	crpix1, crpix2 float64
	cdelt1, cdelt2 float64
	cosdec         float64
	ready          bool
}

// NewLinear returns a Linear converter with no projection state.
func NewLinear() *Linear { return &Linear{} }

// LoadHeader rebuilds projection state from the header. A header carrying
// none of the projection keywords leaves the converter not-ready without
// error, so images without astrometry can still mutate their headers
// freely; a partial or malformed set is reported as a ProjectionError.
func (l *Linear) LoadHeader(h *header.Header) error {
	l.ready = false
	if h == nil {
		return nil
	}
	present := 0
	for _, k := range linearKeywords {
		if h.Has(k) {
			present++
		}
	}
	if present == 0 {
		return nil
	}
	vals := make([]float64, len(linearKeywords))
	for i, k := range linearKeywords {
		v, err := h.Float(k)
		if err != nil {
			return &ProjectionError{Op: "load header", Reason: err.Error()}
		}
		vals[i] = v
	}
	l.crval1, l.crval2 = vals[0], vals[1]
	l.crpix1, l.crpix2 = vals[2], vals[3]
	l.cdelt1, l.cdelt2 = vals[4], vals[5]
	if l.cdelt1 == 0 || l.cdelt2 == 0 {
		return &ProjectionError{Op: "load header", Reason: "zero CDELT scale"}
	}
	l.cosdec = math.Cos(l.crval2 * math.Pi / 180.0)
	if l.cosdec == 0 {
		// Reference point exactly at a pole: RA becomes degenerate.
		return &ProjectionError{Op: "load header", Reason: "reference declination at pole"}
	}
	l.ready = true
	return nil
}

// PixelToSky converts a 0-based pixel position to (RA, Dec) degrees.
func (l *Linear) PixelToSky(x, y float64) (float64, float64, error) {
	if !l.ready {
		return 0, 0, &ProjectionError{Op: "pixel to sky", Reason: "no projection parameters loaded"}
	}
	dec := l.crval2 + (y-(l.crpix2-1))*l.cdelt2
	ra := l.crval1 + (x-(l.crpix1-1))*l.cdelt1/l.cosdec
	ra = math.Mod(ra, 360.0)
	if ra < 0 {
		ra += 360.0
	}
	return ra, dec, nil
}

// SkyToPixel converts (RA, Dec) degrees to a 0-based pixel position,
// taking the shortest path in RA around the 0/360 seam.
func (l *Linear) SkyToPixel(ra, dec float64) (float64, float64, error) {
	if !l.ready {
		return 0, 0, &ProjectionError{Op: "sky to pixel", Reason: "no projection parameters loaded"}
	}
	dra := ra - l.crval1
	if dra > 180.0 {
		dra -= 360.0
	} else if dra < -180.0 {
		dra += 360.0
	}
	x := (l.crpix1 - 1) + dra*l.cosdec/l.cdelt1
	y := (l.crpix2 - 1) + (dec-l.crval2)/l.cdelt2
	return x, y, nil
}
