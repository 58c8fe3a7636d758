package astro

import (
	"testing"

	"github.com/skystead/astro-tools-mcp/internal/grid"
	"github.com/skystead/astro-tools-mcp/internal/header"
)

// newTestImage builds a zero-filled image with no projection loaded.
func newTestImage(t *testing.T, w, h int) *Image {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New(%d,%d) failed: %v", w, h, err)
	}
	im, err := New(g, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return im
}

// linearKeywords returns header keywords for a linear projection centered
// on (crval1, crval2) at the 1-based reference pixel (crpix, crpix), with
// cdelt degrees per pixel (negative along RA, per the usual east-left
// orientation).
func linearKeywords(crval1, crval2, crpix, cdelt float64) map[string]interface{} {
	return map[string]interface{}{
		"CRVAL1": crval1,
		"CRVAL2": crval2,
		"CRPIX1": crpix,
		"CRPIX2": crpix,
		"CDELT1": -cdelt,
		"CDELT2": cdelt,
	}
}

// newSkyImage builds an image with a loaded linear projection: 1 arcsec
// per pixel, reference at the image center.
func newSkyImage(t *testing.T, w, h int, crval1, crval2 float64) *Image {
	t.Helper()
	im := newTestImage(t, w, h)
	crpix := float64(w/2) + 1 // 1-based reference at 0-based pixel w/2
	kwds := linearKeywords(crval1, crval2, crpix, 1.0/3600.0)
	if err := im.UpdateKeywords(kwds); err != nil {
		t.Fatalf("UpdateKeywords failed: %v", err)
	}
	return im
}

// countingWCS counts LoadHeader calls so tests can assert the refresh
// contract.
type countingWCS struct {
	loads int
}

func (c *countingWCS) LoadHeader(_ *header.Header) error { c.loads++; return nil }

func (c *countingWCS) PixelToSky(x, y float64) (float64, float64, error) {
	return x, y, nil
}

func (c *countingWCS) SkyToPixel(ra, dec float64) (float64, float64, error) {
	return ra, dec, nil
}

// recordingDetector captures what QualSize hands to the detector and
// returns a canned detection.
type recordingDetector struct {
	gotW, gotH int
	gotParams  PickParams
	result     Detection
	err        error
}

func (d *recordingDetector) PickField(data *grid.Grid, p PickParams) (*Detection, error) {
	d.gotW, d.gotH = data.Width(), data.Height()
	d.gotParams = p
	if d.err != nil {
		return nil, d.err
	}
	out := d.result
	return &out, nil
}
