package astro

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skystead/astro-tools-mcp/internal/grid"
)

// PickParams are the detection parameters forwarded to the star detector.
type PickParams struct {
	Radius       int     `json:"radius"`
	BrightRadius int     `json:"bright_radius"`
	Threshold    float64 `json:"threshold"`
}

// Detection is the star-detector result. Coordinates are in the frame of
// the array handed to the detector; QualSize translates them back into
// full-image coordinates before returning.
type Detection struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ObjX       float64 `json:"objx"`
	ObjY       float64 `json:"objy"`
	FWHM       float64 `json:"fwhm"`
	SkyLevel   float64 `json:"skylevel"`
	Brightness float64 `json:"brightness"`
}

// StarDetector locates the best star candidate in a cropped pixel field.
// The detection algorithm's internals live entirely behind this interface.
type StarDetector interface {
	PickField(data *grid.Grid, p PickParams) (*Detection, error)
}

// QualSize crops the given region (nil means the current tracked region),
// runs the injected star detector over the crop, and translates the
// returned local coordinates back into full-image coordinates by adding
// the crop origin.
func (im *Image) QualSize(r *Region, p PickParams) (*Detection, error) {
	if im.detector == nil {
		return nil, fmt.Errorf("qualsize: no star detector configured")
	}
	if r == nil {
		reg := im.Region()
		r = &reg
	}

	data := im.CutoutData(r.X1, r.Y1, r.X2, r.Y2)

	start := time.Now()
	qs, err := im.detector.PickField(data, p)
	if err != nil {
		return nil, fmt.Errorf("qualsize: %w", err)
	}
	im.logger.Debug("qualsize",
		zap.Float64("objx", qs.ObjX),
		zap.Float64("objy", qs.ObjY),
		zap.Float64("fwhm", qs.FWHM),
		zap.Float64("sky", qs.SkyLevel),
		zap.Float64("brightness", qs.Brightness),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Add back the crop origin so coordinates are relative to the whole
	// image.
	qs.X += float64(r.X1)
	qs.Y += float64(r.Y1)
	qs.ObjX += float64(r.X1)
	qs.ObjY += float64(r.Y1)

	return qs, nil
}
