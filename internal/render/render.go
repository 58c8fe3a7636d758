// Package render encodes pixel grids as base64 PNG previews for tool
// responses. This is transport encoding for clients that want to see what
// a cutout covers, not a display pipeline: samples are min-max normalized
// and mapped through a small colormap.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/skystead/astro-tools-mcp/internal/grid"
)

// Preview contains an encoded image ready to embed in a JSON response.
type Preview struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Options controls preview encoding.
type Options struct {
	// Colormap selects the sample-to-color mapping: "gray" (default) or
	// "heat".
	Colormap string
	// MaxDim caps the longest output side; larger previews are resized
	// down preserving aspect ratio. 0 means no resize.
	MaxDim int
}

// Heat colormap control points, blended in RGB space.
var heatStops = []colorful.Color{
	{R: 0.0, G: 0.0, B: 0.2}, // deep blue sky background
	{R: 0.7, G: 0.1, B: 0.0},
	{R: 1.0, G: 0.8, B: 0.0},
	{R: 1.0, G: 1.0, B: 1.0},
}

// PNG renders a grid as a base64-encoded PNG. Samples are normalized over
// the grid's own min/max range; a flat grid renders mid-gray.
func PNG(g *grid.Grid, opts Options) (*Preview, error) {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("render: empty grid")
	}

	lo, hi := g.MinMax()
	span := hi - lo

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := 0.5
			if span > 0 {
				t = (g.At(x, y) - lo) / span
			}
			img.SetRGBA(x, y, sampleColor(opts.Colormap, t))
		}
	}

	var out image.Image = img
	if opts.MaxDim > 0 && (w > opts.MaxDim || h > opts.MaxDim) {
		out = imaging.Fit(img, opts.MaxDim, opts.MaxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}

	b := out.Bounds()
	return &Preview{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func sampleColor(colormap string, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	switch colormap {
	case "heat":
		c := heatAt(t)
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	default: // gray
		v := uint8(t*255 + 0.5)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
}

// heatAt interpolates the heat gradient at position t in [0,1].
func heatAt(t float64) colorful.Color {
	n := len(heatStops) - 1
	scaled := t * float64(n)
	i := int(scaled)
	if i >= n {
		return heatStops[n]
	}
	return heatStops[i].BlendRgb(heatStops[i+1], scaled-float64(i))
}
