package astro

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/skystead/astro-tools-mcp/internal/grid"
	"github.com/skystead/astro-tools-mcp/internal/header"
	"github.com/skystead/astro-tools-mcp/internal/wcs"
)

// Image is the astronomical image abstraction: a pixel grid plus metadata,
// a tracked rectangular region of interest, and an injected sky-projection
// capability.
//
// NOTE: Image is NOT safe for concurrent mutation. Region state and the
// WCS capability are mutable shared state with no internal locking;
// callers needing concurrent access must serialize externally.
type Image struct {
	data     *grid.Grid
	metadata map[string]interface{}
	hdr      *header.Header
	wcs      wcs.Converter
	detector StarDetector
	logger   *zap.Logger

	// Current region, inclusive bounds within the grid.
	x1, y1, x2, y2 int
}

// Options carries the injected collaborators for New. Zero values are
// replaced with working defaults: a linear WCS, a no-op logger, and no
// star detector.
type Options struct {
	Metadata map[string]interface{}
	WCS      wcs.Converter
	Detector StarDetector
	Logger   *zap.Logger
}

// New creates an image around data. A nil grid yields a 1x1 zero image,
// matching the empty-image convention of the surrounding tooling. The
// region starts maximized to the full extent.
func New(data *grid.Grid, opts Options) (*Image, error) {
	if data == nil {
		g, err := grid.New(1, 1)
		if err != nil {
			return nil, err
		}
		data = g
	}
	conv := opts.WCS
	if conv == nil {
		conv = wcs.NewLinear()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	im := &Image{
		data:     data,
		metadata: make(map[string]interface{}),
		hdr:      header.New(),
		wcs:      conv,
		detector: opts.Detector,
		logger:   logger,
	}
	im.MaximizeRegion()
	if opts.Metadata != nil {
		if err := im.UpdateMetadata(opts.Metadata); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// Width returns the number of pixel columns.
func (im *Image) Width() int { return im.data.Width() }

// Height returns the number of pixel rows.
func (im *Image) Height() int { return im.data.Height() }

// Size returns (width, height).
func (im *Image) Size() (int, int) { return im.data.Width(), im.data.Height() }

// Data returns a private copy of the pixel grid.
func (im *Image) Data() *grid.Grid { return im.data.Copy() }

// SetData replaces the pixel grid, SHARING the incoming array. The region
// is re-clamped so it never refers outside the new extent.
func (im *Image) SetData(data *grid.Grid, metadata map[string]interface{}) error {
	if data == nil {
		return fmt.Errorf("set data: nil grid")
	}
	im.data = data
	if metadata != nil {
		if err := im.UpdateMetadata(metadata); err != nil {
			return err
		}
	}
	im.updateRegion()
	return nil
}

// UpdateData replaces the pixel grid with a private copy of the incoming
// array.
func (im *Image) UpdateData(data *grid.Grid, metadata map[string]interface{}) error {
	if data == nil {
		return fmt.Errorf("update data: nil grid")
	}
	return im.SetData(data.Copy(), metadata)
}

// Metadata returns a copy of the metadata mapping.
func (im *Image) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(im.metadata))
	for k, v := range im.metadata {
		out[k] = v
	}
	return out
}

// Get returns a metadata value, or a MissingKeyError when absent.
func (im *Image) Get(kwd string) (interface{}, error) {
	if v, ok := im.metadata[kwd]; ok {
		return v, nil
	}
	return nil, &header.MissingKeyError{Key: kwd}
}

// GetDefault returns a metadata value, or def when absent.
func (im *Image) GetDefault(kwd string, def interface{}) interface{} {
	if v, ok := im.metadata[kwd]; ok {
		return v
	}
	return def
}

// Set stores a metadata value. Unlike UpdateMetadata it does not touch the
// header or the WCS.
func (im *Image) Set(kwd string, value interface{}) {
	im.metadata[kwd] = value
}

// UpdateMetadata merges values into the metadata mapping and refreshes the
// WCS from the current header, preserving the contract that projection
// state always reflects the latest metadata.
func (im *Image) UpdateMetadata(kwds map[string]interface{}) error {
	for k, v := range kwds {
		im.metadata[k] = v
	}
	return im.refreshWCS()
}

// Header returns the FITS-style keyword store owned by the image.
func (im *Image) Header() *header.Header { return im.hdr }

// Keyword returns a header value, or a MissingKeyError when absent.
func (im *Image) Keyword(kwd string) (interface{}, error) {
	return im.hdr.Get(kwd)
}

// KeywordDefault returns a header value, or def when absent.
func (im *Image) KeywordDefault(kwd string, def interface{}) interface{} {
	return im.hdr.GetDefault(kwd, def)
}

// SetKeyword stores one header keyword (upcased) and refreshes the WCS.
func (im *Image) SetKeyword(kwd string, value interface{}) error {
	im.hdr.Set(kwd, value)
	return im.refreshWCS()
}

// UpdateKeywords merges keywords into the header (upcasing each) and
// refreshes the WCS.
func (im *Image) UpdateKeywords(kwds map[string]interface{}) error {
	im.hdr.Update(kwds)
	return im.refreshWCS()
}

func (im *Image) refreshWCS() error {
	if err := im.wcs.LoadHeader(im.hdr); err != nil {
		return fmt.Errorf("refresh wcs: %w", err)
	}
	return nil
}

// Transfer copies this image's data, metadata, header and region into
// other.
func (im *Image) Transfer(other *Image) error {
	if err := other.UpdateData(im.data, nil); err != nil {
		return err
	}
	if err := other.UpdateMetadata(im.metadata); err != nil {
		return err
	}
	if err := other.UpdateKeywords(im.hdr.Map()); err != nil {
		return err
	}
	return im.CopyRegionTo(other)
}

// Copy returns an independent duplicate of the image sharing no mutable
// state. The WCS capability and detector are fresh defaults on the copy.
func (im *Image) Copy() (*Image, error) {
	other, err := New(im.data.Copy(), Options{Logger: im.logger})
	if err != nil {
		return nil, err
	}
	if err := im.Transfer(other); err != nil {
		return nil, err
	}
	return other, nil
}
