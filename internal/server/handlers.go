package server

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/skystead/astro-tools-mcp/internal/astro"
	"github.com/skystead/astro-tools-mcp/internal/grid"
	"github.com/skystead/astro-tools-mcp/internal/render"
	"github.com/skystead/astro-tools-mcp/internal/sphere"
	"github.com/skystead/astro-tools-mcp/internal/wcs"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_create", "region_set").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image lifecycle
	case "image_create":
		return s.handleImageCreate(args)
	case "image_list":
		return s.handleImageList(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_set_keywords":
		return s.handleImageSetKeywords(args)

	// Region Operations
	case "region_set":
		return s.handleRegionSet(args)
	case "region_get":
		return s.handleRegionGet(args)
	case "region_set_compatible":
		return s.handleRegionSetCompatible(args)
	case "region_maximize":
		return s.handleRegionMaximize(args)

	// Cutout Operations
	case "image_cutout":
		return s.handleImageCutout(args)
	case "image_cutout_radius":
		return s.handleImageCutoutRadius(args)
	case "image_cutout_cross":
		return s.handleImageCutoutCross(args)

	// Astrometry
	case "pixel_to_sky":
		return s.handlePixelToSky(args)
	case "sky_to_pixel":
		return s.handleSkyToPixel(args)
	case "sky_separation":
		return s.handleSkySeparation(args)
	case "sky_offsets":
		return s.handleSkyOffsets(args)
	case "pixel_scale":
		return s.handlePixelScale(args)
	case "compass":
		return s.handleCompass(args)

	// Detection bridge
	case "star_qualsize":
		return s.handleStarQualsize(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Lifecycle Handlers ===

type imageCreateArgs struct {
	Name     string                 `json:"name"`
	Width    int                    `json:"width"`
	Height   int                    `json:"height"`
	Fill     float64                `json:"fill"`
	Keywords map[string]interface{} `json:"keywords"`
}

type imageInfoResult struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageCreate(args json.RawMessage) (interface{}, error) {
	var a imageCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, fmt.Errorf("image name is required")
	}
	g, err := grid.New(a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if a.Fill != 0 {
		g.Fill(a.Fill)
	}
	im, err := astro.New(g, astro.Options{
		WCS:      wcs.NewLinear(),
		Detector: s.detector,
		Logger:   s.log,
	})
	if err != nil {
		return nil, err
	}
	if len(a.Keywords) > 0 {
		if err := im.UpdateKeywords(a.Keywords); err != nil {
			return nil, err
		}
	}
	s.reg.Put(a.Name, im)
	return imageInfoResult{Name: a.Name, Width: im.Width(), Height: im.Height()}, nil
}

func (s *Server) handleImageList(_ json.RawMessage) (interface{}, error) {
	return map[string]interface{}{"images": s.reg.Names()}, nil
}

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	return imageInfoResult{Name: a.Name, Width: im.Width(), Height: im.Height()}, nil
}

type setKeywordsArgs struct {
	Name     string                 `json:"name"`
	Keywords map[string]interface{} `json:"keywords"`
}

func (s *Server) handleImageSetKeywords(args json.RawMessage) (interface{}, error) {
	var a setKeywordsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if err := im.UpdateKeywords(a.Keywords); err != nil {
		return nil, err
	}
	return map[string]interface{}{"keywords": im.Header().Len()}, nil
}

// === Region Handlers ===

type regionArgs struct {
	Name string `json:"name"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

func (s *Server) handleRegionSet(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if err := im.SetRegion(a.X1, a.Y1, a.X2, a.Y2); err != nil {
		return nil, err
	}
	return im.Region(), nil
}

func (s *Server) handleRegionGet(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	return im.Region(), nil
}

func (s *Server) handleRegionSetCompatible(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	return im.SetCompatibleRegion(a.X1, a.Y1, a.X2, a.Y2)
}

func (s *Server) handleRegionMaximize(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	im.MaximizeRegion()
	return im.Region(), nil
}

// === Cutout Handlers ===

type cutoutResult struct {
	X1      int             `json:"x1"`
	Y1      int             `json:"y1"`
	X2      int             `json:"x2"`
	Y2      int             `json:"y2"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Preview *render.Preview `json:"preview,omitempty"`
}

func (s *Server) preview(g *grid.Grid) *render.Preview {
	if !s.cfg.PreviewEnabled() || g.Width() == 0 || g.Height() == 0 {
		return nil
	}
	p, err := render.PNG(g, render.Options{
		Colormap: s.cfg.Preview.Colormap,
		MaxDim:   s.cfg.Preview.MaxDimension,
	})
	if err != nil {
		s.log.Warn("preview render failed", zap.Error(err))
		return nil
	}
	return p
}

func (s *Server) handleImageCutout(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	data := im.CutoutData(a.X1, a.Y1, a.X2, a.Y2)
	return cutoutResult{
		X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2,
		Width:   data.Width(),
		Height:  data.Height(),
		Preview: s.preview(data),
	}, nil
}

type cutoutRadiusArgs struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
}

func (s *Server) handleImageCutoutRadius(args json.RawMessage) (interface{}, error) {
	var a cutoutRadiusArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if a.Radius < 0 {
		return nil, fmt.Errorf("radius must be >= 0, got %d", a.Radius)
	}
	cut := im.CutoutRadius(a.X, a.Y, a.Radius)
	return cutoutResult{
		X1: cut.X1, Y1: cut.Y1, X2: cut.X2, Y2: cut.Y2,
		Width:   cut.Data.Width(),
		Height:  cut.Data.Height(),
		Preview: s.preview(cut.Data),
	}, nil
}

func (s *Server) handleImageCutoutCross(args json.RawMessage) (interface{}, error) {
	var a cutoutRadiusArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if a.X < 0 || a.X >= im.Width() || a.Y < 0 || a.Y >= im.Height() {
		return nil, fmt.Errorf("cross center (%d,%d) outside image %dx%d",
			a.X, a.Y, im.Width(), im.Height())
	}
	if a.Radius < 0 {
		return nil, fmt.Errorf("radius must be >= 0, got %d", a.Radius)
	}
	return im.CutoutCross(a.X, a.Y, a.Radius), nil
}

// === Astrometry Handlers ===

type pixelArgs struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type skyPointResult struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

func (s *Server) handlePixelToSky(args json.RawMessage) (interface{}, error) {
	var a pixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	ra, dec, err := im.PixelToSky(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return skyPointResult{RA: ra, Dec: dec}, nil
}

type skyArgs struct {
	Name string  `json:"name"`
	RA   float64 `json:"ra"`
	Dec  float64 `json:"dec"`
}

type pixelPointResult struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleSkyToPixel(args json.RawMessage) (interface{}, error) {
	var a skyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	x, y, err := im.SkyToPixel(a.RA, a.Dec)
	if err != nil {
		return nil, err
	}
	return pixelPointResult{X: x, Y: y}, nil
}

type skyPairArgs struct {
	RA1  float64 `json:"ra1"`
	Dec1 float64 `json:"dec1"`
	RA2  float64 `json:"ra2"`
	Dec2 float64 `json:"dec2"`
}

type separationResult struct {
	BearingDeg     float64 `json:"bearing_deg"`
	DistanceArcmin float64 `json:"distance_arcmin"`
	DistanceDeg    float64 `json:"distance_deg"`
	Formatted      string  `json:"formatted"`
}

func (s *Server) handleSkySeparation(args json.RawMessage) (interface{}, error) {
	var a skyPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bearing, arcmin := sphere.Dispos(a.RA1, a.Dec1, a.RA2, a.Dec2)
	return separationResult{
		BearingDeg:     bearing,
		DistanceArcmin: arcmin,
		DistanceDeg:    sphere.ArcsecToDeg(arcmin * 60.0),
		Formatted:      sphere.FormatSeparation(a.RA1, a.Dec1, a.RA2, a.Dec2),
	}, nil
}

type offsetsResult struct {
	DeltaRA  float64 `json:"delta_ra"`
	DeltaDec float64 `json:"delta_dec"`
}

func (s *Server) handleSkyOffsets(args json.RawMessage) (interface{}, error) {
	var a skyPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dra, ddec := sphere.RaDecOffsets(a.RA1, a.Dec1, a.RA2, a.Dec2)
	return offsetsResult{DeltaRA: dra, DeltaDec: ddec}, nil
}

type pixelScaleArgs struct {
	Name     string   `json:"name"`
	DeltaDeg float64  `json:"delta_deg"`
	RA       *float64 `json:"ra"`
	Dec      *float64 `json:"dec"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

func (s *Server) handlePixelScale(args json.RawMessage) (interface{}, error) {
	var a pixelScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if a.DeltaDeg == 0 {
		a.DeltaDeg = 1.0
	}

	var px float64
	switch {
	case a.RA != nil && a.Dec != nil:
		px, err = im.PixelRadiusSky(*a.RA, *a.Dec, a.DeltaDeg)
	case a.X != nil && a.Y != nil:
		px, err = im.PixelRadiusXY(*a.X, *a.Y, a.DeltaDeg)
	default:
		px, err = im.PixelRadiusCenter(a.DeltaDeg)
	}
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"pixels": px, "delta_deg": a.DeltaDeg}, nil
}

type compassArgs struct {
	Name    string   `json:"name"`
	X       *int     `json:"x"`
	Y       *int     `json:"y"`
	LenDegE *float64 `json:"len_deg_e"`
	LenDegN *float64 `json:"len_deg_n"`
}

func (s *Server) handleCompass(args json.RawMessage) (interface{}, error) {
	var a compassArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}
	if a.X != nil && a.Y != nil && a.LenDegE != nil && a.LenDegN != nil {
		return im.Compass(*a.X, *a.Y, *a.LenDegE, *a.LenDegN)
	}
	return im.CompassCenter()
}

// === Detection Handlers ===

type qualsizeArgs struct {
	Name         string   `json:"name"`
	X1           *int     `json:"x1"`
	Y1           *int     `json:"y1"`
	X2           *int     `json:"x2"`
	Y2           *int     `json:"y2"`
	Radius       *int     `json:"radius"`
	BrightRadius *int     `json:"bright_radius"`
	Threshold    *float64 `json:"threshold"`
}

func (s *Server) handleStarQualsize(args json.RawMessage) (interface{}, error) {
	var a qualsizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.reg.Get(a.Name)
	if err != nil {
		return nil, err
	}

	p := astro.PickParams{
		Radius:       s.cfg.Detection.Radius,
		BrightRadius: s.cfg.Detection.BrightRadius,
		Threshold:    s.cfg.Detection.Threshold,
	}
	if a.Radius != nil {
		p.Radius = *a.Radius
	}
	if a.BrightRadius != nil {
		p.BrightRadius = *a.BrightRadius
	}
	if a.Threshold != nil {
		p.Threshold = *a.Threshold
	}

	var r *astro.Region
	if a.X1 != nil && a.Y1 != nil && a.X2 != nil && a.Y2 != nil {
		r = &astro.Region{X1: *a.X1, Y1: *a.Y1, X2: *a.X2, Y2: *a.Y2}
	}
	return im.QualSize(r, p)
}
