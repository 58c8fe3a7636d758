package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(required []string, props map[string]interface{}) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, desc string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": desc}
}

var nameProp = prop("string", "Name of a registered image")

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image lifecycle
		{
			Name:        "image_create",
			Description: "Create an in-memory image of the given dimensions and register it under a name. Optional FITS-style keywords (e.g. CRVAL1/CRVAL2/CRPIX1/CRPIX2/CDELT1/CDELT2) configure the sky projection.",
			InputSchema: objectSchema([]string{"name", "width", "height"}, map[string]interface{}{
				"name":     prop("string", "Name to register the image under"),
				"width":    prop("integer", "Number of pixel columns (> 0)"),
				"height":   prop("integer", "Number of pixel rows (> 0)"),
				"fill":     prop("number", "Optional fill value for every sample. Default 0"),
				"keywords": prop("object", "Optional header keywords; keys are upcased"),
			}),
		},
		{
			Name:        "image_list",
			Description: "List the names of all registered images.",
			InputSchema: objectSchema(nil, map[string]interface{}{}),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a registered image.",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name": nameProp,
			}),
		},
		{
			Name:        "image_set_keywords",
			Description: "Merge header keywords into an image (keys are upcased) and refresh its sky projection from the updated header.",
			InputSchema: objectSchema([]string{"name", "keywords"}, map[string]interface{}{
				"name":     nameProp,
				"keywords": prop("object", "Keyword/value pairs to merge"),
			}),
		},

		// Region operations
		{
			Name:        "region_set",
			Description: "Set the tracked region of an image. All four inclusive bounds must lie inside the image; inverted bounds are rejected.",
			InputSchema: objectSchema([]string{"name", "x1", "y1", "x2", "y2"}, map[string]interface{}{
				"name": nameProp,
				"x1":   prop("integer", "Left column, inclusive (0-based)"),
				"y1":   prop("integer", "Top row, inclusive (0-based)"),
				"x2":   prop("integer", "Right column, inclusive"),
				"y2":   prop("integer", "Bottom row, inclusive"),
			}),
		},
		{
			Name:        "region_get",
			Description: "Get the tracked region of an image.",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name": nameProp,
			}),
		},
		{
			Name:        "region_set_compatible",
			Description: "Set the maximal region consistent with the image extent that fits inside the requested box, clamping as needed, and return it.",
			InputSchema: objectSchema([]string{"name", "x1", "y1", "x2", "y2"}, map[string]interface{}{
				"name": nameProp,
				"x1":   prop("integer", "Requested left column"),
				"y1":   prop("integer", "Requested top row"),
				"x2":   prop("integer", "Requested right column, inclusive"),
				"y2":   prop("integer", "Requested bottom row, inclusive"),
			}),
		},
		{
			Name:        "region_maximize",
			Description: "Reset the tracked region to the full image extent.",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name": nameProp,
			}),
		},

		// Cutout operations
		{
			Name:        "image_cutout",
			Description: "Extract the sub-array data[y1:y2, x1:x2] (half-open upper bounds, out-of-range bounds silently clipped) and return its dimensions plus an optional PNG preview.",
			InputSchema: objectSchema([]string{"name", "x1", "y1", "x2", "y2"}, map[string]interface{}{
				"name": nameProp,
				"x1":   prop("integer", "Left column, inclusive"),
				"y1":   prop("integer", "Top row, inclusive"),
				"x2":   prop("integer", "Right column, exclusive"),
				"y2":   prop("integer", "Bottom row, exclusive"),
			}),
		},
		{
			Name:        "image_cutout_radius",
			Description: "Extract a (2*radius+1)-square window centered at (x,y), shifted to stay inside the image near edges. Returns the adjusted bounds actually used; map results back through those, not the requested center.",
			InputSchema: objectSchema([]string{"name", "x", "y", "radius"}, map[string]interface{}{
				"name":   nameProp,
				"x":      prop("integer", "Window center column"),
				"y":      prop("integer", "Window center row"),
				"radius": prop("integer", "Window half-size in pixels (>= 0)"),
			}),
		},
		{
			Name:        "image_cutout_cross",
			Description: "Extract one row segment and one column segment of half-length radius through (x,y), each clamped independently to the image extent. Returns the starting pixel and samples of each segment.",
			InputSchema: objectSchema([]string{"name", "x", "y", "radius"}, map[string]interface{}{
				"name":   nameProp,
				"x":      prop("integer", "Cross center column (must be inside the image)"),
				"y":      prop("integer", "Cross center row (must be inside the image)"),
				"radius": prop("integer", "Segment half-length in pixels (>= 0)"),
			}),
		},

		// Astrometry
		{
			Name:        "pixel_to_sky",
			Description: "Convert a pixel position (possibly fractional, possibly outside the image) to RA/Dec degrees via the image's sky projection.",
			InputSchema: objectSchema([]string{"name", "x", "y"}, map[string]interface{}{
				"name": nameProp,
				"x":    prop("number", "Pixel column (0-based, may be fractional)"),
				"y":    prop("number", "Pixel row (0-based, may be fractional)"),
			}),
		},
		{
			Name:        "sky_to_pixel",
			Description: "Convert RA/Dec degrees to a pixel position via the image's sky projection.",
			InputSchema: objectSchema([]string{"name", "ra", "dec"}, map[string]interface{}{
				"name": nameProp,
				"ra":   prop("number", "Right ascension in decimal degrees [0,360)"),
				"dec":  prop("number", "Declination in decimal degrees [-90,90]"),
			}),
		},
		{
			Name:        "sky_separation",
			Description: "Compute the great-circle distance and position angle (East of North) between two sky points, plus a sexagesimal rendering of the separation.",
			InputSchema: objectSchema([]string{"ra1", "dec1", "ra2", "dec2"}, map[string]interface{}{
				"ra1":  prop("number", "First point RA, degrees"),
				"dec1": prop("number", "First point Dec, degrees"),
				"ra2":  prop("number", "Second point RA, degrees"),
				"dec2": prop("number", "Second point Dec, degrees"),
			}),
		},
		{
			Name:        "sky_offsets",
			Description: "Compute signed (delta RA, delta Dec) offsets of point 1 relative to point 2 for tangent-plane display: shortest path around the 0/360 RA seam, compressed by cos(dec2).",
			InputSchema: objectSchema([]string{"ra1", "dec1", "ra2", "dec2"}, map[string]interface{}{
				"ra1":  prop("number", "First point RA, degrees"),
				"dec1": prop("number", "First point Dec, degrees"),
				"ra2":  prop("number", "Second point RA, degrees"),
				"dec2": prop("number", "Second point Dec, degrees"),
			}),
		},
		{
			Name:        "pixel_scale",
			Description: "Estimate the local pixel-per-angle scale along RA by probing a delta_deg offset. Anchor at a sky point (ra+dec), a pixel (x+y), or the image center when neither is given.",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name":      nameProp,
				"delta_deg": prop("number", "RA offset to probe, degrees. Default 1"),
				"ra":        prop("number", "Optional anchor RA, degrees (requires dec)"),
				"dec":       prop("number", "Optional anchor Dec, degrees (requires ra)"),
				"x":         prop("number", "Optional anchor pixel column (requires y)"),
				"y":         prop("number", "Optional anchor pixel row (requires x)"),
			}),
		},
		{
			Name:        "compass",
			Description: "Build a north/east orientation indicator. With x, y, len_deg_e and len_deg_n, anchors at that pixel with those arm lengths; otherwise anchors at the image center with arms auto-scaled to equal on-screen length (about a quarter of the smaller dimension).",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name":      nameProp,
				"x":         prop("integer", "Optional anchor pixel column"),
				"y":         prop("integer", "Optional anchor pixel row"),
				"len_deg_e": prop("number", "Optional east arm length, degrees of RA"),
				"len_deg_n": prop("number", "Optional north arm length, degrees of Dec"),
			}),
		},

		// Detection bridge
		{
			Name:        "star_qualsize",
			Description: "Run the configured star detector over a region (the tracked region unless x1/y1/x2/y2 are all given) and return the detection with coordinates translated into full-image frame.",
			InputSchema: objectSchema([]string{"name"}, map[string]interface{}{
				"name":          nameProp,
				"x1":            prop("integer", "Optional region left column"),
				"y1":            prop("integer", "Optional region top row"),
				"x2":            prop("integer", "Optional region right column"),
				"y2":            prop("integer", "Optional region bottom row"),
				"radius":        prop("integer", "Search radius in pixels. Default from config"),
				"bright_radius": prop("integer", "Bright-pixel radius. Default from config"),
				"threshold":     prop("number", "Detection threshold. Default from config"),
			}),
		},
	}
}
