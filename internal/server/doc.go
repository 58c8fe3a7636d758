// Package server implements the MCP (Model Context Protocol) server for
// the astronomical coordinate-and-region tools.
//
// This package provides a JSON-RPC 2.0 server exposing the image
// abstraction (regions, cutouts, and astrometric derivations) through
// the MCP protocol to AI systems and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image lifecycle:
//   - image_create, image_list, image_dimensions, image_set_keywords
//
// Region operations:
//   - region_set, region_get, region_set_compatible, region_maximize
//
// Cutout operations:
//   - image_cutout, image_cutout_radius, image_cutout_cross
//
// Astrometry:
//   - pixel_to_sky, sky_to_pixel, sky_separation, sky_offsets,
//     pixel_scale, compass
//
// Detection bridge:
//   - star_qualsize
//
// # Image Registry
//
// The server holds named in-memory images in a Registry for the lifetime
// of the process. The Registry is mutex-guarded, but the images it holds
// are not safe for concurrent mutation; the single-threaded request loop
// is the only mutator.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Region violations, projection failures and missing-keyword lookups keep
// their typed error messages, so clients see the offending coordinate or
// keyword in the data field.
package server
