// Package astro implements the astronomical image abstraction: a 2-D
// pixel grid with metadata, a tracked rectangular region, bounds-safe
// cutout extraction, and astrometric derivations built on an injected
// sky-projection capability.
//
// # Coordinate Systems
//
// Pixel coordinates are 0-based with (0,0) at the array origin; X indexes
// columns, Y rows. Integer coordinates address whole pixels, float64
// coordinates may be sub-pixel. Sky coordinates are RA/Dec in decimal
// degrees.
//
// # Regions and Cutouts
//
// The tracked region uses inclusive bounds and is validated on every
// mutation; replacing the pixel grid re-clamps it so it can never refer
// outside the image. Cutout extraction uses half-open bounds with the
// grid package's silently-clipped slicing. CutoutAdjust shifts a window
// that hangs off an edge back inside the image and reports the bounds
// actually used; CutoutCross clamps its two segments without recentering.
//
// # Collaborators
//
// The WCS projection, the star detector and the logger are injected at
// construction (see Options) so they can be substituted with test doubles.
// The WCS is reloaded from the header on every header or metadata
// mutation; converting through stale projection state is a correctness
// bug, not a tolerated condition.
//
// # Thread Safety
//
// Image is not safe for concurrent mutation. Callers needing concurrent
// access to the same image must serialize externally.
package astro
