// Package sphere provides pure spherical-geometry functions over celestial
// coordinates.
//
// All angles cross the package boundary in decimal degrees (RA in [0,360),
// Dec in [-90,90]); radians are used only internally. Position angles are
// measured East of North, so 0 points north, 90 east.
//
// The functions are deterministic and allocation-free; numerical edge
// cases (near-zero separations, pole declinations, |cos| marginally above
// 1 from floating-point drift) are handled inline rather than reported as
// errors.
package sphere
