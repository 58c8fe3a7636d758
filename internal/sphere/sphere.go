package sphere

import (
	"fmt"
	"math"
)

const radian = 180.0 / math.Pi

// Separations below this floor (radians) are treated as coincident points:
// the position angle is undefined and the general formula would divide by
// sin(dist) ~= 0.
const distFloor = 4e-7

// Dispos computes the great-circle distance and position angle between a
// center point (ra0, dec0) and a target point (ra, dec), all in decimal
// degrees, by solving the spherical triangle with the law of cosines.
//
// Returns the position angle phi in degrees East of North and the distance
// in arc-minutes.
//
// At the poles the general formula is singular, so the bearing is forced:
// dec0 == +90 yields phi = 180 (everything is due south), dec0 == -90
// yields phi = 0.
func Dispos(ra0, dec0, ra, dec float64) (phi, distArcmin float64) {
	alf := ra / radian
	alf0 := ra0 / radian
	del := dec / radian
	del0 := dec0 / radian

	sd0 := math.Sin(del0)
	sd := math.Sin(del)
	cd0 := math.Cos(del0)
	cd := math.Cos(del)
	cosda := math.Cos(alf - alf0)
	cosd := sd0*sd + cd0*cd*cosda
	if cosd > 1.0 {
		cosd = 1.0
	} else if cosd < -1.0 {
		cosd = -1.0
	}
	dist := math.Acos(cosd)

	phi = 0.0
	if dist > distFloor {
		sind := math.Sin(dist)
		cospa := (sd*cd0 - cd*sd0*cosda) / sind
		if math.Abs(cospa) > 1.0 {
			// Floating-point drift can push |cospa| just past 1;
			// clamp to exactly +/-1 preserving sign.
			cospa = cospa / math.Abs(cospa)
		}
		sinpa := cd * math.Sin(alf-alf0) / sind
		phi = math.Acos(cospa) * radian
		if sinpa < 0.0 {
			phi = 360.0 - phi
		}
	}
	distArcmin = dist * radian * 60.0

	if dec0 == 90.0 {
		phi = 180.0
	}
	if dec0 == -90.0 {
		phi = 0.0
	}
	return phi, distArcmin
}

// SeparationDispos returns the angular separation between two sky points in
// degrees, derived from the Dispos spherical-triangle solution.
func SeparationDispos(ra1, dec1, ra2, dec2 float64) float64 {
	_, distArcmin := Dispos(ra1, dec1, ra2, dec2)
	return ArcsecToDeg(distArcmin * 60.0)
}

// Separation returns the angular separation between two sky points in
// degrees using the co-latitude form of the law of cosines. Kept as an
// independent cross-check of SeparationDispos; the two agree to numerical
// precision away from the poles.
func Separation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := ra1 / radian
	ra2Rad := ra2 / radian
	colat1 := (90.0 - dec1) / radian
	colat2 := (90.0 - dec2) / radian

	cossep := math.Cos(colat1)*math.Cos(colat2) +
		math.Sin(colat1)*math.Sin(colat2)*math.Cos(ra1Rad-ra2Rad)
	if cossep > 1.0 {
		cossep = 1.0
	} else if cossep < -1.0 {
		cossep = -1.0
	}
	return math.Acos(cossep) * radian
}

// RaDecOffsets returns signed (deltaRA, deltaDec) offsets of point 1
// relative to point 2, suitable for tangent-plane display. The RA delta
// takes the shortest path around the 0/360 seam and is compressed by
// cos(dec2).
func RaDecOffsets(ra1, dec1, ra2, dec2 float64) (deltaRA, deltaDec float64) {
	deltaRA = ra1 - ra2
	adj := math.Cos(dec2 / radian)
	if deltaRA > 180.0 {
		deltaRA = (deltaRA - 360.0) * adj
	} else if deltaRA < -180.0 {
		deltaRA = (deltaRA + 360.0) * adj
	} else {
		deltaRA *= adj
	}
	deltaDec = dec1 - dec2
	return deltaRA, deltaDec
}

// DegToArcsec converts decimal degrees to arc-seconds.
func DegToArcsec(deg float64) float64 { return deg * 3600.0 }

// ArcsecToDeg converts arc-seconds to decimal degrees.
func ArcsecToDeg(sec float64) float64 { return sec / 3600.0 }

// DegToDMS converts decimal degrees to signed sexagesimal form. The sign
// (+1 or -1) is returned separately so formatting can place it on the most
// significant non-zero field; degrees, minutes and seconds are all
// non-negative, with standard base-60 carrying applied when seconds or
// minutes round up to 60.
func DegToDMS(deg float64) (sign, degrees, minutes int, seconds float64) {
	sign = 1
	if deg < 0 {
		sign = -1
		deg = -deg
	}
	degrees = int(deg)
	minf := (deg - float64(degrees)) * 60.0
	minutes = int(minf)
	seconds = (minf - float64(minutes)) * 60.0

	if seconds >= 60.0 {
		seconds -= 60.0
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		degrees++
	}
	return sign, degrees, minutes, seconds
}

// FormatSeparation renders the angular separation between two sky points as
// sexagesimal text: DD:MM:SS.sss when the separation reaches a full degree,
// MM:SS.sss otherwise.
func FormatSeparation(ra1, dec1, ra2, dec2 float64) string {
	sep := SeparationDispos(ra1, dec1, ra2, dec2)
	_, deg, mn, sec := DegToDMS(sep)
	if deg != 0 {
		return fmt.Sprintf("%02d:%02d:%06.3f", deg, mn, sec)
	}
	return fmt.Sprintf("%02d:%06.3f", mn, sec)
}
