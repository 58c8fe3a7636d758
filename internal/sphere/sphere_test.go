package sphere

import (
	"math"
	"testing"
)

func TestDispos_SamePoint(t *testing.T) {
	phi, dist := Dispos(120.5, -33.2, 120.5, -33.2)
	if phi != 0 || dist != 0 {
		t.Errorf("same point: got (phi=%v, dist=%v), want (0, 0)", phi, dist)
	}
}

func TestDispos_SamePointSweep(t *testing.T) {
	// At many declinations the law-of-cosines sum drifts marginally past 1
	// for coincident points; without clamping, Acos returns NaN instead of
	// distance 0. Drift the other way leaves a sub-milliarcsecond residual,
	// well under the coincidence floor, so the bearing must still be the
	// degenerate 0.
	const distTol = 1e-3 // arcmin
	for _, ra := range []float64{0.1, 90, 180.3, 271.7} {
		for dec := -89.9; dec <= 89.9; dec += 0.1 {
			phi, dist := Dispos(ra, dec, ra, dec)
			if math.IsNaN(phi) || math.IsNaN(dist) {
				t.Fatalf("same point ra=%v dec=%v: got NaN (phi=%v, dist=%v)", ra, dec, phi, dist)
			}
			if phi != 0 || math.Abs(dist) > distTol {
				t.Errorf("same point ra=%v dec=%v: got (phi=%v, dist=%v), want (0, ~0)", ra, dec, phi, dist)
			}
		}
	}
}

func TestDispos_NearAntipodal(t *testing.T) {
	phi, dist := Dispos(0, 0, 180, 0)
	if math.IsNaN(phi) || math.IsNaN(dist) {
		t.Fatalf("antipodal: got NaN (phi=%v, dist=%v)", phi, dist)
	}
	if math.Abs(dist-10800) > 1e-6 {
		t.Errorf("antipodal distance: got %v arcmin, want 10800", dist)
	}
}

func TestDispos_PoleToEquator(t *testing.T) {
	phi, dist := Dispos(0, 90, 0, 0)
	if phi != 180 {
		t.Errorf("bearing from north pole: got %v, want 180", phi)
	}
	if math.Abs(dist-5400) > 1e-6 {
		t.Errorf("distance: got %v arcmin, want 5400", dist)
	}
}

func TestDispos_SouthPole(t *testing.T) {
	phi, _ := Dispos(45, -90, 45, 0)
	if phi != 0 {
		t.Errorf("bearing from south pole: got %v, want 0", phi)
	}
}

func TestDispos_CardinalBearings(t *testing.T) {
	tests := []struct {
		name             string
		ra, dec          float64
		wantPhi          float64
		wantDistArcmin   float64
		distTol, bearTol float64
	}{
		{"due north", 0, 10, 0, 600, 1e-6, 1e-6},
		{"due east", 10, 0, 90, 600, 1e-6, 1e-6},
		{"due south", 0, -10, 180, 600, 1e-6, 1e-6},
		{"due west", 350, 0, 270, 600, 1e-6, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phi, dist := Dispos(0, 0, tt.ra, tt.dec)
			if math.Abs(phi-tt.wantPhi) > tt.bearTol {
				t.Errorf("bearing: got %v, want %v", phi, tt.wantPhi)
			}
			if math.Abs(dist-tt.wantDistArcmin) > tt.distTol {
				t.Errorf("distance: got %v, want %v", dist, tt.wantDistArcmin)
			}
		})
	}
}

func TestDispos_TinySeparationBelowFloor(t *testing.T) {
	// 1e-8 degrees is well under the 4e-7 radian floor; bearing must be
	// the degenerate value, not NaN from dividing by sin(dist) ~ 0.
	phi, dist := Dispos(10, 20, 10, 20+1e-8)
	if math.IsNaN(phi) || math.IsNaN(dist) {
		t.Fatalf("got NaN: phi=%v dist=%v", phi, dist)
	}
	if phi != 0 {
		t.Errorf("bearing below floor: got %v, want 0", phi)
	}
}

func TestSeparationFormulasAgree(t *testing.T) {
	points := []struct{ ra1, dec1, ra2, dec2 float64 }{
		{10, 20, 30, 40},
		{350, -10, 5, 12},
		{180, 45, 180.001, 44.999},
		{0, 0, 180, 0},
		{123.4, -56.7, 89.1, 33.3},
	}
	for _, p := range points {
		a := SeparationDispos(p.ra1, p.dec1, p.ra2, p.dec2)
		b := Separation(p.ra1, p.dec1, p.ra2, p.dec2)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("formulas diverge at (%v,%v)-(%v,%v): dispos=%v colat=%v",
				p.ra1, p.dec1, p.ra2, p.dec2, a, b)
		}
	}
}

func TestRaDecOffsets_SamePoint(t *testing.T) {
	dra, ddec := RaDecOffsets(200, -45, 200, -45)
	if dra != 0 || ddec != 0 {
		t.Errorf("same point: got (%v,%v), want (0,0)", dra, ddec)
	}
}

func TestRaDecOffsets_Wraparound(t *testing.T) {
	// Crossing the 0/360 seam must take the short way: about +2 degrees,
	// not -358.
	dra, ddec := RaDecOffsets(1, 0, 359, 0)
	if math.Abs(dra-2) > 1e-9 {
		t.Errorf("delta RA: got %v, want 2", dra)
	}
	if ddec != 0 {
		t.Errorf("delta Dec: got %v, want 0", ddec)
	}

	// And the other direction.
	dra, _ = RaDecOffsets(359, 0, 1, 0)
	if math.Abs(dra+2) > 1e-9 {
		t.Errorf("delta RA: got %v, want -2", dra)
	}
}

func TestRaDecOffsets_DecCompression(t *testing.T) {
	// At dec2 = 60 the RA delta is halved.
	dra, ddec := RaDecOffsets(10, 60, 0, 60)
	if math.Abs(dra-5) > 1e-9 {
		t.Errorf("delta RA: got %v, want 5", dra)
	}
	if ddec != 0 {
		t.Errorf("delta Dec: got %v, want 0", ddec)
	}
}

func TestDegArcsecRoundTrip(t *testing.T) {
	if got := DegToArcsec(1.5); got != 5400 {
		t.Errorf("DegToArcsec(1.5): got %v, want 5400", got)
	}
	if got := ArcsecToDeg(DegToArcsec(0.123456)); math.Abs(got-0.123456) > 1e-12 {
		t.Errorf("round trip: got %v, want 0.123456", got)
	}
}

func TestDegToDMS(t *testing.T) {
	tests := []struct {
		deg      float64
		sign     int
		d, m     int
		s        float64
	}{
		{10.5, 1, 10, 30, 0},
		{-0.5, -1, 0, 30, 0},
		{0, 1, 0, 0, 0},
		{89.9999, 1, 89, 59, 59.64},
		{-45.25, -1, 45, 15, 0},
	}
	for _, tt := range tests {
		sign, d, m, s := DegToDMS(tt.deg)
		if sign != tt.sign || d != tt.d || m != tt.m || math.Abs(s-tt.s) > 1e-6 {
			t.Errorf("DegToDMS(%v): got (%d,%d,%d,%v), want (%d,%d,%d,%v)",
				tt.deg, sign, d, m, s, tt.sign, tt.d, tt.m, tt.s)
		}
	}
}

func TestDegToDMS_Invariants(t *testing.T) {
	for deg := -90.0; deg <= 90.0; deg += 0.37 {
		sign, d, m, s := DegToDMS(deg)
		if m < 0 || m >= 60 || s < 0 || s >= 60 {
			t.Fatalf("DegToDMS(%v): fields out of range (%d,%d,%d,%v)", deg, sign, d, m, s)
		}
		back := float64(sign) * (float64(d) + float64(m)/60 + s/3600)
		if math.Abs(back-deg) > 1e-9 {
			t.Fatalf("DegToDMS(%v): reconstructs to %v", deg, back)
		}
	}
}

func TestFormatSeparation(t *testing.T) {
	// 0.51 degrees along the equator: sub-degree form MM:SS.sss.
	if got := FormatSeparation(0, 0, 0.51, 0); got != "30:36.000" {
		t.Errorf("sub-degree: got %q, want %q", got, "30:36.000")
	}
	// Over a degree: full DD:MM:SS.sss form.
	if got := FormatSeparation(0, 0, 0, 1.51); got != "01:30:36.000" {
		t.Errorf("degree-scale: got %q, want %q", got, "01:30:36.000")
	}
}
