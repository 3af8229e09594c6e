package localcartesian

import (
	"fmt"
	"math"

	"github.com/Rightbot-robotics/geographiclib/geocentric"
)

const degree = math.Pi / 180

// NewFrame builds an immutable east-north-up frame anchored at the
// geodetic origin (lat0, lon0, h0) on ell.  A nil ell selects the WGS84
// ellipsoid.
//
// The origin's ECEF position and the ECEF→ENU rotation are computed once
// here; every later conversion is a fixed rotate-and-translate around
// them.
//
// Errors:
//   - ErrOriginLatitude  — lat0 outside [-90, 90] or NaN.
//   - ErrOriginNotFinite — lon0 or h0 is NaN or ±Inf.
func NewFrame(ell *geocentric.Ellipsoid, lat0, lon0, h0 float64) (*Frame, error) {
	if ell == nil {
		ell = geocentric.WGS84
	}
	if math.IsNaN(lat0) || math.Abs(lat0) > 90 {
		return nil, fmt.Errorf("%w: got %v", ErrOriginLatitude, lat0)
	}
	if math.IsNaN(lon0) || math.IsInf(lon0, 0) || math.IsNaN(h0) || math.IsInf(h0, 0) {
		return nil, fmt.Errorf("%w: got lon=%v h=%v", ErrOriginNotFinite, lon0, h0)
	}

	x0, y0, z0 := ell.Forward(lat0, lon0, h0)

	sphi, cphi := math.Sincos(lat0 * degree)
	if math.Abs(lat0) == 90 {
		// Same polar convention as the geocentric kernel: the up axis is
		// exactly the ±z axis, east/north carry no longitude jitter.
		cphi = 0
	}
	slam, clam := math.Sincos(lon0 * degree)

	return &Frame{
		ell:  ell,
		lat0: lat0, lon0: lon0, h0: h0,
		x0: x0, y0: y0, z0: z0,
		sphi: sphi, cphi: cphi,
		slam: slam, clam: clam,
	}, nil
}

// Forward — geodetic → local ENU
//
// Description:
//
//	Converts geodetic lat, lon (degrees) and height h (meters) to the
//	east, north, up coordinates (meters) of this frame.
//
// Algorithm Outline:
//  1. (x, y, z) = ellipsoid ECEF of (lat, lon, h)
//  2. rotate the offset from the frame origin into ENU:
//     e = −sinλ₀·dx + cosλ₀·dy
//     n = −sinφ₀cosλ₀·dx − sinφ₀sinλ₀·dy + cosφ₀·dz
//     u =  cosφ₀cosλ₀·dx + cosφ₀sinλ₀·dy + sinφ₀·dz
//
// Pure and total for finite inputs; non-finite inputs propagate.
//
// Complexity:
//
//	Time = O(1), Memory = O(1)
func (f *Frame) Forward(lat, lon, h float64) (e, n, u float64) {
	x, y, z := f.ell.Forward(lat, lon, h)

	return f.rotate(x-f.x0, y-f.y0, z-f.z0)
}

// Reverse — local ENU → geodetic
//
// Description:
//
//	Converts east, north, up coordinates (meters) of this frame back to
//	geodetic lat, lon (degrees) and height h (meters).  Inherits the
//	geocentric kernel's tie-break policy for points on degenerate loci
//	(the polar axis, the equatorial evolute disc, the earth's center).
//
// Algorithm Outline:
//  1. apply the transposed ENU rotation to recover the ECEF offset
//  2. translate by the frame origin and run the geocentric reverse solve
//
// Complexity:
//
//	Time = O(1), Memory = O(1)
func (f *Frame) Reverse(e, n, u float64) (lat, lon, h float64) {
	dx := -f.slam*e - f.sphi*f.clam*n + f.cphi*f.clam*u
	dy := f.clam*e - f.sphi*f.slam*n + f.cphi*f.slam*u
	dz := f.cphi*n + f.sphi*u

	return f.ell.Reverse(f.x0+dx, f.y0+dy, f.z0+dz)
}

// rotate maps an ECEF offset from the frame origin into ENU components.
func (f *Frame) rotate(dx, dy, dz float64) (e, n, u float64) {
	e = -f.slam*dx + f.clam*dy
	n = -f.sphi*f.clam*dx - f.sphi*f.slam*dy + f.cphi*dz
	u = f.cphi*f.clam*dx + f.cphi*f.slam*dy + f.sphi*dz

	return e, n, u
}
