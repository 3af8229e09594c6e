// Package localcartesian defines the Frame type and sentinel errors for
// the localcartesian subpackage of
// github.com/Rightbot-robotics/geographiclib.
package localcartesian

import (
	"errors"

	"github.com/Rightbot-robotics/geographiclib/geocentric"
)

// Sentinel errors for frame construction.
var (
	// ErrOriginLatitude indicates an origin latitude outside [-90, 90] or NaN.
	ErrOriginLatitude = errors.New("localcartesian: origin latitude must lie in [-90, 90]")
	// ErrOriginNotFinite indicates a non-finite origin longitude or height.
	ErrOriginNotFinite = errors.New("localcartesian: origin longitude and height must be finite")
)

// Frame is a local east-north-up Cartesian frame anchored at a geodetic
// origin.  It stores the origin's ECEF position and the fixed ECEF→ENU
// rotation, both computed once in NewFrame; a Frame is immutable and
// safe to share across unlimited concurrent readers.
type Frame struct {
	ell *geocentric.Ellipsoid

	lat0, lon0, h0 float64 // geodetic origin, degrees/meters
	x0, y0, z0     float64 // origin in ECEF, meters
	sphi, cphi     float64 // sin/cos of the origin latitude
	slam, clam     float64 // sin/cos of the origin longitude
}

// Origin returns the geodetic origin of the frame (degrees, meters).
func (f *Frame) Origin() (lat, lon, h float64) { return f.lat0, f.lon0, f.h0 }

// Ellipsoid returns the ellipsoid the frame is defined on.
func (f *Frame) Ellipsoid() *geocentric.Ellipsoid { return f.ell }
