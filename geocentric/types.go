// Package geocentric defines the ellipsoid model, reference constants,
// and sentinel errors for the geocentric subpackage of
// github.com/Rightbot-robotics/geographiclib.
package geocentric

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for ellipsoid construction.
var (
	// ErrEquatorialRadius indicates a non-finite or non-positive equatorial radius.
	ErrEquatorialRadius = errors.New("geocentric: equatorial radius must be finite and positive")
	// ErrFlattening indicates an inverse flattening in (0, 1], i.e. flattening ≥ 1,
	// which would put the eccentricity squared outside [0, 1).
	ErrFlattening = errors.New("geocentric: inverse flattening must exceed 1 (or be ≤ 0 for a sphere)")
)

// Reference parameters for the WGS84 ellipsoid.
const (
	// WGS84EquatorialRadius is the WGS84 equatorial radius a, in meters.
	WGS84EquatorialRadius = 6378137.0
	// WGS84InverseFlattening is the WGS84 inverse flattening 1/f, dimensionless.
	WGS84InverseFlattening = 298.257223563
)

const (
	degree = math.Pi / 180 // radians per degree

	// dblEpsilon is the distance from 1.0 to the next larger float64 (2⁻⁵²).
	dblEpsilon = 1.0 / (1 << 52)
)

// Ellipsoid holds the shape parameters of an oblate (or spherical)
// ellipsoid of revolution, derived once at construction and never
// mutated.  It is safe to share across unlimited concurrent readers.
//
// Stored values:
//   - a      — equatorial radius (meters)
//   - f      — flattening (a−b)/a, 0 for a sphere
//   - e2     — first eccentricity squared, f(2−f), in [0, 1)
//   - e4     — e2²
//   - e2m    — 1 − e2
//   - maxrad — far-point guard radius; beyond it the reverse transform
//     treats the ellipsoid as a point to keep squaring from overflowing
type Ellipsoid struct {
	a, f, e2, e4, e2m, maxrad float64
}

// NewEllipsoid builds an immutable Ellipsoid from the equatorial radius a
// (meters) and the inverse flattening invf.  invf ≤ 0 means infinite
// inverse flattening, i.e. flattening 0, a perfect sphere.
//
// Errors:
//   - ErrEquatorialRadius — a is NaN, ±Inf, zero or negative.
//   - ErrFlattening       — invf in (0, 1], which implies e2 ≥ 1.
func NewEllipsoid(a, invf float64) (*Ellipsoid, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrEquatorialRadius, a)
	}

	var f float64
	if invf > 0 {
		f = 1 / invf
	}
	if f >= 1 || math.IsNaN(invf) {
		return nil, fmt.Errorf("%w: got 1/%v", ErrFlattening, invf)
	}

	e2 := f * (2 - f)

	return &Ellipsoid{
		a:      a,
		f:      f,
		e2:     e2,
		e4:     e2 * e2,
		e2m:    1 - e2,
		maxrad: 2 * a / dblEpsilon,
	}, nil
}

// EquatorialRadius returns the equatorial radius a, in meters.
func (e *Ellipsoid) EquatorialRadius() float64 { return e.a }

// Flattening returns the flattening f = (a−b)/a.
func (e *Ellipsoid) Flattening() float64 { return e.f }

// PolarRadius returns the polar semi-minor axis b = a·√(1−e2), in meters.
func (e *Ellipsoid) PolarRadius() float64 { return e.a * math.Sqrt(e.e2m) }

// WGS84 is the World Geodetic System 1984 reference ellipsoid, the datum
// used by GPS.  Built once at package load; safe for unlimited concurrent
// reads.
var WGS84 *Ellipsoid

func init() {
	var err error
	WGS84, err = NewEllipsoid(WGS84EquatorialRadius, WGS84InverseFlattening)
	if err != nil {
		panic(fmt.Sprintf("geocentric: constructing WGS84 ellipsoid: %s", err))
	}
}
