// Package geocentric converts between geodetic coordinates (latitude,
// longitude, height above a reference ellipsoid) and earth-centered,
// earth-fixed (ECEF) Cartesian coordinates (x, y, z).
//
// 🚀 What is geocentric?
//
//	The coordinate kernel every other geodesy tool leans on.  ECEF puts
//	the origin at the ellipsoid's center, the z axis through the north
//	pole and the x axis through lat = 0, lon = 0.  It's used in:
//	  • GNSS / satellite ephemeris processing
//	  • Sensor fusion & inertial navigation
//	  • Local tangent-plane (ENU) frame construction
//	  • Datum transformations
//
// ✨ Key features:
//   - closed-form forward transform (prime-vertical radius of curvature)
//   - closed-form reverse transform via Vermeille's trigonometric cubic
//     solve — no iteration, no convergence tolerance
//   - deterministic tie-break for the multi-valued inverse:
//     minimize |h|, then prefer lat > 0, then prefer lon = 0
//   - total over all finite inputs: the earth's center, the polar axis,
//     the equatorial disc and points beyond 10²² m all get exact answers
//   - NaN/±Inf propagate instead of panicking
//
// ⚙️ Usage:
//
//	import "github.com/Rightbot-robotics/geographiclib/geocentric"
//
//	x, y, z := geocentric.WGS84.Forward(48.8584, 2.2945, 101.0)
//	lat, lon, h := geocentric.WGS84.Reverse(x, y, z)
//
//	// or any oblate ellipsoid of revolution:
//	mars, err := geocentric.NewEllipsoid(3396190, 169.894447)
//
// Accuracy:
//
//	For points within 5000 km of the ellipsoid surface (inside or
//	outside), round-trip error is a few nanometers on a WGS84-scale
//	ellipsoid — double-precision round-off, not an iteration tolerance.
//
// Performance:
//
//   - Time:   O(1), fixed arithmetic count per call
//   - Memory: O(1), no allocation
//
// See examples in example_test.go.
package geocentric
