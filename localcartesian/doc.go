// Package localcartesian converts between geodetic coordinates and a
// local east-north-up (ENU) Cartesian frame anchored at an arbitrary
// origin on the ellipsoid.
//
// 🚀 What is a local Cartesian frame?
//
//	A flat x-y-z grid glued to one spot on the earth: x points east,
//	y points north, z points up along the ellipsoid normal.  It's the
//	natural frame for:
//	  • Robot and vehicle navigation around a site
//	  • Antenna pointing (azimuth/elevation from ENU components)
//	  • Survey networks and local engineering grids
//
// ✨ Key features:
//   - exact construction on top of the geocentric kernel — the only
//     approximation is double-precision round-off
//   - any ellipsoid from the geocentric package, WGS84 by default
//   - immutable frames, safe for unlimited concurrent readers
//
// ⚙️ Usage:
//
//	import "github.com/Rightbot-robotics/geographiclib/localcartesian"
//
//	// frame anchored at the Greenwich observatory
//	frame, err := localcartesian.NewFrame(nil, 51.4778, -0.0015, 46)
//
//	e, n, u := frame.Forward(51.5007, -0.1246, 35)   // → meters ENU
//	lat, lon, h := frame.Reverse(e, n, u)            // → back again
//
// Performance:
//
//   - Time:   O(1) per conversion, fixed arithmetic count
//   - Memory: O(1), no allocation after NewFrame
//
// See examples in example_test.go.
package localcartesian
