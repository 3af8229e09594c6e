package localcartesian_test

import (
	"fmt"

	"github.com/Rightbot-robotics/geographiclib/localcartesian"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFrame_Forward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A drone launches from the frame origin on the equator and climbs
//	1 km straight up the ellipsoid normal.
//
// Effect:
//
//	Climbing the normal at the anchor moves only the up coordinate.
//
// Complexity: O(1) time, O(1) memory
func ExampleFrame_Forward() {
	frame, err := localcartesian.NewFrame(nil, 0, 0, 0) // nil → WGS84
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	e, n, u := frame.Forward(0, 0, 1000)
	fmt.Printf("e=%.0f n=%.0f u=%.0f\n", e, n, u)
	// Output:
	// e=0 n=0 u=1000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFrame_Reverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A surveying instrument reports a target 1 km above the same
//	equatorial anchor; recover its geodetic coordinates.
//
// Complexity: O(1) time, O(1) memory
func ExampleFrame_Reverse() {
	frame, err := localcartesian.NewFrame(nil, 0, 0, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lat, lon, h := frame.Reverse(0, 0, 1000)
	fmt.Printf("lat=%.0f lon=%.0f h=%.0f\n", lat, lon, h)
	// Output:
	// lat=0 lon=0 h=1000
}
