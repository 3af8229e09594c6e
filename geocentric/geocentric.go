package geocentric

import "math"

// Forward — geodetic → ECEF
//
// Description:
//
//	Converts geodetic coordinates lat, lon (degrees) and height h above
//	the ellipsoid (meters) to earth-centered, earth-fixed Cartesian
//	coordinates x, y, z (meters).
//
// Algorithm Outline:
//  1. N = a / √(1 − e2·sin²lat)   (radius of curvature in the prime vertical)
//  2. x = (N + h)·cos(lat)·cos(lon)
//     y = (N + h)·cos(lat)·sin(lon)
//     z = (N·(1−e2) + h)·sin(lat)
//
// At lat = ±90 the cosine is forced to exactly 0, so polar points carry
// no longitude-dependent jitter in x and y.
//
// Total for all finite inputs; non-finite inputs propagate.  Round-trip
// through Reverse recovers (lat, lon, h) to near machine precision.
//
// Complexity:
//
//	Time = O(1), Memory = O(1)
func (e *Ellipsoid) Forward(lat, lon, h float64) (x, y, z float64) {
	phi := lat * degree
	lam := lon * degree
	sphi := math.Sin(phi)
	cphi := math.Cos(phi)
	if math.Abs(lat) == 90 {
		cphi = 0
	}
	n := e.a / math.Sqrt(1-e.e2*sphi*sphi)

	z = (e.e2m*n + h) * sphi
	x = (n + h) * cphi
	y = x * math.Sin(lam)
	x *= math.Cos(lam)

	return x, y, z
}

// Reverse — ECEF → geodetic
//
// Description:
//
//	Converts ECEF coordinates x, y, z (meters) to geodetic lat, lon
//	(degrees) and height h (meters).  The forward map has no closed-form
//	inverse in general; Reverse finds the real root of Vermeille's
//	quartic through an auxiliary cubic solved trigonometrically, so the
//	result is round-off accurate without any convergence loop.
//
//	In general there are multiple valid solutions and the one minimizing
//	|h| is returned.  If solutions with different latitudes remain tied
//	(possible only for z = 0) the one with lat > 0 is returned.  If
//	solutions with different longitudes remain tied (possible only for
//	x = y = 0) then lon = 0 is returned.
//
// Algorithm Outline:
//  1. If the distance to the origin exceeds maxrad, treat the ellipsoid
//     as a point: lat from the direction (halved components, so finite
//     x, y whose hypot overflows still work), h = distance.
//  2. Sphere (e4 = 0): lat = atan2(z, √(x²+y²)), h = distance − a; the
//     origin maps to the north pole, same as an ellipsoid.
//  3. Scale to p = (√(x²+y²)/a)², q = (1−e2)·(z/a)², r = (p+q−e4)/6.
//     Off the equatorial evolute disc, solve the cubic for u with the
//     equations multiplied through by r³ and r to dodge division by a
//     vanishing r: S = e4·p·q/4, disc = S·(2r³+S).
//     disc ≥ 0: u = r + T + r²/T with T³ = r³+S ± √disc, sign picked to
//     maximize |T³| and avoid cancellation (cbrt keeps the real root).
//     disc < 0: all roots real; u = r + 2|r|·cos((2π + atan2(√−disc, r³+S))/3),
//     the branch that stays well-conditioned near s = 0.
//     Then v = √(u²+e4·q); u+v computed as e4·q/(v−u) when u < 0;
//     w = max(0, e2·(u+v−q)/(2v)); k = (u+v)/(√(u+v+w²)+w);
//     d = k·√(x²+y²)/(k+e2); lat = atan2(z, d);
//     h = (k+e2−1)·hypot(d, z)/k.
//  4. On the equatorial disc inside the evolute (e4·q = 0, r ≤ 0) the
//     generic k collapses to 0, so the two symmetric solutions are taken
//     directly: tan(lat) = ±√((e4−p)/(1−e2)) / √p, negative only for
//     z < 0, and h = −a·(1−e2)·hypot(tan-terms)/e2 (the closest point on
//     the ellipse, h ≤ 0).  p = 0 is the exact center: lat = 90, lon = 0,
//     h = −b.
//
// The returned height always satisfies
//
//	h ≥ −a·(1−e2) / √(1 − e2·sin²lat).
//
// Errors: none — NaN/±Inf inputs propagate to the outputs.
//
// Complexity:
//
//	Time = O(1), Memory = O(1)
func (e *Ellipsoid) Reverse(x, y, z float64) (lat, lon, h float64) {
	rad := math.Hypot(x, y)
	h = math.Hypot(rad, z) // distance to the center of the earth
	var phi float64

	switch {
	case h > e.maxrad:
		// So far away that the ellipsoid is a point and h, above, is an
		// acceptable height.  Squaring rad or z here could overflow, and
		// rad may already be +Inf for finite x, y; halving first keeps
		// the direction intact.
		phi = math.Atan2(z/2, math.Hypot(x/2, y/2))
	case e.e4 == 0:
		// Sphere.  The origin maps to the north pole, matching the
		// ellipsoidal tie-break.
		if h != 0 {
			phi = math.Atan2(z, rad)
		} else {
			phi = math.Pi / 2
		}
		h -= e.a
	default:
		p := sq(rad / e.a)
		q := e.e2m * sq(z/e.a)
		r := (p + q - e.e4) / 6
		if e.e4*q == 0 && r <= 0 {
			phi, h = e.reverseEvolute(p, z)
		} else {
			phi, h = e.reverseGeneric(p, q, r, rad, z)
		}
	}

	lat = phi / degree
	// atan2(0, 0) = 0, which is exactly the lon = 0 tie-break on the axis.
	lon = math.Atan2(y, x) / degree

	return lat, lon, h
}

// reverseGeneric solves Vermeille's cubic for a point off the equatorial
// evolute disc.  p, q, r are the scaled invariants from Reverse; rad and
// z carry the original cylindrical radius and axial coordinate.
func (e *Ellipsoid) reverseGeneric(p, q, r, rad, z float64) (phi, h float64) {
	// Multiplying the equations for s and t by r³ and r sidesteps a
	// division by zero when r = 0.
	s := e.e4 * p * q / 4 // s = r³·(Vermeille's s)
	r2 := sq(r)
	r3 := r * r2
	disc := s * (2*r3 + s)

	u := r
	if disc >= 0 {
		t3 := r3 + s
		// Pick the sign of the sqrt to maximize |t3|.  This minimizes
		// loss of precision from cancellation; u is unchanged either way.
		if t3 < 0 {
			t3 -= math.Sqrt(disc)
		} else {
			t3 += math.Sqrt(disc)
		}
		t := math.Cbrt(t3) // cbrt keeps the real root: cbrt(−8) = −2
		u += t
		if t != 0 {
			u += r2 / t
		}
	} else {
		// Three real roots; the multiple of 2π below selects the branch
		// that keeps k continuous and well-conditioned near s = 0.
		ang := math.Atan2(math.Sqrt(-disc), r3+s)
		u += 2 * math.Abs(r) * math.Cos((2*math.Pi+ang)/3)
	}

	v := math.Sqrt(sq(u) + e.e4*q) // guaranteed positive
	// u+v suffers cancellation when u < 0; e4·q/(v−u) is the same value
	// without the subtraction, and the denominator can't underflow there
	// because u ~ e4 whenever q is small with u < 0.
	uv := u + v
	if u < 0 {
		uv = e.e4 * q / (v - u)
	}
	// w can only go negative through roundoff in uv − q; clamp it.
	w := math.Max(0, e.e2*(uv-q)/(2*v))
	// k = √(uv+w²) − w rearranged so the subtraction can't cancel.
	// uv > 0 and w ≥ 0, so no division by zero.
	k := uv / (math.Sqrt(uv+sq(w)) + w)
	d := k * rad / (k + e.e2)

	phi = math.Atan2(z, d)
	h = (k + e.e2 - 1) * math.Hypot(d, z) / k

	return phi, h
}

// reverseEvolute handles points on the equatorial plane inside the
// evolute (rad ≤ a·e2 with z underflowed to zero), where the generic
// solve yields k = 0 and 0/0.  Here two latitude solutions with equal
// |h| exist; the positive one wins unless z is (tiny) negative.  p = 0
// is the fully degenerate center of the earth.
func (e *Ellipsoid) reverseEvolute(p, z float64) (phi, h float64) {
	zz := math.Sqrt((e.e4 - p) / e.e2m) // proportional to sin(phi)
	xx := math.Sqrt(p)                  // proportional to cos(phi)
	if z < 0 {
		zz = -zz
	}
	phi = math.Atan2(zz, xx)
	h = -e.a * e.e2m * math.Hypot(zz, xx) / e.e2

	return phi, h
}

// sq returns x².
func sq(x float64) float64 { return x * x }
