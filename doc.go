// Package geographiclib is a compact geodesy toolkit: exact conversions
// between geodetic coordinates and earth-centered Cartesian frames on an
// arbitrary oblate (or spherical) ellipsoid of revolution.
//
// 🚀 What is geographiclib?
//
//	A small, thread-safe, dependency-light library that brings together:
//		• Ellipsoid models: immutable shape parameters, WGS84 built in
//		• Geocentric transform: geodetic ⇄ ECEF, closed form both ways
//		• Local frames: east-north-up Cartesian frames anchored anywhere
//
// ✨ Why choose geographiclib?
//
//   - Round-off accurate – the reverse transform solves Vermeille's cubic
//     trigonometrically, no iteration loops, no tolerance tuning
//   - Total – every finite input has a deterministic, documented answer,
//     including the earth's center, the poles and points light-years away
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe – every model is immutable after construction
//
// Everything is organized under two subpackages:
//
//	geocentric/     — Ellipsoid model + geodetic ⇄ ECEF transforms
//	localcartesian/ — local tangent-plane (ENU) frames over geocentric
//
// Quick ASCII example:
//
//	        z │     ∧ up, north
//	          │    ╱
//	      ────┼───●───── lat,lon,h on the ellipsoid surface
//	        ╱ │
//	    x ∠   │ y
//
//	ECEF places the origin at the ellipsoid's center; the z axis pierces
//	the north pole and the x axis pierces lat = 0, lon = 0.
//
// Dive into the package docs for formulas, accuracy bounds and examples.
//
//	go get github.com/Rightbot-robotics/geographiclib/geocentric
package geographiclib
