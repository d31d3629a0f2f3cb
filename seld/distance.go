package seld

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/seld-metrics/internal/units"
)

// CartesianAngularDistance returns the great-circle angular distance in
// degrees between two DOA unit vectors, recovered from the chord length
// between them.
func CartesianAngularDistance(a, b r3.Vec) float64 {
	// Half-chord of two unit vectors lies in [0, 1], but floating-point
	// error on near-antipodal inputs can push it just past 1, where asin
	// is undefined.
	half := clamp(r3.Norm(r3.Sub(a, b))/2, -1, 1)
	return units.RadToDeg(2 * math.Asin(half))
}

// SphericalAngularDistance returns the great-circle angular distance in
// degrees between two (azimuth, elevation) directions given in radians,
// via the spherical law of cosines.
func SphericalAngularDistance(az1, el1, az2, el2 float64) float64 {
	cos := math.Sin(el1)*math.Sin(el2) + math.Cos(el1)*math.Cos(el2)*math.Cos(math.Abs(az1-az2))
	return units.RadToDeg(math.Acos(clamp(cos, -1, 1)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
