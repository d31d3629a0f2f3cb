// Package units provides shared constants and conversions for angular units
package units

import "math"

// Unit constants
const (
	DEG = "deg"
	RAD = "rad"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{DEG, RAD}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// DegToRad converts an angle in degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ConvertAngle converts an angle from degrees to the target units
// Annotation files carry angles in degrees
func ConvertAngle(angleDeg float64, targetUnits string) float64 {
	switch targetUnits {
	case DEG:
		return angleDeg
	case RAD:
		return DegToRad(angleDeg)
	default:
		return angleDeg
	}
}
