package units

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected float64
	}{
		{"zero", 0.0, 0.0},
		{"right angle", 90.0, math.Pi / 2},
		{"straight angle", 180.0, math.Pi},
		{"full circle", 360.0, 2 * math.Pi},
		{"negative azimuth", -90.0, -math.Pi / 2},
		{"spatial threshold 20 degrees", 20.0, 0.349066},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DegToRad(tt.deg)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("DegToRad(%f) = %f, want %f", tt.deg, result, tt.expected)
			}
		})
	}
}

func TestRadToDeg(t *testing.T) {
	tests := []struct {
		name     string
		rad      float64
		expected float64
	}{
		{"zero", 0.0, 0.0},
		{"quarter turn", math.Pi / 2, 90.0},
		{"half turn", math.Pi, 180.0},
		{"negative elevation", -math.Pi / 4, -45.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RadToDeg(tt.rad)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RadToDeg(%f) = %f, want %f", tt.rad, result, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 1, 20, 45, 90, 179.5, 180, 270, 359.9} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("RadToDeg(DegToRad(%f)) = %f, want %f", deg, got, deg)
		}
	}
}

func TestConvertAngle(t *testing.T) {
	tests := []struct {
		name     string
		angleDeg float64
		units    string
		expected float64
	}{
		{"degrees pass through", 20.0, DEG, 20.0},
		{"degrees to radians", 180.0, RAD, math.Pi},
		{"unknown units default to degrees", 20.0, "unknown", 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertAngle(tt.angleDeg, tt.units)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ConvertAngle(%f, %s) = %f, want %f", tt.angleDeg, tt.units, result, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid deg", DEG, true},
		{"valid rad", RAD, true},
		{"invalid unit", "grad", false},
		{"empty string", "", false},
		{"case sensitive", "DEG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValid(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}
