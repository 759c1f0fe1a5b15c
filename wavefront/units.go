package wavefront

import "math"

// Unit converters shared by the wave model and the radius estimator.

// PxToM converts a pixel count to meters using the grid pitch.
func PxToM(px, pixelSizeM float64) float64 { return px * pixelSizeM }

// MToMm converts meters to millimeters.
func MToMm(m float64) float64 { return m * 1e3 }

// RadToMm converts a phase span in radians to a physical length in
// millimeters: one full 2*pi cycle corresponds to one wavelength.
func RadToMm(rad, wavelengthM float64) float64 {
	return rad * MToMm(wavelengthM) / (2 * math.Pi)
}
