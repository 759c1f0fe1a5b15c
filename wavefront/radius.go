package wavefront

import (
	"fmt"
	"math"
)

// CalcAmplitude returns the peak-to-valley span of a phase field, skipping
// NaN and infinite entries. The span of the unwrapped phase across the clear
// aperture is the proxy for wavefront sag used by the radius estimator.
func CalcAmplitude(phase [][]float64) float64 {
	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for i := range phase {
		for j := range phase[i] {
			v := phase[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	if maxV < minV {
		return 0
	}
	return maxV - minV
}

// CalculateRadius inverts the spherical-cap relation between sagitta s and
// clear-aperture diameter d: R = (s^2 + (d/2)^2) / (2s). Inputs and result
// are in millimeters.
func CalculateRadius(sagittaMm, diameterMm float64) (float64, error) {
	if sagittaMm <= 0 {
		return 0, fmt.Errorf("wavefront: sagitta must be positive, got %g mm", sagittaMm)
	}
	if diameterMm <= 0 {
		return 0, fmt.Errorf("wavefront: aperture diameter must be positive, got %g mm", diameterMm)
	}
	half := diameterMm / 2
	return (sagittaMm*sagittaMm + half*half) / (2 * sagittaMm), nil
}

// WavefrontRadius reconstructs the wavefront's radius of curvature in
// millimeters from its unwrapped phase across the given aperture.
//
// The aperture is first adapted to the wave's phase sampling; the adapted
// aperture's diameter is the one used in the spherical-cap inversion, so the
// measurement and its clear aperture always agree.
func (w *Wave) WavefrontRadius(ap *Aperture) (float64, error) {
	if ap == nil {
		return 0, fmt.Errorf("wavefront: radius reconstruction requires an aperture")
	}

	adapted, err := ap.Adapt(w)
	if err != nil {
		return 0, fmt.Errorf("wavefront: aperture adaptation failed: %w", err)
	}

	unwrapped, err := w.UnwrappedPhase(adapted)
	if err != nil {
		return 0, fmt.Errorf("wavefront: phase unwrapping failed: %w", err)
	}

	// Measure the span inside the clear aperture only; the zeroed exterior
	// carries an arbitrary unwrap offset and would corrupt the sag.
	mask := adapted.Mask()
	for i := range unwrapped {
		for j := range unwrapped[i] {
			if mask[i][j] == 0 {
				unwrapped[i][j] = math.NaN()
			}
		}
	}

	amplitude := CalcAmplitude(unwrapped)
	sagittaMm := RadToMm(amplitude, w.wavelength)
	diameterMm := MToMm(adapted.Diameter())

	radius, err := CalculateRadius(sagittaMm, diameterMm)
	if err != nil {
		return 0, fmt.Errorf("wavefront: degenerate sag across aperture: %w", err)
	}
	return radius, nil
}
