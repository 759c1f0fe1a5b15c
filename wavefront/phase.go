package wavefront

import "fmt"

// WrappedPhase returns the wave's wrapped phase, optionally restricted to an
// aperture. With a non-nil aperture the phase is multiplied elementwise by
// the mask, zeroing everything outside the clear aperture; with a nil
// aperture a copy of the raw wrapped phase is returned.
//
// Aperture adaptation is not performed here: callers that want the mask
// tuned to the wave call (*Aperture).Adapt first and pass in the result.
func (w *Wave) WrappedPhase(ap *Aperture) ([][]float64, error) {
	h, wd, err := rectDims(w.phase)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, h)
	if ap == nil {
		for i := range w.phase {
			out[i] = make([]float64, wd)
			copy(out[i], w.phase[i])
		}
		return out, nil
	}

	if len(ap.mask) != h || len(ap.mask[0]) != wd {
		return nil, fmt.Errorf("%w: mask is %dx%d, phase is %dx%d",
			ErrShapeMismatch, len(ap.mask), len(ap.mask[0]), h, wd)
	}
	if ap.openCount() == 0 {
		return nil, ErrEmptyAperture
	}
	for i := 0; i < h; i++ {
		out[i] = make([]float64, wd)
		for j := 0; j < wd; j++ {
			out[i][j] = w.phase[i][j] * ap.mask[i][j]
		}
	}
	return out, nil
}

// UnwrappedPhase removes 2*pi discontinuities from the (optionally
// aperture-masked) wrapped phase using a quality-guided unwrapper. The
// result shares the global 2*pi*k ambiguity inherent to unwrapping; relative
// structure inside any connected region is exact.
func (w *Wave) UnwrappedPhase(ap *Aperture) ([][]float64, error) {
	masked, err := w.WrappedPhase(ap)
	if err != nil {
		return nil, err
	}
	return unwrapPhase(masked)
}
