package wavefront

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Method selects a free-space propagation algorithm.
type Method int

const (
	// AngularSpectrum propagates the field by transforming it to the
	// spatial-frequency domain, applying the exact free-space transfer
	// function, and transforming back.
	AngularSpectrum Method = iota
)

// String implements fmt.Stringer for diagnostics.
func (m Method) String() string {
	switch m {
	case AngularSpectrum:
		return "angular spectrum"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Propagate advances the field by a longitudinal distance z in meters and
// updates the cumulative distance, recomputing cached phase and intensity.
// z must be non-negative; an unrecognized method is an error, never a no-op.
func (w *Wave) Propagate(z float64, method Method) error {
	if z < 0 {
		return fmt.Errorf("wavefront: propagation distance must be non-negative, got %g", z)
	}
	switch method {
	case AngularSpectrum:
		w.angularSpectrum(z)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
	w.distance += z
	w.refreshDerived()
	return nil
}

// angularSpectrum applies the free-space transfer function
// H = exp(i*k*z*sqrt(1 - (lambda*nux)^2 - (lambda*nuy)^2)) in the spatial
// frequency domain. The square root is evaluated as complex so that
// frequencies beyond 1/lambda decay exponentially instead of rotating; that
// evanescent attenuation is the physically correct band limit and must not
// be clamped away.
func (w *Wave) angularSpectrum(z float64) {
	h := len(w.field)
	wd := len(w.field[0])

	k := 2 * math.Pi / w.wavelength

	// Frequency axes in the transform's native order, satisfying the
	// sampling condition implied by the grid pitch.
	nuX := freqAxis(wd, w.area.PixelSize())
	nuY := freqAxis(h, w.area.PixelSize())

	fft2InPlace(w.field, true)

	for i := 0; i < h; i++ {
		ly := w.wavelength * nuY[i]
		for j := 0; j < wd; j++ {
			lx := w.wavelength * nuX[j]
			w.field[i][j] *= transferFactor(k, z, lx, ly)
		}
	}

	fft2InPlace(w.field, false)

	// Gonum transforms are unnormalized; a forward/inverse round trip
	// scales by h*wd.
	scale := complex(1.0/float64(h*wd), 0)
	for i := 0; i < h; i++ {
		for j := 0; j < wd; j++ {
			w.field[i][j] *= scale
		}
	}
}

// transferFactor is the free-space transfer function sample for normalized
// transverse frequencies lx = lambda*nux, ly = lambda*nuy.
func transferFactor(k, z, lx, ly float64) complex128 {
	root := cmplx.Sqrt(complex(1-lx*lx-ly*ly, 0))
	return cmplx.Exp(complex(0, k*z) * root)
}
