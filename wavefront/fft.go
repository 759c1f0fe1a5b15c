package wavefront

import (
	"errors"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fft2InPlace applies an unnormalized 2D discrete Fourier transform to a,
// rows then columns, using Gonum's complex FFT. A forward pass followed by
// an inverse pass multiplies every sample by len(rows)*len(cols); callers
// divide that back out.
func fft2InPlace(a [][]complex128, forward bool) {
	h := len(a)
	w := len(a[0])

	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	tmp := make([]complex128, w)
	for y := 0; y < h; y++ {
		copy(tmp, a[y])
		if forward {
			rowFFT.Coefficients(tmp, tmp)
		} else {
			rowFFT.Sequence(tmp, tmp)
		}
		copy(a[y], tmp)
	}

	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y][x]
		}
		if forward {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := 0; y < h; y++ {
			a[y][x] = col[y]
		}
	}
}

// freqAxis returns the n spatial-frequency samples matching the transform's
// native zero-frequency-first layout: 0, 1, ..., up to the Nyquist frequency
// 1/(2*delta), then the negative frequencies. This is the fftshifted form of
// n samples spanning [-1/(2*delta), 1/(2*delta)).
func freqAxis(n int, delta float64) []float64 {
	axis := make([]float64, n)
	scale := 1.0 / (float64(n) * delta)
	for i := 0; i < n; i++ {
		if i < (n+1)/2 {
			axis[i] = float64(i) * scale
		} else {
			axis[i] = float64(i-n) * scale
		}
	}
	return axis
}

// rectDims validates that m is a non-empty rectangular matrix and returns
// its dimensions.
func rectDims(m [][]float64) (h, w int, err error) {
	h = len(m)
	if h == 0 || len(m[0]) == 0 {
		return 0, 0, errors.New("wavefront: empty matrix")
	}
	w = len(m[0])
	for i := 1; i < h; i++ {
		if len(m[i]) != w {
			return 0, 0, errors.New("wavefront: ragged matrix")
		}
	}
	return h, w, nil
}

// rectDimsComplex is rectDims for complex matrices.
func rectDimsComplex(m [][]complex128) (h, w int, err error) {
	h = len(m)
	if h == 0 || len(m[0]) == 0 {
		return 0, 0, errors.New("wavefront: empty matrix")
	}
	w = len(m[0])
	for i := 1; i < h; i++ {
		if len(m[i]) != w {
			return 0, 0, errors.New("wavefront: ragged matrix")
		}
	}
	return h, w, nil
}
