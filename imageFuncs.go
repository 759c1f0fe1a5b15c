package main

import (
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"sort"
)

// interpolate samples a matrix at fractional coordinates with bilinear
// interpolation, clamping to the matrix edges.
func interpolate(matrix [][]float64, x, y float64) float64 {
	h := len(matrix)
	if h == 0 {
		return 0
	}
	w := len(matrix[0])

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= float64(w-1) {
		x = float64(w-1) - 1e-9
	}
	if y >= float64(h-1) {
		y = float64(h-1) - 1e-9
	}

	x0 := int(x)
	y0 := int(y)
	xFrac := x - float64(x0)
	yFrac := y - float64(y0)

	v0 := matrix[y0][x0]*(1-xFrac) + matrix[y0][x0+1]*xFrac
	v1 := matrix[y0+1][x0]*(1-xFrac) + matrix[y0+1][x0+1]*xFrac
	return v0*(1-yFrac) + v1*yFrac
}

func matrixSize(m [][]float64) (h, w int, err error) {
	h = len(m)
	if h == 0 || len(m[0]) == 0 {
		return 0, 0, errors.New("empty matrix")
	}
	w = len(m[0])
	for y := 1; y < h; y++ {
		if len(m[y]) != w {
			return 0, 0, errors.New("ragged matrix")
		}
	}
	return h, w, nil
}

// MatrixToGray16Data renders a matrix as a 16-bit PNG image with a fixed
// physical scaling: Y16 = round(v * scale), clamped to [0, 65535]. This is
// the well-defined "data" rendering, suitable for downstream analysis.
func MatrixToGray16Data(m [][]float64, scale float64) (*image.Gray16, error) {
	h, w, err := matrixSize(m)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, errors.New("scale must be > 0")
	}

	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			v := m[y][x]
			i := row + 2*x
			if math.IsNaN(v) || math.IsInf(v, 0) {
				img.Pix[i], img.Pix[i+1] = 0, 0
				continue
			}
			u := math.Round(v * scale)
			if u < 0 {
				u = 0
			} else if u > 65535 {
				u = 65535
			}
			y16 := uint16(u)
			// Gray16 Pix is big-endian per pixel: high then low
			img.Pix[i] = uint8(y16 >> 8)
			img.Pix[i+1] = uint8(y16)
		}
	}
	return img, nil
}

// MatrixToGrayViewPercentile renders a matrix as an 8-bit PNG for human
// viewing using a percentile stretch: values between the pLow and pHigh
// percentiles map to 0..255 and the rest clamp, which keeps outliers from
// washing out the display.
func MatrixToGrayViewPercentile(m [][]float64, pLow, pHigh float64) (*image.Gray, error) {
	h, w, err := matrixSize(m)
	if err != nil {
		return nil, err
	}
	if !(0 <= pLow && pLow < pHigh && pHigh <= 100) {
		return nil, errors.New("percentiles must satisfy 0 <= pLow < pHigh <= 100")
	}

	vals := make([]float64, 0, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m[y][x]
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return nil, errors.New("matrix has no finite values")
	}
	sort.Float64s(vals)

	percentile := func(p float64) float64 {
		if p <= 0 {
			return vals[0]
		}
		if p >= 100 {
			return vals[len(vals)-1]
		}
		pos := (p / 100.0) * float64(len(vals)-1)
		i := int(math.Floor(pos))
		if i >= len(vals)-1 {
			return vals[len(vals)-1]
		}
		f := pos - float64(i)
		return vals[i]*(1-f) + vals[i+1]*f
	}

	lo := percentile(pLow)
	hi := percentile(pHigh)
	if hi == lo {
		hi = lo + 1 // avoid divide-by-zero; image becomes mostly constant
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			v := m[y][x]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				img.Pix[row+x] = 0
				continue
			}
			t := (v - lo) / (hi - lo)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.Pix[row+x] = uint8(math.Round(t * 255.0))
		}
	}
	return img, nil
}

func SaveGrayPNG(filename string, img *image.Gray) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func SaveGray16PNG(filename string, img *image.Gray16) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
