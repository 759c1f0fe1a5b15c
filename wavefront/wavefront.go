// Package wavefront models a coherent optical wavefront with spherical
// aberration, propagates it through free space with the angular-spectrum
// method, and reconstructs its radius of curvature from the unwrapped phase.
//
// A Wave is built from an Area (the sampling grid), a focal length that sets
// the initial spherical curvature, a Gaussian width parameter that shapes the
// amplitude envelope, and a wavelength. Propagate advances it along the
// optical axis; WavefrontRadius inverts the aperture-limited unwrapped phase
// into a radius of curvature through the spherical-cap relation.
package wavefront

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Sentinel errors returned by wave, phase, and radius operations.
var (
	// ErrUnknownMethod is returned by Propagate for a method selector that
	// has no registered propagation algorithm.
	ErrUnknownMethod = errors.New("wavefront: unknown propagation method")

	// ErrEmptyAperture is returned when an aperture mask contains no open
	// pixels, which leaves phase unwrapping undefined.
	ErrEmptyAperture = errors.New("wavefront: aperture mask is empty")

	// ErrShapeMismatch is returned when a field, mask, or grid does not
	// match the shape of the wave's sampling area.
	ErrShapeMismatch = errors.New("wavefront: shape does not match sampling grid")
)

// Wave is a scalar coherent field sampled on a 2D grid, together with the
// physical parameters of the scenario that produced it.
//
// Phase and intensity are computed from the field at construction time and
// again after every propagation step. The SetPhase and SetIntensity methods
// store explicit overrides; an override persists until the next Propagate
// call recomputes both quantities from the field.
type Wave struct {
	area            *Area
	field           [][]complex128
	phase           [][]float64
	intensity       [][]float64
	wavelength      float64 // meters
	focalLen        float64 // meters
	gaussianWidthPx float64 // 1/e^2 intensity full width, in pixels
	distance        float64 // cumulative propagation distance, meters
}

// NewSphericalWave builds the field of a spherical wavefront converging
// toward (or diverging from) a focal point at axial distance focalLen,
// amplitude-shaped by a Gaussian envelope whose 1/e^2 intensity full width
// is gaussianWidthPx pixels.
//
// wavelength and gaussianWidthPx must be positive and distance non-negative.
func NewSphericalWave(area *Area, focalLen, gaussianWidthPx, wavelength, distance float64) (*Wave, error) {
	if area == nil {
		return nil, errors.New("wavefront: nil area")
	}
	if wavelength <= 0 {
		return nil, fmt.Errorf("wavefront: wavelength must be positive, got %g", wavelength)
	}
	if gaussianWidthPx <= 0 {
		return nil, fmt.Errorf("wavefront: gaussian width must be positive, got %g", gaussianWidthPx)
	}
	if distance < 0 {
		return nil, fmt.Errorf("wavefront: distance must be non-negative, got %g", distance)
	}

	yGrid, xGrid := area.CoordinateGrid()

	// The envelope width parameter is a sigma in meters. Dividing the 1/e^2
	// full width by 4 makes the Gaussian, read as an intensity, fall to
	// 1/e^2 of its peak at a radius of half the configured width.
	sigma := PxToM(gaussianWidthPx, area.PixelSize()) / 4.0
	intensity := Gauss2D(xGrid, yGrid, sigma, sigma)

	k := 2 * math.Pi / wavelength

	h, w := area.Dims()
	field := make([][]complex128, h)
	for i := 0; i < h; i++ {
		field[i] = make([]complex128, w)
		for j := 0; j < w; j++ {
			x := xGrid[i][j]
			y := yGrid[i][j]
			// Distance from a point source on the axis at focalLen.
			r := math.Sqrt(x*x + y*y + focalLen*focalLen)
			field[i][j] = complex(math.Sqrt(intensity[i][j]), 0) * cmplx.Exp(complex(0, -k*r))
		}
	}

	wave := &Wave{
		area:            area,
		field:           field,
		intensity:       intensity,
		wavelength:      wavelength,
		focalLen:        focalLen,
		gaussianWidthPx: gaussianWidthPx,
		distance:        distance,
	}
	wave.phase = anglesOf(field)
	return wave, nil
}

// refreshDerived recomputes cached phase and intensity from the field,
// discarding any explicit overrides.
func (w *Wave) refreshDerived() {
	w.phase = anglesOf(w.field)
	w.intensity = intensitiesOf(w.field)
}

// Field returns the complex field at the current propagation plane.
func (w *Wave) Field() [][]complex128 { return w.field }

// SetField replaces the field and recomputes phase and intensity from it.
// The replacement must match the sampling grid's shape.
func (w *Wave) SetField(field [][]complex128) error {
	h, ww, err := rectDimsComplex(field)
	if err != nil {
		return err
	}
	ah, aw := w.area.Dims()
	if h != ah || ww != aw {
		return fmt.Errorf("%w: field is %dx%d, grid is %dx%d", ErrShapeMismatch, h, ww, ah, aw)
	}
	w.field = field
	w.refreshDerived()
	return nil
}

// Area returns the sampling grid descriptor.
func (w *Wave) Area() *Area { return w.area }

// SetArea replaces the sampling grid descriptor. The grid must match the
// current field's shape.
func (w *Wave) SetArea(area *Area) error {
	if area == nil {
		return errors.New("wavefront: nil area")
	}
	h, ww := area.Dims()
	if h != len(w.field) || (h > 0 && ww != len(w.field[0])) {
		return fmt.Errorf("%w: grid is %dx%d, field is %dx%d", ErrShapeMismatch, h, ww, len(w.field), len(w.field[0]))
	}
	w.area = area
	return nil
}

// Phase returns the cached wrapped phase in (-pi, pi].
func (w *Wave) Phase() [][]float64 { return w.phase }

// SetPhase stores an explicit phase override. The override is discarded by
// the next Propagate or SetField call.
func (w *Wave) SetPhase(phase [][]float64) { w.phase = phase }

// Intensity returns the cached intensity |field|^2.
func (w *Wave) Intensity() [][]float64 { return w.intensity }

// SetIntensity stores an explicit intensity override. The override is
// discarded by the next Propagate or SetField call.
func (w *Wave) SetIntensity(intensity [][]float64) { w.intensity = intensity }

// Wavelength returns the wavelength in meters.
func (w *Wave) Wavelength() float64 { return w.wavelength }

// SetWavelength replaces the wavelength. It must be positive.
func (w *Wave) SetWavelength(wavelength float64) error {
	if wavelength <= 0 {
		return fmt.Errorf("wavefront: wavelength must be positive, got %g", wavelength)
	}
	w.wavelength = wavelength
	return nil
}

// FocalLen returns the focal length in meters.
func (w *Wave) FocalLen() float64 { return w.focalLen }

// SetFocalLen replaces the focal length.
func (w *Wave) SetFocalLen(focalLen float64) { w.focalLen = focalLen }

// GaussianWidthPx returns the envelope's 1/e^2 intensity full width in pixels.
func (w *Wave) GaussianWidthPx() float64 { return w.gaussianWidthPx }

// SetGaussianWidthPx replaces the envelope width parameter.
func (w *Wave) SetGaussianWidthPx(widthPx float64) { w.gaussianWidthPx = widthPx }

// Distance returns the cumulative propagation distance in meters. It is
// advanced only by Propagate.
func (w *Wave) Distance() float64 { return w.distance }

// anglesOf returns angle(field) for every sample, wrapped to (-pi, pi].
func anglesOf(field [][]complex128) [][]float64 {
	out := make([][]float64, len(field))
	for i := range field {
		out[i] = make([]float64, len(field[i]))
		for j := range field[i] {
			out[i][j] = cmplx.Phase(field[i][j])
		}
	}
	return out
}

// intensitiesOf returns |field|^2 for every sample.
func intensitiesOf(field [][]complex128) [][]float64 {
	out := make([][]float64, len(field))
	for i := range field {
		out[i] = make([]float64, len(field[i]))
		for j := range field[i] {
			re := real(field[i][j])
			im := imag(field[i][j])
			out[i][j] = re*re + im*im
		}
	}
	return out
}
