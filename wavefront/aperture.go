package wavefront

import (
	"fmt"
	"math"
)

// Aperture is a binary mask restricting phase analysis to the region where
// unwrapping is trusted, together with the mask's physical diameter.
//
// Apertures are values passed into phase and radius queries; adaptation to a
// wave is an explicit step (Adapt) that returns a new Aperture rather than a
// hidden mutation during a query.
type Aperture struct {
	mask     [][]float64
	diameter float64 // meters
}

// NewCircularAperture builds a centered circular mask of the given physical
// diameter on the area's grid. Pixels on the boundary are open.
func NewCircularAperture(area *Area, diameter float64) (*Aperture, error) {
	if area == nil {
		return nil, fmt.Errorf("wavefront: nil area")
	}
	if diameter <= 0 {
		return nil, fmt.Errorf("wavefront: aperture diameter must be positive, got %g", diameter)
	}

	yGrid, xGrid := area.CoordinateGrid()
	radiusSq := diameter * diameter / 4

	h, w := area.Dims()
	mask := make([][]float64, h)
	open := 0
	for i := 0; i < h; i++ {
		mask[i] = make([]float64, w)
		for j := 0; j < w; j++ {
			x := xGrid[i][j]
			y := yGrid[i][j]
			if x*x+y*y <= radiusSq {
				mask[i][j] = 1
				open++
			}
		}
	}
	if open == 0 {
		return nil, fmt.Errorf("%w: diameter %g m is below the grid pitch", ErrEmptyAperture, diameter)
	}
	return &Aperture{mask: mask, diameter: diameter}, nil
}

// Mask returns the aperture mask. Entries are 1 inside the clear aperture
// and 0 outside.
func (a *Aperture) Mask() [][]float64 { return a.mask }

// Diameter returns the clear-aperture diameter in meters.
func (a *Aperture) Diameter() float64 { return a.diameter }

// openCount reports the number of open mask pixels.
func (a *Aperture) openCount() int {
	n := 0
	for i := range a.mask {
		for j := range a.mask[i] {
			if a.mask[i][j] != 0 {
				n++
			}
		}
	}
	return n
}

// adaptGradientLimit is the largest wrapped phase step between adjacent
// pixels still considered adequately sampled. Steps at or beyond pi are
// aliased outright; the margin keeps unwrapping away from that edge.
const adaptGradientLimit = 0.9 * math.Pi

// Adapt returns an aperture shrunk to the largest centered disk over which
// the wave's wrapped phase remains adequately sampled, so that subsequent
// unwrapping inside the returned aperture is well defined. The receiver is
// not modified. If the wave's phase is adequately sampled across the whole
// current aperture, the result is equivalent to the receiver.
func (a *Aperture) Adapt(w *Wave) (*Aperture, error) {
	if w == nil {
		return nil, fmt.Errorf("wavefront: nil wave")
	}
	h, wd, err := rectDims(w.Phase())
	if err != nil {
		return nil, err
	}
	if h != len(a.mask) || wd != len(a.mask[0]) {
		return nil, fmt.Errorf("%w: mask is %dx%d, phase is %dx%d",
			ErrShapeMismatch, len(a.mask), len(a.mask[0]), h, wd)
	}

	// Walk the central row outward from the optical axis and stop where the
	// wrapped phase steps become too steep to unwrap. The phase of a
	// centered spherical wavefront steepens monotonically with radius, so
	// the central row carries the worst-case gradient for a given radius.
	phase := w.Phase()
	centerRow := h / 2
	centerCol := wd / 2
	pitch := w.Area().PixelSize()

	maxRadiusPx := int(math.Floor(a.diameter / 2 / pitch))
	limitPx := maxRadiusPx
	for r := 1; r <= maxRadiusPx; r++ {
		right := centerCol + r
		left := centerCol - r
		if right >= wd || left < 0 {
			limitPx = r - 1
			break
		}
		stepR := math.Abs(wrapToPi(phase[centerRow][right] - phase[centerRow][right-1]))
		stepL := math.Abs(wrapToPi(phase[centerRow][left] - phase[centerRow][left+1]))
		if stepR >= adaptGradientLimit || stepL >= adaptGradientLimit {
			limitPx = r - 1
			break
		}
	}
	if limitPx < 1 {
		return nil, fmt.Errorf("%w: phase is undersampled at the optical axis", ErrEmptyAperture)
	}

	adaptedDiameter := math.Min(a.diameter, 2*float64(limitPx)*pitch)

	yGrid, xGrid := w.Area().CoordinateGrid()
	radiusSq := adaptedDiameter * adaptedDiameter / 4
	mask := make([][]float64, h)
	open := 0
	for i := 0; i < h; i++ {
		mask[i] = make([]float64, wd)
		for j := 0; j < wd; j++ {
			x := xGrid[i][j]
			y := yGrid[i][j]
			if a.mask[i][j] != 0 && x*x+y*y <= radiusSq {
				mask[i][j] = 1
				open++
			}
		}
	}
	if open == 0 {
		return nil, fmt.Errorf("%w: adaptation closed every pixel", ErrEmptyAperture)
	}
	return &Aperture{mask: mask, diameter: adaptedDiameter}, nil
}
