package wavefront

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Area describes the discretized sampling plane: a square-pixel grid of
// physical coordinates centered on the optical axis.
type Area struct {
	pixelSize float64 // meters per pixel
	yGrid     [][]float64
	xGrid     [][]float64
}

// NewArea builds a heightPx by widthPx coordinate grid with the given pixel
// pitch in meters. Coordinates run from -n/2*pixelSize to (n/2-1)*pixelSize
// along each axis, so the origin lands on a grid sample for even dimensions.
func NewArea(heightPx, widthPx int, pixelSize float64) (*Area, error) {
	if heightPx < 2 || widthPx < 2 {
		return nil, fmt.Errorf("wavefront: grid must be at least 2x2, got %dx%d", heightPx, widthPx)
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("wavefront: pixel size must be positive, got %g", pixelSize)
	}

	xAxis := make([]float64, widthPx)
	yAxis := make([]float64, heightPx)
	floats.Span(xAxis, -float64(widthPx)/2*pixelSize, (float64(widthPx)/2-1)*pixelSize)
	floats.Span(yAxis, -float64(heightPx)/2*pixelSize, (float64(heightPx)/2-1)*pixelSize)

	yGrid := make([][]float64, heightPx)
	xGrid := make([][]float64, heightPx)
	for i := 0; i < heightPx; i++ {
		yGrid[i] = make([]float64, widthPx)
		xGrid[i] = make([]float64, widthPx)
		for j := 0; j < widthPx; j++ {
			yGrid[i][j] = yAxis[i]
			xGrid[i][j] = xAxis[j]
		}
	}

	return &Area{pixelSize: pixelSize, yGrid: yGrid, xGrid: xGrid}, nil
}

// PixelSize returns the grid pitch in meters per pixel.
func (a *Area) PixelSize() float64 { return a.pixelSize }

// CoordinateGrid returns the y and x coordinate matrices in meters.
func (a *Area) CoordinateGrid() (yGrid, xGrid [][]float64) { return a.yGrid, a.xGrid }

// Dims returns the grid dimensions in pixels.
func (a *Area) Dims() (heightPx, widthPx int) {
	return len(a.yGrid), len(a.yGrid[0])
}
