package wavefront

import "math"

// Gauss2D evaluates a normalized 2D Gaussian on the supplied coordinate
// grids. wx and wy are the sigma parameters in the same units as the grids;
// the peak value is 1 at the origin.
func Gauss2D(xGrid, yGrid [][]float64, wx, wy float64) [][]float64 {
	out := make([][]float64, len(xGrid))
	for i := range xGrid {
		out[i] = make([]float64, len(xGrid[i]))
		for j := range xGrid[i] {
			x := xGrid[i][j]
			y := yGrid[i][j]
			out[i][j] = math.Exp(-(x*x/(2*wx*wx) + y*y/(2*wy*wy)))
		}
	}
	return out
}
