package wavefront

import (
	"math"
	"testing"
)

// wrapMatrix wraps every sample of a smooth phase field into (-pi, pi].
func wrapMatrix(phase [][]float64) [][]float64 {
	out := make([][]float64, len(phase))
	for i := range phase {
		out[i] = make([]float64, len(phase[i]))
		for j := range phase[i] {
			out[i][j] = wrapToPi(phase[i][j])
		}
	}
	return out
}

func TestUnwrap_ParaboloidRoundTrip(t *testing.T) {
	// Smooth paraboloid spanning several 2*pi cycles, with per-pixel steps
	// well below pi so unwrapping is well posed.
	n := 64
	orig := make([][]float64, n)
	for i := 0; i < n; i++ {
		orig[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			di := float64(i - n/2)
			dj := float64(j - n/2)
			orig[i][j] = 0.01 * (di*di + dj*dj)
		}
	}

	unwrapped, err := unwrapPhase(wrapMatrix(orig))
	if err != nil {
		t.Fatalf("unwrapPhase: %v", err)
	}

	// The result may carry a global 2*pi*k offset; relative structure must
	// match the original exactly.
	offset := unwrapped[0][0] - orig[0][0]
	if r := math.Mod(offset, 2*math.Pi); math.Abs(r) > 1e-9 && math.Abs(math.Abs(r)-2*math.Pi) > 1e-9 {
		t.Fatalf("global offset %g is not a 2*pi multiple", offset)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := math.Abs((unwrapped[i][j] - orig[i][j]) - offset); d > 1e-9 {
				t.Fatalf("unwrapped[%d][%d] off by %g after removing global offset", i, j, d)
			}
		}
	}

	// And the wrap of the unwrap reproduces the wrapped input pointwise.
	rewrapped := wrapMatrix(unwrapped)
	wrapped := wrapMatrix(orig)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := math.Abs(wrapToPi(rewrapped[i][j] - wrapped[i][j])); d > 1e-9 {
				t.Fatalf("wrap(unwrap) differs from wrap at (%d,%d) by %g", i, j, d)
			}
		}
	}
}

func TestUnwrap_TiltRamp(t *testing.T) {
	// A linear tilt of 0.5 rad per pixel wraps every ~12 pixels; the
	// unwrapped result must restore a constant gradient.
	n := 48
	wrapped := make([][]float64, n)
	for i := 0; i < n; i++ {
		wrapped[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			wrapped[i][j] = wrapToPi(0.5 * float64(j))
		}
	}

	unwrapped, err := unwrapPhase(wrapped)
	if err != nil {
		t.Fatalf("unwrapPhase: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 1; j < n; j++ {
			step := unwrapped[i][j] - unwrapped[i][j-1]
			if math.Abs(step-0.5) > 1e-9 {
				t.Fatalf("gradient at (%d,%d) = %g, want 0.5", i, j, step)
			}
		}
	}
}

func TestUnwrap_RejectsBadInput(t *testing.T) {
	if _, err := unwrapPhase(nil); err == nil {
		t.Error("expected error for nil matrix")
	}
	if _, err := unwrapPhase([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged matrix")
	}
}

func TestWrapToPi_Range(t *testing.T) {
	for _, x := range []float64{-25, -math.Pi, -0.5, 0, 0.5, math.Pi, 7, 40} {
		got := wrapToPi(x)
		if got <= -math.Pi-1e-12 || got > math.Pi+1e-12 {
			t.Errorf("wrapToPi(%g) = %g, outside (-pi, pi]", x, got)
		}
		if d := math.Abs(math.Sin(got) - math.Sin(x)); d > 1e-12 {
			t.Errorf("wrapToPi(%g) changed the angle: sin differs by %g", x, d)
		}
	}
}
