package wavefront

import (
	"math"
	"testing"
)

func TestNewCircularAperture(t *testing.T) {
	area := mustArea(t, 64)
	ap, err := NewCircularAperture(area, 200e-6)
	if err != nil {
		t.Fatalf("NewCircularAperture: %v", err)
	}
	if ap.Diameter() != 200e-6 {
		t.Errorf("Diameter = %g, want 200e-6", ap.Diameter())
	}

	mask := ap.Mask()
	if mask[32][32] != 1 {
		t.Error("center pixel should be open")
	}
	if mask[0][0] != 0 {
		t.Error("corner pixel should be closed")
	}
	// 200 um diameter on a 5 um pitch opens a 20 px radius disk.
	if mask[32][32+20] != 1 {
		t.Error("boundary pixel at 20 px should be open")
	}
	if mask[32][32+21] != 0 {
		t.Error("pixel at 21 px should be closed")
	}
}

func TestNewCircularAperture_Validation(t *testing.T) {
	area := mustArea(t, 64)
	if _, err := NewCircularAperture(nil, 200e-6); err == nil {
		t.Error("expected error for nil area")
	}
	if _, err := NewCircularAperture(area, 0); err == nil {
		t.Error("expected error for zero diameter")
	}
}

func TestAdapt_KeepsWellSampledAperture(t *testing.T) {
	// At f = 0.5 m the steepest per-pixel phase step inside a 1 mm
	// aperture is far below pi, so adaptation must not shrink the mask
	// meaningfully (the diameter may snap to the pixel lattice).
	area := mustArea(t, 256)
	w := mustWave(t, area, 0.5, 50)

	ap, err := NewCircularAperture(area, 1e-3)
	if err != nil {
		t.Fatalf("NewCircularAperture: %v", err)
	}
	adapted, err := ap.Adapt(w)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if adapted.Diameter() < 0.98e-3 || adapted.Diameter() > 1e-3 {
		t.Errorf("adapted diameter = %g, want about 1e-3", adapted.Diameter())
	}
	// The receiver must be left untouched.
	if ap.Diameter() != 1e-3 {
		t.Errorf("Adapt mutated the receiver: diameter = %g", ap.Diameter())
	}
}

func TestAdapt_ShrinksUndersampledAperture(t *testing.T) {
	// At f = 10 mm the phase of the spherical wavefront steepens past the
	// sampling limit inside a 1.25 mm aperture; adaptation must shrink the
	// clear aperture to the region it can still unwrap.
	area := mustArea(t, 256)
	w := mustWave(t, area, 0.01, 50)

	ap, err := NewCircularAperture(area, 1.25e-3)
	if err != nil {
		t.Fatalf("NewCircularAperture: %v", err)
	}
	adapted, err := ap.Adapt(w)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if adapted.Diameter() >= ap.Diameter() {
		t.Errorf("adapted diameter = %g, want smaller than %g", adapted.Diameter(), ap.Diameter())
	}
	if adapted.openCount() == 0 {
		t.Error("adapted aperture is empty")
	}

	// The retained region must be adequately sampled: inside the adapted
	// mask, adjacent wrapped phase steps stay below the sampling limit.
	phase := w.Phase()
	mask := adapted.Mask()
	for i := range mask {
		for j := 1; j < len(mask[i]); j++ {
			if mask[i][j] == 0 || mask[i][j-1] == 0 {
				continue
			}
			if step := math.Abs(wrapToPi(phase[i][j] - phase[i][j-1])); step >= math.Pi {
				t.Fatalf("aliased phase step %g inside adapted aperture at (%d,%d)", step, i, j)
			}
		}
	}
}
