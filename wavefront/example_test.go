package wavefront_test

import (
	"fmt"
	"log"

	"github.com/megamott/TIE/wavefront"
)

// Example simulates a converging spherical wavefront, reconstructs its
// radius of curvature across a 1 mm aperture, and then advances the field
// 1 mm along the optical axis.
func Example() {
	// 256x256 samples on a 5 um pitch.
	area, err := wavefront.NewArea(256, 256, 5e-6)
	if err != nil {
		log.Fatalf("building sampling grid: %v", err)
	}

	// A wave focused 100 mm downstream, 650 nm, 50 px Gaussian envelope.
	wave, err := wavefront.NewSphericalWave(area, 0.1, 50, 650e-9, 0)
	if err != nil {
		log.Fatalf("building wave: %v", err)
	}

	aperture, err := wavefront.NewCircularAperture(area, 1e-3)
	if err != nil {
		log.Fatalf("building aperture: %v", err)
	}

	radiusMm, err := wave.WavefrontRadius(aperture)
	if err != nil {
		log.Fatalf("reconstructing radius: %v", err)
	}
	fmt.Printf("radius of curvature: %.0f mm\n", radiusMm)

	if err := wave.Propagate(1e-3, wavefront.AngularSpectrum); err != nil {
		log.Fatalf("propagating: %v", err)
	}
	fmt.Printf("distance traveled: %.1f mm\n", wavefront.MToMm(wave.Distance()))

	// Output:
	// radius of curvature: 100 mm
	// distance traveled: 1.0 mm
}
