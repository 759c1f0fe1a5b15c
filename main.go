package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/megamott/TIE/wavefront"
)

// !!!!! This MUST match the app name given in the run configuration !!!!!
const version = "1_0_0"

// !!!!! This MUST match the app name given in the run configuration !!!!!

func main() {

	programStart := time.Now()

	// We supply an ID (hopefully unique) because we may need to use the preferences API
	myApp := app.NewWithID("com.github.megamott.tie")
	w := myApp.NewWindow("TIE - wavefront curvature measurement")
	w.Resize(fyne.Size{Height: 800, Width: 800})

	args := os.Args

	if len(args) != 2 {
		fmt.Println("\n\tWrong number of arguments.\n\tUsage: TIE <scenario-file>")
		os.Exit(1)
	}

	path := args[1]

	// Read the Json5 (or Json) scenario file
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tAttempt to read input file %q failed: %w\n", path, err))
		os.Exit(2)
	}

	jsonTable, err := parseScenarioTable(data)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tFormat error in file %q: %w\n", path, err))
		os.Exit(3)
	}

	var scn MeasurementScenario
	msg, ok := validateScenarioFileAndFill(jsonTable, &scn)
	if !ok {
		fmt.Println(msg)
		os.Exit(4)
	}

	// Check for user wanting printout of the complete scenario file
	if scn.ShowInput {
		fmt.Printf("%s", "\nPrintout of complete scenario file contents...\n")
		fmt.Println(string(data))
	}

	// Sanity check on the sampling grid
	if scn.GridWidthPoints < 16 {
		fmt.Println(fmt.Errorf("\n\tThe sampling grid must be at least 16 points wide."))
		os.Exit(5)
	}

	Npts := scn.GridWidthPoints // Just a shorthand version

	fmt.Printf("\nVersion %s\n\n", version)

	pixelSizeM := scn.PixelSizeUm * 1e-6
	wavelengthM := scn.WavelengthNm * 1e-9

	// Sampling diagnostics
	windowMm := wavefront.MToMm(float64(Npts) * pixelSizeM)
	fmt.Printf("Sampling window is %0.3f mm wide at %0.2f um/pixel\n", windowMm, scn.PixelSizeUm)
	evanescentMargin := wavelengthM / (2 * pixelSizeM)
	fmt.Printf("Normalized frequency at Nyquist is %0.4f  (The whole sampled band propagates while this stays below 1)\n\n", evanescentMargin)

	area, err := wavefront.NewArea(Npts, Npts, pixelSizeM)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBuilding the sampling grid failed: %w", err))
		os.Exit(6)
	}

	wave, err := wavefront.NewSphericalWave(area, scn.FocalLengthM, scn.GaussianWidthPx, wavelengthM, scn.StartDistanceM)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBuilding the wave failed: %w", err))
		os.Exit(7)
	}

	if scn.PropagationDistanceMm > 0 {
		start := time.Now()
		err = wave.Propagate(scn.PropagationDistanceMm*1e-3, wavefront.AngularSpectrum)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tPropagation failed: %w", err))
			os.Exit(8)
		}
		fmt.Printf("Angular-spectrum propagation over %0.3f mm took %s\n", scn.PropagationDistanceMm, time.Since(start))
	}
	fmt.Printf("Wave is %0.3f mm from its origin\n", wavefront.MToMm(wave.Distance()))

	aperture, err := wavefront.NewCircularAperture(area, scn.ApertureDiameterMm*1e-3)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tBuilding the aperture failed: %w", err))
		os.Exit(9)
	}

	adapted, err := aperture.Adapt(wave)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tAperture adaptation failed: %w", err))
		os.Exit(10)
	}
	if adapted.Diameter() < aperture.Diameter() {
		fmt.Printf("Aperture adapted from %0.3f mm down to %0.3f mm to keep the phase unwrappable\n",
			scn.ApertureDiameterMm, wavefront.MToMm(adapted.Diameter()))
	}

	start := time.Now()
	unwrapped, err := wave.UnwrappedPhase(adapted)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tPhase unwrapping failed: %w", err))
		os.Exit(11)
	}
	fmt.Printf("Phase unwrapping took %s\n", time.Since(start))

	radiusMm, err := wave.WavefrontRadius(aperture)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tRadius reconstruction failed: %w", err))
		os.Exit(12)
	}
	fmt.Printf("\nReconstructed wavefront radius of curvature: %0.3f mm\n\n", radiusMm)

	// Make a user-friendly .png of the intensity distribution
	imgForDisplay, err := MatrixToGrayViewPercentile(wave.Intensity(), 0.0, 100)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of the display image failed: %w", err))
		os.Exit(13)
	}

	err = SaveGrayPNG("wavefrontIntensity8bit.png", imgForDisplay)
	if err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "wavefrontIntensity8bit.png", err))
		os.Exit(14)
	}

	// Make the scientific (well-defined scaling) version of the intensity matrix
	intensityImage, err := MatrixToGray16Data(wave.Intensity(), 40000)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of intensityImage failed: %w", err))
		os.Exit(15)
	}

	err = SaveGray16PNG("wavefrontIntensity16bit.png", intensityImage)
	if err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "wavefrontIntensity16bit.png", err))
		os.Exit(16)
	}

	// And a view of the unwrapped phase inside the measurement aperture
	phaseForDisplay, err := MatrixToGrayViewPercentile(unwrapped, 0.0, 100)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of the phase image failed: %w", err))
		os.Exit(17)
	}

	err = SaveGrayPNG("wavefrontPhase8bit.png", phaseForDisplay)
	if err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "wavefrontPhase8bit.png", err))
		os.Exit(18)
	}

	fmt.Printf("Total program run time is %s\n", time.Since(programStart))

	if scn.WindowSizePixels > 0 { // We have displays to make!
		size := scn.WindowSizePixels

		winTitle := scn.Title
		if winTitle == "" {
			winTitle = "Wavefront intensity"
		}

		// w is our main window, created at the beginning of the program
		w.SetTitle(winTitle)
		w.SetPadded(false)
		w.CenterOnScreen()

		img := canvas.NewImageFromFile("wavefrontIntensity8bit.png")
		img.FillMode = canvas.ImageFillContain
		w.Resize(fyne.Size{Height: float32(size), Width: float32(size)})
		w.SetContent(container.NewStack(img))
		w.Show()

		phaseImg := canvas.NewImageFromFile("wavefrontPhase8bit.png")
		phaseImg.FillMode = canvas.ImageFillContain

		w2 := myApp.NewWindow("Unwrapped phase (aperture limited)")
		w2.SetPadded(false)
		w2.Resize(fyne.Size{Height: float32(size), Width: float32(size)})
		w2.SetContent(container.NewStack(phaseImg))
		w2.Show()

		profileImg, err := makeProfilePlotImage(wave, unwrapped, 1200, 500)
		if err != nil {
			panic(err)
		}
		plotImg := canvas.NewImageFromImage(profileImg)
		plotImg.FillMode = canvas.ImageFillContain
		plotImg.SetMinSize(fyne.NewSize(1200, 500))

		w3 := myApp.NewWindow("Wavefront cross-section")
		w3.SetContent(container.NewCenter(plotImg))
		w3.Resize(fyne.NewSize(950, 550))
		w3.Show()

		w.ShowAndRun()
	}
}
