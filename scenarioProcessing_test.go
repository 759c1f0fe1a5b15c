package main

import (
	"os"
	"testing"
)

func TestSampleScenarioValidates(t *testing.T) {
	data, err := os.ReadFile("sampleScenario.json5")
	if err != nil {
		t.Fatal(err)
	}
	jsonTable, err := parseScenarioTable(data)
	if err != nil {
		t.Fatal(err)
	}
	var scn MeasurementScenario
	msg, ok := validateScenarioFileAndFill(jsonTable, &scn)
	if !ok {
		t.Fatalf("validation failed: %s", msg)
	}
	if scn.GridWidthPoints != 512 {
		t.Errorf("grid_width_points: got %d, want 512", scn.GridWidthPoints)
	}
	if scn.PixelSizeUm != 5.0 {
		t.Errorf("pixel_size_um: got %g, want 5.0", scn.PixelSizeUm)
	}
	if scn.ApertureDiameterMm != 1.0 {
		t.Errorf("aperture_diameter_mm: got %g, want 1.0", scn.ApertureDiameterMm)
	}
	if scn.WindowSizePixels != 600 {
		t.Errorf("window_size_pixels: got %d, want 600", scn.WindowSizePixels)
	}
}

func TestScenarioDefaultsAndMissingFields(t *testing.T) {
	minimal := []byte(`{
		grid_width_points: 64,
		pixel_size_um: 5.0,
		wavelength_nm: 650.0,
		focal_length_m: 0.1,
		gaussian_width_px: 32,
		aperture_diameter_mm: 0.2,
	}`)
	jsonTable, err := parseScenarioTable(minimal)
	if err != nil {
		t.Fatal(err)
	}
	var scn MeasurementScenario
	msg, ok := validateScenarioFileAndFill(jsonTable, &scn)
	if !ok {
		t.Fatalf("validation failed: %s", msg)
	}
	if scn.WindowSizePixels != 500 {
		t.Errorf("window_size_pixels default: got %d, want 500", scn.WindowSizePixels)
	}
	if scn.ShowInput {
		t.Error("show_input_bool should default to false")
	}
	if scn.StartDistanceM != 0 || scn.PropagationDistanceMm != 0 {
		t.Error("distances should default to 0")
	}

	broken := []byte(`{ grid_width_points: 64 }`)
	jsonTable, err = parseScenarioTable(broken)
	if err != nil {
		t.Fatal(err)
	}
	msg, ok = validateScenarioFileAndFill(jsonTable, &scn)
	if ok {
		t.Fatal("validation should reject a scenario with missing required fields")
	}
	if msg != "pixel_size_um: not found" {
		t.Errorf("unexpected message: %s", msg)
	}
}
