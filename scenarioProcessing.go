package main

import json "github.com/KevinWang15/go-json5"

// MeasurementScenario holds the validated contents of a JSON5 scenario file:
// the sampling grid, the physical parameters of the simulated wavefront, and
// the measurement aperture.
type MeasurementScenario struct {
	Title                 string
	ShowInput             bool
	WindowSizePixels      int
	GridWidthPoints       int
	PixelSizeUm           float64
	FocalLengthM          float64
	GaussianWidthPx       float64
	WavelengthNm          float64
	StartDistanceM        float64
	PropagationDistanceMm float64
	ApertureDiameterMm    float64
}

func parseScenarioTable(data []byte) (map[string]interface{}, error) {
	var jsonTable map[string]interface{}
	err := json.Unmarshal(data, &jsonTable)
	return jsonTable, err
}

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func validateScenarioFileAndFill(jsonTable map[string]interface{}, scn *MeasurementScenario) (string, bool) {
	msg := "No problem found in json file" // Initialize msg to presumed success.

	showInput, ok := getLeafValue(jsonTable, "show_input_bool")
	if !ok {
		scn.ShowInput = false // default to false if this field is missing
	} else {
		scn.ShowInput, ok = showInput.(bool)
		if !ok {
			msg = "show_input_bool: is not a bool"
			return msg, false
		}
	}

	windowSize, ok := getLeafValue(jsonTable, "window_size_pixels")
	if !ok {
		scn.WindowSizePixels = 500 // Default to 500 pixels if this field is missing
	} else {
		wSize, ok := windowSize.(float64)
		if !ok {
			msg = "window_size_pixels: is not a float64"
			return msg, false
		}
		scn.WindowSizePixels = int(wSize)
	}

	title, ok := getLeafValue(jsonTable, "title")
	if ok {
		scn.Title, ok = title.(string)
		if !ok {
			msg = "title: is not a string"
			return msg, false
		}
	}

	gridPts, ok := getLeafValue(jsonTable, "grid_width_points")
	if !ok {
		msg = "grid_width_points: not found"
		return msg, false
	}
	numberOfPoints, ok := gridPts.(float64)
	if !ok {
		msg = "grid_width_points: is not a float64"
		return msg, false
	}
	scn.GridWidthPoints = int(numberOfPoints)

	pixelSize, ok := getLeafValue(jsonTable, "pixel_size_um")
	if !ok {
		msg = "pixel_size_um: not found"
		return msg, false
	}
	scn.PixelSizeUm, ok = pixelSize.(float64)
	if !ok {
		msg = "pixel_size_um: is not a float64"
		return msg, false
	}

	focalLen, ok := getLeafValue(jsonTable, "focal_length_m")
	if !ok {
		msg = "focal_length_m: not found"
		return msg, false
	}
	scn.FocalLengthM, ok = focalLen.(float64)
	if !ok {
		msg = "focal_length_m: is not a float64"
		return msg, false
	}

	gaussWidth, ok := getLeafValue(jsonTable, "gaussian_width_px")
	if !ok {
		msg = "gaussian_width_px: not found"
		return msg, false
	}
	scn.GaussianWidthPx, ok = gaussWidth.(float64)
	if !ok {
		msg = "gaussian_width_px: is not a float64"
		return msg, false
	}

	wavelength, ok := getLeafValue(jsonTable, "wavelength_nm")
	if !ok {
		msg = "wavelength_nm: not found"
		return msg, false
	}
	scn.WavelengthNm, ok = wavelength.(float64)
	if !ok {
		msg = "wavelength_nm: is not a float64"
		return msg, false
	}

	startDistance, ok := getLeafValue(jsonTable, "start_distance_m")
	if ok { // We allow this field to be missing - if missing, it defaults to 0
		scn.StartDistanceM, ok = startDistance.(float64)
		if !ok {
			msg = "start_distance_m: is not a float64"
			return msg, false
		}
	}

	propDistance, ok := getLeafValue(jsonTable, "propagation_distance_mm")
	if ok { // Optional - with no value given, the wave is measured where it starts
		scn.PropagationDistanceMm, ok = propDistance.(float64)
		if !ok {
			msg = "propagation_distance_mm: is not a float64"
			return msg, false
		}
	}

	apDiameter, ok := getLeafValue(jsonTable, "aperture_diameter_mm")
	if !ok {
		msg = "aperture_diameter_mm: not found"
		return msg, false
	}
	scn.ApertureDiameterMm, ok = apDiameter.(float64)
	if !ok {
		msg = "aperture_diameter_mm: is not a float64"
		return msg, false
	}

	return msg, true
}
