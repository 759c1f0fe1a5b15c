package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"

	// Liberation fonts register automatically on import
	_ "gonum.org/v1/plot/font/liberation"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/megamott/TIE/wavefront"
)

// makeProfilePlotImage plots the intensity and the unwrapped wavefront sag
// along the horizontal axis through the optical axis. Intensity is
// normalized to its peak; the sag is shown in waves so both fit one scale.
func makeProfilePlotImage(wave *wavefront.Wave, unwrapped [][]float64, wPx, hPx float64) (image.Image, error) {
	intensity := wave.Intensity()
	h := len(intensity)
	w := len(intensity[0])
	centerRow := float64(h / 2)

	pitchMm := wavefront.MToMm(wave.Area().PixelSize())

	p := plot.New()

	// Modify the font fields directly on existing styles
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	p.Title.Text = "Cross-section through the optical axis"
	p.X.Label.Text = "position (mm)"
	p.Y.Label.Text = "normalized intensity / wavefront sag (waves)"

	widthMm := float64(w) * pitchMm
	p.X.Tick.Marker = StepTicks{Step: widthMm / 10, Format: "%.2f"}
	p.Y.Tick.Marker = StepTicks{Step: 0.2, Format: "%.2f"}
	p.Add(plotter.NewGrid()) // grid + ticks

	peak := 0.0
	for x := 0; x < w; x++ {
		if v := interpolate(intensity, float64(x), centerRow); v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	intensityPts := make(plotter.XYs, w)
	for x := 0; x < w; x++ {
		intensityPts[x].X = (float64(x) - float64(w)/2) * pitchMm
		intensityPts[x].Y = interpolate(intensity, float64(x), centerRow) / peak
	}

	intensityLine, err := plotter.NewLine(intensityPts)
	if err != nil {
		return nil, err
	}
	intensityLine.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255} // blue
	p.Add(intensityLine)
	p.Legend.Add("intensity", intensityLine)

	// Show sag relative to the profile's own minimum so the curve sits
	// near the intensity trace regardless of the unwrapper's 2*pi offset.
	sagMin := math.Inf(1)
	for x := 0; x < w; x++ {
		if v := interpolate(unwrapped, float64(x), centerRow); v < sagMin {
			sagMin = v
		}
	}
	sagPts := make(plotter.XYs, w)
	for x := 0; x < w; x++ {
		sagPts[x].X = (float64(x) - float64(w)/2) * pitchMm
		sagPts[x].Y = (interpolate(unwrapped, float64(x), centerRow) - sagMin) / (2 * math.Pi)
	}

	sagLine, err := plotter.NewLine(sagPts)
	if err != nil {
		return nil, err
	}
	sagLine.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255} // red
	sagLine.Dashes = []vg.Length{
		vg.Points(6), // dash length
		vg.Points(4), // gap length
	}
	p.Add(sagLine)
	p.Legend.Add("wavefront sag", sagLine)

	// Render into an in-memory image
	// Choose a "virtual" size in vg units and map to pixels via DPI.
	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi

	c := vgimg.New(width, height)
	dc := draw.New(c)
	p.Draw(dc)

	return c.Image(), nil
}

type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf(t.Format, v),
		})
	}
	return ticks
}
