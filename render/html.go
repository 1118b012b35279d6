package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/AnkushinDaniil/waveguide/waveguide"
)

const (
	colorE = "#0a88ff" // azure
	colorH = "#e50000" // red
)

// HTML renders the line-width heuristic of both fields as heat maps on a
// single page. The parameter table goes into the chart subtitles.
func HTML(w io.Writer, res *waveguide.Result) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Waveguide %v", res.Spec)
	page.AddCharts(
		heatMap("E field", colorE, res, res.E),
		heatMap("H field", colorH, res, res.H),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func heatMap(title, color string, res *waveguide.Result, f waveguide.Field) *charts.HeatMap {
	xName, yName := "x, m", "y, m"
	yScale := func(v float64) float64 { return v }
	if res.Grid.Polar {
		xName, yName = "θ, rad", "r, units"
		yScale = waveguide.ToDisplay
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle(res),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  strings.ReplaceAll(title, " ", "_"),
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
			},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        2,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#ffffff", color},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			Type: "category",
			Data: labels(res.Grid.Rows, yScale),
		}),
	)

	hm.SetXAxis(labels(res.Grid.Cols, func(v float64) float64 { return v })).
		AddSeries(title, heatMapData(waveguide.LineWidth(f)))
	return hm
}

func heatMapData(m *mat.Dense) []opts.HeatMapData {
	r, c := m.Dims()
	data := make([]opts.HeatMapData, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, m.At(i, j)}})
		}
	}
	return data
}

func labels(axis []float64, scale func(float64) float64) []string {
	out := make([]string, len(axis))
	for i, v := range axis {
		out[i] = fmt.Sprintf("%.3g", scale(v))
	}
	return out
}

func subtitle(res *waveguide.Result) string {
	var b strings.Builder
	for _, p := range res.Params.Params {
		fmt.Fprintf(&b, "%s = %s %s\n", p.Name, formatValue(p.Value), p.Unit)
	}
	if !res.Params.Propagating {
		fmt.Fprintf(&b, "below cutoff, attenuation %.4g Np/m\n", res.Params.Attenuation)
	}
	if res.Grid.Polar {
		fmt.Fprintf(&b, "Scale: %g units = %.3g cm", waveguide.DisplayUnits, waveguide.DisplayLength*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatValue(v float64) string {
	if math.IsInf(v, 0) {
		return "∞"
	}
	return fmt.Sprintf("%.6g", v)
}
