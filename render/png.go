package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/waveguide/waveguide"
)

// arrowStride thins the grid so arrows stay legible.
const arrowStride = 5

var (
	azure = color.RGBA{R: 0x06, G: 0x9a, B: 0xf3, A: 0xff}
	red   = color.RGBA{R: 0xe5, A: 0xff}
)

// vectors adapts a sampled field to plotter.FieldXY. Polar fields are
// drawn unrolled, θ along x and r in display units along y.
type vectors struct {
	grid   waveguide.Grid
	field  waveguide.Field
	stride int
}

func (v vectors) Dims() (c, r int) {
	rows, cols := v.grid.Dims()
	return (cols + v.stride - 1) / v.stride, (rows + v.stride - 1) / v.stride
}

func (v vectors) Vector(c, r int) plotter.XY {
	i, j := r*v.stride, c*v.stride
	return plotter.XY{X: v.field.U.At(i, j), Y: v.field.V.At(i, j)}
}

func (v vectors) X(c int) float64 {
	return v.grid.Cols[c*v.stride]
}

func (v vectors) Y(r int) float64 {
	y := v.grid.Rows[r*v.stride]
	if v.grid.Polar {
		return waveguide.ToDisplay(y)
	}
	return y
}

// PNG draws the E and H fields of res as arrow plots into
// <base>_E.png and <base>_H.png and returns the written paths. On error
// no plot is left on disk.
func PNG(base string, res *waveguide.Result) ([]string, error) {
	paths := make([]string, 0, 2)
	for _, f := range []struct {
		name  string
		field waveguide.Field
		color color.Color
	}{
		{"E", res.E, azure},
		{"H", res.H, red},
	} {
		path := fmt.Sprintf("%s_%s.png", base, f.name)
		if err := savePlot(path, f.name+" field", res, f.field, f.color); err != nil {
			for _, written := range paths {
				_ = os.Remove(written)
			}
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func savePlot(path, title string, res *waveguide.Result, f waveguide.Field, c color.Color) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %v", title, res.Spec)
	p.X.Label.Text = "x, m"
	p.Y.Label.Text = "y, m"
	if res.Grid.Polar {
		p.X.Label.Text = "θ, rad"
		p.Y.Label.Text = fmt.Sprintf("r, units (%g units = %.3g cm)", waveguide.DisplayUnits, waveguide.DisplayLength*100)
	}

	field := plotter.NewField(vectors{grid: res.Grid, field: f, stride: arrowStride})
	field.LineStyle.Color = c
	field.LineStyle.Width = vg.Points(0.8)
	p.Add(field)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
