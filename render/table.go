package render

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/AnkushinDaniil/waveguide/waveguide"
)

// ParameterFrame lays the parameter set out as a Parameter/Value/Unit table.
func ParameterFrame(ps waveguide.ParameterSet) dataframe.DataFrame {
	names := make([]string, len(ps.Params))
	values := make([]float64, len(ps.Params))
	units := make([]string, len(ps.Params))
	for i, p := range ps.Params {
		names[i], values[i], units[i] = p.Name, p.Value, p.Unit
	}
	return dataframe.New(
		series.New(names, series.String, "Parameter"),
		series.New(values, series.Float, "Value"),
		series.New(units, series.String, "Unit"),
	)
}

// FieldFrame flattens the sampled E and H fields into one row per grid
// point.
func FieldFrame(res *waveguide.Result) dataframe.DataFrame {
	rows, cols := res.Grid.Dims()
	n := rows * cols
	columns := make([][]float64, 6)
	for k := range columns {
		columns[k] = make([]float64, 0, n)
	}
	for i, y := range res.Grid.Rows {
		for j, x := range res.Grid.Cols {
			for k, v := range []float64{
				x, y,
				res.E.U.At(i, j), res.E.V.At(i, j),
				res.H.U.At(i, j), res.H.V.At(i, j),
			} {
				columns[k] = append(columns[k], v)
			}
		}
	}

	names := []string{"x", "y", "Ex", "Ey", "Hx", "Hy"}
	if res.Grid.Polar {
		names = []string{"theta", "r", "Etheta", "Er", "Htheta", "Hr"}
	}
	s := make([]series.Series, len(columns))
	for k := range columns {
		s[k] = series.New(columns[k], series.Float, names[k])
	}
	return dataframe.New(s...)
}

// CSV writes the parameter table of res.
func CSV(w io.Writer, res *waveguide.Result) error {
	return writeFrame(w, ParameterFrame(res.Params))
}

// FieldsCSV writes the sampled fields of res.
func FieldsCSV(w io.Writer, res *waveguide.Result) error {
	return writeFrame(w, FieldFrame(res))
}

func writeFrame(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("failed to build table: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
