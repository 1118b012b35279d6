package waveguide

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultResolution is the number of samples along each grid axis.
const DefaultResolution = 101

// Grid is a tensor-product sampling of the guide cross-section.
//
// For a rectangular guide Cols holds x in [0, A] and Rows holds y in
// [0, B]. For a circular guide Cols holds θ in [0, 2π] and Rows holds r
// in [0, R]. Sampled fields are indexed (row, col).
type Grid struct {
	Polar bool
	Cols  []float64
	Rows  []float64
}

func NewGrid(spec Spec, resolution int) (Grid, error) {
	if resolution < 2 {
		return Grid{}, fmt.Errorf("%w: grid resolution must be at least 2, got %d", ErrInvalidDimension, resolution)
	}
	cols := make([]float64, resolution)
	rows := make([]float64, resolution)
	if spec.Shape == Circular {
		return Grid{
			Polar: true,
			Cols:  floats.Span(cols, 0, 2*math.Pi),
			Rows:  floats.Span(rows, 0, spec.R),
		}, nil
	}
	return Grid{
		Cols: floats.Span(cols, 0, spec.A),
		Rows: floats.Span(rows, 0, spec.B),
	}, nil
}

// DefaultGrid samples spec at DefaultResolution. NewGrid only fails for
// resolutions below 2, so an error here is a programming mistake.
func DefaultGrid(spec Spec) Grid {
	g, err := NewGrid(spec, DefaultResolution)
	if err != nil {
		panic(err)
	}
	return g
}

// Dims returns the number of rows and columns of every field on g.
func (g Grid) Dims() (r, c int) {
	return len(g.Rows), len(g.Cols)
}
