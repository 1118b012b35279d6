package waveguide

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Field is a transverse vector field sampled on a Grid. U and V are the
// x and y components for rectangular guides and the angular and radial
// components for circular ones.
//
// Values are proportional to the physical field only. The two
// components are not scaled by the same constant.
type Field struct {
	U *mat.Dense
	V *mat.Dense
}

func newField(g Grid) Field {
	r, c := g.Dims()
	return Field{U: mat.NewDense(r, c, nil), V: mat.NewDense(r, c, nil)}
}

func (f Field) Dims() (r, c int) {
	return f.U.Dims()
}

// LineWidth returns 2·|f|/max|f| at each grid point, for scaling the
// line width of streamline plots. It is a presentation heuristic: since
// U and V carry different constants it is not a physical magnitude.
func LineWidth(f Field) *mat.Dense {
	r, c := f.Dims()
	w := mat.NewDense(r, c, nil)
	w.Apply(func(i, j int, _ float64) float64 {
		return math.Hypot(f.U.At(i, j), f.V.At(i, j))
	}, w)
	if peak := mat.Max(w); peak > 0 {
		w.Scale(2/peak, w)
	}
	return w
}

// Sample evaluates the E and H transverse components of spec on g.
func Sample(spec Spec, g Grid) (e, h Field, err error) {
	if err := spec.Validate(); err != nil {
		return Field{}, Field{}, err
	}
	if g.Polar != (spec.Shape == Circular) {
		return Field{}, Field{}, fmt.Errorf("%w: %v guide sampled on mismatched grid", ErrInvalidDimension, spec.Shape)
	}
	if r, c := g.Dims(); r == 0 || c == 0 {
		return Field{}, Field{}, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}
	if spec.Shape == Circular {
		return sampleCircular(spec, g)
	}
	e, h = sampleRectangular(spec, g)
	return e, h, nil
}
