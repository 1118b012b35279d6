package parameters

import (
	"fmt"
	"strings"

	"github.com/AnkushinDaniil/waveguide/entity/format"
	"github.com/AnkushinDaniil/waveguide/entity/shape"
	"github.com/AnkushinDaniil/waveguide/waveguide"
)

// Parameters is one request as entered by the user. Lengths are in Unit
// and the frequency is in GHz.
type Parameters struct {
	Shape      shape.Shape
	Format     format.Format
	M, N       int // M is ignored by circular guides
	P          int // radial order, circular guides only
	A, B       float64
	R          float64
	Unit       string
	Frequency  float64
	Resolution int
	Output     string
}

// UnitScale returns the number of metres in one unit.
func UnitScale(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "m", "":
		return 1, nil
	case "cm":
		return 1e-2, nil
	case "mm":
		return 1e-3, nil
	default:
		return 0, fmt.Errorf("invalid unit: %q", unit)
	}
}

// Spec converts p into SI units.
func (p *Parameters) Spec() (waveguide.Spec, error) {
	scale, err := UnitScale(p.Unit)
	if err != nil {
		return waveguide.Spec{}, err
	}
	spec := waveguide.NewRectangular(p.M, p.N, p.A*scale, p.B*scale)
	if p.Shape.Waveguide() == waveguide.Circular {
		spec = waveguide.NewCircular(p.N, p.P, p.R*scale)
	}
	return spec.WithFrequency(p.Frequency * 1e9), nil
}
