// Package waveguide evaluates TE-mode fields and mode parameters of
// rectangular and circular waveguides.
//
// All dimensions are in metres and frequencies in hertz. Every function
// is a pure function of its arguments: results are built fresh on each
// call and never shared between calls.
package waveguide

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidModeCombination = errors.New("invalid mode combination")
	ErrInvalidDimension       = errors.New("invalid dimension")
)

// DefaultFrequency is the operating frequency used by the constructors.
const DefaultFrequency = 10e9 // Hz

type Shape uint8

const (
	Rectangular Shape = iota
	Circular
)

func (s Shape) String() string {
	switch s {
	case Rectangular:
		return "rectangular"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Spec describes one TE mode of one waveguide.
//
// For a rectangular guide M and N are the mode indices along the width A
// and the height B. For a circular guide N is the azimuthal order, P the
// radial order and R the radius.
type Spec struct {
	Shape     Shape
	M, N, P   int
	A, B, R   float64
	Frequency float64
}

func NewRectangular(m, n int, a, b float64) Spec {
	return Spec{
		Shape:     Rectangular,
		M:         m,
		N:         n,
		A:         a,
		B:         b,
		Frequency: DefaultFrequency,
	}
}

func NewCircular(n, p int, r float64) Spec {
	return Spec{
		Shape:     Circular,
		N:         n,
		P:         p,
		R:         r,
		Frequency: DefaultFrequency,
	}
}

// WithFrequency returns a copy of s operating at f hertz.
func (s Spec) WithFrequency(f float64) Spec {
	s.Frequency = f
	return s
}

// Validate reports whether the mode can exist in the guide. Mode errors
// wrap ErrInvalidModeCombination and carry a message fit for the user.
func (s Spec) Validate() error {
	if !finitePositive(s.Frequency) {
		return fmt.Errorf("%w: frequency must be positive and finite, got %g", ErrInvalidDimension, s.Frequency)
	}
	switch s.Shape {
	case Rectangular:
		if s.M < 0 || s.N < 0 {
			return fmt.Errorf("%w: m and n cannot be negative", ErrInvalidModeCombination)
		}
		if s.M == 0 && s.N == 0 {
			return fmt.Errorf("%w: m and n cannot be 0 at the same time", ErrInvalidModeCombination)
		}
		if !finitePositive(s.A) || !finitePositive(s.B) {
			return fmt.Errorf("%w: a and b must be positive and finite, got %g and %g", ErrInvalidDimension, s.A, s.B)
		}
	case Circular:
		if s.N < 0 || s.P < 0 {
			return fmt.Errorf("%w: n and p cannot be negative", ErrInvalidModeCombination)
		}
		if s.P == 0 {
			return fmt.Errorf("%w: p cannot be 0", ErrInvalidModeCombination)
		}
		if !finitePositive(s.R) {
			return fmt.Errorf("%w: r must be positive and finite, got %g", ErrInvalidDimension, s.R)
		}
	default:
		return fmt.Errorf("unknown shape: %v", s.Shape)
	}
	return nil
}

// finitePositive rejects NaN and both infinities along with x <= 0.
func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func (s Spec) String() string {
	if s.Shape == Circular {
		return fmt.Sprintf("TE%d%d circular r=%gm", s.N, s.P, s.R)
	}
	return fmt.Sprintf("TE%d%d rectangular %gm x %gm", s.M, s.N, s.A, s.B)
}
