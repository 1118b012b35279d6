package waveguide

import (
	"fmt"
	"math"
)

// Physical constants of free space.
const (
	SpeedOfLight = 299792458.0      // m/s
	Mu0          = 1.25663706212e-6 // H/m
	Epsilon0     = 8.8541878128e-12 // F/m
)

// Parameter names in the order they appear in a ParameterSet.
const (
	NameKc      = "Kc"
	NameFc      = "Fc"
	NameBetaG   = "Beta-g"
	NameVg      = "Vg"
	NameZin     = "Zin"
	NameZg      = "Zg"
	NameLambdaG = "lambda-g"
)

type Parameter struct {
	Name  string
	Value float64
	Unit  string
}

// ParameterSet holds the seven derived mode parameters.
//
// Below cutoff the mode is evanescent: Beta-g and Vg are zero, Zg and
// lambda-g are +Inf and Attenuation holds the decay constant.
type ParameterSet struct {
	Params      [7]Parameter
	Propagating bool
	Attenuation float64 // Np/m
}

// Get returns the value of the named parameter.
func (ps ParameterSet) Get(name string) (float64, bool) {
	for _, p := range ps.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return 0, false
}

func Impedance() float64 {
	return math.Sqrt(Mu0 / Epsilon0)
}

// CutoffWavenumber returns Kc of the mode in 1/m.
func CutoffWavenumber(spec Spec) (float64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	if spec.Shape == Circular {
		return circularKc(spec)
	}
	return rectangularKc(spec), nil
}

// Parameters computes the mode parameters of spec at its operating
// frequency.
func Parameters(spec Spec) (ParameterSet, error) {
	kc, err := CutoffWavenumber(spec)
	if err != nil {
		return ParameterSet{}, err
	}
	if !(kc > 0) || math.IsInf(kc, 0) {
		return ParameterSet{}, fmt.Errorf("%w: cutoff wavenumber %g", ErrInvalidDimension, kc)
	}

	eta := Impedance()
	k := 2 * math.Pi * spec.Frequency / SpeedOfLight
	fc := SpeedOfLight * kc / (2 * math.Pi)

	ps := ParameterSet{Propagating: k > kc}
	beta, vg := 0.0, 0.0
	zg, lambdaG := math.Inf(1), math.Inf(1)
	if ps.Propagating {
		beta = math.Sqrt(k*k - kc*kc)
		vg = SpeedOfLight * beta / k
		zg = eta * k / beta
		lambdaG = 2 * math.Pi / beta
	} else {
		ps.Attenuation = math.Sqrt(kc*kc - k*k)
	}

	ps.Params = [7]Parameter{
		{Name: NameKc, Value: kc, Unit: "1/m"},
		{Name: NameFc, Value: fc, Unit: "Hz"},
		{Name: NameBetaG, Value: beta, Unit: "1/m"},
		{Name: NameVg, Value: vg, Unit: "m/s"},
		{Name: NameZin, Value: eta, Unit: "Ohm"},
		{Name: NameZg, Value: zg, Unit: "Ohm"},
		{Name: NameLambdaG, Value: lambdaG, Unit: "m"},
	}
	return ps, nil
}
