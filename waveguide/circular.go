package waveguide

import "math"

// Polar plots are drawn on a display radius of DisplayUnits, which
// stands for DisplayLength metres of physical radius.
const (
	DisplayUnits  = 5.0
	DisplayLength = 2.3e-2 // m
)

// ToDisplay converts a physical length in metres to display units.
func ToDisplay(metres float64) float64 {
	return metres * DisplayUnits / DisplayLength
}

func circularKc(spec Spec) (float64, error) {
	root, err := BesselJPrimeZero(spec.N, spec.P)
	if err != nil {
		return 0, err
	}
	return root / spec.R, nil
}

// sampleCircular fills
//
//	Eθ = J'n(x'r/R)·cos(nθ)   Er =  Jn(x'r/R)·sin(nθ)
//	Hθ = Jn(x'r/R)·sin(nθ)    Hr = -Jn(x'r/R)·cos(nθ)
//
// with x' the p-th root of J'n rounded to three decimals. The angular
// and radial terms are kept in this orientation even though the TE11
// pattern differs from the textbook one.
func sampleCircular(spec Spec, g Grid) (e, h Field, err error) {
	root, err := BesselJPrimeZero(spec.N, spec.P)
	if err != nil {
		return Field{}, Field{}, err
	}
	k := math.Round(root*1000) / 1000 / spec.R
	n := float64(spec.N)

	e, h = newField(g), newField(g)
	for i, r := range g.Rows {
		j0 := BesselJ(spec.N, k*r)
		j1 := BesselJPrime(spec.N, k*r)
		for j, t := range g.Cols {
			s, c := math.Sincos(n * t)
			e.U.Set(i, j, j1*c)
			e.V.Set(i, j, j0*s)
			h.U.Set(i, j, j0*s)
			h.V.Set(i, j, -j0*c)
		}
	}
	return e, h, nil
}
