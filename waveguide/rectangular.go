package waveguide

import "math"

func rectangularKc(spec Spec) float64 {
	return math.Hypot(float64(spec.M)*math.Pi/spec.A, float64(spec.N)*math.Pi/spec.B)
}

// sampleRectangular fills the TE_mn standing-wave components
//
//	Ex =  cos(mπx/a)·sin(nπy/b)   Ey = -sin(mπx/a)·cos(nπy/b)
//	Hx =  sin(mπx/a)·cos(nπy/b)   Hy =  cos(mπx/a)·sin(nπy/b)
func sampleRectangular(spec Spec, g Grid) (e, h Field) {
	e, h = newField(g), newField(g)
	kx := float64(spec.M) * math.Pi / spec.A
	ky := float64(spec.N) * math.Pi / spec.B
	for i, y := range g.Rows {
		sy, cy := math.Sincos(ky * y)
		for j, x := range g.Cols {
			sx, cx := math.Sincos(kx * x)
			e.U.Set(i, j, cx*sy)
			e.V.Set(i, j, -sx*cy)
			h.U.Set(i, j, sx*cy)
			h.V.Set(i, j, cx*sy)
		}
	}
	return e, h
}
