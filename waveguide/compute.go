package waveguide

// Result is everything computed for one request.
type Result struct {
	Spec   Spec
	Grid   Grid
	E, H   Field
	Params ParameterSet
}

// Compute validates spec and evaluates its fields on a grid of the given
// resolution together with its parameters. Nothing is returned when any
// step fails.
func Compute(spec Spec, resolution int) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(spec, resolution)
	if err != nil {
		return nil, err
	}
	e, h, err := Sample(spec, grid)
	if err != nil {
		return nil, err
	}
	params, err := Parameters(spec)
	if err != nil {
		return nil, err
	}
	return &Result{Spec: spec, Grid: grid, E: e, H: h, Params: params}, nil
}
