package figure

import "math"

// Error type used by the library to declare error constants.
type Error string

// Error method that implements error interface.
func (e Error) Error() string {
	return string(e)
}

// DegenerateFigureError returned in strict mode if
// the derived side, height or radius of a figure isn't positive.
const DegenerateFigureError = Error("figure dimension should be positive")

// NonFiniteInputError returned in strict mode if
// one of the constructor arguments is NaN or infinity.
const NonFiniteInputError = Error("figure input should be finite")

// MinDimension is the value that replaces zero or negative
// side, height or radius when figures are constructed in permissive mode.
const MinDimension = 1e-9

// Options control how constructors treat degenerate input.
//
// By default constructors never fail: non-positive dimensions are clamped to MinDimension,
// so every constructed Figure has a positive area.
// Strict mode rejects such input with DegenerateFigureError instead.
type Options struct {
	Strict bool
}

func dimension(value float64, opts Options) (float64, error) {
	if value > 0 {
		return value, nil
	}
	if opts.Strict {
		return 0, DegenerateFigureError
	}
	return MinDimension, nil
}

func checkFinite(opts Options, values ...float64) error {
	if !opts.Strict {
		return nil
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NonFiniteInputError
		}
	}
	return nil
}
