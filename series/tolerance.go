package series

import (
	"fmt"
	"math"

	"github.com/calebcase/oops"
)

// ForTolerance returns the series used for components with the given
// tolerance in percent.
//
// The breakpoints are fixed:
//
//  | Tolerance       | Series |
//  |-----------------|--------|
//  | t < 1           | E192   |
//  | 1 <= t < 2      | E96    |
//  | 2 <= t < 5      | E48    |
//  | 5 <= t < 10     | E24    |
//  | 10 <= t < 20    | E12    |
//  | t == 20         | E6     |
//  | t > 20          | E3     |
//  |-----------------|--------|
//
// NOTE: The series is chosen by tolerance class only. Rounding to it does not
// guarantee the result is within the tolerance of the input; E24 values are
// up to ~10% apart, so a 5% part may round by more than 5%.
//
// Negative, NaN and infinite tolerances fail with ErrToleranceOutOfRange.
// Every finite tolerance above 20 maps to E3.
func ForTolerance(percent float64) (s Series, err error) {
	switch {
	case math.IsNaN(percent), math.IsInf(percent, 0), percent < 0:
		return 0, oops.Trace(fmt.Errorf("%w: %v", ErrToleranceOutOfRange, percent))
	case percent < 1:
		return E192, nil
	case percent < 2:
		return E96, nil
	case percent < 5:
		return E48, nil
	case percent < 10:
		return E24, nil
	case percent < 20:
		return E12, nil
	case percent == 20:
		return E6, nil
	}

	return E3, nil
}
