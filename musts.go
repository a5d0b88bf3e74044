package eseries

import "fmt"

// MustRoundToSeries is like [RoundToSeries] but panics on error.
func MustRoundToSeries(v float64, s Series, d Direction) float64 {
	r, err := RoundToSeries(v, s, d)
	if err != nil {
		panic(fmt.Sprintf("MustRoundToSeries(%v, %v, %v) failed: %v", v, s, d, err))
	}
	return r
}

// MustRoundToTolerance is like [RoundToTolerance] but panics on error.
func MustRoundToTolerance(v float64, percent float64, d Direction) float64 {
	r, err := RoundToTolerance(v, percent, d)
	if err != nil {
		panic(fmt.Sprintf("MustRoundToTolerance(%v, %v, %v) failed: %v", v, percent, d, err))
	}
	return r
}
