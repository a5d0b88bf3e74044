package eseries

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/calebcase/eseries/decade"
	"github.com/calebcase/eseries/series"
)

// Series is a set of IEC 60063 E series.
type Series = series.Series

// Direction selects how a value is rounded.
type Direction = series.Direction

// E Series
const (
	E3   = series.E3
	E6   = series.E6
	E12  = series.E12
	E24  = series.E24
	E48  = series.E48
	E96  = series.E96
	E192 = series.E192
)

// Rounding Directions
const (
	Nearest = series.Nearest
	Up      = series.Up
	Down    = series.Down
)

// Errors
var (
	ErrInvalidMagnitude    = decade.ErrInvalidMagnitude
	ErrRange               = decade.ErrRange
	ErrUnknownSeries       = series.ErrUnknownSeries
	ErrUnknownDirection    = series.ErrUnknownDirection
	ErrToleranceOutOfRange = series.ErrToleranceOutOfRange
	ErrNoMatch             = series.ErrNoMatch
)

// RoundToSeries rounds v to the series s in direction d.
func RoundToSeries(v float64, s Series, d Direction) (r float64, err error) {
	t, err := s.Table()
	if err != nil {
		return 0, err
	}

	return series.Match(v, t, d)
}

// RoundToTolerance rounds v to the series used for the tolerance in percent.
// See series.ForTolerance for the breakpoints.
//
// NOTE: The result is NOT guaranteed to be within the tolerance of v.
func RoundToTolerance(v float64, percent float64, d Direction) (r float64, err error) {
	s, err := series.ForTolerance(percent)
	if err != nil {
		return 0, err
	}

	return RoundToSeries(v, s, d)
}

// RoundAll rounds every value in vs to the series s in direction d using up
// to workers goroutines. Results are returned in the order of vs. The first
// error cancels the remaining work. Workers <= 0 uses GOMAXPROCS.
func RoundAll(ctx context.Context, vs []float64, s Series, d Direction, workers int) (rs []float64, err error) {
	t, err := s.Table()
	if err != nil {
		return nil, err
	}

	err = d.Valid()
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rs = make([]float64, len(vs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range vs {
		i, v := i, v

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := series.Match(v, t, d)
			if err != nil {
				return fmt.Errorf("value %d: %w", i, err)
			}

			rs[i] = r

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	return rs, nil
}
