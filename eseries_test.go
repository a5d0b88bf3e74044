package eseries_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/eseries"
)

func TestRoundToSeries(t *testing.T) {
	type TC struct {
		v    float64
		s    eseries.Series
		d    eseries.Direction
		r    float64
		err  error
		Mark error
	}

	tcs := []TC{
		{v: 47000, s: eseries.E24, d: eseries.Nearest, r: 47000, Mark: oops.New("unexpected")},
		// 53000 is 3.9% above 51000 and 5.7% below 56000.
		{v: 53000, s: eseries.E24, d: eseries.Nearest, r: 51000, Mark: oops.New("unexpected")},
		{v: 53000, s: eseries.E24, d: eseries.Up, r: 56000, Mark: oops.New("unexpected")},
		{v: 53000, s: eseries.E24, d: eseries.Down, r: 51000, Mark: oops.New("unexpected")},
		{v: 9.99, s: eseries.E3, d: eseries.Up, r: 10, Mark: oops.New("unexpected")},
		{v: 3.3e-9, s: eseries.E6, d: eseries.Nearest, r: 3.3e-9, Mark: oops.New("unexpected")},
		{v: 120e3, s: eseries.E12 | eseries.E24, d: eseries.Down, r: 120e3, Mark: oops.New("unexpected")},
		{v: -5, s: eseries.E24, d: eseries.Nearest, err: eseries.ErrInvalidMagnitude, Mark: oops.New("unexpected")},
		{v: 0, s: eseries.E24, d: eseries.Nearest, err: eseries.ErrInvalidMagnitude, Mark: oops.New("unexpected")},
		{v: math.NaN(), s: eseries.E24, d: eseries.Nearest, err: eseries.ErrInvalidMagnitude, Mark: oops.New("unexpected")},
		{v: 1000, s: 0, d: eseries.Nearest, err: eseries.ErrUnknownSeries, Mark: oops.New("unexpected")},
		{v: 1000, s: 0x200, d: eseries.Nearest, err: eseries.ErrUnknownSeries, Mark: oops.New("unexpected")},
		{v: 1000, s: eseries.E24, d: eseries.Direction(9), err: eseries.ErrUnknownDirection, Mark: oops.New("unexpected")},
		{v: 1.75e308, s: eseries.E24, d: eseries.Up, err: eseries.ErrRange, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/%v/%v", i, tc.v, tc.s, tc.d), func(t *testing.T) {
			r, err := eseries.RoundToSeries(tc.v, tc.s, tc.d)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err, tc.Mark)
				t.Logf("%+v", err)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.r, r, tc.Mark)
		})
	}
}

func TestRoundToTolerance(t *testing.T) {
	type TC struct {
		v       float64
		percent float64
		d       eseries.Direction
		r       float64
		err     error
	}

	tcs := []TC{
		{v: 1000, percent: 0.5, d: eseries.Nearest, r: 1000},
		{v: 1234, percent: 0.5, d: eseries.Nearest, r: 1230},
		{v: 1234, percent: 1, d: eseries.Nearest, r: 1240},
		{v: 1234, percent: 5, d: eseries.Nearest, r: 1200},
		{v: 1234, percent: 5, d: eseries.Up, r: 1300},
		{v: 1234, percent: 20, d: eseries.Nearest, r: 1500},
		{v: 1234, percent: 50, d: eseries.Up, r: 2200},
		{v: 1234, percent: -1, d: eseries.Nearest, err: eseries.ErrToleranceOutOfRange},
		{v: 1234, percent: math.NaN(), d: eseries.Nearest, err: eseries.ErrToleranceOutOfRange},
		{v: -1234, percent: 5, d: eseries.Nearest, err: eseries.ErrInvalidMagnitude},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/%v%%/%v", i, tc.v, tc.percent, tc.d), func(t *testing.T) {
			r, err := eseries.RoundToTolerance(tc.v, tc.percent, tc.d)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.r, r)
		})
	}
}

func TestRoundAll(t *testing.T) {
	ctx := context.Background()

	vs := []float64{53000, 0.0049, 9.99, 1, 47e3, 2.1e6}

	rs, err := eseries.RoundAll(ctx, vs, eseries.E12, eseries.Up, 2)
	require.NoError(t, err)
	t.Logf("results: %s", spew.Sdump(rs))

	require.Len(t, rs, len(vs))
	for i, v := range vs {
		r, err := eseries.RoundToSeries(v, eseries.E12, eseries.Up)
		require.NoError(t, err)
		require.Equal(t, r, rs[i], "%d: %v", i, v)
	}

	rs, err = eseries.RoundAll(ctx, nil, eseries.E12, eseries.Up, 0)
	require.NoError(t, err)
	require.Empty(t, rs)

	_, err = eseries.RoundAll(ctx, []float64{1, -1, 2}, eseries.E24, eseries.Nearest, 0)
	require.ErrorIs(t, err, eseries.ErrInvalidMagnitude)

	_, err = eseries.RoundAll(ctx, vs, 0, eseries.Nearest, 0)
	require.ErrorIs(t, err, eseries.ErrUnknownSeries)

	_, err = eseries.RoundAll(ctx, vs, eseries.E24, eseries.Direction(5), 0)
	require.ErrorIs(t, err, eseries.ErrUnknownDirection)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = eseries.RoundAll(canceled, vs, eseries.E24, eseries.Nearest, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMust(t *testing.T) {
	require.Equal(t, 56000.0, eseries.MustRoundToSeries(53000, eseries.E24, eseries.Up))
	require.Equal(t, 1230.0, eseries.MustRoundToTolerance(1234, 0.5, eseries.Nearest))

	require.Panics(t, func() {
		eseries.MustRoundToSeries(-1, eseries.E24, eseries.Up)
	})
	require.Panics(t, func() {
		eseries.MustRoundToTolerance(1, math.Inf(1), eseries.Up)
	})
}
