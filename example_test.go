package eseries_test

import (
	"errors"
	"fmt"

	"github.com/calebcase/eseries"
)

func ExampleRoundToSeries() {
	for _, d := range []eseries.Direction{eseries.Nearest, eseries.Up, eseries.Down} {
		r, err := eseries.RoundToSeries(53000, eseries.E24, d)
		if err != nil {
			panic(err)
		}
		fmt.Println(d, r)
	}
	// Output:
	// nearest 51000
	// up 56000
	// down 51000
}

func ExampleRoundToSeries_wrap() {
	fmt.Println(eseries.MustRoundToSeries(0.0099, eseries.E3, eseries.Up))
	fmt.Println(eseries.MustRoundToSeries(0.0099, eseries.E3, eseries.Down))
	// Output:
	// 0.01
	// 0.0047
}

func ExampleRoundToSeries_union() {
	fmt.Println(eseries.MustRoundToSeries(1190, eseries.E12|eseries.E48, eseries.Up))
	// Output:
	// 1200
}

func ExampleRoundToTolerance() {
	fmt.Println(eseries.MustRoundToTolerance(1234, 0.5, eseries.Nearest))
	fmt.Println(eseries.MustRoundToTolerance(1234, 1, eseries.Nearest))
	fmt.Println(eseries.MustRoundToTolerance(1234, 5, eseries.Nearest))
	// Output:
	// 1230
	// 1240
	// 1200
}

func ExampleRoundToSeries_error() {
	_, err := eseries.RoundToSeries(-5, eseries.E24, eseries.Nearest)
	fmt.Println(errors.Is(err, eseries.ErrInvalidMagnitude))
	// Output:
	// true
}
