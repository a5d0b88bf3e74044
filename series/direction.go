package series

import (
	"fmt"
	"strings"

	"github.com/calebcase/oops"
)

// Direction selects which table entry a magnitude is rounded to.
type Direction int

// Rounding Directions
const (
	// Nearest rounds to the entry with the smallest ratio distance. Ties
	// go to the lower entry.
	Nearest Direction = iota

	// Up rounds to the smallest entry not below the magnitude, wrapping
	// to the first entry of the next decade.
	Up

	// Down rounds to the largest entry not above the magnitude.
	Down
)

var directionNames = map[Direction]string{
	Nearest: "nearest",
	Up:      "up",
	Down:    "down",
}

// Valid returns nil if d is a known direction.
func (d Direction) Valid() error {
	if _, ok := directionNames[d]; !ok {
		return oops.Trace(fmt.Errorf("%w: %d", ErrUnknownDirection, int(d)))
	}

	return nil
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection returns the direction named by s. It accepts the names
// returned by String and "near" for Nearest, ignoring case.
func ParseDirection(s string) (d Direction, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "near":
		return Nearest, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}

	return d, oops.Trace(fmt.Errorf("%w: %q", ErrUnknownDirection, s))
}
