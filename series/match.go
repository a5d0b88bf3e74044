package series

import (
	"fmt"
	"sort"

	"github.com/calebcase/oops"

	"github.com/calebcase/eseries/decade"
)

// candidate is a table entry placed in a decade: hundredths * 10^(exponent-2).
type candidate struct {
	hundredths uint16
	exponent   int
}

func (c candidate) value() float64 {
	return decade.Scale(float64(c.hundredths), c.exponent-2)
}

// Match rounds v to an entry of t in direction d and returns the entry scaled
// to the decade it was found in.
//
// Entries are compared against v after being scaled into v's decade, so an
// exact series value (e.g. 0.0047 in E24) matches itself in every direction.
// Otherwise the entries below and above v are located with a binary search:
//
//   - Up returns the entry above. Above the last entry it wraps to the first
//     entry of the next decade (9.99 in E3 rounds up to 10).
//   - Down returns the entry below, or ErrNoMatch if there is none.
//   - Nearest returns whichever of the two has the smaller ratio distance
//     max(a/b, b/a), preferring the entry below on a tie. The wrapped entries
//     are candidates too: the first entry of the next decade (9.9 in E24
//     rounds to 10) and, for tables that do not start at 1.0, the last entry
//     of the previous decade (1.0 in a table of 3.0 and 9.0 rounds to 0.9).
func Match(v float64, t Table, d Direction) (r float64, err error) {
	err = d.Valid()
	if err != nil {
		return 0, err
	}

	if t.Len() == 0 {
		return 0, oops.Trace(fmt.Errorf("%w: %q is empty", ErrInvalidTable, t.name))
	}

	k, err := decade.Exponent(v)
	if err != nil {
		return 0, err
	}

	at := func(i int) candidate {
		return candidate{t.values[i], k}
	}

	i := sort.Search(t.Len(), func(i int) bool {
		return at(i).value() >= v
	})

	if i < t.Len() && at(i).value() == v {
		return v, nil
	}

	var above candidate
	if i < t.Len() {
		above = at(i)
	} else {
		above = candidate{t.values[0], k + 1}
	}

	var c candidate
	switch d {
	case Up:
		c = above
	case Down:
		if i == 0 {
			return 0, oops.Trace(fmt.Errorf(
				"%w: %v in %s", ErrNoMatch, v, t.name,
			))
		}

		c = at(i - 1)
	case Nearest:
		var below candidate
		if i > 0 {
			below = at(i - 1)
		} else {
			below = candidate{t.values[t.Len()-1], k - 1}
		}

		if above.value()/v < v/below.value() {
			c = above
		} else {
			c = below
		}
	}

	return decade.Checked(float64(c.hundredths), c.exponent-2)
}
