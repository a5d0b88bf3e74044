package series

import (
	"fmt"

	"github.com/calebcase/oops"
)

// Table is an immutable, strictly increasing list of mantissas in [1, 10).
//
// Mantissas are held as integer hundredths so they can be scaled to any
// decade without inheriting the binary representation error of values like
// 4.7.
type Table struct {
	name   string
	values []uint16
}

// NewTable returns a table from mantissas given in hundredths. The values
// must be strictly increasing and within [100, 1000).
func NewTable(name string, hundredths ...uint16) (t Table, err error) {
	if len(hundredths) == 0 {
		return t, oops.Trace(fmt.Errorf("%w: %q is empty", ErrInvalidTable, name))
	}

	for i, v := range hundredths {
		if v < 100 || v >= 1000 {
			return t, oops.Trace(fmt.Errorf(
				"%w: %q[%d]=%d outside [100, 1000)",
				ErrInvalidTable, name, i, v,
			))
		}

		if i > 0 && v <= hundredths[i-1] {
			return t, oops.Trace(fmt.Errorf(
				"%w: %q[%d]=%d not above %d",
				ErrInvalidTable, name, i, v, hundredths[i-1],
			))
		}
	}

	values := make([]uint16, len(hundredths))
	copy(values, hundredths)

	return Table{
		name:   name,
		values: values,
	}, nil
}

// Name returns the table's name.
func (t Table) Name() string {
	return t.name
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.values)
}

// Hundredths returns entry i in hundredths of a unit.
func (t Table) Hundredths(i int) uint16 {
	return t.values[i]
}

// Mantissa returns entry i as a value in [1, 10).
func (t Table) Mantissa(i int) float64 {
	return float64(t.values[i]) / 100
}

// Mantissas returns a copy of every entry as a value in [1, 10).
func (t Table) Mantissas() []float64 {
	ms := make([]float64, len(t.values))
	for i := range t.values {
		ms[i] = t.Mantissa(i)
	}

	return ms
}

func (t Table) String() string {
	return t.name
}
