package series

import (
	"fmt"
	"slices"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("series")

var (
	ErrUnknownSeries       = Error.New("unknown series")
	ErrUnknownDirection    = Error.New("unknown direction")
	ErrToleranceOutOfRange = Error.New("tolerance out of range")
	ErrInvalidTable        = Error.New("invalid table")

	// ErrNoMatch is returned when rounding down a mantissa below every
	// entry of the table. It cannot happen for the E series since they
	// all start at 1.0.
	ErrNoMatch = Error.New("no entry below magnitude")
)

// Series is a set of IEC 60063 E series. Series may be OR'ed together to
// round against the union of their tables.
type Series uint16

// E Series
const (
	E3   Series = 0x004
	E6   Series = 0x008
	E12  Series = 0x010
	E24  Series = 0x020
	E48  Series = 0x040
	E96  Series = 0x080
	E192 Series = 0x100
)

type info struct {
	Series    Series
	Tolerance float64
	Table     Table
}

type infos []info

// Match returns the info for a single series.
func (is infos) Match(s Series) (i info, ok bool) {
	for _, candidate := range is {
		if candidate.Series == s {
			return candidate, true
		}
	}

	return i, false
}

var (
	known = E3 | E6 | E12 | E24 | E48 | E96 | E192

	// Ordered from the coarsest to the finest series.
	all = infos{
		{E3, 40, Table{"E3", e3}},
		{E6, 20, Table{"E6", e6}},
		{E12, 10, Table{"E12", e12}},
		{E24, 5, Table{"E24", e24}},
		{E48, 2, Table{"E48", e48}},
		{E96, 1, Table{"E96", e96}},
		{E192, 0.5, Table{"E192", e192}},
	}
)

// All returns every single series from the coarsest to the finest.
func All() []Series {
	ss := make([]Series, len(all))
	for i, info := range all {
		ss[i] = info.Series
	}

	return ss
}

// Valid returns nil if s is a non-empty set of known series.
func (s Series) Valid() error {
	if s == 0 || s&^known != 0 {
		return oops.Trace(fmt.Errorf("%w: %#x", ErrUnknownSeries, uint16(s)))
	}

	return nil
}

// Split returns the single series contained in s from the coarsest to the
// finest.
func (s Series) Split() []Series {
	var ss []Series

	for _, info := range all {
		if s&info.Series != 0 {
			ss = append(ss, info.Series)
		}
	}

	return ss
}

func (s Series) String() string {
	if s.Valid() != nil {
		return fmt.Sprintf("Series(%#x)", uint16(s))
	}

	names := []string{}
	for _, single := range s.Split() {
		i, _ := all.Match(single)
		names = append(names, i.Table.name)
	}

	return strings.Join(names, "|")
}

// Tolerance returns the nominal tolerance in percent of the finest series in
// s.
func (s Series) Tolerance() (percent float64, err error) {
	err = s.Valid()
	if err != nil {
		return 0, err
	}

	ss := s.Split()
	i, _ := all.Match(ss[len(ss)-1])

	return i.Tolerance, nil
}

// Table returns the preferred-value table for s. The table of a union is the
// sorted, de-duplicated merge of its members.
func (s Series) Table() (t Table, err error) {
	err = s.Valid()
	if err != nil {
		return t, err
	}

	ss := s.Split()
	if len(ss) == 1 {
		i, _ := all.Match(ss[0])

		return i.Table, nil
	}

	var values []uint16
	for _, single := range ss {
		i, _ := all.Match(single)
		values = append(values, i.Table.values...)
	}

	slices.Sort(values)
	values = slices.Compact(values)

	return Table{
		name:   s.String(),
		values: values,
	}, nil
}

// Parse returns the series named by name. Unions are written with '|'
// (e.g. "E12|E48"). Names are case insensitive.
func Parse(name string) (s Series, err error) {
	for _, part := range strings.Split(name, "|") {
		part = strings.TrimSpace(part)

		found := false
		for _, info := range all {
			if strings.EqualFold(part, info.Table.name) {
				s |= info.Series
				found = true

				break
			}
		}

		if !found {
			return 0, oops.Trace(fmt.Errorf("%w: %q", ErrUnknownSeries, name))
		}
	}

	return s, nil
}
