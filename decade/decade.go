package decade

import (
	"fmt"
	"math"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("decade")

var (
	// ErrInvalidMagnitude is returned for zero, negative, NaN, infinite and
	// subnormal magnitudes.
	ErrInvalidMagnitude = Error.New("invalid magnitude")

	// ErrRange is returned when a scaled result does not fit in a float64.
	ErrRange = Error.New("magnitude out of range")
)

// SmallestNormal is the smallest positive normal float64
// (2.2250738585072014e-308). Smaller magnitudes are invalid.
const SmallestNormal = 0x1p-1022

const (
	// exactPow10 is the largest power of ten exactly representable as a
	// float64.
	exactPow10 = 22

	// maxPow10 bounds the exponents Scale computes exactly. Any float64
	// scaled by a power beyond it overflows or underflows.
	maxPow10 = 650
)

// Decade is a magnitude split into its mantissa and base 10 exponent.
type Decade struct {
	Mantissa float64
	Exponent int
}

// Value returns mantissa * 10^exponent.
func (d Decade) Value() float64 {
	return Scale(d.Mantissa, d.Exponent)
}

// Valid returns nil if v can be split into a decade.
func Valid(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < SmallestNormal {
		return oops.Trace(fmt.Errorf("%w: %v", ErrInvalidMagnitude, v))
	}

	return nil
}

// Exponent returns the integer k such that 10^k <= v < 10^(k+1).
func Exponent(v float64) (k int, err error) {
	err = Valid(v)
	if err != nil {
		return 0, err
	}

	k = int(math.Floor(math.Log10(v)))

	// Correct the logarithm when it lands on the wrong side of a power of
	// ten. It is never off by more than one.
	if v < Scale(1, k) {
		k--
	} else if v >= Scale(1, k+1) {
		k++
	}

	return k, nil
}

// Split returns the mantissa and exponent of v.
func Split(v float64) (d Decade, err error) {
	k, err := Exponent(v)
	if err != nil {
		return d, err
	}

	m := Scale(v, -k)

	// Dividing can round across the decade bounds by an ulp.
	if m >= 10 {
		m = math.Nextafter(10, 0)
	} else if m < 1 {
		m = 1
	}

	return Decade{
		Mantissa: m,
		Exponent: k,
	}, nil
}

// Scale returns c * 10^k correctly rounded to a float64.
//
// While the power of ten is exact it is applied with a single multiply or
// divide. Beyond that the product is computed exactly as a rational and
// rounded once.
func Scale(c float64, k int) float64 {
	switch {
	case c == 0 || math.IsNaN(c) || math.IsInf(c, 0):
		return c
	case k >= 0 && k <= exactPow10:
		return c * math.Pow10(k)
	case k < 0 && k >= -exactPow10:
		return c / math.Pow10(-k)
	case k > maxPow10:
		return math.Copysign(math.Inf(1), c)
	case k < -maxPow10:
		return math.Copysign(0, c)
	}

	r := new(big.Rat).SetFloat64(c)

	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(k))), nil)
	if k > 0 {
		r.Mul(r, new(big.Rat).SetInt(p))
	} else {
		r.Quo(r, new(big.Rat).SetInt(p))
	}

	f, _ := r.Float64()

	return f
}

func abs(k int) int {
	if k < 0 {
		return -k
	}

	return k
}

// Checked is like Scale but fails with ErrRange if the result overflows or
// underflows to zero.
func Checked(c float64, k int) (v float64, err error) {
	v = Scale(c, k)
	if math.IsInf(v, 0) || (v == 0 && c != 0) {
		return 0, oops.Trace(fmt.Errorf("%w: %ve%d", ErrRange, c, k))
	}

	return v, nil
}
