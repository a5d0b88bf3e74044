// Package decade splits a positive magnitude into a mantissa and a base 10
// exponent.
//
// The equation for a magnitude is:
//
//  magnitude = mantissa * 10 ^ exponent
//
// Where mantissa is in the half open range [1, 10) and exponent is an
// integer. For example:
//
//  47000  = 4.7 * 10^4
//  0.0047 = 4.7 * 10^-3
//
// Exponent
//
// The exponent is computed directly as floor(log10(magnitude)) rather than by
// repeated division, so the error does not accumulate for very large or very
// small magnitudes.
//
// math.Log10 is not exact at every power of ten (math.Log10(1000) evaluates to
// 2.9999999999999996), so the logarithm is only a first guess. The guess is
// checked against the bounds 10^k and 10^(k+1) and moved by one if the
// magnitude falls outside of them. The bounds are computed the same way as
// Scale, which means every power of ten written as a float64 literal lands on
// its own decade:
//
//  | Magnitude | Exponent | Mantissa |
//  |-----------|----------|----------|
//  | 0.001     | -3       | 1        |
//  | 1         | 0        | 1        |
//  | 9.999     | 0        | 9.999    |
//  | 10        | 1        | 1        |
//  | 1000      | 3        | 1        |
//  |-----------|----------|----------|
//
// Valid Magnitudes
//
// Magnitudes must be finite and no smaller than SmallestNormal (2.2250738585072014e-308). Zero,
// negative, NaN, infinite and subnormal magnitudes fail with
// ErrInvalidMagnitude.
//
// Scaling
//
// Scale multiplies a coefficient by a power of ten and rounds once, so the
// result is the correctly rounded float64 for every exponent. Scale(47, -4)
// is exactly the literal 0.0047 and Scale(47, -304) is exactly 4.7e-303.
// Within ±22 this is a single multiply or divide by an exact power of ten;
// beyond that the product is computed exactly with math/big.
package decade
