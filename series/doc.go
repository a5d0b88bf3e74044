// Package series provides the IEC 60063 preferred-value series and rounds
// magnitudes to them.
//
// Series
//
// Each E series divides a decade into n logarithmically spaced mantissas:
//
//  | Series | Entries | Tolerance |
//  |--------|---------|-----------|
//  | E3     | 3       | >20%      |
//  | E6     | 6       | 20%       |
//  | E12    | 12      | 10%       |
//  | E24    | 24      | 5%        |
//  | E48    | 48      | 2%        |
//  | E96    | 96      | 1%        |
//  | E192   | 192     | 0.5%      |
//  |--------|---------|-----------|
//
// Series values are bit flags and may be combined. E12|E48 rounds against
// every mantissa of E12 and E48.
//
// Matching
//
// Match works on the magnitude itself, never on a mantissa supplied by the
// caller. The decade is recomputed from the magnitude on every call, the
// table entries are scaled into that decade and the bracketing entries are
// found with a binary search. The result does not depend on call history or
// on where in the table the search starts.
package series
