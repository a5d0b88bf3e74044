// Package eseries rounds component values (resistance, capacitance,
// inductance) to the IEC 60063 preferred-value series E3 through E192.
//
// A value is rounded independently of its scale: 53000 and 0.053 are both
// rounded through the mantissa 5.3.
//
//  RoundToSeries(53000, E24, Nearest) // 51000
//  RoundToSeries(53000, E24, Down)    // 51000
//  RoundToTolerance(1234, 1, Nearest) // 1240 (E96)
//
// All functions are pure and safe for concurrent use. The tables are read
// only.
package eseries
