/*
Package scale renders floating-point numbers as human-readable strings
under a configurable policy: rounding precision, magnitude scaling,
sign display, and separator glyphs.

# Features

  - Immutable formatter values, ensuring safe usage across multiple goroutines
  - Rounding to a fixed magnitude or to a number of significant digits,
    using rounding half to even (banker's rounding)
  - Magnitude scaling with SI unit prefixes, binary (IEC) unit prefixes,
    scientific notation, or no scaling at all
  - Configurable sign display, digit grouping, and decimal separator

# Representation

The package consists of one main struct, [Formatter], which holds the
formatting policy, and the option types [Rounding], [Scaling], and [Sign].
A Formatter is constructed once via [New] and the With methods and then
reused; formatting calls never mutate it.

Unit prefixes are represented by the [Prefix] type, an integer index into
in-memory arrays holding the half-open magnitude interval and symbol of
each prefix. Two static tables exist: the decimal table covers magnitudes
[-30, 33) in steps of 3 with the SI symbols from "q" to "Q", and the
binary table covers magnitudes [0, 90) in steps of 10 with the IEC
symbols from "" to "Yi".

# Operations

The single formatting operation is [Formatter.Format]. The input is
rounded first, because rounding can carry a value across a prefix
boundary; then the magnitude of the rounded value selects a prefix
bucket, the number of fractional digits is derived from the scaling and
rounding policy, and the digits, prefix or exponent, sign, and
separators are rendered. Values whose magnitude falls outside the prefix
table fall back to scientific notation.

The rounding primitives [RoundToMagnitude] and [RoundToSignificant] are
also exported for direct use.

# Diagnostics

Formatting is total over all float64 values, including infinities and
NaN, and never returns an error. Suspicious separator configurations
(an empty decimal separator, colliding separators, digits inside a
separator) are reported through an injectable [Sink] and do not affect
formatting.
*/
package scale
