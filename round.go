package scale

import (
	"math"
	"strconv"
)

// RoundToMagnitude returns x rounded to the digit at 10^magnitude using
// [rounding half to even] (banker's rounding).
// A magnitude of 0 rounds to whole numbers, 1 rounds to tens, and -1
// rounds to tenths.
// Zero is returned unchanged for any magnitude.
// See also function [RoundToSignificant].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func RoundToMagnitude(x float64, magnitude int) float64 {
	if x == 0 {
		return 0
	}
	shift := math.Pow(10, float64(-magnitude))
	return math.RoundToEven(x*shift) * math.Pow(10, float64(magnitude))
}

// RoundToSignificant returns x rounded to the given number of significant
// digits using [rounding half to even] (banker's rounding), irrespective
// of the magnitude of x.
// Zero input or zero (or negative) digits always yield zero.
// See also function [RoundToMagnitude].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func RoundToSignificant(x float64, digits int) float64 {
	if x == 0 || digits <= 0 {
		return 0
	}
	magnitude := int(math.Floor(log10(math.Abs(x))))
	return RoundToMagnitude(x, magnitude-digits+1)
}

// log10 is like [math.Log10] but returns an exact integer for exact powers
// of ten. math.Log10 is not correctly rounded, so the magnitude of a value
// sitting exactly on a prefix boundary could land just below it and select
// the bucket below. The power check goes through strconv, which performs
// correctly rounded decimal conversion; math.Pow does not for large
// exponents.
func log10(x float64) float64 {
	m := math.Log10(x)
	r := math.Round(m)
	if m == r {
		return m
	}
	if p, err := strconv.ParseFloat("1e"+strconv.Itoa(int(r)), 64); err == nil && p == x {
		return r
	}
	return m
}

// log2 is like [math.Log2], guarded the same way as [log10].
func log2(x float64) float64 {
	m := math.Log2(x)
	if r := math.Round(m); math.Pow(2, r) == x {
		return r
	}
	return m
}

// euclidMod returns the always-nonnegative remainder of x divided by y.
func euclidMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}
