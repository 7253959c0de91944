package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	digits = "0123456789"

	// decimalMark is the internal decimal separator of intermediate
	// renderings; it is substituted with the configured separator last.
	decimalMark = "."

	// groupMark is the placeholder inserted between digit groups.
	// A control byte cannot collide with configured separator glyphs, and
	// it is substituted after decimalMark so a group separator of "." is
	// not mistaken for a decimal separator.
	groupMark = "\x00"

	// expMark opens the scientific notation suffix "<mantissa> * base^(exp)".
	expMark = " * "
)

// Format renders x under the formatter's policy.
//
// The value is rounded first, because rounding can carry it across a
// prefix boundary (999.97 rounded to 4 significant digits must select
// the "k" prefix). The magnitude of the rounded value then selects a
// unit prefix bucket, the fractional digit count is derived from the
// scaling and rounding policy, and digits, prefix or exponent, sign,
// and separators are rendered in turn.
//
// Special values short-circuit: positive infinity renders as "∞"
// (sign-prefixed under [Always]), negative infinity as "-∞", and NaN as
// "NaN", never signed.
//
// Format is pure and never fails; it is safe for concurrent use.
func (f Formatter) Format(x float64) string {
	switch {
	case math.IsInf(x, 1):
		if f.sign == Always {
			return "+∞"
		}
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case math.IsNaN(x):
		return "NaN"
	}

	x = f.rounding.apply(x)
	magnitude := f.scaling.magnitude(x)

	var prefix Prefix
	var ok bool
	switch f.scaling.mode {
	case scaleBinary:
		prefix, ok = LookupBinaryPrefix(magnitude)
	case scaleDecimal:
		prefix, ok = LookupDecimalPrefix(magnitude)
	}

	s := f.render(x, magnitude, f.places(magnitude, prefix, ok), prefix, ok)
	if f.sign == Always && !math.Signbit(x) {
		s = "+" + s
	}
	return f.separate(s, x)
}

// magnitude returns the logarithmic magnitude of x under the scaling
// policy: base 2 for binary scaling, base 10 otherwise.
// Zero maps to magnitude 0, as its logarithm is undefined.
// The magnitude is kept as an exact real number, not floored: for values
// in [1000, 1024) the fractional part decides whether the binary bucket
// arithmetic lands below or above the Ki boundary.
func (s Scaling) magnitude(x float64) float64 {
	if x == 0 {
		return 0
	}
	if s.mode == scaleBinary {
		return log2(math.Abs(x))
	}
	return log10(math.Abs(x))
}

// places returns the number of fractional digits to render, derived from
// the scaling mode, the rounding mode, and the magnitude, floored at 0.
func (f Formatter) places(magnitude float64, prefix Prefix, ok bool) int {
	p := f.rounding.prec
	var n int
	switch f.scaling.mode {
	case scaleBinary:
		// Binary buckets are 10 magnitudes wide; the fractional digit
		// count lives in decimal space, so the bucket bound and the
		// offset within the bucket convert through log10(2^m).
		switch {
		case f.rounding.mode == roundMagnitude && ok:
			n = int(math.Floor(math.Log10(math.Pow(2, float64(prefix.Min()))))) - p - 1
		case f.rounding.mode == roundMagnitude:
			n = int(math.Floor(magnitude))
		case ok:
			n = -int(math.Floor(math.Log10(math.Pow(2, magnitude-float64(prefix.Min()))))) + p - 1
		default:
			n = p - 1
		}
	case scaleDecimal:
		switch {
		case f.rounding.mode == roundMagnitude && ok:
			n = prefix.Min() - p
		case f.rounding.mode == roundMagnitude:
			n = int(math.Floor(magnitude))
		case ok:
			n = -int(math.Floor(magnitude-float64(prefix.Min()))) + p - 1
		default:
			n = p - 1
		}
	case scaleNone:
		if f.rounding.mode == roundMagnitude {
			n = -p
		} else {
			n = -int(math.Floor(magnitude)) + p - 1
		}
	default: // scaleScientific
		if f.rounding.mode == roundMagnitude {
			n = int(math.Floor(magnitude))
		} else {
			n = p - 1
		}
	}
	if n < 0 {
		n = 0
	}
	return n
}

// render produces the unsigned-policy, internally-separated rendering of
// x: digits with the internal decimal mark, plus a unit prefix or a
// scientific notation suffix.
func (f Formatter) render(x, magnitude float64, places int, prefix Prefix, ok bool) string {
	switch f.scaling.mode {
	case scaleNone:
		return f.fixed(x, places)
	case scaleScientific:
		return f.scientific(x, magnitude, places, 10)
	case scaleBinary:
		if !ok {
			return f.scientific(x, magnitude, places, 2)
		}
		return f.scaled(x, places, 2, prefix)
	default: // scaleDecimal
		if !ok {
			return f.scientific(x, magnitude, places, 10)
		}
		return f.scaled(x, places, 10, prefix)
	}
}

// scaled divides x by base^(bucket lower bound) and appends the unit
// prefix symbol, spaced per policy. Trailing whitespace is trimmed to
// cover the empty symbol of the unscaled bucket.
func (f Formatter) scaled(x float64, places int, base float64, prefix Prefix) string {
	s := f.fixed(x/math.Pow(base, float64(prefix.Min())), places)
	if f.scaling.spaced {
		s += " "
	}
	return strings.TrimRight(s+prefix.Symbol(), " ")
}

// scientific renders x as "<mantissa> * <base>^(<exponent>)" with the
// exponent at floor(magnitude).
// The magnitude passed in is the special-cased one, so zero renders as
// "0 * base^(0)" rather than propagating log(0).
func (f Formatter) scientific(x, magnitude float64, places, base int) string {
	exp := int(math.Floor(magnitude))
	mantissa := x / math.Pow(float64(base), float64(exp))
	return f.fixed(mantissa, places) + expMark + strconv.Itoa(base) + "^(" + strconv.Itoa(exp) + ")"
}

// fixed renders x with the given number of fractional digits and trims
// trailing fractional zeros when the policy asks for it.
func (f Formatter) fixed(x float64, places int) string {
	s := strconv.FormatFloat(x, 'f', places, 64)
	if !f.keepZeros && strings.Contains(s, decimalMark) {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, decimalMark)
	}
	return s
}

// separate inserts group separator placeholders every 3 digits left of
// the anchor and substitutes the configured separator glyphs for the
// internal marks. The anchor is the decimal mark if present, else the
// scientific suffix, else one past the last digit; grouping therefore
// never reaches into an exponent. A separator is never inserted before
// the leading digit.
func (f Formatter) separate(s string, x float64) string {
	if f.groupSep != "" {
		first := strings.IndexAny(s, digits)
		if first < 0 {
			panic(fmt.Sprintf("formatting %v: no digit in %q", x, s))
		}
		earliest := first + 1
		i := strings.Index(s, decimalMark)
		if i < 0 {
			if j := strings.Index(s, expMark); j >= 0 {
				i = j
			} else {
				i = strings.LastIndexAny(s, digits) + 1
			}
		}
		for earliest+3 <= i {
			i -= 3
			s = s[:i] + groupMark + s[i:]
		}
	}
	s = strings.ReplaceAll(s, decimalMark, f.decSep)
	s = strings.ReplaceAll(s, groupMark, f.groupSep)
	return s
}
