package scale

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Formatter type represents a number formatting policy.
// Formatter is immutable: the With methods return modified copies, and
// formatting calls never change it, so a single Formatter is safe for
// concurrent use by multiple goroutines.
//
// The zero value is not useful; construct formatters with [New].
type Formatter struct {
	groupSep  string   // inserted between groups of 3 integer digits
	decSep    string   // separates integer and fractional digits
	rounding  Rounding // rounding policy applied before rendering
	scaling   Scaling  // magnitude scaling policy
	sign      Sign     // sign display policy
	keepZeros bool     // keep trailing fractional zeros
	sink      Sink     // receives configuration warnings
}

// New returns a formatter with the default policy: rounding to 4
// significant digits, spaced decimal scaling, a sign only on negative
// numbers, "." as the group separator, "," as the decimal separator,
// and trailing zeros kept.
func New() Formatter {
	return Formatter{
		groupSep:  ".",
		decSep:    ",",
		rounding:  SignificantDigits(4),
		scaling:   DecimalScaling(true),
		sign:      OnlyMinus,
		keepZeros: true,
		sink:      globalSink{},
	}
}

// Format renders x using the default policy.
// It is shorthand for New().Format(x).
func Format(x float64) string {
	return New().Format(x)
}

// WithSeparators returns a formatter with the given group and decimal
// separators.
// The group separator is inserted between groups of 3 digits before the
// decimal separator; an empty group separator disables grouping.
//
// WithSeparators warns through the formatter's [Sink] if the decimal
// separator is empty, if both separators are equal, or if a separator
// contains digit characters, as each produces ambiguous output.
// Warnings do not affect formatting; install a custom sink with
// [Formatter.WithSink] before calling WithSeparators to capture them.
func (f Formatter) WithSeparators(group, decimal string) Formatter {
	f.groupSep = group
	f.decSep = decimal
	switch {
	case decimal == "":
		f.sink.Warn("empty decimal separator may produce ambiguous output")
	case decimal == group:
		f.sink.Warn("group and decimal separators are the same",
			zap.String("separator", decimal))
	}
	if strings.ContainsAny(group, digits) || strings.ContainsAny(decimal, digits) {
		f.sink.Warn("separator contains digit characters",
			zap.String("group", group), zap.String("decimal", decimal))
	}
	return f
}

// WithRounding returns a formatter with the given rounding policy.
func (f Formatter) WithRounding(r Rounding) Formatter {
	f.rounding = r
	return f
}

// WithScaling returns a formatter with the given scaling policy.
func (f Formatter) WithScaling(s Scaling) Formatter {
	f.scaling = s
	return f
}

// WithSign returns a formatter with the given sign display policy.
func (f Formatter) WithSign(s Sign) Formatter {
	f.sign = s
	return f
}

// WithTrailingZeros returns a formatter that keeps trailing fractional
// zeros if keep is true, or trims them (and a then-bare decimal
// separator) if keep is false.
func (f Formatter) WithTrailingZeros(keep bool) Formatter {
	f.keepZeros = keep
	return f
}

// WithSink returns a formatter that reports configuration warnings to
// the given sink.
func (f Formatter) WithSink(s Sink) Formatter {
	f.sink = s
	return f
}

type roundingMode uint8

const (
	roundSignificant roundingMode = iota
	roundMagnitude
)

// Rounding selects how [Formatter.Format] rounds its input before
// rendering. Construct values with [Magnitude] or [SignificantDigits].
// The zero value rounds to 0 significant digits, which always yields 0.
type Rounding struct {
	mode roundingMode
	prec int
}

// Magnitude returns a rounding policy that rounds statically to the
// digit at 10^n. With n = 0 values round to whole numbers, with n = 1 to
// tens, with n = -1 to tenths.
func Magnitude(n int) Rounding {
	return Rounding{mode: roundMagnitude, prec: n}
}

// SignificantDigits returns a rounding policy that rounds dynamically to
// n significant digits, irrespective of magnitude.
// With n <= 0 every value rounds to 0.
func SignificantDigits(n int) Rounding {
	return Rounding{mode: roundSignificant, prec: n}
}

// apply rounds x under the policy.
func (r Rounding) apply(x float64) float64 {
	switch r.mode {
	case roundMagnitude:
		return RoundToMagnitude(x, r.prec)
	default:
		return RoundToSignificant(x, r.prec)
	}
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r.mode {
	case roundMagnitude:
		return "magnitude " + strconv.Itoa(r.prec)
	default:
		return strconv.Itoa(r.prec) + " significant digits"
	}
}

type scalingMode uint8

const (
	scaleDecimal scalingMode = iota
	scaleBinary
	scaleNone
	scaleScientific
)

// Scaling selects how [Formatter.Format] scales a value for display.
// Construct values with [DecimalScaling] or [BinaryScaling], or use
// [NoScaling] or [ScientificScaling] directly.
// The zero value is unspaced decimal scaling.
type Scaling struct {
	mode   scalingMode
	spaced bool
}

// DecimalScaling returns a scaling policy that scales in steps of
// 10^3 = 1000 through the SI unit prefixes, falling back to base-10
// scientific notation when no prefix covers the magnitude.
// If spaced is true, a space separates the number from the prefix.
func DecimalScaling(spaced bool) Scaling {
	return Scaling{mode: scaleDecimal, spaced: spaced}
}

// BinaryScaling returns a scaling policy that scales in steps of
// 2^10 = 1024 through the binary unit prefixes, falling back to base-2
// scientific notation when no prefix covers the magnitude.
// If spaced is true, a space separates the number from the prefix.
func BinaryScaling(spaced bool) Scaling {
	return Scaling{mode: scaleBinary, spaced: spaced}
}

// NoScaling is the scaling policy that renders values at their natural
// magnitude, with no unit prefix and no scientific fallback.
var NoScaling = Scaling{mode: scaleNone}

// ScientificScaling is the scaling policy that always renders values in
// base-10 scientific notation.
var ScientificScaling = Scaling{mode: scaleScientific}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Scaling) String() string {
	switch s.mode {
	case scaleBinary:
		return "binary"
	case scaleNone:
		return "none"
	case scaleScientific:
		return "scientific"
	default:
		return "decimal"
	}
}

// Sign selects when [Formatter.Format] displays a sign.
type Sign uint8

const (
	// OnlyMinus displays a sign only on negative values.
	OnlyMinus Sign = iota
	// Always displays a sign on every value, including positive zero.
	Always
)

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Sign) String() string {
	if s == Always {
		return "always"
	}
	return "only minus"
}
