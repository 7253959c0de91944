package scale

import (
	"math"

	"github.com/govalues/decimal"
)

// FormatDecimal renders a [decimal.Decimal] value through the same
// pipeline as [Formatter.Format], via its nearest binary floating-point
// number.
//
// This conversion may lose data, as float64 has a smaller precision than
// the decimal type; the loss is confined to digits the rounding policy
// discards in all practical configurations.
func (f Formatter) FormatDecimal(d decimal.Decimal) string {
	x, ok := d.Float64()
	if !ok {
		return f.Format(math.NaN())
	}
	return f.Format(x)
}
