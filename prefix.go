package scale

// Prefix represents a unit prefix: a half-open magnitude interval
// [Prefix.Min, Prefix.Max) mapped to a display symbol.
// The zero value is an empty interval that contains no magnitude.
//
// Prefixes live in two static in-memory tables, one for [SI prefixes]
// (decimal, steps of 3) and one for [binary prefixes] (steps of 10).
// Within each table the intervals are contiguous and non-overlapping, so
// a magnitude matches at most one prefix. Magnitudes outside the covered
// range have no match, which callers resolve with scientific notation.
//
// [SI prefixes]: https://en.wikipedia.org/wiki/Metric_prefix
// [binary prefixes]: https://en.wikipedia.org/wiki/Binary_prefix
type Prefix struct {
	lower  int    // inclusive lower bound magnitude
	upper  int    // exclusive upper bound magnitude
	symbol string // display symbol, may be empty
}

var binaryPrefixes = [...]Prefix{
	{0, 10, ""},
	{10, 20, "Ki"},
	{20, 30, "Mi"},
	{30, 40, "Gi"},
	{40, 50, "Ti"},
	{50, 60, "Pi"},
	{60, 70, "Ei"},
	{70, 80, "Zi"},
	{80, 90, "Yi"},
}

var decimalPrefixes = [...]Prefix{
	{-30, -27, "q"},
	{-27, -24, "r"},
	{-24, -21, "y"},
	{-21, -18, "z"},
	{-18, -15, "a"},
	{-15, -12, "f"},
	{-12, -9, "p"},
	{-9, -6, "n"},
	{-6, -3, "µ"},
	{-3, 0, "m"},
	{0, 3, ""},
	{3, 6, "k"},
	{6, 9, "M"},
	{9, 12, "G"},
	{12, 15, "T"},
	{15, 18, "P"},
	{18, 21, "E"},
	{21, 24, "Z"},
	{24, 27, "Y"},
	{27, 30, "R"},
	{30, 33, "Q"},
}

// LookupDecimalPrefix returns the SI prefix whose interval contains the
// given base-10 magnitude.
// The second return value is false if the magnitude lies outside the
// table, that is, outside [-30, 33).
func LookupDecimalPrefix(magnitude float64) (Prefix, bool) {
	return lookupPrefix(decimalPrefixes[:], magnitude)
}

// LookupBinaryPrefix returns the binary prefix whose interval contains
// the given base-2 magnitude.
// The second return value is false if the magnitude lies outside the
// table, that is, outside [0, 90).
func LookupBinaryPrefix(magnitude float64) (Prefix, bool) {
	return lookupPrefix(binaryPrefixes[:], magnitude)
}

func lookupPrefix(table []Prefix, magnitude float64) (Prefix, bool) {
	for _, p := range table {
		if p.Contains(magnitude) {
			return p, true
		}
	}
	return Prefix{}, false
}

// Contains returns true if the magnitude lies within the half-open
// interval of the prefix.
func (p Prefix) Contains(magnitude float64) bool {
	return float64(p.lower) <= magnitude && magnitude < float64(p.upper)
}

// Min returns the inclusive lower bound magnitude of the prefix.
// A value scaled for display is divided by base^Min.
func (p Prefix) Min() int {
	return p.lower
}

// Max returns the exclusive upper bound magnitude of the prefix.
func (p Prefix) Max() int {
	return p.upper
}

// Symbol returns the display symbol of the prefix.
// The symbol of the unscaled prefix is empty.
func (p Prefix) Symbol() string {
	return p.symbol
}

// String method implements the [fmt.Stringer] interface and returns
// the symbol of the prefix.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Prefix) String() string {
	return p.symbol
}
