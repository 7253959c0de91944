package scale_test

import (
	"fmt"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/govalues/scale"
)

// In this example, calculation results of widely different magnitudes are
// rendered with one shared display policy.
func Example_calculationResults() {
	f := scale.New()
	fmt.Println(f.Format(456789))
	fmt.Println(f.Format(0.1))
	fmt.Println(f.Format(-1))
	fmt.Println(f.Format(999.97))
	// Output:
	// 456,8 k
	// 100,0 m
	// -1,000
	// 1,000 k
}

// In this example, data sizes are rendered with binary unit prefixes.
// Note the boundary: 1023 stays unscaled while 1024 gains a prefix.
func Example_dataSizes() {
	f := scale.New().WithScaling(scale.BinaryScaling(true))
	fmt.Println(f.Format(1023))
	fmt.Println(f.Format(1024))
	fmt.Println(f.Format(0.1))
	// Output:
	// 1.023
	// 1,000 Ki
	// 1,600 * 2^(-4)
}

// In this example, absolute counts are rendered without any scaling.
func Example_absoluteValues() {
	f := scale.New().
		WithScaling(scale.NoScaling).
		WithRounding(scale.Magnitude(0))
	fmt.Println(f.Format(0.1))
	fmt.Println(f.Format(1))
	fmt.Println(f.Format(1000))
	// Output:
	// 0
	// 1
	// 1.000
}

func ExampleFormat() {
	fmt.Println(scale.Format(456789))
	// Output: 456,8 k
}

func ExampleNew() {
	f := scale.New()
	fmt.Println(f.Format(1))
	// Output: 1,000
}

func ExampleFormatter_Format() {
	f := scale.New().WithRounding(scale.SignificantDigits(2))
	fmt.Println(f.Format(123))
	fmt.Println(f.Format(4.56))
	// Output:
	// 120
	// 4,6
}

func ExampleFormatter_WithRounding() {
	f := scale.New().WithScaling(scale.NoScaling)
	fmt.Println(f.WithRounding(scale.Magnitude(0)).Format(123.456))
	fmt.Println(f.WithRounding(scale.Magnitude(-1)).Format(123.456))
	fmt.Println(f.WithRounding(scale.SignificantDigits(2)).Format(123.456))
	// Output:
	// 123
	// 123,5
	// 120
}

func ExampleFormatter_WithScaling() {
	f := scale.New()
	fmt.Println(f.WithScaling(scale.DecimalScaling(true)).Format(1000))
	fmt.Println(f.WithScaling(scale.BinaryScaling(true)).Format(1024))
	fmt.Println(f.WithScaling(scale.NoScaling).Format(1000))
	fmt.Println(f.WithScaling(scale.ScientificScaling).Format(1000))
	// Output:
	// 1,000 k
	// 1,000 Ki
	// 1.000
	// 1,000 * 10^(3)
}

func ExampleFormatter_WithSign() {
	f := scale.New().WithSign(scale.Always)
	fmt.Println(f.Format(-1))
	fmt.Println(f.Format(0))
	fmt.Println(f.Format(1))
	// Output:
	// -1,000
	// +0,000
	// +1,000
}

func ExampleFormatter_WithSeparators() {
	f := scale.New().
		WithScaling(scale.NoScaling).
		WithRounding(scale.Magnitude(-2)).
		WithSeparators(" ", ".")
	fmt.Println(f.Format(1234.5))
	// Output: 1 234.50
}

func ExampleFormatter_WithTrailingZeros() {
	f := scale.New().WithTrailingZeros(false)
	fmt.Println(f.Format(0.1))
	fmt.Println(f.Format(1))
	// Output:
	// 100 m
	// 1
}

func ExampleFormatter_WithSink() {
	sink := scale.SinkFunc(func(msg string, _ ...zap.Field) {
		fmt.Println("warning:", msg)
	})
	f := scale.New().WithSink(sink).WithSeparators(",", ",")
	fmt.Println(f.Format(1))
	// Output:
	// warning: group and decimal separators are the same
	// 1,000
}

func ExampleFormatter_FormatDecimal() {
	f := scale.New()
	fmt.Println(f.FormatDecimal(decimal.MustParse("456789")))
	fmt.Println(f.FormatDecimal(decimal.MustParse("0.1")))
	// Output:
	// 456,8 k
	// 100,0 m
}

func ExampleRoundToMagnitude() {
	fmt.Println(scale.RoundToMagnitude(42.069, -2))
	fmt.Println(scale.RoundToMagnitude(42.069, 0))
	fmt.Println(scale.RoundToMagnitude(42.069, 1))
	fmt.Println(scale.RoundToMagnitude(1.5, 0))
	fmt.Println(scale.RoundToMagnitude(0.5, 0))
	// Output:
	// 42.07
	// 42
	// 40
	// 2
	// 0
}

func ExampleRoundToSignificant() {
	fmt.Println(scale.RoundToSignificant(123.45, 1))
	fmt.Println(scale.RoundToSignificant(123.45, 2))
	fmt.Println(scale.RoundToSignificant(123.45, 3))
	fmt.Println(scale.RoundToSignificant(123.45, 0))
	// Output:
	// 100
	// 120
	// 123
	// 0
}

func ExampleLookupDecimalPrefix() {
	p, ok := scale.LookupDecimalPrefix(4.5)
	fmt.Printf("%q %v\n", p.Symbol(), ok)
	p, ok = scale.LookupDecimalPrefix(33)
	fmt.Printf("%q %v\n", p.Symbol(), ok)
	// Output:
	// "k" true
	// "" false
}

func ExampleLookupBinaryPrefix() {
	p, ok := scale.LookupBinaryPrefix(15)
	fmt.Println(p.Min(), p.Max(), p.Symbol(), ok)
	// Output: 10 20 Ki true
}
