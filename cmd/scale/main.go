// Command scale formats numbers from its arguments or standard input,
// one per line, under a policy assembled from flags.
//
//	$ scale 456789
//	456,8 k
//	$ scale --scaling binary 1023 1024
//	1.023
//	1,000 Ki
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/scale"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "initializing logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		scaling     string
		spaced      bool
		significant int
		magnitude   int
		alwaysSign  bool
		group       string
		decimal     string
		trimZeros   bool
	)

	cmd := &cobra.Command{
		Use:   "scale [number...]",
		Short: "Round and scale numbers for human-readable display",
		Long: "Scale formats floating-point numbers under a configurable policy:\n" +
			"rounding precision, SI or binary unit prefixes, scientific notation,\n" +
			"sign display, and separator glyphs.\n\n" +
			"Numbers are read from the arguments, or from standard input when no\n" +
			"arguments are given, and written one per line to standard output.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := scale.New().WithSink(scale.NewZapSink(logger))

			switch scaling {
			case "decimal":
				f = f.WithScaling(scale.DecimalScaling(spaced))
			case "binary":
				f = f.WithScaling(scale.BinaryScaling(spaced))
			case "none":
				f = f.WithScaling(scale.NoScaling)
			case "scientific":
				f = f.WithScaling(scale.ScientificScaling)
			default:
				return fmt.Errorf("invalid --scaling %q: want decimal, binary, none, or scientific", scaling)
			}

			if cmd.Flags().Changed("magnitude") {
				if cmd.Flags().Changed("significant") {
					return fmt.Errorf("--magnitude and --significant are mutually exclusive")
				}
				f = f.WithRounding(scale.Magnitude(magnitude))
			} else {
				f = f.WithRounding(scale.SignificantDigits(significant))
			}

			if alwaysSign {
				f = f.WithSign(scale.Always)
			}
			f = f.WithSeparators(group, decimal).WithTrailingZeros(!trimZeros)

			if len(args) == 0 {
				return formatLines(cmd, f)
			}
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.Format(x))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scaling, "scaling", "decimal", "scaling mode: decimal, binary, none, or scientific")
	cmd.Flags().BoolVar(&spaced, "spaced", true, "separate the number and the unit prefix with a space")
	cmd.Flags().IntVar(&significant, "significant", 4, "round to N significant digits")
	cmd.Flags().IntVar(&magnitude, "magnitude", 0, "round to the digit at 10^N instead of significant digits")
	cmd.Flags().BoolVar(&alwaysSign, "always-sign", false, "show a sign on positive values too")
	cmd.Flags().StringVar(&group, "group", ".", "digit group separator, empty disables grouping")
	cmd.Flags().StringVar(&decimal, "decimal", ",", "decimal separator")
	cmd.Flags().BoolVar(&trimZeros, "trim-zeros", false, "trim trailing fractional zeros")

	return cmd
}

func formatLines(cmd *cobra.Command, f scale.Formatter) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", line, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.Format(x))
	}
	return sc.Err()
}
