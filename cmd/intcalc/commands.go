// Copyright 2026 go-intmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/numgo/go-intmath/intmath"
)

// unaryOp describes one of the single-argument operations exposed as a
// subcommand. Unlike the library, which panics on domain violations,
// the CLI validates first: a negative or zero operand typed by a user
// is an input error, not a logic error.
type unaryOp struct {
	name          string
	short         string
	needsPositive bool
	fn            func(uint64) uint64
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intcalc",
		Short: "Floored integer roots and logarithms",
		Long: `intcalc computes floored square roots, cube roots and logarithms
of non-negative integers without leaving the integer domain.`,
		SilenceUsage: true,
	}

	ops := []unaryOp{
		{name: "sqrt", short: "Floored square root", fn: func(v uint64) uint64 { return intmath.Sqrt(v) }},
		{name: "cbrt", short: "Floored cube root", fn: func(v uint64) uint64 { return intmath.Cbrt(v) }},
		{name: "log2", short: "Floored base-2 logarithm", needsPositive: true, fn: func(v uint64) uint64 { return intmath.Log2(v) }},
		{name: "log10", short: "Floored base-10 logarithm", needsPositive: true, fn: func(v uint64) uint64 { return intmath.Log10(v) }},
		{name: "ln", short: "Floored natural logarithm", needsPositive: true, fn: func(v uint64) uint64 { return intmath.Ln(v) }},
	}
	for _, op := range ops {
		cmd.AddCommand(newUnaryCommand(op))
	}
	cmd.AddCommand(newLogCommand())

	return cmd
}

func newUnaryCommand(op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:          op.name + " <value>",
		Short:        op.short,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseOperand(args[0], op.needsPositive)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op.fn(v))
			return nil
		},
	}
}

func newLogCommand() *cobra.Command {
	var base uint64

	cmd := &cobra.Command{
		Use:          "log <value>",
		Short:        "Floored logarithm in an arbitrary integer base",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if base < 2 {
				return fmt.Errorf("base must be at least 2, got %d", base)
			}
			v, err := parseOperand(args[0], true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), intmath.Log(v, base))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&base, "base", 10, "logarithm base (>= 2)")

	return cmd
}

func parseOperand(s string, needsPositive bool) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if _, signedErr := strconv.ParseInt(s, 10, 64); signedErr == nil {
			return 0, fmt.Errorf("value %s is negative: operations are defined for non-negative integers only", s)
		}
		return 0, fmt.Errorf("invalid value %q: not a 64-bit unsigned integer", s)
	}
	if needsPositive && v == 0 {
		return 0, fmt.Errorf("logarithm of 0 is undefined")
	}
	return v, nil
}
