// SPDX-License-Identifier: MIT

// Command exactmat runs exact matrix operations from the command line.
//
//	exactmat rref  "1 -4 2; -2 8 -9; -1 7 0"
//	exactmat det   --elimination "1 2; 3 4"
//	exactmat inv   --exact "4 7; 2 6"
//	echo "1 0; 0 1; 1 1" | exactmat indep
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
	"github.com/spf13/cobra"
)

var errSingular = errors.New("exactmat: matrix is singular")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// printFlags are shared by every command that prints a matrix.
type printFlags struct {
	round int
	delim string
	exact bool
}

func (p *printFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.round, "round", matrix.DefaultRound, "decimal places in output")
	cmd.Flags().StringVar(&p.delim, "delim", matrix.DefaultDelimiter, "column delimiter in output")
	cmd.Flags().BoolVar(&p.exact, "exact", false, "print exact fractions instead of rounded decimals")
}

func (p *printFlags) write(w io.Writer, m matrix.Matrix) error {
	if p.exact {
		_, err := fmt.Fprint(w, m)
		return err
	}
	if p.round < 0 {
		return fmt.Errorf("--round must be >= 0, got %d", p.round)
	}
	if p.delim == "" {
		return errors.New("--delim must not be empty")
	}
	_, err := io.WriteString(w, matrix.Format(m, matrix.WithRound(p.round), matrix.WithDelimiter(p.delim)))

	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "exactmat",
		Short:        "Exact rational matrix operations",
		Long:         "exactmat reads a matrix literal (rows split by ';' or newlines, cells by ',' or spaces)\nand prints the result of an exact Gauss–Jordan based operation.",
		SilenceUsage: true,
	}
	root.AddCommand(
		newMatrixCmd("rref", "Reduced row echelon form", matrix.RREF),
		newMatrixCmd("inv", "Inverse via RREF of [A | I]", invertChecked),
		newMatrixCmd("transpose", "Transpose", matrix.Transpose),
		newDetCmd(),
		newRankCmd(),
		newIndepCmd(),
	)

	return root
}

// invertChecked refuses singular input instead of printing a meaningless block.
func invertChecked(m matrix.Matrix) (*matrix.Dense, error) {
	inv, err := matrix.Inverse(m)
	if err != nil {
		return nil, err
	}
	ok, err := matrix.VerifyInverse(m, inv)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errSingular
	}

	return inv, nil
}

// newMatrixCmd builds a command for a unary operation returning a matrix.
func newMatrixCmd(use, short string, op func(matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	var pf printFlags
	cmd := &cobra.Command{
		Use:   use + " [matrix|-]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := op(m)
			if err != nil {
				return err
			}

			return pf.write(cmd.OutOrStdout(), res)
		},
	}
	pf.register(cmd)

	return cmd
}

func newDetCmd() *cobra.Command {
	var (
		elimination bool
		maxOrder    int
	)
	cmd := &cobra.Command{
		Use:   "det [matrix|-]",
		Short: "Determinant (cofactor expansion or elimination)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if maxOrder < 0 {
				return fmt.Errorf("--max-order must be >= 0, got %d", maxOrder)
			}
			var det scalar.Scalar
			if elimination {
				det, err = matrix.DeterminantByElimination(m)
			} else {
				det, err = matrix.Determinant(m, matrix.WithMaxCofactorOrder(maxOrder))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), det)

			return err
		},
	}
	cmd.Flags().BoolVar(&elimination, "elimination", false, "use O(n^3) elimination instead of cofactor expansion")
	cmd.Flags().IntVar(&maxOrder, "max-order", matrix.DefaultMaxCofactorOrder, "largest order for cofactor expansion (0 = unbounded)")

	return cmd
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [matrix|-]",
		Short: "Rank and pivot columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			pivots, err := matrix.PivotColumns(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "rank: %d\npivots: %v\n", len(pivots), pivots)

			return err
		},
	}
}

func newIndepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indep [matrix|-]",
		Short: "Report whether the columns are linearly independent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ok, err := matrix.IsLinearlyIndependent(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)

			return err
		},
	}
}
