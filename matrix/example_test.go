// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/exactmat/matrix"
)

// ExampleRREF reduces a 3×4 system and reports its pivot columns.
func ExampleRREF() {
	a, _ := matrix.NewDenseFromInts([][]int64{
		{1, 2, -1, -4},
		{2, 3, -1, -11},
		{-2, 0, -3, 22},
	})

	r, pivots, _ := matrix.RREFWithPivots(a)
	fmt.Print(r)
	fmt.Println("pivots:", pivots)

	// Output:
	// [1, 0, 0, -8]
	// [0, 1, 0, 1]
	// [0, 0, 1, -2]
	// pivots: [0 1 2]
}

// ExampleInverse inverts exactly and checks the product.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromInts([][]int64{{4, 7}, {2, 6}})

	inv, _ := matrix.Inverse(a)
	ok, _ := matrix.VerifyInverse(a, inv)
	fmt.Print(inv)
	fmt.Print(matrix.Format(inv, matrix.WithDelimiter(" ")))
	fmt.Println("A×A⁻¹ = I:", ok)

	// Output:
	// [3/5, -7/10]
	// [-1/5, 2/5]
	// 0.6 -0.7
	// -0.2 0.4
	// A×A⁻¹ = I: true
}

// ExampleDeterminant compares the cofactor expansion with elimination.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFromInts([][]int64{{1, -4, 2}, {-2, 8, -9}, {-1, 7, 0}})

	cof, _ := matrix.Determinant(a)
	elim, _ := matrix.DeterminantByElimination(a)
	fmt.Println(cof, elim)

	// Output:
	// 15 15
}

// ExampleIsLinearlyIndependent tests column sets of different shapes.
func ExampleIsLinearlyIndependent() {
	tall, _ := matrix.NewDenseFromInts([][]int64{{1, 0}, {0, 1}, {1, 1}})
	wide, _ := matrix.NewDenseFromInts([][]int64{{1, 0, 1}, {0, 1, 1}})

	a, _ := matrix.IsLinearlyIndependent(tall)
	b, _ := matrix.IsLinearlyIndependent(wide)
	fmt.Println(a, b)

	// Output:
	// true false
}
