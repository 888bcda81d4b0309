/*
DESCRIPTION
  solve.go provides a dense linear system solver using Gaussian elimination
  with partial pivoting, along with the design matrix and normal equation
  helpers used to build systems from samples.

AUTHORS
  The approx contributors

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve solves ax = b for x using Gaussian elimination with partial pivoting.
// a must be square and b must have as many rows as a. Neither is modified.
// ErrSingular is returned if, after pivoting, a pivot is zero or not finite,
// or if the solution is not finite.
//
// Power sum systems of shifted data, such as years, span many orders of
// magnitude yet solve accurately, so no relative pivot threshold is applied.
// Rank deficiency of a fitting problem is detected from its samples by Fit.
func Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c || r == 0 {
		return nil, fmt.Errorf("%w: matrix is %dx%d", ErrDimension, r, c)
	}
	if b.Len() != r {
		return nil, fmt.Errorf("%w: matrix is %dx%d, vector has length %d", ErrDimension, r, c, b.Len())
	}
	n := r

	// Augmented matrix [a|b], one slice per row so that rows can be swapped.
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, n+1)
		for j := 0; j < n; j++ {
			aug[i][j] = a.At(i, j)
		}
		aug[i][n] = b.AtVec(i)
	}

	for i := 0; i < n; i++ {
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if p := aug[i][i]; p == 0 || !finite(p) {
			return nil, fmt.Errorf("%w: pivot %d is %g", ErrSingular, i, p)
		}

		for k := i + 1; k < n; k++ {
			factor := aug[k][i] / aug[i][i]
			for j := i; j <= n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = aug[i][n]
		for j := i + 1; j < n; j++ {
			x[i] -= aug[i][j] * x[j]
		}
		x[i] /= aug[i][i]
		if !finite(x[i]) {
			return nil, fmt.Errorf("%w: solution element %d is %g", ErrSingular, i, x[i])
		}
	}
	return mat.NewVecDense(n, x), nil
}

// NormalEquations returns aᵀa and aᵀy, the system whose solution minimises
// ‖ac − y‖².
func NormalEquations(a mat.Matrix, y mat.Vector) (*mat.Dense, *mat.VecDense) {
	_, k := a.Dims()
	ata := mat.NewDense(k, k, nil)
	ata.Mul(a.T(), a)
	aty := mat.NewVecDense(k, nil)
	aty.MulVec(a.T(), y)
	return ata, aty
}

// vandermonde calculates the vandermonde matrix for x and the given degree.
func vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i := range x {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x[i] {
			v.Set(i, j, p)
		}
	}
	return v
}
