/*
DESCRIPTION
  poly.go provides least-squares polynomial fitting using normal equations
  built directly from power sums of the samples.

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

	"gonum.org/v1/gonum/mat"
)

// PolynomialModel is y = Σ Coeffs[i]·xⁱ.
type PolynomialModel struct {
	Coeffs []float64
}

// Predict implements Model using Horner's rule.
func (m PolynomialModel) Predict(x float64) float64 {
	var y float64
	for i := len(m.Coeffs) - 1; i >= 0; i-- {
		y = y*x + m.Coeffs[i]
	}
	return y
}

// Spec implements Model.
func (m PolynomialModel) Spec() Spec {
	return Spec{Family: PolynomialFamily, Order: len(m.Coeffs) - 1}
}

// Coefficients implements Model.
func (m PolynomialModel) Coefficients() []float64 { return copyOf(m.Coeffs) }

// polySystem builds the (d+1)×(d+1) normal equations for a monomial basis
// of degree d: a[i][j] = Σ x^(i+j) and b[i] = Σ xⁱ·y.
func polySystem(s Samples, d int) (*mat.Dense, *mat.VecDense) {
	k := d + 1
	moments := make([]float64, 2*d+1)
	rhs := make([]float64, k)
	for _, p := range s {
		pow := 1.0
		for i := range moments {
			moments[i] += pow
			if i < k {
				rhs[i] += pow * p.Y
			}
			pow *= p.X
		}
	}

	a := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a.Set(i, j, moments[i+j])
		}
	}
	return a, mat.NewVecDense(k, rhs)
}

// fitPolynomial fits a degree d polynomial by solving the power sum normal
// equations. The system is ill-conditioned for large d; callers keep d small.
func fitPolynomial(s Samples, d int) (PolynomialModel, error) {
	if n := distinctX(s); n <= d {
		return PolynomialModel{}, fmt.Errorf("%w: degree %d needs %d distinct x, have %d", ErrSingular, d, d+1, n)
	}
	a, b := polySystem(s, d)
	c, err := Solve(a, b)
	if err != nil {
		return PolynomialModel{}, fmt.Errorf("could not solve degree %d normal equations: %w", d, err)
	}
	return PolynomialModel{Coeffs: mat.Col(nil, 0, c)}, nil
}
