/*
DESCRIPTION
  chebyshev.go provides approximation by Chebyshev polynomials of the first
  kind using a discrete projection of the samples onto each polynomial.

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

import "gonum.org/v1/gonum/floats"

// ChebyshevModel is y = Σ Coeffs[k]·T_k(t(x)) where t maps Domain onto
// [-1, 1]. Coeffs[0] is stored already halved.
type ChebyshevModel struct {
	Coeffs []float64
	Domain Domain
}

// Predict implements Model.
func (m ChebyshevModel) Predict(x float64) float64 {
	return floats.Dot(m.Coeffs, chebyshevRow(chebyshevScale(x, m.Domain), len(m.Coeffs)-1))
}

// Spec implements Model.
func (m ChebyshevModel) Spec() Spec {
	return Spec{Family: ChebyshevFamily, Order: len(m.Coeffs) - 1}
}

// Coefficients implements Model.
func (m ChebyshevModel) Coefficients() []float64 { return copyOf(m.Coeffs) }

// chebyshevScale maps x from d onto [-1, 1].
func chebyshevScale(x float64, d Domain) float64 {
	return 2*(x-d.Min)/d.Width() - 1
}

// chebyshevRow returns T_0(t) … T_degree(t) using the recurrence T₀ = 1,
// T₁ = t, T_n = 2t·T_{n-1} − T_{n-2}.
func chebyshevRow(t float64, degree int) []float64 {
	row := make([]float64, degree+1)
	row[0] = 1
	if degree > 0 {
		row[1] = t
	}
	for k := 2; k <= degree; k++ {
		row[k] = 2*t*row[k-1] - row[k-2]
	}
	return row
}

// fitChebyshev computes c_k = (2/m)·Σ y·T_k(t) and halves c_0. This is a
// discrete projection rather than an exact least-squares solution.
func fitChebyshev(s Samples, degree int) ChebyshevModel {
	d := s.Domain()
	c := make([]float64, degree+1)
	for _, p := range s {
		row := chebyshevRow(chebyshevScale(p.X, d), degree)
		for k := range c {
			c[k] += p.Y * row[k]
		}
	}
	scale := 2 / float64(len(s))
	for k := range c {
		c[k] *= scale
	}
	c[0] /= 2
	return ChebyshevModel{Coeffs: c, Domain: d}
}
