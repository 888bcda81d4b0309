/*
DESCRIPTION
  fourier.go provides approximation by a truncated Fourier series whose
  coefficients are discrete sums over the samples.

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

import "math"

// FourierModel is
//
//	y = A[0]/2 + Σₖ A[k]·cos(kθ) + B[k]·sin(kθ),  θ = 2π(x − Domain.Min)/Domain.Width()
//
// A and B have length terms+1; B[0] is always zero.
type FourierModel struct {
	A, B   []float64
	Domain Domain
}

// Predict implements Model.
func (m FourierModel) Predict(x float64) float64 {
	t := theta(x, m.Domain)
	y := m.A[0] / 2
	for k := 1; k < len(m.A); k++ {
		s, c := math.Sincos(float64(k) * t)
		y += m.A[k]*c + m.B[k]*s
	}
	return y
}

// Spec implements Model.
func (m FourierModel) Spec() Spec {
	return Spec{Family: FourierFamily, Order: m.Terms()}
}

// Coefficients implements Model; the result is {a₀, a₁, b₁, a₂, b₂, …}.
func (m FourierModel) Coefficients() []float64 {
	c := make([]float64, 1+2*m.Terms())
	c[0] = m.A[0]
	for k := 1; k <= m.Terms(); k++ {
		c[2*k-1] = m.A[k]
		c[2*k] = m.B[k]
	}
	return c
}

// Terms returns the number of harmonics in the series.
func (m FourierModel) Terms() int { return len(m.A) - 1 }

// theta maps x from d onto [0, 2π].
func theta(x float64, d Domain) float64 {
	return 2 * math.Pi * (x - d.Min) / d.Width()
}

// fourierRow returns {1/2, cos θ, sin θ, …, cos nθ, sin nθ}.
func fourierRow(t float64, n int) []float64 {
	row := make([]float64, 1+2*n)
	row[0] = 0.5
	for k := 1; k <= n; k++ {
		s, c := math.Sincos(float64(k) * t)
		row[2*k-1] = c
		row[2*k] = s
	}
	return row
}

// fitFourier computes a₀ = (2/m)Σy, aₖ = (2/m)Σ y·cos(kθ) and
// bₖ = (2/m)Σ y·sin(kθ). This approximates the continuous inner products by
// sums over the samples and is not a least-squares solution.
func fitFourier(s Samples, n int) FourierModel {
	d := s.Domain()
	a := make([]float64, n+1)
	b := make([]float64, n+1)
	for _, p := range s {
		t := theta(p.X, d)
		a[0] += p.Y
		for k := 1; k <= n; k++ {
			sin, cos := math.Sincos(float64(k) * t)
			a[k] += p.Y * cos
			b[k] += p.Y * sin
		}
	}
	scale := 2 / float64(len(s))
	for k := range a {
		a[k] *= scale
		b[k] *= scale
	}
	return FourierModel{A: a, B: b, Domain: d}
}
