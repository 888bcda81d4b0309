/*
DESCRIPTION
  trig.go provides true least-squares fitting of a trigonometric polynomial
  whose fundamental period is the width of the sample domain.

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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TrigonometricModel is
//
//	y = c₀ + Σₖ aₖ·cos(kωx) + bₖ·sin(kωx),  ω = 2π/Domain.Width()
//
// with Coeffs ordered {c₀, a₁, b₁, a₂, b₂, …}.
type TrigonometricModel struct {
	Coeffs []float64
	Domain Domain
}

// Predict implements Model.
func (m TrigonometricModel) Predict(x float64) float64 {
	return floats.Dot(m.Coeffs, trigRow(x, m.Harmonics(), m.Omega()))
}

// Spec implements Model.
func (m TrigonometricModel) Spec() Spec {
	return Spec{Family: TrigonometricFamily, Order: m.Harmonics()}
}

// Coefficients implements Model.
func (m TrigonometricModel) Coefficients() []float64 { return copyOf(m.Coeffs) }

// Harmonics returns the number of cos/sin pairs in the model.
func (m TrigonometricModel) Harmonics() int { return (len(m.Coeffs) - 1) / 2 }

// Omega returns the fundamental angular frequency 2π/period.
func (m TrigonometricModel) Omega() float64 { return omega(m.Domain) }

func omega(d Domain) float64 { return 2 * math.Pi / d.Width() }

// trigRow returns {1, cos(ωx), sin(ωx), …, cos(pωx), sin(pωx)}.
func trigRow(x float64, p int, w float64) []float64 {
	row := make([]float64, 1+2*p)
	row[0] = 1
	for k := 1; k <= p; k++ {
		s, c := math.Sincos(float64(k) * w * x)
		row[2*k-1] = c
		row[2*k] = s
	}
	return row
}

// trigDesign returns the m×(1+2p) design matrix for x.
func trigDesign(x []float64, p int, w float64) *mat.Dense {
	a := mat.NewDense(len(x), 1+2*p, nil)
	for i, v := range x {
		a.SetRow(i, trigRow(v, p, w))
	}
	return a
}

// fitTrigonometric builds the design matrix, forms the normal equations
// AᵀA c = Aᵀy and solves them.
func fitTrigonometric(s Samples, p int) (TrigonometricModel, error) {
	// The period is the domain width, so the end points share a phase.
	if n := distinctX(s) - 1; n < 1+2*p {
		return TrigonometricModel{}, fmt.Errorf("%w: %d harmonics need %d distinct phases, have %d", ErrSingular, p, 1+2*p, n)
	}
	d := s.Domain()
	x, y := s.XY()
	a := trigDesign(x, p, omega(d))
	ata, aty := NormalEquations(a, mat.NewVecDense(len(y), y))
	c, err := Solve(ata, aty)
	if err != nil {
		return TrigonometricModel{}, fmt.Errorf("could not solve %d harmonic normal equations: %w", p, err)
	}
	return TrigonometricModel{Coeffs: mat.Col(nil, 0, c), Domain: d}, nil
}
