/*
DESCRIPTION
  model.go defines the Model interface satisfied by every fitted basis
  expansion, and the design matrix of a family over a sample set.

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

// Model is a fitted weighted sum of basis functions. Implementations are
// small value types holding their coefficients and any domain transform, so
// they can be copied and shared freely.
type Model interface {
	// Predict evaluates the model at x.
	Predict(x float64) float64

	// Spec returns the family and order the model was fitted with.
	Spec() Spec

	// Coefficients returns a copy of the model's coefficients, ordered to
	// match the columns of DesignMatrix for the model's Spec.
	Coefficients() []float64
}

// DesignMatrix returns the len(s)×spec.Dim() matrix whose entry (i, j) is
// basis function j of spec evaluated at s[i].X. For any fitted model m,
// DesignMatrix(s, m.Spec()) times m.Coefficients() gives m's predictions
// at the sample x values.
func DesignMatrix(s Samples, spec Spec) (*mat.Dense, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInsufficientData)
	}
	x, _ := s.XY()
	d := s.Domain()
	if spec.Family != LinearFamily && spec.Family != PolynomialFamily && d.Degenerate() {
		return nil, fmt.Errorf("%w: all x equal %v", ErrDegenerateDomain, d.Min)
	}

	switch spec.Family {
	case LinearFamily:
		return vandermonde(x, 1), nil
	case PolynomialFamily:
		return vandermonde(x, spec.Order), nil
	case ChebyshevFamily:
		a := mat.NewDense(len(x), spec.Dim(), nil)
		for i, v := range x {
			a.SetRow(i, chebyshevRow(chebyshevScale(v, d), spec.Order))
		}
		return a, nil
	case TrigonometricFamily:
		return trigDesign(x, spec.Order, omega(d)), nil
	case FourierFamily:
		a := mat.NewDense(len(x), spec.Dim(), nil)
		for i, v := range x {
			a.SetRow(i, fourierRow(theta(v, d), spec.Order))
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedMethod, spec.Family)
	}
}

func copyOf(c []float64) []float64 {
	return append([]float64(nil), c...)
}
