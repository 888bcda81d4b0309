/*
DESCRIPTION
  fit.go provides the fitting entry points, which validate a request and
  dispatch it to the basis family it names.

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

// Package fit provides discrete least-squares approximation of y = f(x) by
// linear, polynomial, Chebyshev, trigonometric and Fourier basis families,
// along with goodness of fit metrics for the resulting models.
//
// Every function in the package is pure: it reads only its arguments, so
// independent fits may run concurrently without coordination.
package fit

import (
	"fmt"
	"math"
)

// Fit fits the basis family described by spec to s. Requests are rejected
// before any computation if spec is invalid, s is too small for spec, s
// contains non-finite values or every sample has the same x.
func Fit(s Samples, spec Spec) (Model, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if n := spec.MinSamples(); len(s) < n {
		return nil, fmt.Errorf("%w: %s needs %d samples, have %d", ErrInsufficientData, spec.Name(), n, len(s))
	}
	for i, p := range s {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: sample %d is (%v, %v)", ErrNonFinite, i, p.X, p.Y)
		}
	}
	if d := s.Domain(); d.Degenerate() {
		return nil, fmt.Errorf("%w: all x equal %v", ErrDegenerateDomain, d.Min)
	}

	var (
		m   Model
		err error
	)
	switch spec.Family {
	case LinearFamily:
		m = fitLinear(s)
	case PolynomialFamily:
		m, err = fitPolynomial(s, spec.Order)
	case ChebyshevFamily:
		m = fitChebyshev(s, spec.Order)
	case TrigonometricFamily:
		m, err = fitTrigonometric(s, spec.Order)
	case FourierFamily:
		m = fitFourier(s, spec.Order)
	default:
		err = fmt.Errorf("%w: %v", ErrUnrecognizedMethod, spec.Family)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FitMethod fits the named method to s. An order of zero selects the
// method's default order.
func FitMethod(s Samples, m Method, order int) (Model, error) {
	spec, err := m.Spec(order)
	if err != nil {
		return nil, err
	}
	return Fit(s, spec)
}

// distinctX returns the number of distinct x values in s.
func distinctX(s Samples) int {
	seen := make(map[float64]struct{}, len(s))
	for _, p := range s {
		seen[p.X] = struct{}{}
	}
	return len(seen)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
