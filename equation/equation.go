/*
DESCRIPTION
  equation.go provides human readable renderings of fitted models, kept
  apart from the numerical code in package fit.

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

// Package equation renders fitted models as equation strings and labelled
// coefficient lists for display.
package equation

import (
	"fmt"
	"math"
	"strings"

	"github.com/ausocean/approx/fit"
)

// fourierCutoff is the magnitude at or below which Fourier terms are left
// out of the equation. Predictions still use them.
const fourierCutoff = 0.001

// Format returns the equation of m, e.g. "y = 1.9886x + 0.0400".
func Format(m fit.Model) string {
	switch m := m.(type) {
	case fit.LinearModel:
		sign, abs := split(m.Intercept)
		return fmt.Sprintf("y = %.4fx %s %.4f", m.Slope, sign, abs)
	case fit.PolynomialModel:
		return series(m.Coeffs, func(i int) string {
			switch i {
			case 1:
				return "x"
			default:
				return fmt.Sprintf("x^%d", i)
			}
		})
	case fit.ChebyshevModel:
		return series(m.Coeffs, func(i int) string { return fmt.Sprintf("T%d(x)", i) })
	case fit.TrigonometricModel:
		return trig(m)
	case fit.FourierModel:
		return fourier(m)
	default:
		return fmt.Sprintf("y = f(x) [%T]", m)
	}
}

// series renders c[0] bare followed by ± |c[i]|·basis(i) for i ≥ 1.
func series(c []float64, basis func(i int) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "y = %.4f", c[0])
	for i := 1; i < len(c); i++ {
		sign, abs := split(c[i])
		fmt.Fprintf(&b, " %s %.4f%s", sign, abs, basis(i))
	}
	return b.String()
}

func trig(m fit.TrigonometricModel) string {
	c := m.Coeffs
	var b strings.Builder
	fmt.Fprintf(&b, "y = %.4f", c[0])
	for k := 1; k <= m.Harmonics(); k++ {
		arg := "ωx"
		if k > 1 {
			arg = fmt.Sprintf("%dωx", k)
		}
		sign, abs := split(c[2*k-1])
		fmt.Fprintf(&b, " %s %.4fcos(%s)", sign, abs, arg)
		sign, abs = split(c[2*k])
		fmt.Fprintf(&b, " %s %.4fsin(%s)", sign, abs, arg)
	}
	fmt.Fprintf(&b, ", ω = %.4f", m.Omega())
	return b.String()
}

func fourier(m fit.FourierModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "y = %.3f", m.A[0]/2)
	for k := 1; k <= m.Terms(); k++ {
		if math.Abs(m.A[k]) > fourierCutoff {
			fmt.Fprintf(&b, " %s%.3fcos(%dx)", plus(m.A[k]), m.A[k], k)
		}
		if math.Abs(m.B[k]) > fourierCutoff {
			fmt.Fprintf(&b, " %s%.3fsin(%dx)", plus(m.B[k]), m.B[k], k)
		}
	}
	return b.String()
}

// split returns the sign of v as "+" or "-" and its magnitude.
func split(v float64) (string, float64) {
	if v < 0 {
		return "-", -v
	}
	return "+", v
}

// plus returns "+" for non-negative v; negative values carry their own sign.
func plus(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}
