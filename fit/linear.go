/*
DESCRIPTION
  linear.go provides the closed form least-squares straight line fit.

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

// LinearModel is the line y = Slope·x + Intercept.
type LinearModel struct {
	Slope     float64
	Intercept float64
}

// Predict implements Model.
func (m LinearModel) Predict(x float64) float64 { return m.Slope*x + m.Intercept }

// Spec implements Model.
func (m LinearModel) Spec() Spec { return Spec{Family: LinearFamily} }

// Coefficients implements Model; the result is {Intercept, Slope}.
func (m LinearModel) Coefficients() []float64 { return []float64{m.Intercept, m.Slope} }

// fitLinear fits a line using the normal equation sums Σx, Σy, Σxy and Σx²
// accumulated in one pass. If every x is equal the slope is NaN.
func fitLinear(s Samples) LinearModel {
	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range s {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}
	n := float64(len(s))
	a := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	b := (sumY - a*sumX) / n
	return LinearModel{Slope: a, Intercept: b}
}
