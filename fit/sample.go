/*
DESCRIPTION
  sample.go provides the Sample and Samples types which hold the (x, y) data
  that basis families are fitted to.

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
	"gonum.org/v1/gonum/floats"
)

// Sample is a single observation of y = f(x).
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Samples is an ordered set of observations. Order is insertion order and
// only matters for display; fitting does not depend on it.
type Samples []Sample

// XY returns the x and y values of s as separate slices.
func (s Samples) XY() (x, y []float64) {
	x = make([]float64, len(s))
	y = make([]float64, len(s))
	for i, p := range s {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

// Domain returns the smallest and largest x value in s. s must not be empty.
func (s Samples) Domain() Domain {
	x, _ := s.XY()
	return Domain{Min: floats.Min(x), Max: floats.Max(x)}
}

// Copy returns a copy of s that shares no memory with it.
func (s Samples) Copy() Samples {
	c := make(Samples, len(s))
	copy(c, s)
	return c
}

// Domain is the closed x interval covered by a sample set. Families that
// rescale x (Chebyshev, Trigonometric, Fourier) keep the domain they were
// fitted over so that predictions use the same transform.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width returns Max-Min.
func (d Domain) Width() float64 { return d.Max - d.Min }

// Degenerate reports whether the domain has zero width.
func (d Domain) Degenerate() bool { return d.Width() == 0 }
