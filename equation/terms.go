/*
DESCRIPTION
  terms.go provides labelled coefficient lists for tabular display.

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

package equation

import (
	"fmt"

	"github.com/ausocean/approx/fit"
)

// Term is one named coefficient of a model.
type Term struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Terms returns the coefficients of m with the labels used in its equation,
// in the order of m.Coefficients().
func Terms(m fit.Model) []Term {
	c := m.Coefficients()
	terms := make([]Term, len(c))
	for i, v := range c {
		terms[i] = Term{Label: label(m.Spec().Family, i), Value: v}
	}
	return terms
}

func label(f fit.Family, i int) string {
	switch f {
	case fit.LinearFamily:
		return []string{"b", "a"}[i]
	case fit.TrigonometricFamily, fit.FourierFamily:
		if i == 0 {
			if f == fit.FourierFamily {
				return "a0"
			}
			return "c0"
		}
		k := (i + 1) / 2
		if i%2 == 1 {
			return fmt.Sprintf("a%d", k)
		}
		return fmt.Sprintf("b%d", k)
	default:
		return fmt.Sprintf("c%d", i)
	}
}
