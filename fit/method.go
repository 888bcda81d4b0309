/*
DESCRIPTION
  method.go defines the basis families, the Spec describing a family and its
  order, and the named fitting methods offered to callers.

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
	"strings"
)

// Family identifies a parametric set of basis functions.
type Family int

// Supported basis families.
const (
	LinearFamily Family = iota
	PolynomialFamily
	ChebyshevFamily
	TrigonometricFamily
	FourierFamily
)

// MaxOrder is the largest order accepted for any family.
const MaxOrder = 10

func (f Family) String() string {
	switch f {
	case LinearFamily:
		return "linear"
	case PolynomialFamily:
		return "polynomial"
	case ChebyshevFamily:
		return "chebyshev"
	case TrigonometricFamily:
		return "trigonometric"
	case FourierFamily:
		return "fourier"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Spec selects a basis family and its order. Order is the degree for the
// polynomial and Chebyshev families and the number of harmonics for the
// trigonometric and Fourier families. It is ignored for LinearFamily.
type Spec struct {
	Family Family `json:"family"`
	Order  int    `json:"order"`
}

// Validate checks that s names a known family with an order it supports.
func (s Spec) Validate() error {
	min := 1
	switch s.Family {
	case LinearFamily:
		return nil
	case ChebyshevFamily:
		min = 0
	case PolynomialFamily, TrigonometricFamily, FourierFamily:
	default:
		return fmt.Errorf("%w: %v", ErrUnrecognizedMethod, s.Family)
	}
	if s.Order < min || s.Order > MaxOrder {
		return fmt.Errorf("%w: %v order %d outside [%d, %d]", ErrUnrecognizedMethod, s.Family, s.Order, min, MaxOrder)
	}
	return nil
}

// Dim returns the number of basis functions, and therefore coefficients, of s.
func (s Spec) Dim() int {
	switch s.Family {
	case LinearFamily:
		return 2
	case PolynomialFamily, ChebyshevFamily:
		return s.Order + 1
	case TrigonometricFamily, FourierFamily:
		return 1 + 2*s.Order
	default:
		return 0
	}
}

// MinSamples returns the fewest samples a fit of s needs. Families solved
// through a linear system need at least as many samples as unknowns.
func (s Spec) MinSamples() int {
	n := 2
	switch s.Family {
	case PolynomialFamily, TrigonometricFamily:
		if d := s.Dim(); d > n {
			n = d
		}
	}
	return n
}

// Name returns the display name of s, e.g. "Quadratic" or "Chebyshev".
func (s Spec) Name() string {
	switch s.Family {
	case LinearFamily:
		return "Linear"
	case PolynomialFamily:
		switch s.Order {
		case 2:
			return "Quadratic"
		case 3:
			return "Cubic"
		case 4:
			return "Polynomial Degree 4"
		default:
			return fmt.Sprintf("Polynomial deg-%d", s.Order)
		}
	case ChebyshevFamily:
		return "Chebyshev"
	case TrigonometricFamily:
		return "Trigonometric"
	case FourierFamily:
		return "Fourier"
	default:
		return s.Family.String()
	}
}

// Method is a named fitting method as chosen by a user.
type Method int

// Fitting methods.
const (
	Linear Method = iota
	Quadratic
	Cubic
	Poly4
	Polynomial
	Chebyshev
	Trigonometric
	Fourier
)

// Default orders used when a caller does not give one.
const (
	DefaultPolynomialOrder    = 2
	DefaultChebyshevOrder     = 3
	DefaultTrigonometricOrder = 2
	DefaultFourierOrder       = 3
)

var methodNames = map[Method]string{
	Linear:        "linear",
	Quadratic:     "quadratic",
	Cubic:         "cubic",
	Poly4:         "poly4",
	Polynomial:    "polynomial",
	Chebyshev:     "chebyshev",
	Trigonometric: "trigonometric",
	Fourier:       "fourier",
}

// Methods returns every method in presentation order.
func Methods() []Method {
	return []Method{Linear, Quadratic, Cubic, Poly4, Polynomial, Chebyshev, Trigonometric, Fourier}
}

// MethodNames returns the names accepted by ParseMethod.
func MethodNames() []string {
	ms := Methods()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return names
}

func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod returns the Method with the given name. Matching ignores case
// and surrounding space.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedMethod, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Spec returns the Spec for m. An order of zero selects the method's default;
// order is ignored by the fixed degree methods.
func (m Method) Spec(order int) (Spec, error) {
	withDefault := func(def int) int {
		if order == 0 {
			return def
		}
		return order
	}

	var s Spec
	switch m {
	case Linear:
		s = Spec{Family: LinearFamily}
	case Quadratic:
		s = Spec{Family: PolynomialFamily, Order: 2}
	case Cubic:
		s = Spec{Family: PolynomialFamily, Order: 3}
	case Poly4:
		s = Spec{Family: PolynomialFamily, Order: 4}
	case Polynomial:
		s = Spec{Family: PolynomialFamily, Order: withDefault(DefaultPolynomialOrder)}
	case Chebyshev:
		s = Spec{Family: ChebyshevFamily, Order: withDefault(DefaultChebyshevOrder)}
	case Trigonometric:
		s = Spec{Family: TrigonometricFamily, Order: withDefault(DefaultTrigonometricOrder)}
	case Fourier:
		s = Spec{Family: FourierFamily, Order: withDefault(DefaultFourierOrder)}
	default:
		return Spec{}, fmt.Errorf("%w: %v", ErrUnrecognizedMethod, m)
	}
	return s, s.Validate()
}
