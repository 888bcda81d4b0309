/*
DESCRIPTION
  errors.go defines the errors returned by the fit package.

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

import "errors"

// Errors are returned wrapped with context; match them with errors.Is.
var (
	// ErrInsufficientData is returned when there are fewer samples than the
	// requested family needs.
	ErrInsufficientData = errors.New("fit: insufficient data")

	// ErrDegenerateDomain is returned when every sample has the same x value.
	ErrDegenerateDomain = errors.New("fit: degenerate domain")

	// ErrNonFinite is returned when a sample holds NaN or ±Inf.
	ErrNonFinite = errors.New("fit: non-finite sample")

	// ErrUnrecognizedMethod is returned for an unknown method or family, or
	// an order the family does not support.
	ErrUnrecognizedMethod = errors.New("fit: unrecognized method")

	// ErrSingular is returned when a system has no unique solution, either
	// because Solve meets a zero pivot or because the samples have too few
	// distinct x for the basis.
	ErrSingular = errors.New("fit: singular system")

	// ErrDimension is returned by Solve for a non-square matrix or a right
	// hand side of the wrong length.
	ErrDimension = errors.New("fit: dimension mismatch")
)
