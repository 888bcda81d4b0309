/*
DESCRIPTION
  metrics.go provides goodness of fit metrics for a prediction function over
  a sample set.

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
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics holds goodness of fit measures. R2 is NaN or ±Inf when every y is
// equal, since the total sum of squares is then zero.
type Metrics struct {
	SSE      float64 // Sum of squared errors.
	R2       float64 // Coefficient of determination.
	RMSE     float64 // Root mean square error.
	MaxError float64 // Largest absolute residual.
}

// Compute returns the metrics of predict over s. s must not be empty.
func Compute(s Samples, predict func(float64) float64) Metrics {
	_, y := s.XY()
	meanY := stat.Mean(y, nil)

	var sse, sst, maxErr float64
	for _, p := range s {
		e := p.Y - predict(p.X)
		sse += e * e
		sst += (p.Y - meanY) * (p.Y - meanY)
		maxErr = math.Max(maxErr, math.Abs(e))
	}
	return Metrics{
		SSE:      sse,
		R2:       1 - sse/sst,
		RMSE:     math.Sqrt(sse / float64(len(s))),
		MaxError: maxErr,
	}
}

// Residuals returns y − predict(x) for each sample in s.
func Residuals(s Samples, predict func(float64) float64) []float64 {
	r := make([]float64, len(s))
	for i, p := range s {
		r[i] = p.Y - predict(p.X)
	}
	return r
}

// MarshalJSON implements json.Marshaler. Non-finite values, which JSON
// cannot represent, are written as null.
func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SSE      *float64 `json:"sse"`
		R2       *float64 `json:"r2"`
		RMSE     *float64 `json:"rmse"`
		MaxError *float64 `json:"maxError"`
	}{finitePtr(m.SSE), finitePtr(m.R2), finitePtr(m.RMSE), finitePtr(m.MaxError)})
}

func finitePtr(v float64) *float64 {
	if !finite(v) {
		return nil
	}
	return &v
}
