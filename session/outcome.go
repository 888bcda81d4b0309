/*
DESCRIPTION
  outcome.go provides Outcome, the displayable result of one fit, and its
  construction from a fitted model.

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

package session

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/ausocean/approx/equation"
	"github.com/ausocean/approx/fit"
)

// Outcome is a fitted model together with everything needed to display it.
// Outcomes may be shared between callers and must not be modified.
type Outcome struct {
	Method       fit.Method      `json:"method"`
	Type         string          `json:"type"`
	Equation     string          `json:"equation"`
	Coefficients []equation.Term `json:"coefficients"`
	Metrics      fit.Metrics     `json:"metrics"`
	Residuals    []Residual      `json:"residuals"`
	Summary      Summary         `json:"summary"`
	Model        fit.Model       `json:"-"`
	Samples      fit.Samples     `json:"-"`
}

// Residual is the fit at one sample.
type Residual struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Predicted float64 `json:"predicted"`
	Residual  float64 `json:"residual"`
}

// Summary describes the spread of absolute residuals.
type Summary struct {
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	P95    float64 `json:"p95"`
}

// NewOutcome fits s using method m with the given order and returns the
// resulting Outcome. s is retained.
func NewOutcome(s fit.Samples, m fit.Method, order int) (*Outcome, error) {
	model, err := fit.FitMethod(s, m, order)
	if err != nil {
		return nil, err
	}

	res := make([]Residual, len(s))
	abs := make(stats.Float64Data, len(s))
	for i, p := range s {
		yHat := model.Predict(p.X)
		res[i] = Residual{X: p.X, Y: p.Y, Predicted: yHat, Residual: p.Y - yHat}
		abs[i] = math.Abs(p.Y - yHat)
	}
	sum, err := summarise(abs)
	if err != nil {
		return nil, fmt.Errorf("could not summarise residuals: %w", err)
	}

	return &Outcome{
		Method:       m,
		Type:         model.Spec().Name(),
		Equation:     equation.Format(model),
		Coefficients: equation.Terms(model),
		Metrics:      fit.Compute(s, model.Predict),
		Residuals:    res,
		Summary:      sum,
		Model:        model,
		Samples:      s,
	}, nil
}

func summarise(d stats.Float64Data) (Summary, error) {
	med, err := stats.Median(d)
	if err != nil {
		return Summary{}, err
	}
	sd, err := stats.StandardDeviation(d)
	if err != nil {
		return Summary{}, err
	}
	p95, err := stats.Percentile(d, 95)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Median: med, StdDev: sd, P95: p95}, nil
}
