/*
DESCRIPTION
  compare.go provides concurrent fitting of every method to one snapshot and
  ranking of the results.

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
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ausocean/approx/fit"
)

// Ranked is one method's entry in a comparison. Exactly one of Outcome and
// Err is set.
type Ranked struct {
	Method  fit.Method `json:"method"`
	Outcome *Outcome   `json:"outcome,omitempty"`
	Err     string     `json:"error,omitempty"`
}

// Compare fits every method to a single snapshot of the session and returns
// the results ordered by ascending RMSE. Methods that cannot be fitted, for
// example a quartic to four samples, are listed last with their error.
func (s *Session) Compare(ctx context.Context) ([]Ranked, error) {
	s.mu.Lock()
	snap := s.samples.Copy()
	orders := s.orders
	s.mu.Unlock()

	methods := fit.Methods()
	ranked := make([]Ranked, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range methods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i].Method = m
			o, err := s.fitSnapshot(snap, m, orders.For(m))
			if err != nil {
				ranked[i].Err = err.Error()
				return nil
			}
			ranked[i].Outcome = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rmse(ranked[i]) < rmse(ranked[j])
	})
	return ranked, nil
}

// rmse returns the sort key of r. Failed and non-finite fits sort last.
func rmse(r Ranked) float64 {
	if r.Outcome == nil || math.IsNaN(r.Outcome.Metrics.RMSE) {
		return math.Inf(1)
	}
	return r.Outcome.Metrics.RMSE
}
