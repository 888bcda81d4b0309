/*
DESCRIPTION
  session_test.go provides testing for sample sessions and their store.

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
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"github.com/ausocean/approx/equation"
	"github.com/ausocean/approx/fit"
)

const tol = 1e-9

func mustNew(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("could not create session: %v", err)
	}
	return s
}

func TestEditing(t *testing.T) {
	s := mustNew(t)
	if s.ID == uuid.Nil {
		t.Error("session has nil id")
	}
	if n := len(s.Samples()); n != 0 {
		t.Errorf("new session has %d samples", n)
	}

	if err := s.Add(fit.Sample{X: 1, Y: 1}, fit.Sample{X: 2, Y: 4}, fit.Sample{X: 3, Y: 9}); err != nil {
		t.Fatalf("could not add samples: %v", err)
	}
	if err := s.Add(fit.Sample{X: math.NaN(), Y: 1}); !errors.Is(err, fit.ErrNonFinite) {
		t.Errorf("unexpected error adding NaN: %v", err)
	}

	snap := s.Samples()
	snap[0].X = 100
	if got := s.Samples()[0].X; got != 1 {
		t.Errorf("snapshot shares memory with session: got x %v", got)
	}

	if err := s.Delete(1); err != nil {
		t.Fatalf("could not delete sample: %v", err)
	}
	want := fit.Samples{{X: 1, Y: 1}, {X: 3, Y: 9}}
	if diff := cmp.Diff(want, s.Samples()); diff != "" {
		t.Errorf("unexpected samples after delete (-want +got):\n%s", diff)
	}
	for _, i := range []int{-1, 2, 10} {
		if err := s.Delete(i); !errors.Is(err, ErrIndex) {
			t.Errorf("unexpected error deleting index %d: %v", i, err)
		}
	}

	s.LoadExample()
	if diff := cmp.Diff(Example(), s.Samples()); diff != "" {
		t.Errorf("unexpected samples after loading example (-want +got):\n%s", diff)
	}

	s.Clear()
	if n := len(s.Samples()); n != 0 {
		t.Errorf("cleared session has %d samples", n)
	}

	if err := s.Replace(want); err != nil {
		t.Fatalf("could not replace samples: %v", err)
	}
	if diff := cmp.Diff(want, s.Samples()); diff != "" {
		t.Errorf("unexpected samples after replace (-want +got):\n%s", diff)
	}
}

func TestNonFinite(t *testing.T) {
	bad := []fit.Samples{
		{{X: 1, Y: 2}, {X: 2, Y: math.NaN()}, {X: 3, Y: 4}},
		{{X: math.Inf(-1), Y: 2}, {X: 2, Y: 3}},
		{{X: 1, Y: math.Inf(1)}},
	}
	for _, samples := range bad {
		if _, err := New(WithSamples(samples)); !errors.Is(err, fit.ErrNonFinite) {
			t.Errorf("%v: unexpected error from New: %v", samples, err)
		}

		s := mustNew(t, WithSamples(Example()))
		if err := s.Replace(samples); !errors.Is(err, fit.ErrNonFinite) {
			t.Errorf("%v: unexpected error from Replace: %v", samples, err)
		}
		if diff := cmp.Diff(Example(), s.Samples()); diff != "" {
			t.Errorf("%v: failed replace changed samples (-want +got):\n%s", samples, diff)
		}
	}

	st := NewStore()
	if _, err := st.Create(WithSamples(bad[0])); !errors.Is(err, fit.ErrNonFinite) {
		t.Errorf("unexpected error from Create: %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("rejected session was stored: got %d sessions", st.Len())
	}
}

func TestFitExample(t *testing.T) {
	s := mustNew(t, WithSamples(Example()))

	o, err := s.Fit(fit.Linear, 0)
	if err != nil {
		t.Fatalf("could not fit: %v", err)
	}

	if o.Type != "Linear" {
		t.Errorf("unexpected type: got %q", o.Type)
	}
	if o.Equation != "y = 1.9886x + 0.0400" {
		t.Errorf("unexpected equation: got %q", o.Equation)
	}
	wantTerms := []equation.Term{{Label: "b", Value: 0.04}, {Label: "a", Value: 1.9885714285714286}}
	if diff := cmp.Diff(wantTerms, o.Coefficients, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("unexpected coefficients (-want +got):\n%s", diff)
	}
	if math.Abs(o.Metrics.SSE-0.037714285714285437) > tol {
		t.Errorf("unexpected SSE: got %v", o.Metrics.SSE)
	}

	if len(o.Residuals) != len(Example()) {
		t.Fatalf("unexpected residual count: got %d", len(o.Residuals))
	}
	for i, r := range o.Residuals {
		if math.Abs(r.Y-r.Predicted-r.Residual) > tol {
			t.Errorf("residual %d inconsistent: %+v", i, r)
		}
	}
	if math.Abs(o.Summary.Median-0.07714285714285714) > tol {
		t.Errorf("unexpected residual median: got %v", o.Summary.Median)
	}
	if o.Summary.P95 < o.Summary.Median || o.Summary.P95 > 0.11714285714285715+tol {
		t.Errorf("residual p95 out of range: got %v", o.Summary.P95)
	}
	if o.Summary.StdDev <= 0 {
		t.Errorf("unexpected residual standard deviation: got %v", o.Summary.StdDev)
	}
}

func TestFitInsufficient(t *testing.T) {
	s := mustNew(t)
	s.Add(fit.Sample{X: 1, Y: 1})
	for _, m := range fit.Methods() {
		if _, err := s.Fit(m, 0); !errors.Is(err, fit.ErrInsufficientData) {
			t.Errorf("%v: unexpected error: %v", m, err)
		}
	}

	s.Add(fit.Sample{X: 2, Y: 2}, fit.Sample{X: 3, Y: 5})
	if _, err := s.Fit(fit.Cubic, 0); !errors.Is(err, fit.ErrInsufficientData) {
		t.Errorf("unexpected error fitting cubic to 3 samples: %v", err)
	}
	if _, err := s.Fit(fit.Method(99), 0); !errors.Is(err, fit.ErrUnrecognizedMethod) {
		t.Errorf("unexpected error for unknown method: %v", err)
	}
}

func TestFitCache(t *testing.T) {
	s := mustNew(t, WithSamples(Example()))

	first, err := s.Fit(fit.Cubic, 0)
	if err != nil {
		t.Fatalf("could not fit: %v", err)
	}
	second, err := s.Fit(fit.Cubic, 0)
	if err != nil {
		t.Fatalf("could not refit: %v", err)
	}
	if first != second {
		t.Error("refit of unchanged samples was not cached")
	}

	s.Add(fit.Sample{X: 7, Y: 14.2})
	third, err := s.Fit(fit.Cubic, 0)
	if err != nil {
		t.Fatalf("could not fit edited samples: %v", err)
	}
	if third == first {
		t.Error("fit of edited samples returned stale outcome")
	}
	if len(third.Residuals) != 7 {
		t.Errorf("unexpected residual count: got %d", len(third.Residuals))
	}

	s.Delete(6)
	fourth, err := s.Fit(fit.Cubic, 0)
	if err != nil {
		t.Fatalf("could not fit restored samples: %v", err)
	}
	if fourth != first {
		t.Error("fit of restored samples was not cached")
	}
}

func TestOrders(t *testing.T) {
	s := mustNew(t, WithSamples(Example()), WithOrders(Orders{Chebyshev: 2, Fourier: 1}))

	tests := []struct {
		m     fit.Method
		order int
		n     int
	}{
		{fit.Chebyshev, 0, 3},
		{fit.Chebyshev, 4, 5},
		{fit.Fourier, 0, 3},
		{fit.Trigonometric, 0, 1 + 2*fit.DefaultTrigonometricOrder},
		{fit.Quadratic, 5, 3},
	}
	for _, test := range tests {
		o, err := s.Fit(test.m, test.order)
		if err != nil {
			t.Errorf("%v order %d: could not fit: %v", test.m, test.order, err)
			continue
		}
		if got := len(o.Model.Coefficients()); got != test.n {
			t.Errorf("%v order %d: unexpected coefficient count: got %d, want %d", test.m, test.order, got, test.n)
		}
	}
}

func TestCompare(t *testing.T) {
	s := mustNew(t, WithSamples(Example()))
	ranked, err := s.Compare(context.Background())
	if err != nil {
		t.Fatalf("could not compare: %v", err)
	}
	if len(ranked) != len(fit.Methods()) {
		t.Fatalf("unexpected result count: got %d", len(ranked))
	}
	seen := make(map[fit.Method]bool)
	for i, r := range ranked {
		seen[r.Method] = true
		if r.Outcome == nil {
			t.Errorf("%v: unexpected failure: %s", r.Method, r.Err)
			continue
		}
		if i > 0 && ranked[i-1].Outcome != nil && r.Outcome.Metrics.RMSE < ranked[i-1].Outcome.Metrics.RMSE {
			t.Errorf("results not ordered by RMSE at %d", i)
		}
	}
	if len(seen) != len(fit.Methods()) {
		t.Errorf("methods missing from comparison: %v", seen)
	}
}

func TestCompareFailuresLast(t *testing.T) {
	s := mustNew(t, WithSamples(Example()[:4]))
	ranked, err := s.Compare(context.Background())
	if err != nil {
		t.Fatalf("could not compare: %v", err)
	}

	var failed []fit.Method
	for i, r := range ranked {
		if r.Outcome != nil {
			if len(failed) != 0 {
				t.Errorf("successful %v ranked after a failure at %d", r.Method, i)
			}
			continue
		}
		if !strings.Contains(r.Err, "insufficient") {
			t.Errorf("%v: unexpected error: %s", r.Method, r.Err)
		}
		failed = append(failed, r.Method)
	}
	want := []fit.Method{fit.Poly4, fit.Trigonometric}
	if diff := cmp.Diff(want, failed); diff != "" {
		t.Errorf("unexpected failures (-want +got):\n%s", diff)
	}
}

func TestCompareCancelled(t *testing.T) {
	s := mustNew(t, WithSamples(Example()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Compare(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	s := mustNew(t, WithSamples(Example()))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(fit.Sample{X: float64(10 + i), Y: float64(20 + 2*i)})
			if _, err := s.Fit(fit.Linear, 0); err != nil {
				t.Errorf("could not fit: %v", err)
			}
		}(i)
	}
	wg.Wait()
	if n := len(s.Samples()); n != 14 {
		t.Errorf("unexpected sample count: got %d", n)
	}
}

func TestStore(t *testing.T) {
	st := NewStore(WithOrders(Orders{Chebyshev: 1}))
	s, err := st.Create(WithSamples(Example()))
	if err != nil {
		t.Fatalf("could not create session: %v", err)
	}

	if st.Len() != 1 {
		t.Errorf("unexpected store size: got %d", st.Len())
	}
	if s.Orders().Chebyshev != 1 {
		t.Errorf("store options not applied: got %+v", s.Orders())
	}

	detached, err := st.New(WithSamples(Example()))
	if err != nil {
		t.Fatalf("could not create detached session: %v", err)
	}
	if detached.Orders().Chebyshev != 1 {
		t.Errorf("store options not applied to detached session: got %+v", detached.Orders())
	}
	if st.Len() != 1 {
		t.Errorf("detached session was stored: got %d sessions", st.Len())
	}

	got, err := st.Lookup(s.ID.String())
	if err != nil || got != s {
		t.Errorf("could not look up session: %v", err)
	}
	for _, id := range []string{"not-a-uuid", uuid.NewString()} {
		if _, err := st.Lookup(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("unexpected error looking up %q: %v", id, err)
		}
	}

	if err := st.Remove(s.ID); err != nil {
		t.Errorf("could not remove session: %v", err)
	}
	if err := st.Remove(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unexpected error removing twice: %v", err)
	}
	if _, err := st.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unexpected error getting removed session: %v", err)
	}
}
