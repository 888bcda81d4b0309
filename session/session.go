/*
DESCRIPTION
  session.go provides Session, an owned, ordered collection of samples that
  can be edited and fitted, and Store, which holds sessions by id.

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

// Package session holds the editable sample sets that fits are made from.
// Fitting always works on a snapshot, so a session may be edited while fits
// of an earlier state are in progress.
package session

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/ausocean/approx/fit"
)

var (
	// ErrNotFound is returned by Store for an unknown or malformed id.
	ErrNotFound = errors.New("session: not found")

	// ErrIndex is returned by Delete for an index outside the sample set.
	ErrIndex = errors.New("session: sample index out of range")
)

// MinSamples is the fewest samples any method can be fitted to.
const MinSamples = 2

// maxCached bounds the number of outcomes a session remembers.
const maxCached = 64

// Example returns the built-in example data set.
func Example() fit.Samples {
	return fit.Samples{{X: 1, Y: 2.1}, {X: 2, Y: 3.9}, {X: 3, Y: 6.0}, {X: 4, Y: 8.1}, {X: 5, Y: 9.9}, {X: 6, Y: 12.0}}
}

// Orders holds the orders used for the variable order methods when a fit
// request gives none. Zero fields fall back to the fit package defaults.
type Orders struct {
	Polynomial    int `json:"polynomial"`
	Chebyshev     int `json:"chebyshev"`
	Trigonometric int `json:"trigonometric"`
	Fourier       int `json:"fourier"`
}

// For returns the default order for m, or zero when m has none.
func (o Orders) For(m fit.Method) int {
	switch m {
	case fit.Polynomial:
		return o.Polynomial
	case fit.Chebyshev:
		return o.Chebyshev
	case fit.Trigonometric:
		return o.Trigonometric
	case fit.Fourier:
		return o.Fourier
	}
	return 0
}

// Option configures a Session.
type Option func(*Session) error

// WithOrders sets the default orders of a Session.
func WithOrders(o Orders) Option {
	return func(s *Session) error {
		s.orders = o
		return nil
	}
}

// WithSamples sets the initial samples of a Session. Non-finite values are
// rejected.
func WithSamples(samples fit.Samples) Option {
	return func(s *Session) error {
		if err := checkFinite(samples); err != nil {
			return err
		}
		s.samples = samples.Copy()
		return nil
	}
}

// Session is an ordered sample set. It is safe for concurrent use.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	samples fit.Samples
	orders  Orders
	cache   map[uint64]*Outcome
}

// New returns a session with a fresh id, configured by opts.
func New(opts ...Option) (*Session, error) {
	s := &Session{ID: uuid.New(), cache: make(map[uint64]*Outcome)}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// checkFinite returns fit.ErrNonFinite for the first sample holding a NaN
// or an infinity.
func checkFinite(samples []fit.Sample) error {
	for i, p := range samples {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: sample %d is (%v, %v)", fit.ErrNonFinite, i, p.X, p.Y)
		}
	}
	return nil
}

// Add appends samples to the session. Non-finite values are rejected.
func (s *Session) Add(samples ...fit.Sample) error {
	if err := checkFinite(samples); err != nil {
		return err
	}
	s.mu.Lock()
	s.samples = append(s.samples, samples...)
	s.mu.Unlock()
	return nil
}

// Delete removes the sample at index i.
func (s *Session) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.samples) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, len(s.samples))
	}
	s.samples = append(s.samples[:i:i], s.samples[i+1:]...)
	return nil
}

// Clear removes every sample.
func (s *Session) Clear() {
	s.mu.Lock()
	s.samples = nil
	s.mu.Unlock()
}

// LoadExample replaces the samples with the example data set.
func (s *Session) LoadExample() {
	s.mu.Lock()
	s.samples = Example()
	s.mu.Unlock()
}

// Replace replaces the samples with a copy of samples. Non-finite values are
// rejected and leave the session unchanged.
func (s *Session) Replace(samples fit.Samples) error {
	if err := checkFinite(samples); err != nil {
		return err
	}
	c := samples.Copy()
	s.mu.Lock()
	s.samples = c
	s.mu.Unlock()
	return nil
}

// Samples returns a snapshot of the session's samples.
func (s *Session) Samples() fit.Samples {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samples.Copy()
}

// Orders returns the session's default orders.
func (s *Session) Orders() Orders {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders
}

// Fit fits the current samples with method m. An order of zero selects the
// session's default for m. Outcomes are cached by sample content, so
// refitting an unchanged set is cheap.
func (s *Session) Fit(m fit.Method, order int) (*Outcome, error) {
	s.mu.Lock()
	snap := s.samples.Copy()
	if order == 0 {
		order = s.orders.For(m)
	}
	s.mu.Unlock()
	return s.fitSnapshot(snap, m, order)
}

func (s *Session) fitSnapshot(snap fit.Samples, m fit.Method, order int) (*Outcome, error) {
	if len(snap) < MinSamples {
		return nil, fmt.Errorf("%w: have %d samples, need at least %d", fit.ErrInsufficientData, len(snap), MinSamples)
	}

	spec, err := m.Spec(order)
	if err != nil {
		return nil, err
	}
	key := digest(snap, m, spec)

	s.mu.Lock()
	o, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return o, nil
	}

	o, err = NewOutcome(snap, m, order)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if len(s.cache) >= maxCached {
		s.cache = make(map[uint64]*Outcome)
	}
	s.cache[key] = o
	s.mu.Unlock()
	return o, nil
}

// digest returns a hash identifying a fit of snap by m and spec.
func digest(snap fit.Samples, m fit.Method, spec fit.Spec) uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	put(uint64(m))
	put(uint64(spec.Family))
	put(uint64(spec.Order))
	for _, p := range snap {
		put(math.Float64bits(p.X))
		put(math.Float64bits(p.Y))
	}
	return h.Sum64()
}

// Store holds sessions by id. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	opts     []Option
}

// NewStore returns an empty Store. opts are applied to every session it
// creates.
func NewStore(opts ...Option) *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session), opts: opts}
}

// New returns a session configured by the store's options followed by opts,
// without adding it to the store.
func (st *Store) New(opts ...Option) (*Session, error) {
	return New(append(append([]Option{}, st.opts...), opts...)...)
}

// Create adds a new session to the store and returns it.
func (st *Store) Create(opts ...Option) (*Session, error) {
	s, err := st.New(opts...)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, nil
}

// Get returns the session with the given id.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return s, nil
}

// Lookup parses id and returns the matching session.
func (st *Store) Lookup(id string) (*Session, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return st.Get(u)
}

// Remove deletes the session with the given id.
func (st *Store) Remove(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of sessions held.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
