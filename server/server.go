/*
DESCRIPTION
  server.go provides an HTTP JSON API for editing sample sessions and
  fitting them.

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

// Package server exposes sessions over HTTP.
//
// Routes:
//
//	POST   /fit                            fit samples given in the request
//	POST   /sessions                       create a session
//	GET    /sessions/{id}                  get a session's samples
//	DELETE /sessions/{id}                  remove a session
//	POST   /sessions/{id}/samples          append samples
//	DELETE /sessions/{id}/samples          clear samples
//	DELETE /sessions/{id}/samples/{index}  delete one sample
//	POST   /sessions/{id}/example          load the example data
//	POST   /sessions/{id}/import           replace samples from a CSV or XLSX body
//	POST   /sessions/{id}/fit              fit the session's samples
//	GET    /sessions/{id}/compare          fit every method and rank them
//	GET    /sessions/{id}/chart.png        chart of samples and an optional fit
//	GET    /sessions/{id}/report           Markdown or HTML report of a fit
//
// Errors are reported as {"error": "..."}.
package server

import (
	"net/http"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/approx/chart"
	"github.com/ausocean/approx/session"
)

// Defaults.
const (
	DefaultTimeout = 10 * time.Second
	maxBody        = 8 << 20
)

// Option configures the server.
type Option func(*server)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *server) { s.timeout = d }
}

// WithChartSize sets the size of rendered charts.
func WithChartSize(width, height vg.Length) Option {
	return func(s *server) { s.chartW, s.chartH = width, height }
}

type server struct {
	store   *session.Store
	log     logging.Logger
	timeout time.Duration
	chartW  vg.Length
	chartH  vg.Length
}

// New returns a handler serving the sessions in store.
func New(store *session.Store, log logging.Logger, opts ...Option) http.Handler {
	s := &server{
		store:   store,
		log:     log,
		timeout: DefaultTimeout,
		chartW:  chart.DefaultWidth,
		chartH:  chart.DefaultHeight,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Post("/fit", s.handleFit)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.withSession(s.handleGet))
			r.Delete("/", s.handleRemove)
			r.Post("/samples", s.withSession(s.handleAdd))
			r.Delete("/samples", s.withSession(s.handleClear))
			r.Delete("/samples/{index}", s.withSession(s.handleDelete))
			r.Post("/example", s.withSession(s.handleExample))
			r.Post("/import", s.withSession(s.handleImport))
			r.Post("/fit", s.withSession(s.handleSessionFit))
			r.Get("/compare", s.withSession(s.handleCompare))
			r.Get("/chart.png", s.withSession(s.handleChart))
			r.Get("/report", s.withSession(s.handleReport))
		})
	})

	return gzhttp.GzipHandler(r)
}

// logRequests logs each request once it has been served.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		kv := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"requestID", middleware.GetReqID(r.Context()),
		}
		if ww.Status() >= http.StatusInternalServerError {
			s.log.Error("request failed", kv...)
			return
		}
		s.log.Debug("request served", kv...)
	})
}
