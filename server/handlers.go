/*
DESCRIPTION
  handlers.go provides the HTTP handlers of the session API.

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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ausocean/approx/chart"
	"github.com/ausocean/approx/fit"
	"github.com/ausocean/approx/report"
	"github.com/ausocean/approx/sampleio"
	"github.com/ausocean/approx/session"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errBadRequest = errors.New("bad request")

type sessionView struct {
	ID      uuid.UUID      `json:"id"`
	Samples fit.Samples    `json:"samples"`
	Orders  session.Orders `json:"orders"`
}

type samplesRequest struct {
	Samples fit.Samples `json:"samples"`
}

type fitRequest struct {
	Samples fit.Samples `json:"samples,omitempty"`
	Method  string      `json:"method"`
	Order   int         `json:"order"`
}

func view(sess *session.Session) sessionView {
	return sessionView{ID: sess.ID, Samples: sess.Samples(), Orders: sess.Orders()}
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves the {id} URL parameter before calling h.
func (s *server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.store.Lookup(chi.URLParam(r, "id"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		h(w, r, sess)
	}
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req samplesRequest
	if r.ContentLength != 0 {
		if err := decode(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	sess, err := s.store.Create(session.WithSamples(req.Samples))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("session created", "id", sess.ID.String(), "samples", len(req.Samples))
	s.writeJSON(w, r, http.StatusCreated, view(sess))
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

func (s *server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", session.ErrNotFound, err))
		return
	}
	if err := s.store.Remove(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("session removed", "id", id.String())
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleAdd(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req samplesRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := sess.Add(req.Samples...); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

func (s *server) handleClear(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	sess.Clear()
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: sample index: %v", errBadRequest, err))
		return
	}
	if err := sess.Delete(i); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

func (s *server) handleExample(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	sess.LoadExample()
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

func (s *server) handleImport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	body := http.MaxBytesReader(w, r.Body, maxBody)
	var (
		samples fit.Samples
		err     error
	)
	switch ct := mediaType(r); ct {
	case "", "text/csv", "text/plain":
		samples, err = sampleio.ReadCSV(body)
	case xlsxType:
		samples, err = sampleio.ReadXLSX(body)
	default:
		err = fmt.Errorf("%w: unsupported content type %q", errBadRequest, ct)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := sess.Replace(samples); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("samples imported", "id", sess.ID.String(), "samples", len(samples))
	s.writeJSON(w, r, http.StatusOK, view(sess))
}

// handleFit fits samples given in the request without storing a session.
// The store's default orders apply.
func (s *server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := fit.ParseMethod(req.Method)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.store.New(session.WithSamples(req.Samples))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := sess.Fit(m, req.Order)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, o)
}

func (s *server) handleSessionFit(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req fitRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Samples) != 0 {
		s.writeError(w, r, fmt.Errorf("%w: samples belong in /samples", errBadRequest))
		return
	}
	m, err := fit.ParseMethod(req.Method)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := sess.Fit(m, req.Order)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, o)
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	ranked, err := sess.Compare(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, ranked)
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	samples := sess.Samples()
	var model fit.Model
	if r.URL.Query().Get("method") != "" {
		o, err := s.queryFit(r, sess)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		samples, model = o.Samples, o.Model
	}

	p, err := chart.New(samples, model)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := chart.Render(w, p, "png", s.chartW, s.chartH); err != nil {
		s.log.Error("could not render chart", "id", sess.ID.String(), "error", err.Error())
	}
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	o, err := s.queryFit(r, sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	switch f := r.URL.Query().Get("format"); f {
	case "", "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, report.Markdown(o))
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(report.HTML(o))
	default:
		s.writeError(w, r, fmt.Errorf("%w: unknown report format %q", errBadRequest, f))
	}
}

// queryFit fits sess with the method and order named in the query string.
func (s *server) queryFit(r *http.Request, sess *session.Session) (*session.Outcome, error) {
	q := r.URL.Query()
	m, err := fit.ParseMethod(q.Get("method"))
	if err != nil {
		return nil, err
	}
	var order int
	if v := q.Get("order"); v != "" {
		order, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: order: %v", errBadRequest, err)
		}
	}
	return sess.Fit(m, order)
}

// decode reads a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: could not decode body: %v", errBadRequest, err)
	}
	return nil
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// writeJSON encodes v before writing any header, so a value that cannot be
// encoded is reported as a server error instead of a truncated body.
func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("could not encode response", "path", r.URL.Path, "error", err.Error())
		status = http.StatusInternalServerError
		b, _ = json.Marshal(map[string]string{"error": fmt.Sprintf("could not encode response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}

// status returns the HTTP status reporting err.
func status(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrIndex):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, sampleio.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, fit.ErrInsufficientData),
		errors.Is(err, fit.ErrDegenerateDomain),
		errors.Is(err, fit.ErrNonFinite),
		errors.Is(err, fit.ErrUnrecognizedMethod),
		errors.Is(err, fit.ErrSingular):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		s.log.Error("request error", "path", r.URL.Path, "error", err.Error())
	} else {
		s.log.Debug("request rejected", "path", r.URL.Path, "status", code, "error", err.Error())
	}
	s.writeJSON(w, r, code, map[string]string{"error": err.Error()})
}
