// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), ids: utils.NewUUIDGenerator()}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses incoming id", incoming: "my-custom-trace-id"},
		{name: "generates uuid v7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.Equal(t, got, fromCtx)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
				return
			}
			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		body    string
		wantLog []string
	}{
		{
			name:    "put 204",
			method:  http.MethodPut,
			path:    "/api/users/a@b.c/history/1",
			status:  http.StatusNoContent,
			wantLog: []string{`"method":"PUT"`, `"uri":"/api/users/a@b.c/history/1"`, `"status":204`, `"size":0`},
		},
		{
			name:    "implicit 200",
			method:  http.MethodGet,
			path:    "/api/health",
			body:    `{"status":"ok"}`,
			wantLog: []string{`"status":200`, `"size":15`, `"duration":`},
		},
		{
			name:    "server error",
			method:  http.MethodDelete,
			path:    "/api/users/a@b.c/history",
			status:  http.StatusInternalServerError,
			wantLog: []string{`"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Put("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered static route", method: http.MethodGet, path: "/api/items", want: http.StatusOK},
		{name: "registered param route", method: http.MethodPut, path: "/api/items/42", want: http.StatusNoContent},
		{name: "wrong method on static route", method: http.MethodDelete, path: "/api/items", want: http.StatusNotFound},
		{name: "wrong method on param route", method: http.MethodPost, path: "/api/items/42", want: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("write implies 200 and counts bytes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		_, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		_, err = w.Write([]byte(" world"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 11, w.size)
		assert.Equal(t, "hello world", rec.Body.String())
	})
}

func TestWithScope(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		rawPath   string
		wantCode  int
		wantScope string
	}{
		{name: "plain scope", path: "/api/users/ana@example.com/history", wantCode: http.StatusOK, wantScope: "ana@example.com"},
		{name: "escaped scope", path: "/api/users/a%20b@example.com/history", wantCode: http.StatusOK, wantScope: "a b@example.com"},
		{name: "broken escape", path: "/api/users/a/history", rawPath: "/api/users/a%zz/history", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			h := newTestHandler()

			var got string
			router := chi.NewRouter()
			router.Route("/api/users/{scope}", func(r chi.Router) {
				r.Use(h.withScope)
				r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
					got, _ = utils.GetScopeFromContext(r.Context())
					logger.FromRequest(r).Info().Msg("inside")
					w.WriteHeader(http.StatusOK)
				})
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.URL.RawPath = tt.rawPath
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantScope != "" {
				assert.Equal(t, tt.wantScope, got)
				assert.Contains(t, buf.String(), `"scope":"`+tt.wantScope+`"`)
			}
		})
	}
}
