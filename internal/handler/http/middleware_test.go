package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── trace id ──

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil, nil)
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Send()
	})

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client supplied", incoming: "abc-123", keep: true},
		{name: "generated when empty", incoming: ""},
		{name: "generated when too long", incoming: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

// ── logging ──

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodPost, "/blogs?x=1", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("12345"))
	})
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/blogs?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
}

// ── response writer ──

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	assert.Equal(t, http.StatusOK, rw.Status())

	_, _ = rw.Write([]byte("ab"))
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("c"))

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}

// ── gzip ──

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestWithGZip_PassThrough(t *testing.T) {
	tests := []struct {
		name   string
		method string
		accept string
		status int
	}{
		{name: "no accept-encoding", method: http.MethodGet, status: http.StatusOK},
		{name: "head", method: http.MethodHead, accept: "gzip", status: http.StatusOK},
		{name: "no content", method: http.MethodGet, accept: "gzip", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
		})
	}
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, _ = zw.Write([]byte(`{"title":"hi"}`))
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, `{"title":"hi"}`, got)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	bad.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── session ──

func TestSessionCredential(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "none"},
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "cookie", cookie: "from-cookie", want: "from-cookie"},
		{name: "bearer wins", header: "Bearer abc", cookie: "from-cookie", want: "abc"},
		{name: "malformed header falls back", header: "Basic xyz", cookie: "from-cookie", want: "from-cookie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			assert.Equal(t, tt.want, sessionCredential(req))
		})
	}
}

func TestWithSession_StoresPrincipal(t *testing.T) {
	h := newTestHandler(nil, nil)

	var got models.Principal
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = utils.GetPrincipalFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, got.Is(1))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, got.IsAnonymous())
}

func TestRequireAuth(t *testing.T) {
	h := newTestHandler(nil, nil)
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.WithPrincipal(context.Background(), models.Authenticated(3)))
	rec = httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, req)
	assert.True(t, called)
}

// ── metrics ──

func TestWithMetrics_UsesRoutePattern(t *testing.T) {
	h := newTestHandler(nil, nil)
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blogs/12", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blogs/13", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/blogs/{id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}

func TestWithLogging_NoContextLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotPanics(t, func() {
		withLogging(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)
	})
	assert.NotNil(t, logger.FromRequest(req))
}
