package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	h := http.StripPrefix("/assets", AssetsWithCache(fstest.MapFS{
		"site.css": {Data: []byte("body{}")},
	}))

	req := httptest.NewRequest(http.MethodGet, "/assets/site.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age")

	req = httptest.NewRequest(http.MethodGet, "/assets/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Empty(t, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoggerRecordsStatusAndExposesLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	var fromCtx *zap.Logger
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = LoggerFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, fromCtx)
	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.Equal(t, "/contact", fields["path"])
}

func TestLoggerFromEmptyContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NotNil(t, LoggerFrom(req.Context()))
}
