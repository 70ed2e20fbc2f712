package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"topics/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestProfiler_Index(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/", nil)
	rec := httptest.NewRecorder()
	controller.Profiler().ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestProfiler_Mounted(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/debug/pprof", controller.Profiler())

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/goroutine?debug=1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestProfiler_UnknownProfile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	controller.Profiler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
