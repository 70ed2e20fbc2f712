package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"topics/internal/api"
	"topics/internal/api/handler/v1handler"
	"topics/internal/config"
	mockenrollment "topics/internal/enrollment/mock"
	"topics/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testOptions(t *testing.T) api.Options {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
		MetricsPath:  "/metrics",
		MaxBodyBytes: 64,
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	h, err := api.NewHandler(api.Deps{
		Deps: v1handler.Deps{Enroller: mockenrollment.NewMockEnroller(ctrl)},
	}, testOptions(t))
	require.NoError(t, err)

	return h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewHandler_RequiresPublicKey(t *testing.T) {
	_, err := api.NewHandler(api.Deps{}, api.Options{SecHandlerOptions: &v1handler.SecHandlerOptions{}})
	require.Error(t, err)
}

func TestNewHandler_Specs(t *testing.T) {
	rec := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/topics/{key}/subscribers")
}

func TestNewHandler_Metrics(t *testing.T) {
	rec := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_Docs(t *testing.T) {
	rec := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/v1/docs/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestNewHandler_Pprof(t *testing.T) {
	rec := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_V1RequiresAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/topics/news/subscribers", strings.NewReader(`{"subscribers":["a"]}`))
	rec := serve(newTestHandler(t), req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/topics", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(newTestHandler(t), req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: development\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	return cfg
}

func TestNewOptions(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := loadConfig(t)
	opts := api.NewOptions(cfg)

	require.Equal(t, ":9999", opts.Addr)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, opts.AllowedOrigins)
	require.Equal(t, int64(1048576), opts.MaxBodyBytes)
	require.NotNil(t, opts.SecHandlerOptions)
}
