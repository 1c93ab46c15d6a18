package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupWebRouter() *gin.Engine {
	r := gin.New()
	Register(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	w := get(setupWebRouter(), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	for _, id := range []string{`id="generate-form"`, `id="niche"`, `id="language"`, `id="generate-btn"`, `id="results"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, "/static/app.js")
}

func TestStaticAssets(t *testing.T) {
	r := setupWebRouter()

	tests := []struct {
		path     string
		contains string
	}{
		{"/static/app.js", "/api/generate"},
		{"/static/app.js", "Copied to clipboard!"},
		{"/static/app.css", ".badge"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestStaticAssets_NotFound(t *testing.T) {
	w := get(setupWebRouter(), "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
