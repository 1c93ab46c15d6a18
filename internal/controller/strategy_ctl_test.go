package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yt_agent_v1_202610/internal/model"
	"yt_agent_v1_202610/internal/service"
	"yt_agent_v1_202610/pkg/contract"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupStrategyCtlRouter(t *testing.T) *gin.Engine {
	logger := zaptest.NewLogger(t)
	ctl := NewStrategyController(service.NewStrategyService(logger), logger)

	r := gin.New()
	r.GET("/healthz", ctl.Health)
	api := r.Group("/api")
	{
		api.POST("/generate", ctl.Generate)
		api.GET("/schema", ctl.Schema)
	}
	return r
}

func postGenerate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 测试用例 ====================

func TestStrategyController_Generate_Success(t *testing.T) {
	r := setupStrategyCtlRouter(t)

	w := postGenerate(r, `{"niche":"Cooking","language":"english"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.NoError(t, contract.ValidateBundle(w.Body.Bytes()))

	var bundle model.StrategyBundle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bundle))
	assert.Contains(t, bundle.Titles[0], "Cooking")
	assert.Equal(t, "cooking", bundle.Tags.YouTube[0])
}

func TestStrategyController_Generate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"缺少 niche", `{"language":"english"}`, http.StatusBadRequest, "Niche required hai!"},
		{"空 niche", `{"niche":"","language":"hindi"}`, http.StatusBadRequest, "Niche required hai!"},
		{"非法 JSON", `{"niche":`, http.StatusInternalServerError, "Something went wrong"},
		{"空请求体", ``, http.StatusInternalServerError, "Something went wrong"},
		{"niche 类型错误", `{"niche":42}`, http.StatusInternalServerError, "Something went wrong"},
	}

	r := setupStrategyCtlRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postGenerate(r, tt.body)
			require.Equal(t, tt.wantCode, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["error"])
		})
	}
}

func TestStrategyController_Generate_UnknownLanguage(t *testing.T) {
	r := setupStrategyCtlRouter(t)

	english := postGenerate(r, `{"niche":"Gaming","language":"english"}`)
	unknown := postGenerate(r, `{"niche":"Gaming","language":"marathi"}`)
	missing := postGenerate(r, `{"niche":"Gaming"}`)

	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, english.Body.String(), unknown.Body.String())
	assert.Equal(t, english.Body.String(), missing.Body.String())
}

func TestStrategyController_Generate_Idempotent(t *testing.T) {
	r := setupStrategyCtlRouter(t)

	for _, lang := range model.Languages {
		body := `{"niche":"Finance Tips","language":"` + lang.String() + `"}`
		first := postGenerate(r, body)
		second := postGenerate(r, body)

		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String(), "language=%s", lang)
	}
}

func TestStrategyController_Schema(t *testing.T) {
	r := setupStrategyCtlRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schema", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/schema+json"))
	assert.True(t, json.Valid(w.Body.Bytes()))
	assert.Equal(t, string(contract.BundleSchema), w.Body.String())
}

func TestStrategyController_Health(t *testing.T) {
	r := setupStrategyCtlRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
