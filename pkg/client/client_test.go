package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"yt_agent_v1_202610/internal/controller"
	"yt_agent_v1_202610/internal/middleware"
	"yt_agent_v1_202610/internal/router"
	"yt_agent_v1_202610/internal/service"
	"yt_agent_v1_202610/pkg/client"
	"yt_agent_v1_202610/pkg/contract"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func newServer(t *testing.T, cooldown time.Duration) *httptest.Server {
	logger := zaptest.NewLogger(t)
	opts := router.Options{Logger: logger, Cooldown: cooldown}
	if cooldown > 0 {
		opts.Limiter = middleware.NewClientLimiter()
	}

	r := router.SetupRouter(&router.Controllers{
		Strategy: controller.NewStrategyController(service.NewStrategyService(logger), logger),
	}, opts)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newStubServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ==================== 真实服务 ====================

func TestClient_Generate(t *testing.T) {
	c := client.New(newServer(t, 0).URL + "/")

	bundle, err := c.Generate(context.Background(), "Cooking", "english")
	require.NoError(t, err)

	assert.Contains(t, bundle.Titles[0], "Cooking")
	assert.Equal(t, "cooking", bundle.Tags.YouTube[0])
	assert.Len(t, bundle.AutomationTools, 5)
}

func TestClient_Generate_MissingNiche(t *testing.T) {
	c := client.New(newServer(t, 0).URL)

	bundle, err := c.Generate(context.Background(), "", "hindi")
	assert.Nil(t, bundle)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Niche required hai!", apiErr.Message)
	assert.False(t, client.IsRateLimited(err))
}

func TestClient_Generate_RateLimited(t *testing.T) {
	c := client.New(newServer(t, time.Minute).URL)

	_, err := c.Generate(context.Background(), "Music", "hinglish")
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "Music", "hinglish")
	require.True(t, client.IsRateLimited(err))

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, time.Minute, apiErr.RetryAfter)
}

func TestClient_SchemaAndHealth(t *testing.T) {
	c := client.New(newServer(t, 0).URL)

	schema, err := c.Schema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contract.BundleSchema, schema)

	assert.NoError(t, c.Health(context.Background()))
}

// ==================== 异常响应 ====================

func TestClient_Generate_ContractViolation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"空对象", `{}`},
		{"标题数量不对", `{"titles":["a"]}`},
		{"非 JSON", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client.New(newStubServer(t, http.StatusOK, tt.body).URL)

			bundle, err := c.Generate(context.Background(), "Cooking", "english")
			assert.Nil(t, bundle)
			assert.True(t, errors.Is(err, contract.ErrContractViolation), "err=%v", err)
		})
	}
}

func TestClient_Generate_ServerErrorWithoutJSON(t *testing.T) {
	c := client.New(newStubServer(t, http.StatusBadGateway, "upstream down").URL)

	_, err := c.Generate(context.Background(), "Cooking", "english")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_Generate_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(url, client.WithTimeout(time.Second))
	_, err := c.Generate(context.Background(), "Cooking", "english")

	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
