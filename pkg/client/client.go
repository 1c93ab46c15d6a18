// Package client 内容策略服务的 Go 客户端
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"yt_agent_v1_202610/internal/model"
	"yt_agent_v1_202610/pkg/contract"
)

// DefaultTimeout 默认请求超时
const DefaultTimeout = 15 * time.Second

// APIError 服务端返回的非 200 响应
type APIError struct {
	Status     int
	Message    string
	RetryAfter time.Duration // 仅 429 时有值
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client 内容策略 API 客户端
type Client struct {
	http *resty.Client
}

// Option 客户端配置项
type Option func(*resty.Client)

// WithTimeout 设置请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithDebug 打印请求/响应
func WithDebug(debug bool) Option {
	return func(c *resty.Client) { c.SetDebug(debug) }
}

// New 创建客户端
// baseURL 形如 http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", "yt-agent-client/1.0")

	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// Generate 调用 POST /api/generate
// 响应先经过契约校验再解码，不合法时返回 contract.ErrContractViolation
func (c *Client) Generate(ctx context.Context, niche, language string) (*model.StrategyBundle, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"niche":    niche,
			"language": language,
		}).
		Post("/api/generate")
	if err != nil {
		return nil, fmt.Errorf("网络请求发送失败: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp)
	}

	raw := resp.Body()
	if err := contract.ValidateBundle(raw); err != nil {
		return nil, err
	}

	var bundle model.StrategyBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	return &bundle, nil
}

// Schema 获取服务端当前的契约 Schema
func (c *Client) Schema(ctx context.Context) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/schema")
	if err != nil {
		return nil, fmt.Errorf("网络请求发送失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp)
	}
	return resp.Body(), nil
}

// Health 调用 /healthz
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/healthz")
	if err != nil {
		return fmt.Errorf("网络请求发送失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return newAPIError(resp)
	}
	return nil
}

// IsRateLimited 判断错误是否为冷却限流
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests
}

func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(resp.String())
	}

	if s := resp.Header().Get("Retry-After"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			apiErr.RetryAfter = time.Duration(n) * time.Second
		}
	}
	return apiErr
}
