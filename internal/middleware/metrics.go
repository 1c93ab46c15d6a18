package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yt_agent_v1_202610/internal/metrics"
)

// Metrics Prometheus 请求指标中间件
// route 使用注册的路由模板，未匹配的请求统一记为 unmatched，避免标签爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
