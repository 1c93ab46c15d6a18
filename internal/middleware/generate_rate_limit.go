package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yt_agent_v1_202610/internal/metrics"
)

// ==================== 生成接口限流中间件 ====================

// GenerateRateLimit 按客户端 IP 限制生成频率
//
// 使用示例:
//
//	api.POST("/generate",
//	    middleware.GenerateRateLimit(limiter, 3*time.Second),
//	    strategyCtl.Generate,
//	)
//
// 参数:
//   - limiter: 共享的限流器，nil 时不限流
//   - interval: 冷却间隔，0 表示不限流
func GenerateRateLimit(limiter *ClientLimiter, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || interval <= 0 {
			c.Next()
			return
		}

		result := limiter.Check(GenerateKey(c.ClientIP()), interval)
		if !result.Allowed {
			metrics.StrategiesRejected.WithLabelValues(metrics.RejectRateLimited).Inc()
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfterSeconds(result.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       formatRetryMessage(result.RetryAfter),
				"retry_after": retryAfterSeconds(result.RetryAfter),
			})
			return
		}

		c.Next()
	}
}

// GenerateKey 生成接口的限流 key
func GenerateKey(clientIP string) string {
	return "generate:" + clientIP
}

// ==================== 辅助函数 ====================

// retryAfterSeconds 向上取整，至少 1 秒
func retryAfterSeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := retryAfterSeconds(d)

	if seconds < 60 {
		return fmt.Sprintf("Thoda ruko! %d second baad try karo", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60

	if remainingSeconds == 0 {
		return fmt.Sprintf("Thoda ruko! %d minute baad try karo", minutes)
	}

	return fmt.Sprintf("Thoda ruko! %d min %d sec baad try karo", minutes, remainingSeconds)
}
