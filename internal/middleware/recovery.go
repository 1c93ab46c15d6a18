package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yt_agent_v1_202610/internal/api/dto"
	"yt_agent_v1_202610/internal/metrics"
)

// Recovery panic 恢复中间件
// 记录堆栈并返回统一的 500 错误体，调用方看不到内部细节
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				metrics.StrategiesRejected.WithLabelValues(metrics.RejectPanic).Inc()
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": dto.MsgInternalError})
			}
		}()
		c.Next()
	}
}
