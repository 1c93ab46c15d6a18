package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yt_agent_v1_202610/internal/api/dto"
	"yt_agent_v1_202610/internal/metrics"
	"yt_agent_v1_202610/internal/middleware"
	"yt_agent_v1_202610/internal/model"
	"yt_agent_v1_202610/internal/service"
	"yt_agent_v1_202610/pkg/contract"
)

type StrategyController struct {
	strategyService *service.StrategyService
	logger          *zap.Logger
}

func NewStrategyController(strategyService *service.StrategyService, logger *zap.Logger) *StrategyController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StrategyController{strategyService: strategyService, logger: logger}
}

// Generate 生成内容策略
// @Summary 生成 YouTube 内容策略
// @Description 根据 niche 和语言返回选题、标题、钩子、脚本、标签、发布节奏、工具清单、工作流和简介。未识别的 language 使用英语模板。
// @Tags Strategy
// @Accept json
// @Produce json
// @Param request body dto.GenerateStrategyReq true "生成参数"
// @Success 200 {object} model.StrategyBundle
// @Failure 400 {object} dto.ErrorResp "niche 为空"
// @Failure 429 {object} dto.ErrorResp "冷却中"
// @Failure 500 {object} dto.ErrorResp "服务器内部错误"
// @Router /api/generate [post]
func (h *StrategyController) Generate(c *gin.Context) {
	var req dto.GenerateStrategyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// 请求体不是合法 JSON 视为未预期异常
		h.logger.Error("解析请求体失败",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		metrics.StrategiesRejected.WithLabelValues(metrics.RejectBadBody).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": dto.MsgInternalError})
		return
	}

	bundle, err := h.strategyService.Generate(c.Request.Context(), req.Niche, req.Language)
	if err != nil {
		if errors.Is(err, service.ErrMissingNiche) {
			metrics.StrategiesRejected.WithLabelValues(metrics.RejectMissingNiche).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": dto.MsgNicheRequired})
			return
		}

		h.logger.Error("生成内容策略失败",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		metrics.StrategiesRejected.WithLabelValues(metrics.RejectInternal).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": dto.MsgInternalError})
		return
	}

	metrics.StrategiesGenerated.WithLabelValues(model.ParseLanguage(req.Language).String()).Inc()
	c.JSON(http.StatusOK, bundle)
}

// Schema 获取内容策略包 JSON Schema
// @Summary 内容策略包契约
// @Description 返回 /api/generate 成功响应的 JSON Schema，客户端可用于校验
// @Tags Strategy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/schema [get]
func (h *StrategyController) Schema(c *gin.Context) {
	c.Data(http.StatusOK, "application/schema+json; charset=utf-8", contract.BundleSchema)
}

// Health 健康检查
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "{"status": "ok"}"
// @Router /healthz [get]
func (h *StrategyController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
