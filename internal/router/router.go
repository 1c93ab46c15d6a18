package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"yt_agent_v1_202610/internal/controller"
	"yt_agent_v1_202610/internal/middleware"
	"yt_agent_v1_202610/web"

	_ "yt_agent_v1_202610/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Strategy *controller.StrategyController
}

// Options 路由依赖
type Options struct {
	Logger   *zap.Logger
	Limiter  *middleware.ClientLimiter // 生成接口限流器，Cooldown 为 0 时可为 nil
	Cooldown time.Duration
}

// SetupRouter 创建引擎并注册所有路由
func SetupRouter(ctls *Controllers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Metrics(),
		middleware.Recovery(logger),
	)

	InitRoutes(r, ctls, opts)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers, opts Options) {
	// 1. 前端单页
	web.Register(r)

	// 2. 运维端点
	r.GET("/healthz", ctls.Strategy.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 3. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. API 路由组
	api := r.Group("/api")
	{
		// POST /api/generate
		api.POST("/generate",
			middleware.GenerateRateLimit(opts.Limiter, opts.Cooldown),
			ctls.Strategy.Generate,
		)
		// GET /api/schema
		api.GET("/schema", ctls.Strategy.Schema)
	}
}
