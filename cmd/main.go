package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yt_agent_v1_202610/internal/config"
	"yt_agent_v1_202610/internal/controller"
	"yt_agent_v1_202610/internal/middleware"
	"yt_agent_v1_202610/internal/router"
	"yt_agent_v1_202610/internal/service"
	"yt_agent_v1_202610/internal/task"
	"yt_agent_v1_202610/pkg/logger"
)

// @title YouTube 内容策略生成 API
// @version 1.0
// @description 根据 niche 和语言生成 YouTube 内容策略包
// @host localhost:8080
// @BasePath /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		// 日志器尚未创建，直接输出到 stderr
		_, _ = os.Stderr.WriteString("加载配置失败: " + err.Error() + "\n")
		os.Exit(1)
	}

	// 2. 初始化日志
	log := logger.Must(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// 3. 初始化依赖
	deps := initDependencies(cfg, log)

	// 4. 启动定时任务
	stopTasks := initTasks(deps)
	defer stopTasks()

	// 5. 初始化路由
	gin.SetMode(cfg.Server.GinMode)
	r := router.SetupRouter(deps.Controllers, router.Options{
		Logger:   log,
		Limiter:  deps.Limiter,
		Cooldown: cfg.Generate.Cooldown,
	})

	// 6. 启动服务
	startServer(cfg.Server, r, log)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	Limiter     *middleware.ClientLimiter
	Services    *Services
	Controllers *router.Controllers
}

// Services 服务集合
type Services struct {
	Strategy *service.StrategyService
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, log *zap.Logger) *Dependencies {
	// -------- 业务服务 --------
	services := &Services{
		Strategy: service.NewStrategyService(log.Named("strategy")),
	}

	// -------- 限流 --------
	var limiter *middleware.ClientLimiter
	if cfg.Generate.Cooldown > 0 {
		limiter = middleware.NewClientLimiter()
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Strategy: controller.NewStrategyController(services.Strategy, log.Named("controller")),
	}

	return &Dependencies{
		Config:      cfg,
		Logger:      log,
		Limiter:     limiter,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务，返回停止函数
func initTasks(deps *Dependencies) func() {
	if deps.Limiter == nil {
		return func() {}
	}

	// 冷却期的 10 倍以上没有请求的客户端可以安全移除
	maxAge := 10 * deps.Config.Generate.Cooldown
	if maxAge < 10*time.Minute {
		maxAge = 10 * time.Minute
	}

	cleanupTask := task.NewLimiterCleanupTask(deps.Limiter, maxAge, deps.Logger)
	if err := cleanupTask.Start(); err != nil {
		deps.Logger.Fatal("定时任务启动失败", zap.Error(err))
	}

	deps.Logger.Info("定时任务已启动")
	return cleanupTask.Stop
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(cfg config.ServerConfig, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("addr", cfg.Addr()), zap.String("gin_mode", cfg.GinMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务强制关闭", zap.Error(err))
		return
	}

	log.Info("服务已退出")
}
