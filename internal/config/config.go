package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 服务配置
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Generate GenerateConfig
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port              string
	GinMode           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Addr 监听地址
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string // debug / info / warn / error
	Format string // json / console
}

// GenerateConfig 生成接口配置
type GenerateConfig struct {
	// Cooldown 同一客户端两次生成之间的最小间隔，0 表示不限流
	Cooldown time.Duration
}

// 配置项 key，同时也是环境变量名
const (
	KeyServerPort        = "SERVER_PORT"
	KeyGinMode           = "GIN_MODE"
	KeyReadHeaderTimeout = "READ_HEADER_TIMEOUT"
	KeyShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	KeyLogLevel          = "LOG_LEVEL"
	KeyLogFormat         = "LOG_FORMAT"
	KeyGenerateCooldown  = "GENERATE_COOLDOWN"
)

// Load 加载配置
// 优先级：环境变量 > .env > configs/config.yaml > 默认值
func Load() (*Config, error) {
	loadEnvFile(".env", "../.env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetString(KeyServerPort),
			GinMode:           v.GetString(KeyGinMode),
			ReadHeaderTimeout: v.GetDuration(KeyReadHeaderTimeout),
			ShutdownTimeout:   v.GetDuration(KeyShutdownTimeout),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Generate: GenerateConfig{
			Cooldown: v.GetDuration(KeyGenerateCooldown),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New(KeyServerPort + " 不能为空")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New(KeyShutdownTimeout + " 必须大于 0")
	}
	if c.Generate.Cooldown < 0 {
		return errors.New(KeyGenerateCooldown + " 不能为负数")
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%s 不支持: %s", KeyGinMode, c.Server.GinMode)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, "8080")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyReadHeaderTimeout, 10*time.Second)
	v.SetDefault(KeyShutdownTimeout, 30*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyGenerateCooldown, time.Duration(0))
}

// loadEnvFile 加载第一个存在的 .env 文件，不覆盖已有环境变量
func loadEnvFile(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
