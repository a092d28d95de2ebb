package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 从环境变量读取的启动配置
//
// 命令行参数优先于环境变量，见 main.go。
type EnvConfig struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"BEMINE_VERBOSE" envDefault:"false"`
	// SceneConfigPath 磁盘上的场景配置文件，为空时使用嵌入的 data/scene.yaml
	SceneConfigPath string `env:"BEMINE_SCENE_CONFIG"`
	// Watch 监听场景配置文件变化并热重载（需要 SceneConfigPath）
	Watch bool `env:"BEMINE_WATCH" envDefault:"false"`
	// MaxFrameDelta 单帧时间步长上限（秒），防止窗口切回后跳帧
	MaxFrameDelta float64 `env:"BEMINE_MAX_FRAME_DELTA" envDefault:"0.1"`
}

// LoadEnvConfig 解析环境变量
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxFrameDelta <= 0 {
		return EnvConfig{}, fmt.Errorf("BEMINE_MAX_FRAME_DELTA must be > 0, got %v", cfg.MaxFrameDelta)
	}
	return cfg, nil
}
