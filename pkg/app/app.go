// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/embedded"
	"github.com/gonewx/bemine/pkg/game"
	"github.com/gonewx/bemine/pkg/scenes"
	"github.com/gonewx/bemine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SceneConfigPath 磁盘上的场景配置，为空时使用嵌入的 data/scene.yaml
	SceneConfigPath string
	// Watch 监听 SceneConfigPath 的变化并热重载
	Watch bool
	// MaxFrameDelta 单帧时间步长上限（秒），<= 0 时使用 DefaultMaxFrameDelta
	MaxFrameDelta float64
}

// DefaultMaxFrameDelta 默认单帧时间步长上限（秒）
const DefaultMaxFrameDelta = 0.1

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	sceneConfig  *config.SceneConfig
	configPath   string
	watcher      *config.Watcher
	clock        *frameClock
	verbose      bool
	mobile       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 从磁盘加载配置时不需要 embedded 包；否则调用前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := loadSceneConfig(cfg.SceneConfigPath)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文（每个进程只能创建一次）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager, err := game.NewAudioManager(audioContext, sceneConfig.Audio)
	if err != nil {
		return nil, fmt.Errorf("音频初始化失败: %w", err)
	}
	log.Printf("[App] AudioManager initialized")

	maxDelta := cfg.MaxFrameDelta
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		audioManager: audioManager,
		sceneConfig:  sceneConfig,
		configPath:   cfg.SceneConfigPath,
		clock:        newFrameClock(maxDelta, time.Now),
		verbose:      cfg.Verbose,
		mobile:       utils.IsMobile(),
	}

	pointer := utils.NewPointerTracker()
	a.sceneManager.SetSceneFactory(func() game.Scene {
		scene, err := scenes.NewGreetingScene(a.sceneManager, a.sceneConfig, a.audioManager, pointer.Poll)
		if err != nil {
			log.Printf("[App] 错误: 场景创建失败: %v", err)
			return nil
		}
		return scene
	})
	a.sceneManager.Reload()

	if cfg.Watch {
		if a.mobile {
			log.Printf("[App] 移动端不支持配置监听，已忽略")
		} else if cfg.SceneConfigPath == "" {
			log.Printf("[App] Watch 需要指定磁盘上的配置文件，已忽略")
		} else {
			w, err := config.NewWatcher(filepath.Dir(cfg.SceneConfigPath))
			if err != nil {
				return nil, fmt.Errorf("配置监听启动失败: %w", err)
			}
			a.watcher = w
			log.Printf("[App] Watching %s", cfg.SceneConfigPath)
		}
	}

	return a, nil
}

// loadSceneConfig 从磁盘或嵌入资源加载场景配置
//
// 两者都没有时使用内置默认值。
func loadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载场景配置: %s", path)
		return cfg, nil
	}

	data, err := embedded.ReadFile(config.DefaultSceneConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) {
		log.Printf("[Config] 未初始化嵌入资源，使用默认场景配置")
		return config.DefaultSceneConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("嵌入场景配置读取失败: %w", err)
	}
	cfg, err := config.LoadSceneConfigFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("嵌入场景配置解析失败: %w", err)
	}
	return cfg, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !a.mobile && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.drainWatcher()

	a.sceneManager.Update(a.clock.Tick())
	return nil
}

// drainWatcher 处理所有待处理的配置变化（不阻塞）
func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case name := <-a.watcher.Events:
			if filepath.Clean(name) != filepath.Clean(a.configPath) {
				continue
			}
			a.reloadConfig()
		case err := <-a.watcher.Errors:
			log.Printf("[App] Warning: config watcher: %v", err)
		default:
			return
		}
	}
}

// reloadConfig 重新读取配置文件并交给当前场景
//
// 解析失败时保留旧配置。新配置总会用于之后重新创建的场景。
func (a *App) reloadConfig() {
	cfg, err := config.LoadSceneConfig(a.configPath)
	if err != nil {
		log.Printf("[App] Warning: 配置重载失败，保留旧配置: %v", err)
		return
	}
	a.sceneConfig = cfg
	if err := a.sceneManager.ApplyConfig(cfg); err != nil {
		log.Printf("[App] 配置将在下次返回时生效: %v", err)
		return
	}
	log.Printf("[App] 配置已热重载")
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放配置监听等资源
func (a *App) Close() error {
	a.audioManager.Stop()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
