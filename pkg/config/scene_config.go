package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultSceneConfigPath 嵌入的默认场景配置路径
const DefaultSceneConfigPath = "data/scene.yaml"

// Vec3Config YAML 中的三维向量，写作 [x, y, z]
type Vec3Config [3]float64

// Vec3 转换为 mgl64.Vec3
func (v Vec3Config) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// SizeConfig 盒体尺寸
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// SceneConfig 问候场景配置
//
// 配置文件位置: data/scene.yaml（嵌入），可通过 --config 指定磁盘文件覆盖。
type SceneConfig struct {
	Platform PlatformConfig `yaml:"platform"`
	Avatar   AvatarConfig   `yaml:"avatar"`
	Lights   LightsConfig   `yaml:"lights"`
	UI       UIConfig       `yaml:"ui"`
	Audio    AudioConfig    `yaml:"audio"`
}

// PlatformConfig 平台脚本动画的关键帧和速度
//
// 关键帧在一个触发周期内不可变；热重载只在平台处于 idle 阶段时生效。
type PlatformConfig struct {
	StartPosition Vec3Config `yaml:"startPosition"`
	EndPosition   Vec3Config `yaml:"endPosition"`
	// StartRotation / EndRotation 欧拉角（弧度）
	StartRotation Vec3Config `yaml:"startRotation"`
	EndRotation   Vec3Config `yaml:"endRotation"`
	StartSize     SizeConfig `yaml:"startSize"`
	EndSize       SizeConfig `yaml:"endSize"`

	// TransitionSpeed 过渡进度增长速度（每秒），0.5 表示约 2 秒完成
	TransitionSpeed float64 `yaml:"transitionSpeed"`
	// SpinSpeed 旋转阶段角速度（弧度/秒）
	SpinSpeed float64 `yaml:"spinSpeed"`
	// SpinAxis 旋转轴："x" / "y" / "z"
	SpinAxis string `yaml:"spinAxis"`
}

// AvatarConfig 角色光环配置
type AvatarConfig struct {
	Position Vec3Config `yaml:"position"`
	Rotation Vec3Config `yaml:"rotation"`
	Radius   float64    `yaml:"radius"`
	Scale    float64    `yaml:"scale"`
	// SpinSpeed 绕自身 Z 轴的角速度（弧度/秒），从一开始就在转
	SpinSpeed float64 `yaml:"spinSpeed"`
	// DropOffset 未接受前角色在 Y 方向上的偏移（在画面外）
	DropOffset float64 `yaml:"dropOffset"`
	// DropDuration 落下动画时长（秒）
	DropDuration float64 `yaml:"dropDuration"`
}

// LightsConfig 庆祝阶段的聚光灯
type LightsConfig struct {
	Positions []Vec3Config `yaml:"positions"`
	// Colors 颜色名（golang.org/x/image/colornames），与 Positions 一一对应
	Colors        []string `yaml:"colors"`
	YawPeriod     float64  `yaml:"yawPeriod"`
	SwayAmplitude float64  `yaml:"swayAmplitude"`
	SwayDuration  float64  `yaml:"swayDuration"`
}

// UIConfig 界面文字和时序
type UIConfig struct {
	AskMessage       string `yaml:"askMessage"`
	CelebrateMessage string `yaml:"celebrateMessage"`
	YesLabel         string `yaml:"yesLabel"`
	NoLabel          string `yaml:"noLabel"`
	BackLabel        string `yaml:"backLabel"`

	// ExitDuration 按钮和提问退场时长（秒）
	ExitDuration float64 `yaml:"exitDuration"`
	// ExitDistance 退场位移（像素）
	ExitDistance float64 `yaml:"exitDistance"`
	// RevealDelay 点击 Yes 后进入庆祝阶段的等待（秒）
	RevealDelay float64 `yaml:"revealDelay"`
	// FadeInDelay / FadeInDuration 庆祝文字和返回按钮的淡入
	FadeInDelay    float64 `yaml:"fadeInDelay"`
	FadeInDuration float64 `yaml:"fadeInDuration"`

	// DodgeSlots No 按钮可跳跃的随机位置数量
	DodgeSlots int `yaml:"dodgeSlots"`
	// DodgeSeed 随机位置种子，0 表示每次启动随机
	DodgeSeed uint64 `yaml:"dodgeSeed"`
}

// AudioConfig 接受后播放的旋律
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// NoteDuration 每个音符时长（秒）
	NoteDuration float64 `yaml:"noteDuration"`
	// Notes 音名序列（如 "C5"、"E5"），"-" 表示休止
	Notes []string `yaml:"notes"`
}

// DefaultSceneConfig 返回与原始页面一致的默认配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Platform: PlatformConfig{
			StartPosition:   Vec3Config{0, 0, 0},
			EndPosition:     Vec3Config{0, 0, -5},
			StartRotation:   Vec3Config{0, 0, 0},
			EndRotation:     Vec3Config{-math.Pi / 2.5, 0, 0},
			StartSize:       SizeConfig{Width: 13, Height: 8, Depth: 0.2},
			EndSize:         SizeConfig{Width: 10, Height: 10, Depth: 0.2},
			TransitionSpeed: 0.5,
			SpinSpeed:       0.8,
			SpinAxis:        "z",
		},
		Avatar: AvatarConfig{
			Position:     Vec3Config{0, -0.3327, 0.53},
			Rotation:     Vec3Config{-0.4 * math.Pi, 0, 0},
			Radius:       0.6,
			Scale:        1,
			SpinSpeed:    0.8,
			DropOffset:   20,
			DropDuration: 1.2,
		},
		Lights: LightsConfig{
			Positions: []Vec3Config{
				{-2, 4, -2}, {4, 4, -3}, {0, 4, 2}, {-4, 4, -1}, {2, 4, 5},
			},
			Colors:        []string{"red", "purple", "red", "purple", "red"},
			YawPeriod:     5,
			SwayAmplitude: 1,
			SwayDuration:  2,
		},
		UI: UIConfig{
			AskMessage:       "Will you be my valentine?",
			CelebrateMessage: "Lets goooo!",
			YesLabel:         "Yes!",
			NoLabel:          "No!",
			BackLabel:        "Go back",
			ExitDuration:     0.5,
			ExitDistance:     1000,
			RevealDelay:      1,
			FadeInDelay:      1,
			FadeInDuration:   1.2,
			DodgeSlots:       50,
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       0.4,
			NoteDuration: 0.3,
			Notes:        []string{"C5", "E5", "G5", "E5", "A5", "G5", "-", "E5", "F5", "E5", "D5", "C5", "-", "-"},
		},
	}
}

// LoadSceneConfig 从磁盘加载场景配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return LoadSceneConfigFromBytes(data)
}

// LoadSceneConfigFromBytes 从 YAML 数据解析场景配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只写需要修改的部分。
func LoadSceneConfigFromBytes(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *SceneConfig) Validate() error {
	p := c.Platform
	if p.TransitionSpeed <= 0 {
		return fmt.Errorf("platform.transitionSpeed must be > 0, got %v", p.TransitionSpeed)
	}
	if p.SpinSpeed < 0 {
		return fmt.Errorf("platform.spinSpeed must be >= 0, got %v", p.SpinSpeed)
	}
	switch strings.ToLower(p.SpinAxis) {
	case "x", "y", "z":
	default:
		return fmt.Errorf("platform.spinAxis must be x, y or z, got %q", p.SpinAxis)
	}
	for name, s := range map[string]SizeConfig{"startSize": p.StartSize, "endSize": p.EndSize} {
		if s.Width < 0 || s.Height < 0 || s.Depth < 0 {
			return fmt.Errorf("platform.%s must not be negative, got %+v", name, s)
		}
	}

	if c.Avatar.DropDuration < 0 {
		return fmt.Errorf("avatar.dropDuration must be >= 0, got %v", c.Avatar.DropDuration)
	}
	if c.Avatar.Radius <= 0 {
		return fmt.Errorf("avatar.radius must be > 0, got %v", c.Avatar.Radius)
	}

	if len(c.Lights.Colors) != len(c.Lights.Positions) {
		return fmt.Errorf("lights: %d positions but %d colors", len(c.Lights.Positions), len(c.Lights.Colors))
	}
	for _, name := range c.Lights.Colors {
		if _, ok := colornames.Map[strings.ToLower(name)]; !ok {
			return fmt.Errorf("lights: unknown color name %q", name)
		}
	}
	if c.Lights.YawPeriod <= 0 || c.Lights.SwayDuration <= 0 {
		return fmt.Errorf("lights.yawPeriod and lights.swayDuration must be > 0")
	}

	u := c.UI
	if u.ExitDuration < 0 || u.RevealDelay < 0 || u.FadeInDelay < 0 || u.FadeInDuration < 0 {
		return fmt.Errorf("ui durations must not be negative")
	}
	if u.DodgeSlots < 1 {
		return fmt.Errorf("ui.dodgeSlots must be >= 1, got %d", u.DodgeSlots)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	if c.Audio.Enabled && c.Audio.NoteDuration <= 0 {
		return fmt.Errorf("audio.noteDuration must be > 0, got %v", c.Audio.NoteDuration)
	}

	return nil
}
