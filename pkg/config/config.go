// Package config 提供游戏配置的加载与访问
//
// 默认值来自内嵌的 defaults.yaml，用户配置文件覆盖在默认值之上。
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// GameConfig 游戏全部配置
type GameConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Aim     AimConfig     `yaml:"aim"`
	Capture CaptureConfig `yaml:"capture"`
	HUD     HUDConfig     `yaml:"hud"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// WindowConfig 窗口与逻辑屏幕
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TPS        int    `yaml:"tps"` // 固定步长模拟频率
	Fullscreen bool   `yaml:"fullscreen"`
}

// PhysicsConfig 运动参数
type PhysicsConfig struct {
	BorderMargin  float64 `yaml:"border_margin"`
	LaunchDivisor float64 `yaml:"launch_divisor"`
	DecayDivisor  float64 `yaml:"decay_divisor"`
}

// AimConfig 瞄准方式
type AimConfig struct {
	PullBack bool `yaml:"pull_back"`
}

// CaptureConfig 入洞动画参数
type CaptureConfig struct {
	ScaleStep float64 `yaml:"scale_step"`
	MinScale  float64 `yaml:"min_scale"`
	Shake     float64 `yaml:"shake"`
}

// HUDConfig 界面参数
type HUDConfig struct {
	ChargeBarFull      float64 `yaml:"charge_bar_full"`
	VelocityBarDivisor float64 `yaml:"velocity_bar_divisor"`
	FontSize           float64 `yaml:"font_size"`
	BannerFontSize     float64 `yaml:"banner_font_size"`
}

// AudioConfig 音频参数
type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
}

// AssetsConfig 外部素材目录
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Default 返回内嵌默认配置
func Default() *GameConfig {
	cfg, err := parse(defaultsYAML, nil)
	if err != nil {
		// 内嵌配置由测试保证可解析
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load 加载配置
// path 为空时返回默认配置；否则将该 YAML 文件覆盖到默认值之上
func Load(path string) (*GameConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := parse(defaultsYAML, data)
	if err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// parse 依次解析默认值和覆盖值，然后校验
func parse(defaults, overlay []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaults, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse defaults: %w", err)
	}
	if overlay != nil {
		if err := yaml.Unmarshal(overlay, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置取值
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Physics.BorderMargin < 0 {
		return fmt.Errorf("physics.border_margin cannot be negative, got %v", c.Physics.BorderMargin)
	}
	if c.Physics.LaunchDivisor <= 0 || c.Physics.DecayDivisor <= 0 {
		return fmt.Errorf("physics divisors must be positive")
	}
	if c.Capture.ScaleStep <= 0 {
		return fmt.Errorf("capture.scale_step must be positive, got %v", c.Capture.ScaleStep)
	}
	if c.Capture.MinScale < 0 || c.Capture.MinScale >= 1 {
		return fmt.Errorf("capture.min_scale must be in [0, 1), got %v", c.Capture.MinScale)
	}
	if c.HUD.ChargeBarFull <= 0 || c.HUD.VelocityBarDivisor <= 0 {
		return fmt.Errorf("hud bar divisors must be positive")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// TickDuration 单步模拟时长（秒）
func (c *GameConfig) TickDuration() float64 {
	return 1.0 / float64(c.Window.TPS)
}

// ScreenSize 逻辑屏幕尺寸
func (c *GameConfig) ScreenSize() (float64, float64) {
	return float64(c.Window.Width), float64(c.Window.Height)
}
