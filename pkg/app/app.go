// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/levels"
	"github.com/decker502/golf/pkg/scenes"
	"github.com/decker502/golf/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "golf"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 起始关卡（0 = 默认布局），超出 0~levels.LastLevel 的值会被截断
	Level int
	// ConfigPath 覆盖默认值的 YAML 配置文件，为空则使用内置默认值
	ConfigPath string
	// ShotLogPath 击球日志 CSV 路径，为空则不记录
	ShotLogPath string
	// AssetsDir 外部素材目录，非空时覆盖配置文件中的 assets.dir
	AssetsDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	shotLog         *game.ShotLog

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 只有用户显式指定的配置文件无效或击球日志无法创建时返回错误；
// 存储、素材和音频的问题都会降级处理。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.AssetsDir != "" {
		gameConfig.Assets.Dir = cfg.AssetsDir
	}

	// 持久化存储，打不开时只在内存中保存设置和成绩
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings and scores will not persist)", err)
		store = nil
	}
	settingsManager := game.NewSettingsManager(store)
	saveManager := game.NewSaveManager(store)

	shotLog, err := game.OpenShotLog(cfg.ShotLogPath)
	if err != nil {
		return nil, fmt.Errorf("击球日志创建失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)
	resourceManager := game.NewResourceManager(audioContext, gameConfig.Assets.Dir)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{game.SoundShoot, game.SoundCharge, game.SoundHole})
	log.Printf("[App] AudioManager initialized")

	startLevel := clampLevel(cfg.Level)
	log.Printf("[App] Starting level: %d", startLevel)

	var listeners []game.SessionListener
	if shotLog != nil {
		listeners = append(listeners, shotLog)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(scenes.GameSceneOptions{
		Config:          gameConfig,
		ResourceManager: resourceManager,
		AudioManager:    audioManager,
		SaveManager:     saveManager,
		StartLevel:      startLevel,
		Listeners:       listeners,
	}))

	return &App{
		cfg:             gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		shotLog:         shotLog,
	}, nil
}

// clampLevel 把起始关卡限制在 0~LastLevel
func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > levels.LastLevel {
		return levels.LastLevel
	}
	return level
}

// ApplyWindowSettings 在 RunGame 之前设置窗口、TPS 和全屏
func (a *App) ApplyWindowSettings() {
	w := a.cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.TPS)
	ebiten.SetFullscreen(w.Fullscreen || a.settingsManager.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（TPS 由配置决定）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.cfg.TickDuration())
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Shutdown 退出前保存成绩并关闭击球日志
func (a *App) Shutdown() {
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: save on exit failed")
	}
	if err := a.shotLog.Close(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}
