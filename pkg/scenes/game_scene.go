package scenes

import (
	"log"

	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/levels"
	"github.com/decker502/golf/pkg/systems"
	"github.com/decker502/golf/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// volumeStep 每次按 -/= 调整的音量
const volumeStep = 0.1

// GameScene 高尔夫游戏主场景
//
// 持有唯一的 Session，每个 tick 把指针输入交给 Simulation，
// 渲染时只读取 Session。
type GameScene struct {
	cfg             *config.GameConfig
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager // 可为 nil（静音运行）
	saveManager     *game.SaveManager  // 可为 nil（不记录成绩）

	session *game.Session
	sim     *systems.Simulation
	pointer *utils.PointerTracker
}

// GameSceneOptions 创建场景所需的依赖
type GameSceneOptions struct {
	Config          *config.GameConfig
	ResourceManager *game.ResourceManager
	AudioManager    *game.AudioManager
	SaveManager     *game.SaveManager
	// StartLevel 起始关卡，0 表示默认布局
	StartLevel int
	// Listeners 额外的会话事件订阅者（如击球日志）
	Listeners []game.SessionListener
}

// NewGameScene 创建游戏场景
func NewGameScene(opts GameSceneOptions) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	var sounds systems.SoundPlayer
	if opts.AudioManager != nil {
		sounds = opts.AudioManager
	}

	w, h := cfg.ScreenSize()
	session := game.NewSession(w, h)
	if opts.StartLevel != 0 {
		session.StartAt(opts.StartLevel)
	}

	sim := systems.NewSimulation(cfg, sounds)
	if opts.SaveManager != nil {
		sim.AddListener(opts.SaveManager)
	}
	for _, l := range opts.Listeners {
		sim.AddListener(l)
	}

	log.Printf("[GameScene] Starting at %s (%d obstacles)", levels.Name(session.Level), len(session.Obstacles))

	return &GameScene{
		cfg:             cfg,
		resourceManager: opts.ResourceManager,
		audioManager:    opts.AudioManager,
		saveManager:     opts.SaveManager,
		session:         session,
		sim:             sim,
		pointer:         utils.NewPointerTracker(),
	}
}

// Session 当前会话（只读使用）
func (s *GameScene) Session() *game.Session {
	return s.session
}

// Update 每个 tick 调用一次
// 模拟使用配置中的固定步长，deltaTime 只用于和其他场景保持接口一致
func (s *GameScene) Update(deltaTime float64) {
	if s.audioManager != nil {
		switch {
		case utils.IsKeyJustPressed(ebiten.KeyM):
			s.audioManager.ToggleSound()
		case utils.IsKeyJustPressed(ebiten.KeyMinus):
			s.audioManager.AdjustSoundVolume(-volumeStep)
		case utils.IsKeyJustPressed(ebiten.KeyEqual):
			s.audioManager.AdjustSoundVolume(volumeStep)
		}
	}
	s.handlePointer(s.pointer.Poll())
}

// handlePointer 处理一帧指针输入并推进模拟
// 按下/松开事件在本帧模拟之前处理
func (s *GameScene) handlePointer(frame utils.PointerFrame) {
	if frame.JustPressed {
		s.sim.Press(s.session)
	}
	if frame.JustReleased {
		s.sim.Release(s.session, frame.Position)
	}
	s.sim.Step(s.session, systems.PointerInput{
		Position: frame.Position,
		Held:     frame.Held,
	})
}

// SaveOnExit 实现 game.Saveable
func (s *GameScene) SaveOnExit() bool {
	if s.saveManager == nil {
		return true
	}
	if err := s.saveManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save on exit: %v", err)
		return false
	}
	return true
}
