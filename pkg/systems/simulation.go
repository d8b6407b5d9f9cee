package systems

import (
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"gonum.org/v1/gonum/spatial/r2"
)

// SoundPlayer 播放音效
// 播放失败由实现方记录日志，模拟本身从不因音效失败而中断
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// silentPlayer 不播放任何声音
type silentPlayer struct{}

func (silentPlayer) PlaySound(string) bool { return false }

// Simulation 游戏状态机
//
// 串联击球输入、物理运动、入洞动画和关卡推进，决定球当前处于哪个阶段：
//   - 运动中（速度 > 0 且未入洞）：PhysicsSystem
//   - 入洞（HitHole）：CaptureSystem
//   - 静止（速度 <= 0 且未入洞）：ShotSystem 蓄力预览
//
// 所有方法都在同一个线程上、在两次模拟步进之间同步调用。
type Simulation struct {
	physics *PhysicsSystem
	capture *CaptureSystem
	shot    *ShotSystem

	dt        float64
	tick      int64
	listeners []game.SessionListener
}

// NewSimulation 创建状态机
// sounds 为 nil 时静音运行（无头模式、测试）
func NewSimulation(cfg *config.GameConfig, sounds SoundPlayer) *Simulation {
	if sounds == nil {
		sounds = silentPlayer{}
	}
	return &Simulation{
		physics: NewPhysicsSystem(cfg.Physics),
		capture: NewCaptureSystem(cfg.Capture, sounds),
		shot:    NewShotSystem(cfg.Physics, cfg.Aim, sounds),
		dt:      cfg.TickDuration(),
	}
}

// AddListener 订阅击球和过关事件
func (sim *Simulation) AddListener(l game.SessionListener) {
	if l != nil {
		sim.listeners = append(sim.listeners, l)
	}
}

// Ticks 已执行的模拟步数
func (sim *Simulation) Ticks() int64 {
	return sim.tick
}

// Physics 物理系统（供调试工具单独驱动）
func (sim *Simulation) Physics() *PhysicsSystem {
	return sim.physics
}

// Capture 入洞动画系统
func (sim *Simulation) Capture() *CaptureSystem {
	return sim.capture
}

// Step 执行一个固定步长的模拟帧
func (sim *Simulation) Step(s *game.Session, in PointerInput) {
	if s.Completed {
		return
	}
	sim.tick++

	s.HitHole = sim.physics.CheckHoleCapture(s)
	// 入洞判定以帧开始时为准，切关后的这一帧不处理蓄力
	hit := s.HitHole

	if s.Ball.Velocity > 0 && !hit {
		sim.physics.Update(s, sim.dt)
	} else if hit {
		level, levelStrokes := s.Level, s.LevelStrokes()
		switch sim.capture.Update(s) {
		case CaptureLevelCleared:
			sim.notifyLevelCleared(s, level, levelStrokes, false)
		case CaptureGameCompleted:
			sim.notifyLevelCleared(s, level, levelStrokes, true)
		}
	}

	if s.Ball.IsAtRest() && !hit && !s.Completed {
		sim.shot.UpdateCharge(s, in)
	}
}

// Press 发射键按下事件
func (sim *Simulation) Press(s *game.Session) {
	sim.shot.Press(s)
}

// Release 发射键松开事件，返回是否发射
func (sim *Simulation) Release(s *game.Session, pointer r2.Vec) bool {
	event, ok := sim.shot.Release(s, pointer)
	if !ok {
		return false
	}
	event.Tick = sim.tick
	for _, l := range sim.listeners {
		l.OnShot(event)
	}
	return true
}

func (sim *Simulation) notifyLevelCleared(s *game.Session, level, strokes int, completed bool) {
	result := game.LevelResult{
		Tick:         sim.tick,
		Level:        level,
		Strokes:      strokes,
		TotalStrokes: s.Strokes,
		Completed:    completed,
		StartLevel:   s.StartLevel,
	}
	for _, l := range sim.listeners {
		l.OnLevelCleared(result)
	}
}
