package systems

import (
	"log"
	"math"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/levels"
	"gonum.org/v1/gonum/spatial/r2"
)

// CaptureOutcome 入洞动画单帧的结果
type CaptureOutcome int

const (
	// CaptureInProgress 动画仍在进行
	CaptureInProgress CaptureOutcome = iota
	// CaptureLevelCleared 动画结束，已切换到下一关
	CaptureLevelCleared
	// CaptureGameCompleted 动画结束，最后一关完成
	CaptureGameCompleted
)

// CaptureSystem 入洞缩小动画
//
// 入洞后球被固定在洞口，速度清零。第一帧播放入洞音效并设置抖动偏移，
// 之后每帧缩小一次并反转抖动方向；缩小到 min_scale 后清除抖动并进入下一关。
type CaptureSystem struct {
	cfg         config.CaptureConfig
	sounds      SoundPlayer
	shrinkTicks int // 从 1.0 缩小到 min_scale 需要的帧数
}

// NewCaptureSystem 创建入洞动画系统
func NewCaptureSystem(cfg config.CaptureConfig, sounds SoundPlayer) *CaptureSystem {
	// 用帧数而不是浮点比较判断动画结束，避免 1.0 - n*0.02 的累积误差多出一帧
	ticks := int(math.Round((1.0 - cfg.MinScale) / cfg.ScaleStep))
	if ticks < 1 {
		ticks = 1
	}
	return &CaptureSystem{
		cfg:         cfg,
		sounds:      sounds,
		shrinkTicks: ticks,
	}
}

// ShrinkTicks 完整缩小动画的帧数
func (cs *CaptureSystem) ShrinkTicks() int {
	return cs.shrinkTicks
}

// Update 推进入洞动画一帧
func (cs *CaptureSystem) Update(s *game.Session) CaptureOutcome {
	ball := &s.Ball
	ball.Velocity = 0
	ball.Position = s.Hole.Position

	if !s.Capture.IsActive() {
		s.Capture.Phase = components.CaptureShrinking
		s.Capture.Ticks = 0
		ball.Shake = r2.Vec{X: cs.cfg.Shake, Y: cs.cfg.Shake}
		cs.sounds.PlaySound(game.SoundHole)
		log.Printf("[CaptureSystem] Ball captured on level %d (strokes: %d)", s.Level, s.LevelStrokes())
	}

	if s.Capture.Ticks < cs.shrinkTicks {
		s.Capture.Ticks++
		ball.Scale = 1.0 - float64(s.Capture.Ticks)*cs.cfg.ScaleStep
		ball.Shake = r2.Scale(-1, ball.Shake)
		return CaptureInProgress
	}

	ball.Shake = r2.Vec{}
	s.Capture.Reset()

	if s.Level >= levels.LastLevel {
		s.Completed = true
		log.Printf("[CaptureSystem] Game completed with %d strokes", s.Strokes)
		return CaptureGameCompleted
	}

	next := s.Level + 1
	s.LoadLevel(next)
	log.Printf("[CaptureSystem] Advanced to level %d", next)
	return CaptureLevelCleared
}
