package game

import (
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/levels"
	"github.com/decker502/golf/pkg/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// Session 一局游戏的全部状态
//
// 这是模拟步进和输入处理唯一读写的状态值，由场景持有并显式传递给各系统，
// 不存在全局单例。关卡切换时只重建球、洞和障碍物；
// 杆数和关卡序号在整个进程生命周期内保留。
type Session struct {
	Ball      components.BallComponent
	Hole      components.HoleComponent
	Obstacles []components.ObstacleComponent
	Capture   components.CaptureAnimation

	Level      int  // 当前关卡序号（0 = 默认布局）
	StartLevel int  // 本局的起始关卡
	Strokes    int  // 累计杆数，只增不减
	Completed  bool // 已通关（终态）
	HitHole    bool // 本帧是否入洞，每帧重新计算
	Charge     float64
	Holding    bool // 发射键是否按住

	// levelStartStrokes 进入当前关卡时的累计杆数，用于统计单关杆数
	levelStartStrokes int

	screenW, screenH float64
}

// NewSession 创建新会话，球和洞使用默认布局（关卡 0）
func NewSession(screenW, screenH float64) *Session {
	s := &Session{
		screenW: screenW,
		screenH: screenH,
	}
	s.LoadLevel(0)
	return s
}

// StartAt 从指定关卡开始一局
// 与 LoadLevel 不同，它同时记下起始关卡，用于判断通关是否为完整的一局
func (s *Session) StartAt(ordinal int) {
	s.LoadLevel(ordinal)
	s.StartLevel = ordinal
}

// LoadLevel 切换到指定关卡
//
// 清空旧障碍物后按关卡表重建，重置球的位置、速度、缩放和抖动，
// 并清除蓄力和入洞动画状态。超出范围的序号使用默认布局。
func (s *Session) LoadLevel(ordinal int) {
	layout := levels.Load(ordinal, s.screenW, s.screenH)

	s.Level = ordinal
	s.Obstacles = s.Obstacles[:0]
	s.Obstacles = append(s.Obstacles, layout.Obstacles...)

	s.Ball.Position = layout.BallStart
	s.Ball.Velocity = 0
	s.Ball.Scale = 1.0
	s.Ball.Shake = r2.Vec{}
	s.Hole.Position = layout.HolePosition

	s.Capture.Reset()
	s.HitHole = false
	s.Charge = 0
	s.Holding = false
	s.levelStartStrokes = s.Strokes
}

// LevelStrokes 当前关卡已用杆数
func (s *Session) LevelStrokes() int {
	return s.Strokes - s.levelStartStrokes
}

// ScreenSize 逻辑屏幕尺寸
func (s *Session) ScreenSize() (float64, float64) {
	return s.screenW, s.screenH
}

// ---- 供渲染层读取 ----

// RenderPosition 球的渲染位置（含抖动）
func (s *Session) RenderPosition() r2.Vec {
	return s.Ball.RenderPosition()
}

// HolePosition 球洞位置
func (s *Session) HolePosition() r2.Vec {
	return s.Hole.Position
}

// ObstaclePositions 障碍物位置列表，与 ObstacleSizeClasses 一一对应
func (s *Session) ObstaclePositions() []r2.Vec {
	out := make([]r2.Vec, len(s.Obstacles))
	for i, o := range s.Obstacles {
		out[i] = o.Position
	}
	return out
}

// ObstacleSizeClasses 障碍物尺寸类别列表，与 ObstaclePositions 一一对应
func (s *Session) ObstacleSizeClasses() []components.SizeClass {
	out := make([]components.SizeClass, len(s.Obstacles))
	for i, o := range s.Obstacles {
		out[i] = o.Size
	}
	return out
}

// ChargeFraction 蓄力条填充比例
func (s *Session) ChargeFraction(fullCharge float64) float64 {
	if fullCharge <= 0 {
		return 0
	}
	return utils.Clamp01(s.Charge / fullCharge)
}

// VelocityFraction 击球后速度条填充比例
// 以击球时指针与球的距离为满值
func (s *Session) VelocityFraction(divisor float64) float64 {
	if s.Ball.Velocity <= 0 {
		return 0
	}
	full := utils.SpeedFromDrag(s.Ball.ShotAnchor, s.Ball.PreShotPosition, divisor)
	if full <= 0 {
		return 1
	}
	return utils.Clamp01(s.Ball.Velocity / full)
}
