package systems

import (
	"log"

	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointerInput 每帧采样的指针状态
type PointerInput struct {
	Position r2.Vec // 指针位置（屏幕坐标）
	Held     bool   // 发射键是否按住
}

// ShotSystem 把拖拽输入转换为击球
//
// 蓄力值每帧根据指针与球的当前距离重新计算（不随按住时间累积），
// 只有松开按键才会真正发射，也只有这里会增加杆数。
type ShotSystem struct {
	physics config.PhysicsConfig
	aim     config.AimConfig
	sounds  SoundPlayer
}

// NewShotSystem 创建击球系统
func NewShotSystem(physics config.PhysicsConfig, aim config.AimConfig, sounds SoundPlayer) *ShotSystem {
	return &ShotSystem{
		physics: physics,
		aim:     aim,
		sounds:  sounds,
	}
}

// UpdateCharge 球静止时更新蓄力预览
func (ss *ShotSystem) UpdateCharge(s *game.Session, in PointerInput) {
	if !in.Held {
		s.Holding = false
		s.Charge = 0
		return
	}
	s.Holding = true
	s.Charge = utils.SpeedFromDrag(in.Position, s.Ball.Position, ss.physics.LaunchDivisor)
	s.Ball.Rotation = ss.aimAngle(s.Ball.Position, in.Position)
}

// Press 处理发射键按下
// 尚未蓄力时播放蓄力音效，每个蓄力周期只触发一次
func (ss *ShotSystem) Press(s *game.Session) bool {
	if s.Completed || s.Charge > 0 {
		return false
	}
	ss.sounds.PlaySound(game.SoundCharge)
	return true
}

// Release 处理发射键松开
//
// 有蓄力、球静止且未入洞时发射：速度取蓄力值，方向由瞄准角换算，
// 记录击球点和击球前位置，杆数加一。
//
// 返回：
//   - game.ShotEvent: 击球信息（Tick 由调用方填写）
//   - bool: 是否发射
func (ss *ShotSystem) Release(s *game.Session, pointer r2.Vec) (game.ShotEvent, bool) {
	ball := &s.Ball
	if s.Charge <= 0 || !ball.IsAtRest() || s.HitHole || s.Completed {
		return game.ShotEvent{}, false
	}

	ss.sounds.PlaySound(game.SoundShoot)

	ball.Velocity = s.Charge
	ball.Direction = utils.FacingAngleToTravelDirection(ball.Rotation)
	ball.ShotAnchor = pointer
	ball.PreShotPosition = ball.Position
	s.Holding = false
	s.Strokes++

	log.Printf("[ShotSystem] Shot #%d on level %d: speed=%.2f dir=(%.3f, %.3f)",
		s.Strokes, s.Level, ball.Velocity, ball.Direction.X, ball.Direction.Y)

	return game.ShotEvent{
		Level:     s.Level,
		Stroke:    s.Strokes,
		Ball:      ball.PreShotPosition,
		Pointer:   pointer,
		Speed:     ball.Velocity,
		Direction: ball.Direction,
	}, true
}

// aimAngle 计算瞄准角
// 默认朝指针方向发射；pull_back 模式下朝指针的反方向发射
func (ss *ShotSystem) aimAngle(ball, pointer r2.Vec) float64 {
	if ss.aim.PullBack {
		return utils.AimAngle(pointer, ball)
	}
	return utils.AimAngle(ball, pointer)
}
