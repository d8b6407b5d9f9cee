package systems

import (
	"math"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/utils"
	"gonum.org/v1/gonum/spatial/r2"
)

// PhysicsSystem 处理球的运动与碰撞
//
// 碰撞响应是固定的"翻转方向分量"模型：
// 没有冲量、旋转、恢复系数，唯一的阻力是与击球点距离相关的线性衰减。
type PhysicsSystem struct {
	cfg config.PhysicsConfig
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

// CheckHoleCapture 检查球是否入洞
// 球心与洞心距离严格小于两者半径之和（32）时为 true
func (ps *PhysicsSystem) CheckHoleCapture(s *game.Session) bool {
	// 球和洞使用相同的锚点偏移（半径），比较中心距离等价于直接比较位置
	distance := r2.Norm(r2.Sub(s.Ball.Position, s.Hole.Position))
	return distance < components.BallRadius+components.HoleRadius
}

// Update 推进运动中的球一帧：边界反弹 → 障碍物反弹 → 位移 → 速度衰减
//
// 参数:
//   - s: 会话状态
//   - dt: 单步时长（秒）
func (ps *PhysicsSystem) Update(s *game.Session, dt float64) {
	ps.BounceOffBorders(s)
	ps.BounceOffObstacles(s, dt)
	ps.Integrate(s, dt)
	ps.ApplyDecay(s, dt)
}

// BounceOffBorders 边界反弹
//
// 按 上 → 下 → 左 → 右 的顺序检查，每帧最多修正一条边（else-if 链）：
// 同时越过两条边的球在这一帧只修正第一条匹配的边。
// 修正方式是强制方向分量的符号朝向屏幕内侧，而不是取反，
// 因此球停留在边界外时不会每帧来回翻转。
func (ps *PhysicsSystem) BounceOffBorders(s *game.Session) {
	w, h := s.ScreenSize()
	margin := ps.cfg.BorderMargin
	pos := s.Ball.Position
	dir := &s.Ball.Direction

	if pos.Y < margin {
		dir.Y = math.Abs(dir.Y)
	} else if pos.Y > h-margin {
		dir.Y = -math.Abs(dir.Y)
	} else if pos.X < margin {
		dir.X = math.Abs(dir.X)
	} else if pos.X > w-margin {
		dir.X = -math.Abs(dir.X)
	}
}

// BounceOffObstacles 障碍物反弹
//
// 对每个障碍物独立检测：
//   - 只沿 X 前进一帧后的球盒与障碍物重叠 → 翻转 Direction.X
//   - 只沿 Y 前进一帧后的球盒与障碍物重叠 → 翻转 Direction.Y
//
// 碰撞盒固定为 ObstacleHitbox，与障碍物的尺寸类别无关。
// 多个障碍物同时重叠时方向会被多次翻转，不做去重。
func (ps *PhysicsSystem) BounceOffObstacles(s *game.Session, dt float64) {
	ball := &s.Ball
	bw, bh := components.BallHitbox.Width, components.BallHitbox.Height
	ow, oh := components.ObstacleHitbox.Width, components.ObstacleHitbox.Height

	for _, o := range s.Obstacles {
		// 预测位置使用本次循环时的最新方向
		step := r2.Scale(ball.Velocity*dt, ball.Direction)
		nextX := ball.Position.X + step.X
		nextY := ball.Position.Y + step.Y

		if utils.RectsOverlap(nextX, ball.Position.Y, bw, bh, o.Position.X, o.Position.Y, ow, oh) {
			ball.Direction.X = -ball.Direction.X
		}
		if utils.RectsOverlap(ball.Position.X, nextY, bw, bh, o.Position.X, o.Position.Y, ow, oh) {
			ball.Direction.Y = -ball.Direction.Y
		}
	}
}

// Integrate 位移：Position += Velocity * Direction * dt
func (ps *PhysicsSystem) Integrate(s *game.Session, dt float64) {
	ball := &s.Ball
	ball.Position = r2.Add(ball.Position, r2.Scale(ball.Velocity*dt, ball.Direction))
}

// ApplyDecay 速度衰减
//
// 衰减量取决于球当前位置与击球点（松开按键时的指针位置）的距离，
// 离击球点越远减速越快。速度最低截断为 0。
func (ps *PhysicsSystem) ApplyDecay(s *game.Session, dt float64) {
	ball := &s.Ball
	ball.Velocity -= utils.SpeedFromDrag(ball.ShotAnchor, ball.Position, ps.cfg.DecayDivisor) * dt
	if ball.Velocity < 0 {
		ball.Velocity = 0
	}
}
