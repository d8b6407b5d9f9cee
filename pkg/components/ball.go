package components

import "gonum.org/v1/gonum/spatial/r2"

// BallRadius 球的半径（像素）
const BallRadius = 16.0

// BallComponent 存储高尔夫球的运动与显示状态
//
// 坐标约定：
//   - Position 同时作为碰撞盒左上角锚点（32x32）和渲染中心使用
//   - Direction 为单位向量，表示当前行进方向，与 Rotation（纯显示）无关
type BallComponent struct {
	Position  r2.Vec  // 当前位置
	Velocity  float64 // 标量速度，永不为负；<= 0 表示静止
	Direction r2.Vec  // 行进方向（单位向量）

	// Rotation 瞄准角（弧度），约定见 utils.AimAngle
	// 仅用于绘制瞄准箭头，不参与物理计算
	Rotation float64

	// Scale 显示缩放（1.0 = 原始大小），入洞动画时逐步缩小
	Scale float64

	// 击球锚点：仅用于速度条归一化与速度衰减
	ShotAnchor      r2.Vec // 松开按键瞬间的指针位置
	PreShotPosition r2.Vec // 击球前球的位置

	// Shake 入洞抖动偏移，仅影响渲染位置
	Shake r2.Vec
}

// IsAtRest 球是否静止（可接受新的击球输入）
func (b *BallComponent) IsAtRest() bool {
	return b.Velocity <= 0
}

// RenderPosition 返回渲染位置（叠加抖动偏移）
// 抖动只是视觉效果，不会回写到物理位置
func (b *BallComponent) RenderPosition() r2.Vec {
	return r2.Sub(b.Position, b.Shake)
}
