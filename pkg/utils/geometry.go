package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// minDivisor 除数绝对值小于此值时视为零
const minDivisor = 1e-9

// SpeedFromDrag 将两点之间的距离按 divisor 换算为速度
//
// 用途：
//   - 拖拽距离 → 发射速度（divisor 调节灵敏度）
//   - 距击球点的距离 → 每帧速度衰减
//   - 速度条填充比例的归一化
//
// 函数内部不做截断，由调用方负责。divisor 近似为零时返回 0。
func SpeedFromDrag(anchor, current r2.Vec, divisor float64) float64 {
	if math.Abs(divisor) < minDivisor {
		return 0
	}
	return r2.Norm(r2.Sub(anchor, current)) / divisor
}

// DirectionFromAngle 将角度转换为单位方向向量 (sin(angle), cos(angle))
//
// 角度约定：0 指向 +Y（屏幕坐标系中向下），正角度朝 +X 旋转。
// 本包内所有角度都使用这一约定。
func DirectionFromAngle(angle float64) r2.Vec {
	return r2.Vec{X: math.Sin(angle), Y: math.Cos(angle)}
}

// AimAngle 返回从 from 指向 to 的角度（DirectionFromAngle 约定）
// 两点重合时返回 0
func AimAngle(from, to r2.Vec) float64 {
	return math.Atan2(to.X-from.X, to.Y-from.Y)
}

// FacingAngleToTravelDirection 将存储的瞄准角转换为行进方向
// 这是瞄准角与行进方向之间唯一的转换点
func FacingAngleToTravelDirection(angle float64) r2.Vec {
	return DirectionFromAngle(angle)
}

// ScreenRotation 将瞄准角转换为 ebiten GeoM.Rotate 使用的旋转量
// 使一张"朝上"绘制的贴图指向瞄准方向
func ScreenRotation(angle float64) float64 {
	return math.Pi - angle
}

// RectsOverlap 轴对齐矩形重叠检测
// 两个矩形都以左上角为锚点，边缘相接不算重叠
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
