package components

import "gonum.org/v1/gonum/spatial/r2"

// SizeClass 障碍物尺寸类别
// 只决定使用哪张贴图，碰撞盒见 ObstacleHitbox
type SizeClass int

const (
	// SizeSmall 32x34 小障碍物
	SizeSmall SizeClass = 32
	// SizeLarge 64x67 大障碍物
	SizeLarge SizeClass = 64
)

// Dimensions 返回尺寸类别对应的贴图尺寸（宽, 高）
func (s SizeClass) Dimensions() (float64, float64) {
	switch s {
	case SizeLarge:
		return 64, 67
	default:
		return 32, 34
	}
}

// String 返回贴图名用的尺寸后缀，如 "32x34"
func (s SizeClass) String() string {
	if s == SizeLarge {
		return "64x67"
	}
	return "32x34"
}

// ObstacleComponent 矩形障碍物
// Position 为碰撞检测使用的左上角锚点
type ObstacleComponent struct {
	Position r2.Vec
	Size     SizeClass
}
