package components

// CollisionComponent 定义轴对齐碰撞盒尺寸
// 碰撞盒以实体 Position 为左上角锚点
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// BallHitbox 球的碰撞盒（32x32）
var BallHitbox = CollisionComponent{Width: 2 * BallRadius, Height: 2 * BallRadius}

// ObstacleHitbox 所有障碍物共用的碰撞盒
//
// 无论 SizeClass 是 32x34 还是 64x67，碰撞检测一律使用 32x34，
// 大障碍物的贴图比碰撞盒大。
var ObstacleHitbox = CollisionComponent{Width: 32, Height: 34}
