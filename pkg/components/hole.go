package components

import "gonum.org/v1/gonum/spatial/r2"

// HoleRadius 球洞半径（像素）
const HoleRadius = 16.0

// HoleComponent 关卡目标球洞，每关一个，位置静态
type HoleComponent struct {
	Position r2.Vec
}
