// Package levels 提供内置关卡数据
//
// 关卡是编译期常量数据，只读不写：每次切换关卡都从这里重新查表。
// 序号 0 为首次进入游戏时的默认布局（无障碍物），1~6 为正式关卡，
// 超出范围的序号退化为默认布局。
package levels

import (
	"fmt"

	"github.com/decker502/golf/pkg/components"
	"gonum.org/v1/gonum/spatial/r2"
)

// LastLevel 最后一关的序号，通过此关即通关
const LastLevel = 6

// 默认布局相对屏幕中心的纵向偏移
const defaultLayoutOffsetY = 150.0

// Layout 单个关卡的布局
type Layout struct {
	BallStart    r2.Vec
	HolePosition r2.Vec
	Obstacles    []components.ObstacleComponent
}

// levelTable 关卡原始数据
// screenRelative 为 true 时球和洞使用默认布局（依赖屏幕尺寸）
type levelTable struct {
	screenRelative bool
	ball           r2.Vec
	hole           r2.Vec
	obstacles      []components.ObstacleComponent
}

func small(x, y float64) components.ObstacleComponent {
	return components.ObstacleComponent{Position: r2.Vec{X: x, Y: y}, Size: components.SizeSmall}
}

func large(x, y float64) components.ObstacleComponent {
	return components.ObstacleComponent{Position: r2.Vec{X: x, Y: y}, Size: components.SizeLarge}
}

// wall 生成一排等间距的小障碍物
func wall(startX, y, step float64, count int) []components.ObstacleComponent {
	out := make([]components.ObstacleComponent, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, small(startX+float64(i)*step, y))
	}
	return out
}

var tables = map[int]levelTable{
	1: {
		screenRelative: true,
		obstacles: []components.ObstacleComponent{
			small(360, 159),
			small(442, 159),
			small(400, 193),
		},
	},
	2: {
		ball: r2.Vec{X: 141.49, Y: 100},
		hole: r2.Vec{X: 623, Y: 380},
		obstacles: []components.ObstacleComponent{
			small(583, 338),
			small(583, 381),
			small(583, 424),
			large(399, 133),
			large(335, 199),
			large(271, 266),
			large(141, 388),
			large(207, 330),
		},
	},
	3: {
		ball: r2.Vec{X: 384.49, Y: 58},
		hole: r2.Vec{X: 384, Y: 457},
		obstacles: []components.ObstacleComponent{
			small(502, 217),
			small(268, 340),
			large(534, 123),
			large(236, 190),
			large(384, 347),
			large(534, 414),
		},
	},
	4: {
		ball: r2.Vec{X: 98.49, Y: 300},
		hole: r2.Vec{X: 705, Y: 300},
		obstacles: []components.ObstacleComponent{
			small(400, 133),
			small(400, 502),
			large(400, 250),
			large(400, 317),
			large(400, 384),
		},
	},
	5: {
		ball: r2.Vec{X: 384.25, Y: 462},
		hole: r2.Vec{X: 384, Y: 97},
		// 横贯屏幕的一道墙，x = 96 ~ 720，间距 48
		obstacles: wall(96, 218, 48, 14),
	},
	6: {
		ball: r2.Vec{X: 183.25, Y: 460},
		hole: r2.Vec{X: 183, Y: 99},
		obstacles: []components.ObstacleComponent{
			small(138, 155),
			small(283, 132),
			small(183, 224),
			small(344, 172),
			small(183, 377),
			small(400, 133),
			small(384, 343),
			small(267, 419),
			large(235, 292),
			large(392, 240),
		},
	},
}

// DefaultLayout 返回默认布局：球在屏幕中心下方，洞在中心上方，无障碍物
func DefaultLayout(screenW, screenH float64) Layout {
	return Layout{
		BallStart:    r2.Vec{X: screenW * 0.5, Y: screenH*0.5 + defaultLayoutOffsetY},
		HolePosition: r2.Vec{X: screenW * 0.5, Y: screenH*0.5 - defaultLayoutOffsetY},
	}
}

// Load 查询指定关卡的布局
//
// 返回的障碍物切片是新分配的副本，调用方可以自由修改。
// 序号 0、负数或大于 LastLevel 时返回 DefaultLayout，不会失败。
func Load(ordinal int, screenW, screenH float64) Layout {
	layout := DefaultLayout(screenW, screenH)

	table, ok := tables[ordinal]
	if !ok {
		return layout
	}

	if !table.screenRelative {
		layout.BallStart = table.ball
		layout.HolePosition = table.hole
	}
	layout.Obstacles = make([]components.ObstacleComponent, len(table.obstacles))
	copy(layout.Obstacles, table.obstacles)
	return layout
}

// Exists 序号是否对应一个正式关卡（1~LastLevel）
func Exists(ordinal int) bool {
	_, ok := tables[ordinal]
	return ok
}

// Name 返回关卡显示名
func Name(ordinal int) string {
	return fmt.Sprintf("Level: %d", ordinal)
}
