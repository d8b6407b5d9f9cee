package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game.
// Update runs once per simulation tick, Draw once per rendered frame.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the fixed tick length in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时持久化自身数据
//
// 调用时机：
//   - 游戏窗口关闭
//   - ebiten.RunGame 返回之后
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
