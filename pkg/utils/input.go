// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointerSample 一帧的原始指针采样（鼠标左键或第一个触点）
type PointerSample struct {
	X, Y    int
	Pressed bool
	Touch   bool // 是否来自触摸
}

// PointerFrame 一帧的指针状态
// 统一鼠标和触摸，供击球输入使用
type PointerFrame struct {
	Position     r2.Vec
	Held         bool
	JustPressed  bool
	JustReleased bool
}

// PointerTracker 跟踪按下/松开边沿
//
// 触摸松开那一帧 ebiten 已经拿不到触点坐标，
// 所以松开位置使用最后一次按住时记录的位置。
type PointerTracker struct {
	held     bool
	lastX    int
	lastY    int
	lastFrom bool // 上一次按住是否来自触摸
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// SamplePointer 从 ebiten 读取当前指针（触摸优先）
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Pressed: true, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Poll 采样并推进一帧（在 Update 中每帧调用一次）
func (pt *PointerTracker) Poll() PointerFrame {
	return pt.Advance(SamplePointer())
}

// Advance 根据采样推进一帧
func (pt *PointerTracker) Advance(sample PointerSample) PointerFrame {
	frame := PointerFrame{
		Position: r2.Vec{X: float64(sample.X), Y: float64(sample.Y)},
		Held:     sample.Pressed,
	}

	switch {
	case sample.Pressed && !pt.held:
		frame.JustPressed = true
	case !sample.Pressed && pt.held:
		frame.JustReleased = true
		if pt.lastFrom {
			frame.Position = r2.Vec{X: float64(pt.lastX), Y: float64(pt.lastY)}
		}
	}

	if sample.Pressed {
		pt.lastX, pt.lastY = sample.X, sample.Y
		pt.lastFrom = sample.Touch
	}
	pt.held = sample.Pressed
	return frame
}

// Held 上一帧是否按住
func (pt *PointerTracker) Held() bool {
	return pt.held
}

// IsKeyJustPressed 检查按键是否本帧按下
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
