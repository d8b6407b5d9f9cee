package utils

import (
	"testing"
)

func TestPointerTrackerEdges(t *testing.T) {
	pt := NewPointerTracker()

	// 未按下
	frame := pt.Advance(PointerSample{X: 10, Y: 20})
	if frame.Held || frame.JustPressed || frame.JustReleased {
		t.Errorf("Expected idle frame, got %+v", frame)
	}

	// 按下
	frame = pt.Advance(PointerSample{X: 10, Y: 20, Pressed: true})
	if !frame.Held || !frame.JustPressed || frame.JustReleased {
		t.Errorf("Expected press edge, got %+v", frame)
	}

	// 按住移动
	frame = pt.Advance(PointerSample{X: 30, Y: 40, Pressed: true})
	if !frame.Held || frame.JustPressed {
		t.Errorf("Expected held frame without edge, got %+v", frame)
	}
	if frame.Position.X != 30 || frame.Position.Y != 40 {
		t.Errorf("Expected position (30, 40), got %v", frame.Position)
	}

	// 松开
	frame = pt.Advance(PointerSample{X: 35, Y: 45})
	if frame.Held || !frame.JustReleased {
		t.Errorf("Expected release edge, got %+v", frame)
	}
	if frame.Position.X != 35 || frame.Position.Y != 45 {
		t.Errorf("Mouse release should use cursor position, got %v", frame.Position)
	}

	if pt.Held() {
		t.Error("Tracker should not be held after release")
	}
}

func TestPointerTrackerTouchReleaseUsesLastPosition(t *testing.T) {
	pt := NewPointerTracker()

	pt.Advance(PointerSample{X: 100, Y: 200, Pressed: true, Touch: true})
	pt.Advance(PointerSample{X: 120, Y: 210, Pressed: true, Touch: true})

	// 触摸松开时 ebiten 返回的光标位置与触点无关
	frame := pt.Advance(PointerSample{X: 0, Y: 0})
	if !frame.JustReleased {
		t.Fatal("Expected release edge")
	}
	if frame.Position.X != 120 || frame.Position.Y != 210 {
		t.Errorf("Expected last touch position (120, 210), got %v", frame.Position)
	}
}
