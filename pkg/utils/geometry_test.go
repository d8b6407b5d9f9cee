package utils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const epsilon = 1e-9

func TestSpeedFromDrag(t *testing.T) {
	tests := []struct {
		name    string
		anchor  r2.Vec
		current r2.Vec
		divisor float64
		want    float64
	}{
		{"3-4-5 三角形", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4}, 1, 5},
		{"发射除数", r2.Vec{X: 400, Y: 400}, r2.Vec{X: 400, Y: 450}, 1.2, 50 / 1.2},
		{"同一点", r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10, Y: 10}, 5, 0},
		{"除数为零", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4}, 0, 0},
		{"除数接近零", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4}, 1e-12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpeedFromDrag(tt.anchor, tt.current, tt.divisor)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("SpeedFromDrag() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSpeedFromDragSymmetric 距离与参数顺序无关
func TestSpeedFromDragSymmetric(t *testing.T) {
	a := r2.Vec{X: 12.5, Y: -3}
	b := r2.Vec{X: -7, Y: 40}
	if SpeedFromDrag(a, b, 1.5) != SpeedFromDrag(b, a, 1.5) {
		t.Error("SpeedFromDrag should be symmetric")
	}
}

func TestAimAngleRoundTrip(t *testing.T) {
	from := r2.Vec{X: 400, Y: 450}
	targets := []r2.Vec{
		{X: 400, Y: 400}, // 上
		{X: 400, Y: 500}, // 下
		{X: 350, Y: 450}, // 左
		{X: 450, Y: 450}, // 右
		{X: 430, Y: 410}, // 斜
	}

	for _, to := range targets {
		dir := FacingAngleToTravelDirection(AimAngle(from, to))
		diff := r2.Sub(to, from)
		want := r2.Scale(1/r2.Norm(diff), diff)
		if math.Abs(dir.X-want.X) > epsilon || math.Abs(dir.Y-want.Y) > epsilon {
			t.Errorf("direction toward %v = %v, want %v", to, dir, want)
		}
		if math.Abs(r2.Norm(dir)-1) > epsilon {
			t.Errorf("direction %v is not a unit vector", dir)
		}
	}
}

func TestScreenRotation(t *testing.T) {
	// 指针在正上方：朝上的贴图不需要旋转
	angle := AimAngle(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: -10})
	if got := ScreenRotation(angle); math.Abs(got) > epsilon {
		t.Errorf("ScreenRotation(up) = %v, want 0", got)
	}

	// 指针在正右方：顺时针旋转 90 度
	angle = AimAngle(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0})
	if got := ScreenRotation(angle); math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("ScreenRotation(right) = %v, want %v", got, math.Pi/2)
	}
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name string
		ax   float64
		bx   float64
		want bool
	}{
		{"完全重叠", 100, 100, true},
		{"部分重叠", 100, 120, true},
		{"边缘相接", 100, 132, false},
		{"分离", 100, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectsOverlap(tt.ax, 100, 32, 32, tt.bx, 100, 32, 34)
			if got != tt.want {
				t.Errorf("RectsOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.5: 0.5, 1: 1, 3: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}
