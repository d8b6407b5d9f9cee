package systems

import (
	"math"
	"testing"

	"github.com/decker502/golf/pkg/components"
	"gonum.org/v1/gonum/spatial/r2"
)

// TestCheckHoleCapture 入洞判定使用严格小于 32
func TestCheckHoleCapture(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   bool
	}{
		{"重合", 0, true},
		{"刚好在半径和以内", 31.999, true},
		{"等于半径和", 32, false},
		{"刚好在半径和以外", 32.001, false},
	}

	sim, _ := newTestSimulation(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(0)
			s.Ball.Position = r2.Add(s.Hole.Position, r2.Vec{X: tt.offset})
			if got := sim.Physics().CheckHoleCapture(s); got != tt.want {
				t.Errorf("CheckHoleCapture() at offset %v = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestBounceOffBorders(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		dir     r2.Vec
		wantDir r2.Vec
	}{
		{"上边界", r2.Vec{X: 400, Y: 10}, r2.Vec{X: 0, Y: -1}, r2.Vec{X: 0, Y: 1}},
		{"下边界", r2.Vec{X: 400, Y: 590}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 0, Y: -1}},
		{"左边界", r2.Vec{X: 10, Y: 300}, r2.Vec{X: -1, Y: 0}, r2.Vec{X: 1, Y: 0}},
		{"右边界", r2.Vec{X: 790, Y: 300}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: -1, Y: 0}},
		{"已朝内不变", r2.Vec{X: 10, Y: 300}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 0}},
		{"角落只修正上边界", r2.Vec{X: 10, Y: 10}, r2.Vec{X: -0.6, Y: -0.8}, r2.Vec{X: -0.6, Y: 0.8}},
		{"屏幕内不变", r2.Vec{X: 400, Y: 300}, r2.Vec{X: 0.6, Y: -0.8}, r2.Vec{X: 0.6, Y: -0.8}},
	}

	sim, _ := newTestSimulation(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(0)
			s.Ball.Position = tt.pos
			s.Ball.Direction = tt.dir

			sim.Physics().BounceOffBorders(s)
			if s.Ball.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", s.Ball.Direction, tt.wantDir)
			}

			// 强制符号，重复调用结果不变
			sim.Physics().BounceOffBorders(s)
			if s.Ball.Direction != tt.wantDir {
				t.Errorf("Second call changed direction to %v", s.Ball.Direction)
			}
		})
	}
}

// TestBorderBounceAcrossSteps 球停在边界外的若干帧内方向始终朝内，不会来回翻转
func TestBorderBounceAcrossSteps(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		dir     r2.Vec
		wantDir r2.Vec
	}{
		{"上边界", r2.Vec{X: 400, Y: 15}, r2.Vec{X: 0, Y: -1}, r2.Vec{X: 0, Y: 1}},
		{"左边界", r2.Vec{X: 15, Y: 300}, r2.Vec{X: -1, Y: 0}, r2.Vec{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, _ := newTestSimulation(nil)
			s := newTestSession(0)
			s.Ball.Position = tt.pos
			s.Ball.Direction = tt.dir
			s.Ball.ShotAnchor = tt.pos
			s.Ball.Velocity = 6 // 每帧 0.1 像素，五帧内仍在边界外

			prev := s.Ball.Position
			for i := 0; i < 5; i++ {
				sim.Step(s, PointerInput{})
				if s.Ball.Direction != tt.wantDir {
					t.Fatalf("step %d: Direction = %v, want %v", i, s.Ball.Direction, tt.wantDir)
				}
				moved := r2.Sub(s.Ball.Position, prev)
				if r2.Dot(moved, tt.wantDir) <= 0 {
					t.Fatalf("step %d: ball moved %v, want inward", i, moved)
				}
				prev = s.Ball.Position
			}
			if s.Ball.Position.X >= 16 && s.Ball.Position.Y >= 16 {
				t.Errorf("Ball left the margin too early: %v", s.Ball.Position)
			}
		})
	}
}

// TestBounceOffObstacleFlipsX 只有沿 X 的预测位置重叠时翻转 X 分量
func TestBounceOffObstacleFlipsX(t *testing.T) {
	sim, cfg := newTestSimulation(nil)
	dt := cfg.TickDuration()

	s := newTestSession(0)
	s.Ball.Position = r2.Vec{X: 100, Y: 100}
	s.Ball.Direction = r2.Vec{X: 1, Y: 0}
	s.Ball.Velocity = 60 // 每帧 1 像素
	s.Obstacles = []components.ObstacleComponent{
		{Position: r2.Vec{X: 132.5, Y: 100}, Size: components.SizeSmall},
	}

	sim.Physics().BounceOffObstacles(s, dt)
	if s.Ball.Direction != (r2.Vec{X: -1, Y: 0}) {
		t.Errorf("Direction = %v, want (-1, 0)", s.Ball.Direction)
	}
}

func TestBounceOffObstacleFlipsY(t *testing.T) {
	sim, cfg := newTestSimulation(nil)
	dt := cfg.TickDuration()

	s := newTestSession(0)
	s.Ball.Position = r2.Vec{X: 100, Y: 100}
	s.Ball.Direction = r2.Vec{X: 0, Y: 1}
	s.Ball.Velocity = 60
	// 障碍物碰撞盒高 34，上沿在球盒下沿下方 0.5 像素
	s.Obstacles = []components.ObstacleComponent{
		{Position: r2.Vec{X: 100, Y: 132.5}, Size: components.SizeLarge},
	}

	sim.Physics().BounceOffObstacles(s, dt)
	if s.Ball.Direction != (r2.Vec{X: 0, Y: -1}) {
		t.Errorf("Direction = %v, want (0, -1)", s.Ball.Direction)
	}
}

// TestBounceUsesFixedHitbox 大障碍物也使用 32x34 的碰撞盒
func TestBounceUsesFixedHitbox(t *testing.T) {
	sim, cfg := newTestSimulation(nil)

	s := newTestSession(0)
	s.Ball.Position = r2.Vec{X: 100, Y: 100}
	s.Ball.Direction = r2.Vec{X: -1, Y: 0}
	s.Ball.Velocity = 60
	// 64 宽的贴图会覆盖到 x=114，但碰撞盒只到 x=82
	s.Obstacles = []components.ObstacleComponent{
		{Position: r2.Vec{X: 50, Y: 100}, Size: components.SizeLarge},
	}

	sim.Physics().BounceOffObstacles(s, cfg.TickDuration())
	if s.Ball.Direction != (r2.Vec{X: -1, Y: 0}) {
		t.Errorf("Direction = %v, want unchanged (-1, 0)", s.Ball.Direction)
	}
}

func TestIntegrate(t *testing.T) {
	sim, _ := newTestSimulation(nil)
	s := newTestSession(0)
	s.Ball.Position = r2.Vec{X: 100, Y: 100}
	s.Ball.Direction = r2.Vec{X: 0.6, Y: 0.8}
	s.Ball.Velocity = 50

	sim.Physics().Integrate(s, 0.1)
	want := r2.Vec{X: 103, Y: 104}
	if math.Abs(s.Ball.Position.X-want.X) > epsilon || math.Abs(s.Ball.Position.Y-want.Y) > epsilon {
		t.Errorf("Position = %v, want %v", s.Ball.Position, want)
	}
}

func TestApplyDecay(t *testing.T) {
	sim, _ := newTestSimulation(nil)

	t.Run("按距离衰减", func(t *testing.T) {
		s := newTestSession(0)
		s.Ball.ShotAnchor = r2.Vec{X: 0, Y: 0}
		s.Ball.Position = r2.Vec{X: 30, Y: 40} // 距离 50，衰减 10/秒
		s.Ball.Velocity = 20

		sim.Physics().ApplyDecay(s, 0.5)
		if math.Abs(s.Ball.Velocity-15) > epsilon {
			t.Errorf("Velocity = %v, want 15", s.Ball.Velocity)
		}
	})

	t.Run("不会为负", func(t *testing.T) {
		s := newTestSession(0)
		s.Ball.ShotAnchor = r2.Vec{X: 0, Y: 0}
		s.Ball.Position = r2.Vec{X: 600, Y: 0}
		s.Ball.Velocity = 0.01

		sim.Physics().ApplyDecay(s, 1)
		if s.Ball.Velocity != 0 {
			t.Errorf("Velocity = %v, want 0", s.Ball.Velocity)
		}
	})
}

// TestVelocityNeverNegative 任意一杆模拟到底，速度始终不小于 0
func TestVelocityNeverNegative(t *testing.T) {
	pointers := []r2.Vec{
		{X: 100, Y: 100},
		{X: 780, Y: 20},
		{X: 420, Y: 590},
		{X: 5, Y: 300},
	}

	for level := 1; level <= 6; level++ {
		for _, p := range pointers {
			sim, _ := newTestSimulation(nil)
			s := newTestSession(level)
			shoot(sim, s, p)

			for i := 0; i < 3000 && s.Level == level; i++ {
				sim.Step(s, PointerInput{Position: p})
				if s.Ball.Velocity < 0 {
					t.Fatalf("level %d pointer %v: negative velocity %v at step %d", level, p, s.Ball.Velocity, i)
				}
			}
		}
	}
}
