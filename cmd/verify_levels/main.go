// verify_levels 无头检查关卡表和模拟流程
//
// 对每个关卡：
//   - 检查球、洞和障碍物都在屏幕内，且开局时球不在洞里
//   - 向洞的方向击一杆，报告球最后停在哪里
//   - 把球直接放进洞里，确认入洞动画的帧数和切关结果
//
// 用法：
//
//	go run ./cmd/verify_levels [-config golf.yaml] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/levels"
	"github.com/decker502/golf/pkg/systems"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "覆盖默认值的 YAML 配置文件")
	maxSeconds = flag.Float64("max-seconds", 30, "单杆模拟的最长时间（秒）")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for ordinal := 0; ordinal <= levels.LastLevel; ordinal++ {
		fmt.Printf("=== %s ===\n", levels.Name(ordinal))
		if !checkLayout(cfg, ordinal) {
			failed++
		}
		runShot(cfg, ordinal)
		if !checkCapture(cfg, ordinal) {
			failed++
		}
		fmt.Println()
	}

	if failed > 0 {
		fmt.Printf("❌ %d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("✅ All levels OK")
}

// checkLayout 检查布局是否合法
func checkLayout(cfg *config.GameConfig, ordinal int) bool {
	w, h := cfg.ScreenSize()
	layout := levels.Load(ordinal, w, h)

	fmt.Printf("  ball=(%.2f, %.2f) hole=(%.2f, %.2f) obstacles=%d\n",
		layout.BallStart.X, layout.BallStart.Y, layout.HolePosition.X, layout.HolePosition.Y, len(layout.Obstacles))

	ok := true
	inside := func(what string, p r2.Vec) {
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			fmt.Printf("  ❌ %s (%.2f, %.2f) is off screen\n", what, p.X, p.Y)
			ok = false
		}
	}
	inside("ball", layout.BallStart)
	inside("hole", layout.HolePosition)

	counts := map[components.SizeClass]int{}
	for i, o := range layout.Obstacles {
		inside(fmt.Sprintf("obstacle #%d", i), o.Position)
		counts[o.Size]++
	}
	if len(layout.Obstacles) > 0 {
		fmt.Printf("  small=%d large=%d\n", counts[components.SizeSmall], counts[components.SizeLarge])
	}

	if r2.Norm(r2.Sub(layout.BallStart, layout.HolePosition)) < components.BallRadius+components.HoleRadius {
		fmt.Println("  ❌ ball starts inside the hole")
		ok = false
	}
	if ok {
		fmt.Println("  ✅ layout")
	}
	return ok
}

// runShot 瞄准洞击一杆并模拟到球停下或入洞
func runShot(cfg *config.GameConfig, ordinal int) {
	w, h := cfg.ScreenSize()
	session := game.NewSession(w, h)
	session.LoadLevel(ordinal)
	sim := systems.NewSimulation(cfg, nil)

	pointer := systems.PointerInput{Position: session.Hole.Position, Held: true}
	sim.Press(session)
	sim.Step(session, pointer)
	sim.Release(session, pointer.Position)
	pointer.Held = false

	maxTicks := int(*maxSeconds * float64(cfg.Window.TPS))
	for i := 0; i < maxTicks; i++ {
		if session.Level != ordinal || session.Completed {
			fmt.Printf("  ✅ straight shot sank after %d ticks\n", i)
			return
		}
		if session.Ball.IsAtRest() && !session.HitHole {
			break
		}
		sim.Step(session, pointer)
	}

	distance := r2.Norm(r2.Sub(session.Ball.Position, session.Hole.Position))
	fmt.Printf("  straight shot stopped at (%.1f, %.1f), %.1f px from the hole\n",
		session.Ball.Position.X, session.Ball.Position.Y, distance)
}

// checkCapture 把球放进洞里，确认动画帧数和切关结果
func checkCapture(cfg *config.GameConfig, ordinal int) bool {
	w, h := cfg.ScreenSize()
	session := game.NewSession(w, h)
	session.LoadLevel(ordinal)
	sim := systems.NewSimulation(cfg, nil)

	session.Ball.Position = session.Hole.Position
	want := sim.Capture().ShrinkTicks() + 1

	ticks := 0
	for session.Level == ordinal && !session.Completed && ticks <= want*2 {
		sim.Step(session, systems.PointerInput{})
		ticks++
	}

	switch {
	case ordinal >= levels.LastLevel && session.Completed:
		fmt.Printf("  ✅ capture completed the game after %d ticks\n", ticks)
	case ordinal < levels.LastLevel && session.Level == ordinal+1:
		fmt.Printf("  ✅ capture advanced to level %d after %d ticks\n", session.Level, ticks)
	default:
		fmt.Printf("  ❌ capture did not finish (level=%d completed=%v ticks=%d)\n", session.Level, session.Completed, ticks)
		return false
	}
	if ticks != want {
		fmt.Printf("  ❌ capture took %d ticks, want %d\n", ticks, want)
		return false
	}
	return true
}
