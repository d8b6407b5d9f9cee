package systems

import (
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	testScreenW = 800.0
	testScreenH = 600.0
	epsilon     = 1e-9
)

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSounds) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// recordingListener 记录会话事件
type recordingListener struct {
	shots   []game.ShotEvent
	results []game.LevelResult
}

func (r *recordingListener) OnShot(e game.ShotEvent)          { r.shots = append(r.shots, e) }
func (r *recordingListener) OnLevelCleared(l game.LevelResult) { r.results = append(r.results, l) }

// newTestSession 创建指定关卡的会话
func newTestSession(level int) *game.Session {
	s := game.NewSession(testScreenW, testScreenH)
	if level != 0 {
		s.StartAt(level)
	}
	return s
}

// newTestSimulation 使用默认配置创建状态机
func newTestSimulation(sounds SoundPlayer) (*Simulation, *config.GameConfig) {
	cfg := config.Default()
	return NewSimulation(cfg, sounds), cfg
}

// shoot 按下、按住一帧并在 pointer 处松开
func shoot(sim *Simulation, s *game.Session, pointer r2.Vec) bool {
	in := PointerInput{Position: pointer, Held: true}
	sim.Press(s)
	sim.Step(s, in)
	return sim.Release(s, pointer)
}

// clearObstacles 移除障碍物，便于单独测试边界和入洞
func clearObstacles(s *game.Session) {
	s.Obstacles = nil
}
