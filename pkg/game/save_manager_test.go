package game

import (
	"testing"
)

func TestSaveManagerRecordLevel(t *testing.T) {
	sm := NewSaveManager(nil)

	if !sm.RecordLevel(1, 5) {
		t.Error("First result should be a new best")
	}
	if sm.RecordLevel(1, 7) {
		t.Error("A worse result should not replace the best")
	}
	if sm.RecordLevel(1, 5) {
		t.Error("An equal result should not count as a new best")
	}
	if !sm.RecordLevel(1, 3) {
		t.Error("A better result should be a new best")
	}
	if sm.RecordLevel(2, 0) {
		t.Error("Zero strokes should be ignored")
	}

	best, ok := sm.BestLevelStrokes(1)
	if !ok || best != 3 {
		t.Errorf("BestLevelStrokes(1) = %d, %v; want 3, true", best, ok)
	}
	if _, ok := sm.BestLevelStrokes(2); ok {
		t.Error("Level 2 should have no record")
	}
}

func TestSaveManagerRecordCompletion(t *testing.T) {
	sm := NewSaveManager(nil)

	if sm.BestTotalStrokes() != 0 {
		t.Fatal("New save should have no best total")
	}
	if !sm.RecordCompletion(30) {
		t.Error("First completion should set the best total")
	}
	if sm.RecordCompletion(35) {
		t.Error("A worse total should not replace the best")
	}
	if !sm.RecordCompletion(25) {
		t.Error("A better total should replace the best")
	}
	if sm.BestTotalStrokes() != 25 || sm.Completions() != 3 {
		t.Errorf("best=%d completions=%d; want 25, 3", sm.BestTotalStrokes(), sm.Completions())
	}
}

// TestSaveManagerListener 通过 SessionListener 接收过关事件并持久化
func TestSaveManagerListener(t *testing.T) {
	gdataManager := openTestGdata(t, "test_golf_save")

	sm := NewSaveManager(gdataManager)
	sm.OnShot(ShotEvent{Level: 1, Stroke: 1})
	sm.OnLevelCleared(LevelResult{Level: 5, Strokes: 2, TotalStrokes: 10})
	sm.OnLevelCleared(LevelResult{Level: 6, Strokes: 4, TotalStrokes: 14, Completed: true})

	reloaded := NewSaveManager(gdataManager)
	if best, ok := reloaded.BestLevelStrokes(5); !ok || best != 2 {
		t.Errorf("Level 5 best = %d, %v; want 2, true", best, ok)
	}
	if best, ok := reloaded.BestLevelStrokes(6); !ok || best != 4 {
		t.Errorf("Level 6 best = %d, %v; want 4, true", best, ok)
	}
	if reloaded.BestTotalStrokes() != 14 {
		t.Errorf("BestTotalStrokes = %d, want 14", reloaded.BestTotalStrokes())
	}
	if reloaded.Completions() != 1 {
		t.Errorf("Completions = %d, want 1", reloaded.Completions())
	}
}

func TestSaveManagerCorruptData(t *testing.T) {
	gdataManager := openTestGdata(t, "test_golf_save_corrupt")
	if err := gdataManager.SaveObjectProp(saveObject, saveProperty, []byte("bestLevelStrokes: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSaveManager(gdataManager)
	if sm.BestTotalStrokes() != 0 || sm.Completions() != 0 {
		t.Error("Corrupt save should start fresh")
	}
	// 损坏的存档不影响后续记录
	if !sm.RecordLevel(1, 4) {
		t.Error("RecordLevel should work after a corrupt load")
	}
}

// TestSaveManagerSkipsPartialRun 用 -level 跳关开始的一局通关后只记录单关成绩
func TestSaveManagerSkipsPartialRun(t *testing.T) {
	sm := NewSaveManager(nil)

	sm.OnLevelCleared(LevelResult{Level: 6, Strokes: 1, TotalStrokes: 1, Completed: true, StartLevel: 6})
	if sm.BestTotalStrokes() != 0 || sm.Completions() != 0 {
		t.Errorf("Partial run recorded: best=%d completions=%d", sm.BestTotalStrokes(), sm.Completions())
	}
	if best, ok := sm.BestLevelStrokes(6); !ok || best != 1 {
		t.Errorf("Level 6 best = %d, %v; want 1, true", best, ok)
	}

	// 完整的一局照常记录，之前的跳关成绩不影响它
	sm.OnLevelCleared(LevelResult{Level: 6, Strokes: 3, TotalStrokes: 18, Completed: true, StartLevel: 0})
	if sm.BestTotalStrokes() != 18 || sm.Completions() != 1 {
		t.Errorf("best=%d completions=%d; want 18, 1", sm.BestTotalStrokes(), sm.Completions())
	}
}

func TestLevelResultFullRun(t *testing.T) {
	tests := []struct {
		start int
		want  bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{6, false},
	}
	for _, tt := range tests {
		if got := (LevelResult{StartLevel: tt.start}).FullRun(); got != tt.want {
			t.Errorf("FullRun() with start %d = %v, want %v", tt.start, got, tt.want)
		}
	}
}
