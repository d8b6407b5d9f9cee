package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveData 最好成绩存档
//
// 只保存成绩，不保存进行中的对局：关卡和杆数在进程退出后不保留。
type SaveData struct {
	BestLevelStrokes map[int]int `yaml:"bestLevelStrokes"` // 关卡序号 -> 最少杆数
	BestTotalStrokes int         `yaml:"bestTotalStrokes"` // 通关最少总杆数，0 表示尚未通关
	Completions      int         `yaml:"completions"`      // 通关次数
}

func newSaveData() *SaveData {
	return &SaveData{BestLevelStrokes: make(map[int]int)}
}

// 存储路径
const (
	saveObject   = "progress"
	saveProperty = "best"
)

// SaveManager 成绩存档管理器
//
// 通过 SessionListener 接收过关事件，刷新最好成绩后立即保存。
// 单关成绩总是记录；通关成绩只记录从第一关打起的完整一局。
// gdataManager 为 nil 时只在内存中记录。
type SaveManager struct {
	gdataManager *gdata.Manager
	data         *SaveData
}

// NewSaveManager 创建存档管理器并加载已有存档
// 存档损坏时记录警告并从空存档开始
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         newSaveData(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load save data: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载存档
func (sm *SaveManager) Load() error {
	sm.data = newSaveData()

	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fmt.Errorf("failed to load save data: %w", err)
	}

	loaded := newSaveData()
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		return fmt.Errorf("failed to parse save data: %w", err)
	}
	if loaded.BestLevelStrokes == nil {
		loaded.BestLevelStrokes = make(map[int]int)
	}

	sm.data = loaded
	return nil
}

// Save 保存存档，降级模式下直接返回 nil
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to write save data: %w", err)
	}
	return nil
}

// RecordLevel 记录单关成绩
// 返回是否刷新了该关的最好成绩
func (sm *SaveManager) RecordLevel(level, strokes int) bool {
	if strokes <= 0 {
		return false
	}
	best, ok := sm.data.BestLevelStrokes[level]
	if ok && best <= strokes {
		return false
	}
	sm.data.BestLevelStrokes[level] = strokes
	return true
}

// RecordCompletion 记录一次通关
// 返回是否刷新了通关最少总杆数
func (sm *SaveManager) RecordCompletion(totalStrokes int) bool {
	sm.data.Completions++
	if sm.data.BestTotalStrokes != 0 && sm.data.BestTotalStrokes <= totalStrokes {
		return false
	}
	sm.data.BestTotalStrokes = totalStrokes
	return true
}

// BestLevelStrokes 某关的最少杆数
func (sm *SaveManager) BestLevelStrokes(level int) (int, bool) {
	best, ok := sm.data.BestLevelStrokes[level]
	return best, ok
}

// BestTotalStrokes 通关最少总杆数，0 表示尚未通关
func (sm *SaveManager) BestTotalStrokes() int {
	return sm.data.BestTotalStrokes
}

// Completions 通关次数
func (sm *SaveManager) Completions() int {
	return sm.data.Completions
}

// OnShot 实现 SessionListener，击球不影响存档
func (sm *SaveManager) OnShot(ShotEvent) {}

// OnLevelCleared 实现 SessionListener
func (sm *SaveManager) OnLevelCleared(result LevelResult) {
	changed := false
	if sm.RecordLevel(result.Level, result.Strokes) {
		log.Printf("[SaveManager] New best for level %d: %d strokes", result.Level, result.Strokes)
		changed = true
	}
	if result.Completed && !result.FullRun() {
		log.Printf("[SaveManager] Run started at level %d, completion not recorded", result.StartLevel)
	} else if result.Completed {
		sm.RecordCompletion(result.TotalStrokes)
		log.Printf("[SaveManager] Completion #%d recorded (%d strokes, best %d)",
			sm.data.Completions, result.TotalStrokes, sm.data.BestTotalStrokes)
		changed = true
	}
	if !changed {
		return
	}
	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to save: %v", err)
	}
}
