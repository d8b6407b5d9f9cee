package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// 记录类型
const (
	ShotRecordShot  = "shot"
	ShotRecordLevel = "level"
)

// ShotRecord 击球日志中的一行
// 击球与过关共用同一列集合，按 Event 区分
type ShotRecord struct {
	Tick      int64   `csv:"tick"`
	Event     string  `csv:"event"`
	Level     int     `csv:"level"`
	Stroke    int     `csv:"stroke"`
	BallX     float64 `csv:"ball_x"`
	BallY     float64 `csv:"ball_y"`
	PointerX  float64 `csv:"pointer_x"`
	PointerY  float64 `csv:"pointer_y"`
	Speed     float64 `csv:"speed"`
	DirX      float64 `csv:"dir_x"`
	DirY      float64 `csv:"dir_y"`
	Total     int     `csv:"total_strokes"`
	Completed bool    `csv:"completed"`
}

// ShotLog 把击球和过关事件追加写入 CSV 文件
//
// 文件为空时先写表头。写入失败只记录日志，不打断游戏。
// nil *ShotLog 可安全使用（表示未开启日志）。
type ShotLog struct {
	path          string
	file          *os.File
	headerWritten bool
}

// OpenShotLog 打开（或创建）日志文件，path 为空时返回 nil, nil
func OpenShotLog(path string) (*ShotLog, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating shot log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening shot log %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat shot log %s: %w", path, err)
	}

	log.Printf("[ShotLog] Writing shots to %s", path)
	return &ShotLog{
		path:          path,
		file:          f,
		headerWritten: info.Size() > 0,
	}, nil
}

// Path 日志文件路径
func (sl *ShotLog) Path() string {
	if sl == nil {
		return ""
	}
	return sl.path
}

// Write 写入一行记录
func (sl *ShotLog) Write(record ShotRecord) error {
	if sl == nil || sl.file == nil {
		return nil
	}

	records := []ShotRecord{record}
	if !sl.headerWritten {
		if err := gocsv.Marshal(records, sl.file); err != nil {
			return fmt.Errorf("writing shot log: %w", err)
		}
		sl.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, sl.file); err != nil {
		return fmt.Errorf("writing shot log: %w", err)
	}
	return nil
}

// OnShot 实现 SessionListener
func (sl *ShotLog) OnShot(event ShotEvent) {
	err := sl.Write(ShotRecord{
		Tick:     event.Tick,
		Event:    ShotRecordShot,
		Level:    event.Level,
		Stroke:   event.Stroke,
		BallX:    event.Ball.X,
		BallY:    event.Ball.Y,
		PointerX: event.Pointer.X,
		PointerY: event.Pointer.Y,
		Speed:    event.Speed,
		DirX:     event.Direction.X,
		DirY:     event.Direction.Y,
	})
	if err != nil {
		log.Printf("[ShotLog] Warning: %v", err)
	}
}

// OnLevelCleared 实现 SessionListener
func (sl *ShotLog) OnLevelCleared(result LevelResult) {
	err := sl.Write(ShotRecord{
		Tick:      result.Tick,
		Event:     ShotRecordLevel,
		Level:     result.Level,
		Stroke:    result.Strokes,
		Total:     result.TotalStrokes,
		Completed: result.Completed,
	})
	if err != nil {
		log.Printf("[ShotLog] Warning: %v", err)
	}
}

// Close 关闭文件
func (sl *ShotLog) Close() error {
	if sl == nil || sl.file == nil {
		return nil
	}
	err := sl.file.Close()
	sl.file = nil
	if err != nil {
		return fmt.Errorf("closing shot log: %w", err)
	}
	return nil
}
