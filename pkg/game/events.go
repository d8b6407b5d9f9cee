package game

import "gonum.org/v1/gonum/spatial/r2"

// ShotEvent 一次击球
type ShotEvent struct {
	Tick      int64   // 击球时的模拟帧序号
	Level     int     // 所在关卡
	Stroke    int     // 击球后的累计杆数
	Ball      r2.Vec  // 击球前球的位置
	Pointer   r2.Vec  // 松开按键时的指针位置
	Speed     float64 // 发射速度
	Direction r2.Vec  // 行进方向
}

// LevelResult 一关结束（球入洞且缩小动画播完）
type LevelResult struct {
	Tick         int64
	Level        int  // 刚完成的关卡
	Strokes      int  // 本关杆数
	TotalStrokes int  // 累计杆数
	Completed    bool // 是否为最后一关（通关）
	StartLevel   int  // 本局的起始关卡
}

// FullRun 本局是否从第一关（或默认布局）打起
// 用 -level 跳关开始的一局不计入通关成绩
func (r LevelResult) FullRun() bool {
	return r.StartLevel <= 1
}

// SessionListener 订阅会话事件
// 回调在模拟步进中同步执行，实现方不应阻塞
type SessionListener interface {
	OnShot(event ShotEvent)
	OnLevelCleared(result LevelResult)
}
