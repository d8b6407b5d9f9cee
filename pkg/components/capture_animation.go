package components

// CapturePhase 入洞动画阶段
type CapturePhase int

const (
	// CaptureIdle 未在入洞动画中
	CaptureIdle CapturePhase = iota
	// CaptureShrinking 入洞缩小动画进行中
	CaptureShrinking
)

// CaptureAnimation 入洞缩小动画状态
type CaptureAnimation struct {
	Phase CapturePhase
	Ticks int // 已执行的缩小帧数
}

// IsActive 动画是否进行中
func (c *CaptureAnimation) IsActive() bool {
	return c.Phase == CaptureShrinking
}

// Reset 回到空闲状态
func (c *CaptureAnimation) Reset() {
	c.Phase = CaptureIdle
	c.Ticks = 0
}
