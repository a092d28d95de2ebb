package app

import "time"

// frameClock 测量两次 Update 之间的真实时间
//
// 返回值限制在 [0, maxDelta]：窗口被拖动或切到后台后，
// 动画不会在一帧内跳到终点。时钟回拨时返回 0。
type frameClock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta float64
}

func newFrameClock(maxDelta float64, now func() time.Time) *frameClock {
	return &frameClock{now: now, maxDelta: maxDelta}
}

// Tick 返回距上一次 Tick 的秒数，第一次调用返回 0
func (c *frameClock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return min(max(dt, 0), c.maxDelta)
}
