package monitor

import "time"

// Countdown 记录下一次资源采样的时间点，同时给进度条提供数值
type Countdown struct {
	interval time.Duration
	next     time.Time
}

// NewCountdown 第一次采样在 start 之后一个完整间隔
func NewCountdown(interval time.Duration, start time.Time) *Countdown {
	return &Countdown{interval: interval, next: start.Add(interval)}
}

// Due 是否到了该采样的时候
func (c *Countdown) Due(now time.Time) bool {
	return !now.Before(c.next)
}

// Reset 刚采样完，从 now 开始重新计时
func (c *Countdown) Reset(now time.Time) {
	c.next = now.Add(c.interval)
}

// Elapsed 距离上次采样过去的秒数，限制在 [0, interval] 之间
func (c *Countdown) Elapsed(now time.Time) float64 {
	e := c.interval - c.next.Sub(now)
	if e < 0 {
		e = 0
	}
	if e > c.interval {
		e = c.interval
	}
	return e.Seconds()
}

// Max 进度条的最大值 (秒)
func (c *Countdown) Max() float64 {
	return c.interval.Seconds()
}
