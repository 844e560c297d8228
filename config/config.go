package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid 配置里有不合法的数值
var ErrInvalid = errors.New("invalid config")

// Config 结构体：程序启动时的全部固定参数
// 不读文件也不写文件，每次启动都用 NewDefault 的值
type Config struct {
	PollInterval     time.Duration // 鼠标轮询间隔
	UsageInterval    time.Duration // CPU/内存 采样间隔
	CPUSampleWindow  time.Duration // CPU 测量窗口，0 = 不阻塞，用两次调用之间的差值
	SampleSize       int           // 鼠标周围截图的边长 (像素)
	PreviewSize      int           // 放大图的边长 (像素)
	CrosshairArm     int           // 十字准星单臂长度
	CrosshairHalf    int           // 十字准星半宽 (粗细 = 2*Half+1)
	TrackUsage       bool          // 是否开启 CPU/内存 监控
	TrackMagnify     bool          // 是否开启放大镜
	TrackHexColor    bool          // 是否显示 HEX 颜色
	TrackDecColor    bool          // 是否显示 DEC 颜色
	WindowX, WindowY int           // 窗口初始位置
}

// NewDefault 生成一份默认配置
func NewDefault() *Config {
	return &Config{
		PollInterval:    50 * time.Millisecond,
		UsageInterval:   10 * time.Second,
		CPUSampleWindow: 0,
		SampleSize:      5,
		PreviewSize:     200,
		CrosshairArm:    8,
		CrosshairHalf:   2,
		TrackUsage:      false,
		TrackMagnify:    true,
		TrackHexColor:   true,
		TrackDecColor:   false,
		WindowX:         200,
		WindowY:         200,
	}
}

// TPS 把轮询间隔换算成 ebiten 的每秒 tick 数
func (c *Config) TPS() int {
	tps := int(time.Second / c.PollInterval)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Validate 检查数值是否可用
func (c *Config) Validate() error {
	switch {
	case c.PollInterval <= 0:
		return fmt.Errorf("%w: poll interval %v", ErrInvalid, c.PollInterval)
	case c.UsageInterval <= 0:
		return fmt.Errorf("%w: usage interval %v", ErrInvalid, c.UsageInterval)
	case c.CPUSampleWindow < 0:
		return fmt.Errorf("%w: cpu sample window %v", ErrInvalid, c.CPUSampleWindow)
	case c.CPUSampleWindow >= c.UsageInterval:
		return fmt.Errorf("%w: cpu sample window %v must be shorter than usage interval %v",
			ErrInvalid, c.CPUSampleWindow, c.UsageInterval)
	case c.SampleSize < 1:
		return fmt.Errorf("%w: sample size %d", ErrInvalid, c.SampleSize)
	case c.PreviewSize < c.SampleSize:
		return fmt.Errorf("%w: preview size %d smaller than sample size %d", ErrInvalid, c.PreviewSize, c.SampleSize)
	case c.CrosshairArm < 0 || c.CrosshairHalf < 0:
		return fmt.Errorf("%w: crosshair %d/%d", ErrInvalid, c.CrosshairArm, c.CrosshairHalf)
	}
	return nil
}
