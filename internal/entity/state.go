package entity

import (
	"fmt"
	"image"
)

// CursorSample 鼠标在屏幕上的绝对坐标
type CursorSample struct {
	X, Y int
}

func (p CursorSample) String() string {
	return fmt.Sprintf("Mouse Position: X=%d, Y=%d", p.X, p.Y)
}

// ResourceSample 本进程的 CPU 和内存占用
type ResourceSample struct {
	CPUPercent float64 // 0-100 (多核时可能超过 100)
	MemoryMB   float64 // 常驻内存 RSS，单位 MB
}

func (r ResourceSample) String() string {
	return fmt.Sprintf("CPU Usage: %.2f%%  Memory Usage: %.2f MB", r.CPUPercent, r.MemoryMB)
}

// Toggles 四个互相独立的功能开关
type Toggles struct {
	Usage    bool // CPU/内存 监控
	Magnify  bool // 放大镜
	HexColor bool // HEX 颜色
	DecColor bool // DEC 颜色
}

// State 整个程序唯一的一份运行状态
// 只在 tick 和用户操作里被修改，全部跑在同一个线程上，所以不用锁
type State struct {
	Paused  bool
	Toggles Toggles

	Cursor CursorSample // 最后一次处理过的位置 (显示用)
	Color  RGB          // 最后一次取到的像素颜色

	// 放大图；PreviewVersion 每次重新生成都会 +1，画面那边据此决定要不要重新上传贴图
	Preview        *image.RGBA
	PreviewVersion uint64

	Usage    ResourceSample
	Progress float64 // 距离上次采样过去了几秒 (0 到采样间隔)
}
