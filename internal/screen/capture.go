package screen

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

var (
	// ErrOffScreen 截图区域中心 (鼠标所在的像素) 不在任何一块屏幕里
	ErrOffScreen = errors.New("capture region is off screen")
	// ErrEmptyCapture 截图成功但是没有像素
	ErrEmptyCapture = errors.New("capture returned no pixels")
)

// Capturer 截取屏幕上的一块矩形区域
type Capturer interface {
	CaptureRegion(r image.Rectangle) (*image.RGBA, error)
}

// Region 以 (x, y) 为中心，边长 size 的正方形
// size 为奇数时 (x, y) 正好落在中心像素上
func Region(x, y, size int) image.Rectangle {
	half := size / 2
	return image.Rect(x-half, y-half, x-half+size, y-half+size)
}

// ScreenCapturer 用 kbinani/screenshot 实现的截图
type ScreenCapturer struct {
	// displays 返回当前所有屏幕的范围，测试里可以替换
	displays func() []image.Rectangle
	capture  func(image.Rectangle) (*image.RGBA, error)
}

// NewScreenCapturer 创建截图器
func NewScreenCapturer() *ScreenCapturer {
	return &ScreenCapturer{
		displays: activeDisplays,
		capture:  screenshot.CaptureRect,
	}
}

// CaptureRegion 截取 r；只要求 r 的中心在屏幕上
// 超出屏幕的部分由 screenshot 填成黑色，贴着边缘或跨两块屏幕都照样能取色
func (c *ScreenCapturer) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	if !onScreen(Center(r), c.displays()) {
		return nil, fmt.Errorf("%w: %v", ErrOffScreen, r)
	}
	img, err := c.capture(r)
	if err != nil {
		return nil, fmt.Errorf("capturing %v: %w", r, err)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyCapture, r)
	}
	return img, nil
}

func activeDisplays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, screenshot.GetDisplayBounds(i))
	}
	return out
}

// Center Region 的反操作：取回区域中心，也就是鼠标所在的像素
func Center(r image.Rectangle) image.Point {
	return r.Min.Add(image.Pt(r.Dx()/2, r.Dy()/2))
}

func onScreen(p image.Point, displays []image.Rectangle) bool {
	for _, d := range displays {
		if p.In(d) {
			return true
		}
	}
	return false
}
