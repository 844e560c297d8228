package magnify

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"MouseInfo/internal/entity"
)

// ColorAt 取截图里某个像素的颜色，off 是相对于截图左上角的偏移
// 一般传鼠标在截图区域里的位置，不管截图被裁成什么样都读鼠标自己那个像素
// 偏移落在截图外面 (截图为空等) 时返回 false
func ColorAt(img image.Image, off image.Point) (entity.RGB, bool) {
	if img == nil {
		return entity.RGB{}, false
	}
	b := img.Bounds()
	p := b.Min.Add(off)
	if !p.In(b) {
		return entity.RGB{}, false
	}
	return entity.FromColor(img.At(p.X, p.Y)), true
}

// Crosshair 十字准星参数
type Crosshair struct {
	Arm  int // 从中心往两边各伸出多少像素
	Half int // 半宽，线粗 = 2*Half+1
}

// Render 把截图按最近邻放大到 size x size，再在正中间画十字准星
// line 一般传反色，保证在任何背景上都看得见
func Render(src image.Image, size int, ch Crosshair, line color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	// 1. 放大 (最近邻，像素保持方块状)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	// 2. 画准星：横线和竖线各一次
	c := size / 2
	for i := c - ch.Arm; i <= c+ch.Arm; i++ {
		for j := c - ch.Half; j <= c+ch.Half; j++ {
			setClipped(dst, i, j, line)
			setClipped(dst, j, i, line)
		}
	}
	return dst
}

func setClipped(img *image.RGBA, x, y int, c color.Color) {
	// 准星参数太大时不要越界写
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.Set(x, y, c)
}
