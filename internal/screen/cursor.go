package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSource 返回鼠标在屏幕上的绝对坐标 (物理像素，和截图用的坐标一致)
type CursorSource interface {
	Position() (x, y int)
}

// EbitenCursor 通过 ebiten 拿鼠标位置
// Ebiten 只给相对窗口左上角的坐标，所以要加上窗口位置；
// 两者都是逻辑像素，高分屏上要再乘缩放比例才是截图用的物理像素
type EbitenCursor struct {
	window func() (int, int)
	cursor func() (int, int)
	scale  func() float64
}

// NewEbitenCursor 用 ebiten 当前窗口所在显示器的缩放比例
func NewEbitenCursor() *EbitenCursor {
	return &EbitenCursor{
		window: ebiten.WindowPosition,
		cursor: ebiten.CursorPosition,
		scale:  func() float64 { return ebiten.Monitor().DeviceScaleFactor() },
	}
}

func (c *EbitenCursor) Position() (int, int) {
	wx, wy := c.window()
	mx, my := c.cursor()
	return ToPhysical(wx+mx, wy+my, c.scale())
}

// ToPhysical 逻辑像素 -> 物理像素；scale 不合法时按 1 处理
func ToPhysical(x, y int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(x) * scale)), int(math.Round(float64(y) * scale))
}
