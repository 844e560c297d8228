package entity

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadHex 不是 #rrggbb 格式
var ErrBadHex = errors.New("bad hex color")

// RGB 鼠标下面那个像素的颜色 (每个通道 0-255)
type RGB struct {
	R, G, B uint8
}

// FromColor 把任意 color.Color 转成 RGB
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// Go 的 RGBA 返回 16bit (0-65535)，右移 8 位变成 0-255
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Complement 反色：每个通道 255 - v，用来画准星，保证在任何背景上都看得见
func (c RGB) Complement() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Decimal 形如 "(10, 20, 30)"
func (c RGB) Decimal() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex 形如 "#0a141e"，小写，补零
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA 给画图用，alpha 固定 255
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ParseHex 是 Hex 的反操作
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' || strings.ToLower(s) != s {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ColorText 按开关拼出颜色标签的文字
// 两个开关都关掉时返回 false：标签要从布局里拿掉，而不是显示空白
// 只开 HEX 时也带 "Pixel Color:" 前缀，和 DEC 开着时的格式统一
func ColorText(c RGB, t Toggles) (string, bool) {
	if !t.DecColor && !t.HexColor {
		return "", false
	}
	parts := []string{"Pixel Color:"}
	if t.DecColor {
		parts = append(parts, "DEC="+c.Decimal())
	}
	if t.HexColor {
		parts = append(parts, "HEX="+c.Hex())
	}
	return strings.Join(parts, " "), true
}
