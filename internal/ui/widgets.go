package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	Background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	Foreground = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	Accent     = color.RGBA{0x00, 0xc0, 0x60, 0xff}
	panelBg    = color.RGBA{0x30, 0x30, 0x38, 0xff}
	buttonBg   = color.RGBA{0x44, 0x44, 0x4c, 0xff}
	border     = color.RGBA{0x80, 0x80, 0x88, 0xff}
)

// Label 在 r 的左上角写一行字
func Label(screen *ebiten.Image, s string, r image.Rectangle) {
	// 为什么要 +11？因为文字是从基线开始画的，往下挪一点防止头被切掉
	text.Draw(screen, s, basicfont.Face7x13, r.Min.X, r.Min.Y+11, Foreground)
}

// Button 带边框的按钮，文字居中
func Button(screen *ebiten.Image, r image.Rectangle, label string) {
	fill(screen, r, buttonBg)
	stroke(screen, r, border)
	tx := r.Min.X + (r.Dx()-len(label)*FontW)/2
	ty := r.Min.Y + (r.Dy()-FontH)/2
	text.Draw(screen, label, basicfont.Face7x13, tx, ty+11, Foreground)
}

// Checkbox 方框 + 文字；勾上时方框里填满
func Checkbox(screen *ebiten.Image, r image.Rectangle, label string, checked bool) {
	box := image.Rect(r.Min.X, r.Min.Y, r.Min.X+boxSize, r.Min.Y+boxSize)
	stroke(screen, box, border)
	if checked {
		fill(screen, box.Inset(3), Accent)
	}
	text.Draw(screen, label, basicfont.Face7x13, box.Max.X+pad, r.Min.Y+11, Foreground)
}

// FillWidth 进度条里填充部分的宽度
func FillWidth(width int, value, limit float64) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	if value >= limit {
		return width
	}
	return int(float64(width) * value / limit)
}

// ProgressBar 水平进度条，范围 0 到 limit
func ProgressBar(screen *ebiten.Image, r image.Rectangle, value, limit float64) {
	fill(screen, r, buttonBg)
	if w := FillWidth(r.Dx(), value, limit); w > 0 {
		fill(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), Accent)
	}
	stroke(screen, r, border)
}

// Panel 右侧面板的底色、标题和右上角的关闭按钮
func Panel(screen *ebiten.Image, r, closeR image.Rectangle, title string) {
	fill(screen, r, panelBg)
	stroke(screen, r, border)
	text.Draw(screen, title, basicfont.Face7x13, r.Min.X+pad, r.Min.Y+pad+11, Accent)
	Button(screen, closeR, "x")
}

// TextBlock 多行文字，从 (x, y) 开始每行往下一个字高
func TextBlock(screen *ebiten.Image, lines []string, x, y int) {
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*FontH+11, Foreground)
	}
}

func fill(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

func stroke(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	fill(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// PreviewImage 放大图对应的 ebiten 贴图，只在内容变了的时候重新上传像素
type PreviewImage struct {
	image   *ebiten.Image
	version uint64
}

// Update 版本号没变就什么也不做
func (p *PreviewImage) Update(img *image.RGBA, version uint64) {
	if img == nil || version == p.version {
		return
	}
	b := img.Bounds()
	if p.image == nil || p.image.Bounds().Size() != b.Size() {
		p.image = ebiten.NewImage(b.Dx(), b.Dy())
	}
	p.image.WritePixels(img.Pix)
	p.version = version
}

// Draw 把贴图画到 r 的位置
func (p *PreviewImage) Draw(screen *ebiten.Image, r image.Rectangle) {
	if p.image == nil || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(p.image, op)
}
