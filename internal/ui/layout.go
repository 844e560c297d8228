package ui

import (
	"image"

	"MouseInfo/internal/entity"
)

// basicfont.Face7x13 的特性：每个字宽 7 像素，高 13 像素
const (
	FontW = 7
	FontH = 13

	pad      = 10
	buttonH  = 20
	barH     = 12
	barW     = 200
	boxSize  = 13
	closeBox = 16

	MainWidth  = 340 // 主区域宽度，最长的颜色文字也能放下
	PanelWidth = 450 // 右侧面板宽度
)

// Target 鼠标点到了什么，或者快捷键要做什么
type Target int

const (
	TargetNone Target = iota
	TargetPause
	TargetHelp
	TargetSettings
	TargetHelpClose
	TargetSettingsClose
	TargetCheckUsage
	TargetCheckMagnify
	TargetCheckHex
	TargetCheckDec
	TargetCopy   // 只有快捷键
	TargetEscape // 只有快捷键
)

// 设置面板里四个勾选框的顺序
const (
	CheckUsage = iota
	CheckMagnify
	CheckHex
	CheckDec
)

// CheckLabels 设置面板的四个选项
var CheckLabels = [4]string{
	"Enable CPU/Memory Tracking",
	"Enable Magnification",
	"Enable Hex Color",
	"Enable Dec Color",
}

// View 决定布局的全部输入
type View struct {
	Toggles      entity.Toggles
	HelpOpen     bool
	SettingsOpen bool
	PreviewSize  int
}

// Frame 一次布局的结果；隐藏的区域是空矩形
type Frame struct {
	Width, Height int

	Position image.Rectangle
	Color    image.Rectangle
	Preview  image.Rectangle
	Usage    image.Rectangle
	Progress image.Rectangle

	Pause, Help, Settings image.Rectangle

	HelpPanel, HelpClose         image.Rectangle
	SettingsPanel, SettingsClose image.Rectangle
	Checks                       [4]image.Rectangle
}

// Compute 根据当前状态从头算一遍布局
// 每次开关变化都重新调用，不做增量更新
func Compute(v View) Frame {
	var f Frame
	y := pad

	// 1. 主区域：从上往下排
	f.Position = image.Rect(pad, y, MainWidth-pad, y+FontH)
	y += FontH + pad

	if v.Toggles.DecColor || v.Toggles.HexColor {
		f.Color = image.Rect(pad, y, MainWidth-pad, y+FontH)
		y += FontH + pad
	}

	if v.Toggles.Magnify {
		x := (MainWidth - v.PreviewSize) / 2
		f.Preview = image.Rect(x, y, x+v.PreviewSize, y+v.PreviewSize)
		y += v.PreviewSize + pad
	}

	if v.Toggles.Usage {
		f.Usage = image.Rect(pad, y, MainWidth-pad, y+FontH)
		y += FontH + pad/2
		x := (MainWidth - barW) / 2
		f.Progress = image.Rect(x, y, x+barW, y+barH)
		y += barH + pad
	}

	// 按钮一行三个；Pause 按 "Resume" 的宽度算，切换文字时按钮不跳
	x := pad
	for _, b := range []struct {
		r     *image.Rectangle
		label string
	}{
		{&f.Pause, "Resume"},
		{&f.Help, "Help"},
		{&f.Settings, "Settings"},
	} {
		w := len(b.label)*FontW + 2*pad
		*b.r = image.Rect(x, y, x+w, y+buttonH)
		x += w + pad
	}
	y += buttonH + pad
	mainH := y

	// 2. 右侧面板：帮助在上，设置在下
	f.Width = MainWidth
	if !v.HelpOpen && !v.SettingsOpen {
		f.Height = mainH
		return f
	}
	f.Width += PanelWidth
	left := MainWidth
	right := MainWidth + PanelWidth - pad
	py := pad

	if v.HelpOpen {
		h := FontH + pad + len(HelpLines)*FontH + 2*pad
		f.HelpPanel = image.Rect(left, py, right, py+h)
		f.HelpClose = closeRect(f.HelpPanel)
		py += h + pad
	}

	if v.SettingsOpen {
		h := FontH + pad + len(CheckLabels)*(boxSize+pad) + 2*pad
		f.SettingsPanel = image.Rect(left, py, right, py+h)
		f.SettingsClose = closeRect(f.SettingsPanel)
		cy := py + pad + FontH + pad
		for i, label := range CheckLabels {
			cx := left + pad
			f.Checks[i] = image.Rect(cx, cy, cx+boxSize+pad+len(label)*FontW, cy+boxSize)
			cy += boxSize + pad
		}
		py += h + pad
	}

	f.Height = max(mainH, py)
	return f
}

func closeRect(panel image.Rectangle) image.Rectangle {
	x := panel.Max.X - pad/2 - closeBox
	y := panel.Min.Y + pad/2
	return image.Rect(x, y, x+closeBox, y+closeBox)
}

// Hit 找出 (x, y) 落在哪个可点击的区域上
func (f Frame) Hit(x, y int) Target {
	p := image.Pt(x, y)
	// 面板里的按钮先判断，它们画在最上层
	areas := []struct {
		r image.Rectangle
		t Target
	}{
		{f.HelpClose, TargetHelpClose},
		{f.SettingsClose, TargetSettingsClose},
		{f.Checks[CheckUsage], TargetCheckUsage},
		{f.Checks[CheckMagnify], TargetCheckMagnify},
		{f.Checks[CheckHex], TargetCheckHex},
		{f.Checks[CheckDec], TargetCheckDec},
		{f.Pause, TargetPause},
		{f.Help, TargetHelp},
		{f.Settings, TargetSettings},
	}
	for _, a := range areas {
		if p.In(a.r) {
			return a.t
		}
	}
	return TargetNone
}
