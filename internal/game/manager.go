package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"

	"MouseInfo/config"
	"MouseInfo/internal/entity"
	"MouseInfo/internal/ui"
)

type panel int

const (
	panelHelp panel = iota
	panelSettings
)

// Manager 实现 ebiten.Game：处理输入、重新布局、画画面
// 真正的轮询逻辑在 Tracker 里
type Manager struct {
	Tracker *Tracker

	cfg     *config.Config
	frame   ui.Frame
	preview ui.PreviewImage
	logger  zerolog.Logger

	// 打开的面板，按打开顺序；Esc 关最后一个
	panels []panel

	// ClipboardOK 剪贴板初始化成功才能用 Ctrl-C
	ClipboardOK bool

	// 拖拽：在空白处按下左键拖动窗口
	isDragging bool
	dragStartX int // 拖拽开始时，鼠标相对于窗口的X
	dragStartY int // 拖拽开始时，鼠标相对于窗口的Y
	quit       bool

	// 默认是 ebiten 的窗口函数，测试里替换
	resize     func(w, h int)
	windowPos  func() (int, int)
	moveWindow func(x, y int)
}

// NewManager 组装 Manager，并按初始开关算好第一次布局
func NewManager(cfg *config.Config, tracker *Tracker, logger zerolog.Logger) *Manager {
	m := &Manager{
		Tracker:    tracker,
		cfg:        cfg,
		logger:     logger,
		resize:     ebiten.SetWindowSize,
		windowPos:  ebiten.WindowPosition,
		moveWindow: ebiten.SetWindowPosition,
	}
	m.relayout()
	return m
}

// Init 窗口相关的设置，要在 RunGame 之前调用
func (g *Manager) Init() {
	ebiten.SetTPS(g.cfg.TPS())
	ebiten.SetWindowTitle("Mouse Position Tracker")
	ebiten.SetWindowPosition(g.cfg.WindowX, g.cfg.WindowY)
}

// Frame 当前布局
func (g *Manager) Frame() ui.Frame {
	return g.frame
}

func (g *Manager) view() ui.View {
	return ui.View{
		Toggles:      g.Tracker.State.Toggles,
		HelpOpen:     g.isOpen(panelHelp),
		SettingsOpen: g.isOpen(panelSettings),
		PreviewSize:  g.cfg.PreviewSize,
	}
}

// relayout 每次开关或面板变化后立刻调用，窗口大小跟着内容走
func (g *Manager) relayout() {
	old := g.frame
	g.frame = ui.Compute(g.view())
	if g.frame.Width != old.Width || g.frame.Height != old.Height {
		g.resize(g.frame.Width, g.frame.Height)
	}
}

func (g *Manager) Update() error {
	// 1. 键盘
	keys := ui.Keys{
		Ctrl: ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight),
		S:    inpututil.IsKeyJustPressed(ebiten.KeyS),
		F1:   inpututil.IsKeyJustPressed(ebiten.KeyF1),
		C:    inpututil.IsKeyJustPressed(ebiten.KeyC),
		Esc:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if g.handleKeys(keys) {
		return ebiten.Termination
	}

	// 2. 鼠标 (坐标相对于窗口左上角)
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.press(mx, my)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.drag(mx, my)
	default:
		g.isDragging = false
	}

	// 3. 轮询
	g.Tracker.Tick()
	return nil
}

// handleKeys 执行这一帧的快捷键；返回 true 表示要退出程序
func (g *Manager) handleKeys(k ui.Keys) bool {
	for _, t := range k.Targets() {
		g.Apply(t)
	}
	return g.quit
}

// press 点到控件就执行，点到空白处就开始拖窗口
func (g *Manager) press(mx, my int) {
	t := g.frame.Hit(mx, my)
	if t != ui.TargetNone {
		g.Apply(t)
		return
	}
	// 刚按下的瞬间，记录鼠标相对于窗口的偏移量
	g.isDragging = true
	g.dragStartX = mx
	g.dragStartY = my
}

func (g *Manager) drag(mx, my int) {
	if !g.isDragging {
		return
	}
	wx, wy := g.windowPos()
	g.moveWindow(DragPosition(wx, wy, mx, my, g.dragStartX, g.dragStartY))
}

// DragPosition 拖拽中窗口的新位置
// 当前鼠标在屏幕的绝对位置 = wx + mx
// 我们希望保持 (wx_new + startX) = (wx + mx)
// 所以 wx_new = wx + mx - startX
func DragPosition(wx, wy, mx, my, startX, startY int) (int, int) {
	return wx + mx - startX, wy + my - startY
}

// Apply 执行一次用户操作；开关改完立刻重新布局，不排队
func (g *Manager) Apply(t ui.Target) {
	toggles := &g.Tracker.State.Toggles
	switch t {
	case ui.TargetPause:
		g.Tracker.TogglePause()
		return
	case ui.TargetCopy:
		g.copyColor()
		return
	case ui.TargetEscape:
		// 没有面板开着时 ESC 关闭程序
		if !g.closeLast() {
			g.quit = true
		}
		return
	case ui.TargetHelp:
		g.open(panelHelp)
	case ui.TargetSettings:
		g.open(panelSettings)
	case ui.TargetHelpClose:
		g.close(panelHelp)
	case ui.TargetSettingsClose:
		g.close(panelSettings)
	case ui.TargetCheckUsage:
		toggles.Usage = !toggles.Usage
	case ui.TargetCheckMagnify:
		toggles.Magnify = !toggles.Magnify
	case ui.TargetCheckHex:
		toggles.HexColor = !toggles.HexColor
	case ui.TargetCheckDec:
		toggles.DecColor = !toggles.DecColor
	default:
		return
	}
	g.logger.Debug().Int("target", int(t)).Interface("toggles", *toggles).Msg("control")
	g.relayout()
}

// PauseLabel 按钮上的文字
func (g *Manager) PauseLabel() string {
	if g.Tracker.State.Paused {
		return "Resume"
	}
	return "Pause"
}

func (g *Manager) isOpen(p panel) bool {
	for _, o := range g.panels {
		if o == p {
			return true
		}
	}
	return false
}

// open 已经开着的面板挪到最后，变成 Esc 先关的那个
func (g *Manager) open(p panel) {
	g.remove(p)
	g.panels = append(g.panels, p)
}

func (g *Manager) close(p panel) {
	g.remove(p)
}

func (g *Manager) remove(p panel) {
	kept := g.panels[:0]
	for _, o := range g.panels {
		if o != p {
			kept = append(kept, o)
		}
	}
	g.panels = kept
}

// closeLast 关掉最后打开的面板；没有可关的返回 false
func (g *Manager) closeLast() bool {
	if len(g.panels) == 0 {
		return false
	}
	g.panels = g.panels[:len(g.panels)-1]
	g.relayout()
	return true
}

func (g *Manager) copyColor() {
	if !g.ClipboardOK {
		g.logger.Warn().Msg("clipboard unavailable")
		return
	}
	hex := g.Tracker.State.Color.Hex()
	clipboard.Write(clipboard.FmtText, []byte(hex))
	g.logger.Info().Str("color", hex).Msg("copied to clipboard")
}

func (g *Manager) Draw(screen *ebiten.Image) {
	st := &g.Tracker.State
	f := g.frame
	screen.Fill(ui.Background)

	// 主区域
	ui.Label(screen, st.Cursor.String(), f.Position)
	if !f.Color.Empty() {
		if s, ok := entity.ColorText(st.Color, st.Toggles); ok {
			ui.Label(screen, s, f.Color)
		}
	}
	if !f.Preview.Empty() {
		g.preview.Update(st.Preview, st.PreviewVersion)
		g.preview.Draw(screen, f.Preview)
	}
	if !f.Usage.Empty() {
		ui.Label(screen, st.Usage.String(), f.Usage)
		ui.ProgressBar(screen, f.Progress, st.Progress, g.Tracker.ProgressMax())
	}
	ui.Button(screen, f.Pause, g.PauseLabel())
	ui.Button(screen, f.Help, "Help")
	ui.Button(screen, f.Settings, "Settings")

	// 右侧面板
	if !f.HelpPanel.Empty() {
		ui.Panel(screen, f.HelpPanel, f.HelpClose, "Help")
		ui.TextBlock(screen, ui.HelpLines, f.HelpPanel.Min.X+10, f.HelpPanel.Min.Y+10+ui.FontH+10)
	}
	if !f.SettingsPanel.Empty() {
		ui.Panel(screen, f.SettingsPanel, f.SettingsClose, "Settings")
		checked := [4]bool{st.Toggles.Usage, st.Toggles.Magnify, st.Toggles.HexColor, st.Toggles.DecColor}
		for i, label := range ui.CheckLabels {
			ui.Checkbox(screen, f.Checks[i], label, checked[i])
		}
	}
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 告诉 Ebiten 画布大小就是布局算出来的大小
	return g.frame.Width, g.frame.Height
}
