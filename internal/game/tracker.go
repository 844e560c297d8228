package game

import (
	"image"
	"time"

	"github.com/rs/zerolog"

	"MouseInfo/config"
	"MouseInfo/internal/entity"
	"MouseInfo/internal/magnify"
	"MouseInfo/internal/monitor"
	"MouseInfo/internal/screen"
)

// Tracker 每个 tick 要做的事情都在这里，不碰 ebiten，方便测试
type Tracker struct {
	State entity.State

	cfg       *config.Config
	cursor    screen.CursorSource
	capturer  screen.Capturer
	sampler   monitor.Sampler
	countdown *monitor.Countdown
	clock     func() time.Time
	logger    zerolog.Logger

	lastX, lastY int
}

// NewTracker 用配置里的默认开关初始化状态
// clock 一般传 time.Now，测试里换成假时钟
func NewTracker(cfg *config.Config, cursor screen.CursorSource, capturer screen.Capturer, sampler monitor.Sampler, clock func() time.Time) *Tracker {
	return &Tracker{
		State: entity.State{
			Toggles: entity.Toggles{
				Usage:    cfg.TrackUsage,
				Magnify:  cfg.TrackMagnify,
				HexColor: cfg.TrackHexColor,
				DecColor: cfg.TrackDecColor,
			},
		},
		cfg:       cfg,
		cursor:    cursor,
		capturer:  capturer,
		sampler:   sampler,
		countdown: monitor.NewCountdown(cfg.UsageInterval, clock()),
		clock:     clock,
		logger:    zerolog.Nop(),
	}
}

// SetLogger 替换日志 (默认不输出)
func (t *Tracker) SetLogger(l zerolog.Logger) {
	t.logger = l
}

// ProgressMax 进度条的上限 (秒)
func (t *Tracker) ProgressMax() float64 {
	return t.countdown.Max()
}

// TogglePause 暂停/继续，只影响鼠标、颜色和放大镜
func (t *Tracker) TogglePause() {
	t.State.Paused = !t.State.Paused
	t.logger.Debug().Bool("paused", t.State.Paused).Msg("pause toggled")
}

// Tick 一次轮询
func (t *Tracker) Tick() {
	// 1. 读鼠标位置
	x, y := t.cursor.Position()
	moved := x != t.lastX || y != t.lastY
	t.lastX, t.lastY = x, y

	// 2. 暂停时也要记住位置，这样恢复后只有真正移动了才会更新
	if !t.State.Paused && moved {
		t.State.Cursor = entity.CursorSample{X: x, Y: y}
		t.sampleColor(x, y)
	}

	// 3. 资源监控和暂停无关，只看自己的开关
	if !t.State.Toggles.Usage {
		return
	}
	now := t.clock()
	if t.countdown.Due(now) {
		t.sampleUsage()
		// 用采样结束后的时间重新计时，阻塞测量的耗时不算进下一个周期
		now = t.clock()
		t.countdown.Reset(now)
	}
	t.State.Progress = t.countdown.Elapsed(now)
}

// sampleColor 截图、取色、按需重新生成放大图
// 截图失败 (屏幕边缘等) 只跳过这一次，不影响轮询
func (t *Tracker) sampleColor(x, y int) {
	r := screen.Region(x, y, t.cfg.SampleSize)
	img, err := t.capturer.CaptureRegion(r)
	if err != nil {
		t.logger.Debug().Err(err).Int("x", x).Int("y", y).Msg("capture skipped")
		return
	}
	c, ok := magnify.ColorAt(img, image.Pt(x, y).Sub(r.Min))
	if !ok {
		t.logger.Debug().Int("x", x).Int("y", y).Msg("capture had no pixel under the cursor")
		return
	}
	t.State.Color = c

	if !t.State.Toggles.Magnify {
		return
	}
	t.State.Preview = magnify.Render(img, t.cfg.PreviewSize,
		magnify.Crosshair{Arm: t.cfg.CrosshairArm, Half: t.cfg.CrosshairHalf},
		c.Complement().RGBA())
	t.State.PreviewVersion++
}

func (t *Tracker) sampleUsage() {
	s, err := t.sampler.Sample()
	if err != nil {
		// 保留旧数值，下个周期再试
		t.logger.Warn().Err(err).Msg("resource sample failed")
		return
	}
	t.State.Usage = s
	t.logger.Debug().
		Float64("cpu_percent", s.CPUPercent).
		Float64("memory_mb", s.MemoryMB).
		Msg("resource sample")
}
