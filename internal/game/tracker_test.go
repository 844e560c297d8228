package game

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"MouseInfo/config"
	"MouseInfo/internal/entity"
	"MouseInfo/internal/screen"
)

type fakeCursor struct{ x, y int }

func (c *fakeCursor) Position() (int, int) { return c.x, c.y }

// fakeScreen 整块屏幕都是同一个颜色
type fakeScreen struct {
	fill  color.RGBA
	err   error
	calls int
	last  image.Rectangle
}

func (s *fakeScreen) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	s.calls++
	s.last = r
	if s.err != nil {
		return nil, s.err
	}
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, s.fill)
		}
	}
	return img, nil
}

// edgeScreen 像 screenshot 那样返回从 (0,0) 开始的图片，屏幕外的部分是黑色；
// 只有 spot 这一个桌面像素是 spotColor
type edgeScreen struct {
	spot      image.Point
	spotColor color.RGBA
}

func (s *edgeScreen) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			p := r.Min.Add(image.Pt(x, y))
			c := color.RGBA{A: 255}
			if p == s.spot {
				c = s.spotColor
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

type fakeSampler struct {
	calls int
	next  entity.ResourceSample
	err   error
}

func (s *fakeSampler) Sample() (entity.ResourceSample, error) {
	s.calls++
	return s.next, s.err
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	cursor  *fakeCursor
	screen  *fakeScreen
	sampler *fakeSampler
	clock   *fakeClock
	tracker *Tracker
}

func newFixture(mutate func(*config.Config)) *fixture {
	cfg := config.NewDefault()
	if mutate != nil {
		mutate(cfg)
	}
	f := &fixture{
		cursor:  &fakeCursor{x: 100, y: 100},
		screen:  &fakeScreen{fill: color.RGBA{10, 20, 30, 255}},
		sampler: &fakeSampler{next: entity.ResourceSample{CPUPercent: 3.5, MemoryMB: 25}},
		clock:   &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	f.tracker = NewTracker(cfg, f.cursor, f.screen, f.sampler, f.clock.Now)
	return f
}

// tick 推进一个轮询周期再执行 Tick
func (f *fixture) tick() {
	f.clock.Advance(50 * time.Millisecond)
	f.tracker.Tick()
}

func TestTick_MoveUpdatesColor(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackDecColor = true })
	f.tick()

	f.cursor.x, f.cursor.y = 150, 120
	f.tick()

	st := f.tracker.State
	if st.Cursor != (entity.CursorSample{X: 150, Y: 120}) {
		t.Errorf("cursor = %+v", st.Cursor)
	}
	if f.screen.last != screen.Region(150, 120, 5) {
		t.Errorf("captured %v", f.screen.last)
	}
	text, ok := entity.ColorText(st.Color, st.Toggles)
	if !ok || text != "Pixel Color: DEC=(10, 20, 30) HEX=#0a141e" {
		t.Errorf("color text = %q, %v", text, ok)
	}
	if st.Preview == nil || st.Preview.Bounds().Dx() != 200 {
		t.Fatalf("preview not rendered")
	}
	if got := st.Preview.RGBAAt(100, 100); got != (color.RGBA{245, 235, 225, 255}) {
		t.Errorf("crosshair color = %v, want complement", got)
	}
}

func TestTick_NoMoveNoWork(t *testing.T) {
	f := newFixture(nil)
	f.tick()
	calls, version := f.screen.calls, f.tracker.State.PreviewVersion
	for i := 0; i < 10; i++ {
		f.tick()
	}
	if f.screen.calls != calls || f.tracker.State.PreviewVersion != version {
		t.Errorf("motionless cursor should not capture: calls %d->%d", calls, f.screen.calls)
	}
}

func TestTick_MagnifyOff(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackMagnify = false })
	for i := 0; i < 5; i++ {
		f.cursor.x += 7
		f.tick()
	}
	if f.tracker.State.Preview != nil || f.tracker.State.PreviewVersion != 0 {
		t.Error("preview should never be computed with magnification off")
	}
	if f.tracker.State.Color != (entity.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("color should still update, got %+v", f.tracker.State.Color)
	}
}

func TestTick_PauseAndResume(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackUsage = true })
	f.tick()
	f.tracker.TogglePause()
	calls := f.screen.calls

	// 暂停期间移动鼠标
	f.cursor.x, f.cursor.y = 400, 300
	f.tick()
	f.cursor.x, f.cursor.y = 410, 310
	f.tick()
	if f.screen.calls != calls {
		t.Fatal("paused tracker must not capture")
	}
	if f.tracker.State.Cursor != (entity.CursorSample{X: 100, Y: 100}) {
		t.Errorf("paused cursor label changed to %+v", f.tracker.State.Cursor)
	}
	if f.tracker.State.Progress == 0 {
		t.Error("resource countdown should keep running while paused")
	}

	// 恢复后鼠标没动：不应该触发更新
	f.tracker.TogglePause()
	f.tick()
	if f.screen.calls != calls {
		t.Error("resume without movement should not capture")
	}

	f.cursor.x = 420
	f.tick()
	if f.screen.calls != calls+1 || f.tracker.State.Cursor.X != 420 {
		t.Error("movement after resume should be tracked")
	}
}

func TestTick_CaptureFailureIsSkipped(t *testing.T) {
	f := newFixture(nil)
	f.tick()
	version := f.tracker.State.PreviewVersion
	prevColor := f.tracker.State.Color

	f.screen.err = errors.New("off screen")
	f.cursor.x = 0
	f.tick()

	st := f.tracker.State
	if st.PreviewVersion != version || st.Color != prevColor {
		t.Error("failed capture must keep previous color and preview")
	}
	if st.Cursor.X != 0 {
		t.Error("position label should still follow the cursor")
	}

	// 下一次正常截图恢复
	f.screen.err = nil
	f.cursor.x = 5
	f.tick()
	if f.tracker.State.PreviewVersion != version+1 {
		t.Error("tracking should continue after a failed capture")
	}
}

func TestTick_ColorAtScreenCorner(t *testing.T) {
	f := newFixture(nil)
	edge := &edgeScreen{spot: image.Pt(1, 1), spotColor: color.RGBA{10, 20, 30, 255}}
	f.tracker.capturer = edge

	f.cursor.x, f.cursor.y = 1, 1
	f.tick()

	st := f.tracker.State
	if st.Cursor != (entity.CursorSample{X: 1, Y: 1}) {
		t.Errorf("cursor = %+v", st.Cursor)
	}
	if st.Color != (entity.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("color at (1,1) = %+v, want the pixel under the cursor", st.Color)
	}
	if st.PreviewVersion != 1 {
		t.Errorf("preview should be rendered at the screen corner, version = %d", st.PreviewVersion)
	}
}

func TestTick_UsageCountdown(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackUsage = true })

	prev := -1.0
	for f.sampler.calls == 0 {
		f.tick()
		if f.sampler.calls == 0 {
			if f.tracker.State.Progress <= prev {
				t.Fatalf("progress did not increase: %v <= %v", f.tracker.State.Progress, prev)
			}
			prev = f.tracker.State.Progress
		}
	}
	if prev < 9.9 {
		t.Errorf("sample fired early, last progress %v", prev)
	}
	if f.tracker.State.Progress > 0.1 {
		t.Errorf("progress after sample = %v, want ~0", f.tracker.State.Progress)
	}
	if f.tracker.State.Usage != f.sampler.next {
		t.Errorf("usage = %+v", f.tracker.State.Usage)
	}
	if f.tracker.ProgressMax() != 10 {
		t.Errorf("ProgressMax() = %v", f.tracker.ProgressMax())
	}
}

func TestTick_UsageDisabled(t *testing.T) {
	f := newFixture(nil)
	for i := 0; i < 400; i++ {
		f.tick()
	}
	if f.sampler.calls != 0 || f.tracker.State.Progress != 0 {
		t.Error("disabled usage tracking must not sample")
	}
}

func TestTick_UsageFreezesWhenDisabled(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackUsage = true })
	f.clock.Advance(10 * time.Second)
	f.tick()
	if f.sampler.calls != 1 {
		t.Fatalf("calls = %d", f.sampler.calls)
	}
	frozen := f.tracker.State.Usage

	f.tracker.State.Toggles.Usage = false
	f.sampler.next = entity.ResourceSample{CPUPercent: 99}
	f.clock.Advance(time.Minute)
	f.tick()
	if f.tracker.State.Usage != frozen {
		t.Error("values should freeze while disabled")
	}

	f.tracker.State.Toggles.Usage = true
	f.tick()
	if f.sampler.calls != 2 || f.tracker.State.Usage.CPUPercent != 99 {
		t.Error("re-enabling after the interval should sample on the next tick")
	}
}

func TestTick_SampleErrorKeepsOldValues(t *testing.T) {
	f := newFixture(func(c *config.Config) { c.TrackUsage = true })
	f.sampler.err = errors.New("denied")
	f.clock.Advance(10 * time.Second)
	f.tick()
	if f.tracker.State.Usage != (entity.ResourceSample{}) {
		t.Error("failed sample must not overwrite usage")
	}
	if f.tracker.State.Progress > 0.1 {
		t.Error("countdown should restart even when the sample fails")
	}
}
