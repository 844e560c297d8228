package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"

	"MouseInfo/config"
	"MouseInfo/internal/game"
	"MouseInfo/internal/monitor"
	"MouseInfo/internal/screen"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// 1. 配置
	cfg := config.NewDefault()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	// 2. 外部依赖：鼠标、截图、进程监控
	sampler, err := monitor.NewProcessSampler(cfg.CPUSampleWindow)
	if err != nil {
		log.Fatal().Err(err).Msg("process monitor")
	}
	tracker := game.NewTracker(cfg, screen.NewEbitenCursor(), screen.NewScreenCapturer(), sampler, time.Now)
	tracker.SetLogger(log.With().Str("component", "tracker").Logger())

	// 3. 窗口
	ebiten.SetWindowFloating(true) // 始终置顶
	mgr := game.NewManager(cfg, tracker, log.With().Str("component", "ui").Logger())
	mgr.Init()

	// 剪贴板可选，失败了只是 Ctrl-C 不能用
	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard disabled")
	} else {
		mgr.ClipboardOK = true
	}

	// 4. 启动
	log.Info().Dur("poll", cfg.PollInterval).Dur("usage", cfg.UsageInterval).Msg("tracking")
	if err := ebiten.RunGame(mgr); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
