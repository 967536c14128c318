package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/level"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Shell adapts the session to ebiten: it polls input, derives the wall-clock
// dt, drains level watcher events, and draws. All session mutation happens
// inside Update, so the core stays single-writer.
type Shell struct {
	session *game.Session
	cfg     config.Config
	logger  *log.Logger
	watcher *level.Watcher
	input   *Input
	pauseUI *ebitenui.UI
	last    time.Time
}

func NewShell(session *game.Session, cfg config.Config, logger *log.Logger, watcher *level.Watcher) *Shell {
	s := &Shell{
		session: session,
		cfg:     cfg,
		logger:  logger,
		watcher: watcher,
		input:   NewInput(),
	}
	s.pauseUI = NewPauseUI(session)
	zoom := cfg.Window.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	session.SetViewSize(float32(baseWidth/zoom), float32(baseHeight/zoom))
	return s
}

func (s *Shell) Update() error {
	now := time.Now()
	dt := float32(1.0 / 60.0)
	if !s.last.IsZero() {
		dt = float32(now.Sub(s.last).Seconds())
	}
	s.last = now

	s.drainWatcher()

	in := s.input.Poll()
	s.session.Update(in, dt)

	if s.session.Mode == game.ModePaused {
		s.pauseUI.Update()
	}
	return nil
}

// drainWatcher applies pending level file changes without blocking the frame.
func (s *Shell) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			lvl, err := level.Load(path)
			if err != nil {
				s.logger.Warn("level reload failed", "path", path, "err", err)
				continue
			}
			s.logger.Info("level reloaded", "path", path, "name", lvl.Name)
			s.session.SetLevel(lvl)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			s.logger.Warn("level watcher error", "err", err)
		default:
			return
		}
	}
}

func (s *Shell) Draw(screen *ebiten.Image) {
	drawSession(screen, s.session.Snapshot(), s.cfg.Window.Zoom)
	if s.session.Mode == game.ModePaused {
		s.pauseUI.Draw(screen)
	}
}

func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
