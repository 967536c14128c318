package game

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/level"
	"github.com/milk9111/platformer/player"
)

// Mode is the top-level session state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDead
	ModeLevelComplete
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	case ModeLevelComplete:
		return "complete"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// LevelLoader resolves a level index to a loaded level. Implemented by
// level.FileSet; tests supply their own.
type LevelLoader interface {
	Load(i int) (*level.Level, error)
}

const (
	// dt is clamped here so a stall never produces one huge unstable step.
	// There is no accumulator; physics is tuned for ~60Hz.
	maxFrameTime = 0.1

	// falling this far below the level counts as a death
	fallOutMargin = 64

	respawnDelay       = 1.0
	deathParticleCount = 20
	deathShakeAmp      = 6
	deathShakeDuration = 0.4
)

var deathParticleColor = color.RGBA{R: 0xe6, G: 0x48, B: 0x3d, A: 0xff}

// Session is one complete game run: the mode state machine, the player, the
// current level, and the camera/particle side-effect state. It has no global
// state; multiple sessions can update concurrently as long as each one is
// driven by a single caller.
type Session struct {
	Mode      Mode
	Level     *level.Level
	Player    *player.Player
	Camera    Camera
	Particles *Particles

	LevelTime float32
	Deaths    int

	respawnTimer float32
	levelIndex   int
	loader       LevelLoader
	tuning       player.Tuning
	log          *log.Logger
}

// NewSession builds a session over the given level. loader may be nil, in
// which case completing a level restarts it. logger may be nil.
func NewSession(lvl *level.Level, loader LevelLoader, tn player.Tuning, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		Mode:      ModeMenu,
		Level:     lvl,
		Player:    player.New(lvl.SpawnX, lvl.SpawnY, tn),
		Camera:    NewCamera(0, 0),
		Particles: NewParticles(time.Now().UnixNano()),
		loader:    loader,
		tuning:    tn,
		log:       logger,
	}
	s.Camera.SetWorldBounds(lvl.PixelWidth(), lvl.PixelHeight())
	s.Camera.SnapTo(lvl.SpawnX, lvl.SpawnY)
	return s
}

// SetViewSize tells the camera the view dimensions used for bounds clamping.
func (s *Session) SetViewSize(w, h float32) {
	s.Camera.viewW = w
	s.Camera.viewH = h
}

// Update advances the session one frame. It is the sole mutator of session
// state and must be called from a single goroutine. dt is wall-clock seconds,
// clamped to maxFrameTime.
func (s *Session) Update(in player.Input, dt float32) {
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	// particles animate in every mode so death bursts finish while Dead
	s.Particles.Update(dt)

	switch s.Mode {
	case ModeMenu:
		if in.JumpPressed || in.StartPressed {
			s.start()
		}
	case ModePlaying:
		if in.PausePressed {
			s.Mode = ModePaused
			return
		}
		s.LevelTime += dt
		s.Player.Update(in, s.Level, dt)

		pr := s.Player.Rect()
		if s.overHazard(pr) || s.Player.Y > s.Level.PixelHeight()+fallOutMargin {
			s.kill()
			return
		}
		if pr.Intersects(s.Level.Goal) {
			s.Mode = ModeLevelComplete
			return
		}
		s.Camera.Update(s.Player.X, s.Player.Y, dt)
	case ModeDead:
		s.respawnTimer -= dt
		if s.respawnTimer <= 0 {
			s.respawn()
		}
	case ModeLevelComplete:
		if in.JumpPressed || in.StartPressed {
			s.advance()
		}
	case ModePaused:
		if in.PausePressed {
			s.Mode = ModePlaying
		}
	}
}

func (s *Session) overHazard(pr common.Rect) bool {
	for _, h := range s.Level.Hazards {
		if pr.Intersects(h) {
			return true
		}
	}
	return false
}

func (s *Session) start() {
	s.Player.Reset(s.Level.SpawnX, s.Level.SpawnY)
	s.Camera.SnapTo(s.Player.X, s.Player.Y)
	s.LevelTime = 0
	s.Mode = ModePlaying
}

func (s *Session) kill() {
	s.Deaths++
	s.Particles.Burst(s.Player.X, s.Player.Y, deathParticleCount, deathParticleColor)
	s.Camera.Shake(deathShakeAmp, deathShakeDuration)
	s.respawnTimer = respawnDelay
	s.Mode = ModeDead
}

func (s *Session) respawn() {
	s.Player.Reset(s.Level.SpawnX, s.Level.SpawnY)
	s.Camera.SnapTo(s.Player.X, s.Player.Y)
	s.Mode = ModePlaying
}

// advance moves to the next level, wrapping to the first when the next one
// fails to load and keeping the current level when that fails too. Every
// failure path leaves the session playable.
func (s *Session) advance() {
	next := s.levelIndex + 1
	var lvl *level.Level
	var err error
	if s.loader != nil {
		lvl, err = s.loader.Load(next)
		if err != nil {
			s.log.Warn("next level unavailable, wrapping to first", "index", next, "err", err)
			next = 0
			lvl, err = s.loader.Load(next)
		}
	}
	if lvl == nil || err != nil {
		if err != nil {
			s.log.Warn("first level unavailable, keeping current level", "err", err)
		}
		lvl = s.Level
		next = s.levelIndex
	}
	s.levelIndex = next
	s.SetLevel(lvl)
}

// SetLevel swaps in a level wholesale and restarts play from its spawn.
// Also used by the live-reload watcher.
func (s *Session) SetLevel(lvl *level.Level) {
	s.Level = lvl
	s.Camera.SetWorldBounds(lvl.PixelWidth(), lvl.PixelHeight())
	s.Player.Reset(lvl.SpawnX, lvl.SpawnY)
	s.Camera.SnapTo(s.Player.X, s.Player.Y)
	s.LevelTime = 0
	s.Mode = ModePlaying
}

// LevelIndex reports the current level's position in the loader's order.
func (s *Session) LevelIndex() int { return s.levelIndex }
