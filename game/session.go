// Package game owns a single run of the simulation. A Session holds the
// donburi world with the level, the player, and the gravity model, and is
// the only way a frontend touches them.
package game

import (
	"fmt"
	"sync"

	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/automoto/gravityman/systems"
	"github.com/automoto/gravityman/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Session is one run. All methods are safe to call from any goroutine;
// commands and ticks are serialized on an internal lock.
type Session struct {
	mu      sync.Mutex
	world   donburi.World
	systems []systems.System
	logger  *zap.Logger
	runID   uuid.UUID

	// logged counts pending events already written to the log.
	logged int
}

// New builds a session sitting on the splash screen with the first level
// loaded. It fails only when the level sequence is empty or a level is
// malformed.
func New(opts ...Option) (*Session, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	world := WorldRect()
	var levels []leveldata.Level
	if o.levels == nil {
		levels = leveldata.Builtin()
	} else {
		levels = append(levels, o.levels...)
	}
	for i := 0; i < o.generated; i++ {
		levels = append(levels, leveldata.Generate(len(levels), world))
	}
	if len(levels) == 0 {
		return nil, leveldata.ErrNoLevels
	}
	for i := range levels {
		if err := levels[i].Validate(world, cfg.Player.Width, cfg.Player.Height); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}

	s := &Session{
		world:   donburi.NewWorld(),
		systems: systems.Pipeline(),
		runID:   uuid.New(),
	}
	s.logger = o.logger.With(zap.String("run", s.runID.String()))

	factory.CreateSpace(s.world, cfg.World.Width, cfg.World.Height, cfg.World.CellSize)
	factory.CreateLevel(s.world, levels)
	systems.GetOrCreateSession(s.world)
	if !systems.LoadLevelAt(s.world, 0) {
		return nil, leveldata.ErrNoLevels
	}

	s.logger.Info("session created", zap.Int("levels", len(levels)))
	s.logEvents()
	return s, nil
}

// WorldRect returns the playfield bounds.
func WorldRect() gamemath.Rect {
	return gamemath.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
}

// RunID identifies this session in logs.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}

// Tick advances the simulation by one fixed step.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, system := range s.systems {
		system(s.world)
	}
	s.logEvents()
}

// SetGravityDirection switches gravity to "up", "down", "left" or "right".
// Anything else, or any call outside of play, is ignored.
func (s *Session) SetGravityDirection(dir string) bool {
	return s.command(func(w donburi.World) bool {
		return systems.SetGravityDirection(w, dir)
	})
}

// TriggerBoost queues a dash along the current gravity direction.
func (s *Session) TriggerBoost() bool {
	return s.command(systems.QueueBoost)
}

// TogglePause pauses or resumes play.
func (s *Session) TogglePause() bool {
	return s.command(systems.TogglePause)
}

// RequestStart leaves the splash screen.
func (s *Session) RequestStart() bool {
	return s.command(systems.StartRun)
}

// RequestRestart goes back to the first level.
func (s *Session) RequestRestart() bool {
	return s.command(systems.RestartRun)
}

// Mode returns the current progression state.
func (s *Session) Mode() components.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return systems.GetOrCreateSession(s.world).Mode
}

// DrainEvents returns the events raised since the last drain.
func (s *Session) DrainEvents() []components.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logEvents()
	s.logged = 0
	return systems.DrainEvents(s.world)
}

func (s *Session) command(fn func(donburi.World) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := fn(s.world)
	s.logEvents()
	return ok
}

func (s *Session) logEvents() {
	ent, ok := components.Events.First(s.world)
	if !ok {
		return
	}
	pending := components.Events.Get(ent).Pending
	if s.logged > len(pending) {
		s.logged = 0
	}

	var levelName string
	if level, ok := systems.GetLevel(s.world); ok && level.Current != nil {
		levelName = level.Current.Name
	}

	for _, e := range pending[s.logged:] {
		fields := []zap.Field{
			zap.Stringer("event", e.Kind),
			zap.Int("level", e.LevelIndex),
			zap.Uint64("tick", e.Tick),
		}
		switch e.Kind {
		case components.EventItemCollected, components.EventBoost, components.EventGravityChanged, components.EventExitOpened:
			s.logger.Debug("gameplay event", fields...)
		case components.EventLevelLoaded:
			s.logger.Info("level loaded", append(fields, zap.String("name", levelName))...)
		default:
			s.logger.Info("session event", fields...)
		}
	}
	s.logged = len(pending)
}
