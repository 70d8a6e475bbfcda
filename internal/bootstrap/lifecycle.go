package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/LiveLikeSpawns_Go/internal/bossspawn"
	"github.com/osse101/LiveLikeSpawns_Go/internal/config"
	"github.com/osse101/LiveLikeSpawns_Go/internal/event"
	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
	"github.com/osse101/LiveLikeSpawns_Go/internal/profile"
	"github.com/osse101/LiveLikeSpawns_Go/internal/spawn"
)

var (
	// ErrPhaseOrder is returned when a lifecycle phase runs out of order or twice
	ErrPhaseOrder = errors.New(ErrMsgPhaseOrder)

	// ErrNotReady is returned for game starts received before PostDBLoad
	ErrNotReady = errors.New(ErrMsgNotReady)
)

// Phase is a host loading phase
type Phase int

const (
	PhaseCreated Phase = iota
	PhasePreLoad
	PhasePostDBLoad
	PhasePostLoad
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "Created"
	case PhasePreLoad:
		return "PreLoad"
	case PhasePostDBLoad:
		return "PostDBLoad"
	case PhasePostLoad:
		return "PostLoad"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Database is what the host hands over once its tables are loaded
type Database struct {
	World    *spawn.World
	Profiles profile.Source
	Names    bossspawn.Namer // optional
}

// Lifecycle wires the mod into the host's loading phases
type Lifecycle struct {
	mu       sync.RWMutex
	phase    Phase
	mod      *config.ModConfig
	reporter *logger.ModReporter
	service  bossspawn.Service
}

// NewLifecycle creates a lifecycle for mod, logging through base (nil uses the default logger)
func NewLifecycle(mod *config.ModConfig, base *slog.Logger) *Lifecycle {
	return &Lifecycle{
		mod:      mod,
		reporter: logger.NewModReporter(base, mod.Enabled, mod.Debug.VerboseLogging),
	}
}

// Phase returns the last completed phase
func (l *Lifecycle) Phase() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.phase
}

// Service returns the adjustment service, nil before PostDBLoad
func (l *Lifecycle) Service() bossspawn.Service {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.service
}

// PreLoad registers event handlers. The game start handler is only subscribed when the mod is enabled.
func (l *Lifecycle) PreLoad(bus event.Bus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.advance(PhasePreLoad); err != nil {
		return err
	}

	deps := EventHandlerDependencies{EventBus: bus}
	if l.mod.Enabled {
		deps.GameStarted = l.handleGameStarted
	}
	RegisterEventHandlers(deps)

	return nil
}

// PostDBLoad builds the adjustment service over the loaded host data
func (l *Lifecycle) PostDBLoad(db Database) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.phase != PhasePreLoad {
		return fmt.Errorf(ErrMsgPhaseSequence, ErrPhaseOrder, PhasePostDBLoad, l.phase)
	}

	if db.World == nil || db.Profiles == nil {
		return errors.New(ErrMsgMissingHostData)
	}

	calculator, err := l.mod.Calculator()
	if err != nil {
		return err
	}

	reader := profile.NewReader(db.Profiles, l.mod.ProfileDefaults())
	l.service = bossspawn.NewService(calculator, reader, db.World, l.mod.Rules(), db.Names, l.reporter)
	l.phase = PhasePostDBLoad

	slog.Info(LogMsgServiceReady, "locations", len(db.World.Locations), "enabled", l.mod.Enabled)
	return nil
}

// PostLoad finishes startup and announces when the mod is disabled
func (l *Lifecycle) PostLoad(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.advance(PhasePostLoad); err != nil {
		return err
	}

	if !l.mod.Enabled {
		l.reporter.Announce(ctx, LogMsgModDisabled)
	}

	return nil
}

func (l *Lifecycle) advance(next Phase) error {
	if l.phase != next-1 {
		return fmt.Errorf(ErrMsgPhaseSequence, ErrPhaseOrder, next, l.phase)
	}
	l.phase = next
	return nil
}

func (l *Lifecycle) handleGameStarted(ctx context.Context, evt event.Event) error {
	svc := l.Service()
	if svc == nil {
		return ErrNotReady
	}
	return svc.HandleGameStarted(ctx, evt)
}
