// Package bossspawn runs boss spawn chance adjustment cycles for a player session.
package bossspawn

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
	"github.com/osse101/LiveLikeSpawns_Go/internal/event"
	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
	"github.com/osse101/LiveLikeSpawns_Go/internal/metrics"
	"github.com/osse101/LiveLikeSpawns_Go/internal/progression"
	"github.com/osse101/LiveLikeSpawns_Go/internal/spawn"
	"github.com/osse101/LiveLikeSpawns_Go/internal/utils"
)

// Reporter receives the mod's diagnostics
type Reporter interface {
	Info(ctx context.Context, msg string, args ...any)
	Verbose(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// MetricsReader reads the raw progression metrics of a session.
// On error the returned value is the configured default and is still used.
type MetricsReader interface {
	Level(ctx context.Context, sessionID string) (int, error)
	Hours(ctx context.Context, sessionID string) (float64, error)
}

// Namer turns boss and location ids into display names
type Namer interface {
	BossName(id string) string
	LocationName(id string) string
}

// Cycle describes one completed adjustment
type Cycle struct {
	SessionID string
	RequestID string
	Metrics   domain.PlayerMetrics
	Result    progression.Result
	Outcome   spawn.Outcome
	Changes   []spawn.Change
}

// Service adjusts world boss spawn chances to a player's progression
type Service interface {
	AdjustAll(ctx context.Context, sessionID string) (*Cycle, error)
	HandleGameStarted(ctx context.Context, evt event.Event) error
	Multiplier() float64
}

type service struct {
	calculator *progression.Calculator
	reader     MetricsReader
	world      *spawn.World
	rules      spawn.Rules
	names      Namer
	reporter   Reporter
	state      *spawn.State
}

// NewService creates the adjustment service. names may be nil, in which case raw ids are logged.
func NewService(
	calculator *progression.Calculator,
	reader MetricsReader,
	world *spawn.World,
	rules spawn.Rules,
	names Namer,
	reporter Reporter,
) Service {
	if names == nil {
		names = rawNames{}
	}
	return &service{
		calculator: calculator,
		reader:     reader,
		world:      world,
		rules:      rules,
		names:      names,
		reporter:   reporter,
		state:      spawn.NewState(),
	}
}

// Multiplier returns the multiplier currently applied to the world
func (s *service) Multiplier() float64 {
	return s.state.Last()
}

// AdjustAll rescales every eligible spawn record in the world to the session's progression
func (s *service) AdjustAll(ctx context.Context, sessionID string) (*Cycle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustCanceled, err)
	}

	requestID, ok := logger.RequestIDFromContext(ctx)
	if !ok {
		requestID = logger.GenerateRequestID()
		ctx = logger.WithRequestID(ctx, requestID)
	}

	cycle := &Cycle{
		SessionID: sessionID,
		RequestID: requestID,
		Metrics:   s.readMetrics(ctx, sessionID),
	}

	cycle.Result = s.calculator.Calculate(cycle.Metrics)
	s.reportFactors(ctx, cycle)

	multiplier := cycle.Result.Multiplier
	s.reporter.Info(ctx, fmt.Sprintf(LogMsgScaling, int(utils.RoundHalfUp(multiplier*100))),
		"session_id", sessionID,
		"multiplier", multiplier)

	cycle.Outcome = s.state.Apply(s.world.Locations, multiplier, s.rules, func(c spawn.Change) {
		cycle.Changes = append(cycle.Changes, c)
		metrics.ChancesChanged.WithLabelValues(c.Location).Inc()
		s.reporter.Verbose(ctx, fmt.Sprintf(LogMsgChanceChanged,
			s.names.BossName(c.Boss), s.names.LocationName(c.Location), c.From, c.To))
	})

	metrics.AdjustmentCycles.Inc()
	metrics.AdjustmentMultiplier.Set(multiplier)

	logger.FromContext(ctx).Debug(LogMsgCycleComplete,
		"session_id", sessionID,
		"previous", cycle.Outcome.Previous,
		"relative", cycle.Outcome.Relative,
		"changed", cycle.Outcome.Changed)

	return cycle, nil
}

// HandleGameStarted runs an adjustment cycle for the session that started a game
func (s *service) HandleGameStarted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GameStartedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodeGameStarted, err)
	}
	if payload.SessionID == "" {
		return errors.New(ErrMsgMissingSessionID)
	}

	_, err = s.AdjustAll(ctx, payload.SessionID)
	return err
}

func (s *service) readMetrics(ctx context.Context, sessionID string) domain.PlayerMetrics {
	level, err := s.reader.Level(ctx, sessionID)
	if err != nil {
		s.reporter.Error(ctx, fmt.Sprintf(LogMsgAssumeLevel, level), "session_id", sessionID, "error", err)
		metrics.MetricDefaultsUsed.WithLabelValues(string(progression.MetricPlayerLevel)).Inc()
	}

	hours, err := s.reader.Hours(ctx, sessionID)
	if err != nil {
		s.reporter.Error(ctx, fmt.Sprintf(LogMsgAssumeHours, hours), "session_id", sessionID, "error", err)
		metrics.MetricDefaultsUsed.WithLabelValues(string(progression.MetricPlayerHours)).Inc()
	}

	return domain.PlayerMetrics{Level: level, Hours: hours}
}

func (s *service) reportFactors(ctx context.Context, cycle *Cycle) {
	if cycle.Result.Capped {
		s.reporter.Verbose(ctx, fmt.Sprintf(LogMsgAdjustmentsAbove,
			cycle.Metrics.Level, s.calculator.Settings().DisabledAfterLevel))
		return
	}

	for _, f := range cycle.Result.Factors {
		metrics.ProgressionFactor.WithLabelValues(string(f.Metric)).Set(f.Factor)

		factor := utils.MustRound(f.Factor, FactorPrecision)
		switch f.Metric {
		case progression.MetricPlayerLevel:
			s.reporter.Verbose(ctx, fmt.Sprintf(LogMsgLevelFactor, factor, cycle.Metrics.Level))
		case progression.MetricPlayerHours:
			s.reporter.Verbose(ctx, fmt.Sprintf(LogMsgHoursFactor, factor, cycle.Metrics.Hours))
		}
	}
}

type rawNames struct{}

func (rawNames) BossName(id string) string     { return id }
func (rawNames) LocationName(id string) string { return id }
