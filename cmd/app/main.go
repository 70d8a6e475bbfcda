package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/osse101/LiveLikeSpawns_Go/internal/bootstrap"
	"github.com/osse101/LiveLikeSpawns_Go/internal/bossspawn"
	"github.com/osse101/LiveLikeSpawns_Go/internal/config"
	"github.com/osse101/LiveLikeSpawns_Go/internal/event"
	"github.com/osse101/LiveLikeSpawns_Go/internal/validation"
)

func main() {
	sessions := flag.String("sessions", "", "comma-separated session ids to start a game for")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	if logFile := initLogger(cfg); logFile != nil {
		defer logFile.Close()
	}

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(context.Background(), cfg, splitSessions(*sessions)); err != nil {
		slog.Error("Boss spawn adjustment failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, sessions []string) error {
	mod, err := config.LoadModConfig(cfg.ModConfigPath, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	lifecycle := bootstrap.NewLifecycle(mod, nil)
	if err := lifecycle.PreLoad(bus); err != nil {
		return err
	}

	world, err := bootstrap.LoadWorld(cfg.WorldPath)
	if err != nil {
		return err
	}

	profiles, err := bootstrap.LoadProfiles(cfg.ProfilesPath)
	if err != nil {
		return err
	}

	db := bootstrap.Database{World: world, Profiles: profiles}
	if cfg.LocalesPath != "" {
		names, err := bootstrap.LoadNames(cfg.LocalesPath, cfg.Locale)
		if err != nil {
			return err
		}
		db.Names = names
	}

	if err := lifecycle.PostDBLoad(db); err != nil {
		return err
	}
	if err := lifecycle.PostLoad(ctx); err != nil {
		return err
	}

	for _, sessionID := range sessions {
		if err := bus.Publish(ctx, event.NewGameStartedEvent(sessionID)); err != nil {
			return err
		}
	}

	logChances(lifecycle.Service(), db)
	return nil
}

func logChances(svc bossspawn.Service, db bootstrap.Database) {
	for _, loc := range db.World.Locations {
		for _, record := range loc.Spawns {
			if record == nil {
				continue
			}
			boss, location := record.Boss, loc.Name
			if db.Names != nil {
				boss, location = db.Names.BossName(record.Boss), db.Names.LocationName(loc.Name)
			}
			slog.Debug("Boss spawn chance",
				"location", location,
				"boss", boss,
				"chance", record.Chance,
				"multiplier", svc.Multiplier())
		}
	}
}

func splitSessions(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
