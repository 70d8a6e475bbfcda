package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/osse101/LiveLikeSpawns_Go/internal/config"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
	"github.com/osse101/LiveLikeSpawns_Go/internal/spawn"
	"github.com/osse101/LiveLikeSpawns_Go/internal/utils"
	"github.com/osse101/LiveLikeSpawns_Go/internal/validation"
)

// debug prints the progression factors and multiplier the mod config yields for a player
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	path := flag.String("config", config.DefaultModConfigPath, "mod config path")
	level := flag.Int("level", 1, "player level")
	hours := flag.Float64("hours", 0, "player hours")
	chance := flag.Int("chance", 0, "original spawn chance to scale")
	flag.Parse()

	mod, err := config.LoadModConfig(*path, validation.NewSchemaValidator())
	if err != nil {
		log.Fatalf("Failed to load mod config: %v", err)
	}

	calc, err := mod.Calculator()
	if err != nil {
		log.Fatalf("Invalid mod config: %v", err)
	}

	result := calc.Calculate(domain.PlayerMetrics{Level: *level, Hours: *hours})

	fmt.Println("--- Progression ---")
	if result.Capped {
		fmt.Printf("Level %d is at or above %d, metric factors skipped\n", *level, mod.AdjustmentsDisabledAfterPlayerLevel)
	}
	for _, f := range result.Factors {
		fmt.Printf("%-14s value=%-8v factor=%v\n", f.Metric, f.Value, utils.MustRound(f.Factor, 4))
	}
	fmt.Printf("multiplier=%v (%d%%)\n", utils.MustRound(result.Multiplier, 4), int(utils.RoundHalfUp(result.Multiplier*100)))

	if *chance > 0 {
		fmt.Printf("\nchance %d%% -> %d%%\n", *chance, spawn.ScaleChance(*chance, result.Multiplier))
	}
}
