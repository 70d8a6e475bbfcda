package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LiveLikeSpawns_Go/internal/curve"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
	"github.com/osse101/LiveLikeSpawns_Go/internal/profile"
	"github.com/osse101/LiveLikeSpawns_Go/internal/progression"
	"github.com/osse101/LiveLikeSpawns_Go/internal/spawn"
	"github.com/osse101/LiveLikeSpawns_Go/internal/validation"
)

// ModConfig is the user-editable mod configuration (config/config.json)
type ModConfig struct {
	Enabled                             bool                `json:"enabled"`
	AdjustmentsDisabledAfterPlayerLevel int                 `json:"adjustments_disabled_after_player_level" validate:"gte=0"`
	AdjustmentFactors                   AdjustmentFactors   `json:"adjustment_factors"`
	Thresholds                          Thresholds          `json:"thresholds"`
	ChanceProgressionRate               curve.Table         `json:"chance_progression_rate" validate:"min=1"`
	BlockedBosses                       []string            `json:"blocked_bosses" validate:"dive,required"`
	IgnoredBosses                       map[string][]string `json:"ignored_bosses" validate:"dive,keys,required,endkeys,dive,required"`
	Debug                               Debug               `json:"debug"`
}

// AdjustmentFactors selects which metrics contribute to the multiplier
type AdjustmentFactors struct {
	PlayerLevel bool `json:"playerLevel"`
	PlayerHours bool `json:"playerHours"`
}

// Thresholds holds the metric ranges and the multiplier output range
type Thresholds struct {
	PlayerLevel     progression.Range `json:"playerLevel"`
	PlayerHours     progression.Range `json:"playerHours"`
	AdjustmentRange progression.Range `json:"adjustmentRange"`
}

// Debug holds diagnostics settings and fallbacks for missing player data
type Debug struct {
	VerboseLogging     bool    `json:"verbose_logging"`
	DefaultPlayerLevel int     `json:"defaultPlayerLevel" validate:"gte=0"`
	DefaultPlayerHours float64 `json:"defaultPlayerHours" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadModConfig reads, schema-checks, decodes and validates the mod config at path.
// Every rejection wraps domain.ErrInvalidConfig.
func LoadModConfig(path string, sv validation.SchemaValidator) (*ModConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadModConfig, path, err)
	}

	return ParseModConfig(data, path, sv)
}

// ParseModConfig runs the load pipeline over raw bytes; name is used in error messages
func ParseModConfig(data []byte, name string, sv validation.SchemaValidator) (*ModConfig, error) {
	if err := sv.ValidateBytes(data, validation.SchemaModConfig); err != nil {
		return nil, fmt.Errorf(ErrMsgModConfigSchema, domain.ErrInvalidConfig, name, err)
	}

	var cfg ModConfig
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeModConfig, domain.ErrInvalidConfig, name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field rules and the semantic rules of the progression settings
func (c *ModConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf(ErrMsgModConfigRules, domain.ErrInvalidConfig, fieldErrs[0].Namespace(), fieldErrs[0].Tag())
		}
		return fmt.Errorf(ErrMsgModConfigStruct, domain.ErrInvalidConfig, err)
	}

	_, err := c.Calculator()
	return err
}

// CalculatorSettings maps the config onto progression settings
func (c *ModConfig) CalculatorSettings() progression.Settings {
	return progression.Settings{
		LevelRange:         c.Thresholds.PlayerLevel,
		HoursRange:         c.Thresholds.PlayerHours,
		Rate:               c.ChanceProgressionRate,
		Output:             c.Thresholds.AdjustmentRange,
		UseLevel:           c.AdjustmentFactors.PlayerLevel,
		UseHours:           c.AdjustmentFactors.PlayerHours,
		DisabledAfterLevel: c.AdjustmentsDisabledAfterPlayerLevel,
	}
}

// Calculator builds the progression calculator for this config
func (c *ModConfig) Calculator() (*progression.Calculator, error) {
	return progression.NewCalculator(c.CalculatorSettings())
}

// Rules returns the blocked and ignored boss rules
func (c *ModConfig) Rules() spawn.Rules {
	return spawn.NewRules(c.BlockedBosses, c.IgnoredBosses)
}

// ProfileDefaults returns the metrics used when a session has no PMC profile
func (c *ModConfig) ProfileDefaults() profile.Defaults {
	return profile.Defaults{
		Level: c.Debug.DefaultPlayerLevel,
		Hours: c.Debug.DefaultPlayerHours,
	}
}
