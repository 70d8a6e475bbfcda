package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LiveLikeSpawns_Go/internal/curve"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
	"github.com/osse101/LiveLikeSpawns_Go/internal/progression"
	"github.com/osse101/LiveLikeSpawns_Go/internal/validation"
)

const validModConfig = `{
	"enabled": true,
	"adjustments_disabled_after_player_level": 60,
	"adjustment_factors": {"playerLevel": true, "playerHours": true},
	"thresholds": {
		"playerLevel": {"min": 1, "max": 40},
		"playerHours": {"min": 0, "max": 100},
		"adjustmentRange": {"min": 0.1, "max": 1}
	},
	"chance_progression_rate": [[0, 0], [0.5, 0.3], [1, 1]],
	"blocked_bosses": ["bossZryachiy"],
	"ignored_bosses": {"laboratory": ["bossKilla"]},
	"debug": {"verbose_logging": true, "defaultPlayerLevel": 5, "defaultPlayerHours": 2.5}
}`

func TestParseModConfig(t *testing.T) {
	cfg, err := ParseModConfig([]byte(validModConfig), "config.json", validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.AdjustmentsDisabledAfterPlayerLevel)
	assert.Equal(t, progression.Range{Min: 0.1, Max: 1}, cfg.Thresholds.AdjustmentRange)
	assert.Equal(t, curve.Table{{X: 0, Y: 0}, {X: 0.5, Y: 0.3}, {X: 1, Y: 1}}, cfg.ChanceProgressionRate)
	assert.Equal(t, []string{"bossZryachiy"}, cfg.BlockedBosses)
	assert.Equal(t, []string{"bossKilla"}, cfg.IgnoredBosses["laboratory"])
	assert.True(t, cfg.Debug.VerboseLogging)

	settings := cfg.CalculatorSettings()
	assert.Equal(t, progression.Range{Min: 1, Max: 40}, settings.LevelRange)
	assert.True(t, settings.UseLevel)
	assert.True(t, settings.UseHours)
	assert.Equal(t, 60, settings.DisabledAfterLevel)

	defaults := cfg.ProfileDefaults()
	assert.Equal(t, 5, defaults.Level)
	assert.Equal(t, 2.5, defaults.Hours)

	rules := cfg.Rules()
	assert.True(t, rules.IsBlocked("bossZryachiy"))
	assert.True(t, rules.IsIgnored("laboratory", "bossKilla"))
}

func TestParseModConfig_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		errorMsg string
	}{
		{
			name:     "level range min equals max",
			old:      `"playerLevel": {"min": 1, "max": 40}`,
			new:      `"playerLevel": {"min": 40, "max": 40}`,
			errorMsg: "player level",
		},
		{
			name:     "hours range min equals max",
			old:      `"playerHours": {"min": 0, "max": 100}`,
			new:      `"playerHours": {"min": 0, "max": 0}`,
			errorMsg: "player hours",
		},
		{
			name:     "empty progression table",
			old:      `[[0, 0], [0.5, 0.3], [1, 1]]`,
			new:      `[]`,
			errorMsg: "chance_progression_rate",
		},
		{
			name:     "zero adjustment minimum",
			old:      `"adjustmentRange": {"min": 0.1, "max": 1}`,
			new:      `"adjustmentRange": {"min": 0, "max": 1}`,
			errorMsg: "adjustmentRange",
		},
		{
			name:     "inverted adjustment range",
			old:      `"adjustmentRange": {"min": 0.1, "max": 1}`,
			new:      `"adjustmentRange": {"min": 0.9, "max": 0.2}`,
			errorMsg: "adjustment range",
		},
		{
			name:     "rate drives multiplier negative",
			old:      `[[0, 0], [0.5, 0.3], [1, 1]]`,
			new:      `[[0, -1], [0.5, 0.3], [1, 1]]`,
			errorMsg: "progression rate breakpoint 0",
		},
		{
			name:     "missing enabled flag",
			old:      `"enabled": true,`,
			new:      ``,
			errorMsg: "required",
		},
		{
			name:     "not json",
			old:      `"enabled": true,`,
			new:      `"enabled": true`,
			errorMsg: "parse JSON",
		},
	}

	sv := validation.NewSchemaValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validModConfig, tt.old, tt.new, 1)
			require.NotEqual(t, validModConfig, data, "replacement must apply")

			cfg, err := ParseModConfig([]byte(data), "config.json", sv)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestModConfig_ValidateStructRules(t *testing.T) {
	cfg := &ModConfig{
		ChanceProgressionRate: curve.Table{{X: 0, Y: 1}},
		Thresholds: Thresholds{
			PlayerLevel:     progression.Range{Min: 1, Max: 40},
			PlayerHours:     progression.Range{Min: 0, Max: 100},
			AdjustmentRange: progression.Range{Min: 0.1, Max: 1},
		},
	}
	require.NoError(t, cfg.Validate())

	cfg.IgnoredBosses = map[string][]string{"": {"bossKilla"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "IgnoredBosses")

	cfg.IgnoredBosses = nil
	cfg.Debug.DefaultPlayerHours = -1
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DefaultPlayerHours")
}

func TestLoadModConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(validModConfig), 0644))

	cfg, err := LoadModConfig(path, validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)

	_, err = LoadModConfig(filepath.Join(t.TempDir(), "missing.json"), validation.NewSchemaValidator())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mod config")
}
