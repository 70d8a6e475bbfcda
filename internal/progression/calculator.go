package progression

import (
	"fmt"
	"math"

	"github.com/osse101/LiveLikeSpawns_Go/internal/curve"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// Settings configures how player metrics become an adjustment multiplier
type Settings struct {
	LevelRange Range
	HoursRange Range
	Rate       curve.Table
	Output     Range

	UseLevel bool
	UseHours bool

	// DisabledAfterLevel stops all metric factors from level DisabledAfterLevel onwards
	DisabledAfterLevel int
}

// FactorResult is the factor computed for one metric
type FactorResult struct {
	Metric Metric
	Value  float64
	Factor float64
}

// Result is the outcome of one multiplier calculation
type Result struct {
	Factors    []FactorResult
	Capped     bool // level was at or past DisabledAfterLevel
	Multiplier float64
}

// Calculator maps player metrics to an adjustment multiplier
type Calculator struct {
	settings Settings
}

// NewCalculator validates settings and creates a Calculator
func NewCalculator(settings Settings) (*Calculator, error) {
	if err := settings.Rate.Validate(); err != nil {
		return nil, err
	}
	if err := settings.LevelRange.Validate(); err != nil {
		return nil, fmt.Errorf("player level %w", err)
	}
	if err := settings.HoursRange.Validate(); err != nil {
		return nil, fmt.Errorf("player hours %w", err)
	}
	if settings.Output.Min <= 0 || settings.Output.Max < settings.Output.Min {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidOutputRange, domain.ErrInvalidConfig, settings.Output.Min, settings.Output.Max)
	}

	// Factors stay within the table's y span, so positive breakpoints keep every multiplier positive
	for i, p := range settings.Rate {
		m := Aggregate([]float64{p.Y}, settings.Output)
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			return nil, fmt.Errorf("%w: "+ErrMsgNonPositiveRate, domain.ErrInvalidConfig, i, p.Y, m)
		}
	}

	return &Calculator{settings: settings}, nil
}

// Settings returns the settings the calculator was built with
func (c *Calculator) Settings() Settings {
	return c.settings
}

// Calculate computes the factor of every enabled metric and the resulting multiplier
func (c *Calculator) Calculate(metrics domain.PlayerMetrics) Result {
	var result Result

	if metrics.Level >= c.settings.DisabledAfterLevel {
		result.Capped = true
	} else {
		if c.settings.UseLevel {
			result.Factors = append(result.Factors, c.factor(MetricPlayerLevel, c.settings.LevelRange, float64(metrics.Level)))
		}
		if c.settings.UseHours {
			result.Factors = append(result.Factors, c.factor(MetricPlayerHours, c.settings.HoursRange, metrics.Hours))
		}
	}

	factors := make([]float64, 0, len(result.Factors))
	for _, f := range result.Factors {
		factors = append(factors, f.Factor)
	}
	result.Multiplier = Aggregate(factors, c.settings.Output)

	return result
}

func (c *Calculator) factor(metric Metric, r Range, value float64) FactorResult {
	return FactorResult{
		Metric: metric,
		Value:  value,
		Factor: Factor(r, c.settings.Rate, value),
	}
}
