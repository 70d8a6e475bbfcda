package spawn

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld() []*Location {
	return []*Location{
		{
			Name: "bigmap",
			Spawns: []*Record{
				{Boss: "bossKojaniy", Chance: 80},
				{Boss: "bossKnight", Chance: 50},
				{Boss: "sectantPriest", Chance: 20},
			},
		},
		{
			Name: "factory4_day",
			Spawns: []*Record{
				{Boss: "bossTagilla", Chance: 100},
				{Boss: "bossKnight", Chance: 30},
			},
		},
		{Name: "hideout"},
		nil,
	}
}

func chances(locations []*Location) map[string]int {
	out := make(map[string]int)
	for _, loc := range locations {
		if loc == nil {
			continue
		}
		for _, r := range loc.Spawns {
			out[loc.Name+"/"+r.Boss] = r.Chance
		}
	}
	return out
}

func TestScaleChance(t *testing.T) {
	tests := []struct {
		name     string
		chance   int
		relative float64
		expected int
	}{
		{name: "scales down", chance: 80, relative: 0.24, expected: 19},
		{name: "halves round up", chance: 75, relative: 0.5, expected: 38},
		{name: "clamped to max", chance: 80, relative: 2, expected: 100},
		{name: "neutral keeps chance", chance: 37, relative: 1, expected: 37},
		{name: "tiny multiplier rounds to zero", chance: 10, relative: 0.01, expected: 0},
		{name: "huge multiplier does not overflow", chance: 1, relative: 1e300, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScaleChance(tt.chance, tt.relative))
		})
	}
}

func TestScaleChance_AlwaysWithinBounds(t *testing.T) {
	relatives := []float64{0.01, 0.24, 0.5, 0.999, 1, 1.6, 3, 1e6}

	for chance := MinChance; chance <= MaxChance; chance++ {
		for _, rel := range relatives {
			got := ScaleChance(chance, rel)
			assert.GreaterOrEqual(t, got, MinChance)
			assert.LessOrEqual(t, got, MaxChance)
		}
	}
}

func TestAdjustLocations_NotifiesOnlyChanges(t *testing.T) {
	locations := []*Location{{
		Name: "bigmap",
		Spawns: []*Record{
			{Boss: "bossKojaniy", Chance: 80},
			{Boss: "bossZryachiy", Chance: 0},
		},
	}}

	var changes []Change
	changed := AdjustLocations(locations, 0.5, NewRules(nil, nil), func(c Change) {
		changes = append(changes, c)
	})

	assert.Equal(t, 1, changed)
	require.Len(t, changes, 1)
	assert.Equal(t, Change{Location: "bigmap", Boss: "bossKojaniy", From: 80, To: 40}, changes[0])
}

func TestAdjustLocations_BlockedBossesAlwaysZero(t *testing.T) {
	rules := NewRules([]string{"bossKnight"}, nil)

	for _, relative := range []float64{0.1, 1, 2.5} {
		locations := newWorld()
		AdjustLocations(locations, relative, rules, nil)

		got := chances(locations)
		assert.Equal(t, 0, got["bigmap/bossKnight"], "relative %v", relative)
		assert.Equal(t, 0, got["factory4_day/bossKnight"], "relative %v", relative)
	}
}

func TestAdjustLocations_IgnoredBossesUntouched(t *testing.T) {
	rules := NewRules([]string{"bossKnight"}, map[string][]string{
		"factory4_day": {"bossTagilla", "bossKnight"},
	})

	locations := newWorld()
	AdjustLocations(locations, 0.5, rules, nil)

	got := chances(locations)
	assert.Equal(t, 100, got["factory4_day/bossTagilla"])
	assert.Equal(t, 30, got["factory4_day/bossKnight"], "ignore wins over block on its location")
	assert.Equal(t, 0, got["bigmap/bossKnight"], "ignore is per location")
	assert.Equal(t, 40, got["bigmap/bossKojaniy"])
}

func TestAdjustLocations_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, AdjustLocations(nil, 0.5, NewRules(nil, nil), nil))
	assert.Equal(t, 0, AdjustLocations([]*Location{nil, {Name: "laboratory"}}, 0.5, NewRules(nil, nil), nil))
	assert.Equal(t, 0, AdjustLocations([]*Location{{Name: "woods", Spawns: []*Record{nil}}}, 0.5, NewRules(nil, nil), nil))
}

func TestApply_ReturnsNewMultiplier(t *testing.T) {
	locations := newWorld()
	last := Apply(locations, 0.24, NeutralMultiplier, NewRules(nil, nil), nil)

	assert.Equal(t, 0.24, last)
	assert.Equal(t, 19, chances(locations)["bigmap/bossKojaniy"])
}

func TestState_MatchesApply(t *testing.T) {
	rules := NewRules([]string{"bossZryachiy"}, nil)

	viaApply := newWorld()
	last := Apply(viaApply, 0.5, NeutralMultiplier, rules, nil)
	Apply(viaApply, 0.8, last, rules, nil)

	viaState := newWorld()
	state := NewState()
	state.Apply(viaState, 0.5, rules, nil)
	out := state.Apply(viaState, 0.8, rules, nil)

	assert.Equal(t, chances(viaApply), chances(viaState))
	assert.InDelta(t, 1.6, out.Relative, 1e-12)
}

func TestState_RepeatedMultiplierIsIdempotent(t *testing.T) {
	state := NewState()
	locations := newWorld()
	rules := NewRules(nil, nil)

	first := state.Apply(locations, 0.5, rules, nil)
	afterFirst := chances(locations)

	second := state.Apply(locations, 0.5, rules, nil)

	assert.Equal(t, 1.0, first.Previous)
	assert.Equal(t, 0.5, first.Relative)
	assert.Positive(t, first.Changed)
	assert.Equal(t, 1.0, second.Relative)
	assert.Zero(t, second.Changed)
	assert.Equal(t, afterFirst, chances(locations))
	assert.Equal(t, 0.5, state.Last())
}

func TestState_RescalesInsteadOfCompounding(t *testing.T) {
	rules := NewRules(nil, nil)

	stepped := newWorld()
	state := NewState()
	state.Apply(stepped, 0.5, rules, nil)
	state.Apply(stepped, 0.8, rules, nil)

	direct := newWorld()
	NewState().Apply(direct, 0.8, rules, nil)

	assert.Equal(t, chances(direct), chances(stepped))
	assert.Equal(t, 0.8, state.Last())
}

func TestState_ConcurrentApplyDoesNotCompound(t *testing.T) {
	state := NewState()
	locations := newWorld()
	rules := NewRules(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.Apply(locations, 0.5, rules, nil)
		}()
	}
	wg.Wait()

	expected := newWorld()
	AdjustLocations(expected, 0.5, rules, nil)

	assert.Equal(t, chances(expected), chances(locations))
	assert.Equal(t, 0.5, state.Last())
}

func TestDecodeWorld(t *testing.T) {
	data := `{
		"locations": {
			"woods": {"base": {"Name": "Woods", "BossLocationSpawn": [{"BossName": "bossKojaniy", "BossChance": 45}]}},
			"base": {},
			"bigmap": {"base": {"Name": "bigmap", "BossLocationSpawn": [{"BossName": "bossBully", "BossChance": 35}]}}
		}
	}`

	world, err := DecodeWorld(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, world.Locations, 2)
	assert.Equal(t, "bigmap", world.Locations[0].Name)
	assert.Equal(t, "Woods", world.Locations[1].Name)

	chance, ok := world.Chance("Woods", "bossKojaniy")
	assert.True(t, ok)
	assert.Equal(t, 45, chance)

	_, ok = world.Chance("Woods", "bossTagilla")
	assert.False(t, ok)

	_, err = DecodeWorld(strings.NewReader(`{"locations": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode world data")
}
