package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWorld(t *testing.T) {
	path := writeFile(t, "locations.json", `{"locations": {"bigmap": {"base": {"Name": "bigmap", "BossLocationSpawn": [{"BossName": "bossKojaniy", "BossChance": 35}]}}}}`)

	world, err := LoadWorld(path)
	require.NoError(t, err)
	chance, ok := world.Chance("bigmap", "bossKojaniy")
	assert.True(t, ok)
	assert.Equal(t, 35, chance)

	_, err = LoadWorld(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestLoadProfiles(t *testing.T) {
	path := writeFile(t, "profiles.json", `{"session-1": {"pmc": {"_id": "pmc1", "Info": {"Level": 12}}}}`)

	source, err := LoadProfiles(path)
	require.NoError(t, err)

	pmc, err := source.PMCProfile(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 12, pmc.Level())
}

func TestLoadNames(t *testing.T) {
	path := writeFile(t, "locales.json", `{
		"locales": {"en": {"bossKojaniy Nickname": "Shturman"}, "de": {"bossKojaniy Nickname": "Schturman"}},
		"templates": {}
	}`)

	names, err := LoadNames(path, "de-AT")
	require.NoError(t, err)
	assert.Equal(t, "Schturman", names.BossName("bossKojaniy"))
	assert.Equal(t, "bossTagilla", names.BossName("bossTagilla"))
}
