package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/LiveLikeSpawns_Go/internal/locale"
	"github.com/osse101/LiveLikeSpawns_Go/internal/profile"
	"github.com/osse101/LiveLikeSpawns_Go/internal/spawn"
)

// LoadWorld reads the location tables at path
func LoadWorld(path string) (*spawn.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDataFile, path, err)
	}
	defer f.Close()

	world, err := spawn.DecodeWorld(f)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgWorldLoaded, "path", path, "locations", len(world.Locations))
	return world, nil
}

// LoadProfiles reads the session profiles at path
func LoadProfiles(path string) (*profile.MemorySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDataFile, path, err)
	}
	defer f.Close()

	source, err := profile.DecodeMemorySource(f)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgProfilesLoaded, "path", path)
	return source, nil
}

// LoadNames reads the locale tables at path and resolves names in the locale closest to preferred
func LoadNames(path, preferred string) (*locale.Resolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDataFile, path, err)
	}
	defer f.Close()

	db, err := locale.DecodeDatabase(f)
	if err != nil {
		return nil, err
	}

	resolver, err := locale.NewResolver(db, preferred)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgLocalesLoaded, "path", path, "locale", resolver.Locale().String())
	return resolver, nil
}
