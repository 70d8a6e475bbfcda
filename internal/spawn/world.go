package spawn

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// World is the set of locations whose spawn chances are adjusted
type World struct {
	Locations []*Location
}

type locationEntry struct {
	Base *Location `json:"base,omitempty"`
}

type worldFile struct {
	Locations map[string]locationEntry `json:"locations"`
}

// DecodeWorld reads location tables keyed by location id.
// Entries without a base are skipped. Locations are ordered by id so adjustments and
// their log lines are deterministic.
func DecodeWorld(r io.Reader) (*World, error) {
	var file worldFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeWorld, err)
	}

	ids := make([]string, 0, len(file.Locations))
	for id := range file.Locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	world := &World{Locations: make([]*Location, 0, len(ids))}
	for _, id := range ids {
		if base := file.Locations[id].Base; base != nil {
			world.Locations = append(world.Locations, base)
		}
	}

	return world, nil
}

// Chance returns the current chance of boss on location, if present
func (w *World) Chance(location, boss string) (int, bool) {
	for _, loc := range w.Locations {
		if loc.Name != location {
			continue
		}
		for _, record := range loc.Spawns {
			if record != nil && record.Boss == boss {
				return record.Chance, true
			}
		}
	}
	return 0, false
}
