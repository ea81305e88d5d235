package roster

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/olehluchkiv/creatures/internal/creature"
)

// ErrEmptyRoster is returned when a roster file defines no creatures.
var ErrEmptyRoster = errors.New("roster has no creatures")

// Entry is one creature to construct for the demonstration.
type Entry struct {
	Kind    string `toml:"kind"`
	Name    string `toml:"name"`
	Habitat string `toml:"habitat"`
}

type file struct {
	Creatures []Entry `toml:"creature"`
}

// Default returns the built-in demonstration roster.
func Default() []Entry {
	return []Entry{
		{Kind: creature.Flyer.String(), Name: "Eagle", Habitat: "mountains"},
		{Kind: creature.Swimmer.String(), Name: "Clownfish", Habitat: "coral reefs"},
		{Kind: creature.Slitherer.String(), Name: "Python", Habitat: "jungles"},
		{Kind: creature.Hopper.String(), Name: "Red Kangaroo", Habitat: "Australian outback"},
	}
}

// Load reads a TOML roster made of [[creature]] tables.
func Load(path string) ([]Entry, error) {
	var raw file
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("roster load failed (%s): %w", path, err)
	}
	if len(raw.Creatures) == 0 {
		return nil, fmt.Errorf("roster load failed (%s): %w", path, ErrEmptyRoster)
	}
	for i, e := range raw.Creatures {
		if _, err := creature.ParseKind(e.Kind); err != nil {
			return nil, fmt.Errorf("roster entry[%d] invalid: %w", i, err)
		}
	}
	return raw.Creatures, nil
}

// Build constructs creatures in roster order.
func Build(entries []Entry) ([]creature.Creature, error) {
	out := make([]creature.Creature, 0, len(entries))
	for i, e := range entries {
		k, err := creature.ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("roster entry[%d] invalid: %w", i, err)
		}
		c, err := creature.New(k, e.Name, e.Habitat)
		if err != nil {
			return nil, fmt.Errorf("roster entry[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
