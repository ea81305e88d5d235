package creature

import (
	"fmt"
	"strings"
)

// Kind tags a creature variant. The zero value is not a valid kind.
type Kind int

const (
	Flyer Kind = iota + 1
	Swimmer
	Slitherer
	Hopper
)

type behaviour struct {
	name     string
	category string
	move     string
	suffix   string
}

var behaviours = map[Kind]behaviour{
	Flyer: {
		name:     "flyer",
		category: "bird",
		move:     "🦅 Flying through the air with wings!",
		suffix:   "It's a bird that can fly.",
	},
	Swimmer: {
		name:     "swimmer",
		category: "fish",
		move:     "🐠 Swimming gracefully through the water!",
		suffix:   "It's a fish that can swim.",
	},
	Slitherer: {
		name:     "slitherer",
		category: "snake",
		move:     "🐍 Slithering smoothly across surfaces!",
		suffix:   "It's a snake that can slither.",
	},
	Hopper: {
		name:     "hopper",
		category: "marsupial",
		move:     "🦘 Hopping powerfully with strong hind legs!",
		suffix:   "It's a marsupial that can hop.",
	},
}

// Kinds returns the closed set of kinds in table order.
func Kinds() []Kind {
	return []Kind{Flyer, Swimmer, Slitherer, Hopper}
}

func (k Kind) String() string {
	if b, ok := behaviours[k]; ok {
		return b.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Category is the animal family word used in descriptions ("bird", "fish"...).
func (k Kind) Category() string {
	return behaviours[k].category
}

// MoveText is the fixed movement text for k, or "" for an invalid kind.
func (k Kind) MoveText() string {
	return behaviours[k].move
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool {
	_, ok := behaviours[k]
	return ok
}

// ParseKind accepts a variant name or its category word, case-insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		b := behaviours[k]
		if s == b.name || s == b.category {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: flyer, swimmer, slitherer, hopper)", ErrUnknownKind, s)
}
