package creature

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind outside the closed set is requested.
var ErrUnknownKind = errors.New("unknown creature kind")

// Creature is the capability contract shared by every variant.
// The unexported sealed method keeps the set of implementations closed
// to this package.
type Creature interface {
	Name() string
	Habitat() string
	Kind() Kind
	Describe() string
	Move() string
	sealed()
}

// base holds the attributes common to all variants. Fields are unexported
// so they cannot change after construction.
type base struct {
	name    string
	habitat string
}

func (b base) Name() string    { return b.name }
func (b base) Habitat() string { return b.habitat }
func (b base) sealed()         {}

// baseDescription is the sentence every variant's Describe starts with.
func baseDescription(name, habitat string) string {
	return fmt.Sprintf("A %s that lives in %s.", name, habitat)
}

func describe(b base, k Kind) string {
	return baseDescription(b.name, b.habitat) + " " + behaviours[k].suffix
}

// Bird flies.
type Bird struct{ base }

func NewBird(name, habitat string) *Bird { return &Bird{base{name, habitat}} }

func (b *Bird) Kind() Kind       { return Flyer }
func (b *Bird) Describe() string { return describe(b.base, Flyer) }
func (b *Bird) Move() string     { return behaviours[Flyer].move }

// Fish swims.
type Fish struct{ base }

func NewFish(name, habitat string) *Fish { return &Fish{base{name, habitat}} }

func (f *Fish) Kind() Kind       { return Swimmer }
func (f *Fish) Describe() string { return describe(f.base, Swimmer) }
func (f *Fish) Move() string     { return behaviours[Swimmer].move }

// Snake slithers.
type Snake struct{ base }

func NewSnake(name, habitat string) *Snake { return &Snake{base{name, habitat}} }

func (s *Snake) Kind() Kind       { return Slitherer }
func (s *Snake) Describe() string { return describe(s.base, Slitherer) }
func (s *Snake) Move() string     { return behaviours[Slitherer].move }

// Kangaroo hops.
type Kangaroo struct{ base }

func NewKangaroo(name, habitat string) *Kangaroo { return &Kangaroo{base{name, habitat}} }

func (k *Kangaroo) Kind() Kind       { return Hopper }
func (k *Kangaroo) Describe() string { return describe(k.base, Hopper) }
func (k *Kangaroo) Move() string     { return behaviours[Hopper].move }

// New builds the variant for kind. Name and habitat are taken as given,
// empty strings included.
func New(kind Kind, name, habitat string) (Creature, error) {
	switch kind {
	case Flyer:
		return NewBird(name, habitat), nil
	case Swimmer:
		return NewFish(name, habitat), nil
	case Slitherer:
		return NewSnake(name, habitat), nil
	case Hopper:
		return NewKangaroo(name, habitat), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Plain strips the leading symbol from a movement text, keeping the wording.
func Plain(move string) string {
	if i := strings.IndexByte(move, ' '); i >= 0 {
		head := move[:i]
		for _, r := range head {
			if r < 0x80 {
				return move
			}
		}
		return move[i+1:]
	}
	return move
}
