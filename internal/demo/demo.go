package demo

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/creatures/internal/creature"
)

// Options controls demonstration output.
type Options struct {
	Plain bool // drop movement symbols
}

// Run writes, for each creature in order, a blank line, its description
// and its movement.
func Run(w io.Writer, creatures []creature.Creature, opts Options) error {
	for _, c := range creatures {
		move := c.Move()
		if opts.Plain {
			move = creature.Plain(move)
		}
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", c.Describe(), move); err != nil {
			return fmt.Errorf("writing %q: %w", c.Name(), err)
		}
	}
	return nil
}
