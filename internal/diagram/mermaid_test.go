package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olehluchkiv/creatures/internal/creature"
)

func TestGenerateMermaid_AllKinds(t *testing.T) {
	out := GenerateMermaid(creature.Kinds(), DefaultOptions())

	assert.True(t, strings.HasPrefix(out, "classDiagram\n"))
	assert.Contains(t, out, "    class Creature {\n        <<interface>>\n")
	assert.Contains(t, out, "        +Describe() string\n")
	for _, name := range []string{"Bird", "Fish", "Snake", "Kangaroo"} {
		assert.Contains(t, out, "    class "+name+" {\n")
		assert.Contains(t, out, "    "+name+" --|> Creature")
		assert.Contains(t, out, `cssClass "`+name+`" implStyle`)
	}
	assert.Contains(t, out, "        +move Flying through the air with wings\n")
	assert.Contains(t, out, "        %% kind: hopper, category: marsupial\n")
}

func TestGenerateMermaid_DeterministicOrder(t *testing.T) {
	a := GenerateMermaid([]creature.Kind{creature.Hopper, creature.Flyer}, DefaultOptions())
	b := GenerateMermaid([]creature.Kind{creature.Flyer, creature.Hopper, creature.Flyer}, DefaultOptions())
	assert.Equal(t, a, b)
	assert.Less(t, strings.Index(a, "class Bird"), strings.Index(a, "class Kangaroo"))
}

func TestGenerateMermaid_SkipsInvalidKinds(t *testing.T) {
	out := GenerateMermaid([]creature.Kind{creature.Kind(0), creature.Swimmer}, DefaultOptions())
	assert.Contains(t, out, "class Fish")
	assert.Equal(t, 1, strings.Count(out, "--|>"))
}

func TestGenerateMermaid_ContractOnly(t *testing.T) {
	out := GenerateMermaid(nil, DefaultOptions())
	assert.Contains(t, out, "class Creature")
	assert.NotContains(t, out, "--|>")
}

func TestGenerateMermaid_Options(t *testing.T) {
	out := GenerateMermaid(creature.Kinds(), Options{IncludeInit: true})
	assert.True(t, strings.HasPrefix(out, "%%{init:"))
	assert.NotContains(t, out, "+move")
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "map[string]struct", SanitizeLabel("map[string]struct{}"))
	assert.Equal(t, "Hopping", SanitizeLabel("Hopping!"))
}
