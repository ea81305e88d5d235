package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/creatures/internal/creature"
)

const contractID = "Creature"

// contractMethods mirrors the exported surface of creature.Creature.
var contractMethods = []string{
	"Name() string",
	"Habitat() string",
	"Kind() Kind",
	"Describe() string",
	"Move() string",
}

// Options controls Mermaid diagram generation.
type Options struct {
	IncludeInit bool // include %%{init:}%% directive (for standalone .mmd files)
	ShowMoves   bool // list each variant's movement text inside its box
}

// DefaultOptions returns sensible defaults for diagram generation.
func DefaultOptions() Options {
	return Options{ShowMoves: true}
}

// variantNames maps a kind to the Go type implementing it.
var variantNames = map[creature.Kind]string{
	creature.Flyer:     "Bird",
	creature.Swimmer:   "Fish",
	creature.Slitherer: "Snake",
	creature.Hopper:    "Kangaroo",
}

// GenerateMermaid produces a Mermaid classDiagram of the Creature contract
// and the variants for kinds. Invalid kinds are skipped.
func GenerateMermaid(kinds []creature.Kind, opts Options) string {
	var b strings.Builder

	// Sort variants deterministically by type name, dropping duplicates.
	seen := make(map[creature.Kind]bool)
	var valid []creature.Kind
	for _, k := range kinds {
		if !k.Valid() || seen[k] {
			continue
		}
		seen[k] = true
		valid = append(valid, k)
	}
	sort.Slice(valid, func(i, j int) bool {
		return variantNames[valid[i]] < variantNames[valid[j]]
	})

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram\n")
	b.WriteString("    direction LR\n")
	b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
	b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px\n")

	b.WriteString("\n")
	writeContractBlock(&b)

	if len(valid) > 0 {
		b.WriteString("\n")
	}
	for _, k := range valid {
		b.WriteString("\n")
		writeVariantBlock(&b, k, opts)
	}

	if len(valid) > 0 {
		b.WriteString("\n")
	}
	for _, k := range valid {
		b.WriteString(fmt.Sprintf("\n    %s --|> %s", variantNames[k], contractID))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" interfaceStyle", contractID))
	for _, k := range valid {
		b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" implStyle", variantNames[k]))
	}

	return b.String()
}

func writeContractBlock(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("    class %s {\n", contractID))
	b.WriteString("        <<interface>>\n")
	for _, m := range contractMethods {
		b.WriteString(fmt.Sprintf("        +%s\n", m))
	}
	b.WriteString("    }")
}

// writeVariantBlock writes a class block for one variant. Methods are
// omitted because the contract block already lists them.
func writeVariantBlock(b *strings.Builder, k creature.Kind, opts Options) {
	b.WriteString(fmt.Sprintf("    class %s {\n", variantNames[k]))
	b.WriteString(fmt.Sprintf("        %%%% kind: %s, category: %s\n", k, k.Category()))
	if opts.ShowMoves {
		b.WriteString(fmt.Sprintf("        +move %s\n", SanitizeLabel(creature.Plain(k.MoveText()))))
	}
	b.WriteString("    }")
}

// SanitizeLabel removes characters that break Mermaid class labels.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeLabel(s string) string {
	r := strings.NewReplacer("{", "", "}", "", "<", "", ">", "", "~", "", "!", "")
	return r.Replace(s)
}
