package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/treasure-hunter/internal/models"
)

//go:embed data/narratives.yaml
var narrativesYAML []byte

// Narrator describes how a Hunter found a treasure.
type Narrator interface {
	Describe(ctx context.Context, treasure models.Treasure, terrain models.TerrainKind) string
}

// TableNarrator serves fixed text for each treasure and terrain pair.
type TableNarrator struct {
	table    map[models.Treasure]map[models.TerrainKind]string
	fallback *template.Template
}

// NewTableNarrator loads the built-in narrative table.
func NewTableNarrator() (*TableNarrator, error) {
	var data struct {
		Fallback  string                                            `yaml:"fallback"`
		Treasures map[models.Treasure]map[models.TerrainKind]string `yaml:"treasures"`
	}
	if err := yaml.Unmarshal(narrativesYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse narratives: %w", err)
	}
	tmpl, err := template.New("fallback").Parse(data.Fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback narrative: %w", err)
	}
	return &TableNarrator{table: data.Treasures, fallback: tmpl}, nil
}

// Lookup returns the fixed text for a pair, if there is one.
func (n *TableNarrator) Lookup(treasure models.Treasure, terrain models.TerrainKind) (string, bool) {
	text, ok := n.table[treasure][terrain]
	return text, ok && text != ""
}

func (n *TableNarrator) Describe(_ context.Context, treasure models.Treasure, terrain models.TerrainKind) string {
	if text, ok := n.Lookup(treasure, terrain); ok {
		return text
	}
	var buf bytes.Buffer
	if err := n.fallback.Execute(&buf, struct {
		Treasure models.Treasure
		Terrain  models.TerrainKind
	}{treasure, terrain}); err != nil {
		return fmt.Sprintf("You found the %s!", treasure)
	}
	return buf.String()
}
