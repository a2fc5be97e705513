package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/treasure-hunter/internal/models"
)

func TestTableNarrator_CoversEveryPrize(t *testing.T) {
	n, err := NewTableNarrator()
	require.NoError(t, err)

	for _, prize := range models.Prizes() {
		for _, kind := range models.TerrainKinds() {
			text, ok := n.Lookup(prize, kind)
			assert.True(t, ok, "no text for %s in %s", prize, kind)
			assert.NotEmpty(t, text)
		}
	}
}

func TestTableNarrator_Fallback(t *testing.T) {
	n, err := NewTableNarrator()
	require.NoError(t, err)

	_, ok := n.Lookup(models.Dust, models.Ocean)
	require.False(t, ok)

	text := n.Describe(context.Background(), models.Dust, models.Ocean)
	assert.Contains(t, text, "dust")
	assert.Contains(t, text, "Ocean")

	text = n.Describe(context.Background(), models.Crown, models.TerrainKind("Tundra"))
	assert.Contains(t, text, "crown")
	assert.Contains(t, text, "Tundra")
}

func TestTableNarrator_Describe(t *testing.T) {
	n, err := NewTableNarrator()
	require.NoError(t, err)

	text := n.Describe(context.Background(), models.Crown, models.Mountains)
	assert.Equal(t, "You found a crown at the peak of the tallest mountain! Who could've left this here..?", text)
}
