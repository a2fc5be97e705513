package models

import "github.com/tatianab/treasure-hunter/internal/chance"

// TerrainKind names the land surrounding a town.
type TerrainKind string

const (
	Mountains TerrainKind = "Mountains"
	Ocean     TerrainKind = "Ocean"
	Plains    TerrainKind = "Plains"
	Desert    TerrainKind = "Desert"
	Jungle    TerrainKind = "Jungle"
	Marsh     TerrainKind = "Marsh"
)

// TerrainKinds lists every kind in roll order.
func TerrainKinds() []TerrainKind {
	return []TerrainKind{Mountains, Ocean, Plains, Desert, Jungle, Marsh}
}

var crossingTool = map[TerrainKind]Tool{
	Mountains: Rope,
	Ocean:     Boat,
	Plains:    Horse,
	Desert:    Water,
	Jungle:    Machete,
	Marsh:     Boots,
}

// Terrain is the obstacle between a town and the next one.
type Terrain struct {
	Kind  TerrainKind
	Needs Tool
}

// TerrainOf returns the terrain of the given kind with its crossing tool.
func TerrainOf(kind TerrainKind) Terrain {
	return Terrain{Kind: kind, Needs: crossingTool[kind]}
}

// NewTerrain rolls a number in [1,12] and gives each kind a band of two.
func NewTerrain(src chance.Source) Terrain {
	roll := chance.Between(src, 1, 12)
	return TerrainOf(TerrainKinds()[(roll-1)/2])
}

// CanCross reports whether h carries the tool this terrain needs.
func (t Terrain) CanCross(h *Hunter) bool {
	return h.HasItemInKit(t.Needs)
}

func (t Terrain) String() string {
	return string(t.Kind)
}
