package models

import "strings"

// Tool identifies an item a Hunter can carry, e.g. "rope".
type Tool string

const (
	Water   Tool = "water"
	Rope    Tool = "rope"
	Machete Tool = "machete"
	Horse   Tool = "horse"
	Boat    Tool = "boat"
	Boots   Tool = "boots"
	Shovel  Tool = "shovel"
	Sword   Tool = "sword"
)

// ToolInfo is the static metadata kept for every tool.
type ToolInfo struct {
	DisplayName string
	// Breakable tools "break" when lost on a crossing; the others are simply "lost".
	Breakable bool
	// Weapon tools make brawlers give up without a fight.
	Weapon bool
}

var toolInfo = map[Tool]ToolInfo{
	Water:   {DisplayName: "Water"},
	Rope:    {DisplayName: "Rope"},
	Machete: {DisplayName: "Machete", Breakable: true},
	Horse:   {DisplayName: "Horse"},
	Boat:    {DisplayName: "Boat", Breakable: true},
	Boots:   {DisplayName: "Boots", Breakable: true},
	Shovel:  {DisplayName: "Shovel", Breakable: true},
	Sword:   {DisplayName: "Sword", Breakable: true, Weapon: true},
}

// Info returns the tool's metadata. Unknown tools get their identifier as a
// display name and no flags.
func (t Tool) Info() ToolInfo {
	if info, ok := toolInfo[t]; ok {
		return info
	}
	return ToolInfo{DisplayName: string(t)}
}

func (t Tool) String() string {
	return t.Info().DisplayName
}

// ParseTool normalises player input into a Tool identifier.
func ParseTool(s string) Tool {
	return Tool(strings.ToLower(strings.TrimSpace(s)))
}

// CrossingTools lists the tools that carry a Hunter across some terrain.
func CrossingTools() []Tool {
	return []Tool{Water, Rope, Machete, Horse, Boat, Boots}
}

// Treasure is the prize hidden in a town.
type Treasure string

const (
	Crown  Treasure = "crown"
	Trophy Treasure = "trophy"
	Gem    Treasure = "gem"
	// Dust is the booby prize; it can never be claimed.
	Dust Treasure = "dust"
)

// Treasures lists every kind a town can roll, in roll order.
func Treasures() []Treasure {
	return []Treasure{Crown, Trophy, Gem, Dust}
}

// Prizes lists the treasures worth collecting.
func Prizes() []Treasure {
	return []Treasure{Crown, Trophy, Gem}
}
