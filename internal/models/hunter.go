package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// StartingGold is the purse every Hunter sets out with.
const StartingGold = 10

var (
	ErrInsufficientGold = errors.New("not enough gold")
	ErrNotOwned         = errors.New("item not in kit")
)

// Hunter is the player. One Hunter lives for the whole session and is
// shared by every town it visits. It is not safe for concurrent use.
type Hunter struct {
	name      string
	gold      int
	kit       map[Tool]int
	treasures []Treasure
}

// NewHunter returns a Hunter with the given purse and nothing else.
func NewHunter(name string, gold int) *Hunter {
	return &Hunter{
		name: name,
		gold: gold,
		kit:  make(map[Tool]int),
	}
}

func (h *Hunter) Name() string { return h.name }
func (h *Hunter) Gold() int    { return h.gold }

// ChangeGold adds delta to the purse. The purse may go negative; callers
// check Bankrupt afterwards.
func (h *Hunter) ChangeGold(delta int) {
	h.gold += delta
}

// Bankrupt reports whether the Hunter is out of gold.
func (h *Hunter) Bankrupt() bool {
	return h.gold <= 0
}

// BuyItem pays price for one more tool.
func (h *Hunter) BuyItem(tool Tool, price int) error {
	if h.gold < price {
		return fmt.Errorf("%w: %s costs %d, you have %d", ErrInsufficientGold, tool, price, h.gold)
	}
	h.gold -= price
	h.kit[tool]++
	return nil
}

// SellItem gives up one tool for price.
func (h *Hunter) SellItem(tool Tool, price int) error {
	if !h.RemoveItemFromKit(tool) {
		return fmt.Errorf("%w: %s", ErrNotOwned, tool)
	}
	h.gold += price
	return nil
}

// GiveItem adds one tool at no cost.
func (h *Hunter) GiveItem(tool Tool) {
	h.kit[tool]++
}

func (h *Hunter) HasItemInKit(tool Tool) bool {
	return h.kit[tool] > 0
}

// RemoveItemFromKit drops one tool and reports whether there was one.
func (h *Hunter) RemoveItemFromKit(tool Tool) bool {
	n := h.kit[tool]
	if n == 0 {
		return false
	}
	if n == 1 {
		delete(h.kit, tool)
	} else {
		h.kit[tool] = n - 1
	}
	return true
}

// HasWeapon reports whether the kit holds any weapon.
func (h *Hunter) HasWeapon() bool {
	for tool := range h.kit {
		if tool.Info().Weapon {
			return true
		}
	}
	return false
}

// Kit returns the tools held, one entry per unit, sorted by name.
func (h *Hunter) Kit() []Tool {
	var tools []Tool
	for tool, n := range h.kit {
		for i := 0; i < n; i++ {
			tools = append(tools, tool)
		}
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i] < tools[j] })
	return tools
}

// AddTreasureToList records a treasure kind. Each kind can be claimed once
// per game; a repeat returns false and changes nothing.
func (h *Hunter) AddTreasureToList(t Treasure) bool {
	if h.HasTreasure(t) {
		return false
	}
	h.treasures = append(h.treasures, t)
	return true
}

func (h *Hunter) HasTreasure(t Treasure) bool {
	for _, have := range h.treasures {
		if have == t {
			return true
		}
	}
	return false
}

// Treasures returns the collected treasures in the order they were found.
func (h *Hunter) Treasures() []Treasure {
	return append([]Treasure(nil), h.treasures...)
}

// HasAllPrizes reports whether every prize kind has been collected.
func (h *Hunter) HasAllPrizes() bool {
	for _, p := range Prizes() {
		if !h.HasTreasure(p) {
			return false
		}
	}
	return true
}

func (h *Hunter) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d gold", h.name, h.gold)

	kit := h.Kit()
	if len(kit) == 0 {
		b.WriteString(" and nothing in their kit")
	} else {
		names := make([]string, len(kit))
		for i, tool := range kit {
			names[i] = string(tool)
		}
		fmt.Fprintf(&b, " and a kit of %s", strings.Join(names, ", "))
	}
	b.WriteString(".")

	if len(h.treasures) > 0 {
		names := make([]string, len(h.treasures))
		for i, t := range h.treasures {
			names[i] = string(t)
		}
		fmt.Fprintf(&b, " Treasures found: %s.", strings.Join(names, ", "))
	}
	return b.String()
}
