package models

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/tatianab/treasure-hunter/internal/chance"
)

func TestNewTerrainBands(t *testing.T) {
	want := []TerrainKind{
		Mountains, Mountains,
		Ocean, Ocean,
		Plains, Plains,
		Desert, Desert,
		Jungle, Jungle,
		Marsh, Marsh,
	}
	for i, kind := range want {
		terrain := NewTerrain(chance.NewScripted([]int{i}, nil))
		if terrain.Kind != kind {
			t.Errorf("roll %d: expected %s, got %s", i+1, kind, terrain.Kind)
		}
		if terrain.Needs != crossingTool[kind] {
			t.Errorf("roll %d: expected tool %s, got %s", i+1, crossingTool[kind], terrain.Needs)
		}
	}
}

func TestEveryTerrainNeedsACrossingTool(t *testing.T) {
	tools := map[Tool]bool{}
	for _, tool := range CrossingTools() {
		tools[tool] = true
	}
	for _, kind := range TerrainKinds() {
		terrain := TerrainOf(kind)
		if !tools[terrain.Needs] {
			t.Errorf("%s needs %q, which is not a crossing tool", kind, terrain.Needs)
		}
		delete(tools, terrain.Needs)
	}
	if len(tools) != 0 {
		t.Errorf("crossing tools with no terrain: %v", tools)
	}
}

func TestToolInfo(t *testing.T) {
	for _, tool := range []Tool{Horse, Rope, Water} {
		if tool.Info().Breakable {
			t.Errorf("%s should be lost, not broken", tool)
		}
	}
	for _, tool := range []Tool{Machete, Boat, Boots} {
		if !tool.Info().Breakable {
			t.Errorf("%s should break", tool)
		}
	}
	if Rope.String() != "Rope" {
		t.Errorf("Expected display name Rope, got %s", Rope.String())
	}
	if got := ParseTool("  Shovel "); got != Shovel {
		t.Errorf("Expected shovel, got %q", got)
	}
}

func TestHunterBuyAndSell(t *testing.T) {
	h := NewHunter("ada", StartingGold)

	if err := h.BuyItem(Boat, 20); !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("Expected ErrInsufficientGold, got %v", err)
	}
	if h.Gold() != StartingGold || h.HasItemInKit(Boat) {
		t.Fatalf("failed purchase must not change the hunter")
	}

	if err := h.BuyItem(Shovel, 8); err != nil {
		t.Fatalf("BuyItem: %v", err)
	}
	if h.Gold() != 2 || !h.HasItemInKit(Shovel) {
		t.Fatalf("Expected 2 gold and a shovel, got %d and %v", h.Gold(), h.Kit())
	}

	if err := h.SellItem(Rope, 2); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("Expected ErrNotOwned, got %v", err)
	}
	if err := h.SellItem(Shovel, 4); err != nil {
		t.Fatalf("SellItem: %v", err)
	}
	if h.Gold() != 6 || h.HasItemInKit(Shovel) {
		t.Fatalf("Expected 6 gold and no shovel, got %d and %v", h.Gold(), h.Kit())
	}
}

func TestHunterKitCounts(t *testing.T) {
	h := NewHunter("ada", 0)
	h.GiveItem(Rope)
	h.GiveItem(Rope)

	if !h.RemoveItemFromKit(Rope) || !h.HasItemInKit(Rope) {
		t.Fatalf("Expected one rope left")
	}
	if !h.RemoveItemFromKit(Rope) || h.HasItemInKit(Rope) {
		t.Fatalf("Expected no rope left")
	}
	if h.RemoveItemFromKit(Rope) {
		t.Errorf("removing from an empty kit must report false")
	}
}

func TestHunterBankrupt(t *testing.T) {
	h := NewHunter("ada", 3)
	if h.Bankrupt() {
		t.Fatalf("3 gold is not bankrupt")
	}
	h.ChangeGold(-3)
	if !h.Bankrupt() {
		t.Fatalf("0 gold is bankrupt")
	}
	h.ChangeGold(-5)
	if h.Gold() != -5 || !h.Bankrupt() {
		t.Fatalf("Expected -5 gold and bankrupt, got %d", h.Gold())
	}
}

func TestHunterTreasures(t *testing.T) {
	h := NewHunter("ada", StartingGold)
	if !h.AddTreasureToList(Crown) {
		t.Fatalf("first crown must be accepted")
	}
	if h.AddTreasureToList(Crown) {
		t.Fatalf("second crown must be rejected")
	}
	h.AddTreasureToList(Gem)
	if h.HasAllPrizes() {
		t.Fatalf("trophy still missing")
	}
	h.AddTreasureToList(Trophy)
	if !h.HasAllPrizes() {
		t.Fatalf("Expected all prizes")
	}
	got := h.Treasures()
	if len(got) != 3 || got[0] != Crown || got[1] != Gem || got[2] != Trophy {
		t.Errorf("Expected [crown gem trophy], got %v", got)
	}
}

func TestHunterString(t *testing.T) {
	h := NewHunter("ada", 10)
	if got := h.String(); got != "ada has 10 gold and nothing in their kit." {
		t.Errorf("unexpected status %q", got)
	}
	h.GiveItem(Rope)
	h.GiveItem(Boat)
	h.AddTreasureToList(Gem)
	if got := h.String(); got != "ada has 10 gold and a kit of boat, rope. Treasures found: gem." {
		t.Errorf("unexpected status %q", got)
	}
}

func TestAddTreasureToListOncePerKind(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOf(rapid.SampledFrom(Treasures())).Draw(rt, "rolls")
		h := NewHunter("ada", StartingGold)
		accepted := map[Treasure]int{}
		for _, tr := range rolls {
			if h.AddTreasureToList(tr) {
				accepted[tr]++
			}
		}
		for tr, n := range accepted {
			if n != 1 {
				rt.Fatalf("%s accepted %d times", tr, n)
			}
		}
		if len(h.Treasures()) != len(accepted) {
			rt.Fatalf("Treasures() has %d entries, accepted %d kinds", len(h.Treasures()), len(accepted))
		}
	})
}

func TestKitNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewHunter("ada", rapid.IntRange(0, 50).Draw(rt, "gold"))
		ops := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(rt, "ops")
		for _, op := range ops {
			tool := rapid.SampledFrom(CrossingTools()).Draw(rt, "tool")
			switch op {
			case 0:
				_ = h.BuyItem(tool, rapid.IntRange(0, 20).Draw(rt, "price"))
			case 1:
				_ = h.SellItem(tool, 1)
			case 2:
				h.RemoveItemFromKit(tool)
			case 3:
				h.GiveItem(tool)
			}
			for tool, n := range h.kit {
				if n <= 0 {
					rt.Fatalf("kit holds %d of %s", n, tool)
				}
			}
		}
	})
}
