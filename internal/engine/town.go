package engine

import (
	"fmt"

	"github.com/tatianab/treasure-hunter/internal/chance"
	"github.com/tatianab/treasure-hunter/internal/models"
)

const (
	toughNoTroubleChance  = 0.66
	sleepyNoTroubleChance = 0.33
	digSuccessMax         = 5
)

// Town is one stop on the hunt. It owns its terrain and treasure, and acts on
// the Hunter that arrives. A Town is discarded once the Hunter leaves it.
//
// Draws from the Source happen in a fixed order:
//   - NewTown: terrain Intn(12), treasure Intn(4), toughness Float64.
//   - LeaveTown: break Float64, skipped when the break chance is zero.
//   - LookForTrouble: encounter Float64, gold Intn(10), then the brawl
//     Float64 unless the Hunter is armed.
//   - DigGold: dig Intn(10), then gold Intn(20) on success.
type Town struct {
	hunter *models.Hunter
	shop   *Shop
	src    chance.Source

	terrain     models.Terrain
	treasure    models.Treasure
	tough       bool
	breakChance float64

	found bool
	dug   bool
	news  string
}

// NewTown rolls a town's terrain, treasure and toughness. The Hunter arrives
// separately through HunterArrives.
func NewTown(shop *Shop, settings Settings, src chance.Source) *Town {
	terrain := models.NewTerrain(src)
	treasures := models.Treasures()
	treasure := treasures[src.Intn(len(treasures))]
	return &Town{
		shop:        shop,
		src:         src,
		terrain:     terrain,
		treasure:    treasure,
		tough:       src.Float64() < settings.Toughness,
		breakChance: settings.BreakChance,
	}
}

// HunterArrives puts h in town and greets them.
func (t *Town) HunterArrives(h *models.Hunter) {
	t.hunter = h
	t.news = fmt.Sprintf("Welcome to town, %s.", h.Name())
	if t.tough {
		t.news += "\nIt's pretty rough around here, so watch yourself."
	} else {
		t.news += "\nWe're just a sleepy little town with mild mannered folk."
	}
}

func (t *Town) LatestNews() string            { return t.news }
func (t *Town) TownTreasure() models.Treasure { return t.treasure }
func (t *Town) Terrain() models.Terrain       { return t.terrain }
func (t *Town) Tough() bool                   { return t.tough }
func (t *Town) Dug() bool                     { return t.dug }
func (t *Town) IsSearched() bool              { return t.found }

// LeaveTown tries to cross the terrain. It returns false, touching nothing
// but the news, when the Hunter lacks the tool. On a crossing the tool may
// be lost or broken.
func (t *Town) LeaveTown() bool {
	tool := t.terrain.Needs
	if !t.terrain.CanCross(t.hunter) {
		t.news = fmt.Sprintf("You can't leave town, %s. You don't have a %s.", t.hunter.Name(), tool)
		return false
	}

	t.news = fmt.Sprintf("You used your %s to cross the %s.", tool, t.terrain)
	if t.itemBreaks() {
		t.hunter.RemoveItemFromKit(tool)
		if tool.Info().Breakable {
			t.news += fmt.Sprintf("\nUnfortunately, your %s broke.", tool)
		} else {
			t.news += fmt.Sprintf("\nUnfortunately, you lost your %s.", tool)
		}
	}
	return true
}

func (t *Town) itemBreaks() bool {
	if t.breakChance <= 0 {
		return false
	}
	return t.src.Float64() < t.breakChance
}

// EnterShop hands the Hunter to the shop for one visit. The shopkeeper's
// reply becomes the town's news.
func (t *Town) EnterShop(mode ShopMode, tool models.Tool) ShopResult {
	res := t.shop.Enter(t.hunter, mode, tool)
	t.news = res.Message
	return res
}

// LookForTrouble picks a fight. Tough towns make trouble easier to find and
// harder to win; an armed Hunter always wins.
func (t *Town) LookForTrouble() {
	noTrouble := sleepyNoTroubleChance
	if t.tough {
		noTrouble = toughNoTroubleChance
	}

	if t.src.Float64() > noTrouble {
		t.news = "You couldn't find any trouble."
		return
	}

	gold := chance.Between(t.src, 1, 10)
	if t.hunter.HasWeapon() {
		t.news = "You want trouble, stranger.... h-hey now.. drop that sword!.. I ain't mean no harm!" +
			"\nHave mercy! I have a family! Take what you want!"
		t.news += fmt.Sprintf("\nYou won the brawl and receive %d gold.", gold)
		t.hunter.ChangeGold(gold)
		return
	}

	t.news = "You want trouble, stranger! You got it!\nOof! Umph! Ow!\n"
	if t.src.Float64() > noTrouble {
		t.news += "Okay, stranger! You proved yer mettle. Here, take my gold."
		t.news += fmt.Sprintf("\nYou won the brawl and receive %d gold.", gold)
		t.hunter.ChangeGold(gold)
	} else {
		t.news += "That'll teach you to go lookin' fer trouble in MY town! Now pay up!"
		t.news += fmt.Sprintf("\nYou lost the brawl and pay %d gold.", gold)
		t.hunter.ChangeGold(-gold)
	}
}

// DigGold digs once for gold. Only a successful dig uses up the town's
// ground; a Hunter who finds nothing may dig again.
func (t *Town) DigGold() {
	if !t.hunter.HasItemInKit(models.Shovel) {
		t.news = "You don't have a shovel to dig with!"
		return
	}
	if t.dug {
		t.news = "You already dug for gold in this town!"
		return
	}

	if chance.Between(t.src, 1, 10) > digSuccessMax {
		t.news = "You dug up nothing but dirt, boo hoo."
		return
	}
	gold := chance.Between(t.src, 1, 20)
	t.hunter.ChangeGold(gold)
	t.dug = true
	t.news = fmt.Sprintf("You dug up %d gold!", gold)
}

// HuntTreasure tries to claim the town's treasure. Dust is never claimed,
// and neither is a kind the Hunter already holds.
func (t *Town) HuntTreasure() bool {
	if t.treasure == models.Dust {
		return false
	}
	if !t.hunter.AddTreasureToList(t.treasure) {
		return false
	}
	t.found = true
	return true
}

func (t *Town) String() string {
	return fmt.Sprintf("This nice little town is surrounded by %s.", t.terrain)
}
