package engine

import (
	"fmt"

	"github.com/tatianab/treasure-hunter/internal/chance"
	"github.com/tatianab/treasure-hunter/internal/models"
)

// Session holds everything that outlives a single town: the Hunter, the
// Shop, the mode and the shared random source.
type Session struct {
	Mode     Mode
	Settings Settings
	Hunter   *models.Hunter
	Shop     *Shop
	Town     *Town

	src chance.Source
}

// NewSession creates a Hunter named name, applies the mode's starting
// bonuses once, and places the Hunter in a first town.
func NewSession(name string, mode Mode, src chance.Source) (*Session, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	settings := SettingsFor(mode)

	hunter := models.NewHunter(name, settings.StartingGold(models.StartingGold))
	for _, tool := range settings.StartingKit {
		hunter.GiveItem(tool)
	}

	shop, err := NewShop(settings.Markdown, settings.Catalog)
	if err != nil {
		return nil, fmt.Errorf("creating shop: %w", err)
	}

	s := &Session{
		Mode:     mode,
		Settings: settings,
		Hunter:   hunter,
		Shop:     shop,
		src:      src,
	}
	s.Travel()
	return s, nil
}

// Travel replaces the current town with a freshly rolled one and moves the
// Hunter into it.
func (s *Session) Travel() *Town {
	s.Town = NewTown(s.Shop, s.Settings, s.src)
	s.Town.HunterArrives(s.Hunter)
	return s.Town
}
