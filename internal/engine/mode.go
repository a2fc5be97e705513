package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// Mode is the difficulty chosen at the start of a session.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeHard    Mode = "hard"
	ModeEasy    Mode = "easy"
	ModeTest    Mode = "test"
	ModeSamurai Mode = "samurai"
)

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode accepts a mode name or its first letter. "test" has no shortcut.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "normal":
		return ModeNormal, nil
	case "h", "hard":
		return ModeHard, nil
	case "e", "easy":
		return ModeEasy, nil
	case "s", "samurai":
		return ModeSamurai, nil
	case "test":
		return ModeTest, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Settings are the numbers a mode changes.
type Settings struct {
	Markdown    float64
	Toughness   float64
	BreakChance float64
	Catalog     CatalogVariant
	// StartingGold is applied to a fresh Hunter holding models.StartingGold.
	StartingGold func(gold int) int
	StartingKit  []models.Tool
}

// SettingsFor returns the settings of mode.
func SettingsFor(mode Mode) Settings {
	s := Settings{
		Markdown:     0.5,
		Toughness:    0.4,
		BreakChance:  0.5,
		Catalog:      CatalogStandard,
		StartingGold: func(gold int) int { return gold },
	}
	switch mode {
	case ModeHard:
		s.Markdown = 0.25
		s.Toughness = 0.75
	case ModeEasy:
		s.Markdown = 1
		s.Toughness = 0.2
		s.BreakChance = 0
		s.StartingGold = func(gold int) int { return gold * 2 }
	case ModeTest:
		s.StartingGold = func(gold int) int { return gold + 96 }
		s.StartingKit = models.CrossingTools()
	case ModeSamurai:
		s.Catalog = CatalogSamurai
	}
	return s
}
