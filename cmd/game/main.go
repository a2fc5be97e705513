package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/treasure-hunter/internal/chance"
	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/observability"
	"github.com/tatianab/treasure-hunter/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	table, err := engine.NewTableNarrator()
	if err != nil {
		fmt.Printf("Error loading narratives: %v\n", err)
		os.Exit(1)
	}
	var narrator engine.Narrator = table
	if cfg.GeminiAPIKey != "" {
		gemini, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.NarratorModel, table, logger)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer gemini.Close()
		narrator = gemini
	}

	// One source for the whole process, shared by every session.
	src := chance.NewLoggedSource(chance.NewSeeded(cfg.Seed), logger)

	newGame := func(name string, mode engine.Mode) (*engine.Game, error) {
		session, err := engine.NewSession(name, mode, src)
		if err != nil {
			return nil, err
		}
		return engine.NewGame(session, narrator, logger), nil
	}

	if err := tui.Run(newGame); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
