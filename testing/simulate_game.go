package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/tatianab/treasure-hunter/internal/chance"
	"github.com/tatianab/treasure-hunter/internal/command"
	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/models"
	"github.com/tatianab/treasure-hunter/internal/observability"
)

const maxTurns = 60

func main() {
	modeFlag := flag.String("mode", "normal", "difficulty: normal, hard, easy, test or samurai")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	mode, err := engine.ParseMode(*modeFlag)
	if err != nil {
		log.Fatalf("Bad mode: %v", err)
	}

	src := chance.NewSeeded(cfg.Seed)
	session, err := engine.NewSession("bot", mode, src)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	narrator, err := engine.NewTableNarrator()
	if err != nil {
		log.Fatalf("Failed to load narratives: %v", err)
	}
	game := engine.NewGame(session, narrator, logger)

	fmt.Printf("--- Session %s (%s) ---\n", game.ID(), mode)
	fmt.Println(game.News())

	for turn := 1; turn <= maxTurns; turn++ {
		line := chooseAction(game, src)
		fmt.Printf("\n--- Turn %d ---\n", turn)
		fmt.Printf("Bot: %s\n", line)

		result := game.Do(ctx, command.Parse(line))
		fmt.Println(result.Message)
		fmt.Println(game.Hunter())

		if result.Over {
			if result.Won {
				fmt.Println("Game Ended: Bot Won!")
			} else {
				fmt.Println("Game Ended.")
			}
			return
		}
	}
	fmt.Println("\nOut of turns.")
}

// chooseAction plays a simple greedy strategy: claim treasure, buy the way
// out, dig when possible, and brawl when there's nothing better to do.
func chooseAction(game *engine.Game, src chance.Source) string {
	hunter := game.Hunter()
	town := game.Town()
	shop := game.Session().Shop
	needs := town.Terrain().Needs

	if !town.IsSearched() && town.TownTreasure() != models.Dust && !hunter.HasTreasure(town.TownTreasure()) {
		return "h"
	}
	if hunter.HasItemInKit(models.Shovel) && !town.Dug() && src.Intn(2) == 0 {
		return "d"
	}
	if hunter.HasItemInKit(needs) {
		return "m"
	}
	if price, ok := shop.BuyPrice(needs); ok && hunter.Gold() > price {
		return "b " + string(needs)
	}
	if price, ok := shop.BuyPrice(models.Shovel); ok && !hunter.HasItemInKit(models.Shovel) && hunter.Gold() > price {
		return "b shovel"
	}
	return "l"
}
