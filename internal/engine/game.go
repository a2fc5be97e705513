package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatianab/treasure-hunter/internal/command"
	"github.com/tatianab/treasure-hunter/internal/models"
)

// Turn is the outcome of one menu command.
type Turn struct {
	Message string
	// Shopped is set when the turn bought or sold something.
	Shopped bool
	Over    bool
	Won     bool
}

// Game runs the menu loop's rules on top of a Session: it routes commands to
// the current town, swaps towns on a successful crossing, and decides when
// the hunt is over.
type Game struct {
	session  *Session
	narrator Narrator
	logger   *zap.Logger
	id       string

	justShopped bool
	over        bool
}

// NewGame starts the turn loop for session and logs its start.
func NewGame(session *Session, narrator Narrator, logger *zap.Logger) *Game {
	id := uuid.NewString()
	g := &Game{
		session:  session,
		narrator: narrator,
		logger:   logger.With(zap.String("session", id)),
		id:       id,
	}
	g.logger.Info("session started",
		zap.String("hunter", session.Hunter.Name()),
		zap.String("mode", string(session.Mode)),
		zap.Int("gold", session.Hunter.Gold()),
	)
	return g
}

func (g *Game) ID() string             { return g.id }
func (g *Game) Session() *Session      { return g.session }
func (g *Game) Hunter() *models.Hunter { return g.session.Hunter }
func (g *Game) Town() *Town            { return g.session.Town }
func (g *Game) Over() bool             { return g.over }

// News is what the menu shows above the choices: the town's latest news, or
// a short note right after a shop visit.
func (g *Game) News() string {
	if g.justShopped {
		return "You just left the shop."
	}
	return g.session.Town.LatestNews()
}

// Do carries out one command.
func (g *Game) Do(ctx context.Context, cmd command.Command) Turn {
	if g.over {
		return Turn{Message: "The hunt is over.", Over: true}
	}
	g.justShopped = false

	hunter := g.session.Hunter
	town := g.session.Town
	var turn Turn

	switch cmd.Action {
	case command.ActionHunt:
		turn.Message = g.hunt(ctx)
		if hunter.HasAllPrizes() {
			turn.Message += "\nYou've collected the crown, the trophy and the gem. You win the hunt!"
			turn.Won = true
			g.over = true
		}
	case command.ActionDig:
		town.DigGold()
		turn.Message = town.LatestNews()
	case command.ActionBuy, command.ActionSell:
		mode := ShopBuy
		if cmd.Action == command.ActionSell {
			mode = ShopSell
		}
		res := town.EnterShop(mode, models.ParseTool(cmd.Arg))
		turn.Message = res.Message
		turn.Shopped = res.Transacted
		g.justShopped = res.Transacted
	case command.ActionMove:
		if town.LeaveTown() {
			// The old town is discarded, so its news goes out now.
			turn.Message = town.LatestNews() + "\n\n" + g.session.Travel().LatestNews()
		} else {
			turn.Message = town.LatestNews()
		}
	case command.ActionTrouble:
		town.LookForTrouble()
		turn.Message = town.LatestNews()
	case command.ActionExit:
		turn.Message = fmt.Sprintf("Fare thee well, %s!", hunter.Name())
		g.over = true
	case command.ActionHelp:
		turn.Message = command.Help()
	default:
		turn.Message = "Yikes! That's an invalid option! Try again."
	}

	if !g.over && hunter.Bankrupt() {
		turn.Message += "\nYou ran out of gold! Try again next time, and maybe don't get into fights you can't win..."
		g.over = true
	}
	turn.Over = g.over

	g.logger.Info("turn",
		zap.String("action", cmd.Action.String()),
		zap.String("arg", cmd.Arg),
		zap.Int("gold", hunter.Gold()),
		zap.String("terrain", string(g.session.Town.Terrain().Kind)),
		zap.Bool("over", turn.Over),
		zap.Bool("won", turn.Won),
	)
	return turn
}

func (g *Game) hunt(ctx context.Context) string {
	town := g.session.Town
	msg := "You go hunting for treasure in the town!\n"
	if town.IsSearched() {
		return msg + "But, you already searched this town for its treasure. Don't be greedy."
	}
	if town.HuntTreasure() {
		return msg + g.narrator.Describe(ctx, town.TownTreasure(), town.Terrain().Kind)
	}
	if town.TownTreasure() == models.Dust {
		return msg + "You found a pile of dust. You decide it's best to leave it behind..."
	}
	return msg + fmt.Sprintf("You already found the %s somewhere!", town.TownTreasure())
}
