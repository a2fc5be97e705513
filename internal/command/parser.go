// Package command turns a line typed at the menu into a game action.
package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Action is a menu choice.
type Action int

const (
	ActionUnknown Action = iota
	ActionHunt
	ActionDig
	ActionBuy
	ActionSell
	ActionMove
	ActionTrouble
	ActionExit
	ActionHelp
)

var actionNames = map[Action]string{
	ActionUnknown: "unknown",
	ActionHunt:    "hunt",
	ActionDig:     "dig",
	ActionBuy:     "buy",
	ActionSell:    "sell",
	ActionMove:    "move",
	ActionTrouble: "trouble",
	ActionExit:    "exit",
	ActionHelp:    "help",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

var aliases = map[string]Action{
	"h": ActionHunt, "hunt": ActionHunt, "search": ActionHunt,
	"d": ActionDig, "dig": ActionDig,
	"b": ActionBuy, "buy": ActionBuy, "shop": ActionBuy,
	"s": ActionSell, "sell": ActionSell,
	"m": ActionMove, "move": ActionMove, "leave": ActionMove, "travel": ActionMove,
	"l": ActionTrouble, "look": ActionTrouble, "trouble": ActionTrouble, "fight": ActionTrouble,
	"x": ActionExit, "exit": ActionExit, "quit": ActionExit,
	"?": ActionHelp, "help": ActionHelp, "menu": ActionHelp,
}

// Command is a parsed menu line.
type Command struct {
	Action Action
	// Word is the first word as typed, lowercased.
	Word string
	// Arg is everything after the first word, e.g. the item to buy.
	Arg string
}

// Parse splits line into an action and its argument. Unknown words close to
// exactly one action's alias resolve to that action.
//
// Postcondition: an empty line yields ActionUnknown with an empty Word.
func Parse(line string) Command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}
	}
	word := fields[0]
	cmd := Command{Word: word, Arg: strings.Join(fields[1:], " ")}

	if action, ok := aliases[word]; ok {
		cmd.Action = action
		return cmd
	}
	cmd.Action = closest(word)
	return cmd
}

// closest matches a misspelt word against the longer aliases. One-letter
// shortcuts never take part, so "z" stays unknown.
func closest(word string) Action {
	if len(word) < 3 {
		return ActionUnknown
	}

	words := make([]string, 0, len(aliases))
	for alias := range aliases {
		if len(alias) > 1 {
			words = append(words, alias)
		}
	}
	sort.Strings(words)

	best, bestDist := ActionUnknown, -1
	tie := false
	for _, alias := range words {
		dist := levenshtein.ComputeDistance(word, alias)
		if dist > limit(len(alias)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tie = aliases[alias], dist, false
		case dist == bestDist && aliases[alias] != best:
			tie = true
		}
	}
	if tie {
		return ActionUnknown
	}
	return best
}

func limit(n int) int {
	if n <= 4 {
		return 1
	}
	return 2
}

// Help returns the menu text.
func Help() string {
	return strings.Join([]string{
		"(H)unt for treasure!",
		"(D)ig for gold!",
		"(B)uy something at the shop.  e.g. 'b rope'",
		"(S)ell something at the shop. e.g. 's rope'",
		"(M)ove on to a different town.",
		"(L)ook for trouble!",
		"Give up the hunt and e(X)it.",
	}, "\n")
}
