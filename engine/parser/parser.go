// Package parser converts one line of player input into a Command.
// Intentionally dumb: whitespace tokens, first-token dispatch, no NLP.
//
// By convention the front end lowercases the line before calling Parse;
// matching is case-sensitive against that lowercased input. Usage errors
// never fail the turn — they narrate a corrective message into the turn
// log and yield the None command.
package parser

import (
	"strings"

	"github.com/halvard/wyrmgate/types"

	"github.com/halvard/wyrmgate/engine/state"
)

// Parse tokenizes a line of input against the current world state.
// While the world is flagged dead, everything except load and quit is
// refused, forcing a restart or load path.
func Parse(input string, s *types.State) types.Command {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return types.None()
	}
	verb := tokens[0]
	rest := tokens[1:]

	if s.Dead && verb != "load" && verb != "quit" {
		state.Log(s, "You are dead. Load a saved game or quit.")
		return types.None()
	}

	switch verb {
	case "look":
		return types.Look()

	case "quit":
		state.Log(s, "Goodbye!")
		return types.Quit()

	case "save":
		state.Log(s, "Saving game...")
		return types.Save(first(rest))

	case "load":
		state.Log(s, "Loading game...")
		return types.Load(first(rest))

	case "go":
		if len(rest) == 0 {
			state.Log(s, "You need to specify a direction to go to.")
			return types.None()
		}
		dir, ok := types.ParseDirection(rest[0])
		if !ok {
			state.Log(s, "I don't know that direction.")
			return types.None()
		}
		return types.Move(dir)

	case "north", "n":
		return types.Move(types.North)
	case "south", "s":
		return types.Move(types.South)
	case "east", "e":
		return types.Move(types.East)
	case "west", "w":
		return types.Move(types.West)

	case "take", "t":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an item to take.")
			return types.None()
		}
		return types.Take(rest[0])

	case "drop":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an item to drop.")
			return types.None()
		}
		return types.Drop(rest[0])

	case "inventory", "inv", "i":
		return types.ShowInventory()

	case "examine":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an item to examine.")
			return types.None()
		}
		return types.Examine(rest[0])

	case "use":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an item to use.")
			return types.None()
		}
		return types.Use(rest[0])

	case "eat":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an item to eat.")
			return types.None()
		}
		return types.Eat(rest[0])

	case "attack":
		if len(rest) == 0 {
			state.Log(s, "You need to specify an enemy to attack.")
			return types.None()
		}
		return types.Attack(rest[0])

	case "craft":
		if len(rest) == 0 {
			state.Log(s, "You can't craft with that.")
			return types.None()
		}
		if strings.Contains(rest[0], "help") {
			return types.CraftHelp()
		}
		return types.Craft(rest[0])

	case "help":
		if len(rest) == 0 {
			return types.Help("default")
		}
		return types.Help(rest[0])

	default:
		state.Log(s, "I don't understand that command.")
		return types.None()
	}
}

// first returns the first token, or "" if there is none.
func first(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
