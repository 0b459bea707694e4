// Package effects implements command execution. Apply is the single
// mutation point: every command either fully applies or fully no-ops,
// narrates through the turn log, and yields an outcome signal. The
// executor never touches files or the terminal; Save and Load are
// signaled outward for the front end to perform.
package effects

import (
	"strings"

	"github.com/halvard/wyrmgate/types"

	"github.com/halvard/wyrmgate/engine/state"
)

// Apply executes one command against the world state and returns its
// outcome signal.
func Apply(s *types.State, cmd types.Command) types.Outcome {
	switch cmd.Kind {
	case types.CmdLook:
		applyLook(s)

	case types.CmdMove:
		if target, ok := state.Exit(s, cmd.Dir); ok {
			state.SetLocation(s, target)
			// Arriving in a room narrates it immediately.
			Apply(s, types.Look())
		} else {
			state.Log(s, "You can't go that way.")
		}

	case types.CmdTake:
		if state.TakeFromRoom(s, cmd.Text) {
			state.Log(s, "Taken.")
		} else {
			state.Logf(s, "There is no %s here.", cmd.Text)
		}

	case types.CmdDrop:
		if id, e, ok := state.RemoveFromInventory(s, cmd.Text); ok {
			state.AddEntityToRoom(s, id)
			state.Logf(s, "You drop the %s.", e.Name)
		} else {
			state.Logf(s, "You don't have a %s to drop.", cmd.Text)
		}

	case types.CmdInventory:
		applyInventory(s)

	case types.CmdExamine:
		if id, ok := state.FindInventory(s, cmd.Text); ok {
			state.Log(s, s.Entities[id].Description)
		} else {
			state.Log(s, "You need to have the item in your inventory!")
		}

	case types.CmdEat:
		if id, ok := state.FindInventory(s, cmd.Text); ok {
			state.ConsumeFromInventory(s, id)
		} else {
			state.Log(s, "You need to have the item in your inventory!")
		}

	case types.CmdConsume:
		state.ConsumeFromInventory(s, cmd.ID)

	case types.CmdCraft:
		if id, ok := state.FindInventory(s, cmd.Text); ok {
			if product, ok := s.Recipes[id]; ok {
				state.AddToInventory(s, product)
				// Crafting consumes its input the same way eating does,
				// so the consumption narration lands before the outcome.
				Apply(s, types.Eat(cmd.Text))
				return types.Outcome{Kind: types.OutcomeWon}
			}
		}

	case types.CmdCraftHelp:
		state.CraftHelp(s)

	case types.CmdHelp:
		if text, ok := helpTopics[cmd.Text]; ok {
			state.Log(s, text)
		}

	case types.CmdAddItemToRoom:
		state.AddEntityToRoom(s, cmd.ID)

	case types.CmdAddExit:
		room := state.CurrentRoom(s)
		if room.Exits == nil {
			room.Exits = map[types.Direction]int{}
		}
		room.Exits[cmd.Dir] = cmd.ID

	case types.CmdRemoveActor:
		delete(state.CurrentRoom(s).Actors, cmd.ID)

	case types.CmdActivateEvent:
		state.ActivateEvent(s, cmd.ID)

	case types.CmdDeactivateEvent:
		state.DeactivateEvent(s, cmd.ID)

	case types.CmdSave:
		if cmd.Text != "" {
			s.FileName = cmd.Text
		}
		return types.Outcome{Kind: types.OutcomeSave, File: cmd.Text}

	case types.CmdLoad:
		return types.Outcome{Kind: types.OutcomeLoad, File: cmd.Text}

	case types.CmdQuit:
		return types.Outcome{Kind: types.OutcomeQuit}

	case types.CmdGameOver:
		return types.Outcome{Kind: types.OutcomeGameOver}

	case types.CmdWon:
		return types.Outcome{Kind: types.OutcomeWon}

	case types.CmdUse, types.CmdAttack, types.CmdNone:
		// No built-in behavior. Use and Attack exist as trigger fodder
		// for authored events.
	}

	return types.Outcome{Kind: types.OutcomeNone}
}

// applyLook narrates the current room: description, exits, actors
// present, and visible entities.
func applyLook(s *types.State) {
	room := state.CurrentRoom(s)
	state.Log(s, room.Description)

	var dirs []string
	for _, d := range types.Directions {
		if _, ok := room.Exits[d]; ok {
			dirs = append(dirs, d.Label())
		}
	}
	if len(dirs) == 0 {
		state.Log(s, "There seems to be no exit.")
	} else {
		state.Log(s, "Exits: "+strings.Join(dirs, " "))
	}

	for _, id := range state.SortedIDs(room.Actors) {
		if a, ok := s.Actors[id]; ok {
			state.Log(s, a.Description)
		}
	}

	if len(room.Entities) == 0 {
		state.Log(s, "There is nothing here.")
		return
	}
	state.Log(s, "You see:")
	for _, id := range state.SortedIDs(room.Entities) {
		if e, ok := s.Entities[id]; ok {
			state.Log(s, e.Name)
		}
	}
}

// applyInventory narrates the held entities.
func applyInventory(s *types.State) {
	if len(s.Inventory) == 0 {
		state.Log(s, "You are empty handed.")
		return
	}
	state.Log(s, "You have:")
	for _, id := range state.SortedIDs(s.Inventory) {
		if e, ok := s.Entities[id]; ok {
			state.Log(s, e.Name)
		}
	}
}

// helpTopics is the fixed help table. Unknown topics produce no output.
var helpTopics = map[string]string{
	"look":      "With look you get a brief description of your surroundings.",
	"save":      "Saves your game for you.",
	"load":      "Loads a prior saved game file.",
	"examine":   "Gives you a detailed description of a specified item. Only works on items in your inventory.",
	"inventory": "Shows all items you are currently carrying with you.",
	"go":        "With go you can navigate into any direction you specify (north/south/east/west).",
	"use":       "With use you can perform specific actions that require a specific item.",
	"attack":    "Doesn't the name speak for itself? Just keep in mind messing with the wrong people WILL get you in trouble.",
	"craft":     "With craft you consume items to create new ones, oftentimes of much higher quality and value than their components.",
	"default":   "look\nquit\nsave\nload\ngo\ntake\ndrop\ninventory\nexamine\nuse\nattack\ncraft",
}
