package state

import "github.com/halvard/wyrmgate/types"

// New builds the default dungeon world: four rooms, a bed with a hidden
// coin, a vending machine, a goblin guarding the north door, and a
// recipe that turns the treasure pile into golden armor.
func New() *types.State {
	entities := map[int]types.Entity{
		1: {
			Name:        "A stack of gold",
			Description: "It consists of roughly some hundred shiny gold coins.",
			Aliases:     []string{"pile", "stack", "gold"},
		},
		2: {
			Name:        "A copper coin",
			Description: "An old, dirty copper coin.",
			Aliases:     []string{"copper", "coin"},
		},
		// Scenery: no aliases, so it can be seen but never taken.
		3: {
			Name:        "A vending machine",
			Description: "The vending machine has a small slit for coins. The display is too dirty to reveal what it sells.",
		},
		4: {
			Name:        "Bag of chips",
			Description: "The chips don't really look that bad. The smell, however, suggests otherwise.",
			Aliases:     []string{"chips"},
		},
		5: {
			Name:        "armor",
			Description: "A really shiny, yet very powerful piece of armor.",
			Aliases:     []string{"armor"},
		},
		6: {
			Name:        "Goblin corpse",
			Description: "The corpse smells badly and is rotting slowly.",
			Aliases:     []string{"goblin", "corpse"},
		},
	}

	actors := map[int]types.Actor{
		1: {
			Name:        "Goblin",
			Description: "A small red goblin leans against a door to the north.",
			Aliases:     []string{"goblin"},
		},
	}

	rooms := []types.Room{
		{
			Name:        "Entrance",
			Description: "You are in the entrance of the dungeon.",
			Entities:    map[int]bool{3: true},
			Exits:       map[types.Direction]int{types.North: 1},
		},
		{
			Name:        "Corridor",
			Description: "You are in a dark corridor.",
			Exits:       map[types.Direction]int{types.South: 0, types.East: 2},
		},
		{
			Name:        "Chamber",
			Description: "There is a bed in the chamber. The pillows are soft.",
			Actors:      map[int]bool{1: true},
			Exits:       map[types.Direction]int{types.West: 1},
		},
		{
			Name:        "Treasure Room",
			Description: "You found the treasure room!",
			Entities:    map[int]bool{1: true},
			Exits:       map[types.Direction]int{types.South: 2},
		},
	}

	conditions := []types.Condition{
		types.AtLocation(2),                            // 0
		types.CommandIs(types.Examine("bed")),          // 1
		types.And(0, 1),                                // 2: in chamber, examining bed
		types.InInventory(2),                           // 3
		types.AtLocation(0),                            // 4
		types.CommandIs(types.Use("coin")),             // 5
		types.And(3, 4),                                // 6: holding coin at entrance
		types.And(5, 6),                                // 7: using coin on the machine
		types.InInventory(4),                           // 8
		types.CommandIs(types.Use("goblin")),           // 9
		types.And(9, 8),                                // 10: using goblin while holding chips
		types.And(10, 0),                               // 11: ...in the chamber
		types.CommandIs(types.Attack("goblin")),        // 12
		types.ActorExists(1),                           // 13
		types.And(12, 13),                              // 14: attacking a living goblin
		types.And(14, 0),                               // 15: ...in the chamber
		types.And(5, 4),                                // 16: using a coin at the machine, held or not
	}

	events := []types.Event{
		{
			Condition: 2,
			Message:   "The bed is made of soft wood and has a comfortable mattress. Below the pillow you find a copper coin.",
			Commands: []types.Command{
				types.AddItemToRoom(2),
				types.DeactivateEvent(0),
				types.ActivateEvent(1),
			},
		},
		{
			Condition: 2,
			Message:   "Now that you have taken the coin, you glance down at an empty bed.",
		},
		{
			Condition: 7,
			Message:   "The vending machine makes some concerning noise... but it works!",
			Commands: []types.Command{
				types.DeactivateEvent(2),
				types.ActivateEvent(3),
				types.AddItemToRoom(4),
				types.Consume(2),
				types.ActivateEvent(4),
			},
		},
		{
			Condition: 16,
			Message:   "You would sure like to get more loot, however your only coin is now gone.",
		},
		{
			Condition: 11,
			Message: "The goblin doesn't seem to take much interest in you, but he hungrily takes the chips.\n" +
				"The goblin's face turns green, then grey.\n" +
				"He falls to the floor and doesn't move anymore.",
			Commands: []types.Command{
				types.Consume(4),
				types.AddExit(types.North, 3),
				types.RemoveActor(1),
				types.AddItemToRoom(6),
			},
		},
		{
			Condition: 15,
			Message:   "The goblin's fist hits you like a truck and lands you on the ground, where you get knocked out.",
			Commands:  []types.Command{types.GameOver()},
		},
	}

	return &types.State{
		Loc:          0,
		Inventory:    map[int]bool{},
		Recipes:      map[int]int{1: 5},
		Rooms:        rooms,
		Entities:     entities,
		Actors:       actors,
		ActiveEvents: map[int]bool{0: true, 2: true, 5: true},
		Events:       events,
		Conditions:   conditions,
		FileName:     DefaultSaveFile,
	}
}
