// Package types defines the shared data structures for the wyrmgate engine:
// directions, commands, conditions, events, world entities, and outcomes.
// This package contains only data and small constructors — no world logic.
package types

// Direction is a compass direction. The string form is the lowercase
// name used in player input and in serialized exit tables.
type Direction string

// The four compass directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists all directions in display order.
var Directions = []Direction{North, South, East, West}

// ParseDirection converts lowercase text to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "south", "east", "west":
		return Direction(s), true
	}
	return "", false
}

// Label returns the capitalized display name, e.g. "North".
func (d Direction) Label() string {
	if d == "" {
		return ""
	}
	b := []byte(d)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// CommandKind discriminates the Command variants.
type CommandKind string

// Player-issued and event-issued command kinds.
const (
	CmdNone            CommandKind = "none"
	CmdMove            CommandKind = "move"
	CmdLook            CommandKind = "look"
	CmdTake            CommandKind = "take"
	CmdDrop            CommandKind = "drop"
	CmdExamine         CommandKind = "examine"
	CmdUse             CommandKind = "use"
	CmdEat             CommandKind = "eat"
	CmdConsume         CommandKind = "consume"
	CmdCraft           CommandKind = "craft"
	CmdCraftHelp       CommandKind = "craft_help"
	CmdAttack          CommandKind = "attack"
	CmdInventory       CommandKind = "inventory"
	CmdHelp            CommandKind = "help"
	CmdSave            CommandKind = "save"
	CmdLoad            CommandKind = "load"
	CmdQuit            CommandKind = "quit"
	CmdAddItemToRoom   CommandKind = "add_item_to_room"
	CmdAddExit         CommandKind = "add_exit"
	CmdRemoveActor     CommandKind = "remove_actor"
	CmdActivateEvent   CommandKind = "activate_event"
	CmdDeactivateEvent CommandKind = "deactivate_event"
	CmdGameOver        CommandKind = "game_over"
	CmdWon             CommandKind = "won"
)

// Command is one executable instruction: a kind plus its payload.
// Commands are plain comparable values so that condition matching can use
// structural equality and event tables can serialize them.
//
// Payload use per kind: Text carries a noun, filename, or help topic;
// Dir a direction; ID an entity, actor, event, or room id. AddExit uses
// both Dir (the new exit) and ID (the destination room).
type Command struct {
	Kind CommandKind `json:"kind"`
	Text string      `json:"text,omitempty"`
	Dir  Direction   `json:"dir,omitempty"`
	ID   int         `json:"id,omitempty"`
}

// Command constructors, one per variant.

func Move(d Direction) Command       { return Command{Kind: CmdMove, Dir: d} }
func Look() Command                  { return Command{Kind: CmdLook} }
func Take(thing string) Command      { return Command{Kind: CmdTake, Text: thing} }
func Drop(thing string) Command      { return Command{Kind: CmdDrop, Text: thing} }
func Examine(thing string) Command   { return Command{Kind: CmdExamine, Text: thing} }
func Use(thing string) Command       { return Command{Kind: CmdUse, Text: thing} }
func Eat(thing string) Command       { return Command{Kind: CmdEat, Text: thing} }
func Consume(entityID int) Command   { return Command{Kind: CmdConsume, ID: entityID} }
func Craft(thing string) Command     { return Command{Kind: CmdCraft, Text: thing} }
func CraftHelp() Command             { return Command{Kind: CmdCraftHelp} }
func Attack(thing string) Command    { return Command{Kind: CmdAttack, Text: thing} }
func ShowInventory() Command         { return Command{Kind: CmdInventory} }
func Help(topic string) Command      { return Command{Kind: CmdHelp, Text: topic} }
func Save(file string) Command       { return Command{Kind: CmdSave, Text: file} }
func Load(file string) Command       { return Command{Kind: CmdLoad, Text: file} }
func Quit() Command                  { return Command{Kind: CmdQuit} }
func AddItemToRoom(id int) Command   { return Command{Kind: CmdAddItemToRoom, ID: id} }
func RemoveActor(id int) Command     { return Command{Kind: CmdRemoveActor, ID: id} }
func ActivateEvent(id int) Command   { return Command{Kind: CmdActivateEvent, ID: id} }
func DeactivateEvent(id int) Command { return Command{Kind: CmdDeactivateEvent, ID: id} }
func GameOver() Command              { return Command{Kind: CmdGameOver} }
func Won() Command                   { return Command{Kind: CmdWon} }
func None() Command                  { return Command{Kind: CmdNone} }

// AddExit adds an exit toward dir leading to room toRoom.
func AddExit(dir Direction, toRoom int) Command {
	return Command{Kind: CmdAddExit, Dir: dir, ID: toRoom}
}

// ConditionKind discriminates the Condition variants.
type ConditionKind string

// Condition leaf and combinator kinds. The Not* combinators keep their
// exact boolean shape: NotAnd(a,b) is !(a && b), NotOr(a,b) is !a && !b.
const (
	CondLocation       ConditionKind = "location"
	CondCommandIs      ConditionKind = "command_is"
	CondInInventory    ConditionKind = "in_inventory"
	CondActor          ConditionKind = "actor"
	CondAnd            ConditionKind = "and"
	CondOr             ConditionKind = "or"
	CondNotLocation    ConditionKind = "not_location"
	CondNotCommandIs   ConditionKind = "not_command_is"
	CondNotInInventory ConditionKind = "not_in_inventory"
	CondNotAnd         ConditionKind = "not_and"
	CondNotOr          ConditionKind = "not_or"
)

// Condition is one node of the condition table. Combinators reference
// their operands by index into the same table, never by pointer, so
// events can alias-share sub-conditions and the whole table serializes.
//
// Payload use per kind: ID holds a room, entity, or actor id for the
// leaves; Cmd holds the command to match for CommandIs/NotCommandIs;
// Left and Right are operand indices for the combinators.
type Condition struct {
	Kind  ConditionKind `json:"kind"`
	ID    int           `json:"id,omitempty"`
	Cmd   Command       `json:"cmd,omitzero"`
	Left  int           `json:"left,omitempty"`
	Right int           `json:"right,omitempty"`
}

// Condition constructors, one per variant.

func AtLocation(room int) Condition    { return Condition{Kind: CondLocation, ID: room} }
func NotAtLocation(room int) Condition { return Condition{Kind: CondNotLocation, ID: room} }
func CommandIs(c Command) Condition    { return Condition{Kind: CondCommandIs, Cmd: c} }
func CommandIsNot(c Command) Condition { return Condition{Kind: CondNotCommandIs, Cmd: c} }
func InInventory(id int) Condition     { return Condition{Kind: CondInInventory, ID: id} }
func NotInInventory(id int) Condition  { return Condition{Kind: CondNotInInventory, ID: id} }
func ActorExists(id int) Condition     { return Condition{Kind: CondActor, ID: id} }
func And(left, right int) Condition    { return Condition{Kind: CondAnd, Left: left, Right: right} }
func Or(left, right int) Condition     { return Condition{Kind: CondOr, Left: left, Right: right} }
func NotAnd(left, right int) Condition { return Condition{Kind: CondNotAnd, Left: left, Right: right} }
func NotOr(left, right int) Condition  { return Condition{Kind: CondNotOr, Left: left, Right: right} }

// Event is a designer-authored trigger: while its id is armed and its
// condition holds, the message is narrated and the command stack runs in
// place of the player's command for that turn.
type Event struct {
	Condition int       `json:"condition"`
	Message   string    `json:"message"`
	Commands  []Command `json:"commands,omitempty"`
}

// Entity is a lookable or takeable world object. Aliases are the
// case-sensitive nouns that match it in player input.
type Entity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
}

// HasAlias reports whether s is one of the entity's aliases.
func (e Entity) HasAlias(s string) bool {
	for _, a := range e.Aliases {
		if a == s {
			return true
		}
	}
	return false
}

// Actor is a non-player character. Same shape as Entity but lives only
// in a room's actor set and is never collectible.
type Actor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
}

// HasAlias reports whether s is one of the actor's aliases.
func (a Actor) HasAlias(s string) bool {
	for _, al := range a.Aliases {
		if al == s {
			return true
		}
	}
	return false
}

// Room is a location: a description, the ids of entities and actors
// present, and directed exits. Exits are not required to be symmetric.
type Room struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Entities    map[int]bool      `json:"entities,omitempty"`
	Actors      map[int]bool      `json:"actors,omitempty"`
	Exits       map[Direction]int `json:"exits,omitempty"`
}

// OutcomeKind discriminates the terminal signal of a command execution.
type OutcomeKind int

// Outcome kinds. None means the game simply continues.
const (
	OutcomeNone OutcomeKind = iota
	OutcomeQuit
	OutcomeGameOver
	OutcomeWon
	OutcomeSave
	OutcomeLoad
)

// Outcome is the signal a command execution yields to the front end.
// Save and Load carry the requested filename; an empty File means
// "use the state's remembered filename".
type Outcome struct {
	Kind OutcomeKind
	File string
}

// Result is the output of one full turn: the drained narration and the
// outcome signal of the last executed command.
type Result struct {
	Output  []string
	Outcome Outcome
}

// State is the complete mutable world state. The turn log is transient:
// it accumulates narration during a turn and is drained (read-and-clear)
// by the pipeline; it is not part of the persisted snapshot.
type State struct {
	Loc          int
	Inventory    map[int]bool
	Recipes      map[int]int
	Rooms        []Room
	Entities     map[int]Entity
	Actors       map[int]Actor
	ActiveEvents map[int]bool
	Events       []Event
	Conditions   []Condition
	FileName     string
	Dead         bool
	TurnLog      []string
}
