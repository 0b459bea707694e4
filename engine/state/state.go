// Package state manages the mutable world state: location, inventory,
// room contents, armed events, and the transient turn log.
package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halvard/wyrmgate/types"
)

// DefaultSaveFile is the save filename used when none is given.
const DefaultSaveFile = "adventure_state.json"

// Log appends a narration message to the turn log.
func Log(s *types.State, msg string) {
	s.TurnLog = append(s.TurnLog, msg)
}

// Logf appends a formatted narration message to the turn log.
func Logf(s *types.State, format string, args ...any) {
	Log(s, fmt.Sprintf(format, args...))
}

// DrainLog returns the accumulated turn log as individual lines and
// clears it. Multi-line messages are split so front ends can style
// line by line.
func DrainLog(s *types.State) []string {
	var lines []string
	for _, msg := range s.TurnLog {
		lines = append(lines, strings.Split(msg, "\n")...)
	}
	s.TurnLog = nil
	return lines
}

// CurrentRoom returns the room the player is in.
func CurrentRoom(s *types.State) *types.Room {
	return &s.Rooms[s.Loc]
}

// Exit returns the destination room id for dir from the current room.
func Exit(s *types.State, dir types.Direction) (int, bool) {
	target, ok := s.Rooms[s.Loc].Exits[dir]
	return target, ok
}

// SetLocation moves the player to the given room id.
func SetLocation(s *types.State, room int) {
	s.Loc = room
}

// FindInventory returns the id of an inventory entity matching the given
// alias. Which entity wins when several held entities share an alias is
// not defined; map iteration order decides.
func FindInventory(s *types.State, thing string) (int, bool) {
	for id := range s.Inventory {
		if e, ok := s.Entities[id]; ok && e.HasAlias(thing) {
			return id, true
		}
	}
	return 0, false
}

// TakeFromRoom moves the first entity in the current room matching the
// alias into the inventory. Returns false if nothing matched.
func TakeFromRoom(s *types.State, thing string) bool {
	room := CurrentRoom(s)
	for id := range room.Entities {
		if e, ok := s.Entities[id]; ok && e.HasAlias(thing) {
			delete(room.Entities, id)
			AddToInventory(s, id)
			return true
		}
	}
	return false
}

// RemoveFromInventory removes an inventory entity matching the alias and
// returns its id and value.
func RemoveFromInventory(s *types.State, thing string) (int, types.Entity, bool) {
	id, ok := FindInventory(s, thing)
	if !ok {
		return 0, types.Entity{}, false
	}
	delete(s.Inventory, id)
	return id, s.Entities[id], true
}

// AddToInventory inserts an entity id into the inventory set.
func AddToInventory(s *types.State, id int) {
	if s.Inventory == nil {
		s.Inventory = map[int]bool{}
	}
	s.Inventory[id] = true
}

// AddEntityToRoom inserts an entity id into the current room's set.
func AddEntityToRoom(s *types.State, id int) {
	room := CurrentRoom(s)
	if room.Entities == nil {
		room.Entities = map[int]bool{}
	}
	room.Entities[id] = true
}

// ConsumeFromInventory removes an entity from the inventory permanently
// and narrates the consumption.
func ConsumeFromInventory(s *types.State, id int) {
	delete(s.Inventory, id)
	if e, ok := s.Entities[id]; ok {
		Logf(s, "Consumed %s.", e.Name)
	}
}

// ActivateEvent arms an event id.
func ActivateEvent(s *types.State, eventID int) {
	if s.ActiveEvents == nil {
		s.ActiveEvents = map[int]bool{}
	}
	s.ActiveEvents[eventID] = true
}

// DeactivateEvent disarms an event id.
func DeactivateEvent(s *types.State, eventID int) {
	delete(s.ActiveEvents, eventID)
}

// CraftHelp narrates every held entity that has a crafting recipe, as
// "input ---> output".
func CraftHelp(s *types.State) {
	for _, id := range SortedIDs(s.Inventory) {
		out, ok := s.Recipes[id]
		if !ok {
			continue
		}
		in, inOK := s.Entities[id]
		product, outOK := s.Entities[out]
		if inOK && outOK {
			Logf(s, "%s ---> %s", in.Name, product.Name)
		}
	}
}

// SortedIDs returns the keys of an id set in ascending order, for
// deterministic narration.
func SortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
