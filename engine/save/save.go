// Package save implements JSON serialization and deserialization of the
// world state. The snapshot covers the entire world — rooms, registries,
// condition and event tables, armed events, inventory, location — so a
// load reproduces an observably identical game. The turn log is
// transient and not persisted.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/halvard/wyrmgate/types"

	"github.com/halvard/wyrmgate/engine/state"
)

// Version is the current snapshot format version.
const Version = 1

// Snapshot is the JSON save format. Id sets are stored as sorted slices
// so snapshots are stable byte-for-byte across saves of the same state.
type Snapshot struct {
	Version      int                  `json:"version"`
	Loc          int                  `json:"loc"`
	Inventory    []int                `json:"inventory"`
	Recipes      map[int]int          `json:"recipes,omitempty"`
	Rooms        []RoomSnapshot       `json:"rooms"`
	Entities     map[int]types.Entity `json:"entities"`
	Actors       map[int]types.Actor  `json:"actors,omitempty"`
	ActiveEvents []int                `json:"active_events"`
	Events       []types.Event        `json:"events"`
	Conditions   []types.Condition    `json:"conditions"`
	FileName     string               `json:"file_name"`
	Dead         bool                 `json:"dead,omitempty"`
}

// RoomSnapshot is the save form of a room.
type RoomSnapshot struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Entities    []int                   `json:"entities,omitempty"`
	Actors      []int                   `json:"actors,omitempty"`
	Exits       map[types.Direction]int `json:"exits,omitempty"`
}

// Marshal serializes the world state to JSON bytes.
func Marshal(s *types.State) ([]byte, error) {
	snap := Snapshot{
		Version:      Version,
		Loc:          s.Loc,
		Inventory:    state.SortedIDs(s.Inventory),
		Recipes:      s.Recipes,
		Entities:     s.Entities,
		Actors:       s.Actors,
		ActiveEvents: state.SortedIDs(s.ActiveEvents),
		Events:       s.Events,
		Conditions:   s.Conditions,
		FileName:     s.FileName,
		Dead:         s.Dead,
	}
	for _, room := range s.Rooms {
		snap.Rooms = append(snap.Rooms, RoomSnapshot{
			Name:        room.Name,
			Description: room.Description,
			Entities:    state.SortedIDs(room.Entities),
			Actors:      state.SortedIDs(room.Actors),
			Exits:       room.Exits,
		})
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Unmarshal deserializes JSON bytes into a fresh world state. A corrupt
// or schema-mismatched snapshot returns an error and no state; callers
// keep whatever state they already had.
func Unmarshal(data []byte) (*types.State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if len(snap.Rooms) == 0 {
		return nil, fmt.Errorf("snapshot has no rooms")
	}
	if snap.Loc < 0 || snap.Loc >= len(snap.Rooms) {
		return nil, fmt.Errorf("snapshot location %d out of range", snap.Loc)
	}

	s := &types.State{
		Loc:          snap.Loc,
		Inventory:    toSet(snap.Inventory),
		Recipes:      snap.Recipes,
		Entities:     snap.Entities,
		Actors:       snap.Actors,
		ActiveEvents: toSet(snap.ActiveEvents),
		Events:       snap.Events,
		Conditions:   snap.Conditions,
		FileName:     snap.FileName,
		Dead:         snap.Dead,
	}
	for _, room := range snap.Rooms {
		s.Rooms = append(s.Rooms, types.Room{
			Name:        room.Name,
			Description: room.Description,
			Entities:    toSet(room.Entities),
			Actors:      toSet(room.Actors),
			Exits:       room.Exits,
		})
	}

	// Ensure maps are never nil after load.
	if s.Recipes == nil {
		s.Recipes = map[int]int{}
	}
	if s.Entities == nil {
		s.Entities = map[int]types.Entity{}
	}
	if s.Actors == nil {
		s.Actors = map[int]types.Actor{}
	}
	if s.FileName == "" {
		s.FileName = state.DefaultSaveFile
	}
	return s, nil
}

// toSet converts an id slice back into a set. Always non-nil.
func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
