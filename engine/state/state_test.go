package state

import (
	"reflect"
	"testing"

	"github.com/halvard/wyrmgate/types"
)

func twoRoomWorld() *types.State {
	return &types.State{
		Loc:       0,
		Inventory: map[int]bool{},
		Entities: map[int]types.Entity{
			1: {Name: "A rope", Aliases: []string{"rope"}},
			2: {Name: "A torch", Aliases: []string{"torch", "light"}},
		},
		Rooms: []types.Room{
			{
				Name:     "Pit",
				Entities: map[int]bool{1: true, 2: true},
				Exits:    map[types.Direction]int{types.East: 1},
			},
			{Name: "Ledge"},
		},
	}
}

func TestDrainLog_SplitsAndClears(t *testing.T) {
	s := &types.State{}
	Log(s, "line one")
	Logf(s, "count %d", 2)
	Log(s, "a\nb\nc")

	got := DrainLog(s)
	want := []string{"line one", "count 2", "a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DrainLog = %v, want %v", got, want)
	}
	if again := DrainLog(s); len(again) != 0 {
		t.Errorf("expected the log cleared, got %v", again)
	}
}

func TestExit(t *testing.T) {
	s := twoRoomWorld()

	if target, ok := Exit(s, types.East); !ok || target != 1 {
		t.Errorf("Exit(east) = %d, %v; want 1, true", target, ok)
	}
	if _, ok := Exit(s, types.North); ok {
		t.Error("expected no north exit")
	}

	SetLocation(s, 1)
	if _, ok := Exit(s, types.East); ok {
		t.Error("expected no exits from the ledge")
	}
}

func TestTakeFromRoom(t *testing.T) {
	s := twoRoomWorld()

	if !TakeFromRoom(s, "rope") {
		t.Fatal("expected the rope to be takeable")
	}
	if !s.Inventory[1] || s.Rooms[0].Entities[1] {
		t.Error("expected the rope moved to the inventory")
	}

	// Second alias of the torch works too.
	if !TakeFromRoom(s, "light") {
		t.Fatal("expected the torch to match its second alias")
	}

	if TakeFromRoom(s, "rope") {
		t.Error("expected nothing left to take")
	}
}

func TestFindAndRemoveInventory(t *testing.T) {
	s := twoRoomWorld()
	AddToInventory(s, 2)

	if id, ok := FindInventory(s, "torch"); !ok || id != 2 {
		t.Errorf("FindInventory(torch) = %d, %v; want 2, true", id, ok)
	}
	if _, ok := FindInventory(s, "rope"); ok {
		t.Error("expected the rope not held")
	}

	id, e, ok := RemoveFromInventory(s, "light")
	if !ok || id != 2 || e.Name != "A torch" {
		t.Errorf("RemoveFromInventory = %d, %q, %v", id, e.Name, ok)
	}
	if _, _, ok := RemoveFromInventory(s, "light"); ok {
		t.Error("expected the torch already removed")
	}
}

func TestConsumeFromInventory(t *testing.T) {
	s := twoRoomWorld()
	AddToInventory(s, 1)

	ConsumeFromInventory(s, 1)
	if s.Inventory[1] {
		t.Error("expected the rope consumed")
	}
	lines := DrainLog(s)
	if len(lines) != 1 || lines[0] != "Consumed A rope." {
		t.Errorf("unexpected narration %v", lines)
	}

	// Consuming an unknown id removes nothing and says nothing.
	ConsumeFromInventory(s, 99)
	if lines := DrainLog(s); len(lines) != 0 {
		t.Errorf("expected silence, got %v", lines)
	}
}

func TestAddEntityToRoomInitializesSet(t *testing.T) {
	s := twoRoomWorld()
	SetLocation(s, 1)

	AddEntityToRoom(s, 1)
	if !s.Rooms[1].Entities[1] {
		t.Error("expected the entity added to the ledge")
	}
}

func TestEventArming(t *testing.T) {
	s := &types.State{}

	ActivateEvent(s, 3)
	if !s.ActiveEvents[3] {
		t.Error("expected event 3 armed")
	}
	DeactivateEvent(s, 3)
	if s.ActiveEvents[3] {
		t.Error("expected event 3 disarmed")
	}
	// Disarming an unarmed event is a no-op.
	DeactivateEvent(s, 9)
}

func TestSortedIDs(t *testing.T) {
	got := SortedIDs(map[int]bool{5: true, 1: true, 3: true})
	if !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("SortedIDs = %v", got)
	}
	if got := SortedIDs(nil); len(got) != 0 {
		t.Errorf("SortedIDs(nil) = %v", got)
	}
}

func TestNew_DefaultWorldShape(t *testing.T) {
	s := New()

	if s.Loc != 0 {
		t.Errorf("expected the game to start at the entrance, got %d", s.Loc)
	}
	if len(s.Rooms) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(s.Rooms))
	}
	if len(s.Inventory) != 0 {
		t.Error("expected an empty starting inventory")
	}
	if s.FileName != DefaultSaveFile {
		t.Errorf("expected the default save file, got %q", s.FileName)
	}

	// The vending machine is scenery: visible, never takeable.
	if len(s.Entities[3].Aliases) != 0 {
		t.Error("expected the vending machine to have no aliases")
	}

	// Room geometry: entrance -> corridor -> chamber, treasure above.
	if s.Rooms[0].Exits[types.North] != 1 {
		t.Error("expected the entrance to open north into the corridor")
	}
	if s.Rooms[1].Exits[types.East] != 2 {
		t.Error("expected the corridor to open east into the chamber")
	}
	if s.Rooms[3].Exits[types.South] != 2 {
		t.Error("expected the treasure room to open south into the chamber")
	}
	if _, ok := s.Rooms[2].Exits[types.North]; ok {
		t.Error("expected the chamber's north exit to start closed")
	}

	// Referential integrity: every reference resolves.
	for i, room := range s.Rooms {
		for dir, target := range room.Exits {
			if target < 0 || target >= len(s.Rooms) {
				t.Errorf("room %d exit %s leads out of range", i, dir)
			}
		}
		for id := range room.Entities {
			if _, ok := s.Entities[id]; !ok {
				t.Errorf("room %d holds unknown entity %d", i, id)
			}
		}
		for id := range room.Actors {
			if _, ok := s.Actors[id]; !ok {
				t.Errorf("room %d holds unknown actor %d", i, id)
			}
		}
	}
	for id := range s.ActiveEvents {
		if id < 0 || id >= len(s.Events) {
			t.Errorf("armed event %d out of range", id)
		}
	}
	for i, ev := range s.Events {
		if ev.Condition < 0 || ev.Condition >= len(s.Conditions) {
			t.Errorf("event %d condition out of range", i)
		}
	}
	for in, out := range s.Recipes {
		if _, ok := s.Entities[in]; !ok {
			t.Errorf("recipe input %d unknown", in)
		}
		if _, ok := s.Entities[out]; !ok {
			t.Errorf("recipe output %d unknown", out)
		}
	}
}

func TestCraftHelp(t *testing.T) {
	s := New()

	// Nothing held: nothing to say.
	CraftHelp(s)
	if lines := DrainLog(s); len(lines) != 0 {
		t.Errorf("expected silence, got %v", lines)
	}

	AddToInventory(s, 1)
	CraftHelp(s)
	lines := DrainLog(s)
	if len(lines) != 1 || lines[0] != "A stack of gold ---> armor" {
		t.Errorf("unexpected craft help %v", lines)
	}
}
