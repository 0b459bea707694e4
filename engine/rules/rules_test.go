package rules

import (
	"testing"

	"github.com/halvard/wyrmgate/types"
)

// evalWorld builds a two-room world with one entity in inventory and one
// registered actor, used by the leaf tests.
func evalWorld() *types.State {
	return &types.State{
		Loc:       1,
		Inventory: map[int]bool{7: true},
		Rooms: []types.Room{
			{Name: "Cell"},
			{Name: "Yard", Actors: map[int]bool{}},
		},
		Actors: map[int]types.Actor{3: {Name: "Warden"}},
	}
}

func TestEval_Location(t *testing.T) {
	s := evalWorld()
	s.Conditions = []types.Condition{
		types.AtLocation(1),
		types.AtLocation(0),
		types.NotAtLocation(0),
		types.NotAtLocation(1),
	}

	cases := []struct {
		idx  int
		want bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
	}
	for _, tc := range cases {
		if got := Eval(s, tc.idx, types.None()); got != tc.want {
			t.Errorf("Eval(cond %d) = %v, want %v", tc.idx, got, tc.want)
		}
	}
}

func TestEval_CommandIs(t *testing.T) {
	s := evalWorld()
	s.Conditions = []types.Condition{
		types.CommandIs(types.Examine("bed")),
		types.CommandIsNot(types.Examine("bed")),
	}

	cases := []struct {
		name    string
		cmd     types.Command
		want    bool
		wantNot bool
	}{
		{"exact match", types.Examine("bed"), true, false},
		{"different noun", types.Examine("door"), false, true},
		{"different verb", types.Take("bed"), false, true},
		{"none", types.None(), false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eval(s, 0, tc.cmd); got != tc.want {
				t.Errorf("CommandIs = %v, want %v", got, tc.want)
			}
			if got := Eval(s, 1, tc.cmd); got != tc.wantNot {
				t.Errorf("CommandIsNot = %v, want %v", got, tc.wantNot)
			}
		})
	}
}

func TestEval_Inventory(t *testing.T) {
	s := evalWorld()
	s.Conditions = []types.Condition{
		types.InInventory(7),
		types.InInventory(8),
		types.NotInInventory(8),
		types.NotInInventory(7),
	}

	for idx, want := range map[int]bool{0: true, 1: false, 2: true, 3: false} {
		if got := Eval(s, idx, types.None()); got != want {
			t.Errorf("Eval(cond %d) = %v, want %v", idx, got, want)
		}
	}
}

func TestEval_ActorChecksRegistryNotRoom(t *testing.T) {
	s := evalWorld()
	s.Conditions = []types.Condition{
		types.ActorExists(3),
		types.ActorExists(4),
	}

	// Actor 3 exists in the registry but is in no room; the condition
	// still holds because it checks existence, not presence.
	if !Eval(s, 0, types.None()) {
		t.Error("expected registered actor to satisfy the condition")
	}
	if Eval(s, 1, types.None()) {
		t.Error("expected unregistered actor to fail the condition")
	}

	delete(s.Actors, 3)
	if Eval(s, 0, types.None()) {
		t.Error("expected removed actor to fail the condition")
	}
}

func TestEval_Combinators(t *testing.T) {
	s := evalWorld()
	// Indices 0 and 1 are the fixed truth inputs: 0 is true (player is
	// at room 1), 1 is false.
	s.Conditions = []types.Condition{
		types.AtLocation(1), // 0: true
		types.AtLocation(0), // 1: false
		types.And(0, 0),     // 2
		types.And(0, 1),     // 3
		types.Or(1, 0),      // 4
		types.Or(1, 1),      // 5
		types.NotAnd(0, 1),  // 6
		types.NotAnd(0, 0),  // 7
		types.NotOr(1, 1),   // 8
		types.NotOr(0, 1),   // 9
		types.NotOr(1, 0),   // 10
	}

	cases := []struct {
		name string
		idx  int
		want bool
	}{
		{"and true/true", 2, true},
		{"and true/false", 3, false},
		{"or false/true", 4, true},
		{"or false/false", 5, false},
		{"notand one false is true", 6, true},
		{"notand both true is false", 7, false},
		{"notor both false is true", 8, true},
		{"notor left true is false", 9, false},
		{"notor right true is false", 10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eval(s, tc.idx, types.None()); got != tc.want {
				t.Errorf("Eval(cond %d) = %v, want %v", tc.idx, got, tc.want)
			}
		})
	}
}

func TestEval_SharedSubcondition(t *testing.T) {
	// Two combinators alias the same leaf; evaluating one must not
	// disturb the other.
	s := evalWorld()
	s.Conditions = []types.Condition{
		types.CommandIs(types.Use("coin")), // 0, shared
		types.AtLocation(1),                // 1
		types.AtLocation(0),                // 2
		types.And(0, 1),                    // 3
		types.And(0, 2),                    // 4
	}

	cmd := types.Use("coin")
	if !Eval(s, 3, cmd) {
		t.Error("expected shared leaf to satisfy the first combinator")
	}
	if Eval(s, 4, cmd) {
		t.Error("expected second combinator to fail on its own leaf")
	}
	if !Eval(s, 3, cmd) {
		t.Error("expected re-evaluation to be stable")
	}
}

func TestEval_DeepNesting(t *testing.T) {
	s := evalWorld()
	// ((holding 7 AND at 1) AND use coin) mirrors the vending trigger
	// shape used by authored worlds.
	s.Conditions = []types.Condition{
		types.InInventory(7),               // 0
		types.AtLocation(1),                // 1
		types.CommandIs(types.Use("coin")), // 2
		types.And(0, 1),                    // 3
		types.And(2, 3),                    // 4
	}

	if !Eval(s, 4, types.Use("coin")) {
		t.Error("expected nested conjunction to hold")
	}
	if Eval(s, 4, types.Use("lever")) {
		t.Error("expected wrong command to fail the nested conjunction")
	}

	s.Loc = 0
	if Eval(s, 4, types.Use("coin")) {
		t.Error("expected wrong location to fail the nested conjunction")
	}
}
