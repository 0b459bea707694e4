package events

import (
	"testing"

	"github.com/halvard/wyrmgate/engine/state"
	"github.com/halvard/wyrmgate/types"
)

// triggerWorld builds a one-room world with two events: event 0 fires on
// "examine bed" at room 0, event 1 fires on "use lever" anywhere.
func triggerWorld() *types.State {
	return &types.State{
		Rooms: []types.Room{{Name: "Chamber"}},
		Conditions: []types.Condition{
			types.AtLocation(0),                   // 0
			types.CommandIs(types.Examine("bed")), // 1
			types.And(0, 1),                       // 2
			types.CommandIs(types.Use("lever")),   // 3
		},
		Events: []types.Event{
			{
				Condition: 2,
				Message:   "A coin drops from the mattress.",
				Commands:  []types.Command{types.AddItemToRoom(9)},
			},
			{
				Condition: 3,
				Message:   "The lever grinds.",
			},
		},
		ActiveEvents: map[int]bool{0: true, 1: true},
	}
}

func TestScan_FiresMatchingEvent(t *testing.T) {
	s := triggerWorld()

	stack, fired := Scan(s, types.Examine("bed"))
	if !fired {
		t.Fatal("expected the bed event to fire")
	}
	if len(stack) != 1 || stack[0] != types.AddItemToRoom(9) {
		t.Errorf("expected the event's command stack, got %v", stack)
	}

	lines := state.DrainLog(s)
	if len(lines) != 1 || lines[0] != "A coin drops from the mattress." {
		t.Errorf("expected the event message in the log, got %v", lines)
	}
}

func TestScan_NoMatch(t *testing.T) {
	s := triggerWorld()

	stack, fired := Scan(s, types.Take("bed"))
	if fired {
		t.Fatal("expected no event to fire")
	}
	if stack != nil {
		t.Errorf("expected nil stack, got %v", stack)
	}
	if lines := state.DrainLog(s); len(lines) != 0 {
		t.Errorf("expected empty log, got %v", lines)
	}
}

func TestScan_DisarmedEventDoesNotFire(t *testing.T) {
	s := triggerWorld()
	state.DeactivateEvent(s, 0)

	if _, fired := Scan(s, types.Examine("bed")); fired {
		t.Error("expected disarmed event not to fire")
	}

	state.ActivateEvent(s, 0)
	if _, fired := Scan(s, types.Examine("bed")); !fired {
		t.Error("expected rearmed event to fire")
	}
}

func TestScan_AtMostOneEventFires(t *testing.T) {
	// Both armed events share a condition that the command satisfies;
	// exactly one message must land per scan, whichever the map walk
	// reaches first.
	s := &types.State{
		Rooms: []types.Room{{Name: "Hall"}},
		Conditions: []types.Condition{
			types.CommandIs(types.Look()),
		},
		Events: []types.Event{
			{Condition: 0, Message: "first"},
			{Condition: 0, Message: "second"},
		},
		ActiveEvents: map[int]bool{0: true, 1: true},
	}

	if _, fired := Scan(s, types.Look()); !fired {
		t.Fatal("expected an event to fire")
	}
	lines := state.DrainLog(s)
	if len(lines) != 1 {
		t.Fatalf("expected exactly one message, got %v", lines)
	}
	if lines[0] != "first" && lines[0] != "second" {
		t.Errorf("unexpected message %q", lines[0])
	}
}

func TestScan_EventWithEmptyStack(t *testing.T) {
	s := triggerWorld()

	stack, fired := Scan(s, types.Use("lever"))
	if !fired {
		t.Fatal("expected the lever event to fire")
	}
	if len(stack) != 0 {
		t.Errorf("expected empty stack, got %v", stack)
	}
	lines := state.DrainLog(s)
	if len(lines) != 1 || lines[0] != "The lever grinds." {
		t.Errorf("expected the lever message, got %v", lines)
	}
}
