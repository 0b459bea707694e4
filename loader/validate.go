package loader

import (
	"fmt"
	"strings"

	"github.com/halvard/wyrmgate/types"
)

// ValidationError collects all referential problems in an authored world.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// validate checks a compiled world for referential integrity: every
// room, entity, actor, condition, and event index an authored table
// references must exist, and the condition graph must be acyclic.
// Evaluation trusts these invariants and does not re-check them.
func validate(s *types.State) error {
	ve := &ValidationError{}

	if s.Loc < 0 || s.Loc >= len(s.Rooms) {
		ve.addf("start room %d out of range", s.Loc)
	}

	for id, room := range s.Rooms {
		for dir, target := range room.Exits {
			if target < 0 || target >= len(s.Rooms) {
				ve.addf("room %d exit %s points to undefined room %d", id, dir, target)
			}
		}
		for eid := range room.Entities {
			if _, ok := s.Entities[eid]; !ok {
				ve.addf("room %d references undefined entity %d", id, eid)
			}
		}
		for aid := range room.Actors {
			if _, ok := s.Actors[aid]; !ok {
				ve.addf("room %d references undefined actor %d", id, aid)
			}
		}
	}

	for in, out := range s.Recipes {
		if _, ok := s.Entities[in]; !ok {
			ve.addf("recipe input references undefined entity %d", in)
		}
		if _, ok := s.Entities[out]; !ok {
			ve.addf("recipe output references undefined entity %d", out)
		}
	}

	for i, cond := range s.Conditions {
		validateCondition(i, cond, s, ve)
	}
	detectConditionCycles(s, ve)

	for i, ev := range s.Events {
		if ev.Condition < 0 || ev.Condition >= len(s.Conditions) {
			ve.addf("event %d condition index %d out of range", i, ev.Condition)
		}
		for _, cmd := range ev.Commands {
			validateEventCommand(i, cmd, s, ve)
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateCondition(idx int, cond types.Condition, s *types.State, ve *ValidationError) {
	switch cond.Kind {
	case types.CondLocation, types.CondNotLocation:
		if cond.ID < 0 || cond.ID >= len(s.Rooms) {
			ve.addf("condition %d references undefined room %d", idx, cond.ID)
		}
	case types.CondInInventory, types.CondNotInInventory:
		if _, ok := s.Entities[cond.ID]; !ok {
			ve.addf("condition %d references undefined entity %d", idx, cond.ID)
		}
	case types.CondActor:
		// Actor conditions test registry-wide existence, and authored
		// worlds may remove the actor later; the id only has to be
		// known at load time.
		if _, ok := s.Actors[cond.ID]; !ok {
			ve.addf("condition %d references undefined actor %d", idx, cond.ID)
		}
	case types.CondAnd, types.CondOr, types.CondNotAnd, types.CondNotOr:
		for _, op := range []int{cond.Left, cond.Right} {
			if op < 0 || op >= len(s.Conditions) {
				ve.addf("condition %d operand %d out of range", idx, op)
			}
		}
	}
}

// detectConditionCycles walks the combinator edges. Evaluation recurses
// without a cycle guard, so a cycle in authored data would hang the
// game; refusing it at load time keeps that a startup error.
func detectConditionCycles(s *types.State, ve *ValidationError) {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	marks := make([]int, len(s.Conditions))

	var visit func(idx int) bool
	visit = func(idx int) bool {
		if idx < 0 || idx >= len(s.Conditions) {
			return false // reported by validateCondition
		}
		switch marks[idx] {
		case inStack:
			return true
		case done:
			return false
		}
		marks[idx] = inStack
		cond := s.Conditions[idx]
		switch cond.Kind {
		case types.CondAnd, types.CondOr, types.CondNotAnd, types.CondNotOr:
			if visit(cond.Left) || visit(cond.Right) {
				return true
			}
		}
		marks[idx] = done
		return false
	}

	for i := range s.Conditions {
		if marks[i] == unvisited && visit(i) {
			ve.addf("condition %d participates in a cycle", i)
		}
	}
}

func validateEventCommand(event int, cmd types.Command, s *types.State, ve *ValidationError) {
	switch cmd.Kind {
	case types.CmdAddItemToRoom, types.CmdConsume:
		if _, ok := s.Entities[cmd.ID]; !ok {
			ve.addf("event %d command %s references undefined entity %d", event, cmd.Kind, cmd.ID)
		}
	case types.CmdRemoveActor:
		if _, ok := s.Actors[cmd.ID]; !ok {
			ve.addf("event %d command %s references undefined actor %d", event, cmd.Kind, cmd.ID)
		}
	case types.CmdAddExit:
		if cmd.ID < 0 || cmd.ID >= len(s.Rooms) {
			ve.addf("event %d adds an exit to undefined room %d", event, cmd.ID)
		}
	case types.CmdActivateEvent, types.CmdDeactivateEvent:
		if cmd.ID < 0 || cmd.ID >= len(s.Events) {
			ve.addf("event %d references undefined event %d", event, cmd.ID)
		}
	}
}
