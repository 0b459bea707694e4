// Package rules implements the condition-tree evaluator. Conditions live
// in a flat table on the world state and reference each other by index,
// forming a DAG that events can alias-share.
package rules

import "github.com/halvard/wyrmgate/types"

// Eval evaluates the condition at index idx against the current state and
// the command just parsed. Combinators recurse through the table; the
// walk is fresh on every call, with no caching.
//
// The table is trusted authored data: an out-of-range index or a cycle
// among combinator operands is an authoring error and is not guarded
// against here (the loader validates authored worlds at load time).
func Eval(s *types.State, idx int, cmd types.Command) bool {
	cond := s.Conditions[idx]
	switch cond.Kind {
	case types.CondLocation:
		return s.Loc == cond.ID
	case types.CondNotLocation:
		return s.Loc != cond.ID
	case types.CondCommandIs:
		return cond.Cmd == cmd
	case types.CondNotCommandIs:
		return cond.Cmd != cmd
	case types.CondInInventory:
		return s.Inventory[cond.ID]
	case types.CondNotInInventory:
		return !s.Inventory[cond.ID]
	case types.CondActor:
		// Registry-wide existence, not presence in the current room.
		_, ok := s.Actors[cond.ID]
		return ok
	case types.CondAnd:
		return Eval(s, cond.Left, cmd) && Eval(s, cond.Right, cmd)
	case types.CondOr:
		return Eval(s, cond.Left, cmd) || Eval(s, cond.Right, cmd)
	case types.CondNotAnd:
		// NAND: !(left && right), not !left && !right.
		return !(Eval(s, cond.Left, cmd) && Eval(s, cond.Right, cmd))
	case types.CondNotOr:
		// NOR: !left && !right.
		return !Eval(s, cond.Left, cmd) && !Eval(s, cond.Right, cmd)
	default:
		return false
	}
}
