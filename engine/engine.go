// Package engine provides the Step orchestrator that wires together
// parsing, the event trigger scan, and command execution into a single
// turn. The engine owns the world state exclusively; one turn runs to
// completion before the next input is accepted.
package engine

import (
	"github.com/halvard/wyrmgate/types"

	"github.com/halvard/wyrmgate/engine/effects"
	"github.com/halvard/wyrmgate/engine/events"
	"github.com/halvard/wyrmgate/engine/parser"
	"github.com/halvard/wyrmgate/engine/state"
)

// Engine holds the mutable world state for one game.
type Engine struct {
	State *types.State
}

// New creates an engine around the given world state.
func New(s *types.State) *Engine {
	return &Engine{State: s}
}

// Replace swaps in a different world state, used by front ends after a
// load or a fresh restart.
func (e *Engine) Replace(s *types.State) {
	e.State = s
}

// Step processes one line of player input and returns the drained
// narration plus the outcome signal.
//
// Pipeline: parse the line, scan the armed events against the parsed
// command, then either execute the fired event's command stack in place
// of the player's command or execute the player's command directly.
// When a stack runs, outcomes fold: the last non-None signal wins.
func (e *Engine) Step(input string) types.Result {
	cmd := parser.Parse(input, e.State)

	outcome := types.Outcome{Kind: types.OutcomeNone}
	if stack, fired := events.Scan(e.State, cmd); fired {
		for _, c := range stack {
			if out := effects.Apply(e.State, c); out.Kind != types.OutcomeNone {
				outcome = out
			}
		}
	} else {
		outcome = effects.Apply(e.State, cmd)
	}

	if outcome.Kind == types.OutcomeGameOver {
		e.State.Dead = true
	}

	return types.Result{
		Output:  state.DrainLog(e.State),
		Outcome: outcome,
	}
}
