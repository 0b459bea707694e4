// Package events implements the armed-event trigger scan that runs once
// per turn, before the player's command executes.
package events

import (
	"github.com/halvard/wyrmgate/types"

	"github.com/halvard/wyrmgate/engine/rules"
	"github.com/halvard/wyrmgate/engine/state"
)

// Scan checks the armed events against the parsed command. The first
// event whose condition holds fires: its message is narrated and its
// command stack is returned, to be executed in place of the player's
// command. At most one event fires per turn.
//
// The armed set is unordered, so when several events are simultaneously
// satisfiable, which one fires is not defined. Authored worlds must not
// depend on firing order.
func Scan(s *types.State, cmd types.Command) ([]types.Command, bool) {
	for id := range s.ActiveEvents {
		ev := s.Events[id]
		if rules.Eval(s, ev.Condition, cmd) {
			state.Log(s, ev.Message)
			return ev.Commands, true
		}
	}
	return nil, false
}
