package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/halvard/wyrmgate/engine/state"
	"github.com/halvard/wyrmgate/types"
)

// renderStatusBar produces a full-width inverted status line showing
// current room, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	room := s.Rooms[s.Loc]

	var dirs []string
	for _, d := range types.Directions {
		if _, ok := room.Exits[d]; ok {
			dirs = append(dirs, string(d))
		}
	}
	left := fmt.Sprintf(" %s | Exits: %s", room.Name, strings.Join(dirs, ","))
	if s.Dead {
		left = fmt.Sprintf(" %s | DEAD", room.Name)
	}

	right := fmt.Sprintf("T:%d ", m.turnCount)
	if len(s.Inventory) > 0 {
		var names []string
		for _, id := range state.SortedIDs(s.Inventory) {
			if e, ok := s.Entities[id]; ok {
				names = append(names, e.Name)
			}
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), m.turnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(s.Inventory), m.turnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
