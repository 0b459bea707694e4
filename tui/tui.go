package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/wyrmgate/engine"
	"github.com/halvard/wyrmgate/engine/save"
	"github.com/halvard/wyrmgate/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the wyrmgate TUI.
type Model struct {
	engine   *engine.Engine
	newWorld func() *types.State
	gameFile string

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width     int
	height    int
	ready     bool
	quitting  bool
	turnCount int
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string   // echoed player input (empty for intro)
	lines    []string // output lines
	isSystem bool     // true for system messages
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, newWorld func() *types.State) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:   eng,
		newWorld: newWorld,
		gameFile: eng.State.FileName,
		input:    ti,
		history:  NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, newWorld func() *types.State) error {
	m := New(eng, newWorld)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the welcome text and
// the first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []string{
			"Welcome to the dungeons of Wyrmgate!",
			"Type 'help' to briefly view possible actions.",
			"",
		}
		result := m.engine.Step("look")
		lines = append(lines, result.Output...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Game command. The engine expects pre-lowercased input.
	result := m.engine.Step(strings.ToLower(input))
	m.turnCount++

	output := result.Output
	switch result.Outcome.Kind {
	case types.OutcomeQuit:
		m = m.appendOutput(gameOutputMsg{input: input, lines: output})
		m.quitting = true
		return m, tea.Quit

	case types.OutcomeSave:
		output = append(output, m.doSave(result.Outcome.File)...)

	case types.OutcomeLoad:
		output = append(output, m.doLoad(result.Outcome.File)...)

	case types.OutcomeGameOver:
		// The world is flagged dead; the parser now only allows load
		// and quit, so no modal prompt is needed here.
		output = append(output,
			"You are dead.",
			"Load a saved game with 'load', restart with /restart, or quit.")

	case types.OutcomeWon:
		output = append(output,
			"!!!Congratulations, you won the game!!!",
			"Start over with /restart, or quit with 'quit'.")
	}

	m = m.appendOutput(gameOutputMsg{input: input, lines: output})
	return m, nil
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/restart":
		m.engine.Replace(m.newWorld())
		m.turnCount = 0
		out := []string{"Started a fresh game."}
		return append(out, m.engine.Step("look").Output...), false

	case "/help":
		return []string{
			"/restart — Start a fresh game",
			"/quit    — Exit",
			"Game verbs: look, go, take, drop, inventory, examine, use,",
			"eat, attack, craft, save, load, help, quit",
			"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
		}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help.", input)}, false
	}
}

// doSave writes the snapshot the Save outcome requested.
func (m *Model) doSave(name string) []string {
	if name == "" {
		name = m.engine.State.FileName
	}
	m.gameFile = name

	data, err := save.Marshal(m.engine.State)
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	return []string{fmt.Sprintf("Game saved to %s.", name)}
}

// doLoad replaces the world with the requested snapshot, keeping the
// current world when the file is missing or corrupt.
func (m *Model) doLoad(name string) []string {
	if name == "" {
		name = m.engine.State.FileName
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	s, err := save.Unmarshal(data)
	if err != nil {
		return []string{fmt.Sprintf("The file %s seems corrupt, keeping the current game.", name)}
	}

	m.gameFile = name
	m.engine.Replace(s)
	out := []string{fmt.Sprintf("Game loaded from %s.", name)}
	return append(out, m.engine.Step("look").Output...)
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
