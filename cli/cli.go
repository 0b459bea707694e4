// Package cli provides the plain terminal front end: the prompt loop,
// save/load file I/O, and the game-over and victory prompts. The engine
// core never touches files or the terminal; this package performs the
// I/O its outcome signals request.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/halvard/wyrmgate/engine"
	"github.com/halvard/wyrmgate/engine/save"
	"github.com/halvard/wyrmgate/types"
)

// Prompt is printed before every input line.
const Prompt = "---> "

// Welcome is printed once at startup.
const Welcome = "Welcome to the dungeons of Wyrmgate!\n" +
	"Type 'help' to briefly view possible actions.\n" +
	"Typing an action before 'help' will reveal more about its quality."

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine   *engine.Engine
	In       io.Reader
	Out      io.Writer
	GameFile string              // save file used when outcomes carry no name
	NewWorld func() *types.State // fresh world for restarts
	Logger   *zap.Logger
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, newWorld func() *types.State) *CLI {
	return &CLI{
		Engine:   eng,
		In:       os.Stdin,
		Out:      os.Stdout,
		GameFile: eng.State.FileName,
		NewWorld: newWorld,
		Logger:   zap.NewNop(),
	}
}

// Run starts the game loop: print the welcome text, describe the
// starting room, then loop prompt → input → turn → output until a
// terminal outcome or end of input.
func (c *CLI) Run() error {
	fmt.Fprintln(c.Out, Welcome)

	scanner := bufio.NewScanner(c.In)
	input := "look" // the first turn narrates the starting room

	for {
		start := time.Now()
		result := c.Engine.Step(input)
		c.printLines(result.Output)

		c.Logger.Debug("turn",
			zap.String("input", input),
			zap.Int("outcome", int(result.Outcome.Kind)),
			zap.Duration("elapsed", time.Since(start)),
		)

		switch result.Outcome.Kind {
		case types.OutcomeQuit:
			return nil

		case types.OutcomeSave:
			c.doSave(result.Outcome.File)

		case types.OutcomeLoad:
			c.doLoad(result.Outcome.File)

		case types.OutcomeGameOver:
			if !c.promptYesNo(scanner, "Would you like to try again? (yes/no): ") {
				return nil
			}
			c.restart()

		case types.OutcomeWon:
			fmt.Fprintln(c.Out, "!!!Congratulations, you won the game!!!")
			if !c.promptYesNo(scanner, "Would you like to start a new game? (yes/no): ") {
				return nil
			}
			c.Engine.Replace(c.NewWorld())
			input = "look"
			continue
		}

		line, ok := c.readLine(scanner)
		if !ok {
			return nil
		}
		input = line
	}
}

// readLine reads and lowercases one input line. Returns false at end of
// input.
func (c *CLI) readLine(scanner *bufio.Scanner) (string, bool) {
	fmt.Fprint(c.Out, "\n"+Prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.ToLower(scanner.Text()), true
}

// promptYesNo keeps asking until the player answers yes or no.
func (c *CLI) promptYesNo(scanner *bufio.Scanner, msg string) bool {
	for {
		fmt.Fprint(c.Out, msg)
		if !scanner.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "yes":
			return true
		case "no":
			return false
		}
	}
}

// restart reloads the saved game after a game over, falling back to a
// fresh world when no usable save exists.
func (c *CLI) restart() {
	data, err := os.ReadFile(c.GameFile)
	if err == nil {
		if s, uerr := save.Unmarshal(data); uerr == nil {
			c.Engine.Replace(s)
			c.printLines(c.Engine.Step("look").Output)
			return
		}
	}
	c.Logger.Debug("restart fell back to a fresh world", zap.String("file", c.GameFile))
	c.Engine.Replace(c.NewWorld())
	c.printLines(c.Engine.Step("look").Output)
}

// doSave writes the current state to the requested file. An empty name
// means the remembered filename.
func (c *CLI) doSave(name string) {
	if name == "" {
		name = c.Engine.State.FileName
	}
	c.GameFile = name

	data, err := save.Marshal(c.Engine.State)
	if err != nil {
		fmt.Fprintf(c.Out, "Save failed: %v\n", err)
		return
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Fprintf(c.Out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.Out, "Game saved to %s.\n", name)
}

// doLoad replaces the world with the snapshot in the requested file. A
// failed read or a corrupt snapshot leaves the current world untouched.
func (c *CLI) doLoad(name string) {
	if name == "" {
		name = c.Engine.State.FileName
	}

	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(c.Out, "Load failed: %v\n", err)
		return
	}
	s, err := save.Unmarshal(data)
	if err != nil {
		fmt.Fprintf(c.Out, "The file %s seems corrupt, keeping the current game.\n", name)
		c.Logger.Debug("load failed", zap.String("file", name), zap.Error(err))
		return
	}

	c.GameFile = name
	c.Engine.Replace(s)
	fmt.Fprintf(c.Out, "Game loaded from %s.\n", name)
	c.printLines(c.Engine.Step("look").Output)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}
