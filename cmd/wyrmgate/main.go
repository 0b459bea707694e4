// Wyrmgate is a turn-based text adventure with a declarative
// condition/event engine.
// Usage: wyrmgate [--game <FILE>] [--world <DIR>] [--test] [--plain] [-d]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/halvard/wyrmgate/cli"
	"github.com/halvard/wyrmgate/engine"
	"github.com/halvard/wyrmgate/engine/save"
	"github.com/halvard/wyrmgate/engine/state"
	"github.com/halvard/wyrmgate/loader"
	"github.com/halvard/wyrmgate/tui"
	"github.com/halvard/wyrmgate/types"
)

func main() {
	var (
		gameFile = pflag.StringP("game", "g", state.DefaultSaveFile,
			"save file name")
		debug = pflag.CountP("debug", "d",
			"increase debug verbosity (repeatable)")
		testMode = pflag.BoolP("test", "t", false,
			"start a fresh world, skip loading the save file")
		plain = pflag.Bool("plain", false,
			"force the plain line-mode front end")
		worldDir = pflag.String("world", "",
			"load an authored Lua world from this directory")
	)
	pflag.Parse()

	logger := zap.NewNop()
	if *debug > 0 {
		cfg := zap.NewDevelopmentConfig()
		if *debug == 1 {
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
	}

	newWorld, err := worldFactory(*worldDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	s := newWorld()
	if !*testMode {
		if data, rerr := os.ReadFile(*gameFile); rerr == nil {
			if loaded, uerr := save.Unmarshal(data); uerr == nil {
				s = loaded
			} else {
				fmt.Fprintf(os.Stderr, "Save file %s seems corrupt, starting fresh.\n", *gameFile)
			}
		}
	}
	s.FileName = *gameFile

	eng := engine.New(s)

	if *plain || !isTerminal() {
		c := cli.New(eng, newWorld)
		c.GameFile = *gameFile
		c.Logger = logger
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(eng, newWorld); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// worldFactory returns a function producing fresh copies of the world:
// the built-in dungeon, or an authored Lua world when dir is set. The
// authored world is loaded once and cloned through the snapshot codec,
// so restarts never re-run Lua.
func worldFactory(dir string) (func() *types.State, error) {
	if dir == "" {
		return state.New, nil
	}

	blueprint, err := loader.Load(dir)
	if err != nil {
		return nil, err
	}
	data, err := save.Marshal(blueprint)
	if err != nil {
		return nil, err
	}
	return func() *types.State {
		s, err := save.Unmarshal(data)
		if err != nil {
			// The snapshot was produced from a validated world; a
			// decode failure here is a programming error.
			panic(err)
		}
		return s
	}, nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
