// Package loader loads Lua world definitions into a world state at
// startup. Authors declare rooms, entities, actors, recipes, conditions,
// and events with the fixed constructor vocabulary registered by this
// package — the Lua VM is sandboxed, runs only at load time, and is
// discarded afterwards. There is no runtime scripting.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/halvard/wyrmgate/types"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	game       *lua.LTable
	rooms      map[int]*lua.LTable
	roomOrder  []int
	entities   map[int]*lua.LTable
	actors     map[int]*lua.LTable
	recipes    map[int]int
	conditions []*lua.LTable
	events     []*lua.LTable
}

// Load reads all .lua files from dir, compiles them into a world state,
// and validates every id and index the authored tables reference.
func Load(dir string) (*types.State, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading world directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sortLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{
		rooms:    map[int]*lua.LTable{},
		entities: map[int]*lua.LTable{},
		actors:   map[int]*lua.LTable{},
		recipes:  map[int]int{},
	}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	s, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling world data: %w", err)
	}

	if err := validate(s); err != nil {
		return nil, err
	}

	return s, nil
}

// sortLuaFiles orders files so that world.lua runs first, the rest
// alphabetically. Conditions and events append in execution order, so
// the order matters for index references across files.
func sortLuaFiles(files []string) {
	for i, f := range files {
		if f == "world.lua" && i != 0 {
			copy(files[1:i+1], files[:i])
			files[0] = f
			break
		}
	}
}

// openSafeLibs opens only the safe subset of the Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could reach outside the VM.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
