package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/halvard/wyrmgate/engine/state"
	"github.com/halvard/wyrmgate/types"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getBool returns a bool field from a Lua table, or def if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// intList reads an array-style Lua table of numbers.
func intList(tbl *lua.LTable) []int {
	if tbl == nil {
		return nil
	}
	var out []int
	tbl.ForEach(func(_, v lua.LValue) {
		if n, ok := v.(lua.LNumber); ok {
			out = append(out, int(n))
		}
	})
	return out
}

// stringList reads an array-style Lua table of strings.
func stringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

// intSet reads an array-style Lua table of numbers into a set.
func intSet(tbl *lua.LTable) map[int]bool {
	ids := intList(tbl)
	if len(ids) == 0 {
		return map[int]bool{}
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// compile converts the collected Lua tables into a world state.
func compile(coll *collector) (*types.State, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game block defined")
	}

	s := &types.State{
		Loc:          getInt(coll.game, "start"),
		Inventory:    map[int]bool{},
		Recipes:      coll.recipes,
		Entities:     map[int]types.Entity{},
		Actors:       map[int]types.Actor{},
		ActiveEvents: map[int]bool{},
		FileName:     getString(coll.game, "save_file"),
	}
	if s.FileName == "" {
		s.FileName = state.DefaultSaveFile
	}

	// Rooms form a dense vector addressed by id.
	roomIDs := make([]int, 0, len(coll.rooms))
	for id := range coll.rooms {
		roomIDs = append(roomIDs, id)
	}
	sort.Ints(roomIDs)
	for want, id := range roomIDs {
		if id != want {
			return nil, fmt.Errorf("room ids must be dense starting at 0, missing %d", want)
		}
	}
	for _, id := range roomIDs {
		room, err := compileRoom(coll.rooms[id])
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", id, err)
		}
		s.Rooms = append(s.Rooms, room)
	}

	for id, tbl := range coll.entities {
		s.Entities[id] = types.Entity{
			Name:        getString(tbl, "name"),
			Description: getString(tbl, "description"),
			Aliases:     stringList(getTable(tbl, "aliases")),
		}
	}
	for id, tbl := range coll.actors {
		s.Actors[id] = types.Actor{
			Name:        getString(tbl, "name"),
			Description: getString(tbl, "description"),
			Aliases:     stringList(getTable(tbl, "aliases")),
		}
	}

	for i, tbl := range coll.conditions {
		cond, err := compileCondition(tbl)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		s.Conditions = append(s.Conditions, cond)
	}

	for i, tbl := range coll.events {
		ev, armed, err := compileEvent(tbl)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		s.Events = append(s.Events, ev)
		if armed {
			s.ActiveEvents[i] = true
		}
	}

	return s, nil
}

func compileRoom(tbl *lua.LTable) (types.Room, error) {
	room := types.Room{
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Entities:    intSet(getTable(tbl, "entities")),
		Actors:      intSet(getTable(tbl, "actors")),
		Exits:       map[types.Direction]int{},
	}
	if room.Name == "" {
		return room, fmt.Errorf("name is required")
	}

	if exits := getTable(tbl, "exits"); exits != nil {
		var err error
		exits.ForEach(func(k, v lua.LValue) {
			name, kOK := k.(lua.LString)
			target, vOK := v.(lua.LNumber)
			if !kOK || !vOK {
				err = fmt.Errorf("exits must map direction names to room ids")
				return
			}
			dir, ok := types.ParseDirection(string(name))
			if !ok {
				err = fmt.Errorf("unknown exit direction %q", string(name))
				return
			}
			room.Exits[dir] = int(target)
		})
		if err != nil {
			return room, err
		}
	}
	return room, nil
}

func compileEvent(tbl *lua.LTable) (types.Event, bool, error) {
	ev := types.Event{
		Condition: getInt(tbl, "condition"),
		Message:   getString(tbl, "message"),
	}
	if cmds := getTable(tbl, "commands"); cmds != nil {
		var err error
		cmds.ForEach(func(_, v lua.LValue) {
			cmdTbl, ok := v.(*lua.LTable)
			if !ok {
				err = fmt.Errorf("commands must be built with the command helpers")
				return
			}
			cmd, cmdErr := compileCommand(cmdTbl)
			if cmdErr != nil {
				err = cmdErr
				return
			}
			ev.Commands = append(ev.Commands, cmd)
		})
		if err != nil {
			return ev, false, err
		}
	}
	return ev, getBool(tbl, "armed", false), nil
}

// validCommandKinds are the command markers the helpers can produce.
var validCommandKinds = map[types.CommandKind]bool{
	types.CmdMove: true, types.CmdLook: true, types.CmdTake: true,
	types.CmdDrop: true, types.CmdExamine: true, types.CmdUse: true,
	types.CmdEat: true, types.CmdConsume: true, types.CmdCraft: true,
	types.CmdAttack: true, types.CmdAddItemToRoom: true,
	types.CmdAddExit: true, types.CmdRemoveActor: true,
	types.CmdActivateEvent: true, types.CmdDeactivateEvent: true,
	types.CmdGameOver: true, types.CmdWon: true,
}

func compileCommand(tbl *lua.LTable) (types.Command, error) {
	kind := types.CommandKind(getString(tbl, "kind"))
	if !validCommandKinds[kind] {
		return types.Command{}, fmt.Errorf("unknown command kind %q", kind)
	}
	cmd := types.Command{
		Kind: kind,
		Text: getString(tbl, "text"),
		ID:   getInt(tbl, "id"),
	}
	if d := getString(tbl, "dir"); d != "" {
		dir, ok := types.ParseDirection(d)
		if !ok {
			return types.Command{}, fmt.Errorf("unknown direction %q", d)
		}
		cmd.Dir = dir
	}
	return cmd, nil
}

// validConditionKinds are the condition markers the helpers can produce.
var validConditionKinds = map[types.ConditionKind]bool{
	types.CondLocation: true, types.CondNotLocation: true,
	types.CondCommandIs: true, types.CondNotCommandIs: true,
	types.CondInInventory: true, types.CondNotInInventory: true,
	types.CondActor: true, types.CondAnd: true, types.CondOr: true,
	types.CondNotAnd: true, types.CondNotOr: true,
}

func compileCondition(tbl *lua.LTable) (types.Condition, error) {
	kind := types.ConditionKind(getString(tbl, "kind"))
	if !validConditionKinds[kind] {
		return types.Condition{}, fmt.Errorf("unknown condition kind %q", kind)
	}
	cond := types.Condition{
		Kind:  kind,
		ID:    getInt(tbl, "id"),
		Left:  getInt(tbl, "left"),
		Right: getInt(tbl, "right"),
	}
	switch kind {
	case types.CondCommandIs, types.CondNotCommandIs:
		cmdTbl := getTable(tbl, "cmd")
		if cmdTbl == nil {
			return types.Condition{}, fmt.Errorf("%s requires a command term", kind)
		}
		cmd, err := compileCommand(cmdTbl)
		if err != nil {
			return types.Condition{}, err
		}
		cond.Cmd = cmd
	}
	return cond, nil
}
