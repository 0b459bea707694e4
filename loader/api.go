package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the fixed authoring vocabulary as Lua globals:
// world constructors plus the condition and command helpers. The helpers
// only build marker tables; all interpretation happens in compile.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerCommandHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { start = 0, save_file = "..." }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room(id) { ... } — curried: Room(id) returns a function taking a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.rooms[id] = L.CheckTable(1)
			coll.roomOrder = append(coll.roomOrder, id)
			return 0
		}))
		return 1
	}))

	// Entity(id) { name = ..., description = ..., aliases = {...} }
	L.SetGlobal("Entity", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.entities[id] = L.CheckTable(1)
			return 0
		}))
		return 1
	}))

	// Actor(id) { name = ..., description = ..., aliases = {...} }
	L.SetGlobal("Actor", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.actors[id] = L.CheckTable(1)
			return 0
		}))
		return 1
	}))

	// Recipe(input, output) — crafting input entity id to product id.
	L.SetGlobal("Recipe", L.NewFunction(func(L *lua.LState) int {
		coll.recipes[L.CheckInt(1)] = L.CheckInt(2)
		return 0
	}))

	// Cond(term) appends a condition node and returns its index, so
	// authored files can name sub-conditions and share them.
	L.SetGlobal("Cond", L.NewFunction(func(L *lua.LState) int {
		coll.conditions = append(coll.conditions, L.CheckTable(1))
		L.Push(lua.LNumber(len(coll.conditions) - 1))
		return 1
	}))

	// Event { condition = idx, message = "...", commands = {...}, armed = true }
	// Returns the event id for cross-references in command stacks.
	L.SetGlobal("Event", L.NewFunction(func(L *lua.LState) int {
		coll.events = append(coll.events, L.CheckTable(1))
		L.Push(lua.LNumber(len(coll.events) - 1))
		return 1
	}))
}

// marker builds a {kind=..., ...} table for condition/command helpers.
func marker(L *lua.LState, kind string, fields map[string]lua.LValue) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("kind", lua.LString(kind))
	for k, v := range fields {
		tbl.RawSetString(k, v)
	}
	return tbl
}

// registerConditionHelpers registers the condition leaf and combinator
// constructors. Combinators take condition indices returned by Cond.
func registerConditionHelpers(L *lua.LState) {
	leaf := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			id := L.CheckInt(1)
			L.Push(marker(L, kind, map[string]lua.LValue{"id": lua.LNumber(id)}))
			return 1
		})
	}
	pair := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			left, right := L.CheckInt(1), L.CheckInt(2)
			L.Push(marker(L, kind, map[string]lua.LValue{
				"left":  lua.LNumber(left),
				"right": lua.LNumber(right),
			}))
			return 1
		})
	}
	cmdLeaf := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			cmd := L.CheckTable(1)
			L.Push(marker(L, kind, map[string]lua.LValue{"cmd": cmd}))
			return 1
		})
	}

	L.SetGlobal("AtLocation", leaf("location"))
	L.SetGlobal("NotAtLocation", leaf("not_location"))
	L.SetGlobal("InInventory", leaf("in_inventory"))
	L.SetGlobal("NotInInventory", leaf("not_in_inventory"))
	L.SetGlobal("ActorExists", leaf("actor"))
	L.SetGlobal("CommandIs", cmdLeaf("command_is"))
	L.SetGlobal("CommandIsNot", cmdLeaf("not_command_is"))
	L.SetGlobal("And", pair("and"))
	L.SetGlobal("Or", pair("or"))
	L.SetGlobal("NotAnd", pair("not_and"))
	L.SetGlobal("NotOr", pair("not_or"))
}

// registerCommandHelpers registers the command constructors used in
// CommandIs terms and event command stacks.
func registerCommandHelpers(L *lua.LState) {
	text := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			t := L.CheckString(1)
			L.Push(marker(L, kind, map[string]lua.LValue{"text": lua.LString(t)}))
			return 1
		})
	}
	id := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			n := L.CheckInt(1)
			L.Push(marker(L, kind, map[string]lua.LValue{"id": lua.LNumber(n)}))
			return 1
		})
	}
	bare := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			L.Push(marker(L, kind, nil))
			return 1
		})
	}

	L.SetGlobal("Take", text("take"))
	L.SetGlobal("Drop", text("drop"))
	L.SetGlobal("Examine", text("examine"))
	L.SetGlobal("Use", text("use"))
	L.SetGlobal("Eat", text("eat"))
	L.SetGlobal("Craft", text("craft"))
	L.SetGlobal("Attack", text("attack"))

	L.SetGlobal("Consume", id("consume"))
	L.SetGlobal("AddItemToRoom", id("add_item_to_room"))
	L.SetGlobal("RemoveActor", id("remove_actor"))
	L.SetGlobal("ActivateEvent", id("activate_event"))
	L.SetGlobal("DeactivateEvent", id("deactivate_event"))

	L.SetGlobal("Look", bare("look"))
	L.SetGlobal("GameOver", bare("game_over"))
	L.SetGlobal("Won", bare("won"))

	// Move("north")
	L.SetGlobal("Move", L.NewFunction(func(L *lua.LState) int {
		dir := L.CheckString(1)
		L.Push(marker(L, "move", map[string]lua.LValue{"dir": lua.LString(dir)}))
		return 1
	}))

	// AddExit("north", room)
	L.SetGlobal("AddExit", L.NewFunction(func(L *lua.LState) int {
		dir := L.CheckString(1)
		room := L.CheckInt(2)
		L.Push(marker(L, "add_exit", map[string]lua.LValue{
			"dir": lua.LString(dir),
			"id":  lua.LNumber(room),
		}))
		return 1
	}))
}
