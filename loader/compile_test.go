package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These feed hand-built marker tables through the loader to hit the
// compile-stage errors the helpers normally make impossible.
func TestCompile_BadMarkers(t *testing.T) {
	const prelude = `
Game { start = 0 }
Room(0) { name = "Hall", description = "x" }
`
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"unknown condition kind",
			`Cond({ kind = "sometimes" })`,
			`unknown condition kind "sometimes"`,
		},
		{
			"command_is without command",
			`Cond({ kind = "command_is" })`,
			"requires a command term",
		},
		{
			"unknown command kind in event",
			`local c = Cond(AtLocation(0))
			 Event { condition = c, message = "m", commands = { { kind = "dance" } } }`,
			`unknown command kind "dance"`,
		},
		{
			"bad direction in command",
			`local c = Cond(AtLocation(0))
			 Event { condition = c, message = "m", commands = { Move("up") } }`,
			`unknown direction "up"`,
		},
		{
			"non-table command",
			`local c = Cond(AtLocation(0))
			 Event { condition = c, message = "m", commands = { 42 } }`,
			"commands must be built with the command helpers",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeWorld(t, map[string]string{"world.lua": prelude + tc.src})
			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCompile_ArmedDefaultsToFalse(t *testing.T) {
	dir := writeWorld(t, map[string]string{"world.lua": `
Game { start = 0 }
Room(0) { name = "Hall", description = "x" }
local c = Cond(AtLocation(0))
Event { condition = c, message = "sleeping" }
`})

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.ActiveEvents)
}
