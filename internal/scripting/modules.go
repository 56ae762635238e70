package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// RegisterModules installs the `engine` global table in L, exposing the
// dice calculus to content scripts:
//
//	engine.dice.roll(expr, level)        -> total, err
//	engine.dice.calc(expr, level, aspect) -> value, err
//	engine.dice.parse(expr)              -> {base=, dice=, sides=, m_bonus=}, err
//
// Errors are returned as a second string result in the Lua convention, not
// raised, so scripts can pcall-free handle bad expressions.
// Precondition: roller is non-nil.
func RegisterModules(L *lua.LState, roller *dice.Roller) {
	if roller == nil {
		panic("scripting: RegisterModules called with nil roller")
	}

	diceTable := L.NewTable()
	L.SetField(diceTable, "roll", L.NewFunction(func(L *lua.LState) int {
		expr := L.CheckString(1)
		level := L.OptInt(2, 0)
		result, err := roller.RollExpr(expr, level)
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LNumber(result.Total()))
		return 1
	}))
	L.SetField(diceTable, "calc", L.NewFunction(func(L *lua.LState) int {
		expr := L.CheckString(1)
		level := L.OptInt(2, 0)
		aspectName := L.OptString(3, "randomise")
		v, err := dice.Parse(expr)
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		aspect, err := dice.AspectFromString(aspectName)
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LNumber(v.Calc(level, aspect, roller.Source())))
		return 1
	}))
	L.SetField(diceTable, "parse", L.NewFunction(func(L *lua.LState) int {
		expr := L.CheckString(1)
		v, err := dice.Parse(expr)
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		t := L.NewTable()
		L.SetField(t, "base", lua.LNumber(v.Base))
		L.SetField(t, "dice", lua.LNumber(v.Dice))
		L.SetField(t, "sides", lua.LNumber(v.Sides))
		L.SetField(t, "m_bonus", lua.LNumber(v.MBonus))
		L.Push(t)
		return 1
	}))

	engineTable := L.NewTable()
	L.SetField(engineTable, "dice", diceTable)
	L.SetGlobal("engine", engineTable)
}
