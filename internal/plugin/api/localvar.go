package api

import (
	lua "github.com/yuin/gopher-lua"
)

// VarModule implements the tc.var API module for buffer-local
// variable slots.
type VarModule struct {
	ctx *Context
}

// NewVarModule creates a new localvar module.
func NewVarModule(ctx *Context) *VarModule {
	return &VarModule{ctx: ctx}
}

// Name returns the module name.
func (m *VarModule) Name() string {
	return "var"
}

// Register registers the module into the Lua state.
func (m *VarModule) Register(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "register", L.NewFunction(m.register))
	L.SetField(mod, "has_local", L.NewFunction(m.hasLocal))
	L.SetField(mod, "set_local", L.NewFunction(m.setLocal))
	L.SetField(mod, "count", L.NewFunction(m.count))

	return mod
}

// register(name) -> slot
// Registers a slot, or returns the existing one for name.
func (m *VarModule) register(L *lua.LState) int {
	name := L.CheckString(1)
	if slot, ok := m.ctx.Slots.Lookup(name); ok {
		L.Push(lua.LNumber(slot))
		return 1
	}
	slot := m.ctx.Slots.Register(name)
	m.ctx.Flags.Grow(m.ctx.Slots)
	L.Push(lua.LNumber(slot))
	return 1
}

// has_local(name) -> bool
func (m *VarModule) hasLocal(L *lua.LState) int {
	name := L.CheckString(1)
	slot, ok := m.ctx.Slots.Lookup(name)
	if !ok {
		L.RaiseError("has_local: unknown variable %q", name)
		return 0
	}
	L.Push(lua.LBool(m.ctx.Flags.HasLocal(slot)))
	return 1
}

// set_local(name, value)
func (m *VarModule) setLocal(L *lua.LState) int {
	name := L.CheckString(1)
	val := L.CheckBool(2)
	slot, ok := m.ctx.Slots.Lookup(name)
	if !ok {
		L.RaiseError("set_local: unknown variable %q", name)
		return 0
	}
	var b byte
	if val {
		b = 1
	}
	m.ctx.Flags.SetLocal(slot, b)
	return 0
}

// count() -> int
func (m *VarModule) count(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Slots.Count()))
	return 1
}
