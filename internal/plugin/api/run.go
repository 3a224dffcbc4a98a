package api

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// NewState returns a Lua state with all API modules registered under
// the tc global. The caller must Close it.
func NewState(ctx *Context) *lua.LState {
	L := lua.NewState()
	root := L.NewTable()
	L.SetField(root, "buf", NewBufferModule(ctx).Register(L))
	L.SetField(root, "ovl", NewOverlayModule(ctx).Register(L))
	L.SetField(root, "var", NewVarModule(ctx).Register(L))
	L.SetGlobal("tc", root)
	return L
}

// Run executes the Lua script at path against ctx.
func Run(path string, ctx *Context) error {
	L := NewState(ctx)
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}

// RunString executes Lua source against ctx.
func RunString(src string, ctx *Context) error {
	L := NewState(ctx)
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}
