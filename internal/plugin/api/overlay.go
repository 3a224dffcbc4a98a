package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textcore/internal/engine/overlay"
	"github.com/dshills/textcore/internal/engine/textbuf"
)

// OverlayModule implements the tc.ovl API module. Overlay handles are
// passed to Lua as plain integers.
type OverlayModule struct {
	ctx *Context
}

// NewOverlayModule creates a new overlay module.
func NewOverlayModule(ctx *Context) *OverlayModule {
	return &OverlayModule{ctx: ctx}
}

// Name returns the module name.
func (m *OverlayModule) Name() string {
	return "ovl"
}

// Register registers the module into the Lua state.
func (m *OverlayModule) Register(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "add", L.NewFunction(m.add))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "delete_all", L.NewFunction(m.deleteAll))
	L.SetField(mod, "move", L.NewFunction(m.move))
	L.SetField(mod, "start", L.NewFunction(m.start))
	L.SetField(mod, "finish", L.NewFunction(m.finish))
	L.SetField(mod, "at", L.NewFunction(m.at))
	L.SetField(mod, "in_range", L.NewFunction(m.inRange))
	L.SetField(mod, "get_prop", L.NewFunction(m.getProp))
	L.SetField(mod, "set_prop", L.NewFunction(m.setProp))
	L.SetField(mod, "recenter", L.NewFunction(m.recenter))

	return mod
}

// add(start, end) -> ref
// Creates an overlay over [start, end) in the current buffer.
func (m *OverlayModule) add(L *lua.LState) int {
	start := textbuf.CharPos(L.CheckInt(1))
	end := textbuf.CharPos(L.CheckInt(2))
	ref := m.ctx.Overlays.New()
	if err := m.ctx.Overlays.Attach(ref, m.ctx.Buffer, start, end); err != nil {
		m.ctx.Overlays.Discard(ref)
		L.RaiseError("add: %v", err)
		return 0
	}
	L.Push(lua.LNumber(ref))
	return 1
}

// delete(ref)
// Detaches the overlay. Deleting twice is harmless.
func (m *OverlayModule) delete(L *lua.LState) int {
	m.ctx.Overlays.Delete(m.checkRef(L, 1))
	return 0
}

// delete_all()
func (m *OverlayModule) deleteAll(L *lua.LState) int {
	m.ctx.Overlays.DeleteAll(m.ctx.Buffer)
	return 0
}

// move(ref, start, end)
// Re-attaches the overlay at a new range.
func (m *OverlayModule) move(L *lua.LState) int {
	ref := m.checkRef(L, 1)
	start := textbuf.CharPos(L.CheckInt(2))
	end := textbuf.CharPos(L.CheckInt(3))
	m.ctx.Overlays.Delete(ref)
	if err := m.ctx.Overlays.Attach(ref, m.ctx.Buffer, start, end); err != nil {
		L.RaiseError("move: %v", err)
	}
	return 0
}

// start(ref) -> int or nil
func (m *OverlayModule) start(L *lua.LState) int {
	if pos, ok := m.ctx.Overlays.Start(m.checkRef(L, 1)); ok {
		L.Push(lua.LNumber(pos))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// finish(ref) -> int or nil
func (m *OverlayModule) finish(L *lua.LState) int {
	if pos, ok := m.ctx.Overlays.End(m.checkRef(L, 1)); ok {
		L.Push(lua.LNumber(pos))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// at(charpos) -> {ref, ...}
func (m *OverlayModule) at(L *lua.LState) int {
	pos := textbuf.CharPos(L.CheckInt(1))
	L.Push(m.refTable(L, m.ctx.Overlays.At(m.ctx.Buffer, pos)))
	return 1
}

// in_range(start, end) -> {ref, ...}
func (m *OverlayModule) inRange(L *lua.LState) int {
	start := textbuf.CharPos(L.CheckInt(1))
	end := textbuf.CharPos(L.CheckInt(2))
	L.Push(m.refTable(L, m.ctx.Overlays.Overlapping(m.ctx.Buffer, start, end)))
	return 1
}

// get_prop(ref, key) -> value or nil
func (m *OverlayModule) getProp(L *lua.LState) int {
	ref := m.checkRef(L, 1)
	key := L.CheckString(2)
	v, ok := m.ctx.Overlays.Property(ref, key)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	switch val := v.(type) {
	case string:
		L.Push(lua.LString(val))
	case bool:
		L.Push(lua.LBool(val))
	case int:
		L.Push(lua.LNumber(val))
	case float64:
		L.Push(lua.LNumber(val))
	default:
		L.Push(lua.LString(""))
	}
	return 1
}

// set_prop(ref, key, value)
func (m *OverlayModule) setProp(L *lua.LState) int {
	ref := m.checkRef(L, 1)
	key := L.CheckString(2)
	switch v := L.CheckAny(3).(type) {
	case lua.LString:
		m.ctx.Overlays.SetProperty(ref, key, string(v))
	case lua.LNumber:
		m.ctx.Overlays.SetProperty(ref, key, float64(v))
	case lua.LBool:
		m.ctx.Overlays.SetProperty(ref, key, bool(v))
	default:
		L.RaiseError("set_prop: unsupported value type %s", v.Type())
	}
	return 0
}

// recenter(charpos)
func (m *OverlayModule) recenter(L *lua.LState) int {
	m.ctx.Overlays.Recenter(m.ctx.Buffer, textbuf.CharPos(L.CheckInt(1)))
	return 0
}

func (m *OverlayModule) checkRef(L *lua.LState, n int) overlay.Ref {
	return overlay.Ref(L.CheckInt(n))
}

func (m *OverlayModule) refTable(L *lua.LState, refs []overlay.Ref) *lua.LTable {
	t := L.NewTable()
	for _, r := range refs {
		t.Append(lua.LNumber(r))
	}
	return t
}
