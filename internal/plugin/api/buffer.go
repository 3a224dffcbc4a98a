package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// BufferModule implements the tc.buf API module.
type BufferModule struct {
	ctx *Context
}

// NewBufferModule creates a new buffer module.
func NewBufferModule(ctx *Context) *BufferModule {
	return &BufferModule{ctx: ctx}
}

// Name returns the module name.
func (m *BufferModule) Name() string {
	return "buf"
}

// Register registers the module into the Lua state.
func (m *BufferModule) Register(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "name", L.NewFunction(m.name))
	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "text_range", L.NewFunction(m.textRange))
	L.SetField(mod, "char_len", L.NewFunction(m.charLen))
	L.SetField(mod, "byte_len", L.NewFunction(m.byteLen))
	L.SetField(mod, "char_at", L.NewFunction(m.charAt))
	L.SetField(mod, "byte_pos", L.NewFunction(m.bytePos))
	L.SetField(mod, "char_pos", L.NewFunction(m.charPos))
	L.SetField(mod, "next_boundary", L.NewFunction(m.nextBoundary))
	L.SetField(mod, "prev_boundary", L.NewFunction(m.prevBoundary))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "narrow", L.NewFunction(m.narrow))
	L.SetField(mod, "widen", L.NewFunction(m.widen))
	L.SetField(mod, "modified", L.NewFunction(m.modified))

	return mod
}

// name() -> string
func (m *BufferModule) name(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Buffer.Name()))
	return 1
}

// text() -> string
// Returns the accessible portion of the buffer.
func (m *BufferModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Buffer.Text()))
	return 1
}

// text_range(start, end) -> string
// Returns text in the given character range.
func (m *BufferModule) textRange(L *lua.LState) int {
	start := textbuf.CharPos(L.CheckInt(1))
	end := textbuf.CharPos(L.CheckInt(2))
	if err := m.ctx.Buffer.ValidateRegion(&start, &end); err != nil {
		L.RaiseError("text_range: %v", err)
		return 0
	}
	L.Push(lua.LString(m.ctx.Buffer.TextRange(start, end)))
	return 1
}

// char_len() -> int
func (m *BufferModule) charLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Buffer.EndChar() - textbuf.BegChar))
	return 1
}

// byte_len() -> int
func (m *BufferModule) byteLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Buffer.EndByte() - textbuf.BegByte))
	return 1
}

// char_at(bytepos) -> string
// Returns the character whose encoding starts at bytepos.
func (m *BufferModule) charAt(L *lua.LState) int {
	pos := textbuf.BytePos(L.CheckInt(1))
	if pos < textbuf.BegByte || pos >= m.ctx.Buffer.EndByte() {
		L.RaiseError("char_at: position %d out of range", int(pos))
		return 0
	}
	L.Push(lua.LString(string(m.ctx.Buffer.CharAt(pos))))
	return 1
}

// byte_pos(charpos) -> int
func (m *BufferModule) bytePos(L *lua.LState) int {
	pos := textbuf.CharPos(L.CheckInt(1))
	if pos < textbuf.BegChar || pos > m.ctx.Buffer.EndChar() {
		L.RaiseError("byte_pos: position %d out of range", int(pos))
		return 0
	}
	L.Push(lua.LNumber(m.ctx.Buffer.BytePosOf(pos)))
	return 1
}

// char_pos(bytepos) -> int
func (m *BufferModule) charPos(L *lua.LState) int {
	pos := textbuf.BytePos(L.CheckInt(1))
	if pos < textbuf.BegByte || pos > m.ctx.Buffer.EndByte() {
		L.RaiseError("char_pos: position %d out of range", int(pos))
		return 0
	}
	L.Push(lua.LNumber(m.ctx.Buffer.CharPosOf(pos)))
	return 1
}

// next_boundary(bytepos) -> int
func (m *BufferModule) nextBoundary(L *lua.LState) int {
	pos := textbuf.BytePos(L.CheckInt(1))
	if pos < textbuf.BegByte || pos >= m.ctx.Buffer.EndByte() {
		L.RaiseError("next_boundary: position %d out of range", int(pos))
		return 0
	}
	L.Push(lua.LNumber(m.ctx.Buffer.NextBoundary(pos)))
	return 1
}

// prev_boundary(bytepos) -> int
func (m *BufferModule) prevBoundary(L *lua.LState) int {
	pos := textbuf.BytePos(L.CheckInt(1))
	if pos <= textbuf.BegByte || pos > m.ctx.Buffer.EndByte() {
		L.RaiseError("prev_boundary: position %d out of range", int(pos))
		return 0
	}
	L.Push(lua.LNumber(m.ctx.Buffer.PrevBoundary(pos)))
	return 1
}

// insert(charpos, text) -> int
// Inserts text and returns the position after it.
func (m *BufferModule) insert(L *lua.LState) int {
	pos := textbuf.CharPos(L.CheckInt(1))
	text := L.CheckString(2)
	after, err := m.ctx.Buffer.Insert(pos, text)
	if err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	L.Push(lua.LNumber(after))
	return 1
}

// delete(start, end)
func (m *BufferModule) delete(L *lua.LState) int {
	start := textbuf.CharPos(L.CheckInt(1))
	end := textbuf.CharPos(L.CheckInt(2))
	if err := m.ctx.Buffer.DeleteRange(start, end); err != nil {
		L.RaiseError("delete: %v", err)
	}
	return 0
}

// narrow(start, end)
func (m *BufferModule) narrow(L *lua.LState) int {
	start := textbuf.CharPos(L.CheckInt(1))
	end := textbuf.CharPos(L.CheckInt(2))
	if err := m.ctx.Buffer.Narrow(start, end); err != nil {
		L.RaiseError("narrow: %v", err)
	}
	return 0
}

// widen()
func (m *BufferModule) widen(L *lua.LState) int {
	m.ctx.Buffer.Widen()
	return 0
}

// modified() -> bool
func (m *BufferModule) modified(L *lua.LState) int {
	L.Push(lua.LBool(m.ctx.Buffer.Modified()))
	return 1
}
