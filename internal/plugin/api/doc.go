// Package api exposes the text engine to Lua scripts.
//
// Each module registers a table of functions under the tc global:
//
//	tc.buf  - buffer text, positions, boundaries, editing
//	tc.ovl  - overlay creation, queries, and properties
//	tc.var  - buffer-local variable slots
//
// Positions crossing the Lua boundary are plain integers in the
// engine's 1-origin character space.
package api
