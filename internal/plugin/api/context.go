package api

import (
	"github.com/dshills/textcore/internal/engine/localvar"
	"github.com/dshills/textcore/internal/engine/marker"
	"github.com/dshills/textcore/internal/engine/overlay"
	"github.com/dshills/textcore/internal/engine/textbuf"
)

// Context carries the engine state API modules operate on.
type Context struct {
	Buffer   *textbuf.Buffer
	Markers  *marker.Registry
	Overlays *overlay.Arena
	Slots    *localvar.Table
	Flags    *localvar.Flags
}
