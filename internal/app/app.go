// Package app wires the engine packages into a runnable core: config,
// logging, a buffer loaded from disk, marker and overlay tracking, and
// the optional Lua scripting surface.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dimchansky/utfbom"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/engine/charset"
	"github.com/dshills/textcore/internal/engine/localvar"
	"github.com/dshills/textcore/internal/engine/marker"
	"github.com/dshills/textcore/internal/engine/overlay"
	"github.com/dshills/textcore/internal/engine/textbuf"
	"github.com/dshills/textcore/internal/plugin/api"
)

// Options configures App construction.
type Options struct {
	ConfigPath string
	ScriptPath string
	FilePath   string
	Output     io.Writer
}

// App owns one buffer and the tracking structures attached to it.
type App struct {
	cfg      config.Config
	log      *Logger
	out      io.Writer
	buf      *textbuf.Buffer
	markers  *marker.Registry
	overlays *overlay.Arena
	slots    *localvar.Table
	flags    *localvar.Flags
	script   string
}

// New builds an App from opts. A missing config file is not an error;
// defaults apply.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := NewLogger("textcore")
	log.SetLevel(ParseLogLevel(cfg.LogLevel))

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	bufOpts := []textbuf.Option{
		textbuf.WithMultibyte(cfg.Multibyte),
		textbuf.WithGapSize(cfg.GapSize),
	}

	var buf *textbuf.Buffer
	if opts.FilePath != "" {
		text, err := loadFile(opts.FilePath)
		if err != nil {
			return nil, err
		}
		buf = textbuf.NewFromString(filepath.Base(opts.FilePath), text, bufOpts...)
		log.Debug("loaded %s: %d bytes", opts.FilePath, buf.EndByte()-textbuf.BegByte)
	} else {
		buf = textbuf.New("*scratch*", bufOpts...)
	}

	slots := localvar.NewTable()
	markers := marker.NewRegistry()
	a := &App{
		cfg:      cfg,
		log:      log,
		out:      out,
		buf:      buf,
		markers:  markers,
		overlays: overlay.NewArena(markers),
		slots:    slots,
		flags:    localvar.NewFlags(slots),
		script:   opts.ScriptPath,
	}
	return a, nil
}

func (a *App) Buffer() *textbuf.Buffer   { return a.buf }
func (a *App) Markers() *marker.Registry { return a.markers }
func (a *App) Overlays() *overlay.Arena  { return a.overlays }
func (a *App) Logger() *Logger           { return a.log }

// Run executes the configured script, if any, then reports buffer
// statistics to the output writer.
func (a *App) Run() error {
	if a.script != "" {
		ctx := &api.Context{
			Buffer:   a.buf,
			Markers:  a.markers,
			Overlays: a.overlays,
			Slots:    a.slots,
			Flags:    a.flags,
		}
		a.log.Info("running script %s", a.script)
		if err := api.Run(a.script, ctx); err != nil {
			return fmt.Errorf("script %s: %w", a.script, err)
		}
	}

	text := a.buf.Text()
	fmt.Fprintf(a.out, "%s: %d bytes, %d chars, %d graphemes\n",
		a.buf.Name(),
		int64(a.buf.EndByte()-textbuf.BegByte),
		int64(a.buf.EndChar()-textbuf.BegChar),
		charset.GraphemeCount(text))
	if a.buf.Modified() {
		fmt.Fprintf(a.out, "%s: modified (%d edits)\n", a.buf.Name(), a.buf.Modifications())
	}
	return nil
}

// Shutdown detaches everything tracking the buffer. Overlays are
// removed as a group, matching what killing a buffer requires.
func (a *App) Shutdown() {
	a.overlays.DeleteAll(a.buf)
	a.buf.Kill()
	a.log.Debug("shutdown complete")
}

// loadFile reads path, stripping any leading byte order mark.
func loadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(utfbom.SkipOnly(f))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
