// Package retained is the runtime core of a retained-mode widget system for
// small displays.
//
// A GUI owns one widget tree (rooted at the desktop), the active-window and
// focus state, and the touch router. Every widget type is described by a
// Descriptor whose single Callback interprets all control messages sent to
// instances of that type; drawing, configuration and input all flow through
// that one entry point.
//
// Methods on GUI are entry points: they enter the GUI guard and may be called
// from any goroutine. Methods on Widget are helpers for control callbacks and
// do not enter the guard; outside a callback, wrap them in GUI.Do.
package retained

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// Options configures a GUI.
type Options struct {
	// Geometry reports the size of the physical surface. The desktop is
	// sized from it. Default: 240x320.
	Geometry Geometry

	// Allocator is charged Descriptor.Size bytes per widget.
	// Default: Unlimited().
	Allocator Allocator

	// Logger receives diagnostics. Default: discard.
	Logger *slog.Logger

	// Theme maps a descriptor name to a color table that replaces the
	// descriptor defaults for every instance of that type.
	Theme map[string][]Color
}

// GUI is the context object for one display: widget tree, focus/active
// state and touch routing.
type GUI struct {
	guard guard

	geometry Geometry
	alloc    Allocator
	log      *slog.Logger
	theme    map[string][]Color

	root *Widget

	activeWindow *Widget // Window on top, receives hits first
	focused      *Widget // Widget with input focus
	activeWidget *Widget // Widget holding touch capture

	touch touchRouter

	// Set on any mutation, cleared by a render pass
	dirty atomic.Bool
}

// New creates a GUI with no widgets.
func New(opts Options) *GUI {
	g := &GUI{
		geometry: opts.Geometry,
		alloc:    opts.Allocator,
		log:      opts.Logger,
		theme:    opts.Theme,
	}
	if g.geometry == nil {
		g.geometry = FixedGeometry{W: 240, H: 320}
	}
	if g.alloc == nil {
		g.alloc = Unlimited()
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.log = g.log.With(slog.String("component", "tinygui"))
	return g
}

// Do runs fn inside the GUI guard. Use it to call Widget helpers from
// application code.
func (g *GUI) Do(fn func()) {
	defer g.guard.enter()()
	fn()
}

// Logger returns the GUI's logger.
func (g *GUI) Logger() *slog.Logger {
	return g.log
}

// LCDWidth returns the width of the physical surface.
func (g *GUI) LCDWidth() int {
	return g.geometry.Width()
}

// LCDHeight returns the height of the physical surface.
func (g *GUI) LCDHeight() int {
	return g.geometry.Height()
}

// Desktop returns the tree root, or nil before a desktop is created.
func (g *GUI) Desktop() *Widget {
	defer g.guard.enter()()
	return g.root
}

// Dispatch sends a control message to w and reports whether its type
// handled it.
func (g *GUI) Dispatch(w *Widget, ctrl Control, param, result any) bool {
	if w == nil {
		return false
	}
	defer g.guard.enter()()
	return w.Dispatch(ctrl, param, result)
}

// Dirty reports whether anything changed since the last render pass.
func (g *GUI) Dirty() bool {
	return g.dirty.Load()
}

// ============================================================================
// Generic queries (application side)
// ============================================================================

// Width returns the width of w.
func (g *GUI) Width(w *Widget) int {
	defer g.guard.enter()()
	return w.Width()
}

// Height returns the height of w.
func (g *GUI) Height(w *Widget) int {
	defer g.guard.enter()()
	return w.Height()
}

// AbsoluteX returns the screen X coordinate of w.
func (g *GUI) AbsoluteX(w *Widget) int {
	defer g.guard.enter()()
	return w.AbsoluteX()
}

// AbsoluteY returns the screen Y coordinate of w.
func (g *GUI) AbsoluteY(w *Widget) int {
	defer g.guard.enter()()
	return w.AbsoluteY()
}

// themeColors returns the theme table configured for a descriptor name.
func (g *GUI) themeColors(name string) []Color {
	if g.theme == nil {
		return nil
	}
	return g.theme[name]
}
