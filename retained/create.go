package retained

import (
	"errors"
	"fmt"
	"log/slog"
)

// Create allocates an instance of desc and links it into the tree.
//
// With CreateParentDesktop the instance becomes the tree root; only one
// desktop may exist. Otherwise a nil parent means the desktop. Creation is
// all-or-nothing: on error the tree and the allocator are unchanged.
func (g *GUI) Create(desc *Descriptor, id WidgetID, x, y, width, height int, parent *Widget, flags CreateFlags) (*Widget, error) {
	defer g.guard.enter()()
	return g.create(desc, id, x, y, width, height, parent, flags)
}

// CreateLocked is Create for callers that already hold the guard, such as
// widget constructors that configure the instance inside GUI.Do.
func (g *GUI) CreateLocked(desc *Descriptor, id WidgetID, x, y, width, height int, parent *Widget, flags CreateFlags) (*Widget, error) {
	g.guard.assertHeld("CreateLocked")
	return g.create(desc, id, x, y, width, height, parent, flags)
}

func (g *GUI) create(desc *Descriptor, id WidgetID, x, y, width, height int, parent *Widget, flags CreateFlags) (*Widget, error) {
	desktop := flags&CreateParentDesktop != 0
	switch {
	case desktop && g.root != nil:
		return nil, g.createFailed(desc, id, ErrDesktopExists)
	case desktop:
		parent = nil
	case parent == nil && g.root == nil:
		return nil, g.createFailed(desc, id, ErrNoDesktop)
	case parent == nil:
		parent = g.root
	}
	if parent != nil && !g.attached(parent) {
		return nil, g.createFailed(desc, id, fmt.Errorf("%w: parent %s", ErrNotFound, parent))
	}
	if parent != nil && !parent.desc.AllowsChildren() {
		return nil, g.createFailed(desc, id, fmt.Errorf("%w: %s", ErrChildrenNotAllowed, parent))
	}

	if err := g.alloc.Alloc(desc.Size); err != nil {
		return nil, g.createFailed(desc, id, noMemory(err))
	}

	w := &Widget{
		gui:    g,
		desc:   desc,
		id:     id,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
	if flags&CreateHidden != 0 {
		w.flags |= FlagHidden
	}
	if desc.NewState != nil {
		w.state = desc.NewState()
	}

	if desktop {
		g.root = w
	} else {
		linkChild(parent, w)
	}
	w.Dispatch(ControlInit, nil, nil)
	w.Invalidate()

	g.log.Debug("widget created", slog.String("widget", w.String()))
	return w, nil
}

func (g *GUI) createFailed(desc *Descriptor, id WidgetID, err error) error {
	g.log.Warn("widget create failed",
		slog.String("type", desc.Name),
		slog.Uint64("id", uint64(id)),
		slog.String("error", err.Error()))
	return fmt.Errorf("create %s#%d: %w", desc.Name, id, err)
}

// attached reports whether w belongs to g and is reachable from the
// desktop.
func (g *GUI) attached(w *Widget) bool {
	if w == nil || w.gui != g || g.root == nil {
		return false
	}
	for p := w; p != nil; p = p.parent {
		if p == g.root {
			return true
		}
	}
	return false
}

// noMemory makes sure allocator errors match ErrNoMemory.
func noMemory(err error) error {
	if errors.Is(err, ErrNoMemory) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrNoMemory, err)
}

// ============================================================================
// Removal
// ============================================================================

// Remove destroys w and its whole subtree: each widget gets ControlRemove,
// is unlinked and its storage is released. Focus, active window and touch
// capture pointing into the subtree are cleared.
func (g *GUI) Remove(w *Widget) error {
	defer g.guard.enter()()
	return g.remove(w)
}

// RemoveLocked is Remove for callers that already hold the guard.
func (g *GUI) RemoveLocked(w *Widget) error {
	g.guard.assertHeld("RemoveLocked")
	return g.remove(w)
}

func (g *GUI) remove(w *Widget) error {
	if !g.attached(w) {
		return ErrNotFound
	}

	w.InvalidateParent()
	g.destroy(w)
	if w == g.root {
		g.root = nil
	} else {
		unlinkChild(w)
	}
	return nil
}

// destroy tears down the subtree under w, children first.
func (g *GUI) destroy(w *Widget) {
	w.Dispatch(ControlRemove, nil, nil)

	for len(w.children) > 0 {
		child := w.children[len(w.children)-1]
		g.destroy(child)
		unlinkChild(child)
	}

	if g.focused == w {
		g.focused = nil
	}
	if g.activeWidget == w {
		g.activeWidget = nil
		g.touch.drag.Stop()
	}
	if g.activeWindow == w {
		g.activeWindow = nil
	}

	if w.colors != nil {
		g.alloc.Free(colorTableSize(len(w.colors)))
		w.colors = nil
	}
	g.alloc.Free(w.desc.Size)
	g.log.Debug("widget removed", slog.String("widget", w.String()))
}
