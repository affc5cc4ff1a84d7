package retained

import "log/slog"

// ============================================================================
// Active window
// ============================================================================

// SetActive makes window the active window: it is moved to the front of its
// siblings, and focus and touch capture are cleared so they never leak from
// one window into another.
func (g *GUI) SetActive(window *Widget) error {
	defer g.guard.enter()()
	return g.SetActiveLocked(window)
}

// SetActiveLocked is SetActive for callers that already hold the guard.
func (g *GUI) SetActiveLocked(window *Widget) error {
	if err := checkFlags(window, DescWindow, "SetActive"); err != nil {
		return err
	}

	g.activeWindow = window
	window.MoveToTop()

	g.setFocus(nil)
	g.clearActiveWidget()

	g.log.Debug("active window", slog.String("widget", window.String()))
	return nil
}

// Active returns the active window, or nil.
func (g *GUI) Active() *Widget {
	defer g.guard.enter()()
	return g.activeWindow
}

// windowOf returns the nearest window at or above w.
func windowOf(w *Widget) *Widget {
	for p := w; p != nil; p = p.parent {
		if p.desc.Flags&DescWindow != 0 {
			return p
		}
	}
	return nil
}

// ============================================================================
// Focus
// ============================================================================

// Focus moves input focus to w (nil clears it).
func (g *GUI) Focus(w *Widget) {
	defer g.guard.enter()()
	g.setFocus(w)
}

// Focused returns the focused widget, or nil.
func (g *GUI) Focused() *Widget {
	defer g.guard.enter()()
	return g.focused
}

// setFocus clears the previous focus before assigning the new one.
func (g *GUI) setFocus(w *Widget) {
	old := g.focused
	if old == w {
		return
	}

	if old != nil {
		g.focused = nil
		old.flags &^= FlagFocus
		old.Invalidate()
		old.Dispatch(ControlFocusOut, nil, nil)
		invalidateAncestors(old)
	}

	if w != nil {
		g.focused = w
		w.flags |= FlagFocus
		w.Invalidate()
		w.Dispatch(ControlFocusIn, nil, nil)
		invalidateAncestors(w)
	}
}

// invalidateAncestors repaints widgets whose look depends on
// IsFocusedOrDescendant.
func invalidateAncestors(w *Widget) {
	for p := w.parent; p != nil; p = p.parent {
		p.Invalidate()
	}
}

// ============================================================================
// Active widget (touch capture)
// ============================================================================

// ActiveWidget returns the widget holding touch capture, or nil.
func (g *GUI) ActiveWidget() *Widget {
	defer g.guard.enter()()
	return g.activeWidget
}

func (g *GUI) setActiveWidget(w *Widget) {
	g.clearActiveWidget()
	g.activeWidget = w
	w.flags |= FlagActive
}

func (g *GUI) clearActiveWidget() {
	if g.activeWidget != nil {
		g.activeWidget.flags &^= FlagActive
		g.activeWidget = nil
	}
}
