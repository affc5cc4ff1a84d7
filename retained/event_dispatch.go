package retained

import "log/slog"

// ============================================================================
// Drag state
// ============================================================================

// TouchMode is the state of the touch router's drag machine.
type TouchMode uint8

const (
	TouchIdle TouchMode = iota
	TouchDragging
)

func (m TouchMode) String() string {
	if m == TouchDragging {
		return "Dragging"
	}
	return "Idle"
}

// DragState is the single drag in progress. Only one point is tracked, so
// there is one drag for the whole GUI, owned by the touch router and handed
// to callbacks through TouchData.Drag.
type DragState struct {
	mode         TouchMode
	grabX, grabY int
}

// Start enters Dragging and records the grab offset relative to the
// widget origin.
func (d *DragState) Start(offsetX, offsetY int) {
	d.mode = TouchDragging
	d.grabX, d.grabY = offsetX, offsetY
}

// Stop returns to Idle.
func (d *DragState) Stop() {
	d.mode = TouchIdle
	d.grabX, d.grabY = 0, 0
}

// Mode returns the current mode.
func (d *DragState) Mode() TouchMode { return d.mode }

// Dragging reports whether a drag is in progress.
func (d *DragState) Dragging() bool { return d.mode == TouchDragging }

// Offset returns the grab offset recorded by Start.
func (d *DragState) Offset() (x, y int) { return d.grabX, d.grabY }

// ============================================================================
// Touch router
// ============================================================================

// touchRouter tracks the previous sample so each new one can be classified
// as press, move or release.
type touchRouter struct {
	last    TouchSample
	pressed bool
	drag    DragState
}

// Touch feeds one sample from the touch source into the GUI.
//
// A press hit-tests the tree front to back, activates the touched window,
// captures the target and sends it TouchStart (bubbling to the parent while
// not handled). While pressed, TouchMove goes to the captured widget even
// outside its bounds. A release sends TouchEnd, then Click when the point is
// still inside, and drops the capture.
func (g *GUI) Touch(s TouchSample) {
	defer g.guard.enter()()

	if s.Count < 0 {
		s.Count = 0
	}
	if s.Count > MaxTouchPoints {
		s.Count = MaxTouchPoints
	}

	switch {
	case s.Count > 0 && !g.touch.pressed:
		g.touch.pressed = true
		g.touchStart(s)
	case s.Count > 0:
		g.touchMove(s)
	case g.touch.pressed:
		g.touch.pressed = false
		// Release frames carry no coordinates; report the last known point
		end := g.touch.last
		end.Count = 0
		g.touchEnd(end)
	}

	if s.Count > 0 {
		g.touch.last = s
	}
}

// DragMode returns the router's drag mode.
func (g *GUI) DragMode() TouchMode {
	defer g.guard.enter()()
	return g.touch.drag.Mode()
}

func (g *GUI) touchStart(s TouchSample) {
	g.touch.drag.Stop()
	g.clearActiveWidget()

	if g.root == nil {
		return
	}
	target := hitTest(g.root, s.X[0], s.Y[0])
	if target == nil {
		g.setFocus(nil)
		return
	}

	if win := windowOf(target); win != nil && win != g.activeWindow {
		// Switching windows resets focus and capture
		_ = g.SetActiveLocked(win)
	}

	for w := target; w != nil; w = w.parent {
		status := TouchNotHandled
		if !w.Dispatch(ControlTouchStart, g.touchData(w, s), &status) || status == TouchNotHandled {
			continue
		}

		g.setActiveWidget(w)
		if status == TouchHandled {
			g.setFocus(w)
		}
		g.log.Debug("touch start",
			slog.String("widget", w.String()),
			slog.String("drag", g.touch.drag.Mode().String()))
		return
	}

	g.setFocus(nil)
}

func (g *GUI) touchMove(s TouchSample) {
	w := g.activeWidget
	if w == nil {
		return
	}
	status := TouchHandled
	w.Dispatch(ControlTouchMove, g.touchData(w, s), &status)
}

func (g *GUI) touchEnd(s TouchSample) {
	w := g.activeWidget
	if w != nil {
		status := TouchHandled
		td := g.touchData(w, s)
		w.Dispatch(ControlTouchEnd, td, &status)

		// TouchEnd may have removed the widget
		if g.activeWidget == w && w.Contains(s.X[0], s.Y[0]) {
			w.Dispatch(ControlClick, td, nil)
		}
	}

	g.touch.drag.Stop()
	g.clearActiveWidget()
}

// touchData builds the payload for w with coordinates relative to w.
func (g *GUI) touchData(w *Widget, s TouchSample) *TouchData {
	td := &TouchData{Sample: s, Drag: &g.touch.drag}
	ax, ay := w.AbsoluteX(), w.AbsoluteY()
	for i := 0; i < MaxTouchPoints; i++ {
		td.RelX[i] = s.X[i] - ax
		td.RelY[i] = s.Y[i] - ay
	}
	return td
}

// ============================================================================
// Hit testing
// ============================================================================

// HitTest returns the topmost visible widget under the screen point, or nil.
func (g *GUI) HitTest(x, y int) *Widget {
	defer g.guard.enter()()
	if g.root == nil {
		return nil
	}
	return hitTest(g.root, x, y)
}

// hitTest walks the tree front to back. Children are clipped to their
// parent: a point outside a widget never reaches its subtree.
func hitTest(w *Widget, x, y int) *Widget {
	if w.flags&FlagHidden != 0 || !w.Contains(x, y) {
		return nil
	}

	children := snapshotHitOrder(w)
	defer releaseWidgetSlice(children)
	for _, child := range children {
		if target := hitTest(child, x, y); target != nil {
			return target
		}
	}

	return w
}
