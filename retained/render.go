package retained

// Render paints the whole tree onto d. Parents paint before their children
// and siblings paint back to front, so later siblings cover earlier ones.
// Hidden widgets and their subtrees are skipped.
func (g *GUI) Render(d Display) {
	defer g.guard.enter()()
	g.render(d)
}

// Redraw paints the tree only when something changed since the last pass
// and reports whether it did.
func (g *GUI) Redraw(d Display) bool {
	defer g.guard.enter()()
	if !g.dirty.Load() {
		return false
	}
	g.render(d)
	return true
}

func (g *GUI) render(d Display) {
	g.dirty.Store(false)
	if g.root == nil {
		return
	}
	drawWidget(d, g.root)
}

func drawWidget(d Display, w *Widget) {
	if w.flags&FlagHidden != 0 {
		return
	}
	w.Dispatch(ControlDraw, d, nil)
	w.flags &^= FlagInvalid

	children := snapshotDrawOrder(w)
	for _, child := range children {
		drawWidget(d, child)
	}
	releaseWidgetSlice(children)
}
