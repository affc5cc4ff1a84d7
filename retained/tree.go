package retained

// ============================================================================
// Tree links
// ============================================================================

// Parent returns the parent widget, or nil for the desktop.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns a copy of the child list in z-order (back to front).
func (w *Widget) Children() []*Widget {
	out := make([]*Widget, len(w.children))
	copy(out, w.children)
	return out
}

// ChildCount returns the number of children.
func (w *Widget) ChildCount() int { return len(w.children) }

// FirstChild returns the backmost child, or nil.
func (w *Widget) FirstChild() *Widget {
	if len(w.children) == 0 {
		return nil
	}
	return w.children[0]
}

// NextSibling returns the sibling drawn right after w, or nil when w is
// frontmost.
func (w *Widget) NextSibling() *Widget {
	if w.parent == nil {
		return nil
	}
	siblings := w.parent.children
	for i, c := range siblings {
		if c == w && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// IsAncestorOf reports whether w is a strict ancestor of other.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

// linkChild appends child as the frontmost child of parent.
func linkChild(parent, child *Widget) {
	child.parent = parent
	parent.children = append(parent.children, child)
}

// unlinkChild removes w from its parent's child list.
func unlinkChild(w *Widget) {
	parent := w.parent
	if parent == nil {
		return
	}
	for i, c := range parent.children {
		if c == w {
			copy(parent.children[i:], parent.children[i+1:])
			parent.children[len(parent.children)-1] = nil
			parent.children = parent.children[:len(parent.children)-1]
			break
		}
	}
	w.parent = nil
}

// ============================================================================
// Z-order
// ============================================================================

// MoveToTop relinks w as the frontmost child of its parent, so it is drawn
// last and hit first. Its own subtree is untouched.
func (w *Widget) MoveToTop() {
	w.gui.guard.assertHeld("MoveToTop")
	parent := w.parent
	if parent == nil {
		return
	}
	siblings := parent.children
	last := len(siblings) - 1
	for i, c := range siblings {
		if c != w {
			continue
		}
		if i == last {
			return
		}
		copy(siblings[i:], siblings[i+1:])
		siblings[last] = w
		w.Invalidate()
		return
	}
}

// MoveToTop relinks w as the frontmost child of its parent.
func (g *GUI) MoveToTop(w *Widget) {
	defer g.guard.enter()()
	w.MoveToTop()
}

// DrawOrder returns w's children in paint order (back to front).
func DrawOrder(w *Widget) []*Widget {
	return w.Children()
}

// HitOrder returns w's children in hit-test order (front to back), the
// exact reverse of DrawOrder.
func HitOrder(w *Widget) []*Widget {
	n := len(w.children)
	out := make([]*Widget, n)
	for i, c := range w.children {
		out[n-1-i] = c
	}
	return out
}

// ============================================================================
// Walking and lookup
// ============================================================================

// walkWidget visits w and its subtree depth-first in draw order. It stops
// when fn returns false.
func walkWidget(w *Widget, fn func(w *Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, child := range w.children {
		if !walkWidget(child, fn) {
			return false
		}
	}
	return true
}

// Walk visits every widget depth-first in draw order until fn returns
// false. fn runs inside the guard and must not call GUI entry points.
func (g *GUI) Walk(fn func(w *Widget) bool) {
	defer g.guard.enter()()
	if g.root != nil {
		walkWidget(g.root, fn)
	}
}

// Find returns the first widget with the given ID, or nil.
func (g *GUI) Find(id WidgetID) *Widget {
	defer g.guard.enter()()
	return g.find(id)
}

func (g *GUI) find(id WidgetID) *Widget {
	if g.root == nil {
		return nil
	}
	var found *Widget
	walkWidget(g.root, func(w *Widget) bool {
		if w.id == id {
			found = w
			return false
		}
		return true
	})
	return found
}
