package retained

import (
	"fmt"

	"golang.org/x/image/font"
)

// WidgetID is the application-assigned identifier of a widget.
type WidgetID uint32

// Flags is the runtime state bitset of an instance.
type Flags uint32

const (
	// FlagChild marks a child window (a window that is not the desktop).
	FlagChild Flags = 1 << iota

	// FlagHidden excludes the widget and its subtree from draw and hit-test.
	FlagHidden

	// FlagFocus is set on the widget holding input focus.
	FlagFocus

	// FlagActive is set on the widget holding touch capture.
	FlagActive

	// FlagInvalid is set when the widget needs repainting.
	FlagInvalid
)

// FlagUser0 is the first bit free for widget-specific state.
const FlagUser0 Flags = 1 << 16

// CreateFlags tune how Create links a new instance.
type CreateFlags uint16

const (
	// CreateParentDesktop makes the new instance the tree root.
	CreateParentDesktop CreateFlags = 1 << iota

	// CreateHidden creates the instance hidden.
	CreateHidden
)

// Padding is the fixed inner spacing of a widget.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Widget is one on-screen element. Its descriptor is fixed at creation;
// everything else changes only through control messages and the helpers
// below.
//
// Widget helpers do not enter the GUI guard. They are meant for control
// callbacks (which already run inside an entry point) and for code passed
// to GUI.Do.
type Widget struct {
	gui  *GUI
	desc *Descriptor
	id   WidgetID

	flags Flags

	// Geometry in parent coordinates
	x, y          int
	width, height int
	padding       Padding

	font font.Face // Shared, not owned
	text string

	// Per-instance color table, allocated on first SetColor
	colors []Color

	parent   *Widget
	children []*Widget // z-order: last is frontmost

	state any
}

// GUI returns the context the widget belongs to.
func (w *Widget) GUI() *GUI { return w.gui }

// Descriptor returns the widget's type.
func (w *Widget) Descriptor() *Descriptor { return w.desc }

// ID returns the application-assigned identifier.
func (w *Widget) ID() WidgetID { return w.id }

// State returns the type-specific state built by Descriptor.NewState.
func (w *Widget) State() any { return w.state }

func (w *Widget) String() string {
	return fmt.Sprintf("%s#%d", w.desc.Name, w.id)
}

// ============================================================================
// Flags
// ============================================================================

// Flags returns the runtime flags.
func (w *Widget) Flags() Flags { return w.flags }

// HasFlag reports whether all bits of f are set.
func (w *Widget) HasFlag(f Flags) bool { return w.flags&f == f }

// SetFlag sets the bits of f and invalidates the widget if they changed.
func (w *Widget) SetFlag(f Flags) {
	w.gui.guard.assertHeld("SetFlag")
	if w.flags&f != f {
		w.flags |= f
		w.Invalidate()
	}
}

// ClearFlag clears the bits of f and invalidates the widget if they changed.
func (w *Widget) ClearFlag(f Flags) {
	w.gui.guard.assertHeld("ClearFlag")
	if w.flags&f != 0 {
		w.flags &^= f
		w.Invalidate()
	}
}

// ToggleFlag flips the bits of f.
func (w *Widget) ToggleFlag(f Flags) {
	w.gui.guard.assertHeld("ToggleFlag")
	w.flags ^= f
	w.Invalidate()
}

// Visible reports whether the widget is not hidden.
func (w *Widget) Visible() bool { return w.flags&FlagHidden == 0 }

// Hide excludes the widget from drawing and hit-testing.
func (w *Widget) Hide() {
	if w.Visible() {
		w.SetFlag(FlagHidden)
		w.InvalidateParent()
	}
}

// Show reverses Hide.
func (w *Widget) Show() {
	if !w.Visible() {
		w.ClearFlag(FlagHidden)
	}
}

// ============================================================================
// Geometry
// ============================================================================

// X returns the position relative to the parent.
func (w *Widget) X() int { return w.x }

// Y returns the position relative to the parent.
func (w *Widget) Y() int { return w.y }

// Width returns the widget width.
func (w *Widget) Width() int { return w.width }

// Height returns the widget height.
func (w *Widget) Height() int { return w.height }

// SetXY moves the widget inside its parent.
func (w *Widget) SetXY(x, y int) {
	w.gui.guard.assertHeld("SetXY")
	if w.x != x || w.y != y {
		w.InvalidateParent()
		w.x, w.y = x, y
		w.Invalidate()
	}
}

// SetSize resizes the widget.
func (w *Widget) SetSize(width, height int) {
	w.gui.guard.assertHeld("SetSize")
	if w.width != width || w.height != height {
		w.InvalidateParent()
		w.width, w.height = width, height
		w.Invalidate()
	}
}

// AbsoluteX returns the screen X coordinate, summing the offsets of all
// ancestors.
func (w *Widget) AbsoluteX() int {
	x := 0
	for p := w; p != nil; p = p.parent {
		x += p.x
	}
	return x
}

// AbsoluteY returns the screen Y coordinate, summing the offsets of all
// ancestors.
func (w *Widget) AbsoluteY() int {
	y := 0
	for p := w; p != nil; p = p.parent {
		y += p.y
	}
	return y
}

// ParentAbsoluteX returns the screen X of the parent's origin (0 for root).
func (w *Widget) ParentAbsoluteX() int {
	if w.parent == nil {
		return 0
	}
	return w.parent.AbsoluteX()
}

// ParentAbsoluteY returns the screen Y of the parent's origin (0 for root).
func (w *Widget) ParentAbsoluteY() int {
	if w.parent == nil {
		return 0
	}
	return w.parent.AbsoluteY()
}

// Contains reports whether the screen point lies inside the widget.
func (w *Widget) Contains(x, y int) bool {
	ax, ay := w.AbsoluteX(), w.AbsoluteY()
	return x >= ax && x < ax+w.width &&
		y >= ay && y < ay+w.height
}

// ============================================================================
// Padding
// ============================================================================

func (w *Widget) Padding() Padding   { return w.padding }
func (w *Widget) PaddingTop() int    { return w.padding.Top }
func (w *Widget) PaddingRight() int  { return w.padding.Right }
func (w *Widget) PaddingBottom() int { return w.padding.Bottom }
func (w *Widget) PaddingLeft() int   { return w.padding.Left }

// SetPadding replaces all four paddings.
func (w *Widget) SetPadding(p Padding) {
	w.gui.guard.assertHeld("SetPadding")
	if w.padding != p {
		w.padding = p
		w.Invalidate()
	}
}

// SetPaddingTop changes the top padding only.
func (w *Widget) SetPaddingTop(v int) {
	p := w.padding
	p.Top = v
	w.SetPadding(p)
}

// ============================================================================
// Text
// ============================================================================

// Font returns the font face, or nil.
func (w *Widget) Font() font.Face { return w.font }

// SetFont sets the font face. The face is shared, not owned.
func (w *Widget) SetFont(f font.Face) {
	w.gui.guard.assertHeld("SetFont")
	w.font = f
	w.Invalidate()
}

// Text returns the widget text.
func (w *Widget) Text() string { return w.text }

// SetText replaces the widget text.
func (w *Widget) SetText(text string) {
	w.gui.guard.assertHeld("SetText")
	if w.text != text {
		w.text = text
		w.Invalidate()
	}
}

// IsFontAndTextSet reports whether the widget has something to write.
func (w *Widget) IsFontAndTextSet() bool {
	return w.font != nil && w.text != ""
}

// ============================================================================
// Colors
// ============================================================================

// Color resolves role: the instance override first, then the GUI theme for
// the type, then the descriptor default. Unknown roles give ColorNone.
func (w *Widget) Color(role int) Color {
	if role < 0 || role >= len(w.desc.Colors) {
		return ColorNone
	}
	if w.colors != nil {
		return w.colors[role]
	}
	if theme := w.gui.themeColors(w.desc.Name); role < len(theme) {
		return theme[role]
	}
	return w.desc.Colors[role]
}

// SetColor overrides role for this instance only. The override table is
// allocated on first use and charged to the allocator.
func (w *Widget) SetColor(role int, c Color) error {
	w.gui.guard.assertHeld("SetColor")
	if role < 0 || role >= len(w.desc.Colors) {
		return fmt.Errorf("%s role %d: %w", w.desc.Name, role, ErrInvalidRole)
	}

	if w.colors == nil {
		n := len(w.desc.Colors)
		if err := w.gui.alloc.Alloc(colorTableSize(n)); err != nil {
			return fmt.Errorf("%s color table: %w", w.desc.Name, noMemory(err))
		}
		table := make([]Color, n)
		for i := range table {
			table[i] = w.Color(i)
		}
		w.colors = table
	}

	if w.colors[role] != c {
		w.colors[role] = c
		w.Invalidate()
	}
	return nil
}

// HasColorOverrides reports whether the instance carries its own table.
func (w *Widget) HasColorOverrides() bool { return w.colors != nil }

func colorTableSize(n int) int {
	return n * 4
}

// ============================================================================
// Focus
// ============================================================================

// IsFocused reports whether the widget holds input focus.
func (w *Widget) IsFocused() bool {
	return w.gui.focused == w
}

// IsFocusedOrDescendant reports whether the widget, or any widget in its
// subtree, holds input focus.
func (w *Widget) IsFocusedOrDescendant() bool {
	for f := w.gui.focused; f != nil; f = f.parent {
		if f == w {
			return true
		}
	}
	return false
}

// IsActiveWindow reports whether the widget is the active window.
func (w *Widget) IsActiveWindow() bool {
	return w.gui.activeWindow == w
}

// ============================================================================
// Dispatch and invalidation
// ============================================================================

// Dispatch sends a control message to the widget's type callback.
func (w *Widget) Dispatch(ctrl Control, param, result any) bool {
	if w.desc.Callback == nil {
		return false
	}
	return w.desc.Callback(w, ctrl, param, result)
}

// SetParam sends a ControlSetParam message and reports the callback's
// success flag. invalidate and invalidateParent schedule repaints.
func (w *Widget) SetParam(typ uint8, data any, invalidate, invalidateParent bool) bool {
	w.gui.guard.assertHeld("SetParam")
	ok := false
	w.Dispatch(ControlSetParam, &Param{Type: typ, Data: data}, &ok)
	if invalidate {
		w.Invalidate()
	}
	if invalidateParent {
		w.InvalidateParent()
	}
	return ok
}

// Invalidate schedules the widget for repainting.
func (w *Widget) Invalidate() {
	w.flags |= FlagInvalid
	w.gui.dirty.Store(true)
}

// InvalidateParent schedules the parent for repainting.
func (w *Widget) InvalidateParent() {
	if w.parent != nil {
		w.parent.Invalidate()
	} else {
		w.gui.dirty.Store(true)
	}
}

// Invalid reports whether the widget is waiting for a repaint.
func (w *Widget) Invalid() bool {
	return w.flags&FlagInvalid != 0
}
