// Package window provides the desktop and child windows. The desktop fills
// the display and is the root of the widget tree; child windows have a
// title band that can be dragged.
package window

import (
	"golang.org/x/image/font"

	"github.com/agiangrant/tinygui/retained"
)

// Color roles of the window color table.
const (
	ColorBg = iota
	ColorText
	ColorTopBgFocus
	ColorTopBgNoFocus
)

// ChildPadding is applied to every child window. Top is the height of the
// title band.
var ChildPadding = retained.Padding{Top: 26, Right: 2, Bottom: 2, Left: 2}

// Descriptor is the window widget type.
var Descriptor = &retained.Descriptor{
	Name:     "Window",
	Size:     64,
	Flags:    retained.DescAllowChildren | retained.DescWindow,
	Callback: callback,
	Colors: []retained.Color{
		retained.ColorWinLightGray,  // background
		retained.ColorWinTextTitle,  // title text
		retained.ColorWinSelFocBg,   // title band, focused
		retained.ColorWinSelNoFocBg, // title band, not focused
	},
}

func callback(w *retained.Widget, ctrl retained.Control, param, result any) bool {
	switch ctrl {
	case retained.ControlDraw:
		d, ok := param.(retained.Display)
		if !ok {
			return false
		}
		draw(w, d)
		return true

	case retained.ControlTouchStart:
		td, ok := param.(*retained.TouchData)
		if !ok {
			return false
		}
		status := retained.TouchHandledNoFocus
		if td.Single() && w.HasFlag(retained.FlagChild) {
			pt := w.PaddingTop()
			// Title band, minus the close button square at its right end
			if td.RelY[0] < pt && td.RelX[0] < w.Width()-pt {
				td.Drag.Start(td.RelX[0], td.RelY[0])
			}
			status = retained.TouchHandled
		}
		if r, ok := result.(*retained.TouchStatus); ok {
			*r = status
		}
		return true

	case retained.ControlTouchMove:
		td, ok := param.(*retained.TouchData)
		if !ok {
			return false
		}
		if td.Drag.Dragging() {
			gx, gy := td.Drag.Offset()
			w.SetXY(
				td.Sample.X[0]-w.ParentAbsoluteX()-gx,
				td.Sample.Y[0]-w.ParentAbsoluteY()-gy,
			)
		}
		return true

	case retained.ControlTouchEnd:
		if td, ok := param.(*retained.TouchData); ok {
			td.Drag.Stop()
		}
		return true

	default:
		return false
	}
}

func draw(w *retained.Widget, d retained.Display) {
	x, y := w.AbsoluteX(), w.AbsoluteY()
	wi, hi := w.Width(), w.Height()
	pt := w.PaddingTop()

	d.FilledRectangle(x, y, wi, hi, w.Color(ColorBg))
	if !w.HasFlag(retained.FlagChild) {
		return
	}

	rectangle3D(d, x, y, wi, hi, lowered)

	x += 2
	y += 2
	wi -= 4
	hi -= 4
	topH := pt - 4

	top := w.Color(ColorTopBgNoFocus)
	if w.IsFocusedOrDescendant() {
		top = w.Color(ColorTopBgFocus)
	}
	d.FilledRectangle(x+1, y+1, wi-2, topH, top)

	// Close button
	rectangle3D(d, x+wi-topH, y+2, topH-2, topH-2, raised)
	d.FilledRectangle(x+wi-topH+2, y+4, topH-6, topH-6, retained.ColorGray)

	if w.IsFontAndTextSet() {
		d.WriteText(w.Font(), w.Text(), &retained.TextFrame{
			X:      x + 3,
			Y:      y + 3,
			Width:  wi - topH - 5,
			Height: topH - 3,
			Align:  retained.HAlignLeft | retained.VAlignCenter,
			Color:  w.Color(ColorText),
		})
	}
}

// ============================================================================
// Public API
// ============================================================================

// Create makes the desktop window, sized to the display, and activates it.
func Create(g *retained.GUI, id retained.WidgetID) (*retained.Widget, error) {
	var (
		w   *retained.Widget
		err error
	)
	g.Do(func() {
		w, err = g.CreateLocked(Descriptor, id, 0, 0, g.LCDWidth(), g.LCDHeight(), nil, retained.CreateParentDesktop)
		if err != nil {
			return
		}
		err = g.SetActiveLocked(w)
	})
	return w, err
}

// CreateChild makes a child window with a title band and activates it.
// A nil parent means the desktop.
func CreateChild(g *retained.GUI, id retained.WidgetID, x, y, width, height int, parent *retained.Widget, flags retained.CreateFlags) (*retained.Widget, error) {
	var (
		w   *retained.Widget
		err error
	)
	g.Do(func() {
		w, err = g.CreateLocked(Descriptor, id, x, y, width, height, parent, flags)
		if err != nil {
			return
		}
		w.SetFlag(retained.FlagChild)
		w.SetPadding(ChildPadding)
		err = g.SetActiveLocked(w)
	})
	return w, err
}

// SetActive makes w the active window.
func SetActive(w *retained.Widget) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	return w.GUI().SetActive(w)
}

// SetActiveLocked is SetActive for callers that already hold the guard,
// such as a control callback.
func SetActiveLocked(w *retained.Widget) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	return w.GUI().SetActiveLocked(w)
}

// SetColor overrides one color role for this window.
func SetColor(w *retained.Widget, role int, c retained.Color) error {
	return locked(w, func() error { return SetColorLocked(w, role, c) })
}

// SetColorLocked is SetColor for callers that already hold the guard.
func SetColorLocked(w *retained.Widget, role int, c retained.Color) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	return w.SetColor(role, c)
}

// SetTitle sets the title text and the face used to draw it.
func SetTitle(w *retained.Widget, face font.Face, title string) error {
	return locked(w, func() error { return SetTitleLocked(w, face, title) })
}

// SetTitleLocked is SetTitle for callers that already hold the guard.
func SetTitleLocked(w *retained.Widget, face font.Face, title string) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	w.SetFont(face)
	w.SetText(title)
	return nil
}

func locked(w *retained.Widget, fn func() error) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	var err error
	w.GUI().Do(func() { err = fn() })
	return err
}

// Desktop returns the root window.
func Desktop(g *retained.GUI) *retained.Widget {
	return g.Desktop()
}
