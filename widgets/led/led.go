// Package led is a two-state indicator widget drawn as a rectangle or a
// circle.
package led

import (
	"errors"

	"github.com/agiangrant/tinygui/retained"
)

// Color roles of the LED color table.
const (
	ColorOn = iota
	ColorOff
	ColorOnBorder
	ColorOffBorder
)

// Shape selects how the LED is drawn.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// FlagOn is the widget flag holding the LED state.
const FlagOn = retained.FlagUser0

// SetParam types understood by the LED callback.
const (
	cfgToggle uint8 = iota + 1
	cfgSet
	cfgShape
)

var errRejected = errors.New("led: parameter rejected")

type state struct {
	shape Shape
}

// Descriptor is the LED widget type.
var Descriptor = &retained.Descriptor{
	Name:     "LED",
	Size:     48,
	Flags:    0,
	Callback: callback,
	Colors: []retained.Color{
		retained.ColorLightBlue, // on
		retained.ColorDarkBlue,  // off
		retained.ColorGray,      // border when on
		retained.ColorBlack,     // border when off
	},
	NewState: func() any { return &state{} },
}

func callback(w *retained.Widget, ctrl retained.Control, param, result any) bool {
	switch ctrl {
	case retained.ControlSetParam:
		p, ok := param.(*retained.Param)
		if !ok {
			return false
		}
		done := true
		switch p.Type {
		case cfgSet:
			on, ok := p.Data.(bool)
			switch {
			case !ok:
				done = false
			case on:
				w.SetFlag(FlagOn)
			default:
				w.ClearFlag(FlagOn)
			}
		case cfgToggle:
			w.ToggleFlag(FlagOn)
		case cfgShape:
			shape, ok := p.Data.(Shape)
			if !ok {
				done = false
				break
			}
			w.State().(*state).shape = shape
		default:
			done = false
		}
		if r, ok := result.(*bool); ok {
			*r = done
		}
		return true

	case retained.ControlDraw:
		d, ok := param.(retained.Display)
		if !ok {
			return false
		}
		draw(w, d)
		return true

	default:
		return false
	}
}

func draw(w *retained.Widget, d retained.Display) {
	x, y := w.AbsoluteX(), w.AbsoluteY()
	width, height := w.Width(), w.Height()

	fill, border := w.Color(ColorOff), w.Color(ColorOffBorder)
	if w.HasFlag(FlagOn) {
		fill, border = w.Color(ColorOn), w.Color(ColorOnBorder)
	}

	if w.State().(*state).shape == ShapeRect {
		d.FilledRectangle(x+1, y+1, width-2, height-2, fill)
		d.Rectangle(x, y, width, height, border)
		return
	}
	d.FilledCircle(x+width/2, y+height/2, width/2, fill)
	d.Circle(x+width/2, y+height/2, width/2, border)
}

// ============================================================================
// Public API
// ============================================================================

// Create adds an LED to parent (nil means the desktop).
func Create(g *retained.GUI, id retained.WidgetID, x, y, width, height int, parent *retained.Widget, flags retained.CreateFlags) (*retained.Widget, error) {
	return g.Create(Descriptor, id, x, y, width, height, parent, flags)
}

// Setters come in pairs. The plain form enters the GUI guard; the Locked
// form is for code that already runs inside it, such as a control callback
// of another widget or a function passed to GUI.Do.

// SetColor overrides one color role for this LED.
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

// SetShape switches between rectangle and circle.
func SetShape(w *retained.Widget, shape Shape) error {
	return locked(w, func() error { return SetShapeLocked(w, shape) })
}

// SetShapeLocked is SetShape for callers that already hold the guard.
func SetShapeLocked(w *retained.Widget, shape Shape) error {
	return setParam(w, cfgShape, shape, true)
}

// Toggle flips the LED state.
func Toggle(w *retained.Widget) error {
	return locked(w, func() error { return ToggleLocked(w) })
}

// ToggleLocked is Toggle for callers that already hold the guard.
func ToggleLocked(w *retained.Widget) error {
	return setParam(w, cfgToggle, nil, false)
}

// Set turns the LED on or off.
func Set(w *retained.Widget, on bool) error {
	return locked(w, func() error { return SetLocked(w, on) })
}

// SetLocked is Set for callers that already hold the guard.
func SetLocked(w *retained.Widget, on bool) error {
	return setParam(w, cfgSet, on, false)
}

// IsOn reports whether the LED is on. It is false for non-LED widgets.
func IsOn(w *retained.Widget) bool {
	if retained.CheckType(w, Descriptor) != nil {
		return false
	}
	var on bool
	w.GUI().Do(func() { on = IsOnLocked(w) })
	return on
}

// IsOnLocked is IsOn for callers that already hold the guard.
func IsOnLocked(w *retained.Widget) bool {
	return retained.CheckType(w, Descriptor) == nil && w.HasFlag(FlagOn)
}

// locked runs fn inside the guard. The type is checked first so a wrong
// widget is rejected without touching its GUI.
func locked(w *retained.Widget, fn func() error) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	var err error
	w.GUI().Do(func() { err = fn() })
	return err
}

func setParam(w *retained.Widget, typ uint8, data any, invalidateParent bool) error {
	if err := retained.CheckType(w, Descriptor); err != nil {
		return err
	}
	if !w.SetParam(typ, data, true, invalidateParent) {
		return errRejected
	}
	return nil
}
