package retained

import (
	"fmt"

	"golang.org/x/image/font"
)

// msg is one control message seen by a test widget.
type msg struct {
	id   WidgetID
	ctrl Control
}

// spy records messages and answers touch with a fixed status.
type spy struct {
	log    []msg
	status TouchStatus
}

func (p *spy) callback(w *Widget, ctrl Control, param, result any) bool {
	p.log = append(p.log, msg{w.ID(), ctrl})
	switch ctrl {
	case ControlDraw:
		if d, ok := param.(Display); ok {
			d.FilledRectangle(w.AbsoluteX(), w.AbsoluteY(), w.Width(), w.Height(), w.Color(0))
		}
		return true
	case ControlTouchStart:
		if r, ok := result.(*TouchStatus); ok {
			*r = p.status
		}
		return p.status != TouchNotHandled
	case ControlInit, ControlRemove, ControlTouchMove, ControlTouchEnd,
		ControlClick, ControlFocusIn, ControlFocusOut:
		return true
	default:
		return false
	}
}

// count returns how many times ctrl reached id.
func (p *spy) count(id WidgetID, ctrl Control) int {
	n := 0
	for _, m := range p.log {
		if m.id == id && m.ctrl == ctrl {
			n++
		}
	}
	return n
}

func newDescs(p *spy) (win, panel, leaf *Descriptor) {
	win = &Descriptor{
		Name:     "TestWindow",
		Size:     16,
		Flags:    DescAllowChildren | DescWindow,
		Callback: p.callback,
		Colors:   []Color{ColorWinLightGray},
	}
	panel = &Descriptor{
		Name:     "TestPanel",
		Size:     8,
		Flags:    DescAllowChildren,
		Callback: p.callback,
		Colors:   []Color{ColorGray},
	}
	leaf = &Descriptor{
		Name:     "TestLeaf",
		Size:     4,
		Callback: p.callback,
		Colors:   []Color{ColorRed, ColorGreen},
	}
	return win, panel, leaf
}

// fixture is a desktop with two child windows, the second one active.
type fixture struct {
	g       *GUI
	p       *spy
	win     *Descriptor
	panel   *Descriptor
	leaf    *Descriptor
	desktop *Widget
	w1, w2  *Widget
	leaf1   *Widget
}

func newFixture(opts Options) *fixture {
	f := &fixture{g: New(opts), p: &spy{status: TouchHandled}}
	f.win, f.panel, f.leaf = newDescs(f.p)

	f.desktop = f.mustCreate(f.win, 1, 0, 0, 240, 320, nil, CreateParentDesktop)
	f.w1 = f.mustCreate(f.win, 2, 10, 10, 100, 60, nil, 0)
	f.leaf1 = f.mustCreate(f.leaf, 3, 5, 30, 20, 20, f.w1, 0)
	f.w2 = f.mustCreate(f.win, 4, 50, 50, 100, 100, nil, 0)
	if err := f.g.SetActive(f.w2); err != nil {
		panic(err)
	}
	return f
}

func (f *fixture) mustCreate(desc *Descriptor, id WidgetID, x, y, w, h int, parent *Widget, flags CreateFlags) *Widget {
	wi, err := f.g.Create(desc, id, x, y, w, h, parent, flags)
	if err != nil {
		panic(fmt.Sprintf("create %d: %v", id, err))
	}
	return wi
}

// drawCall is one primitive seen by fakeDisplay.
type drawCall struct {
	op         string
	x, y, w, h int
	color      Color
}

type fakeDisplay struct {
	calls []drawCall
}

func (d *fakeDisplay) FilledRectangle(x, y, w, h int, c Color) {
	d.calls = append(d.calls, drawCall{"fill", x, y, w, h, c})
}

func (d *fakeDisplay) Rectangle(x, y, w, h int, c Color) {
	d.calls = append(d.calls, drawCall{"rect", x, y, w, h, c})
}

func (d *fakeDisplay) FilledCircle(x, y, r int, c Color) {
	d.calls = append(d.calls, drawCall{"fillcircle", x, y, r, r, c})
}

func (d *fakeDisplay) Circle(x, y, r int, c Color) {
	d.calls = append(d.calls, drawCall{"circle", x, y, r, r, c})
}

func (d *fakeDisplay) WriteText(_ font.Face, _ string, f *TextFrame) {
	d.calls = append(d.calls, drawCall{"text", f.X, f.Y, f.Width, f.Height, f.Color})
}

func ids(ws []*Widget) []WidgetID {
	out := make([]WidgetID, len(ws))
	for i, w := range ws {
		out[i] = w.ID()
	}
	return out
}
