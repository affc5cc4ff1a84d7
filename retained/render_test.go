package retained

import (
	"slices"
	"testing"
)

func drawn(p *spy) []WidgetID {
	var out []WidgetID
	for _, m := range p.log {
		if m.ctrl == ControlDraw {
			out = append(out, m.id)
		}
	}
	return out
}

func TestRenderOrder(t *testing.T) {
	f := newFixture(Options{})
	d := &fakeDisplay{}

	f.p.log = nil
	f.g.Render(d)
	if got := drawn(f.p); !slices.Equal(got, []WidgetID{1, 2, 3, 4}) {
		t.Errorf("draw order = %v, want [1 2 3 4]", got)
	}
	if len(d.calls) != 4 {
		t.Errorf("display got %d calls, want 4", len(d.calls))
	}

	f.g.MoveToTop(f.w1)
	f.p.log = nil
	f.g.Render(d)
	if got := drawn(f.p); !slices.Equal(got, []WidgetID{1, 4, 2, 3}) {
		t.Errorf("draw order after MoveToTop = %v, want [1 4 2 3]", got)
	}

	f.g.Do(f.w1.Hide)
	f.p.log = nil
	f.g.Render(d)
	if got := drawn(f.p); !slices.Equal(got, []WidgetID{1, 4}) {
		t.Errorf("draw order with hidden window = %v, want [1 4]", got)
	}
}

func TestRedraw(t *testing.T) {
	f := newFixture(Options{})
	d := &fakeDisplay{}

	if !f.g.Dirty() {
		t.Fatal("fresh tree not dirty")
	}
	if !f.g.Redraw(d) {
		t.Fatal("Redraw skipped a dirty tree")
	}
	if f.g.Dirty() || f.leaf1.Invalid() {
		t.Error("render pass left invalid state")
	}
	if f.g.Redraw(d) {
		t.Error("Redraw painted a clean tree")
	}

	f.g.Do(func() { f.leaf1.SetXY(1, 1) })
	if !f.g.Dirty() {
		t.Error("SetXY did not mark the tree dirty")
	}
	if !f.g.Redraw(d) {
		t.Error("Redraw skipped after SetXY")
	}

	// No-op changes keep the tree clean
	f.g.Do(func() { f.leaf1.SetXY(1, 1) })
	if f.g.Redraw(d) {
		t.Error("Redraw painted after a no-op SetXY")
	}
}

func TestRenderEmpty(t *testing.T) {
	g := New(Options{})
	d := &fakeDisplay{}
	g.Render(d)
	if len(d.calls) != 0 {
		t.Errorf("empty GUI drew %d primitives", len(d.calls))
	}
}

func TestUnknownControl(t *testing.T) {
	f := newFixture(Options{})
	f.g.Render(&fakeDisplay{})

	flags := f.leaf1.Flags()
	x, y := f.leaf1.X(), f.leaf1.Y()

	if f.g.Dispatch(f.leaf1, Control(200), nil, nil) {
		t.Error("unknown control reported as handled")
	}
	if f.leaf1.Flags() != flags || f.leaf1.X() != x || f.leaf1.Y() != y {
		t.Error("unknown control mutated the widget")
	}
	if f.g.Dispatch(nil, ControlDraw, nil, nil) {
		t.Error("dispatch to nil reported as handled")
	}
	if Control(200).String() != "Unknown" || ControlTouchStart.String() != "TouchStart" {
		t.Error("Control.String mismatch")
	}
}

func TestSetParam(t *testing.T) {
	var seen *Param
	desc := &Descriptor{
		Name: "Param",
		Callback: func(w *Widget, ctrl Control, param, result any) bool {
			if ctrl != ControlSetParam {
				return false
			}
			seen = param.(*Param)
			*result.(*bool) = seen.Type == 1
			return true
		},
	}
	f := newFixture(Options{})
	w := f.mustCreate(desc, 10, 0, 0, 5, 5, f.w2, 0)
	f.g.Render(&fakeDisplay{})

	var ok bool
	f.g.Do(func() { ok = w.SetParam(1, "x", false, true) })
	if !ok || seen.Data != "x" {
		t.Errorf("SetParam ok = %v, data = %v", ok, seen.Data)
	}
	if w.Invalid() || !f.w2.Invalid() {
		t.Error("invalidate flags not honored")
	}

	f.g.Do(func() { ok = w.SetParam(2, nil, true, false) })
	if ok || !w.Invalid() {
		t.Errorf("rejected SetParam ok = %v, invalid = %v", ok, w.Invalid())
	}
}
