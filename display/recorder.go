package display

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/agiangrant/tinygui/retained"
)

// Op names a recorded primitive.
type Op string

const (
	OpFilledRectangle Op = "FilledRectangle"
	OpRectangle       Op = "Rectangle"
	OpFilledCircle    Op = "FilledCircle"
	OpCircle          Op = "Circle"
	OpWriteText       Op = "WriteText"
)

// Call is one recorded primitive.
type Call struct {
	Op    Op
	X, Y  int
	W, H  int // R in W for circles
	Color retained.Color
	Text  string
}

func (c Call) String() string {
	if c.Op == OpWriteText {
		return fmt.Sprintf("%s(%d,%d,%d,%d,%q,%s)", c.Op, c.X, c.Y, c.W, c.H, c.Text, c.Color)
	}
	return fmt.Sprintf("%s(%d,%d,%d,%d,%s)", c.Op, c.X, c.Y, c.W, c.H, c.Color)
}

// Recorder is a Display that records every call. Optionally forwards to
// another Display.
type Recorder struct {
	Calls []Call
	Next  retained.Display
}

// Reset drops recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

func (r *Recorder) FilledRectangle(x, y, w, h int, c retained.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledRectangle, X: x, Y: y, W: w, H: h, Color: c})
	if r.Next != nil {
		r.Next.FilledRectangle(x, y, w, h, c)
	}
}

func (r *Recorder) Rectangle(x, y, w, h int, c retained.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRectangle, X: x, Y: y, W: w, H: h, Color: c})
	if r.Next != nil {
		r.Next.Rectangle(x, y, w, h, c)
	}
}

func (r *Recorder) FilledCircle(x, y, radius int, c retained.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledCircle, X: x, Y: y, W: radius, Color: c})
	if r.Next != nil {
		r.Next.FilledCircle(x, y, radius, c)
	}
}

func (r *Recorder) Circle(x, y, radius int, c retained.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: x, Y: y, W: radius, Color: c})
	if r.Next != nil {
		r.Next.Circle(x, y, radius, c)
	}
}

func (r *Recorder) WriteText(face font.Face, text string, f *retained.TextFrame) {
	r.Calls = append(r.Calls, Call{Op: OpWriteText, X: f.X, Y: f.Y, W: f.Width, H: f.Height, Color: f.Color, Text: text})
	if r.Next != nil {
		r.Next.WriteText(face, text, f)
	}
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
