package retained

import "golang.org/x/image/font"

// Display is the drawing surface widgets paint on during a Draw message.
// All coordinates are absolute screen pixels. Clipping is the display's
// concern.
type Display interface {
	FilledRectangle(x, y, width, height int, c Color)
	Rectangle(x, y, width, height int, c Color)
	FilledCircle(x, y, r int, c Color)
	Circle(x, y, r int, c Color)
	WriteText(face font.Face, text string, f *TextFrame)
}

// Geometry reports the size of the physical surface.
type Geometry interface {
	Width() int
	Height() int
}

// FixedGeometry is a Geometry of constant size.
type FixedGeometry struct {
	W, H int
}

func (g FixedGeometry) Width() int  { return g.W }
func (g FixedGeometry) Height() int { return g.H }

// Align controls text placement inside a TextFrame.
type Align uint8

const (
	HAlignLeft Align = 1 << iota
	HAlignCenter
	HAlignRight
	VAlignTop
	VAlignCenter
	VAlignBottom
)

// TextFrame describes where and how WriteText lays out a string.
type TextFrame struct {
	X, Y          int
	Width, Height int
	Align         Align
	Color         Color
}
