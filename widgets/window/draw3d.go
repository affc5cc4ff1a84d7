package window

import "github.com/agiangrant/tinygui/retained"

type bevel uint8

const (
	lowered bevel = iota
	raised
)

// rectangle3D draws a two-pixel bevelled frame from 1px filled strips.
func rectangle3D(d retained.Display, x, y, width, height int, b bevel) {
	if width < 4 || height < 4 {
		d.Rectangle(x, y, width, height, retained.ColorWinDarkGray)
		return
	}

	outerTL, innerTL := retained.ColorWinMidGray, retained.ColorWinDarkGray
	outerBR, innerBR := retained.ColorWhite, retained.ColorWinLightGray
	if b == raised {
		outerTL, outerBR = outerBR, outerTL
		innerTL, innerBR = innerBR, innerTL
	}

	hline := func(x, y, w int, c retained.Color) { d.FilledRectangle(x, y, w, 1, c) }
	vline := func(x, y, h int, c retained.Color) { d.FilledRectangle(x, y, 1, h, c) }

	// Outer frame
	hline(x, y, width, outerTL)
	vline(x, y, height, outerTL)
	hline(x, y+height-1, width, outerBR)
	vline(x+width-1, y, height, outerBR)

	// Inner frame
	hline(x+1, y+1, width-2, innerTL)
	vline(x+1, y+1, height-2, innerTL)
	hline(x+1, y+height-2, width-2, innerBR)
	vline(x+width-2, y+1, height-2, innerBR)
}
