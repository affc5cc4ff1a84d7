// Package display provides Display implementations for hosts without a
// panel: an in-memory framebuffer that can be saved as PNG, and a recorder
// that keeps the primitive calls for inspection.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/agiangrant/tinygui/retained"
)

// Framebuffer is a software display backed by an RGBA image. Drawing is
// clipped to the image bounds.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a width x height framebuffer cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	fb.Clear(retained.ColorBlack)
	return fb
}

// Width implements retained.Geometry.
func (f *Framebuffer) Width() int { return f.img.Bounds().Dx() }

// Height implements retained.Geometry.
func (f *Framebuffer) Height() int { return f.img.Bounds().Dy() }

// Image returns the backing image.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// At returns the pixel at (x, y) as a Color.
func (f *Framebuffer) At(x, y int) retained.Color {
	c := f.img.RGBAAt(x, y)
	return retained.Color(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// Clear fills the whole surface.
func (f *Framebuffer) Clear(c retained.Color) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FilledRectangle implements retained.Display.
func (f *Framebuffer) FilledRectangle(x, y, width, height int, c retained.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	r := image.Rect(x, y, x+width, y+height).Intersect(f.img.Bounds())
	draw.Draw(f.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// Rectangle implements retained.Display.
func (f *Framebuffer) Rectangle(x, y, width, height int, c retained.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	f.FilledRectangle(x, y, width, 1, c)
	f.FilledRectangle(x, y+height-1, width, 1, c)
	f.FilledRectangle(x, y, 1, height, c)
	f.FilledRectangle(x+width-1, y, 1, height, c)
}

// FilledCircle implements retained.Display.
func (f *Framebuffer) FilledCircle(cx, cy, r int, c retained.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				f.plot(cx+dx, cy+dy, c)
			}
		}
	}
}

// Circle implements retained.Display with the midpoint algorithm.
func (f *Framebuffer) Circle(cx, cy, r int, c retained.Color) {
	x, y := r, 0
	e := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			f.plot(cx+p[0], cy+p[1], c)
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

// WriteText implements retained.Display. A nil face falls back to the
// 7x13 basic font. Text is clipped to the frame.
func (f *Framebuffer) WriteText(face font.Face, text string, tf *retained.TextFrame) {
	if face == nil {
		face = basicfont.Face7x13
	}
	clip := image.Rect(tf.X, tf.Y, tf.X+tf.Width, tf.Y+tf.Height).Intersect(f.img.Bounds())
	if clip.Empty() {
		return
	}

	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent

	x := fixed.I(tf.X)
	switch {
	case tf.Align&retained.HAlignCenter != 0:
		x += (fixed.I(tf.Width) - width) / 2
	case tf.Align&retained.HAlignRight != 0:
		x += fixed.I(tf.Width) - width
	}

	y := fixed.I(tf.Y) + metrics.Ascent
	switch {
	case tf.Align&retained.VAlignCenter != 0:
		y += (fixed.I(tf.Height) - height) / 2
	case tf.Align&retained.VAlignBottom != 0:
		y += fixed.I(tf.Height) - height
	}

	dst := f.img.SubImage(clip).(*image.RGBA)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(tf.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(text)
}

func (f *Framebuffer) plot(x, y int, c retained.Color) {
	if !(image.Point{X: x, Y: y}).In(f.img.Bounds()) {
		return
	}
	if _, _, _, a := c.RGBA(); a == 0xFFFF {
		f.img.Set(x, y, c)
		return
	}
	dst := f.img.RGBAAt(x, y)
	out := color.RGBAModel.Convert(over(c, dst)).(color.RGBA)
	f.img.SetRGBA(x, y, out)
}

// over composites src over dst.
func over(src, dst color.Color) color.Color {
	sr, sg, sb, sa := src.RGBA()
	dr, dg, db, da := dst.RGBA()
	inv := 0xFFFF - sa
	return color.RGBA64{
		R: uint16(sr + dr*inv/0xFFFF),
		G: uint16(sg + dg*inv/0xFFFF),
		B: uint16(sb + db*inv/0xFFFF),
		A: uint16(sa + da*inv/0xFFFF),
	}
}

// EncodePNG writes the framebuffer as PNG.
func (f *Framebuffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, f.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the framebuffer to path.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := f.EncodePNG(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
