//go:build darwin || linux || freebsd || windows

// Package ffi binds a native LCD/touch driver library via purego, without
// CGo. The library must export this C ABI:
//
//	int32_t lcd_width(void);
//	int32_t lcd_height(void);
//	void    lcd_fill_rect(int32_t x, int32_t y, int32_t w, int32_t h, uint32_t argb);
//	void    lcd_draw_rect(int32_t x, int32_t y, int32_t w, int32_t h, uint32_t argb);
//	void    lcd_fill_circle(int32_t x, int32_t y, int32_t r, uint32_t argb);
//	void    lcd_draw_circle(int32_t x, int32_t y, int32_t r, uint32_t argb);
//	void    lcd_write_text(int32_t x, int32_t y, int32_t w, int32_t h,
//	                       uint32_t argb, uint8_t align, const char *text);
//	int32_t ts_read(int32_t *x, int32_t *y, int32_t max);
//
// and optionally:
//
//	int32_t lcd_init(void);
//	void    lcd_flush(void);
//
// Text is rendered with the driver's own font; the Go font face is ignored.
// ts_read is called from a different goroutine than the lcd_* functions.
package ffi

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/image/font"

	"github.com/agiangrant/tinygui/retained"
)

// Driver is a loaded native driver. It implements retained.Display and
// retained.Geometry and reads touch samples.
type Driver struct {
	handle uintptr

	fnWidth      func() int32
	fnHeight     func() int32
	fnFillRect   func(x, y, w, h int32, argb uint32)
	fnDrawRect   func(x, y, w, h int32, argb uint32)
	fnFillCircle func(x, y, r int32, argb uint32)
	fnDrawCircle func(x, y, r int32, argb uint32)
	fnWriteText  func(x, y, w, h int32, argb uint32, align uint8, text string)
	fnTouchRead  func(xs, ys uintptr, max int32) int32

	// Optional
	fnInit  func() int32
	fnFlush func()
}

// LibraryPath returns the driver path: TINYGUI_DRIVER if set, else the
// platform default name found next to the executable or in the working
// directory.
func LibraryPath() string {
	if path := os.Getenv("TINYGUI_DRIVER"); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin":
		libName = "libtinygui_lcd.dylib"
	case "windows":
		libName = "tinygui_lcd.dll"
	default:
		libName = "libtinygui_lcd.so"
	}

	searchPaths := []string{libName}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	// Let the system loader search
	return libName
}

// Open loads the driver library at path and binds its functions.
func Open(path string) (*Driver, error) {
	log.Printf("ffi: loading lcd driver from %s (%s/%s)", path, runtime.GOOS, runtime.GOARCH)

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lcd driver from %s: %w", path, err)
	}

	d := &Driver{handle: handle}
	required := []struct {
		fn   any
		name string
	}{
		{&d.fnWidth, "lcd_width"},
		{&d.fnHeight, "lcd_height"},
		{&d.fnFillRect, "lcd_fill_rect"},
		{&d.fnDrawRect, "lcd_draw_rect"},
		{&d.fnFillCircle, "lcd_fill_circle"},
		{&d.fnDrawCircle, "lcd_draw_circle"},
		{&d.fnWriteText, "lcd_write_text"},
		{&d.fnTouchRead, "ts_read"},
	}
	for _, r := range required {
		if err := d.register(r.fn, r.name); err != nil {
			closeLibrary(handle)
			return nil, err
		}
	}
	// Optional symbols
	_ = d.register(&d.fnInit, "lcd_init")
	_ = d.register(&d.fnFlush, "lcd_flush")

	if d.fnInit != nil {
		if rc := d.fnInit(); rc != 0 {
			closeLibrary(handle)
			return nil, fmt.Errorf("lcd_init failed with code %d", rc)
		}
	}
	return d, nil
}

func (d *Driver) register(fn any, name string) error {
	sym, err := getSymbol(d.handle, name)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	purego.RegisterFunc(fn, sym)
	return nil
}

// Close unloads the library.
func (d *Driver) Close() error {
	if d.handle == 0 {
		return nil
	}
	err := closeLibrary(d.handle)
	d.handle = 0
	return err
}

// ============================================================================
// retained.Geometry / retained.Display
// ============================================================================

func (d *Driver) Width() int  { return int(d.fnWidth()) }
func (d *Driver) Height() int { return int(d.fnHeight()) }

func (d *Driver) FilledRectangle(x, y, w, h int, c retained.Color) {
	d.fnFillRect(int32(x), int32(y), int32(w), int32(h), uint32(c))
}

func (d *Driver) Rectangle(x, y, w, h int, c retained.Color) {
	d.fnDrawRect(int32(x), int32(y), int32(w), int32(h), uint32(c))
}

func (d *Driver) FilledCircle(x, y, r int, c retained.Color) {
	d.fnFillCircle(int32(x), int32(y), int32(r), uint32(c))
}

func (d *Driver) Circle(x, y, r int, c retained.Color) {
	d.fnDrawCircle(int32(x), int32(y), int32(r), uint32(c))
}

func (d *Driver) WriteText(_ font.Face, text string, f *retained.TextFrame) {
	d.fnWriteText(int32(f.X), int32(f.Y), int32(f.Width), int32(f.Height), uint32(f.Color), uint8(f.Align), text)
}

// Flush pushes the frame to the panel when the driver buffers.
func (d *Driver) Flush() {
	if d.fnFlush != nil {
		d.fnFlush()
	}
}

// ============================================================================
// Touch
// ============================================================================

// ReadTouch polls the touch controller.
func (d *Driver) ReadTouch() retained.TouchSample {
	var xs, ys [retained.MaxTouchPoints]int32
	n := d.fnTouchRead(
		uintptr(unsafe.Pointer(&xs[0])),
		uintptr(unsafe.Pointer(&ys[0])),
		retained.MaxTouchPoints,
	)
	runtime.KeepAlive(&xs)
	runtime.KeepAlive(&ys)

	var s retained.TouchSample
	s.Count = int(n)
	if s.Count > retained.MaxTouchPoints {
		s.Count = retained.MaxTouchPoints
	}
	for i := 0; i < s.Count; i++ {
		s.X[i], s.Y[i] = int(xs[i]), int(ys[i])
	}
	return s
}
