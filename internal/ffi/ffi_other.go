//go:build !(darwin || linux || freebsd || windows)

package ffi

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/image/font"

	"github.com/agiangrant/tinygui/retained"
)

// ErrUnsupported is returned by Open on platforms without dynamic loading.
var ErrUnsupported = errors.New("native lcd driver not supported on this platform")

// Driver is unavailable on this platform.
type Driver struct{}

func LibraryPath() string { return "" }

func Open(path string) (*Driver, error) {
	return nil, fmt.Errorf("%s/%s: %w", runtime.GOOS, runtime.GOARCH, ErrUnsupported)
}

func (d *Driver) Close() error                                     { return nil }
func (d *Driver) Width() int                                       { return 0 }
func (d *Driver) Height() int                                      { return 0 }
func (d *Driver) FilledRectangle(x, y, w, h int, c retained.Color) {}
func (d *Driver) Rectangle(x, y, w, h int, c retained.Color)       {}
func (d *Driver) FilledCircle(x, y, r int, c retained.Color)       {}
func (d *Driver) Circle(x, y, r int, c retained.Color)             {}
func (d *Driver) WriteText(font.Face, string, *retained.TextFrame) {}
func (d *Driver) Flush()                                           {}
func (d *Driver) ReadTouch() retained.TouchSample                  { return retained.TouchSample{} }
