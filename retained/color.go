package retained

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit ARGB color (0xAARRGGBB). It implements color.Color so
// display backends built on the image package can use it directly.
type Color uint32

// ColorNone is fully transparent. It is also returned for unknown roles.
const ColorNone Color = 0

// Basic palette.
const (
	ColorBlack     Color = 0xFF000000
	ColorWhite     Color = 0xFFFFFFFF
	ColorRed       Color = 0xFFFF0000
	ColorGreen     Color = 0xFF00FF00
	ColorBlue      Color = 0xFF0000FF
	ColorYellow    Color = 0xFFFFFF00
	ColorCyan      Color = 0xFF00FFFF
	ColorMagenta   Color = 0xFFFF00FF
	ColorOrange    Color = 0xFFFFA500
	ColorGray      Color = 0xFF808080
	ColorLightGray Color = 0xFFC0C0C0
	ColorDarkGray  Color = 0xFF404040
	ColorLightBlue Color = 0xFF8080FF
	ColorDarkBlue  Color = 0xFF000080
)

// Window-system palette used by the window widget and 3D frames.
const (
	ColorWinLightGray  Color = 0xFFD4D0C8
	ColorWinDarkGray   Color = 0xFF404040
	ColorWinMidGray    Color = 0xFF808080
	ColorWinTextTitle  Color = 0xFFFFFFFF
	ColorWinSelFocBg   Color = 0xFF0A246A
	ColorWinSelNoFocBg Color = 0xFF808080
)

var colorNames = map[string]Color{
	"none":      ColorNone,
	"black":     ColorBlack,
	"white":     ColorWhite,
	"red":       ColorRed,
	"green":     ColorGreen,
	"blue":      ColorBlue,
	"yellow":    ColorYellow,
	"cyan":      ColorCyan,
	"magenta":   ColorMagenta,
	"orange":    ColorOrange,
	"gray":      ColorGray,
	"lightgray": ColorLightGray,
	"darkgray":  ColorDarkGray,
	"lightblue": ColorLightBlue,
	"darkblue":  ColorDarkBlue,
}

// ARGB returns the 8-bit channels.
func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a8, r8, g8, b8 := c.ARGB()
	a = uint32(a8)
	r = uint32(r8) * a / 0xFF
	g = uint32(g8) * a / 0xFF
	b = uint32(b8) * a / 0xFF
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or a palette name such as
// "lightblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return ColorNone, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorNone, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(v), nil
	default:
		return ColorNone, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}
