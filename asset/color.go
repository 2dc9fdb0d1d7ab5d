// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"fmt"
	"image/color"
)

// Color is an index into the active palette.
type Color uint8

// NoColorKey disables color keying in conversions that accept a color key.
const NoColorKey = -1

// Rgb24 is a packed 0xRRGGBB palette entry.
type Rgb24 uint32

// RGBA converts the palette entry to an opaque color.RGBA.
func (c Rgb24) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

// String returns the entry as "#rrggbb".
func (c Rgb24) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Palette converts a slice of palette entries to a color.Palette.
func Palette(colors []Rgb24) color.Palette {
	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = c.RGBA()
	}
	return p
}

// parseHexDigit returns the value of a single hex digit.
func parseHexDigit(c byte) (Color, bool) {
	switch {
	case '0' <= c && c <= '9':
		return Color(c - '0'), true
	case 'a' <= c && c <= 'f':
		return Color(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return Color(c - 'A' + 10), true
	default:
		return 0, false
	}
}
