// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package builtin holds the engine's literal data: slot counts, default
// configuration, the default palette, the font glyph table, the cursor and
// icon bitmaps, and the default tone presets.
package builtin

import "github.com/gogpu/retro/asset"

// Slot counts. They are fixed for the lifetime of a process.
const (
	NumImages   = 3
	ImageSize   = 256
	NumTilemaps = 8
	TilemapSize = 256

	NumChannels = 4
	NumTones    = 4
	NumSounds   = 64
	NumMusics   = 8
)

// Bootstrap defaults.
const (
	DefaultTitle = "Retro"
	DefaultFPS   = 30

	// DisplayRatio is the largest fraction of the physical display the
	// window may cover when the display scale is derived automatically.
	DisplayRatio = 0.75

	DefaultCaptureScale = 2
	DefaultCaptureSec   = 10
)

// Cursor bitmap.
const (
	CursorWidth  = 8
	CursorHeight = 8
)

// CursorData is the mouse cursor, one hex palette index per pixel.
var CursorData = []string{
	"11111100",
	"17776100",
	"17761000",
	"17676100",
	"16167610",
	"11016761",
	"00001610",
	"00000100",
}

// Window icon.
const (
	IconScale  = 4
	IconColkey = 0
)

// IconData is the default window icon, one hex palette index per pixel.
var IconData = []string{
	"0000000000000000",
	"0111111111111110",
	"0177777777777710",
	"0171111111111710",
	"0171cc1111cc1710",
	"0171cc1111cc1710",
	"0171111111111710",
	"0171111111111710",
	"01711e1111e11710",
	"017111eeee111710",
	"0171111111111710",
	"0177777777777710",
	"0111111111111110",
	"0000011111100000",
	"0001111111111000",
	"0000000000000000",
}

// DefaultColors is the default 16-entry palette.
var DefaultColors = []asset.Rgb24{
	0x000000, 0x2b335f, 0x7e2072, 0x19959c,
	0x8b4852, 0x395c98, 0xa9c1ff, 0xeeeeee,
	0xd4186c, 0xd38441, 0xe9c35b, 0x70c6a9,
	0x7696de, 0xa3a3a3, 0xff9798, 0xedc7b0,
}
