// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package synth builds the engine's built-in assets from literal tables:
// the mouse cursor, the bitmap font atlas, the default tone presets and the
// window icon. Every generator is deterministic and performs no I/O.
package synth

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/retro/asset"
	"github.com/gogpu/retro/internal/builtin"
	"github.com/gogpu/retro/internal/logging"
)

// Font glyph pixel values.
const (
	glyphOff asset.Color = 0
	glyphOn  asset.Color = 1
)

// glyphTopBit is the first pixel of a packed glyph.
const glyphTopBit = 0x800000

// Cursor returns the mouse cursor image.
func Cursor() *asset.Image {
	img := asset.NewImage(builtin.CursorWidth, builtin.CursorHeight)
	img.Set(0, 0, builtin.CursorData)
	return img
}

// Font returns the bitmap font atlas built from builtin.FontData.
//
// Glyphs are laid out builtin.NumFontRows per atlas row. Glyph i sits at
// column i%NumFontRows and row i/NumFontRows; its pixels come from the packed
// glyph word starting at bit 0x800000, shifting left after each pixel.
func Font() *asset.Image {
	return FontFrom(builtin.FontData)
}

// FontFrom builds a font atlas from an arbitrary packed glyph table using the
// built-in glyph geometry.
func FontFrom(glyphs []uint32) *asset.Image {
	const (
		fw   = builtin.FontWidth
		fh   = builtin.FontHeight
		rows = builtin.NumFontRows
	)
	width := fw * rows
	height := fh * ((len(glyphs) + rows - 1) / rows)
	img := asset.NewImage(width, height)

	for i, data := range glyphs {
		row := i / rows
		col := i % rows
		for yi := 0; yi < fh; yi++ {
			for xi := 0; xi < fw; xi++ {
				c := glyphOff
				if data&glyphTopBit != 0 {
					c = glyphOn
				}
				img.WriteData(fw*col+xi, fh*row+yi, c)
				data <<= 1
			}
		}
	}

	logging.Logger().Debug("synth: font atlas built",
		"glyphs", len(glyphs), "width", width, "height", height)
	return img
}

// DefaultTone returns the literal preset for tone slot index.
//
// The number of tone slots is a compile-time constant matching the preset
// table exactly, so an index outside it is a programming error and panics.
func DefaultTone(index int) asset.Tone {
	if index < 0 || index >= len(builtin.DefaultTones) {
		panic(fmt.Sprintf("synth: no default tone for index %d (have %d presets)",
			index, len(builtin.DefaultTones)))
	}
	p := builtin.DefaultTones[index]
	tone := asset.Tone{
		Mode:       p.Mode,
		SampleBits: p.SampleBits,
		Wavetable:  make([]asset.ToneSample, len(p.Wavetable)),
		Gain:       p.Gain,
	}
	copy(tone.Wavetable, p.Wavetable)
	return tone
}

// Icon renders hex rows with colors, makes colkey transparent and scales the
// result by scale using nearest-neighbour sampling.
func Icon(rows []string, scale, colkey int, colors []asset.Rgb24) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	src := asset.NewImage(width, len(rows))
	src.Set(0, 0, rows)
	rgba := src.RGBA(colors, colkey)

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, len(rows)*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), draw.Src, nil)
	return dst
}
