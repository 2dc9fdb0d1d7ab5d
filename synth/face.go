// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package synth

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/retro/asset"
	"github.com/gogpu/retro/internal/builtin"
)

// fontAscent is the number of glyph rows above the baseline.
const fontAscent = builtin.FontHeight - 1

// FontFace exposes a font atlas produced by Font as a font.Face, so text
// collaborators can measure and draw with font.Drawer.
//
// The atlas is read once; later edits to it are not reflected in the face.
// Runes outside the glyph table render as nothing and advance by one cell.
func FontFace(atlas *asset.Image) *basicfont.Face {
	const (
		fw   = builtin.FontWidth
		fh   = builtin.FontHeight
		rows = builtin.NumFontRows
	)
	numGlyphs := (atlas.Width() / fw) * (atlas.Height() / fh)

	// basicfont wants glyphs stacked in a single column.
	mask := image.NewAlpha(image.Rect(0, 0, fw, fh*numGlyphs))
	for i := 0; i < numGlyphs; i++ {
		ox := (i % rows) * fw
		oy := (i / rows) * fh
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				if atlas.Pget(ox+x, oy+y) != glyphOff {
					mask.SetAlpha(x, i*fh+y, color.Alpha{A: 0xff})
				}
			}
		}
	}

	return &basicfont.Face{
		Advance: fw,
		Width:   fw,
		Height:  fh,
		Ascent:  fontAscent,
		Descent: fh - fontAscent,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: builtin.FontFirstRune, High: rune(builtin.FontFirstRune + numGlyphs), Offset: 0},
		},
	}
}
