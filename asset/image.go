// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/retro/shared"
)

// Image is a palette-indexed pixel canvas.
type Image struct {
	width  int
	height int
	data   []Color // row-major palette indices
}

// SharedImage is an Image behind a shared handle.
type SharedImage = shared.Handle[Image]

// NewImage creates a cleared image with the given dimensions.
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("asset: invalid image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]Color, width*height),
	}
}

// NewSharedImage creates a cleared image wrapped in a new handle.
func NewSharedImage(width, height int) *SharedImage {
	return shared.New(*NewImage(width, height))
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// Data returns the raw palette indices in row-major order.
func (img *Image) Data() []Color {
	return img.data
}

// Pget returns the color at (x, y), or 0 outside the image.
func (img *Image) Pget(x, y int) Color {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0
	}
	return img.data[y*img.width+x]
}

// Pset sets the color at (x, y). Out-of-bounds writes are ignored.
func (img *Image) Pset(x, y int, c Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.width+x] = c
}

// WriteData stores c at (x, y) without bounds clipping.
// Callers guarantee the coordinate is inside the image.
func (img *Image) WriteData(x, y int, c Color) {
	img.data[y*img.width+x] = c
}

// Cls fills the whole image with c.
func (img *Image) Cls(c Color) {
	for i := range img.data {
		img.data[i] = c
	}
}

// Set writes rows of hex digits starting at (x, y), one digit per pixel.
// Pixels outside the image are clipped. A non-hex digit panics: rows are
// literal engine data, not user input.
func (img *Image) Set(x, y int, rows []string) {
	for yi, row := range rows {
		for xi := 0; xi < len(row); xi++ {
			c, ok := parseHexDigit(row[xi])
			if !ok {
				panic(fmt.Sprintf("asset: invalid color digit %q in row %d", row[xi], yi))
			}
			img.Pset(x+xi, y+yi, c)
		}
	}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() Image {
	return Image{
		width:  img.width,
		height: img.height,
		data:   slices.Clone(img.data),
	}
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	return img.width == other.width && img.height == other.height && slices.Equal(img.data, other.data)
}

// Paletted converts the image to an *image.Paletted using colors as palette.
// Indices beyond the palette wrap around.
func (img *Image) Paletted(colors []Rgb24) *image.Paletted {
	pal := Palette(colors)
	out := image.NewPaletted(image.Rect(0, 0, img.width, img.height), pal)
	n := len(colors)
	for i, c := range img.data {
		if n > 0 {
			out.Pix[i] = uint8(int(c) % n)
		}
	}
	return out
}

// RGBA converts the image to an *image.RGBA using colors as palette.
// Pixels equal to colkey become fully transparent; pass NoColorKey to
// keep every pixel opaque.
func (img *Image) RGBA(colors []Rgb24, colkey int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	n := len(colors)
	for i, c := range img.data {
		if int(c) == colkey || n == 0 {
			continue
		}
		rgba := colors[int(c)%n].RGBA()
		o := i * 4
		out.Pix[o+0] = rgba.R
		out.Pix[o+1] = rgba.G
		out.Pix[o+2] = rgba.B
		out.Pix[o+3] = rgba.A
	}
	return out
}
