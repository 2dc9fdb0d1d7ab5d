// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"fmt"
	"slices"

	"github.com/gogpu/retro/shared"
)

// Tile addresses one tile cell of the backing image, in tile units.
type Tile struct {
	X, Y int
}

// ImageSource selects the image a tilemap draws its tiles from: either an
// index into the engine's image sequence or a directly shared image.
type ImageSource struct {
	Index int
	Image *SharedImage
}

// IndexSource returns a source referring to the image at index i.
func IndexSource(i int) ImageSource {
	return ImageSource{Index: i}
}

// ImageOf returns a source referring to img directly.
func ImageOf(img *SharedImage) ImageSource {
	return ImageSource{Image: img}
}

// Tilemap is a grid of tile references into a backing image.
type Tilemap struct {
	width    int
	height   int
	data     []Tile
	ImageSrc ImageSource
}

// SharedTilemap is a Tilemap behind a shared handle.
type SharedTilemap = shared.Handle[Tilemap]

// NewTilemap creates a tilemap with every cell set to tile (0, 0).
func NewTilemap(width, height int, src ImageSource) *Tilemap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("asset: invalid tilemap size %dx%d", width, height))
	}
	return &Tilemap{
		width:    width,
		height:   height,
		data:     make([]Tile, width*height),
		ImageSrc: src,
	}
}

// NewSharedTilemap creates a tilemap wrapped in a new handle.
func NewSharedTilemap(width, height int, src ImageSource) *SharedTilemap {
	return shared.New(*NewTilemap(width, height, src))
}

// Width returns the width in tiles.
func (tm *Tilemap) Width() int {
	return tm.width
}

// Height returns the height in tiles.
func (tm *Tilemap) Height() int {
	return tm.height
}

// Pget returns the tile at (x, y), or the zero tile outside the map.
func (tm *Tilemap) Pget(x, y int) Tile {
	if x < 0 || x >= tm.width || y < 0 || y >= tm.height {
		return Tile{}
	}
	return tm.data[y*tm.width+x]
}

// Pset sets the tile at (x, y). Out-of-bounds writes are ignored.
func (tm *Tilemap) Pset(x, y int, t Tile) {
	if x < 0 || x >= tm.width || y < 0 || y >= tm.height {
		return
	}
	tm.data[y*tm.width+x] = t
}

// Clone returns a deep copy of the tile grid. A directly shared source
// image stays shared.
func (tm *Tilemap) Clone() Tilemap {
	return Tilemap{
		width:    tm.width,
		height:   tm.height,
		data:     slices.Clone(tm.data),
		ImageSrc: tm.ImageSrc,
	}
}

// ResolveImage returns the image handle the source refers to, looking up
// index sources in images. It returns nil when an index is out of range.
func (src ImageSource) ResolveImage(images []*SharedImage) *SharedImage {
	if src.Image != nil {
		return src.Image
	}
	if src.Index < 0 || src.Index >= len(images) {
		return nil
	}
	return images[src.Index]
}
