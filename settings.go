package retro

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/retro/internal/builtin"
)

// Bootstrap defaults.
const (
	DefaultTitle = builtin.DefaultTitle
	DefaultFPS   = builtin.DefaultFPS
	DisplayRatio = builtin.DisplayRatio
)

// DefaultQuitKey is the key that ends the frame loop unless WithQuitKey
// overrides it.
var DefaultQuitKey = gpucontext.KeyEscape

// Asset slot counts. They never change while a process runs.
const (
	NumImages   = builtin.NumImages
	ImageSize   = builtin.ImageSize
	NumTilemaps = builtin.NumTilemaps
	TilemapSize = builtin.TilemapSize
	NumChannels = builtin.NumChannels
	NumTones    = builtin.NumTones
	NumSounds   = builtin.NumSounds
	NumMusics   = builtin.NumMusics
)
