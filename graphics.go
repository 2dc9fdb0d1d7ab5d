package retro

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/retro/asset"
)

// ErrUnsupportedFormat is returned when pixels are requested in a texture
// format the engine cannot produce.
var ErrUnsupportedFormat = errors.New("retro: unsupported texture format")

// Graphics holds the presentation settings of an Engine.
type Graphics struct {
	format gputypes.TextureFormat
}

func newGraphics() Graphics {
	return Graphics{format: gputypes.TextureFormatRGBA8Unorm}
}

// Format returns the texture format the screen is presented in.
func (g Graphics) Format() gputypes.TextureFormat { return g.format }

// pixels converts img through colors into 8-bit pixels of the given format.
func pixels(img *asset.Image, colors []asset.Rgb24, format gputypes.TextureFormat) ([]byte, error) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return img.RGBA(colors, asset.NoColorKey).Pix, nil
	case gputypes.TextureFormatBGRA8Unorm:
		pix := img.RGBA(colors, asset.NoColorKey).Pix
		for i := 0; i+3 < len(pix); i += 4 {
			pix[i], pix[i+2] = pix[i+2], pix[i]
		}
		return pix, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}
