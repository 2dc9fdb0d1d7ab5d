// Command retrodemo boots the engine on a headless platform and renders
// the built-in assets to PNG files.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/retro"
	"github.com/gogpu/retro/asset"
	"github.com/gogpu/retro/platform/headless"
)

func main() {
	var (
		width   = flag.Int("width", 160, "screen width")
		height  = flag.Int("height", 120, "screen height")
		text    = flag.String("text", "HELLO, RETRO!", "text drawn on the screen")
		output  = flag.String("output", "retro.png", "screen output file")
		atlas   = flag.String("atlas", "", "optional font atlas output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		retro.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := headless.New()
	e, err := retro.Init(p, *width, *height, retro.WithTitle("retrodemo"), retro.WithFilterTextInput(true))
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	var colors []asset.Rgb24
	e.Colors.With(func(c *[]asset.Rgb24) { colors = slices.Clone(*c) })

	e.Screen.With(func(img *asset.Image) {
		img.Cls(1)
		drawBorder(img, 12)
	})
	var cursor asset.Image
	e.Cursor.With(func(img *asset.Image) { cursor = img.Clone() })
	e.Screen.With(func(img *asset.Image) { blit(img, &cursor, 4, 4, 0) })

	screen := screenImage(e, colors)
	e.SetInputText(*text)
	drawText(screen, e, e.InputText, colors[7])

	if err := savePNG(*output, upscale(screen, e.DisplayScale())); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	w, h := e.WindowSize()
	log.Printf("Screen saved to %s (%dx%d)\n", *output, w, h)

	if *atlas != "" {
		var pal *image.Paletted
		e.Font.With(func(img *asset.Image) { pal = img.Paletted([]asset.Rgb24{colors[0], colors[7]}) })
		if err := savePNG(*atlas, pal); err != nil {
			log.Fatalf("Failed to save atlas: %v", err)
		}
		log.Printf("Font atlas saved to %s\n", *atlas)
	}
}

func drawBorder(img *asset.Image, col asset.Color) {
	w, h := img.Width(), img.Height()
	for x := 0; x < w; x++ {
		img.Pset(x, 0, col)
		img.Pset(x, h-1, col)
	}
	for y := 0; y < h; y++ {
		img.Pset(0, y, col)
		img.Pset(w-1, y, col)
	}
}

// blit copies src onto dst at (dx, dy), skipping colkey pixels.
func blit(dst, src *asset.Image, dx, dy int, colkey asset.Color) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if c := src.Pget(x, y); c != colkey {
				dst.Pset(dx+x, dy+y, c)
			}
		}
	}
}

func screenImage(e *retro.Engine, colors []asset.Rgb24) *image.RGBA {
	var out *image.RGBA
	e.Screen.With(func(img *asset.Image) { out = img.RGBA(colors, asset.NoColorKey) })
	return out
}

func drawText(dst *image.RGBA, e *retro.Engine, s string, c asset.Rgb24) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.RGBA()),
		Face: e.FontFace(),
		Dot:  fixed.P(16, dst.Bounds().Dy()/2),
	}
	d.DrawString(s)
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
