package retro

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/retro/asset"
	"github.com/gogpu/retro/internal/builtin"
	"github.com/gogpu/retro/platform"
	"github.com/gogpu/retro/registry"
	"github.com/gogpu/retro/shared"
	"github.com/gogpu/retro/synth"
)

// Bootstrap errors.
var (
	// ErrAlreadyInitialized is the panic value of Init when an Engine
	// already exists and Reset has not been called since.
	ErrAlreadyInitialized = errors.New("retro: engine already initialized")

	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("retro: invalid screen size")

	// ErrNilPlatform is returned when a nil platform is passed.
	ErrNilPlatform = errors.New("retro: nil platform")
)

// Engine is the root state of a running program.
//
// Scalar fields are owned by the Engine. Asset fields are shared handles
// cloned from a registry; clone them again rather than assuming exclusive
// ownership. Screen is private to this Engine.
type Engine struct {
	system   System
	resource Resource
	input    Input
	graphics Graphics
	audio    Audio

	platform     platform.Platform
	displayScale int

	// System
	Width      int
	Height     int
	FrameCount int

	// Input
	MouseX       int
	MouseY       int
	MouseWheel   int
	InputKeys    []gpucontext.Key
	InputText    string
	DroppedFiles []string

	// Graphics
	Colors   *shared.Handle[[]asset.Rgb24]
	Images   *shared.Handle[[]*asset.SharedImage]
	Tilemaps *shared.Handle[[]*asset.SharedTilemap]
	Screen   *asset.SharedImage
	Cursor   *asset.SharedImage
	Font     *asset.SharedImage

	// Audio
	Channels *shared.Handle[[]*asset.SharedChannel]
	Tones    *shared.Handle[[]*asset.SharedTone]
	Sounds   *shared.Handle[[]*asset.SharedSound]
	Musics   *shared.Handle[[]*asset.SharedMusic]
}

// Init creates the Engine for a width x height screen.
//
// Only one Engine may exist per process. Calling Init again before Reset is
// a programming error and panics with an error wrapping
// ErrAlreadyInitialized. Unless WithDisplayScale is given,
// the window scale is the largest integer at which the screen fits in
// DisplayRatio of the display, and never below 1.
//
// Platform failures are returned as *platform.Error. Bootstrap has no
// partial-success path: on any error no Engine exists and the
// single-instance gate is released again.
func Init(p platform.Platform, width, height int, opts ...Option) (*Engine, error) {
	if !engineGate.acquire() {
		panic(fmt.Errorf("%w: Init called twice without an intervening Reset", ErrAlreadyInitialized))
	}
	if p == nil {
		engineGate.release()
		return nil, ErrNilPlatform
	}
	if width <= 0 || height <= 0 {
		engineGate.release()
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = registry.Default()
	}

	e, err := bootstrap(p, width, height, &o)
	if err != nil {
		engineGate.release()
		Logger().Warn("retro: bootstrap failed", "err", err)
		return nil, err
	}
	return e, nil
}

// MustInit is like Init but also panics on argument and platform errors.
// Use it when a failed bootstrap should end the program.
func MustInit(p platform.Platform, width, height int, opts ...Option) *Engine {
	e, err := Init(p, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// bootstrap runs the platform steps and assembles the Engine.
func bootstrap(p platform.Platform, width, height int, o *options) (*Engine, error) {
	if err := p.Init(); err != nil {
		return nil, &platform.Error{Op: platform.OpInit, Err: err}
	}
	p.InitEventFilter(o.filterTextInput)

	displayW, displayH, err := p.DisplaySize()
	if err != nil {
		return nil, &platform.Error{Op: platform.OpDisplaySize, Err: err}
	}
	scale := o.displayScale
	if scale == 0 {
		scale = ResolveDisplayScale(displayW, displayH, width, height, o.displayRatio)
	}
	windowW := width * scale
	windowH := height * scale

	if err := p.InitWindow(o.title, windowW, windowH); err != nil {
		return nil, &platform.Error{Op: platform.OpInitWindow, Err: err}
	}

	reg := o.registry
	e := &Engine{
		system:   newSystem(o.fps, o.quitKey),
		resource: newResource(o.captureScale, o.captureSec, o.fps),
		input:    newInput(o.filterTextInput),
		graphics: newGraphics(),
		audio:    newAudio(),

		platform:     p,
		displayScale: scale,

		Width:  width,
		Height: height,

		Colors:   reg.Colors().Clone(),
		Images:   reg.Images().Clone(),
		Tilemaps: reg.Tilemaps().Clone(),
		Screen:   asset.NewSharedImage(width, height),
		Cursor:   reg.Cursor().Clone(),
		Font:     reg.Font().Clone(),

		Channels: reg.Channels().Clone(),
		Tones:    reg.Tones().Clone(),
		Sounds:   reg.Sounds().Clone(),
		Musics:   reg.Musics().Clone(),
	}

	e.Icon(builtin.IconData, builtin.IconScale, builtin.IconColkey)

	Logger().Info("retro: engine initialized",
		"width", width, "height", height,
		"display", fmt.Sprintf("%dx%d", displayW, displayH),
		"scale", scale, "fps", o.fps)
	return e, nil
}

// System returns the frame timing configuration.
func (e *Engine) System() System { return e.system }

// Resource returns the screen capture configuration.
func (e *Engine) Resource() Resource { return e.resource }

// Input returns the text input policy.
func (e *Engine) Input() Input { return e.input }

// Graphics returns the presentation settings.
func (e *Engine) Graphics() Graphics { return e.graphics }

// Audio returns the mixer configuration.
func (e *Engine) Audio() Audio { return e.audio }

// FPS returns the target frame rate.
func (e *Engine) FPS() int { return e.system.FPS() }

// FrameDuration returns the time budget of one frame.
func (e *Engine) FrameDuration() time.Duration { return e.system.FrameDuration() }

// DisplayScale returns the integer window scale.
func (e *Engine) DisplayScale() int { return e.displayScale }

// WindowSize returns the window size in pixels.
func (e *Engine) WindowSize() (width, height int) {
	return e.Width * e.displayScale, e.Height * e.displayScale
}

// IsQuitKey reports whether key ends the frame loop.
func (e *Engine) IsQuitKey(key gpucontext.Key) bool {
	return key == e.system.QuitKey()
}

// Title sets the window title.
func (e *Engine) Title(title string) {
	e.platform.SetWindowTitle(title)
}

// Icon sets the window icon from hex rows, one palette index per pixel,
// drawn with the current palette. Pixels equal to colkey are transparent;
// pass asset.NoColorKey to keep every pixel.
func (e *Engine) Icon(rows []string, scale, colkey int) {
	colors := e.palette()
	e.platform.SetWindowIcon(synth.Icon(rows, scale, colkey, colors))
}

// FontFace returns the font atlas as a font.Face for text drawing.
func (e *Engine) FontFace() *basicfont.Face {
	var face *basicfont.Face
	e.Font.With(func(img *asset.Image) { face = synth.FontFace(img) })
	return face
}

// palette returns a copy of the current palette.
func (e *Engine) palette() []asset.Rgb24 {
	var colors []asset.Rgb24
	e.Colors.With(func(c *[]asset.Rgb24) { colors = slices.Clone(*c) })
	return colors
}

// TilemapImage returns the image tilemap i draws its tiles from, or nil if
// i or the tilemap's image index is out of range.
//
// The tilemap and image bank locks are taken one after the other, never
// together.
func (e *Engine) TilemapImage(i int) *asset.SharedImage {
	var tm *asset.SharedTilemap
	e.Tilemaps.With(func(v *[]*asset.SharedTilemap) {
		if i >= 0 && i < len(*v) {
			tm = (*v)[i]
		}
	})
	if tm == nil {
		return nil
	}

	var src asset.ImageSource
	tm.With(func(m *asset.Tilemap) { src = m.ImageSrc })

	var img *asset.SharedImage
	e.Images.With(func(v *[]*asset.SharedImage) { img = src.ResolveImage(*v) })
	return img
}

// ScreenPixels returns the screen drawn with the current palette as 8-bit
// pixels in format. RGBA8Unorm and BGRA8Unorm are supported.
func (e *Engine) ScreenPixels(format gputypes.TextureFormat) ([]byte, error) {
	colors := e.palette()
	var (
		pix []byte
		err error
	)
	e.Screen.With(func(img *asset.Image) { pix, err = pixels(img, colors, format) })
	return pix, err
}

// SetInputText stores the text typed during the current frame, filtered
// when WithFilterTextInput is enabled.
func (e *Engine) SetInputText(text string) {
	e.InputText = e.input.Filter(text)
}

// DropFiles records files dropped onto the window during the current frame.
func (e *Engine) DropFiles(paths ...string) {
	e.DroppedFiles = append(e.DroppedFiles, paths...)
}

// NextFrame advances the frame counter and clears per-frame input.
func (e *Engine) NextFrame() {
	e.FrameCount++
	e.MouseWheel = 0
	e.InputText = ""
	e.DroppedFiles = nil
}
