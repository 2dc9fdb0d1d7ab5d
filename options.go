package retro

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/retro/internal/builtin"
	"github.com/gogpu/retro/registry"
)

// Option configures Init.
// Use functional options to override the bootstrap defaults.
//
// Example:
//
//	// Defaults: title "Retro", 30 fps, Escape quits, scale fitted to display
//	e, err := retro.Init(p, 160, 120)
//
//	// Fixed 3x scale at 60 fps
//	e, err := retro.Init(p, 160, 120, retro.WithFPS(60), retro.WithDisplayScale(3))
type Option func(*options)

// options holds the resolved bootstrap configuration.
type options struct {
	title           string
	fps             int
	quitKey         gpucontext.Key
	displayScale    int // 0 derives the scale from the display size
	displayRatio    float64
	captureScale    int
	captureSec      int
	filterTextInput bool
	registry        *registry.Registry
}

// defaultOptions returns the bootstrap defaults.
func defaultOptions() options {
	return options{
		title:        DefaultTitle,
		fps:          DefaultFPS,
		quitKey:      DefaultQuitKey,
		displayRatio: DisplayRatio,
		captureScale: builtin.DefaultCaptureScale,
		captureSec:   builtin.DefaultCaptureSec,
		registry:     nil, // registry.Default() if nil
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithFPS sets the target frame rate. Values below 1 keep the default.
func WithFPS(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.fps = fps
		}
	}
}

// WithQuitKey sets the key that ends the frame loop.
func WithQuitKey(key gpucontext.Key) Option {
	return func(o *options) {
		o.quitKey = key
	}
}

// WithDisplayScale fixes the integer window scale instead of deriving it
// from the display size. Values below 1 keep the derived scale.
func WithDisplayScale(scale int) Option {
	return func(o *options) {
		if scale > 0 {
			o.displayScale = scale
		}
	}
}

// WithDisplayRatio sets the largest fraction of the display the window may
// cover when the scale is derived. Values outside (0, 1] keep the default.
func WithDisplayRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 && ratio <= 1 {
			o.displayRatio = ratio
		}
	}
}

// WithCaptureScale sets the pixel scale of screen captures.
func WithCaptureScale(scale int) Option {
	return func(o *options) {
		if scale > 0 {
			o.captureScale = scale
		}
	}
}

// WithCaptureSec sets how many seconds of frames screen recording keeps.
func WithCaptureSec(sec int) Option {
	return func(o *options) {
		if sec > 0 {
			o.captureSec = sec
		}
	}
}

// WithFilterTextInput restricts text input to what the built-in font can
// draw. See Input.Filter.
func WithFilterTextInput(filter bool) Option {
	return func(o *options) {
		o.filterTextInput = filter
	}
}

// WithRegistry makes the engine clone its assets from r instead of the
// process-wide registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
