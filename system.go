package retro

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// System holds the frame timing configuration of an Engine.
type System struct {
	fps           int
	quitKey       gpucontext.Key
	frameDuration time.Duration
}

func newSystem(fps int, quitKey gpucontext.Key) System {
	return System{
		fps:           fps,
		quitKey:       quitKey,
		frameDuration: time.Second / time.Duration(fps),
	}
}

// FPS returns the target frame rate.
func (s System) FPS() int { return s.fps }

// QuitKey returns the key that ends the frame loop.
func (s System) QuitKey() gpucontext.Key { return s.quitKey }

// FrameDuration returns the time budget of one frame.
func (s System) FrameDuration() time.Duration { return s.frameDuration }

// Resource holds the screen capture configuration of an Engine.
type Resource struct {
	captureScale int
	captureSec   int
	maxFrames    int
}

func newResource(captureScale, captureSec, fps int) Resource {
	return Resource{
		captureScale: captureScale,
		captureSec:   captureSec,
		maxFrames:    captureSec * fps,
	}
}

// CaptureScale returns the pixel scale of screen captures.
func (r Resource) CaptureScale() int { return r.captureScale }

// CaptureSec returns how many seconds a screen recording keeps.
func (r Resource) CaptureSec() int { return r.captureSec }

// MaxCaptureFrames returns how many frames a screen recording keeps.
func (r Resource) MaxCaptureFrames() int { return r.maxFrames }

// Audio holds the mixer configuration of an Engine.
type Audio struct {
	sampleRate  int
	numChannels int
}

// DefaultSampleRate is the mixer output rate in Hz.
const DefaultSampleRate = 22050

func newAudio() Audio {
	return Audio{
		sampleRate:  DefaultSampleRate,
		numChannels: NumChannels,
	}
}

// SampleRate returns the mixer output rate in Hz.
func (a Audio) SampleRate() int { return a.sampleRate }

// NumChannels returns the number of mixer voices.
func (a Audio) NumChannels() int { return a.numChannels }
