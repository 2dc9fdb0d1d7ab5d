// Package retro is the bootstrap and shared-state core of a retro-style 2D
// game engine.
//
// # Overview
//
// A running program has exactly one Engine. It is assembled by Init, which
// opens a window through a platform.Platform, sizes it to fit the physical
// display and hands out the engine's fixed catalogue of assets: the palette,
// image and tilemap banks, the cursor and font images, and the audio
// channels, tones, sounds and musics.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/retro"
//	    "github.com/gogpu/retro/platform/headless"
//	)
//
//	e, err := retro.Init(headless.New(), 160, 120, retro.WithTitle("demo"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e.Screen.With(func(img *asset.Image) { img.Cls(1) })
//
// # Shared Assets
//
// Every asset lives in a shared.Handle. The engine clones its handles from a
// registry.Registry, so the renderer, the mixer and scripting bindings that
// clone the same handles all see one value. Lock for the shortest possible
// scope and never hold two asset locks at once; copy what you need out of the
// first before locking the second. Engine.TilemapImage shows the pattern.
//
// The screen image is the exception: each Engine allocates its own.
//
// # Single Instance
//
// Init succeeds once per process. A second call panics with
// ErrAlreadyInitialized. Hosts whose process outlives an engine session (a
// browser tab, an editor with a play button) call Reset between sessions;
// Reset is refused on platforms that do not report restart support. A host
// registers per-session cleanup, such as stopping its frame loop or suspending
// audio, with SetResetFunc.
//
// After Reset, asset handles cloned during the previous session still point
// at the registry's containers and observe the freshly reset contents. Drop
// them and take new ones from the next Engine.
package retro
