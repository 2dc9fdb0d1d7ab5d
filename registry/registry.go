// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package registry owns the engine's fixed catalogue of shared assets.
//
// A Registry has one slot per asset kind. Each slot is created lazily on
// first access, exactly once, and its element count never changes. Callers
// Clone the returned handles; they never copy the assets.
//
// Reset overwrites every slot's contents in place. Handles that were cloned
// before the reset keep pointing at the same containers, so they observe the
// new default contents the next time they lock. This differs from a process
// restart, where old handles would simply be gone.
package registry

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gogpu/retro/asset"
	"github.com/gogpu/retro/internal/builtin"
	"github.com/gogpu/retro/internal/logging"
	"github.com/gogpu/retro/shared"
	"github.com/gogpu/retro/synth"
)

// slot is a lazily built, once-initialized shared value.
type slot[T any] struct {
	name  string
	build func() T

	once  sync.Once
	ready atomic.Bool
	h     *shared.Handle[T]
}

func newSlot[T any](name string, build func() T) *slot[T] {
	return &slot[T]{name: name, build: build}
}

// get realizes the slot on first use and returns its handle.
func (s *slot[T]) get() *shared.Handle[T] {
	s.once.Do(func() {
		s.h = shared.New(s.build())
		s.ready.Store(true)
		logging.Logger().Debug("registry: slot realized", "slot", s.name)
	})
	return s.h
}

// reset overwrites the slot's contents with a fresh default value.
func (s *slot[T]) reset() {
	s.get().Store(s.build())
}

func (s *slot[T]) realized() bool {
	return s.ready.Load()
}

// Registry is a process-wide (or session-wide) set of asset slots.
// All methods are safe for concurrent use.
type Registry struct {
	colors   *slot[[]asset.Rgb24]
	images   *slot[[]*asset.SharedImage]
	tilemaps *slot[[]*asset.SharedTilemap]
	cursor   *slot[asset.Image]
	font     *slot[asset.Image]

	channels *slot[[]*asset.SharedChannel]
	tones    *slot[[]*asset.SharedTone]
	sounds   *slot[[]*asset.SharedSound]
	musics   *slot[[]*asset.SharedMusic]

	resets atomic.Int64
}

var defaultRegistry = sync.OnceValue(New)

// Default returns the process-wide registry, creating it on first call.
func Default() *Registry {
	return defaultRegistry()
}

// New creates a registry with no slot realized yet.
func New() *Registry {
	return &Registry{
		colors:   newSlot("colors", newColors),
		images:   newSlot("images", newImages),
		tilemaps: newSlot("tilemaps", newTilemaps),
		cursor:   newSlot("cursor", func() asset.Image { return *synth.Cursor() }),
		font:     newSlot("font", func() asset.Image { return *synth.Font() }),
		channels: newSlot("channels", newChannels),
		tones:    newSlot("tones", newTones),
		sounds:   newSlot("sounds", newSounds),
		musics:   newSlot("musics", newMusics),
	}
}

// Colors returns the palette container.
func (r *Registry) Colors() *shared.Handle[[]asset.Rgb24] { return r.colors.get() }

// Images returns the image bank.
func (r *Registry) Images() *shared.Handle[[]*asset.SharedImage] { return r.images.get() }

// Tilemaps returns the tilemap bank.
func (r *Registry) Tilemaps() *shared.Handle[[]*asset.SharedTilemap] { return r.tilemaps.get() }

// Cursor returns the mouse cursor image.
func (r *Registry) Cursor() *asset.SharedImage { return r.cursor.get() }

// Font returns the bitmap font atlas.
func (r *Registry) Font() *asset.SharedImage { return r.font.get() }

// Channels returns the mixer channels.
func (r *Registry) Channels() *shared.Handle[[]*asset.SharedChannel] { return r.channels.get() }

// Tones returns the tone presets.
func (r *Registry) Tones() *shared.Handle[[]*asset.SharedTone] { return r.tones.get() }

// Sounds returns the sound bank.
func (r *Registry) Sounds() *shared.Handle[[]*asset.SharedSound] { return r.sounds.get() }

// Musics returns the music bank.
func (r *Registry) Musics() *shared.Handle[[]*asset.SharedMusic] { return r.musics.get() }

// Reset overwrites the contents of every slot with fresh defaults, in
// place, under each slot's lock. Slots not yet realized are realized first.
//
// Sequence slots receive a newly built sequence of new element handles, so
// a caller still holding an element handle from before the reset (say
// images[0]) keeps the old image. Callers holding the sequence container
// itself see the new elements. The cursor and font containers have their
// pixels overwritten.
func (r *Registry) Reset() {
	r.colors.reset()
	r.images.reset()
	r.tilemaps.reset()
	r.cursor.reset()
	r.font.reset()
	r.channels.reset()
	r.tones.reset()
	r.sounds.reset()
	r.musics.reset()

	n := r.resets.Add(1)
	logging.Logger().Debug("registry: reset", "count", n)
}

// Resets returns how many times Reset has run.
func (r *Registry) Resets() int64 {
	return r.resets.Load()
}

// Realized returns the names of the slots created so far.
func (r *Registry) Realized() []string {
	var names []string
	for _, s := range r.slots() {
		if s.realized() {
			names = append(names, s.slotName())
		}
	}
	return names
}

// slotInfo is the type-independent view of a slot.
type slotInfo interface {
	slotName() string
	realized() bool
}

func (s *slot[T]) slotName() string { return s.name }

func (r *Registry) slots() []slotInfo {
	return []slotInfo{
		r.colors, r.images, r.tilemaps, r.cursor, r.font,
		r.channels, r.tones, r.sounds, r.musics,
	}
}

func newColors() []asset.Rgb24 {
	return slices.Clone(builtin.DefaultColors)
}

func newImages() []*asset.SharedImage {
	images := make([]*asset.SharedImage, builtin.NumImages)
	for i := range images {
		images[i] = asset.NewSharedImage(builtin.ImageSize, builtin.ImageSize)
	}
	return images
}

func newTilemaps() []*asset.SharedTilemap {
	tilemaps := make([]*asset.SharedTilemap, builtin.NumTilemaps)
	for i := range tilemaps {
		tilemaps[i] = asset.NewSharedTilemap(builtin.TilemapSize, builtin.TilemapSize, asset.IndexSource(0))
	}
	return tilemaps
}

func newChannels() []*asset.SharedChannel {
	channels := make([]*asset.SharedChannel, builtin.NumChannels)
	for i := range channels {
		channels[i] = asset.NewChannel()
	}
	return channels
}

func newTones() []*asset.SharedTone {
	tones := make([]*asset.SharedTone, builtin.NumTones)
	for i := range tones {
		tones[i] = shared.New(synth.DefaultTone(i))
	}
	return tones
}

func newSounds() []*asset.SharedSound {
	sounds := make([]*asset.SharedSound, builtin.NumSounds)
	for i := range sounds {
		sounds[i] = asset.NewSound()
	}
	return sounds
}

func newMusics() []*asset.SharedMusic {
	musics := make([]*asset.SharedMusic, builtin.NumMusics)
	for i := range musics {
		musics[i] = asset.NewMusic(builtin.NumChannels)
	}
	return musics
}
