// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"slices"

	"github.com/gogpu/retro/shared"
)

// DefaultChannelGain is the gain of a freshly created channel.
const DefaultChannelGain = 0.125

// DefaultSoundSpeed is the speed of a freshly created sound.
const DefaultSoundSpeed = 30

// Channel is one mixer voice.
type Channel struct {
	Gain   float64
	Detune int
}

// SharedChannel is a Channel behind a shared handle.
type SharedChannel = shared.Handle[Channel]

// NewChannel returns a shared channel with default gain.
func NewChannel() *SharedChannel {
	return shared.New(Channel{Gain: DefaultChannelGain})
}

// ToneMode selects how a tone produces samples.
type ToneMode int

const (
	// ToneWavetable plays the tone's wavetable.
	ToneWavetable ToneMode = iota
	// ToneShortPeriodNoise is a short-period LFSR noise generator.
	ToneShortPeriodNoise
	// ToneLongPeriodNoise is a long-period LFSR noise generator.
	ToneLongPeriodNoise
)

func (m ToneMode) String() string {
	switch m {
	case ToneWavetable:
		return "wavetable"
	case ToneShortPeriodNoise:
		return "short-period-noise"
	case ToneLongPeriodNoise:
		return "long-period-noise"
	default:
		return "unknown"
	}
}

// ToneSample is one wavetable entry.
type ToneSample uint8

// Tone is an instrument preset.
type Tone struct {
	Mode       ToneMode
	SampleBits int
	Wavetable  []ToneSample
	Gain       float64
}

// SharedTone is a Tone behind a shared handle.
type SharedTone = shared.Handle[Tone]

// NewTone returns an empty wavetable tone.
func NewTone() *SharedTone {
	return shared.New(Tone{Mode: ToneWavetable, Gain: 1})
}

// Clone returns a deep copy of the tone.
func (t *Tone) Clone() Tone {
	c := *t
	c.Wavetable = slices.Clone(t.Wavetable)
	return c
}

// Sound is a note sequence played on one channel.
type Sound struct {
	Notes   []int8 // -1 is a rest
	Tones   []uint8
	Volumes []uint8
	Effects []uint8
	Speed   int
}

// SharedSound is a Sound behind a shared handle.
type SharedSound = shared.Handle[Sound]

// NewSound returns an empty sound at the default speed.
func NewSound() *SharedSound {
	return shared.New(Sound{Speed: DefaultSoundSpeed})
}

// Clone returns a deep copy of the sound.
func (s *Sound) Clone() Sound {
	return Sound{
		Notes:   slices.Clone(s.Notes),
		Tones:   slices.Clone(s.Tones),
		Volumes: slices.Clone(s.Volumes),
		Effects: slices.Clone(s.Effects),
		Speed:   s.Speed,
	}
}

// Music holds one sound-index sequence per channel.
type Music struct {
	Seqs [][]uint32
}

// SharedMusic is a Music behind a shared handle.
type SharedMusic = shared.Handle[Music]

// NewMusic returns a music with numChannels empty sequences.
func NewMusic(numChannels int) *SharedMusic {
	return shared.New(Music{Seqs: make([][]uint32, numChannels)})
}

// Clone returns a deep copy of the music.
func (m *Music) Clone() Music {
	seqs := make([][]uint32, len(m.Seqs))
	for i, s := range m.Seqs {
		seqs[i] = slices.Clone(s)
	}
	return Music{Seqs: seqs}
}
