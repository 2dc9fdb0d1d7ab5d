// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package builtin

import "github.com/gogpu/retro/asset"

// TonePreset is a literal default tone.
type TonePreset struct {
	Mode       asset.ToneMode
	SampleBits int
	Wavetable  []asset.ToneSample
	Gain       float64
}

// DefaultTones are the presets of tone slots 0 (triangle), 1 (square),
// 2 (pulse) and 3 (noise). len(DefaultTones) == NumTones.
var DefaultTones = [NumTones]TonePreset{
	{
		Mode:       asset.ToneWavetable,
		SampleBits: 4,
		Wavetable: []asset.ToneSample{
			8, 9, 10, 11, 12, 13, 14, 15, 15, 14, 13, 12, 11, 10, 9, 8,
			7, 6, 5, 4, 3, 2, 1, 0, 0, 1, 2, 3, 4, 5, 6, 7,
		},
		Gain: 1.0,
	},
	{
		Mode:       asset.ToneWavetable,
		SampleBits: 4,
		Wavetable: []asset.ToneSample{
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		Gain: 0.3,
	},
	{
		Mode:       asset.ToneWavetable,
		SampleBits: 4,
		Wavetable: []asset.ToneSample{
			15, 15, 15, 15, 15, 15, 15, 15, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		},
		Gain: 0.3,
	},
	{
		Mode:       asset.ToneLongPeriodNoise,
		SampleBits: 4,
		Wavetable:  []asset.ToneSample{0},
		Gain:       0.6,
	},
}
