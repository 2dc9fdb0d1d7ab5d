// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"image/color"
	"testing"
)

func TestRgb24RGBA(t *testing.T) {
	tests := []struct {
		in   Rgb24
		want color.RGBA
	}{
		{0x000000, color.RGBA{0, 0, 0, 255}},
		{0xff9798, color.RGBA{0xff, 0x97, 0x98, 255}},
		{0x2b335f, color.RGBA{0x2b, 0x33, 0x5f, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.RGBA(); got != tt.want {
			t.Errorf("Rgb24(%s).RGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := Rgb24(0x19959c).String(); s != "#19959c" {
		t.Errorf("String() = %q", s)
	}
}

func TestImagePsetPget(t *testing.T) {
	img := NewImage(4, 3)
	img.Pset(1, 2, 7)
	if got := img.Pget(1, 2); got != 7 {
		t.Errorf("Pget(1,2) = %d, want 7", got)
	}

	// Out-of-bounds access is clipped.
	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		img.Pset(p.x, p.y, 9)
		if got := img.Pget(p.x, p.y); got != 0 {
			t.Errorf("Pget(%d,%d) = %d, want 0", p.x, p.y, got)
		}
	}
	for i, c := range img.Data() {
		if c == 9 {
			t.Fatalf("out-of-bounds write landed at index %d", i)
		}
	}
}

func TestImageSet(t *testing.T) {
	img := NewImage(4, 2)
	img.Set(1, 0, []string{"1aF", "0b"})

	want := []Color{
		0, 1, 10, 15,
		0, 0, 11, 0,
	}
	for i, c := range img.Data() {
		if c != want[i] {
			t.Fatalf("data[%d] = %d, want %d", i, c, want[i])
		}
	}
}

func TestImageSetInvalidDigitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set with a non-hex digit should panic")
		}
	}()
	NewImage(2, 2).Set(0, 0, []string{"0z"})
}

func TestImageCloneIsDeep(t *testing.T) {
	img := NewImage(2, 2)
	img.Pset(0, 0, 3)

	c := img.Clone()
	if !c.Equal(img) {
		t.Fatal("clone should equal source")
	}
	c.Pset(0, 0, 4)
	if img.Pget(0, 0) != 3 {
		t.Error("mutating the clone changed the source")
	}
}

func TestImageRGBAColorKey(t *testing.T) {
	img := NewImage(2, 1)
	img.Pset(0, 0, 0)
	img.Pset(1, 0, 1)
	colors := []Rgb24{0x000000, 0xffffff}

	out := img.RGBA(colors, 0)
	if a := out.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("color-keyed pixel alpha = %d, want 0", a)
	}
	if got := out.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (1,0) = %v, want white", got)
	}

	opaque := img.RGBA(colors, NoColorKey)
	if a := opaque.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("alpha without color key = %d, want 255", a)
	}
}

func TestImagePaletted(t *testing.T) {
	img := NewImage(2, 1)
	img.Pset(1, 0, 5)
	p := img.Paletted([]Rgb24{0x000000, 0x111111, 0x222222})

	if len(p.Palette) != 3 {
		t.Fatalf("palette length = %d, want 3", len(p.Palette))
	}
	// Index 5 wraps to 2 with a 3-entry palette.
	if got := p.ColorIndexAt(1, 0); got != 2 {
		t.Errorf("ColorIndexAt(1,0) = %d, want 2", got)
	}
}

func TestTilemapResolveImage(t *testing.T) {
	images := []*SharedImage{NewSharedImage(8, 8), NewSharedImage(8, 8)}

	tm := NewTilemap(4, 4, IndexSource(1))
	if got := tm.ImageSrc.ResolveImage(images); got != images[1] {
		t.Error("index source should resolve to images[1]")
	}

	direct := NewSharedImage(2, 2)
	tm.ImageSrc = ImageOf(direct)
	if got := tm.ImageSrc.ResolveImage(images); got != direct {
		t.Error("direct source should resolve to the shared image")
	}

	if got := IndexSource(5).ResolveImage(images); got != nil {
		t.Error("out-of-range index should resolve to nil")
	}
}

func TestTilemapPsetClone(t *testing.T) {
	tm := NewTilemap(3, 3, IndexSource(0))
	tm.Pset(2, 1, Tile{X: 4, Y: 5})
	tm.Pset(3, 3, Tile{X: 1, Y: 1})

	if got := tm.Pget(2, 1); got != (Tile{4, 5}) {
		t.Errorf("Pget(2,1) = %v", got)
	}
	c := tm.Clone()
	c.Pset(2, 1, Tile{})
	if got := tm.Pget(2, 1); got != (Tile{4, 5}) {
		t.Error("mutating the clone changed the source")
	}
}

func TestAudioDefaults(t *testing.T) {
	var ch Channel
	NewChannel().With(func(c *Channel) { ch = *c })
	if ch.Gain != DefaultChannelGain {
		t.Errorf("channel gain = %v, want %v", ch.Gain, DefaultChannelGain)
	}

	var snd Sound
	NewSound().With(func(s *Sound) { snd = *s })
	if snd.Speed != DefaultSoundSpeed || len(snd.Notes) != 0 {
		t.Errorf("new sound = %+v", snd)
	}

	var m Music
	NewMusic(4).With(func(v *Music) { m = *v })
	if len(m.Seqs) != 4 {
		t.Errorf("music seqs = %d, want 4", len(m.Seqs))
	}

	var tone Tone
	NewTone().With(func(v *Tone) { tone = *v })
	if tone.Mode != ToneWavetable || tone.Gain != 1 || len(tone.Wavetable) != 0 {
		t.Errorf("new tone = %+v", tone)
	}
}

func TestSoundClone(t *testing.T) {
	snd := Sound{
		Notes:   []int8{12, -1},
		Tones:   []uint8{0},
		Volumes: []uint8{7},
		Effects: []uint8{1},
		Speed:   15,
	}
	c := snd.Clone()
	c.Notes[0], c.Tones[0], c.Volumes[0], c.Effects[0] = 0, 3, 0, 0
	if snd.Notes[0] != 12 || snd.Tones[0] != 0 || snd.Volumes[0] != 7 || snd.Effects[0] != 1 {
		t.Errorf("sound clone shares storage: %+v", snd)
	}
	if c.Speed != 15 {
		t.Errorf("clone speed = %d, want 15", c.Speed)
	}
}

func TestMusicClone(t *testing.T) {
	m := Music{Seqs: [][]uint32{{0, 1}, nil, {2}}}
	c := m.Clone()
	c.Seqs[0][1] = 9
	c.Seqs[1] = append(c.Seqs[1], 5)
	if m.Seqs[0][1] != 1 || len(m.Seqs[1]) != 0 {
		t.Errorf("music clone shares storage: %+v", m)
	}
	if len(c.Seqs) != 3 || c.Seqs[2][0] != 2 {
		t.Errorf("clone = %+v", c)
	}
}

func TestToneClone(t *testing.T) {
	tone := Tone{Mode: ToneWavetable, SampleBits: 4, Wavetable: []ToneSample{1, 2, 3}, Gain: 0.5}
	c := tone.Clone()
	c.Wavetable[0] = 9
	if tone.Wavetable[0] != 1 {
		t.Error("tone clone shares its wavetable")
	}
	if ToneLongPeriodNoise.String() != "long-period-noise" {
		t.Errorf("String() = %q", ToneLongPeriodNoise.String())
	}
}
