// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/retro/platform"
)

func TestDefaults(t *testing.T) {
	p := New()

	w, h, err := p.DisplaySize()
	if err != nil {
		t.Fatalf("DisplaySize() error = %v", err)
	}
	if w != DefaultDisplayWidth || h != DefaultDisplayHeight {
		t.Errorf("DisplaySize() = %dx%d, want %dx%d", w, h, DefaultDisplayWidth, DefaultDisplayHeight)
	}
	if !p.SupportsRestart() {
		t.Error("headless platform should support restart by default")
	}
	if _, ok := p.Window(); ok {
		t.Error("no window should exist before InitWindow")
	}
}

func TestInitWindow(t *testing.T) {
	p := New(WithDisplaySize(800, 600), WithRestart(false))

	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := p.InitWindow("demo", 320, 240); err != nil {
		t.Fatalf("InitWindow() error = %v", err)
	}
	p.SetWindowTitle("renamed")
	p.InitEventFilter(true)
	p.SetWindowIcon(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	win, ok := p.Window()
	if !ok {
		t.Fatal("window should exist")
	}
	if win != (Window{Title: "renamed", Width: 320, Height: 240}) {
		t.Errorf("Window() = %+v", win)
	}
	if p.WindowCount() != 1 || p.InitCount() != 1 {
		t.Errorf("counts = %d windows, %d inits", p.WindowCount(), p.InitCount())
	}
	if !p.FilterTextInput() {
		t.Error("FilterTextInput() = false, want true")
	}
	if p.Icon() == nil {
		t.Error("Icon() = nil after SetWindowIcon")
	}
	if p.SupportsRestart() {
		t.Error("SupportsRestart() = true with WithRestart(false)")
	}
}

func TestInjectedFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		op   platform.Op
		call func(*Platform) error
	}{
		{platform.OpInit, func(p *Platform) error { return p.Init() }},
		{platform.OpDisplaySize, func(p *Platform) error { _, _, err := p.DisplaySize(); return err }},
		{platform.OpInitWindow, func(p *Platform) error { return p.InitWindow("x", 1, 1) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			p := New(WithFailure(tt.op, boom))
			if err := tt.call(p); !errors.Is(err, boom) {
				t.Errorf("error = %v, want %v", err, boom)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &platform.Error{Op: platform.OpInitWindow, Err: platform.ErrNoDisplay}
	if !errors.Is(err, platform.ErrNoDisplay) {
		t.Error("platform.Error should unwrap to its cause")
	}
	if got := err.Error(); got != "platform: init window: platform: no display available" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNoDisplay(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1920, 0}, {-1, 1080}} {
		p := New(WithDisplaySize(size[0], size[1]))
		if _, _, err := p.DisplaySize(); !errors.Is(err, platform.ErrNoDisplay) {
			t.Errorf("DisplaySize() with %dx%d: error = %v, want ErrNoDisplay", size[0], size[1], err)
		}
	}
}
