// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides an in-memory platform.Platform.
//
// It reports a configurable display size, records the window it was asked to
// create and supports in-place restart. Failures can be injected per step
// for testing bootstrap error paths.
package headless

import (
	"image"
	"sync"

	"github.com/gogpu/retro/internal/logging"
	"github.com/gogpu/retro/platform"
)

// Default display size.
const (
	DefaultDisplayWidth  = 1920
	DefaultDisplayHeight = 1080
)

// Option configures a Platform.
type Option func(*Platform)

// WithDisplaySize sets the reported display size. A non-positive size
// simulates a host without a display: DisplaySize then fails with
// platform.ErrNoDisplay.
func WithDisplaySize(width, height int) Option {
	return func(p *Platform) {
		p.displayW = width
		p.displayH = height
	}
}

// WithRestart sets whether the platform supports in-place restart.
func WithRestart(ok bool) Option {
	return func(p *Platform) {
		p.restart = ok
	}
}

// WithFailure makes the given step return err.
func WithFailure(op platform.Op, err error) Option {
	return func(p *Platform) {
		p.failures[op] = err
	}
}

// Platform is an in-memory host. It is safe for concurrent use.
type Platform struct {
	mu       sync.Mutex
	displayW int
	displayH int
	restart  bool
	failures map[platform.Op]error

	inits       int
	filterText  bool
	window      Window
	windowCount int
	icon        *image.RGBA
}

// Window describes the last window created.
type Window struct {
	Title  string
	Width  int
	Height int
}

// New creates a headless platform. By default it reports a 1920x1080
// display and supports restart.
func New(opts ...Option) *Platform {
	p := &Platform{
		displayW: DefaultDisplayWidth,
		displayH: DefaultDisplayHeight,
		restart:  true,
		failures: make(map[platform.Op]error),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init implements platform.Platform.
func (p *Platform) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.failures[platform.OpInit]; err != nil {
		return err
	}
	p.inits++
	return nil
}

// InitEventFilter implements platform.Platform.
func (p *Platform) InitEventFilter(filterTextInput bool) {
	p.mu.Lock()
	p.filterText = filterTextInput
	p.mu.Unlock()
}

// DisplaySize implements platform.Platform.
func (p *Platform) DisplaySize() (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.failures[platform.OpDisplaySize]; err != nil {
		return 0, 0, err
	}
	if p.displayW <= 0 || p.displayH <= 0 {
		return 0, 0, platform.ErrNoDisplay
	}
	return p.displayW, p.displayH, nil
}

// InitWindow implements platform.Platform.
func (p *Platform) InitWindow(title string, width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.failures[platform.OpInitWindow]; err != nil {
		return err
	}
	p.window = Window{Title: title, Width: width, Height: height}
	p.windowCount++
	logging.Logger().Debug("headless: window created",
		"title", title, "width", width, "height", height)
	return nil
}

// SetWindowTitle implements platform.Platform.
func (p *Platform) SetWindowTitle(title string) {
	p.mu.Lock()
	p.window.Title = title
	p.mu.Unlock()
}

// SetWindowIcon implements platform.Platform.
func (p *Platform) SetWindowIcon(icon *image.RGBA) {
	p.mu.Lock()
	p.icon = icon
	p.mu.Unlock()
}

// SupportsRestart implements platform.Platform.
func (p *Platform) SupportsRestart() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.restart
}

// Window returns the last window created and whether one exists.
func (p *Platform) Window() (Window, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.window, p.windowCount > 0
}

// WindowCount returns how many windows have been created.
func (p *Platform) WindowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.windowCount
}

// InitCount returns how many times Init succeeded.
func (p *Platform) InitCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inits
}

// Icon returns the last icon set, or nil.
func (p *Platform) Icon() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.icon
}

// FilterTextInput returns the last event filter setting.
func (p *Platform) FilterTextInput() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filterText
}

var _ platform.Platform = (*Platform)(nil)
