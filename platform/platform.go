// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform defines the host collaborator the engine bootstrap
// consumes: display queries, window creation and the few window setters the
// engine itself calls.
//
// Windowing backends (gogpu, SDL, a browser canvas) implement Platform.
// The package headless provides an in-memory implementation for tests,
// tools and restart-capable hosts.
package platform

import (
	"errors"
	"image"
)

// Platform is the windowing and host-process collaborator.
//
// Methods are called synchronously from the goroutine that drives the
// engine; implementations may block on host system calls.
type Platform interface {
	// Init prepares the host backend. It is called once per bootstrap.
	Init() error

	// InitEventFilter configures whether text input events are filtered
	// before they reach the engine.
	InitEventFilter(filterTextInput bool)

	// DisplaySize returns the physical display size in pixels.
	DisplaySize() (width, height int, err error)

	// InitWindow creates the window with the given title and pixel size.
	InitWindow(title string, width, height int) error

	// SetWindowTitle changes the window title.
	SetWindowTitle(title string)

	// SetWindowIcon sets the window icon.
	SetWindowIcon(icon *image.RGBA)

	// SupportsRestart reports whether the host process outlives a single
	// engine session, so the engine may be reset and bootstrapped again in
	// place (for example a browser tab).
	SupportsRestart() bool
}

// Op names a platform step for error reporting.
type Op string

// Platform steps that can fail.
const (
	OpInit        Op = "init"
	OpDisplaySize Op = "display size"
	OpInitWindow  Op = "init window"
)

// Error reports a failed platform step.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return "platform: " + string(e.Op) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNoDisplay is returned by platforms that cannot open a display.
var ErrNoDisplay = errors.New("platform: no display available")
