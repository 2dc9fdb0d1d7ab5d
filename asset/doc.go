// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package asset defines the engine's content types: palette images,
// tilemaps, and the channel, tone, sound and music records the mixer plays.
//
// Every type has a Shared alias, a shared.Handle around the value. Engine
// state and registry slots hold these handles; access the value through
// Handle.With or Handle.Lock.
//
// Images store palette indices, not colors. Convert them with Image.RGBA or
// Image.Paletted against the current palette.
package asset
