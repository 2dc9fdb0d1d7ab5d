// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shared provides Handle, the lock-guarded container that every
// engine asset lives in.
//
// A Handle is shared by pointer: the registry, the engine root state and any
// scripting binding can hold the same *Handle at once, and the value lives as
// long as the longest-lived holder. Clone returns another reference to the
// same storage; it never copies the contained value.
//
// Mutation is serialized by a per-handle mutex. Hold it for the minimum scope
// and never across calls into other collaborators. When two handles must be
// read together (for example a tilemap and its backing image), copy what is
// needed out of the first before locking the second.
package shared

import "sync"

// Handle is a shared, mutex-guarded holder for one value of type T.
//
// The zero value is not usable; create handles with New.
type Handle[T any] struct {
	mu sync.Mutex
	v  T
}

// New wraps v in a new handle.
func New[T any](v T) *Handle[T] {
	return &Handle[T]{v: v}
}

// Clone returns a reference to the same storage as h.
// Mutations through either reference are visible through the other.
func (h *Handle[T]) Clone() *Handle[T] {
	return h
}

// Same reports whether h and other refer to the same storage.
func (h *Handle[T]) Same(other *Handle[T]) bool {
	return h == other
}

// Lock acquires exclusive access and returns a pointer to the contained
// value. The pointer must not be used after Unlock.
func (h *Handle[T]) Lock() *T {
	h.mu.Lock()
	return &h.v
}

// Unlock releases the access acquired by Lock.
func (h *Handle[T]) Unlock() {
	h.mu.Unlock()
}

// With runs fn with exclusive access to the contained value.
func (h *Handle[T]) With(fn func(v *T)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(&h.v)
}

// Store replaces the contained value under the lock.
func (h *Handle[T]) Store(v T) {
	h.mu.Lock()
	h.v = v
	h.mu.Unlock()
}
