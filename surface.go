// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import "image"

// Surface is the rendering target consumed by the present loop.
//
// A Surface wraps everything the loop needs from a display pipeline:
// a drawable area, a per-draw transform bind, a blocking present, and the
// close signal. Implementations live under backend/ (GLFW + OpenGL, and a
// software framebuffer for headless runs); the core never constructs one.
//
// Surfaces are NOT thread-safe and are bound to the OS thread that created
// them. All calls must come from that thread.
type Surface interface {
	// Width returns the drawable width in pixels.
	Width() int

	// Height returns the drawable height in pixels.
	Height() int

	// Clear fills the frame with the given color (alpha pinned to 1).
	Clear(c Color)

	// DrawMesh draws the mesh's triangle list with the given transform
	// bound as the active model-view-projection matrix. The mesh's GPU
	// buffers are created and uploaded on its first draw and reused
	// afterwards.
	DrawMesh(m *Mesh, mvp Matrix4) error

	// Present submits the frame and blocks until presentation completes.
	// There is deliberately no asynchronous variant: the blocking swap is
	// what exposes pacing defects.
	Present() error

	// PollEvents pumps the platform event queue. Must be called once per
	// frame so the close signal can be observed.
	PollEvents()

	// CloseRequested reports whether the user asked to close the window.
	// Headless surfaces report true once their frame budget is exhausted.
	CloseRequested() bool

	// Close releases every resource the surface owns, including all mesh
	// buffer pairs ever created. Close is idempotent; multiple calls are
	// safe.
	Close() error
}

// Snapshotter is an optional interface for surfaces that can read back the
// current frame. The headless backend implements it; it is the hook used
// by frame capture and by end-to-end tests.
type Snapshotter interface {
	Surface

	// Snapshot returns the current frame contents as an RGBA image.
	// The returned image is a copy; modifying it does not affect the
	// surface.
	Snapshot() *image.RGBA
}
