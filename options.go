// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

// LoopOption configures a Loop during creation.
//
// Example:
//
//	// Defaults: 90 degree fov, sky clear color, run until close.
//	loop := tearbench.NewLoop(surf, objects)
//
//	// Bounded run for CI:
//	loop := tearbench.NewLoop(surf, objects, tearbench.FrameLimit(120))
type LoopOption func(*loopOptions)

// loopOptions holds optional configuration for Loop creation.
type loopOptions struct {
	fovYDegrees float32
	near        float32
	far         float32
	clear       Color
	frameLimit  uint64
}

// defaultLoopOptions returns the default loop configuration: a 90 degree
// vertical field of view tight enough to sit inside the room cube, and the
// sky clear color.
func defaultLoopOptions() loopOptions {
	return loopOptions{
		fovYDegrees: 90,
		near:        0.01,
		far:         100,
		clear:       Sky,
	}
}

// WithProjection overrides the perspective projection parameters used to
// build the projection matrix from the surface aspect ratio.
func WithProjection(fovYDegrees, near, far float32) LoopOption {
	return func(o *loopOptions) {
		o.fovYDegrees = fovYDegrees
		o.near = near
		o.far = far
	}
}

// WithClearColor sets the per-frame clear color.
func WithClearColor(c Color) LoopOption {
	return func(o *loopOptions) {
		o.clear = c
	}
}

// FrameLimit stops the loop after n frames as if close had been requested.
// Zero means run until the surface reports a close request. Useful for
// headless smoke runs and benchmarks.
func FrameLimit(n uint64) LoopOption {
	return func(o *loopOptions) {
		o.frameLimit = n
	}
}
