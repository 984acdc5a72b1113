// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl provides the windowed OpenGL surface for tearbench.
//
// It owns the GLFW window and the OpenGL 4.1 core context, compiles the
// fixed shader pair, and draws meshes from per-mesh buffer pairs. Present
// swaps with vsync off and then blocks in glFinish, so exactly one frame
// is ever in flight. That unsynchronized, unqueued swap is the timing
// behavior the harness exists to expose.
package gl

import (
	"errors"
	"fmt"
)

// Package errors for surface creation.
var (
	// ErrCreateWindow is returned when the GLFW window cannot be created.
	ErrCreateWindow = errors.New("gl: failed to create GLFW window")

	// ErrNoMonitors is returned when fullscreen was requested but monitor
	// enumeration came back empty.
	ErrNoMonitors = errors.New("gl: no monitors for fullscreen")

	// ErrMonitorIndex is returned when the requested monitor index is not
	// below the number of attached monitors.
	ErrMonitorIndex = errors.New("gl: invalid monitor requested (index larger than available monitors)")

	// ErrContextInit is returned when loading the OpenGL function pointers
	// fails after the context was made current.
	ErrContextInit = errors.New("gl: failed to initialize OpenGL")
)

// ShaderError reports a shader compilation failure. Log carries the
// driver's full info log; the shader source is fixed, so compilation only
// fails on a broken driver or environment.
type ShaderError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("gl: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a shader program link failure with the driver's full
// info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gl: shader program link failed: %s", e.Log)
}
