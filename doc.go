// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tearbench is a diagnostic rendering harness for exposing
// frame-pacing defects ("tearing") in a display pipeline.
//
// # Overview
//
// tearbench procedurally generates tessellated 3D test geometry, composes
// per-object transform matrices, and drives a tightly timed present loop.
// The view matrix oscillates every frame so that an unsynchronized buffer
// swap produces a clearly visible seam. Presentation deliberately blocks
// until the swap completes: removing asynchronous buffering is what makes
// the artifact observable.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tearbench"
//	    "github.com/gogpu/tearbench/backend/gl"
//	)
//
//	surf, err := gl.Open(gl.Config{Width: 1920, Height: 1080, Monitor: -1})
//	if err != nil {
//	    // map to an exit code, see cmd/tearbench
//	}
//	defer surf.Close()
//
//	room := tearbench.BuildCube(0.25, 1200)
//	loop := tearbench.NewLoop(surf, []tearbench.SceneObject{{Mesh: room, Model: tearbench.Identity()}})
//	report, err := loop.Run()
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Mesh, BuildCube, BuildPlane (per-facet stochastic shading)
//   - Transforms: Matrix4, RotationX/Y, Translation, Perspective, Compose
//   - Loop: Loop, SceneObject, Report (state machine, FPS accounting)
//   - Backends: backend/gl (GLFW + OpenGL), backend/headless (software)
//
// The core consumes a rendering target through the Surface interface and
// never imports a backend. One OS thread owns the whole pipeline; there is
// exactly one suspension point per frame, the blocking present.
//
// # Coordinate System
//
// Right-handed model space. Matrices are stored as flat row-major arrays
// laid out so that an unmodified upload to a column-major GL uniform yields
// the standard OpenGL clip-space transform. Angles are radians unless a
// name says otherwise.
package tearbench

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
