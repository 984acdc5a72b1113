// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import (
	"math"
	"time"
)

// SceneObject pairs a mesh with its fixed per-object model transform.
// Objects never move; all apparent motion comes from the view matrix.
type SceneObject struct {
	Mesh  *Mesh
	Model Matrix4
}

// FrameState describes one frame of a running loop: how long the loop has
// been running, which frame this is, and the transforms in effect.
type FrameState struct {
	Elapsed    time.Duration
	Frame      uint64
	View       Matrix4
	Projection Matrix4
}

// View oscillation parameters. The pitch sweep is intentionally fast and
// wide: a torn swap in the middle of that motion produces a visible seam.
const (
	viewYaw            = math.Pi / 2 // fixed 90 degree yaw
	viewPitchAmplitude = math.Pi / 4 // 45 degrees
	viewPitchPeriod    = 10.0        // seconds
)

// viewPitch returns the oscillating pitch angle in radians at elapsed
// time t seconds: amplitude * sin(2*pi*t/period).
func viewPitch(t float64) float64 {
	return viewPitchAmplitude * math.Sin(2*math.Pi*t/viewPitchPeriod)
}

// ViewAt returns the animated view matrix at elapsed time t seconds:
// a fixed 90 degree yaw combined with a pitch oscillating between -45 and
// +45 degrees with a 10 second period. At t=0 the pitch is 0, at t=2.5 it
// peaks at 45 degrees, and at t=5 it crosses 0 again.
func ViewAt(t float64) Matrix4 {
	return Compose(RotationY(viewYaw), RotationX(float32(viewPitch(t))))
}
