// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import "testing"

func TestDefaultLoopOptions(t *testing.T) {
	opts := defaultLoopOptions()
	if opts.fovYDegrees != 90 {
		t.Errorf("default fovYDegrees = %v, want 90", opts.fovYDegrees)
	}
	if opts.near != 0.01 {
		t.Errorf("default near = %v, want 0.01", opts.near)
	}
	if opts.far != 100 {
		t.Errorf("default far = %v, want 100", opts.far)
	}
	if opts.clear != Sky {
		t.Errorf("default clear = %v, want Sky", opts.clear)
	}
	if opts.frameLimit != 0 {
		t.Errorf("default frameLimit = %v, want 0 (unlimited)", opts.frameLimit)
	}
}

func TestWithProjection(t *testing.T) {
	opts := defaultLoopOptions()
	WithProjection(60, 0.1, 500)(&opts)
	if opts.fovYDegrees != 60 || opts.near != 0.1 || opts.far != 500 {
		t.Errorf("WithProjection(60, 0.1, 500) applied %v/%v/%v",
			opts.fovYDegrees, opts.near, opts.far)
	}
}

func TestWithClearColor(t *testing.T) {
	opts := defaultLoopOptions()
	WithClearColor(White)(&opts)
	if opts.clear != White {
		t.Errorf("WithClearColor(White) applied %v", opts.clear)
	}
}

func TestFrameLimit(t *testing.T) {
	opts := defaultLoopOptions()
	FrameLimit(240)(&opts)
	if opts.frameLimit != 240 {
		t.Errorf("FrameLimit(240) applied %v", opts.frameLimit)
	}
}
