// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import (
	"errors"
	"fmt"
	"time"
)

// Package errors for the present loop.
var (
	// ErrNoSurface is returned when the loop was created without a surface.
	ErrNoSurface = errors.New("tearbench: loop has no surface")

	// ErrLoopFinished is returned when Run is called on a loop that
	// already ran. A Loop is single use.
	ErrLoopFinished = errors.New("tearbench: loop already ran")
)

// LoopState identifies where a Loop is in its lifecycle.
type LoopState int

const (
	// StateInit is the freshly created loop, before Run.
	StateInit LoopState = iota

	// StateRunning is the per-frame body, re-entered until close.
	StateRunning

	// StateCloseRequested means close was observed; the loop is draining
	// the last presentation before terminating.
	StateCloseRequested

	// StateTerminated is the final state: timing computed, loop done.
	StateTerminated
)

// String returns a human-readable state name.
func (s LoopState) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateRunning:
		return "Running"
	case StateCloseRequested:
		return "CloseRequested"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// Report is the loop's final throughput accounting.
type Report struct {
	// Frames is the number of frames fully presented.
	Frames uint64

	// Elapsed is the wall time between loop start and termination.
	Elapsed time.Duration

	// FPS is Frames divided by Elapsed in seconds.
	FPS float64
}

// Loop owns the scene and drives the per-frame cycle of
// clear, transform, draw, blocking present, event poll.
//
// A Loop runs on the goroutine that calls Run, which must be locked to the
// OS thread owning the surface's context. It is single use: create, Run
// once, read the report.
type Loop struct {
	surface Surface
	objects []SceneObject
	opts    loopOptions

	state      LoopState
	start      time.Time
	frames     uint64
	view       Matrix4
	projection Matrix4
}

// NewLoop creates a present loop over the given surface and scene objects.
func NewLoop(s Surface, objects []SceneObject, opts ...LoopOption) *Loop {
	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Loop{
		surface: s,
		objects: objects,
		opts:    o,
		state:   StateInit,
	}
}

// State returns the loop's current lifecycle state.
func (l *Loop) State() LoopState { return l.state }

// Frame returns the state of the frame most recently completed.
func (l *Loop) Frame() FrameState {
	return FrameState{
		Elapsed:    time.Since(l.start),
		Frame:      l.frames,
		View:       l.view,
		Projection: l.projection,
	}
}

func (l *Loop) setState(s LoopState) {
	Logger().Debug("loop state change", "from", l.state, "to", s)
	l.state = s
}

// Run drives the loop until the surface requests close (or the frame limit
// is reached) and returns the final throughput report.
//
// Each frame blocks in Present until the swap completes. That single
// suspension point is the whole design: with no frame queued ahead, any
// mismatch between swap timing and the display refresh shows up as a tear.
func (l *Loop) Run() (Report, error) {
	if l.surface == nil {
		return Report{}, ErrNoSurface
	}
	if l.state != StateInit {
		return Report{}, ErrLoopFinished
	}

	// One-time setup: the projection matrix follows the surface aspect.
	aspect := float32(l.surface.Width()) / float32(l.surface.Height())
	l.projection = Perspective(l.opts.fovYDegrees, aspect, l.opts.near, l.opts.far)

	Logger().Info("present loop starting",
		"objects", len(l.objects),
		"width", l.surface.Width(), "height", l.surface.Height(),
		"frameLimit", l.opts.frameLimit)

	l.start = time.Now()
	l.setState(StateRunning)

	for l.state == StateRunning {
		l.surface.Clear(l.opts.clear)

		t := time.Since(l.start).Seconds()
		l.view = ViewAt(t)

		for _, obj := range l.objects {
			mvp := Compose(obj.Model, l.view, l.projection)
			if err := l.surface.DrawMesh(obj.Mesh, mvp); err != nil {
				l.setState(StateTerminated)
				return l.report(), fmt.Errorf("tearbench: draw failed: %w", err)
			}
		}

		// Block until the swap completes.
		if err := l.surface.Present(); err != nil {
			l.setState(StateTerminated)
			return l.report(), fmt.Errorf("tearbench: present failed: %w", err)
		}

		l.surface.PollEvents()
		if l.surface.CloseRequested() {
			l.setState(StateCloseRequested)
		}

		l.frames++
		if l.opts.frameLimit > 0 && l.frames >= l.opts.frameLimit && l.state == StateRunning {
			Logger().Info("frame limit reached", "frames", l.frames)
			l.setState(StateCloseRequested)
		}
	}

	// The blocking present means nothing is in flight by the time close
	// is observed; draining is just the final accounting.
	l.setState(StateTerminated)
	r := l.report()
	Logger().Info("present loop finished",
		"frames", r.Frames, "elapsed", r.Elapsed, "fps", r.FPS)
	return r, nil
}

func (l *Loop) report() Report {
	elapsed := time.Since(l.start)
	fps := 0.0
	if s := elapsed.Seconds(); s > 0 {
		fps = float64(l.frames) / s
	}
	return Report{Frames: l.frames, Elapsed: elapsed, FPS: fps}
}
