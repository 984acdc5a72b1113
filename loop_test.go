// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// fakeSurface records every call the loop makes. CloseRequested reports
// true once closeAfter presents have completed, mimicking a user closing
// the window after a few frames.
type fakeSurface struct {
	width, height int

	clears   []Color
	draws    []drawCall
	presents int
	polls    int
	closed   bool

	closeAfter int
	drawErr    error
	presentErr error
}

type drawCall struct {
	mesh *Mesh
	mvp  Matrix4
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: 320, height: 240}
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }

func (s *fakeSurface) Clear(c Color) { s.clears = append(s.clears, c) }

func (s *fakeSurface) DrawMesh(m *Mesh, mvp Matrix4) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.draws = append(s.draws, drawCall{mesh: m, mvp: mvp})
	return nil
}

func (s *fakeSurface) Present() error {
	if s.presentErr != nil {
		return s.presentErr
	}
	s.presents++
	return nil
}

func (s *fakeSurface) PollEvents() { s.polls++ }

func (s *fakeSurface) CloseRequested() bool {
	return s.closeAfter > 0 && s.presents >= s.closeAfter
}

func (s *fakeSurface) Close() error {
	s.closed = true
	return nil
}

func TestLoopStateString(t *testing.T) {
	tests := []struct {
		state LoopState
		want  string
	}{
		{StateInit, "Init"},
		{StateRunning, "Running"},
		{StateCloseRequested, "CloseRequested"},
		{StateTerminated, "Terminated"},
		{LoopState(42), "LoopState(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("LoopState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestLoopNoSurface(t *testing.T) {
	l := NewLoop(nil, nil)
	if _, err := l.Run(); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("Run() error = %v, want ErrNoSurface", err)
	}
}

func TestLoopSingleUse(t *testing.T) {
	fs := newFakeSurface()
	l := NewLoop(fs, nil, FrameLimit(1))
	if _, err := l.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if _, err := l.Run(); !errors.Is(err, ErrLoopFinished) {
		t.Fatalf("second Run() error = %v, want ErrLoopFinished", err)
	}
}

func TestLoopRunsUntilCloseRequested(t *testing.T) {
	fs := newFakeSurface()
	fs.closeAfter = 3

	mesh := BuildPlane(1, 2, White)
	l := NewLoop(fs, []SceneObject{{Mesh: mesh, Model: Identity()}})

	if got := l.State(); got != StateInit {
		t.Fatalf("State() before Run = %v, want Init", got)
	}

	report, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := l.State(); got != StateTerminated {
		t.Errorf("State() after Run = %v, want Terminated", got)
	}

	// Close observed after the third present stops the loop within that
	// same frame: exactly three of everything.
	if report.Frames != 3 {
		t.Errorf("Frames = %d, want 3", report.Frames)
	}
	if fs.presents != 3 {
		t.Errorf("presents = %d, want 3", fs.presents)
	}
	if len(fs.clears) != 3 {
		t.Errorf("clears = %d, want 3", len(fs.clears))
	}
	if fs.polls != 3 {
		t.Errorf("polls = %d, want 3", fs.polls)
	}
	if len(fs.draws) != 3 {
		t.Errorf("draws = %d, want 3", len(fs.draws))
	}
	for i, c := range fs.clears {
		if c != Sky {
			t.Errorf("clears[%d] = %v, want Sky", i, c)
		}
	}

	if report.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want > 0", report.Elapsed)
	}
	wantFPS := float64(report.Frames) / report.Elapsed.Seconds()
	if math.Abs(report.FPS-wantFPS) > 1e-9 {
		t.Errorf("FPS = %v, want Frames/Elapsed = %v", report.FPS, wantFPS)
	}
}

func TestLoopFrameLimit(t *testing.T) {
	fs := newFakeSurface() // never requests close
	l := NewLoop(fs, nil, FrameLimit(5))

	report, err := l.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Frames != 5 {
		t.Errorf("Frames = %d, want 5", report.Frames)
	}
	if fs.presents != 5 {
		t.Errorf("presents = %d, want 5", fs.presents)
	}
	if got := l.State(); got != StateTerminated {
		t.Errorf("State() = %v, want Terminated", got)
	}
}

func TestLoopStateSequence(t *testing.T) {
	var buf bytes.Buffer
	old := Logger()
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(old)

	fs := newFakeSurface()
	fs.closeAfter = 1
	if _, err := NewLoop(fs, nil).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	transitions := []string{
		"from=Init to=Running",
		"from=Running to=CloseRequested",
		"from=CloseRequested to=Terminated",
	}
	last := -1
	for _, tr := range transitions {
		i := strings.Index(out, tr)
		if i < 0 {
			t.Fatalf("log output missing transition %q:\n%s", tr, out)
		}
		if i < last {
			t.Fatalf("transition %q out of order:\n%s", tr, out)
		}
		last = i
	}
}

// TestLoopComposesModelViewProjection checks the multiply order the hard
// way: with two objects in the same frame, the second object's matrix must
// equal its model times the first object's (identity model) matrix, and the
// bottom row must be the projection's bottom row untouched. Both only hold
// when the product is model * view * projection.
func TestLoopComposesModelViewProjection(t *testing.T) {
	fs := newFakeSurface()
	mesh := BuildPlane(1, 2, White)
	model := Translation(1, 2, 3)
	l := NewLoop(fs, []SceneObject{
		{Mesh: mesh, Model: Identity()},
		{Mesh: mesh, Model: model},
	}, FrameLimit(1))

	if _, err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(fs.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(fs.draws))
	}

	vp := fs.draws[0].mvp // identity model: view * projection
	if got := model.Mul(vp); !mat4Near(fs.draws[1].mvp, got, 1e-4) {
		t.Errorf("second draw matrix = %v, want model*(view*projection) = %v",
			fs.draws[1].mvp, got)
	}

	// A rotation-only view leaves the projection's bottom row alone.
	aspect := float32(fs.width) / float32(fs.height)
	proj := Perspective(90, aspect, 0.01, 100)
	for _, i := range []int{12, 13, 14, 15} {
		if !near32(vp[i], proj[i], 1e-6) {
			t.Errorf("vp[%d] = %v, want projection row %v", i, vp[i], proj[i])
		}
	}

	// The first frame runs within well under 100 ms of the start, so its
	// pitch is near zero and the view is near the pure 90 degree yaw.
	want := Compose(RotationY(math.Pi/2), proj)
	if !mat4Near(vp, want, 0.05) {
		t.Errorf("first draw matrix = %v, want approximately yaw*projection = %v", vp, want)
	}
}

func TestLoopDrawError(t *testing.T) {
	errBoom := errors.New("boom")
	fs := newFakeSurface()
	fs.drawErr = errBoom

	mesh := BuildPlane(1, 2, White)
	l := NewLoop(fs, []SceneObject{{Mesh: mesh, Model: Identity()}})

	report, err := l.Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "draw failed") {
		t.Errorf("Run() error = %q, want draw failure context", err)
	}
	if got := l.State(); got != StateTerminated {
		t.Errorf("State() = %v, want Terminated", got)
	}
	if report.Frames != 0 {
		t.Errorf("Frames = %d, want 0", report.Frames)
	}
	if fs.presents != 0 {
		t.Errorf("presents = %d, want 0", fs.presents)
	}
}

func TestLoopPresentError(t *testing.T) {
	errSwap := errors.New("swap lost")
	fs := newFakeSurface()
	fs.presentErr = errSwap

	l := NewLoop(fs, nil)
	if _, err := l.Run(); !errors.Is(err, errSwap) {
		t.Fatalf("Run() error = %v, want wrapped swap error", err)
	}
	if got := l.State(); got != StateTerminated {
		t.Errorf("State() = %v, want Terminated", got)
	}
}

func TestLoopFrameAfterRun(t *testing.T) {
	fs := newFakeSurface()
	l := NewLoop(fs, nil, FrameLimit(4))
	if _, err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	frame := l.Frame()
	if frame.Frame != 4 {
		t.Errorf("Frame().Frame = %d, want 4", frame.Frame)
	}
	if frame.Projection == (Matrix4{}) {
		t.Error("Frame().Projection is zero, want perspective set by Run")
	}
	if frame.View == (Matrix4{}) {
		t.Error("Frame().View is zero, want view set by Run")
	}
}
