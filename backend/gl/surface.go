// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/tearbench"
)

// Config selects where and how the window surface is created.
type Config struct {
	// Width and Height request the window size in screen coordinates.
	Width, Height int

	// Monitor is the zero-based index of the monitor to take fullscreen.
	// Negative leaves the window windowed.
	Monitor int

	// RefreshRate is the fullscreen refresh rate in Hz, passed to GLFW
	// when the window is moved onto the monitor. Ignored when windowed.
	RefreshRate int

	// Title is the window title. Empty picks a default.
	Title string
}

// Surface is a GLFW window with an OpenGL 4.1 core context. It implements
// tearbench.Surface.
//
// A Surface is bound to the OS thread that opened it. Every method,
// including Close, must run on that thread (lock it with
// runtime.LockOSThread before calling Open).
type Surface struct {
	window  *glfw.Window
	program uint32
	mvpLoc  int32
	vao     uint32
	width   int
	height  int
	meshes  map[*tearbench.Mesh]*meshBuffers
	closed  bool
}

var _ tearbench.Surface = (*Surface)(nil)

// Open initializes GLFW, creates the window, and brings up the context,
// shader program, and GL state the present loop relies on.
//
// The window is created windowed first; moving it fullscreen is a separate
// step so that a bad monitor index still yields its precise error. Errors
// unwrap to ErrCreateWindow, ErrNoMonitors, ErrMonitorIndex, ErrContextInit,
// or a ShaderError/LinkError.
func Open(cfg Config) (*Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gl: glfw init: %w", err)
	}

	// A fullscreen window that loses focus must stay up, not iconify;
	// the harness is often watched from a second machine.
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := cfg.Title
	if title == "" {
		title = "tearbench"
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}

	if cfg.Monitor >= 0 {
		monitors := glfw.GetMonitors()
		if len(monitors) == 0 {
			window.Destroy()
			glfw.Terminate()
			return nil, ErrNoMonitors
		}
		if cfg.Monitor >= len(monitors) {
			window.Destroy()
			glfw.Terminate()
			return nil, fmt.Errorf("%w: monitor %d of %d", ErrMonitorIndex, cfg.Monitor, len(monitors))
		}
		window.SetMonitor(monitors[cfg.Monitor], 0, 0, cfg.Width, cfg.Height, cfg.RefreshRate)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrContextInit, err)
	}

	tearbench.Logger().Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// Tearing is the point: never wait for vertical sync.
	glfw.SwapInterval(0)

	program, mvpLoc, err := buildProgram()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)

	// The core profile refuses to draw without a bound vertex array.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// The camera sits inside the room cube, so its back faces are the
	// ones we see.
	gl.Disable(gl.CULL_FACE)

	fbw, fbh := window.GetFramebufferSize()

	return &Surface{
		window:  window,
		program: program,
		mvpLoc:  mvpLoc,
		vao:     vao,
		width:   fbw,
		height:  fbh,
		meshes:  make(map[*tearbench.Mesh]*meshBuffers),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the framebuffer height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear fills the color buffer with c and resets the depth buffer.
func (s *Surface) Clear(c tearbench.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Present swaps the buffers and then blocks in glFinish until the GPU has
// completed the frame. Nothing is ever queued ahead of the swap.
func (s *Surface) Present() error {
	s.window.SwapBuffers()
	gl.Finish()
	return nil
}

// PollEvents pumps the OS event queue, including window close.
func (s *Surface) PollEvents() {
	glfw.PollEvents()
}

// CloseRequested reports whether the user has asked the window to close.
func (s *Surface) CloseRequested() bool {
	return s.window.ShouldClose()
}

// Close releases the GL objects, destroys the window, and shuts GLFW down.
// It is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	for _, b := range s.meshes {
		gl.DeleteBuffers(1, &b.vertexBuffer)
		gl.DeleteBuffers(1, &b.colorBuffer)
	}
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)

	glfw.DetachCurrentContext()
	s.window.Destroy()
	glfw.Terminate()
	return nil
}
