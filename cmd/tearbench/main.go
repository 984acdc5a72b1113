// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command tearbench drives an intentionally unsynchronized render loop to
// reproduce display tearing on high-resolution monitors.
//
// By default it opens a 7680x4320 window fullscreen on monitor 1 and
// renders the room-cube scene until the window is closed, then reports
// the achieved frame rate. Pass -fullScreenDisplay -1 to stay windowed, or
// -headless N to render N frames into an in-memory framebuffer (optionally
// capturing the last frame with -capture).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/tearbench"
	"github.com/gogpu/tearbench/backend/gl"
	"github.com/gogpu/tearbench/backend/headless"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		fullScreenDisplay = flag.Int("fullScreenDisplay", 1, "zero-based monitor index to take fullscreen, -1 for windowed")
		width             = flag.Int("width", 7680, "window width in pixels")
		height            = flag.Int("height", 4320, "window height in pixels")
		fps               = flag.Float64("fps", 60.0, "fullscreen refresh rate in Hz")
		headlessFrames    = flag.Uint64("headless", 0, "render this many frames to an in-memory framebuffer instead of a window")
		capture           = flag.String("capture", "", "write the final headless frame to this file (.png or .webp)")
		captureMaxDim     = flag.Int("captureMaxDim", 2048, "downscale captures larger than this dimension")
		verbose           = flag.Bool("verbose", false, "log at debug level instead of info")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	tearbench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	scene := []tearbench.SceneObject{
		{Mesh: tearbench.BuildCube(0.25, 1200), Model: tearbench.Identity()},
	}

	if *headlessFrames > 0 {
		os.Exit(runHeadless(scene, *width, *height, *headlessFrames, *capture, *captureMaxDim))
	}
	if *capture != "" {
		tearbench.Logger().Warn("capture needs -headless, ignoring", "path", *capture)
	}
	os.Exit(runWindowed(scene, *fullScreenDisplay, *width, *height, *fps))
}

func runWindowed(scene []tearbench.SceneObject, monitor, width, height int, fps float64) int {
	fmt.Printf("FullScreen display (-1 for none): %d\n", monitor)

	surface, err := gl.Open(gl.Config{
		Width:       width,
		Height:      height,
		Monitor:     monitor,
		RefreshRate: int(fps),
	})
	if err != nil {
		return openExitCode(err)
	}

	fmt.Println("Use the OS-specific close button or full-screen quit (Alt-F4 or Apple-Q) to close the window.")

	report, err := tearbench.NewLoop(surface, scene).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		surface.Close()
		return 1
	}
	fmt.Println("Closing window")

	if err := surface.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	printReport(report)
	return 0
}

func runHeadless(scene []tearbench.SceneObject, width, height int, frames uint64, capture string, captureMaxDim int) int {
	surface := headless.New(headless.Config{
		Width:       width,
		Height:      height,
		FrameBudget: frames,
	})

	report, err := tearbench.NewLoop(surface, scene).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if capture != "" {
		if err := surface.Capture(capture, captureMaxDim); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		tearbench.Logger().Info("frame captured", "path", capture)
	}

	printReport(report)
	return 0
}

// openExitCode turns a surface creation failure into the diagnostic and
// exit code the harness has always used. Shader and link failures print
// the driver's info log and abort: the shader source is fixed, so they
// mean a broken driver, not a usage error.
func openExitCode(err error) int {
	var shaderErr *gl.ShaderError
	if errors.As(err, &shaderErr) {
		fmt.Fprintln(os.Stderr, shaderErr.Log)
		panic(err)
	}
	var linkErr *gl.LinkError
	if errors.As(err, &linkErr) {
		fmt.Fprintln(os.Stderr, linkErr.Log)
		panic(err)
	}

	switch {
	case errors.Is(err, gl.ErrCreateWindow):
		fmt.Fprintln(os.Stderr, "Failed to create GLFW window")
		return 1
	case errors.Is(err, gl.ErrNoMonitors):
		fmt.Fprintln(os.Stderr, "No monitors for fullscreen")
		return 2
	case errors.Is(err, gl.ErrMonitorIndex):
		fmt.Fprintln(os.Stderr, "Invalid monitor requested (index larger than available monitors)")
		return 3
	case errors.Is(err, gl.ErrContextInit):
		fmt.Fprintln(os.Stderr, "Failed to initialize OpenGL")
		return 4
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}

func printReport(r tearbench.Report) {
	fmt.Printf("Elapsed time: %g seconds\n", r.Elapsed.Seconds())
	fmt.Printf("Frames per second: %g\n", r.FPS)
}
