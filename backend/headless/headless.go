// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides an in-memory software surface for tearbench.
//
// It implements the same contract as backend/gl over a plain framebuffer:
// each vertex goes through the full transform, perspective divide, and
// viewport mapping, and triangles are filled with a z-buffer. There is no
// display to synchronize with, so Present only counts frames. The package
// exists for tests, CI, and frame capture.
package headless

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/tearbench"
)

// Config selects the framebuffer size and the optional frame budget.
type Config struct {
	// Width and Height give the framebuffer size in pixels.
	Width, Height int

	// FrameBudget makes CloseRequested report true once that many frames
	// have been presented. Zero means close is never requested and the
	// loop must stop by other means.
	FrameBudget uint64
}

// Surface renders into an in-memory RGBA framebuffer. It implements
// tearbench.Surface and tearbench.Snapshotter.
//
// A Surface is not safe for concurrent use; like its windowed sibling it
// expects a single render goroutine.
type Surface struct {
	width, height int
	budget        uint64
	presented     uint64

	img   *image.RGBA
	depth []float32
}

var (
	_ tearbench.Surface     = (*Surface)(nil)
	_ tearbench.Snapshotter = (*Surface)(nil)
)

// New creates a headless surface. Width and height are clamped to at
// least 1 pixel.
func New(cfg Config) *Surface {
	w, h := cfg.Width, cfg.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s := &Surface{
		width:  w,
		height: h,
		budget: cfg.FrameBudget,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		depth:  make([]float32, w*h),
	}
	for i := range s.depth {
		s.depth[i] = math32.Inf(1)
	}
	return s
}

// Width returns the framebuffer width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the framebuffer height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear fills the framebuffer with c and resets the depth buffer.
func (s *Surface) Clear(c tearbench.Color) {
	n := c.NRGBA()
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = n.R
		pix[i+1] = n.G
		pix[i+2] = n.B
		pix[i+3] = 0xff
	}
	for i := range s.depth {
		s.depth[i] = math32.Inf(1)
	}
}

// DrawMesh transforms every triangle of m by mvp and rasterizes it.
// Triangles with any vertex at or behind the eye plane are dropped whole;
// the harness scenes never straddle it.
func (s *Surface) DrawMesh(m *tearbench.Mesh, mvp tearbench.Matrix4) error {
	if m == nil || m.VertexCount() == 0 {
		return nil
	}
	verts := m.Vertices()
	colors := m.Colors()

	var tri [3]screenVertex
	for base := 0; base+9 <= len(verts); base += 9 {
		behind := false
		for v := 0; v < 3; v++ {
			i := base + v*3
			tx, ty, tz, tw := mvp.TransformPoint(verts[i], verts[i+1], verts[i+2])
			if tw <= 0 {
				behind = true
				break
			}
			// Perspective divide, then NDC to pixel coordinates with y
			// flipped: image rows grow downward.
			ndcX := tx / tw
			ndcY := ty / tw
			tri[v] = screenVertex{
				x: float64(ndcX+1) / 2 * float64(s.width),
				y: float64(1-ndcY) / 2 * float64(s.height),
				z: tz / tw,
				r: colors[i],
				g: colors[i+1],
				b: colors[i+2],
			}
		}
		if behind {
			continue
		}
		s.fillTriangle(tri[0], tri[1], tri[2])
	}
	return nil
}

// Present completes a frame. There is nothing to swap or wait for.
func (s *Surface) Present() error {
	s.presented++
	return nil
}

// PollEvents is a no-op: no OS event queue exists.
func (s *Surface) PollEvents() {}

// CloseRequested reports whether the frame budget has been spent.
func (s *Surface) CloseRequested() bool {
	return s.budget > 0 && s.presented >= s.budget
}

// Close releases nothing; it exists to satisfy the surface contract.
func (s *Surface) Close() error { return nil }

// Snapshot returns a copy of the framebuffer as it was last presented.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}
