// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import "math"

// screenVertex is a vertex after viewport mapping: pixel x/y, NDC depth,
// and its vertex color.
type screenVertex struct {
	x, y    float64
	z       float32
	r, g, b float32
}

// fillTriangle writes one triangle into the framebuffer. Coverage is
// decided by barycentric weights over the bounding box; depth is
// interpolated and tested less-than, matching the GL convention where
// smaller NDC z is closer.
func (s *Surface) fillTriangle(v0, v1, v2 screenVertex) {
	x0, y0 := v0.x, v0.y
	x1, y1 := v1.x, v1.y
	x2, y2 := v2.x, v2.y

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= s.width {
		maxX = s.width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= s.height {
		maxY = s.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Degenerate triangles have no area to cover.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	pix := s.img.Pix
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * s.width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			// Small negative tolerance keeps shared facet edges gapless.
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := float32(w0)*v0.z + float32(w1)*v1.z + float32(w2)*v2.z
			zIdx := rowOff + sx
			if z >= s.depth[zIdx] {
				continue
			}
			s.depth[zIdx] = z

			r := float32(w0)*v0.r + float32(w1)*v1.r + float32(w2)*v2.r
			g := float32(w0)*v0.g + float32(w1)*v1.g + float32(w2)*v2.g
			b := float32(w0)*v0.b + float32(w1)*v1.b + float32(w2)*v2.b

			pxIdx := zIdx * 4
			pix[pxIdx] = clamp255(float64(r) * 255)
			pix[pxIdx+1] = clamp255(float64(g) * 255)
			pix[pxIdx+2] = clamp255(float64(b) * 255)
			pix[pxIdx+3] = 0xff
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
