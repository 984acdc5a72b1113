// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import "image/color"

// Color represents an opaque RGB color with components in the range [0, 1].
// Vertex colors are always plain RGB triples; alpha is pinned to 1 at the
// point a backend consumes a Color.
type Color struct {
	R, G, B float32
}

// White is the default base color for generated geometry.
var White = Color{1, 1, 1}

// Sky is the default frame clear color, a light blue that makes the
// oscillating cube faces stand out.
var Sky = Color{0.6, 0.8, 1.0}

// NRGBA converts the color to 8-bit color.NRGBA with full alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp255(c.R),
		G: clamp255(c.G),
		B: clamp255(c.B),
		A: 255,
	}
}

func clamp255(v float32) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
