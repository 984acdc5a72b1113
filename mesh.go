// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import (
	"math"
	"math/rand"
)

// Mesh is an immutable tessellated surface: vertex positions and per-vertex
// colors as parallel flat float32 buffers, three floats per entry.
// The two buffers always have equal length, divisible by 9 (one triangle),
// and in practice by 18 (one facet: a quad split into two triangles).
//
// A Mesh carries geometry only. GPU-side buffer state belongs to the
// backend drawing it, so the same Mesh can be drawn on any Surface.
type Mesh struct {
	vertices []float32
	colors   []float32
}

// Vertices returns the flat position buffer (x, y, z per vertex).
// The slice is shared with the mesh and must not be modified.
func (m *Mesh) Vertices() []float32 { return m.vertices }

// Colors returns the flat color buffer (r, g, b per vertex).
// The slice is shared with the mesh and must not be modified.
func (m *Mesh) Colors() []float32 { return m.colors }

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.vertices) / 3 }

// cubeFaces drives the six stampings of the canonical +Z grid onto the
// cube. Each entry gives the face base color, the canonical component
// consumed by each output axis, and the per-axis sign flip. Index and sign
// together stand in for the 90 degree rotations that place the face.
var cubeFaces = [6]struct {
	color Color
	idx   [3]int
	sign  [3]float32
}{
	{Color{0, 0, 1}, [3]int{0, 1, 2}, [3]float32{1, 1, 1}},    // +Z blue, canonical
	{Color{0, 1, 1}, [3]int{0, 1, 2}, [3]float32{-1, -1, -1}}, // -Z cyan, all axes mirrored
	{Color{1, 0, 0}, [3]int{2, 1, 0}, [3]float32{1, 1, -1}},   // +X red, x=z y=y z=-x
	{Color{1, 0, 1}, [3]int{2, 1, 0}, [3]float32{-1, 1, 1}},   // -X magenta, x=-z y=y z=x
	{Color{0, 1, 0}, [3]int{0, 2, 1}, [3]float32{1, 1, -1}},   // +Y green, x=x y=z z=-y
	{Color{1, 1, 0}, [3]int{0, 2, 1}, [3]float32{1, -1, 1}},   // -Y yellow, x=x y=-z z=y
}

// BuildCube generates a tessellated cube spanning [-scale, scale] on every
// axis. The canonical +Z face grid is generated once with a random
// luminance per facet, then stamped onto all six faces with the per-face
// base color and axis swizzle. targetTriangles is a budget, not an exact
// count: the grid resolution is the largest square quad count per face
// that stays within it, with a minimum of one quad per face.
func BuildCube(scale float32, targetTriangles int) *Mesh {
	edge := quadsPerEdge(targetTriangles, 6)
	verts, colors := facetGrid(scale, edge, scale)

	m := &Mesh{
		vertices: make([]float32, 0, 6*len(verts)),
		colors:   make([]float32, 0, 6*len(colors)),
	}
	for _, f := range cubeFaces {
		m.colors = append(m.colors, modulateColors(colors, f.color)...)
		m.vertices = append(m.vertices, swizzleVertices(verts, f.idx, f.sign)...)
	}
	Logger().Debug("cube mesh built",
		"quadsPerEdge", edge, "vertices", m.VertexCount(), "targetTriangles", targetTriangles)
	return m
}

// BuildPlane generates a tessellated plane in z = 0 spanning
// [-scale, scale] in x and y. Each facet's random luminance scales the
// base color (use White for the classic test pattern).
func BuildPlane(scale float32, targetTriangles int, base Color) *Mesh {
	edge := quadsPerEdge(targetTriangles, 1)
	verts, colors := facetGrid(scale, edge, 0)

	m := &Mesh{
		vertices: verts,
		colors:   modulateColors(colors, base),
	}
	Logger().Debug("plane mesh built",
		"quadsPerEdge", edge, "vertices", m.VertexCount(), "targetTriangles", targetTriangles)
	return m
}

// quadsPerEdge converts a triangle budget into a per-face grid resolution:
// max(1, floor(sqrt(targetTriangles / 2 / faces))). Degenerate budgets
// clamp to a single quad rather than failing.
func quadsPerEdge(targetTriangles, faces int) int {
	quads := targetTriangles / 2
	perFace := quads / faces
	n := int(math.Sqrt(float64(perFace)))
	if n < 1 {
		n = 1
	}
	return n
}

// facetGrid builds the canonical white quad grid: edge*edge facets covering
// [-scale, scale] in x and y at the fixed z. Every facet is two triangles
// with a fixed winding, and all six of a facet's vertices share one
// luminance sampled from the unseeded global source, uniform in [0.5, 1).
func facetGrid(scale float32, edge int, z float32) (verts, colors []float32) {
	verts = make([]float32, 0, edge*edge*18)
	colors = make([]float32, 0, edge*edge*18)
	step := 2 * scale / float32(edge)
	for i := 0; i < edge; i++ {
		for j := 0; j < edge; j++ {
			lum := 0.5 + 0.5*rand.Float32()
			for c := 0; c < 18; c++ {
				colors = append(colors, lum)
			}

			minX := -scale + float32(i)*step
			maxX := -scale + float32(i+1)*step
			minY := -scale + float32(j)*step
			maxY := -scale + float32(j+1)*step
			verts = append(verts,
				minX, maxY, z,
				minX, minY, z,
				maxX, minY, z,

				maxX, minY, z,
				maxX, maxY, z,
				minX, maxY, z,
			)
		}
	}
	return verts, colors
}

// modulateColors multiplies every color triple by the given base color.
// A buffer whose length is not a multiple of 3 produces an empty result:
// the affected step contributes no facets instead of crashing.
func modulateColors(in []float32, c Color) []float32 {
	if len(in)%3 != 0 {
		Logger().Warn("color buffer length not a multiple of 3, dropping", "len", len(in))
		return nil
	}
	out := make([]float32, len(in))
	for i := 0; i < len(in); i += 3 {
		out[i] = in[i] * c.R
		out[i+1] = in[i+1] * c.G
		out[i+2] = in[i+2] * c.B
	}
	return out
}

// swizzleVertices remaps every coordinate triple through an axis
// permutation and sign flip. Same quiet-degrade rule as modulateColors.
func swizzleVertices(in []float32, idx [3]int, sign [3]float32) []float32 {
	if len(in)%3 != 0 {
		Logger().Warn("vertex buffer length not a multiple of 3, dropping", "len", len(in))
		return nil
	}
	out := make([]float32, len(in))
	for i := 0; i < len(in); i += 3 {
		for p := 0; p < 3; p++ {
			out[i+p] = in[i+idx[p]] * sign[p]
		}
	}
	return out
}
