// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/tearbench"
)

// meshBuffers is the GPU-side pair backing one mesh: positions and colors
// in separate buffers, both tightly packed vec3 float data.
type meshBuffers struct {
	vertexBuffer uint32
	colorBuffer  uint32
	count        int32
}

// buffersFor returns the buffer pair for m, uploading it on first use.
// Mesh data is immutable after construction, so the upload happens once.
func (s *Surface) buffersFor(m *tearbench.Mesh) *meshBuffers {
	if b, ok := s.meshes[m]; ok {
		return b
	}

	verts := m.Vertices()
	colors := m.Colors()
	b := &meshBuffers{count: int32(m.VertexCount())}

	gl.GenBuffers(1, &b.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.colorBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.colorBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(colors)*4, gl.Ptr(colors), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	s.meshes[m] = b
	tearbench.Logger().Debug("mesh uploaded", "vertices", b.count)
	return b
}

// DrawMesh binds the mesh's buffer pair to attribute locations 0 and 1,
// uploads the transform, and issues one triangle-list draw. The matrix is
// passed untransposed; its memory layout is already what the shader's
// column-major mat4 expects.
func (s *Surface) DrawMesh(m *tearbench.Mesh, mvp tearbench.Matrix4) error {
	if m == nil || m.VertexCount() == 0 {
		return nil
	}
	b := s.buffersFor(m)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.mvpLoc, 1, false, &mvp[0])

	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vertexBuffer)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, b.colorBuffer)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	return nil
}
