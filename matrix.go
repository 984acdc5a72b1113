// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import "github.com/chewxy/math32"

// Matrix4 represents a 3D affine or projective transformation.
// It is stored as 16 float32 values in row-major order:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// The layout is chosen so that the flat array, uploaded unmodified to a
// column-major GL mat4 uniform, produces the standard OpenGL clip-space
// transform. Row-major composition therefore reads left to right:
// Compose(model, view, projection) is the transform GL applies as
// projection * view * model to a column vector.
type Matrix4 [16]float32

// Identity returns the identity transformation matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationX creates a right-handed rotation about the X axis
// (angle in radians).
func RotationX(angle float32) Matrix4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY creates a right-handed rotation about the Y axis
// (angle in radians).
func RotationY(angle float32) Matrix4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y, z float32) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Perspective creates a perspective projection matrix with an OpenGL-style
// clip space: f = 1/tan(fovY/2), the w divide comes from element 11 = -1.
// The exact signs of elements 10, 11 and 14 are part of the contract;
// downstream vertex transforms depend on this convention.
func Perspective(fovYDegrees, aspect, near, far float32) Matrix4 {
	f := 1 / math32.Tan(fovYDegrees*(math32.Pi/360))
	nf := 1 / (near - far)
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Mul multiplies two matrices (m * other) in row-major order.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * other[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Compose multiplies an ordered list of matrices as a left fold:
// result = ms[0]; result = result * ms[i] for each following matrix.
// The rightmost matrix is the one a column vector is multiplied by first.
// Callers rely on Compose(model, view, projection) order exactly; the
// reverse order produces wrong clip-space coordinates.
// Compose of an empty list returns the identity.
func Compose(ms ...Matrix4) Matrix4 {
	if len(ms) == 0 {
		return Identity()
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = out.Mul(m)
	}
	return out
}

// TransformPoint applies the transformation to a point (w = 1) and returns
// the transformed coordinates along with the clip-space w component.
// Row-vector convention: out = v * m, matching what GL computes after the
// column-major upload of the same flat array.
func (m Matrix4) TransformPoint(x, y, z float32) (tx, ty, tz, tw float32) {
	tx = x*m[0] + y*m[4] + z*m[8] + m[12]
	ty = x*m[1] + y*m[5] + z*m[9] + m[13]
	tz = x*m[2] + y*m[6] + z*m[10] + m[14]
	tw = x*m[3] + y*m[7] + z*m[11] + m[15]
	return tx, ty, tz, tw
}
