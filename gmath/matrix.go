// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import "math"

// Matrix4 is a 4x4 affine transform: rows/cols 0..2 hold the 3x3 rotation
// (or more generally linear) part, row/col 3 hold the translation and the
// homogeneous 1. M[row][col].
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity transform.
func Identity() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Translation returns the affine transform that translates by v.
func Translation(v Vector3) Matrix4 {
	m := Identity()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// RotationAxis returns the affine transform that rotates by theta radians
// about the given axis (Rodrigues' formula); the translation part is zero.
func RotationAxis(axis Vector3, theta float64) Matrix4 {
	a := axis.Normalize()
	s, c := math.Sin(theta), math.Cos(theta)
	t := 1 - c
	m := Identity()
	m[0][0] = t*a.X*a.X + c
	m[0][1] = t*a.X*a.Y - s*a.Z
	m[0][2] = t*a.X*a.Z + s*a.Y
	m[1][0] = t*a.X*a.Y + s*a.Z
	m[1][1] = t*a.Y*a.Y + c
	m[1][2] = t*a.Y*a.Z - s*a.X
	m[2][0] = t*a.X*a.Z - s*a.Y
	m[2][1] = t*a.Y*a.Z + s*a.X
	m[2][2] = t*a.Z*a.Z + c
	return m
}

// RotationZ is the common case of RotationAxis({0,0,1}, theta); theta in
// radians.
func RotationZ(theta float64) Matrix4 { return RotationAxis(Vector3{Z: 1}, theta) }

// MatMul returns a*b, composing transforms so that MatMul(a,b) applied to a
// point equals a.AffineTransform(b.AffineTransform(p)) — i.e. b is applied
// first.
func MatMul(a, b Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// AffineTransform applies m to the point p (rotation + translation).
func AffineTransform(p Vector3, m Matrix4) Vector3 {
	return Vector3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// RotationTransform applies only the rotation (linear) part of m to the
// direction vector d, ignoring translation.
func RotationTransform(d Vector3, m Matrix4) Vector3 {
	return Vector3{
		X: m[0][0]*d.X + m[0][1]*d.Y + m[0][2]*d.Z,
		Y: m[1][0]*d.X + m[1][1]*d.Y + m[1][2]*d.Z,
		Z: m[2][0]*d.X + m[2][1]*d.Y + m[2][2]*d.Z,
	}
}

// Compose folds a chain of transforms trs (as they'd appear left-to-right on
// a card, e.g. "TR1 TR2") into a single Matrix4 such that the leftmost,
// first-listed transform is applied to the point first and the rest follow
// in listed order (spec.md §8 Scenario 6: "S1 TR1 TR2 PY 0" with TR1 a
// translation by (5,0,0) and TR2 a 90° rotation about z must resolve to the
// world-space plane x=0 — translating within the still-local y=0 plane is a
// no-op, and only the subsequent rotation moves it to x=0; composing in the
// other order would instead translate the already-rotated x=0 plane to
// x=5).
func Compose(trs ...Matrix4) Matrix4 {
	if len(trs) == 0 {
		return Identity()
	}
	out := trs[0]
	for i := 1; i < len(trs); i++ {
		out = MatMul(trs[i], out)
	}
	return out
}
