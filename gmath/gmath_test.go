// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVectorBasics(tst *testing.T) {
	chk.PrintTitle("VectorBasics")
	u := NewVector3(1, 0, 0)
	v := NewVector3(0, 1, 0)
	if !IsOrthogonal(u, v) {
		tst.Fatal("expected u,v orthogonal")
	}
	w := u.Cross(v)
	chk.Scalar(tst, "w.z", 1e-15, w.Z, 1)
	chk.Scalar(tst, "norm", 1e-15, u.Norm(), 1)
	if !SamePoint(u.Add(v).Sub(v), u) {
		tst.Fatal("expected same point after add/sub roundtrip")
	}
}

func TestOrthogonalize(tst *testing.T) {
	chk.PrintTitle("Orthogonalize")
	vs := []Vector3{{1, 0, 0}, {1, 1, 0}, {2, 0, 0}}
	n := Orthogonalize(vs)
	chk.IntAssert(n, 2)
}

func TestSolveQuadratic(tst *testing.T) {
	chk.PrintTitle("SolveQuadratic")
	roots := SolveQuadratic(1, 0, -4)
	chk.IntAssert(len(roots), 2)
	chk.Scalar(tst, "r0", 1e-9, roots[0], -2)
	chk.Scalar(tst, "r1", 1e-9, roots[1], 2)

	none := SolveQuadratic(1, 0, 4)
	chk.IntAssert(len(none), 0)
}

func TestSolveCubic(tst *testing.T) {
	chk.PrintTitle("SolveCubic")
	// (x-1)(x-2)(x-3) = x^3 -6x^2+11x-6
	roots := SolveCubic(1, -6, 11, -6)
	chk.IntAssert(len(roots), 3)
	chk.Scalar(tst, "r0", 1e-8, roots[0], 1)
	chk.Scalar(tst, "r1", 1e-8, roots[1], 2)
	chk.Scalar(tst, "r2", 1e-8, roots[2], 3)
}

func TestSolveQuartic(tst *testing.T) {
	chk.PrintTitle("SolveQuartic")
	// (x-1)(x+1)(x-2)(x+2) = x^4 -5x^2+4
	roots := SolveQuartic(1, 0, -5, 0, 4)
	chk.IntAssert(len(roots), 4)
	chk.Scalar(tst, "r0", 1e-8, roots[0], -2)
	chk.Scalar(tst, "r3", 1e-8, roots[3], 2)
}

func TestMatrixCompose(tst *testing.T) {
	chk.PrintTitle("MatrixCompose")
	tr1 := Translation(NewVector3(5, 0, 0))
	tr2 := RotationZ(3.141592653589793 / 2)
	m := Compose(tr1, tr2)
	// tr1 (leftmost, first-listed) applies first: (0,1,0) translated by
	// (5,0,0) -> (5,1,0), then tr2 rotates 90deg about z -> (-1,5,0).
	p := AffineTransform(NewVector3(0, 1, 0), m)
	chk.Scalar(tst, "x", 1e-12, p.X, -1)
	chk.Scalar(tst, "y", 1e-12, p.Y, 5)
}
