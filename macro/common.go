// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// transformPoint maps a macro-local point into world space through the
// card's resolved TR, if any.
func transformPoint(tr *gmath.Matrix4, p gmath.Vector3) gmath.Vector3 {
	if tr == nil {
		return p
	}
	return gmath.AffineTransform(p, *tr)
}

// transformDir is the direction-vector analogue of transformPoint (no
// translation component).
func transformDir(tr *gmath.Matrix4, d gmath.Vector3) gmath.Vector3 {
	if tr == nil {
		return d
	}
	return gmath.RotationTransform(d, *tr)
}

// planeCard returns a "p" surface card for the general plane
// a*x+b*y+c*z=d, front (positive literal) on the side where a*x+b*y+c*z>d.
func planeCard(name string, n gmath.Vector3, d float64) card.SurfaceCard {
	return card.SurfaceCard{Name: name, Symbol: "p", Params: []float64{n.X, n.Y, n.Z, d}}
}

// slabCard builds one of the pair of bound planes every box/cylinder/prism
// cap uses: both the low and the high bound of an interval projected onto
// axis u share the same normal (-u); the low bound's interior lands on its
// back side, the high bound's on its front (§4.C worked BOX example). Pass
// d=dot(point,u) for whichever bound this card represents.
func slabCard(name string, u gmath.Vector3, d float64) card.SurfaceCard {
	return card.SurfaceCard{Name: name, Symbol: "p", Params: []float64{-u.X, -u.Y, -u.Z, -d}}
}

// sphereCard returns an "sph" surface card.
func sphereCard(name string, c gmath.Vector3, r float64) card.SurfaceCard {
	return card.SurfaceCard{Name: name, Symbol: "sph", Params: []float64{c.X, c.Y, c.Z, r}}
}

// quadricCard returns a "gq" general-quadric surface card.
func quadricCard(name string, coeffs [10]float64) card.SurfaceCard {
	return card.SurfaceCard{Name: name, Symbol: "gq", Params: coeffs[:]}
}

// torusCard returns a "tx"/"ty"/"tz" surface card for the axis whose unit
// vector has the largest component of axis (macro TOR only supports
// world-axis-aligned tubes; see DESIGN.md).
func torusCard(name string, axis, center gmath.Vector3, a, b, c float64) card.SurfaceCard {
	sym := "tz"
	switch dominantAxis(axis) {
	case 0:
		sym = "tx"
	case 1:
		sym = "ty"
	}
	return card.SurfaceCard{Name: name, Symbol: sym, Params: []float64{center.X, center.Y, center.Z, a, b, c}}
}

func dominantAxis(v gmath.Vector3) int {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// mat3 is a symmetric (or not) 3x3 matrix used to expand quadratic forms
// q^T M q into general-quadric coefficients.
type mat3 [3][3]float64

// axisProjection returns I - s*u⊗u: with s=1 this is the matrix of
// the squared radial distance to the line through the origin with
// direction u (used for cylinders); with s=1+slope^2 it is the matrix of a
// double cone opening along u.
func axisProjection(u gmath.Vector3, s float64) mat3 {
	return mat3{
		{1 - s*u.X*u.X, -s * u.X * u.Y, -s * u.X * u.Z},
		{-s * u.X * u.Y, 1 - s*u.Y*u.Y, -s * u.Y * u.Z},
		{-s * u.X * u.Z, -s * u.Y * u.Z, 1 - s*u.Z*u.Z},
	}
}

// ellipseProjection returns the matrix of (q.e1/a)^2+(q.e2/a2)^2 for two
// perpendicular in-plane unit vectors e1,e2 with semi-axes a1,a2 (used for
// elliptical cylinders, REC).
func ellipseProjection(e1 gmath.Vector3, a1 float64, e2 gmath.Vector3, a2 float64) mat3 {
	return addMat3(outerScaled(e1, 1/(a1*a1)), outerScaled(e2, 1/(a2*a2)))
}

func outerScaled(e gmath.Vector3, w float64) mat3 {
	return mat3{
		{w * e.X * e.X, w * e.X * e.Y, w * e.X * e.Z},
		{w * e.X * e.Y, w * e.Y * e.Y, w * e.Y * e.Z},
		{w * e.X * e.Z, w * e.Y * e.Z, w * e.Z * e.Z},
	}
}

func addMat3(a, b mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

func mulMat3Vec(m mat3, v gmath.Vector3) gmath.Vector3 {
	return gmath.NewVector3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// quadricCoeffs expands the quadratic form (p-center)^T M (p-center) +
// constant into the ten GQ coefficients surf.NewQuadric expects.
func quadricCoeffs(center gmath.Vector3, m mat3, constant float64) [10]float64 {
	v := mulMat3Vec(m, center)
	return [10]float64{
		m[0][0], m[1][1], m[2][2],
		2 * m[0][1], 2 * m[1][2], 2 * m[0][2],
		-2 * v.X, -2 * v.Y, -2 * v.Z,
		center.Dot(v) + constant,
	}
}

// cylinderQuadric returns the GQ coefficients of an infinite circular
// cylinder of radius r about the line through center with direction axis.
func cylinderQuadric(center, axis gmath.Vector3, r float64) [10]float64 {
	u := axis.Normalize()
	return quadricCoeffs(center, axisProjection(u, 1), -r*r)
}

// coneQuadric returns the GQ coefficients of an infinite double cone with
// apex, axis direction axis and tan(halfAngle)^2 == slope2.
func coneQuadric(apex, axis gmath.Vector3, slope2 float64) [10]float64 {
	u := axis.Normalize()
	return quadricCoeffs(apex, axisProjection(u, 1+slope2), 0)
}

// ellipseCylinderQuadric returns the GQ coefficients of an infinite
// elliptical cylinder centered on the line through center with direction
// axis=e1 x e2, semi-axes a1 along e1 and a2 along e2.
func ellipseCylinderQuadric(center, e1 gmath.Vector3, a1 float64, e2 gmath.Vector3, a2 float64) [10]float64 {
	return quadricCoeffs(center, ellipseProjection(e1.Normalize(), a1, e2.Normalize(), a2), -1)
}

// axisBoundPair returns the pair of slab cards bounding the interval
// [dot(p0,u), dot(p0,u)+len] along unit axis u, named baseName+".lowIdx"
// and baseName+"."+highIdx.
func axisBoundPair(baseName string, lowIdx, highIdx int, p0 gmath.Vector3, u gmath.Vector3, length float64) (card.SurfaceCard, card.SurfaceCard) {
	dlow := p0.Dot(u)
	return slabCard(subName(baseName, lowIdx), u, dlow), slabCard(subName(baseName, highIdx), u, dlow+length)
}

func requireParamCount(sc card.SurfaceCard, counts ...int) error {
	for _, n := range counts {
		if len(sc.Params) == n {
			return nil
		}
	}
	return chk.Err("macro: %s expects %v parameters, got %d (card %q)", sc.Symbol, counts, len(sc.Params), sc.Name)
}
