// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"

	"github.com/ohnishi-lab/gxsview/gmath"
)

// Torus params for TorusX/Y/Z: [x0,y0,z0,A,B,C] — major radius A about the
// axis, minor radii B (radial-plane) and C (axial). A non-circular
// cross-section (B!=C) is handled by scaling the axial coordinate to B/C so
// the standard circular-torus quartic applies.
func torusF(kind Kind, params []float64, p gmath.Vector3) float64 {
	x0, y0, z0, a, b, c := params[0], params[1], params[2], params[3], params[4], params[5]
	op := p.Sub(gmath.NewVector3(x0, y0, z0))
	u, v, w := torusComponents(kind, op)
	rho := math.Sqrt(u*u + v*v)
	return (rho-a)*(rho-a)/(b*b) + w*w/(c*c) - 1
}

// torusComponents resolves (radial-u, radial-v, axial-w) regardless of axis.
func torusComponents(kind Kind, p gmath.Vector3) (u, v, w float64) {
	switch kind {
	case TorusX:
		return p.Y, p.Z, p.X
	case TorusY:
		return p.X, p.Z, p.Y
	default:
		return p.X, p.Y, p.Z
	}
}

func torusRoots(kind Kind, params []float64, p, d gmath.Vector3) []float64 {
	x0, y0, z0, a, b, c := params[0], params[1], params[2], params[3], params[4], params[5]
	op := p.Sub(gmath.NewVector3(x0, y0, z0))
	pu, pv, pw := torusComponents(kind, op)
	du, dv, dw := torusComponents(kind, d)

	scale := 1.0
	if c > gmath.Eps {
		scale = b / c
	}
	pw *= scale
	dw *= scale

	q2 := du*du + dv*dv + dw*dw
	q1 := 2 * (pu*du + pv*dv + pw*dw)
	q0 := pu*pu + pv*pv + pw*pw + a*a - b*b

	s2 := du*du + dv*dv
	s1 := 2 * (pu*du + pv*dv)
	s0 := pu*pu + pv*pv

	a4 := q2 * q2
	a3 := 2 * q2 * q1
	a2 := 2*q2*q0 + q1*q1 - 4*a*a*s2
	a1 := 2*q1*q0 - 4*a*a*s1
	a0 := q0*q0 - 4*a*a*s0

	return gmath.SolveQuartic(a4, a3, a2, a1, a0)
}

// NewTorusZ returns an axial torus about the Z axis centered at (x0,y0,z0),
// major radius a, minor radii b (radial) and c (axial).
func NewTorusZ(name string, id int, x0, y0, z0, a, b, c float64) *Surface {
	return New(name, id, TorusZ, []float64{x0, y0, z0, a, b, c}, nil)
}

// NewTorusX is the X-axis analogue of NewTorusZ.
func NewTorusX(name string, id int, x0, y0, z0, a, b, c float64) *Surface {
	return New(name, id, TorusX, []float64{x0, y0, z0, a, b, c}, nil)
}

// NewTorusY is the Y-axis analogue of NewTorusZ.
func NewTorusY(name string, id int, x0, y0, z0, a, b, c float64) *Surface {
	return New(name, id, TorusY, []float64{x0, y0, z0, a, b, c}, nil)
}
