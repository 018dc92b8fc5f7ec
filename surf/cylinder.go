// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import "github.com/ohnishi-lab/gxsview/gmath"

// Cylinder params for CylX/CylY/CylZ: [c1,c2,r] where c1,c2 are the two
// off-axis center coordinates. CylGeneral uses the same params in the
// surface's local frame (reached via Transform), axis fixed to Z locally.
func cylF(kind Kind, params []float64, p gmath.Vector3) float64 {
	c1, c2, r := params[0], params[1], params[2]
	var u, v float64
	switch kind {
	case CylX:
		u, v = p.Y-c1, p.Z-c2
	case CylY:
		u, v = p.X-c1, p.Z-c2
	case CylZ, CylGeneral:
		u, v = p.X-c1, p.Y-c2
	}
	return u*u + v*v - r*r
}

func cylRoots(kind Kind, params []float64, p, d gmath.Vector3) []float64 {
	c1, c2, r := params[0], params[1], params[2]
	var pu, pv, du, dv float64
	switch kind {
	case CylX:
		pu, pv, du, dv = p.Y-c1, p.Z-c2, d.Y, d.Z
	case CylY:
		pu, pv, du, dv = p.X-c1, p.Z-c2, d.X, d.Z
	case CylZ, CylGeneral:
		pu, pv, du, dv = p.X-c1, p.Y-c2, d.X, d.Y
	}
	a := du*du + dv*dv
	b := 2 * (pu*du + pv*dv)
	c := pu*pu + pv*pv - r*r
	return gmath.SolveQuadratic(a, b, c)
}

// NewCylX returns a cylinder with axis parallel to X, radius r, centered at
// (y0,z0) in the Y-Z plane.
func NewCylX(name string, id int, y0, z0, r float64) *Surface {
	return New(name, id, CylX, []float64{y0, z0, r}, nil)
}

// NewCylY is the Y-axis analogue of NewCylX.
func NewCylY(name string, id int, x0, z0, r float64) *Surface {
	return New(name, id, CylY, []float64{x0, z0, r}, nil)
}

// NewCylZ is the Z-axis analogue of NewCylX.
func NewCylZ(name string, id int, x0, y0, r float64) *Surface {
	return New(name, id, CylZ, []float64{x0, y0, r}, nil)
}

// NewCylGeneral returns a cylinder of radius r about an arbitrary axis,
// expressed by placing a Z-axis cylinder through tr.
func NewCylGeneral(name string, id int, r float64, tr gmath.Matrix4) *Surface {
	return New(name, id, CylGeneral, []float64{0, 0, r}, &tr)
}
