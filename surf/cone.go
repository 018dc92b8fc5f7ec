// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import "github.com/ohnishi-lab/gxsview/gmath"

// Cone params for ConeX/Y/Z: [x0,y0,z0,t2,sheet] where t2=tan(theta)^2 and
// sheet is +1/-1/0 selecting one nappe (0 keeps both, matching MCNP's KX
// one-sheet-selector convention with a 4th optional param).
func coneF(kind Kind, params []float64, p gmath.Vector3) float64 {
	x0, y0, z0, t2 := params[0], params[1], params[2], params[3]
	dx, dy, dz := p.X-x0, p.Y-y0, p.Z-z0
	switch kind {
	case ConeX:
		return dy*dy + dz*dz - t2*dx*dx
	case ConeY:
		return dx*dx + dz*dz - t2*dy*dy
	default: // ConeZ
		return dx*dx + dy*dy - t2*dz*dz
	}
}

func coneAxisComponent(kind Kind, v gmath.Vector3) (axis, u1, u2 float64) {
	switch kind {
	case ConeX:
		return v.X, v.Y, v.Z
	case ConeY:
		return v.Y, v.X, v.Z
	default:
		return v.Z, v.X, v.Y
	}
}

func coneRoots(kind Kind, params []float64, p, d gmath.Vector3) []float64 {
	x0, y0, z0, t2 := params[0], params[1], params[2], params[3]
	op := p.Sub(gmath.NewVector3(x0, y0, z0))
	pa, p1, p2 := coneAxisComponent(kind, op)
	da, d1, d2 := coneAxisComponent(kind, d)
	a := d1*d1 + d2*d2 - t2*da*da
	b := 2 * (p1*d1 + p2*d2 - t2*pa*da)
	c := p1*p1 + p2*p2 - t2*pa*pa
	roots := gmath.SolveQuadratic(a, b, c)
	sheet := 0.0
	if len(params) > 4 {
		sheet = params[4]
	}
	if sheet == 0 {
		return roots
	}
	var out []float64
	for _, t := range roots {
		axisVal := pa + t*da
		if sheet > 0 && axisVal >= 0 {
			out = append(out, t)
		} else if sheet < 0 && axisVal <= 0 {
			out = append(out, t)
		}
	}
	return out
}

// NewConeZ returns a cone with apex (x0,y0,z0), axis Z, half-angle with
// tan^2=t2; sheet selects +1 (axis>=apex), -1 (axis<=apex) or 0 (both).
func NewConeZ(name string, id int, x0, y0, z0, t2, sheet float64) *Surface {
	return New(name, id, ConeZ, []float64{x0, y0, z0, t2, sheet}, nil)
}

// NewConeX is the X-axis analogue of NewConeZ.
func NewConeX(name string, id int, x0, y0, z0, t2, sheet float64) *Surface {
	return New(name, id, ConeX, []float64{x0, y0, z0, t2, sheet}, nil)
}

// NewConeY is the Y-axis analogue of NewConeZ.
func NewConeY(name string, id int, x0, y0, z0, t2, sheet float64) *Surface {
	return New(name, id, ConeY, []float64{x0, y0, z0, t2, sheet}, nil)
}
