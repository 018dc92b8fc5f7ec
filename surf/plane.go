// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import "github.com/ohnishi-lab/gxsview/gmath"

// Plane params: [A,B,C,D] for the implicit form A*x+B*y+C*z-D=0, front is
// the side the normal (A,B,C) points toward. PX/PY/PZ cards are built with
// the corresponding unit normal.
func planeF(params []float64, p gmath.Vector3) float64 {
	a, b, c, d := params[0], params[1], params[2], params[3]
	return a*p.X + b*p.Y + c*p.Z - d
}

func planeRoots(params []float64, p, d gmath.Vector3) []float64 {
	a, b, c, dd := params[0], params[1], params[2], params[3]
	denom := a*d.X + b*d.Y + c*d.Z
	if abs(denom) < gmath.Eps {
		return nil
	}
	num := dd - (a*p.X + b*p.Y + c*p.Z)
	return []float64{num / denom}
}

// NewPX returns the plane x=x0.
func NewPX(name string, id int, x0 float64) *Surface {
	return New(name, id, Plane, []float64{1, 0, 0, x0}, nil)
}

// NewPY returns the plane y=y0.
func NewPY(name string, id int, y0 float64) *Surface {
	return New(name, id, Plane, []float64{0, 1, 0, y0}, nil)
}

// NewPZ returns the plane z=z0.
func NewPZ(name string, id int, z0 float64) *Surface {
	return New(name, id, Plane, []float64{0, 0, 1, z0}, nil)
}

// NewPlane returns the general plane a*x+b*y+c*z=d.
func NewPlane(name string, id int, a, b, c, d float64) *Surface {
	return New(name, id, Plane, []float64{a, b, c, d}, nil)
}
