// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import "github.com/ohnishi-lab/gxsview/gmath"

// Sphere params: [x0,y0,z0,r].
func sphereF(params []float64, p gmath.Vector3) float64 {
	x0, y0, z0, r := params[0], params[1], params[2], params[3]
	dx, dy, dz := p.X-x0, p.Y-y0, p.Z-z0
	return dx*dx + dy*dy + dz*dz - r*r
}

func sphereRoots(params []float64, p, d gmath.Vector3) []float64 {
	x0, y0, z0, r := params[0], params[1], params[2], params[3]
	ox, oy, oz := p.X-x0, p.Y-y0, p.Z-z0
	a := d.Dot(d)
	b := 2 * (ox*d.X + oy*d.Y + oz*d.Z)
	c := ox*ox + oy*oy + oz*oz - r*r
	return gmath.SolveQuadratic(a, b, c)
}

// NewSphere returns a sphere of radius r centered at (x0,y0,z0).
func NewSphere(name string, id int, x0, y0, z0, r float64) *Surface {
	return New(name, id, Sphere, []float64{x0, y0, z0, r}, nil)
}
