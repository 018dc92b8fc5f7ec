// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import "github.com/ohnishi-lab/gxsview/gmath"

// Quadric params (the general "GQ" card): [A,B,C,D,E,F,G,H,J,K] for
//   A x^2 + B y^2 + C z^2 + D xy + E yz + F zx + G x + H y + J z + K = 0
func quadricF(p []float64, v gmath.Vector3) float64 {
	x, y, z := v.X, v.Y, v.Z
	a, b, c, d, e, f, g, h, j, k := p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8], p[9]
	return a*x*x + b*y*y + c*z*z + d*x*y + e*y*z + f*z*x + g*x + h*y + j*z + k
}

func quadricRoots(p []float64, p0, d gmath.Vector3) []float64 {
	a, b, c, dd, e, f, g, h, j, _ := p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8], p[9]
	x0, y0, z0 := p0.X, p0.Y, p0.Z
	dx, dy, dz := d.X, d.Y, d.Z

	// F(t) = f(p0 + t d); expand to quadratic coefficients in t.
	A2 := a*dx*dx + b*dy*dy + c*dz*dz + dd*dx*dy + e*dy*dz + f*dz*dx
	A1 := 2*a*x0*dx + 2*b*y0*dy + 2*c*z0*dz +
		dd*(x0*dy+y0*dx) + e*(y0*dz+z0*dy) + f*(z0*dx+x0*dz) +
		g*dx + h*dy + j*dz
	A0 := quadricF(p, p0)

	return gmath.SolveQuadratic(A2, A1, A0)
}

// NewQuadric returns a general quadric surface from its 10 coefficients.
func NewQuadric(name string, id int, coeffs [10]float64) *Surface {
	return New(name, id, Quadric, coeffs[:], nil)
}
