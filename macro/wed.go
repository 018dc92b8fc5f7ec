// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// wedExpander implements WED: a triangular prism (wedge) given by a base
// vertex, the two triangle-leg vectors and the extrusion (height) vector.
// Five surfaces: the three rectangular side planes (one per triangle edge,
// oriented so the interior is their back side) plus the two triangular
// caps.
type wedExpander struct{}

func (wedExpander) Mnemonic() string { return "wed" }
func (wedExpander) NumSurfaces() int { return 5 }
func (wedExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, -1, -1, 1}, negated)
}

func (e wedExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 12); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	a1 := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	a2 := transformDir(tr, gmath.NewVector3(sc.Params[6], sc.Params[7], sc.Params[8]))
	h := transformDir(tr, gmath.NewVector3(sc.Params[9], sc.Params[10], sc.Params[11]))

	p0, p1, p2 := v, v.Add(a1), v.Add(a2)
	u := h.Normalize()

	edges := [3][3]gmath.Vector3{{p0, p1, p2}, {p1, p2, p0}, {p2, p0, p1}}
	out := make([]card.SurfaceCard, 0, 5)
	for i, e := range edges {
		pi, pj, opposite := e[0], e[1], e[2]
		n := pj.Sub(pi).Cross(u).Normalize()
		if n.Dot(opposite.Sub(pi)) > 0 {
			n = n.Scale(-1)
		}
		out = append(out, planeCard(subName(sc.Name, i+1), n, n.Dot(pi)))
	}
	low, high := axisBoundPair(sc.Name, 4, 5, v, u, h.Norm())
	return append(out, low, high), nil
}
