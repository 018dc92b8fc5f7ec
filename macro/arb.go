// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// arbExpander implements ARB: an arbitrary convex polyhedron given by eight
// vertices and six four-digit face codes (each digit 1-8 indexes a vertex,
// 0 marks an unused slot for a triangular face). This port requires all
// six face codes to be present; the original's degenerate 4/5-face forms
// are out of scope.
type arbExpander struct{}

func (arbExpander) Mnemonic() string { return "arb" }
func (arbExpander) NumSurfaces() int { return 6 }
func (arbExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, -1, -1, -1, -1}, negated)
}

func (e arbExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 30); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	var verts [8]gmath.Vector3
	var centroid gmath.Vector3
	for i := 0; i < 8; i++ {
		verts[i] = transformPoint(tr, gmath.NewVector3(sc.Params[3*i], sc.Params[3*i+1], sc.Params[3*i+2]))
		centroid = centroid.Add(verts[i])
	}
	centroid = centroid.Scale(1.0 / 8.0)

	out := make([]card.SurfaceCard, 0, 6)
	for f := 0; f < 6; f++ {
		code := int(sc.Params[24+f])
		pts, err := faceVertices(code, verts)
		if err != nil {
			return nil, chk.Err("macro: arb %q face %d: %v", sc.Name, f+1, err)
		}
		n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalize()
		if n.Dot(centroid.Sub(pts[0])) > 0 {
			n = n.Scale(-1)
		}
		out = append(out, planeCard(subName(sc.Name, f+1), n, n.Dot(pts[0])))
	}
	return out, nil
}

// faceVertices decodes a four-digit ARB face code (e.g. 1234, or 1230 for a
// triangle) into the referenced vertex points, 1-indexed into verts.
func faceVertices(code int, verts [8]gmath.Vector3) ([]gmath.Vector3, error) {
	digits := [4]int{code / 1000 % 10, code / 100 % 10, code / 10 % 10, code % 10}
	var pts []gmath.Vector3
	for _, d := range digits {
		if d == 0 {
			continue
		}
		if d < 1 || d > 8 {
			return nil, chk.Err("invalid vertex index %d in face code %d", d, code)
		}
		pts = append(pts, verts[d-1])
	}
	if len(pts) < 3 {
		return nil, chk.Err("face code %d references fewer than 3 vertices", code)
	}
	return pts, nil
}
