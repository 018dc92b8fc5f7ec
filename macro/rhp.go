// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"math"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// rhpExpander implements RHP/HEX: a right hexagonal prism given by a base
// vertex, an axis vector and either one or three apothem vectors (the
// missing two are derived by rotating the first by 60 and 120 degrees
// about the axis, the standard regular-hexagon shorthand). Eight surfaces:
// three opposing plane pairs for the six sides, plus the two end caps.
type rhpExpander struct{ mnemonic string }

func (e rhpExpander) Mnemonic() string { return e.mnemonic }
func (rhpExpander) NumSurfaces() int   { return 8 }
func (rhpExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, 1, -1, 1, -1, 1, -1, 1}, negated)
}

func (e rhpExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := requireParamCount(sc, 9, 15); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	h := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	r1 := transformDir(tr, gmath.NewVector3(sc.Params[6], sc.Params[7], sc.Params[8]))

	var r2, r3 gmath.Vector3
	if len(sc.Params) == 15 {
		r2 = transformDir(tr, gmath.NewVector3(sc.Params[9], sc.Params[10], sc.Params[11]))
		r3 = transformDir(tr, gmath.NewVector3(sc.Params[12], sc.Params[13], sc.Params[14]))
	} else {
		axis := h.Normalize()
		r2 = gmath.RotationTransform(r1, gmath.RotationAxis(axis, math.Pi/3))
		r3 = gmath.RotationTransform(r1, gmath.RotationAxis(axis, 2*math.Pi/3))
	}

	out := make([]card.SurfaceCard, 0, 8)
	for i, r := range []gmath.Vector3{r1, r2, r3} {
		u := r.Normalize()
		low, high := axisBoundPair(sc.Name, 2*i+1, 2*i+2, v.Sub(r), u, 2*r.Norm())
		out = append(out, low, high)
	}
	low, high := axisBoundPair(sc.Name, 7, 8, v, h.Normalize(), h.Norm())
	out = append(out, low, high)
	return out, nil
}
