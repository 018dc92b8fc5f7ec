// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// recExpander implements REC: a right elliptical cylinder given by a base
// vertex, an axis vector and two perpendicular semi-axis vectors.
type recExpander struct{}

func (recExpander) Mnemonic() string { return "rec" }
func (recExpander) NumSurfaces() int { return 3 }
func (recExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, 1}, negated)
}

func (e recExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 12); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	h := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	r1 := transformDir(tr, gmath.NewVector3(sc.Params[6], sc.Params[7], sc.Params[8]))
	r2 := transformDir(tr, gmath.NewVector3(sc.Params[9], sc.Params[10], sc.Params[11]))

	side := quadricCard(subName(sc.Name, 1), ellipseCylinderQuadric(v, r1, r1.Norm(), r2, r2.Norm()))
	low, high := axisBoundPair(sc.Name, 2, 3, v, h.Normalize(), h.Norm())
	return []card.SurfaceCard{side, low, high}, nil
}
