// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// trcExpander implements TRC: a truncated right circular cone given by a
// base vertex, axis vector and the base/top radii. Degenerates to a plain
// cylinder (via cylinderPieces) when the two radii are equal.
type trcExpander struct{}

func (trcExpander) Mnemonic() string { return "trc" }
func (trcExpander) NumSurfaces() int { return 3 }
func (trcExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, 1}, negated)
}

func (e trcExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 8); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	h := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	r1, r2 := sc.Params[6], sc.Params[7]

	u := h.Normalize()
	length := h.Norm()
	slope := (r2 - r1) / length
	if abs(slope) < gmath.Eps {
		return cylinderPieces(sc.Name, v, h, r1), nil
	}
	apex := v.Sub(u.Scale(r1 / slope))
	side := quadricCard(subName(sc.Name, 1), coneQuadric(apex, u, slope*slope))
	low, high := axisBoundPair(sc.Name, 2, 3, v, u, length)
	return []card.SurfaceCard{side, low, high}, nil
}
