// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// axisExpander implements the axis-symmetric X/Y/Z macro bodies: a body of
// revolution about the named world axis, defined by two (axial, radius)
// points. This port supports only the two-point (single frustum) case; the
// general N-point piecewise generatrix MCNP allows is out of scope — a
// third or later point pair is rejected rather than
// silently ignored.
type axisExpander struct {
	mnemonic string
	axis     gmath.Vector3
}

func (e axisExpander) Mnemonic() string { return e.mnemonic }
func (axisExpander) NumSurfaces() int   { return 3 }
func (axisExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, 1}, negated)
}

func (e axisExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 4); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	u := transformDir(tr, e.axis).Normalize()
	s1, r1, s2, r2 := sc.Params[0], sc.Params[1], sc.Params[2], sc.Params[3]
	p1 := transformPoint(tr, e.axis.Scale(s1))
	p2 := transformPoint(tr, e.axis.Scale(s2))
	d1, d2 := p1.Dot(u), p2.Dot(u)

	lowPoint, length := p1, d2-d1
	if length < 0 {
		lowPoint, length = p2, -length
	}
	if abs(r2-r1) < gmath.Eps {
		return cylinderPieces(sc.Name, lowPoint, u.Scale(length), r1), nil
	}
	slope := (r2 - r1) / (d2 - d1)
	apex := p1.Sub(u.Scale(r1 / slope))
	side := quadricCard(subName(sc.Name, 1), coneQuadric(apex, u, slope*slope))
	low, high := axisBoundPair(sc.Name, 2, 3, lowPoint, u, length)
	return []card.SurfaceCard{side, low, high}, nil
}
