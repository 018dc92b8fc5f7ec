// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// quaExpander implements QUA: an axis-aligned ellipsoid given by a center
// and three semi-axes, split by an equatorial plane into the same
// tautological two-piece form as TOR (DESIGN NOTES, §4.C: QUA shares TOR's
// non-uniform replacement shape rather than the usual uniform-sign
// pattern).
type quaExpander struct{}

func (quaExpander) Mnemonic() string { return "qua" }
func (quaExpander) NumSurfaces() int { return 2 }

func (quaExpander) Replace(macroName string, negated bool) string {
	body, equator := subName(macroName, 1), subName(macroName, 2)
	if !negated {
		return "((-" + body + " " + equator + "):(-" + body + " -" + equator + "))"
	}
	return "(" + body + ")"
}

func (e quaExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 6); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	c := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	ax, ay, az := sc.Params[3], sc.Params[4], sc.Params[5]
	e1 := transformDir(tr, gmath.NewVector3(1, 0, 0))
	e2 := transformDir(tr, gmath.NewVector3(0, 1, 0))
	e3 := transformDir(tr, gmath.NewVector3(0, 0, 1))
	m := addMat3(addMat3(outerScaled(e1, 1/(ax*ax)), outerScaled(e2, 1/(ay*ay))), outerScaled(e3, 1/(az*az)))
	body := quadricCard(subName(sc.Name, 1), quadricCoeffs(c, m, -1))
	equator := planeCard(subName(sc.Name, 2), e3, e3.Dot(c))
	return []card.SurfaceCard{body, equator}, nil
}
