// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// torExpander implements TOR: a solid torus given by a center, an axis
// (snapped to the nearest world axis, since surf only carries axis-aligned
// tori) and the major/minor radii. Two surfaces are generated (the torus
// quartic and a plane through its equator) and combined with a two-piece
// OR rather than the uniform AND every other macro body uses — the two
// piece's union is tautologically equal to the plain torus interior, but
// it keeps Replace's shape close to the original's own non-uniform
// TOR/QUA replacement strings (DESIGN NOTES, §4.C) instead of reducing to
// a trivial single-literal case.
type torExpander struct{}

func (torExpander) Mnemonic() string { return "tor" }
func (torExpander) NumSurfaces() int { return 2 }

func (torExpander) Replace(macroName string, negated bool) string {
	torus, equator := subName(macroName, 1), subName(macroName, 2)
	if !negated {
		return "((-" + torus + " " + equator + "):(-" + torus + " -" + equator + "))"
	}
	return "(" + torus + ")"
}

func (e torExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 9); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	c := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	axis := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	a, b, cc := sc.Params[6], sc.Params[7], sc.Params[8]

	torus := torusCard(subName(sc.Name, 1), axis, c, a, b, cc)
	equator := planeCard(subName(sc.Name, 2), axis.Normalize(), axis.Normalize().Dot(c))
	return []card.SurfaceCard{torus, equator}, nil
}
