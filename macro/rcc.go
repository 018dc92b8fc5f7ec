// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// rccExpander implements RCC: a right circular cylinder given by a base
// vertex, an axis vector and a radius. Generates the infinite-cylinder
// quadric plus the two bounding caps; numbered (.1 side, .2 bottom cap, .3
// top cap).
type rccExpander struct{}

func (rccExpander) Mnemonic() string { return "rcc" }
func (rccExpander) NumSurfaces() int { return 3 }
func (rccExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, -1, 1}, negated)
}

func (e rccExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 7); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	h := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	r := sc.Params[6]
	return cylinderPieces(sc.Name, v, h, r), nil
}

// cylinderPieces builds the side+cap triple shared by RCC (and the
// regular-radius branch of TRC): "<name>.1" the infinite-cylinder quadric,
// "<name>.2"/"<name>.3" the bottom/top caps.
func cylinderPieces(name string, v, h gmath.Vector3, r float64) []card.SurfaceCard {
	side := quadricCard(subName(name, 1), cylinderQuadric(v, h, r))
	low, high := axisBoundPair(name, 2, 3, v, h.Normalize(), h.Norm())
	return []card.SurfaceCard{side, low, high}
}
