// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// boxExpander implements BOX: an arbitrary parallelepiped given by a vertex
// and three (not necessarily orthogonal) edge vectors, expanded into six
// general "p" plane cards.
type boxExpander struct{}

func (boxExpander) Mnemonic() string  { return "box" }
func (boxExpander) NumSurfaces() int  { return 6 }
func (boxExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, 1, -1, 1, -1, 1}, negated)
}

func (e boxExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 12); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	v := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	a1 := transformDir(tr, gmath.NewVector3(sc.Params[3], sc.Params[4], sc.Params[5]))
	a2 := transformDir(tr, gmath.NewVector3(sc.Params[6], sc.Params[7], sc.Params[8]))
	a3 := transformDir(tr, gmath.NewVector3(sc.Params[9], sc.Params[10], sc.Params[11]))
	return boxPlanes(sc.Name, v, a1, a2, a3), nil
}

// boxPlanes builds the six bound planes of the parallelepiped spanned by v
// and edges a1,a2,a3, named "<name>.1".."<name>.6" in the order
// (a1-low, a1-high, a2-low, a2-high, a3-low, a3-high).
func boxPlanes(name string, v, a1, a2, a3 gmath.Vector3) []card.SurfaceCard {
	out := make([]card.SurfaceCard, 0, 6)
	for i, edge := range []gmath.Vector3{a1, a2, a3} {
		u := edge.Normalize()
		low, high := axisBoundPair(name, 2*i+1, 2*i+2, v, u, edge.Norm())
		out = append(out, low, high)
	}
	return out
}

// rppExpander implements RPP: the axis-aligned special case of BOX, given
// directly as xmin xmax ymin ymax zmin zmax.
type rppExpander struct{}

func (rppExpander) Mnemonic() string { return "rpp" }
func (rppExpander) NumSurfaces() int { return 6 }
func (rppExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1, 1, -1, 1, -1, 1}, negated)
}

func (e rppExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 6); err != nil {
		return nil, err
	}
	p := sc.Params
	boxSC := card.SurfaceCard{
		Name: sc.Name,
		TR:   sc.TR,
		Params: []float64{
			p[0], p[2], p[4],
			p[1] - p[0], 0, 0,
			0, p[3] - p[2], 0,
			0, 0, p[5] - p[4],
		},
	}
	return boxExpander{}.Expand(trMap, boxSC)
}
