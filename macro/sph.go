// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// sphExpander implements SPH: a single sphere, interior on its back side.
type sphExpander struct{}

func (sphExpander) Mnemonic() string { return "sph" }
func (sphExpander) NumSurfaces() int { return 1 }
func (sphExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1}, negated)
}

func (e sphExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
	if err := mustParams(sc, 4); err != nil {
		return nil, err
	}
	tr := applyTR(trMap, sc.TR)
	c := transformPoint(tr, gmath.NewVector3(sc.Params[0], sc.Params[1], sc.Params[2]))
	return []card.SurfaceCard{sphereCard(subName(sc.Name, 1), c, sc.Params[3])}, nil
}

// ellExpander implements ELL: an axis-aligned ellipsoid given by its center
// and three semi-axis lengths, ported as a general quadric.
type ellExpander struct{}

func (ellExpander) Mnemonic() string { return "ell" }
func (ellExpander) NumSurfaces() int { return 1 }
func (ellExpander) Replace(macroName string, negated bool) string {
	return standardExpand(macroName, []int{-1}, negated)
}

func (e ellExpander) Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error) {
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
	coeffs := quadricCoeffs(c, m, -1)
	return []card.SurfaceCard{quadricCard(subName(sc.Name, 1), coeffs)}, nil
}
