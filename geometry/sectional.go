// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/render"
)

// SectionalImage renders a scan-line sectional image of g through the plane
// spanned by hdir/vdir from origin, per §4.H. It is a thin facade: all of
// the sweep/merge logic lives in render, which cannot import geometry
// itself (geometry already imports render).
func (g *Geometry) SectionalImage(origin, hdir, vdir gmath.Vector3, hReso, vReso, numThread int, verbose, quiet bool, cancel *render.Cancel) (render.Bitmap, error) {
	return render.SectionalImage(origin, hdir, vdir, hReso, vReso, numThread, verbose, quiet, g.cellsSlice(), g.Adjacency, g.Lookup, g.Palette, cancel)
}

// GetPickedCell casts a ray from origin along dir and returns the first
// cell it meets that is both displayed and not hidden behind an enabled
// cutting plane (§12's supplemented pick-cell feature). displayed nil means
// every cell is eligible.
func (g *Geometry) GetPickedCell(origin, dir gmath.Vector3, displayed map[string]bool, planes []render.CuttingPlane) (*cell.Cell, error) {
	return render.GetPickedCell(origin, dir, g.cellsSlice(), g.Adjacency, g.Lookup, displayed, planes)
}

// DebugTraceRay traces a single ray independent of any sectional sweep,
// for the CLI's -debug-ray diagnostic plot.
func (g *Geometry) DebugTraceRay(origin, dirUnit gmath.Vector3, length float64) (*render.TracingRayData, error) {
	return render.TraceRay(origin, dirUnit, length, g.cellsSlice(), g.Adjacency, g.Lookup)
}
