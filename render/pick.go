// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/phys"
)

// CuttingPlane is one of up to three auxiliary clipping planes a viewer
// may enable to cut away part of the model for inspection: a point on the
// plane is Pos*Normal, and a point p lies on the cut-away side whenever
// (p.Dot(Normal)-Pos) shares Cutting's sign. Cutting is +1 or -1, selecting
// which side of the plane is hidden; a disabled plane (Visible false) is
// ignored entirely.
type CuttingPlane struct {
	Normal  gmath.Vector3
	Pos     float64
	Visible bool
	Cutting float64
}

// isVisiblePoint reports whether pt sits outside every enabled cutting
// plane's hidden half-space.
func isVisiblePoint(pt gmath.Vector3, planes []CuttingPlane) bool {
	for _, pl := range planes {
		if !pl.Visible {
			continue
		}
		d := pt.Dot(pl.Normal) - pl.Pos
		if d*pl.Cutting > 0 {
			return false
		}
	}
	return true
}

// farthestIntersectionWithCuttingPlanes finds, among every enabled plane
// currently hiding pt, the intersection of the ray (pt,dir) with that
// plane farthest from pt — the next candidate point past whichever cutting
// plane is obstructing the view from the farthest away, so that advancing
// there clears every nearer cut as well. Returns false if pt is not
// presently hidden by any enabled plane that the ray actually crosses.
func farthestIntersectionWithCuttingPlanes(pt, dir gmath.Vector3, planes []CuttingPlane) (gmath.Vector3, bool) {
	var best gmath.Vector3
	bestDist := -1.0
	found := false
	for _, pl := range planes {
		if !pl.Visible {
			continue
		}
		d := pt.Dot(pl.Normal) - pl.Pos
		if d*pl.Cutting <= 0 {
			continue
		}
		dn := dir.Dot(pl.Normal)
		if dn < -gmath.Eps || dn > gmath.Eps {
			t := (pl.Pos - pt.Dot(pl.Normal)) / dn
			cand := pt.Add(dir.Scale(t + delta))
			dist := gmath.Distance(pt, cand)
			if !found || dist > bestDist {
				best, bestDist, found = cand, dist, true
			}
		}
	}
	return best, found
}

const delta = 1e-5

// nextVisibleCellCandidate mirrors geometry.NextCell but lives here to
// avoid render importing geometry (geometry already imports render for
// SectionalImage): build a plain, maximal-life particle from startCell (or
// guess one if nil), advance it to the next cell boundary, and report the
// cell it enters. A nil cell with a nil error means the ray left the
// model with no further intersection; a non-nil error is a genuine
// tracking fault (e.g. EnterCell's iteration cap).
func nextVisibleCellCandidate(startCell *cell.Cell, dir gmath.Vector3, pt *gmath.Vector3, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup) (*cell.Cell, error) {
	p, err := phys.NewParticle(1, *pt, dir, 0, startCell, cells, adjacency, lookup, false, false)
	if err != nil {
		return nil, err
	}
	if err := p.MoveToCellBound(); err != nil {
		if phys.IsNoIntersection(err) || phys.IsNoNewCell(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := p.EnterCell(); err != nil {
		return nil, err
	}
	*pt = p.Position()
	return p.CurrentCell(), nil
}

// GetPickedCell casts a ray from origin in direction dir and returns the
// first cell it meets that is both visible (name present in displayed, or
// displayed nil meaning every cell is eligible) and not hidden behind an
// enabled cutting plane. A point hidden by one or more cutting planes is
// skipped by jumping to the farthest obstructing plane's intersection and
// re-testing the cell found there; if that guessed cell is undefined or
// not displayed, tracing resumes along the original ray instead. Returns
// (nil, nil) if the ray leaves the model with nothing eligible found.
func GetPickedCell(origin, dir gmath.Vector3, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup, displayed map[string]bool, planes []CuttingPlane) (*cell.Cell, error) {
	var current *cell.Cell
	pt := origin
	for {
		found, err := nextVisibleCellCandidate(current, dir, &pt, cells, adjacency, lookup)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, nil
		}
		current = found
		if displayed != nil && !displayed[current.Name] {
			continue
		}
		if isVisiblePoint(pt, planes) {
			return current, nil
		}
		if cand, ok := farthestIntersectionWithCuttingPlanes(pt, dir, planes); ok {
			guessed := cell.GuessCell(cells, cand, lookup, false, false)
			if guessed.Name != cell.UndefName && (displayed == nil || displayed[guessed.Name]) {
				return guessed, nil
			}
		}
	}
}
