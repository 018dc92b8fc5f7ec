// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/phys"
)

// NextCell advances a plain particle from startCell (or a guessed cell if
// startCell is nil) along dir until it crosses into a new cell, reporting
// that cell and the boundary point it entered at. It builds what the
// original literally calls a TracingParticle but, like getNextCell, only
// ever calls the base particle's moveToCellBound/enterCell — nothing here
// needs a tracing particle's accumulated path, so a plain phys.Particle
// does the job. Returns (nil, nil) when the ray leaves the model with no
// further intersection.
func NextCell(g *Geometry, startCell *cell.Cell, dir gmath.Vector3, pt gmath.Vector3) (*cell.Cell, gmath.Vector3, error) {
	p, err := phys.NewParticle(1, pt, dir, 0, startCell, g.cellsSlice(), g.Adjacency, g.Lookup, false, false)
	if err != nil {
		return nil, pt, err
	}
	if err := p.MoveToCellBound(); err != nil {
		if phys.IsNoIntersection(err) || phys.IsNoNewCell(err) {
			return nil, pt, nil
		}
		return nil, pt, err
	}
	if err := p.EnterCell(); err != nil {
		return nil, pt, err
	}
	return p.CurrentCell(), p.Position(), nil
}
