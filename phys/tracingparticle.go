// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// TracingParticle wraps Particle with a finite remaining travel distance
// (lifeLength) and bookkeeping of every cell segment crossed, the core of
// the ray-sweep renderer's per-pixel cell lookup.
//
// Track-length bookkeeping applies a +delta correction to every segment
// after the first: the first segment's recorded length is the raw advance
// from the ray's origin, but every surface crossing after that has already
// consumed one delta step (MoveToCellBound's tangent-hit compensation, or
// EnterCellTr's boundary-leave compensation below) that the raw distance
// between positions doesn't capture on its own.
type TracingParticle struct {
	*Particle
	lifeLength   float64
	passedCells  []string
	trackLengths []float64
}

// NewTracingParticle builds a TracingParticle able to travel up to
// lifeLength total distance before Trace stops advancing it.
func NewTracingParticle(weight float64, position, direction gmath.Vector3, energy float64, startCell *cell.Cell, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup, lifeLength float64, recordEvent, guessStrict bool) (*TracingParticle, error) {
	p, err := NewParticle(weight, position, direction, energy, startCell, cells, adjacency, lookup, recordEvent, guessStrict)
	if err != nil {
		return nil, err
	}
	return &TracingParticle{Particle: p, lifeLength: lifeLength}, nil
}

// PassedCells returns the cell names traversed so far, in travel order.
func (tp *TracingParticle) PassedCells() []string { return tp.passedCells }

// TrackLengths returns the corrected segment length for each entry of
// PassedCells, index for index.
func (tp *TracingParticle) TrackLengths() []float64 { return tp.trackLengths }

func (tp *TracingParticle) expired() bool { return tp.lifeLength < gmath.Eps }

// MoveToBound advances the particle toward its next cell boundary, capping
// the advance at whatever life remains. If the underlying Particle hits no
// further boundary before life would run out (an unbounded/open cell), the
// particle is advanced in a straight line to the end of its life instead
// and its life is exhausted.
func (tp *TracingParticle) MoveToBound() error {
	if tp.expired() {
		return nil
	}
	before := tp.position
	cellBeforeMove := tp.currentCell
	err := tp.Particle.MoveToCellBound()
	if err != nil {
		if IsProgrammingError(err) {
			return err
		}
		tp.position = before.Add(tp.direction.Scale(tp.lifeLength))
		corrected := tp.lifeLength
		if len(tp.trackLengths) > 0 {
			corrected += delta
		}
		tp.passedCells = append(tp.passedCells, cellBeforeMove.Name)
		tp.trackLengths = append(tp.trackLengths, corrected)
		tp.lifeLength = 0
		return nil
	}

	length := gmath.Distance(tp.position, before)
	if tp.lifeLength > length {
		tp.lifeLength -= length
		recorded := length
		if len(tp.trackLengths) > 0 {
			recorded += delta
		}
		tp.passedCells = append(tp.passedCells, cellBeforeMove.Name)
		tp.trackLengths = append(tp.trackLengths, recorded)
		return nil
	}

	tp.position = before.Add(tp.direction.Scale(tp.lifeLength))
	recorded := gmath.Distance(tp.position, before)
	if len(tp.trackLengths) > 0 {
		recorded += delta
	}
	tp.passedCells = append(tp.passedCells, cellBeforeMove.Name)
	tp.trackLengths = append(tp.trackLengths, recorded)
	tp.lifeLength = 0
	return nil
}

// EnterCellTr wraps Particle.EnterCell, compensating for the delta step
// enterCell bakes into every boundary crossing so lifeLength isn't consumed
// twice for the same physical step. It is a no-op once life has expired,
// since MoveToBound never leaves a genuine surface crossing pending in
// that case.
func (tp *TracingParticle) EnterCellTr() error {
	if tp.expired() {
		return nil
	}
	if err := tp.Particle.EnterCell(); err != nil {
		return err
	}
	tp.lifeLength -= delta
	return nil
}

// Trace repeatedly advances the particle to its next cell boundary and
// enters the new cell until its life is exhausted.
func (tp *TracingParticle) Trace() error {
	for !tp.expired() {
		if err := tp.MoveToBound(); err != nil {
			return err
		}
		if err := tp.EnterCellTr(); err != nil {
			return err
		}
	}
	return nil
}
