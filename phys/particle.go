// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"fmt"
	"io"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// delta is the boundary-crossing offset every surface-to-surface step
// applies before re-testing Inside, matching the original's
// math::Point::delta().
const delta = 1e-5

const (
	maxSurfacesPerCell = 1000
	maxEnterCellLoop   = 20
)

// EventRecord is one row of a particle's optional event log.
type EventRecord struct {
	Event     string
	Position  gmath.Vector3
	Direction gmath.Vector3
	CellName  string
	Time      float64
}

// Particle is a point advancing through a built geometry's cell/surface
// world, one cell boundary at a time.
type Particle struct {
	weight    float64
	position  gmath.Vector3
	direction gmath.Vector3
	energy    float64
	time      float64

	currentCell  *cell.Cell
	nextSurfaces []int

	cells      []*cell.Cell
	cellByName map[string]*cell.Cell
	adjacency  *cell.Adjacency
	lookup     cell.SurfaceLookup

	recordEvent bool
	events      []EventRecord
}

// NewParticle builds a Particle at position, moving along direction. If
// startCell is non-nil, position must already lie inside it (else
// KindUndefinedRegion). If startCell is nil, the starting cell is guessed
// via cell.GuessCell with the given strictness.
func NewParticle(weight float64, position, direction gmath.Vector3, energy float64, startCell *cell.Cell, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup, recordEvent, guessStrict bool) (*Particle, error) {
	p := &Particle{
		weight:      weight,
		position:    position,
		direction:   direction,
		energy:      energy,
		cells:       cells,
		cellByName:  make(map[string]*cell.Cell, len(cells)),
		adjacency:   adjacency,
		lookup:      lookup,
		recordEvent: recordEvent,
	}
	for _, c := range cells {
		p.cellByName[c.Name] = c
	}
	if startCell != nil {
		if !startCell.Inside(position, lookup) {
			return nil, newError(KindUndefinedRegion, "start position is not inside the given start cell", startCell.Name, position, direction)
		}
		p.currentCell = startCell
	} else {
		p.currentCell = cell.GuessCell(cells, position, lookup, guessStrict, guessStrict)
	}
	if p.recordEvent {
		p.appendEvent("Start")
	}
	return p, nil
}

// Position returns the particle's current position.
func (p *Particle) Position() gmath.Vector3 { return p.position }

// Direction returns the particle's direction of travel.
func (p *Particle) Direction() gmath.Vector3 { return p.direction }

// CurrentCell returns the cell the particle currently occupies.
func (p *Particle) CurrentCell() *cell.Cell { return p.currentCell }

// Energy returns the particle's energy.
func (p *Particle) Energy() float64 { return p.energy }

// Time returns the particle's elapsed time.
func (p *Particle) Time() float64 { return p.time }

// Weight returns the particle's statistical weight.
func (p *Particle) Weight() float64 { return p.weight }

// SetWeight overrides the particle's statistical weight.
func (p *Particle) SetWeight(w float64) { p.weight = w }

// MoveToSurface advances the particle to the nearest forward intersection
// among its current cell's contact surfaces, recording which surface ids
// it arrived on. It returns KindNoIntersection if there is none.
func (p *Particle) MoveToSurface() error {
	t, surfIDs := p.currentCell.NextIntersections(p.position, p.direction, p.lookup)
	if len(surfIDs) == 0 {
		return newError(KindNoIntersection, "no forward intersection with the current cell's surfaces", p.currentCell.Name, p.position, p.direction)
	}
	p.position = p.position.Add(p.direction.Scale(t))
	p.nextSurfaces = surfIDs
	if p.recordEvent {
		p.appendEvent("MoveToSurface")
	}
	return nil
}

// MoveToCellBound repeats MoveToSurface, stepping delta further past each
// surface it lands on exactly while that step is still inside the current
// cell (handling tangent/grazing hits), until it reaches a surface whose
// delta-step leaves the cell. KindNoNewCell is returned if
// maxSurfacesPerCell consecutive surfaces are crossed without leaving.
func (p *Particle) MoveToCellBound() error {
	if err := p.MoveToSurface(); err != nil {
		return err
	}
	count := 0
	for p.currentCell.Inside(p.position.Add(p.direction.Scale(delta)), p.lookup) {
		count++
		if count > maxSurfacesPerCell {
			return newError(KindNoNewCell, "exceeded max surfaces per cell while searching for a cell boundary", p.currentCell.Name, p.position, p.direction)
		}
		p.position = p.position.Add(p.direction.Scale(delta))
		if err := p.MoveToSurface(); err != nil {
			return err
		}
	}
	return nil
}

// EnterCell steps the particle by delta (at least once) until it is no
// longer inside the cell it is leaving, then picks the new current cell by
// scanning the contact-cell lists of every surface it crossed (front and
// back side) for the first one whose Inside test passes at the new
// position. If none match — the surfaces border no cell containing this
// point, e.g. a ray exiting to the unbounded region — it falls back to a
// non-strict cell.GuessCell. Exceeding maxEnterCellLoop steps is a
// programming error rather than a recoverable one: the original treats it
// as fatal, since it means the boundary offset can't get the particle out
// of its own cell.
func (p *Particle) EnterCell() error {
	leaving := p.currentCell
	count := 0
	for {
		p.position = p.position.Add(p.direction.Scale(delta))
		count++
		if !leaving.Inside(p.position, p.lookup) {
			break
		}
		if count >= maxEnterCellLoop {
			return newError(KindProgrammingError, "enterCell could not leave the current cell within the iteration cap", leaving.Name, p.position, p.direction)
		}
	}

	var found *cell.Cell
	for _, absID := range p.nextSurfaces {
		for _, front := range [2]bool{true, false} {
			for _, name := range p.adjacency.CellsOn(absID, front) {
				c := p.cellByName[name]
				if c != nil && c.Inside(p.position, p.lookup) {
					found = c
					break
				}
			}
			if found != nil {
				break
			}
		}
		if found != nil {
			break
		}
	}
	if found == nil {
		found = cell.GuessCell(p.cells, p.position, p.lookup, false, false)
	}
	p.currentCell = found
	p.nextSurfaces = nil
	if p.recordEvent {
		p.appendEvent("EnterCell")
	}
	return nil
}

func (p *Particle) appendEvent(event string) {
	p.events = append(p.events, EventRecord{
		Event:     event,
		Position:  p.position,
		Direction: p.direction,
		CellName:  p.currentCell.Name,
		Time:      p.time,
	})
}

// DumpEvents writes the particle's recorded event log as a simple
// column-aligned table.
func (p *Particle) DumpEvents(w io.Writer) {
	fmt.Fprintf(w, "%-14s %-24s %-24s %-16s %12s\n", "Event", "Position", "Direction", "Cell", "Time")
	for _, e := range p.events {
		fmt.Fprintf(w, "%-14s %-24v %-24v %-16s %12g\n", e.Event, e.Position, e.Direction, e.CellName, e.Time)
	}
}
