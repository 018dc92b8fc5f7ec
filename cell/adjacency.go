// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

// Adjacency is the bidirectional surface<->cell map of §4.E: for every
// surface id referenced by some cell, the set of cell names touching its
// front and back side. Go's garbage collector lets us key this by plain
// surface id rather than threading weak back-pointers, per DESIGN NOTES.
type Adjacency struct {
	Front map[int][]string
	Back  map[int][]string
}

// NewAdjacency returns an empty Adjacency.
func NewAdjacency() *Adjacency {
	return &Adjacency{Front: map[int][]string{}, Back: map[int][]string{}}
}

// UpdateAdjacency iterates every cell and inserts a back-reference into the
// front/back contact map according to the sign of each literal in the
// cell's polynomial.
func (a *Adjacency) UpdateAdjacency(cells []*Cell) {
	for _, c := range cells {
		for _, id := range c.FrontSurfaces() {
			a.Front[id] = appendUnique(a.Front[id], c.Name)
		}
		for _, id := range c.BackSurfaces() {
			a.Back[id] = appendUnique(a.Back[id], c.Name)
		}
	}
}

func appendUnique(xs []string, v string) []string {
	for _, x := range xs {
		if x == v {
			return xs
		}
	}
	return append(xs, v)
}

// UsedSurfaceIDs returns the set of surface ids with at least one front or
// back contact.
func (a *Adjacency) UsedSurfaceIDs() map[int]bool {
	used := map[int]bool{}
	for id, cells := range a.Front {
		if len(cells) > 0 {
			used[id] = true
		}
	}
	for id, cells := range a.Back {
		if len(cells) > 0 {
			used[id] = true
		}
	}
	return used
}

// InitUndefinedCell attaches the singleton undefined cell to every surface
// id's contact maps on both sides (for ids in allSurfaceIDs), so a tracer
// crossing any boundary into an uncovered region finds the undefined cell
// as a candidate.
func (a *Adjacency) InitUndefinedCell(allSurfaceIDs []int) {
	for _, id := range allSurfaceIDs {
		a.Front[id] = appendUnique(a.Front[id], UndefName)
		a.Back[id] = appendUnique(a.Back[id], UndefName)
	}
}

// CellsOn returns the cell names touching surface id absID on the given
// side (front=true).
func (a *Adjacency) CellsOn(absID int, front bool) []string {
	if front {
		return a.Front[absID]
	}
	return a.Back[absID]
}
