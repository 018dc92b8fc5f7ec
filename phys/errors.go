// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phys implements the particle tracker of §4.G: a point advancing
// through a CSG world one cell boundary at a time, reporting the cells and
// segment lengths it passed through.
package phys

import (
	"fmt"

	"github.com/ohnishi-lab/gxsview/gmath"
)

// Kind classifies the ways a Particle's motion can fail to continue,
// mirroring the original's ParticleException hierarchy (InvalidSource,
// NoNewCell, NoIntersection) plus a catch-all for conditions the original
// treats as a fatal program error rather than a recoverable exception.
type Kind int

const (
	// KindNoIntersection: a ray found no forward intersection with any of
	// its current cell's contact surfaces.
	KindNoIntersection Kind = iota
	// KindNoNewCell: moveToCellBound's boundary-walk exceeded its surface
	// count cap without leaving the starting cell.
	KindNoNewCell
	// KindUndefinedRegion: the requested start position is not inside the
	// cell the caller claimed it starts in.
	KindUndefinedRegion
	// KindProgrammingError: enterCell's hard iteration cap was exceeded; in
	// the original this aborts the process rather than being recoverable.
	KindProgrammingError
)

// Error reports a particle-tracking failure, carrying the state at the
// point of failure the way the original's ParticleException does.
type Error struct {
	Kind      Kind
	Reason    string
	CellName  string
	Position  gmath.Vector3
	Direction gmath.Vector3
}

func (e *Error) Error() string {
	return fmt.Sprintf("phys: %s (cell=%q position=%v direction=%v)", e.Reason, e.CellName, e.Position, e.Direction)
}

func newError(kind Kind, reason, cellName string, p, d gmath.Vector3) *Error {
	return &Error{Kind: kind, Reason: reason, CellName: cellName, Position: p, Direction: d}
}

// IsNoIntersection reports whether err is a KindNoIntersection Error.
func IsNoIntersection(err error) bool { return kindOf(err) == KindNoIntersection }

// IsNoNewCell reports whether err is a KindNoNewCell Error.
func IsNoNewCell(err error) bool { return kindOf(err) == KindNoNewCell }

// IsUndefinedRegion reports whether err is a KindUndefinedRegion Error.
func IsUndefinedRegion(err error) bool { return kindOf(err) == KindUndefinedRegion }

// IsProgrammingError reports whether err is a KindProgrammingError Error.
func IsProgrammingError(err error) bool { return kindOf(err) == KindProgrammingError }

func kindOf(err error) Kind {
	pe, ok := err.(*Error)
	if !ok {
		return -1
	}
	return pe.Kind
}
