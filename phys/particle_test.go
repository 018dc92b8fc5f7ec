// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

// twoHalfSpaces builds a world split by the plane x=0 into "Left" (x<0)
// and "Right" (x>0), with the undefined cell attached to both sides, the
// minimal world MoveToCellBound/EnterCell need to exercise a real crossing.
func twoHalfSpaces() ([]*cell.Cell, *cell.Adjacency, cell.SurfaceLookup) {
	px0 := surf.NewPX("PX0", 1, 0)
	lookup := func(absID int) *surf.Surface {
		if absID == 1 {
			return px0
		}
		return nil
	}
	left := cell.New("Left", cell.Polynomial{{-1}}, 1, cell.Options{})
	right := cell.New("Right", cell.Polynomial{{1}}, 2, cell.Options{})
	cells := []*cell.Cell{left, right}
	adj := cell.NewAdjacency()
	adj.UpdateAdjacency(cells)
	adj.InitUndefinedCell([]int{1})
	return cells, adj, lookup
}

func TestParticleCrossesBoundary(tst *testing.T) {
	chk.PrintTitle("ParticleCrossesBoundary")
	cells, adj, lookup := twoHalfSpaces()
	left := cells[0]
	p, err := NewParticle(1, gmath.NewVector3(-5, 0, 0), gmath.NewVector3(1, 0, 0), 0, left, cells, adj, lookup, false, false)
	if err != nil {
		tst.Fatal(err)
	}
	if err := p.MoveToCellBound(); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "x at boundary", 1e-8, p.Position().X, 0)
	if err := p.EnterCell(); err != nil {
		tst.Fatal(err)
	}
	if p.CurrentCell().Name != "Right" {
		tst.Fatalf("expected to enter Right, got %q", p.CurrentCell().Name)
	}
}

func TestNewParticleRejectsMismatchedStartCell(tst *testing.T) {
	chk.PrintTitle("NewParticleRejectsMismatchedStartCell")
	cells, adj, lookup := twoHalfSpaces()
	right := cells[1]
	_, err := NewParticle(1, gmath.NewVector3(-5, 0, 0), gmath.NewVector3(1, 0, 0), 0, right, cells, adj, lookup, false, false)
	if err == nil {
		tst.Fatal("expected KindUndefinedRegion error")
	}
	if !IsUndefinedRegion(err) {
		tst.Fatalf("expected KindUndefinedRegion, got %v", err)
	}
}

func TestNewParticleGuessesStartCell(tst *testing.T) {
	chk.PrintTitle("NewParticleGuessesStartCell")
	cells, adj, lookup := twoHalfSpaces()
	p, err := NewParticle(1, gmath.NewVector3(3, 0, 0), gmath.NewVector3(1, 0, 0), 0, nil, cells, adj, lookup, false, false)
	if err != nil {
		tst.Fatal(err)
	}
	if p.CurrentCell().Name != "Right" {
		tst.Fatalf("expected guessed cell Right, got %q", p.CurrentCell().Name)
	}
}

func TestTracingParticleAccumulatesTrackLengths(tst *testing.T) {
	chk.PrintTitle("TracingParticleAccumulatesTrackLengths")
	cells, adj, lookup := twoHalfSpaces()
	left := cells[0]
	tp, err := NewTracingParticle(1, gmath.NewVector3(-5, 0, 0), gmath.NewVector3(1, 0, 0), 0, left, cells, adj, lookup, 100, false, false)
	if err != nil {
		tst.Fatal(err)
	}
	if err := tp.Trace(); err != nil {
		tst.Fatal(err)
	}
	chk.Strings(tst, "passed cells", tp.PassedCells(), []string{"Left", "Right"})
	if len(tp.TrackLengths()) != 2 {
		tst.Fatalf("expected 2 track lengths, got %d", len(tp.TrackLengths()))
	}
	total := tp.TrackLengths()[0] + tp.TrackLengths()[1]
	chk.Scalar(tst, "total track length", 1e-6, total, 100)
	chk.Scalar(tst, "first segment", 1e-8, tp.TrackLengths()[0], 5)
}

func TestTracingParticleExpiresBeforeReachingBoundary(tst *testing.T) {
	chk.PrintTitle("TracingParticleExpiresBeforeReachingBoundary")
	cells, adj, lookup := twoHalfSpaces()
	left := cells[0]
	tp, err := NewTracingParticle(1, gmath.NewVector3(-5, 0, 0), gmath.NewVector3(1, 0, 0), 0, left, cells, adj, lookup, 2, false, false)
	if err != nil {
		tst.Fatal(err)
	}
	if err := tp.Trace(); err != nil {
		tst.Fatal(err)
	}
	chk.Strings(tst, "passed cells", tp.PassedCells(), []string{"Left"})
	chk.Scalar(tst, "clipped segment", 1e-8, tp.TrackLengths()[0], 2)
	chk.Scalar(tst, "final x", 1e-8, tp.Position().X, -3)
}
