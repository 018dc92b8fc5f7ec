// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

func threeSlabWorld() ([]*cell.Cell, *cell.Adjacency, cell.SurfaceLookup) {
	// Planes at x=-5 and x=5 split the line into A (x<-5), B (-5<x<5),
	// C (x>5).
	p1 := surf.NewPX("P1", 1, -5)
	p2 := surf.NewPX("P2", 2, 5)
	lookup := func(absID int) *surf.Surface {
		switch absID {
		case 1:
			return p1
		case 2:
			return p2
		}
		return nil
	}
	a := cell.New("A", cell.Polynomial{{-1}}, 1, cell.Options{})
	b := cell.New("B", cell.Polynomial{{1, -2}}, 1, cell.Options{})
	c := cell.New("C", cell.Polynomial{{2}}, 1, cell.Options{})
	cells := []*cell.Cell{a, b, c}
	adj := cell.NewAdjacency()
	adj.UpdateAdjacency(cells)
	adj.InitUndefinedCell([]int{1, 2})
	return cells, adj, lookup
}

func TestGetPickedCellFindsFirstCellAlongRay(tst *testing.T) {
	chk.PrintTitle("GetPickedCellFindsFirstCellAlongRay")
	cells, adj, lookup := threeSlabWorld()
	found, err := GetPickedCell(gmath.NewVector3(-20, 0, 0), gmath.NewVector3(1, 0, 0), cells, adj, lookup, nil, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if found == nil || found.Name != "A" {
		tst.Fatalf("expected to pick cell A, got %v", found)
	}
}

func TestGetPickedCellSkipsUndisplayedCell(tst *testing.T) {
	chk.PrintTitle("GetPickedCellSkipsUndisplayedCell")
	cells, adj, lookup := threeSlabWorld()
	displayed := map[string]bool{"B": true}
	found, err := GetPickedCell(gmath.NewVector3(-20, 0, 0), gmath.NewVector3(1, 0, 0), cells, adj, lookup, displayed, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if found == nil || found.Name != "B" {
		tst.Fatalf("expected to skip A and pick B, got %v", found)
	}
}

func TestGetPickedCellHiddenByCuttingPlaneIsSkipped(tst *testing.T) {
	chk.PrintTitle("GetPickedCellHiddenByCuttingPlaneIsSkipped")
	cells, adj, lookup := threeSlabWorld()
	// A cutting plane at x=0, hiding everything with x<0 (cutting=+1
	// means the Normal-dot-pt>Pos half is hidden... pick the sign that
	// hides A but not B/C): Normal=(1,0,0), Pos=0, Cutting=-1 hides
	// dot(pt,normal)-pos < 0, i.e. x<0, which covers all of A and part
	// of B.
	planes := []CuttingPlane{{Normal: gmath.NewVector3(1, 0, 0), Pos: 0, Visible: true, Cutting: -1}}
	found, err := GetPickedCell(gmath.NewVector3(-20, 0, 0), gmath.NewVector3(1, 0, 0), cells, adj, lookup, nil, planes)
	if err != nil {
		tst.Fatal(err)
	}
	if found == nil || found.Name != "B" {
		tst.Fatalf("expected the cutting plane to hide A, revealing B, got %v", found)
	}
}

func TestGetPickedCellReturnsNilWhenNothingFound(tst *testing.T) {
	chk.PrintTitle("GetPickedCellReturnsNilWhenNothingFound")
	cells, adj, lookup := threeSlabWorld()
	// A ray running parallel to the planes never crosses anything.
	found, err := GetPickedCell(gmath.NewVector3(-20, 100, 0), gmath.NewVector3(0, 1, 0), cells, adj, lookup, nil, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if found != nil {
		tst.Fatalf("expected no cell found along a ray parallel to every surface, got %v", found)
	}
}
