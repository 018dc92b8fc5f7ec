// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/palette"
	"github.com/ohnishi-lab/gxsview/surf"
)

// twoHalfSpaceWorld builds the same x=0-split world phys's own tests use,
// plus a palette so SectionalImage has something to resolve pixels into.
func twoHalfSpaceWorld() ([]*cell.Cell, *cell.Adjacency, cell.SurfaceLookup, *palette.CellColorPalette) {
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

	pal := palette.NewCellColorPalette()
	if err := pal.InstallReserved(cell.UndefName, cell.VoidName, cell.UboundName, cell.BoundName, cell.DoubleName, cell.OmittedName); err != nil {
		panic(err)
	}
	if err := pal.RegisterColor("Left", "left-mat", palette.DefaultColor(0)); err != nil {
		panic(err)
	}
	if err := pal.RegisterColor("Right", "right-mat", palette.DefaultColor(1)); err != nil {
		panic(err)
	}
	return cells, adj, lookup, pal
}

func TestSectionalImageResolvesBothHalves(tst *testing.T) {
	chk.PrintTitle("SectionalImageResolvesBothHalves")
	cells, adj, lookup, pal := twoHalfSpaceWorld()

	img, err := SectionalImage(
		gmath.NewVector3(-5, -5, 0), gmath.NewVector3(10, 0, 0), gmath.NewVector3(0, 10, 0),
		4, 4, 1, false, true, cells, adj, lookup, pal, nil)
	if err != nil {
		tst.Fatal(err)
	}
	if img.Empty() {
		tst.Fatal("expected a non-empty bitmap")
	}
	chk.IntAssert(img.Pixels.HorizontalSize(), 4)
	chk.IntAssert(img.Pixels.VerticalSize(), 4)

	leftIdx := pal.GetIndexByCellName("Left")
	rightIdx := pal.GetIndexByCellName("Right")
	// Column 0 covers x in [-5,-2.5), well inside Left; column 3 covers
	// x in [2.5,5), well inside Right, for every row.
	for v := 0; v < 4; v++ {
		if got := img.Pixels.At(0, v); got != leftIdx {
			tst.Fatalf("row %d: expected Left (%d) in the leftmost column, got %d", v, leftIdx, got)
		}
		if got := img.Pixels.At(3, v); got != rightIdx {
			tst.Fatalf("row %d: expected Right (%d) in the rightmost column, got %d", v, rightIdx, got)
		}
	}
}

func TestSectionalImageCancellation(tst *testing.T) {
	chk.PrintTitle("SectionalImageCancellation")
	cells, adj, lookup, pal := twoHalfSpaceWorld()
	cancel := &Cancel{}
	cancel.Request()
	img, err := SectionalImage(
		gmath.NewVector3(-5, -5, 0), gmath.NewVector3(10, 0, 0), gmath.NewVector3(0, 10, 0),
		4, 4, 1, false, true, cells, adj, lookup, pal, cancel)
	if err != nil {
		tst.Fatal(err)
	}
	if !img.Empty() {
		tst.Fatal("expected an empty bitmap once cancellation was requested")
	}
}
