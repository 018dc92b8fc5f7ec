// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/palette"
	"github.com/ohnishi-lab/gxsview/surf"
)

// twoHalfSpaceWorld builds the minimal deck Build needs to exercise the
// full five-step pipeline: a single PX plane splitting a void "10" (x<0)
// from a density-2.7 "20" (x>0).
func twoHalfSpaceWorld(tst *testing.T) *Geometry {
	in := Input{
		SurfaceRecords: []card.Record{{Text: "1 px 0"}},
		CellRecords: []card.Record{
			{Text: "10 0 -1"},
			{Text: "20 1 2.7 1"},
		},
	}
	g, err := Build(in)
	if err != nil {
		tst.Fatal(err)
	}
	return g
}

func TestBuildResolvesCellsAndSurfaces(tst *testing.T) {
	chk.PrintTitle("BuildResolvesCellsAndSurfaces")
	g := twoHalfSpaceWorld(tst)
	if _, ok := g.Cells["10"]; !ok {
		tst.Fatal("expected cell 10")
	}
	if _, ok := g.Cells["20"]; !ok {
		tst.Fatal("expected cell 20")
	}
	chk.IntAssert(g.SurfaceIndex["1"], 1)
	if _, ok := g.Surfaces[1]; !ok {
		tst.Fatal("expected surface 1 to survive pruning")
	}
}

func TestBuildAssignsVoidPaletteColor(tst *testing.T) {
	chk.PrintTitle("BuildAssignsVoidPaletteColor")
	g := twoHalfSpaceWorld(tst)
	voidIdx := g.Palette.GetIndexByCellName("10")
	if voidIdx == palette.NotIndex {
		tst.Fatal("expected cell 10 to resolve to a palette index")
	}
	color, ok := g.Palette.GetColorByCellName("10")
	if !ok || !color.Equal(palette.VoidColor) {
		tst.Fatalf("expected cell 10 to share the reserved void color, got %v", color)
	}
	solidIdx := g.Palette.GetIndexByCellName("20")
	if solidIdx == palette.NotIndex || solidIdx == voidIdx {
		tst.Fatal("expected cell 20 to get its own, distinct palette index")
	}
}

func TestNextCellCrossesBoundary(tst *testing.T) {
	chk.PrintTitle("NextCellCrossesBoundary")
	g := twoHalfSpaceWorld(tst)
	start := g.Cells["10"]
	found, pt, err := NextCell(g, start, gmath.NewVector3(1, 0, 0), gmath.NewVector3(-5, 0, 0))
	if err != nil {
		tst.Fatal(err)
	}
	if found == nil {
		tst.Fatal("expected to find a next cell")
	}
	if found.Name != "20" {
		tst.Fatalf("expected to enter cell 20, got %q", found.Name)
	}
	chk.Scalar(tst, "boundary x", 1e-3, pt.X, 0)
}

func TestToFinalInputStringListsCellsAndSurfaces(tst *testing.T) {
	chk.PrintTitle("ToFinalInputStringListsCellsAndSurfaces")
	g := twoHalfSpaceWorld(tst)
	out := g.ToFinalInputString()
	if !strings.Contains(out, "10 ") || !strings.Contains(out, "20 ") {
		tst.Fatalf("expected both cells in final input string, got %q", out)
	}
	if !strings.Contains(out, "1\n") {
		tst.Fatalf("expected referenced surface 1 listed, got %q", out)
	}
}

func TestBuildRejectsUnknownSurfaceReference(tst *testing.T) {
	chk.PrintTitle("BuildRejectsUnknownSurfaceReference")
	in := Input{
		SurfaceRecords: []card.Record{{Text: "1 px 0"}},
		CellRecords:    []card.Record{{Text: "10 0 -2"}},
	}
	if _, err := Build(in); err == nil {
		tst.Fatal("expected an error referencing an undefined surface")
	}
}

func TestBuildExpandsMacroBody(tst *testing.T) {
	chk.PrintTitle("BuildExpandsMacroBody")
	in := Input{
		SurfaceRecords: []card.Record{
			{Text: "B1 box -10 -10 -10 20 0 0 0 20 0 0 0 20"},
		},
		CellRecords: []card.Record{
			{Text: "1 1 1.0 -B1"},
			{Text: "2 0 +B1"},
		},
	}
	g, err := Build(in)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(g.Surfaces), 6)
	inside := g.Cells["1"]
	outside := g.Cells["2"]
	if !inside.Inside(gmath.NewVector3(0, 0, 0), g.Lookup) {
		tst.Fatal("expected origin inside the box cell")
	}
	if !outside.Inside(gmath.NewVector3(-20, 0, 0), g.Lookup) {
		tst.Fatal("expected (-20,0,0) inside the outside-the-box cell")
	}
}

// TestBuildChainsTrInCardOrder reproduces the worked "S1 TR1 TR2 PY 0"
// example: TR1 translates by (5,0,0), TR2 rotates 90deg about z. TR1 is
// applied to the local surface first, so translating within the still-local
// y=0 plane is a no-op, and only the subsequent rotation moves the plane to
// world x=0 -- not x=5, which is what composing in the opposite order would
// give.
func TestBuildChainsTrInCardOrder(tst *testing.T) {
	chk.PrintTitle("BuildChainsTrInCardOrder")
	in := Input{
		SurfaceRecords: []card.Record{{Text: "1 tr1 tr2 py 0"}},
		CellRecords: []card.Record{
			{Text: "10 0 -1"},
			{Text: "20 1 2.7 1"},
		},
		TrRecords: []card.Record{
			{Text: "tr1 5 0 0"},
			{Text: "tr2 0 0 0 0 -1 0 1 0 0 0 0 1"},
		},
	}
	g, err := Build(in)
	if err != nil {
		tst.Fatal(err)
	}
	s := g.Surfaces[g.SurfaceIndex["1"]]
	if got := s.Sign(gmath.NewVector3(0, 10, -4)); got != surf.On {
		tst.Fatalf("expected (0,10,-4) on the transformed plane, got side %v", got)
	}
	if got := s.Sign(gmath.NewVector3(0, -100, 50)); got != surf.On {
		tst.Fatalf("expected (0,-100,50) on the transformed plane, got side %v", got)
	}
	if got := s.Sign(gmath.NewVector3(5, 0, 0)); got == surf.On {
		tst.Fatal("expected (5,0,0) off the plane -- that would be the wrong TR1*TR2 composition order")
	}
}
