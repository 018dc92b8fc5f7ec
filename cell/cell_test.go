// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

func nameToIDFixture(s1 *surf.Surface) func(string) (int, error) {
	return func(name string) (int, error) {
		switch name {
		case "S1":
			return s1.ID, nil
		case "-S1":
			return -s1.ID, nil
		}
		return 0, chk.Err("unknown surface name %q", name)
	}
}

func TestParsePolynomialAndInside(tst *testing.T) {
	chk.PrintTitle("ParsePolynomialAndInside")
	s1 := surf.NewSphere("S1", 1, 0, 0, 0, 20)
	poly, err := ParsePolynomial("-S1", nameToIDFixture(s1))
	if err != nil {
		tst.Fatal(err)
	}
	c := New("C1", poly, 0, Options{})

	lookup := func(absID int) *surf.Surface { return s1 }
	if !c.Inside(gmath.NewVector3(0, 0, 0), lookup) {
		tst.Fatal("expected origin inside sphere cell")
	}
	if c.Inside(gmath.NewVector3(100, 0, 0), lookup) {
		tst.Fatal("expected far point outside sphere cell")
	}
	// on-surface point must count as inside (On matches both signs)
	if !c.Inside(gmath.NewVector3(20, 0, 0), lookup) {
		tst.Fatal("expected boundary point inside per On-matches-both rule")
	}
}

func TestOrPolynomial(tst *testing.T) {
	chk.PrintTitle("OrPolynomial")
	s1 := surf.NewSphere("S1", 1, 0, 0, 0, 10)
	nameToID := nameToIDFixture(s1)
	poly, err := ParsePolynomial("-S1:S1", nameToID)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(poly), 2)
}

func TestAdjacency(tst *testing.T) {
	chk.PrintTitle("Adjacency")
	s1 := surf.NewSphere("S1", 1, 0, 0, 0, 10)
	nameToID := nameToIDFixture(s1)
	innerPoly, _ := ParsePolynomial("-S1", nameToID)
	outerPoly, _ := ParsePolynomial("S1", nameToID)
	inner := New("C1", innerPoly, 0, Options{})
	outer := New("C2", outerPoly, 0, Options{})

	adj := NewAdjacency()
	adj.UpdateAdjacency([]*Cell{inner, outer})
	chk.Strings(tst, "back", adj.CellsOn(1, false), []string{"C1"})
	chk.Strings(tst, "front", adj.CellsOn(1, true), []string{"C2"})
}

func TestGuessCellFallsBackToUndefined(tst *testing.T) {
	chk.PrintTitle("GuessCellFallsBackToUndefined")
	s1 := surf.NewSphere("S1", 1, 0, 0, 0, 10)
	nameToID := nameToIDFixture(s1)
	poly, _ := ParsePolynomial("-S1", nameToID)
	c1 := New("C1", poly, 0, Options{})
	lookup := func(absID int) *surf.Surface { return s1 }

	got := GuessCell([]*Cell{c1}, gmath.NewVector3(100, 0, 0), lookup, false, false)
	if got.Name != UndefName {
		tst.Fatalf("expected undefined cell, got %q", got.Name)
	}
	got2 := GuessCell([]*Cell{c1}, gmath.NewVector3(0, 0, 0), lookup, false, false)
	if got2.Name != "C1" {
		tst.Fatalf("expected C1, got %q", got2.Name)
	}
}
