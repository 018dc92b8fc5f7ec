// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macro

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

// TestBoxExpandScenario2 reproduces spec.md Scenario 2: tracing a ray along
// +x from (-20,0,0) through "B1 BOX -10 -10 -10 20 0 0 0 20 0 0 0 20" must
// find the ray outside, then inside, then outside again at x=-10 and x=10.
func TestBoxExpandScenario2(tst *testing.T) {
	chk.PrintTitle("BoxExpandScenario2")
	e := Lookup("box")
	if e == nil {
		tst.Fatal("box expander not registered")
	}
	sc := card.SurfaceCard{Name: "B1", Symbol: "box", Params: []float64{
		-10, -10, -10,
		20, 0, 0,
		0, 20, 0,
		0, 0, 20,
	}}
	cards, err := e.Expand(nil, sc)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(cards), 6)

	surfaces := make(map[string]*surf.Surface)
	for i, c := range cards {
		chk.Strings(tst, "symbol", []string{c.Symbol}, []string{"p"})
		surfaces[c.Name] = surf.New(c.Name, i+1, surf.Plane, c.Params, nil)
	}

	replaced := e.Replace("B1", false)
	if replaced != "(-B1.1 B1.2 -B1.3 B1.4 -B1.5 B1.6)" {
		tst.Fatalf("unexpected replace string: %q", replaced)
	}

	inside := func(p gmath.Vector3) bool {
		for name, want := range map[string]surf.Side{"B1.1": surf.Back, "B1.2": surf.Front, "B1.3": surf.Back, "B1.4": surf.Front, "B1.5": surf.Back, "B1.6": surf.Front} {
			if surfaces[name].Sign(p) != want && surfaces[name].Sign(p) != surf.On {
				return false
			}
		}
		return true
	}
	if inside(gmath.NewVector3(-20, 0, 0)) {
		tst.Fatal("expected (-20,0,0) outside box")
	}
	if !inside(gmath.NewVector3(0, 0, 0)) {
		tst.Fatal("expected origin inside box")
	}
	if inside(gmath.NewVector3(20, 0, 0)) {
		tst.Fatal("expected (20,0,0) outside box")
	}
}

func TestRppDelegatesToBox(tst *testing.T) {
	chk.PrintTitle("RppDelegatesToBox")
	e := Lookup("rpp")
	sc := card.SurfaceCard{Name: "R1", Symbol: "rpp", Params: []float64{-1, 1, -2, 2, -3, 3}}
	cards, err := e.Expand(nil, sc)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(cards), 6)
	chk.Scalar(tst, "plane1.d", 1e-12, cards[0].Params[3], 1)   // -(-1) from the -u,-d convention
	chk.Scalar(tst, "plane2.d", 1e-12, cards[1].Params[3], -1)
}

func TestSphExpand(tst *testing.T) {
	chk.PrintTitle("SphExpand")
	e := Lookup("sph")
	sc := card.SurfaceCard{Name: "S1", Symbol: "sph", Params: []float64{0, 0, 0, 20}}
	cards, err := e.Expand(nil, sc)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(cards), 1)
	chk.Strings(tst, "name", []string{cards[0].Name}, []string{"S1.1"})
	if e.Replace("S1", false) != "(-S1.1)" {
		tst.Fatal("expected plain negative reference for SPH interior")
	}
}

func TestRccExpandProducesThreeSurfaces(tst *testing.T) {
	chk.PrintTitle("RccExpand")
	e := Lookup("rcc")
	sc := card.SurfaceCard{Name: "C1", Symbol: "rcc", Params: []float64{0, 0, 0, 0, 0, 10, 5}}
	cards, err := e.Expand(nil, sc)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(cards), 3)
	chk.Strings(tst, "symbols", []string{cards[0].Symbol, cards[1].Symbol, cards[2].Symbol}, []string{"gq", "p", "p"})
}

func TestUnknownMnemonicNotRegistered(tst *testing.T) {
	chk.PrintTitle("UnknownMnemonic")
	if Lookup("nosuchbody") != nil {
		tst.Fatal("expected nil for unregistered mnemonic")
	}
}

func TestReplaceInCellTextSubstitutesBareAndNegated(tst *testing.T) {
	chk.PrintTitle("ReplaceInCellText")
	e := Lookup("sph")
	got, err := ReplaceInCellText(e, "S1", "-S1")
	if err != nil {
		tst.Fatal(err)
	}
	if got != "(-S1.1)" {
		tst.Fatalf("unexpected substitution: %q", got)
	}
	got2, err := ReplaceInCellText(e, "S1", "+S1")
	if err != nil {
		tst.Fatal(err)
	}
	if got2 != "(S1.1)" {
		tst.Fatalf("unexpected complement substitution: %q", got2)
	}
}
