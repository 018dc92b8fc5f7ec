// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

func TestSphereSignAndIntersections(tst *testing.T) {
	chk.PrintTitle("SphereSignAndIntersections")
	s := NewSphere("S1", 1, 0, 0, 0, 20)
	chk.IntAssert(int(s.Sign(gmath.NewVector3(0, 0, 0))), int(Back))
	chk.IntAssert(int(s.Sign(gmath.NewVector3(100, 0, 0))), int(Front))
	chk.IntAssert(int(s.Sign(gmath.NewVector3(20, 0, 0))), int(On))

	ts := s.Intersections(gmath.NewVector3(-40, 0, 0), gmath.NewVector3(1, 0, 0))
	chk.IntAssert(len(ts), 2)
	chk.Scalar(tst, "t0", 1e-8, ts[0], 20)
	chk.Scalar(tst, "t1", 1e-8, ts[1], 60)
}

func TestReverseOfInvolution(tst *testing.T) {
	chk.PrintTitle("ReverseOfInvolution")
	s := NewSphere("S1", 1, 0, 0, 0, 10)
	r := s.ReverseOf()
	rr := r.ReverseOf()
	chk.IntAssert(rr.ID, s.ID)
	if rr.Name != s.Name {
		tst.Fatalf("expected name roundtrip, got %q vs %q", rr.Name, s.Name)
	}
	p := gmath.NewVector3(0, 0, 0)
	chk.IntAssert(int(s.Sign(p)), int(Back))
	chk.IntAssert(int(r.Sign(p)), int(Front))
}

func TestReverseName(tst *testing.T) {
	chk.PrintTitle("ReverseName")
	if ReverseName("S1") != "-S1" {
		tst.Fatal("expected -S1")
	}
	if ReverseName("-S1") != "S1" {
		tst.Fatal("expected S1")
	}
}

func TestExtractSurfaceNames(tst *testing.T) {
	chk.PrintTitle("ExtractSurfaceNames")
	names := ExtractSurfaceNames("(-1 2):-3")
	chk.Strings(tst, "names", names, []string{"-1", "2", "-3"})
}

func TestPlaneIntersection(tst *testing.T) {
	chk.PrintTitle("PlaneIntersection")
	p := NewPX("PX0", 1, 5)
	ts := p.Intersections(gmath.NewVector3(0, 0, 0), gmath.NewVector3(1, 0, 0))
	chk.IntAssert(len(ts), 1)
	chk.Scalar(tst, "t", 1e-12, ts[0], 5)
}

func TestTorusIntersectionOnAxis(tst *testing.T) {
	chk.PrintTitle("TorusIntersectionOnAxis")
	// circular torus, major radius 10, minor radius 2, axis Z, centered at origin
	tor := NewTorusZ("T1", 1, 0, 0, 0, 10, 2, 2)
	// ray along x through z=0 plane should cross the torus tube 4 times
	ts := tor.Intersections(gmath.NewVector3(-20, 0, 0), gmath.NewVector3(1, 0, 0))
	chk.IntAssert(len(ts), 4)
}
