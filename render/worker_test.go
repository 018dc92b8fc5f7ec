// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

func TestGuessNumThreadsClampsToZeroOrNegative(tst *testing.T) {
	chk.PrintTitle("GuessNumThreadsClampsToZeroOrNegative")
	n := GuessNumThreads(0)
	if n < 1 {
		tst.Fatalf("expected at least one thread, got %d", n)
	}
}

func TestGuessNumThreadsClampsAboveHardwareConcurrency(tst *testing.T) {
	chk.PrintTitle("GuessNumThreadsClampsAboveHardwareConcurrency")
	n := GuessNumThreads(1 << 20)
	got := GuessNumThreads(0)
	chk.IntAssert(n, got)
}

func TestTraceRayFollowsStraightPath(tst *testing.T) {
	chk.PrintTitle("TraceRayFollowsStraightPath")
	cells, adj, lookup := threeSlabWorld()
	ray, err := TraceRay(gmath.NewVector3(-20, 0, 0), gmath.NewVector3(1, 0, 0), 50, cells, adj, lookup)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Strings(tst, "cellNames", ray.cellNames, []string{"A", "B", "C"})
}
