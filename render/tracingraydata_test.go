// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

func TestNewTracingRayDataCollapsesSameCellSegments(tst *testing.T) {
	chk.PrintTitle("NewTracingRayDataCollapsesSameCellSegments")
	r, err := NewTracingRayData(gmath.NewVector3(0, 0, 0), 3,
		[]string{"Undef", "A", "A", "B"},
		[]float64{5, 2, 3, 4},
		"Undef", "UndefBound", "Bound")
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(r.Index(), 3)
	chk.Strings(tst, "cellNames", r.cellNames, []string{"Undef", "A", "B"})
	chk.Array(tst, "lengths", 1e-12, r.lengths, []float64{5, 5, 4})
	chk.Array(tst, "cellBoundPositions", 1e-12, r.cellBoundPositions, []float64{5, 10, 14})
}

func TestNewTracingRayDataRejectsLengthMismatch(tst *testing.T) {
	chk.PrintTitle("NewTracingRayDataRejectsLengthMismatch")
	_, err := NewTracingRayData(gmath.NewVector3(0, 0, 0), 0, []string{"A"}, []float64{1, 2}, "U", "UB", "B")
	if err == nil {
		tst.Fatal("expected an error for mismatched cells/lengths")
	}
}

func TestGetCellNameInteriorAndBoundary(tst *testing.T) {
	chk.PrintTitle("GetCellNameInteriorAndBoundary")
	// Boundaries at x=5 and x=10, pixel width 1 -> half-width 0.5.
	r, err := NewTracingRayData(gmath.NewVector3(0, 0, 0), 0, []string{"A", "B", "C"}, []float64{5, 5, 5}, "Undef", "UndefBound", "Bound")
	if err != nil {
		tst.Fatal(err)
	}
	// Pixel centred well inside "A".
	chk.String(tst, r.GetCellName(2, 1), "A")
	// Pixel centred exactly on the x=5 boundary falls within half-width.
	chk.String(tst, r.GetCellName(5, 1), "Bound")
	// Pixel centred well inside "C", past the last boundary.
	chk.String(tst, r.GetCellName(12, 1), "C")
}

func TestGetCellNameUndefBoundary(tst *testing.T) {
	chk.PrintTitle("GetCellNameUndefBoundary")
	r, err := NewTracingRayData(gmath.NewVector3(0, 0, 0), 0, []string{"Undef", "A"}, []float64{5, 5}, "Undef", "UndefBound", "Bound")
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, r.GetCellName(5, 1), "UndefBound")
}
