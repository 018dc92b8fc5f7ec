// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPixelArraySetAt(tst *testing.T) {
	chk.PrintTitle("PixelArraySetAt")
	pa := NewPixelArray(3, 2)
	pa.Set(1, 0, 5)
	pa.Set(2, 1, 9)
	chk.IntAssert(pa.At(1, 0), 5)
	chk.IntAssert(pa.At(2, 1), 9)
	chk.IntAssert(pa.At(0, 0), 0)
	chk.IntAssert(pa.HorizontalSize(), 3)
	chk.IntAssert(pa.VerticalSize(), 2)
}

func TestPixelArrayToXPMString(tst *testing.T) {
	chk.PrintTitle("PixelArrayToXPMString")
	pa := NewPixelArray(2, 2)
	pa.Set(0, 0, 0)
	pa.Set(1, 0, 1)
	pa.Set(0, 1, 1)
	pa.Set(1, 1, 0)
	body, err := pa.ToXPMString(func(index int) (byte, error) {
		return byte('a' + index), nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	if !strings.Contains(body, `"ab"`) || !strings.Contains(body, `"ba"`) {
		tst.Fatalf("unexpected xpm body: %q", body)
	}
}

// TestMergeLastPriorEntryWins exercises the reverse-iteration tie-break: of
// two priorPattern entries that both match a conflicting pixel, the LAST one
// in the slice wins, not the first — the quirk this port reproduces
// literally from the original's rbegin()/rend() merge loop.
func TestMergeLastPriorEntryWins(tst *testing.T) {
	chk.PrintTitle("MergeLastPriorEntryWins")
	a := NewPixelArray(1, 1)
	b := NewPixelArray(1, 1)
	a.Set(0, 0, 7)
	b.Set(0, 0, 8)
	merged, err := Merge(a, b, []int{7, 8}, -1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(merged.At(0, 0), 8)
}

func TestMergeAgreeingPixelsPassThrough(tst *testing.T) {
	chk.PrintTitle("MergeAgreeingPixelsPassThrough")
	a := NewPixelArray(2, 1)
	b := NewPixelArray(2, 1)
	a.Set(0, 0, 3)
	b.Set(0, 0, 3)
	a.Set(1, 0, 4)
	b.Set(1, 0, 5)
	merged, err := Merge(a, b, []int{}, -1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(merged.At(0, 0), 3)
	chk.IntAssert(merged.At(1, 0), -1)
}

func TestMergeSizeMismatchErrors(tst *testing.T) {
	chk.PrintTitle("MergeSizeMismatchErrors")
	a := NewPixelArray(2, 2)
	b := NewPixelArray(3, 2)
	if _, err := Merge(a, b, nil, -1); err == nil {
		tst.Fatal("expected an error merging differently-sized arrays")
	}
}
