// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package render implements the scan-line renderer of §4.H: two
// orthogonal sweeps of tracing particles turned into indexed pixel grids,
// merged into a single Bitmap through a shared palette.
package render

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// PixelArray is a column-major grid of palette indices: index(x,y) lives
// at x*verticalSize+y, so a full column is contiguous the way the
// original's std::vector<pixel_type> backing store is.
type PixelArray struct {
	horizontalSize int
	verticalSize   int
	data           []int
}

// NewPixelArray allocates a horizontalSize x verticalSize grid with every
// pixel set to 0; callers fill each pixel with Set.
func NewPixelArray(horizontalSize, verticalSize int) *PixelArray {
	return &PixelArray{
		horizontalSize: horizontalSize,
		verticalSize:   verticalSize,
		data:           make([]int, horizontalSize*verticalSize),
	}
}

// HorizontalSize returns the pixel width of the array.
func (a *PixelArray) HorizontalSize() int { return a.horizontalSize }

// VerticalSize returns the pixel height of the array.
func (a *PixelArray) VerticalSize() int { return a.verticalSize }

// At returns the palette index stored at (hindex, vindex).
func (a *PixelArray) At(hindex, vindex int) int {
	return a.data[hindex*a.verticalSize+vindex]
}

// Set stores a palette index at (hindex, vindex).
func (a *PixelArray) Set(hindex, vindex, value int) {
	a.data[hindex*a.verticalSize+vindex] = value
}

// ToXPMString renders every row as one quoted XPM string, most-significant
// row (vindex 0) first, joined with trailing commas on every row but the
// last, matching the original's toXpmString.
func (a *PixelArray) ToXPMString(pixToChar func(index int) (byte, error)) (string, error) {
	var b strings.Builder
	for vindex := 0; vindex < a.verticalSize; vindex++ {
		b.WriteByte('"')
		for hindex := 0; hindex < a.horizontalSize; hindex++ {
			c, err := pixToChar(a.At(hindex, vindex))
			if err != nil {
				return "", chk.Err("render: pixel (%d,%d)=%d conversion to xpm char failed: %v", hindex, vindex, a.At(hindex, vindex), err)
			}
			b.WriteByte(c)
		}
		b.WriteByte('"')
		if vindex != a.verticalSize-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Merge combines two same-sized arrays pixel by pixel: where they agree the
// shared value is kept; where they disagree, priorPattern is scanned in
// reverse (the original iterates via rbegin/rend and breaks on the first
// match, so the LAST entry of priorPattern actually wins ties despite its
// comment claiming front-of-list priority — ported literally here, not
// "fixed") and the first pattern value found in either input wins; if
// neither disagreeing value appears in priorPattern, conflicted is used.
func Merge(a, b *PixelArray, priorPattern []int, conflicted int) (*PixelArray, error) {
	if a.horizontalSize != b.horizontalSize {
		return nil, chk.Err("render: merge horizontal sizes differ, %d vs %d", a.horizontalSize, b.horizontalSize)
	}
	if a.verticalSize != b.verticalSize {
		return nil, chk.Err("render: merge vertical sizes differ, %d vs %d", a.verticalSize, b.verticalSize)
	}
	out := &PixelArray{horizontalSize: a.horizontalSize, verticalSize: a.verticalSize, data: append([]int{}, a.data...)}
	for vindex := 0; vindex < a.verticalSize; vindex++ {
		for hindex := 0; hindex < a.horizontalSize; hindex++ {
			v1, v2 := a.At(hindex, vindex), b.At(hindex, vindex)
			if v1 == v2 {
				continue
			}
			resolved := conflicted
			for i := len(priorPattern) - 1; i >= 0; i-- {
				if v1 == priorPattern[i] || v2 == priorPattern[i] {
					resolved = priorPattern[i]
					break
				}
			}
			out.Set(hindex, vindex, resolved)
		}
	}
	return out, nil
}
