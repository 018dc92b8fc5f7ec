// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/palette"
)

// Dir selects which axis a sweep's rays travel along when rendering a
// PixelArray from TracingRayData: a horizontal sweep's rays run along the
// image's h axis, one per v row, and vice versa.
type Dir int

const (
	// Horizontal rays run left-to-right, one per pixel row.
	Horizontal Dir = iota
	// Vertical rays run bottom-to-top, one per pixel column.
	Vertical
)

// Bitmap is a finished sectional image: a palette-indexed pixel grid plus
// the physical extent (cm) it covers and the palette that resolved it, an
// empty Pixels signalling the tracing that produced it was cancelled.
type Bitmap struct {
	WidthCm  float64
	HeightCm float64
	Pixels   *PixelArray
	Palette  *palette.CellColorPalette
}

// Empty reports whether b carries no pixel data, the renderer's signal
// that its sweep was cancelled partway through.
func (b Bitmap) Empty() bool { return b.Pixels == nil || b.Pixels.HorizontalSize() == 0 }

// newBitmapFromRays renders one sweep's rays into a Bitmap's pixel grid:
// for every pixel, the cell name at that pixel's center is looked up from
// its ray and resolved to a palette index. Horizontal sweeps store rays
// ray-index-to-row with row 0 at the top, so the stored ray order (origin
// side first) must be read back-to-front; vertical sweeps instead write
// row vReso-1-yindex since a PixelArray's v axis also runs top-down.
// Warns and clamps the cross-axis resolution down to len(rays) when the
// sweep produced fewer rays than requested, matching the original's
// resolution fallback.
func newBitmapFromRays(dir Dir, hReso, vReso int, widthCm, heightCm float64, rays []*TracingRayData, pal *palette.CellColorPalette) Bitmap {
	if dir == Vertical && len(rays) < hReso {
		fmt.Fprintf(os.Stderr, "Warning: number of tracing data is fewer than horizontal resolution.\nx-resolution was set to be %d\n", len(rays))
		hReso = len(rays)
	} else if dir == Horizontal && len(rays) < vReso {
		fmt.Fprintf(os.Stderr, "Warning: number of tracing data is fewer than vertical resolution.\ny-resolution was set to be %d\n", len(rays))
		vReso = len(rays)
	}

	pixels := NewPixelArray(hReso, vReso)
	var pixLengthCm float64
	if dir == Horizontal {
		pixLengthCm = widthCm / float64(hReso)
	} else {
		pixLengthCm = heightCm / float64(vReso)
	}

	for yindex := 0; yindex < vReso; yindex++ {
		for xindex := 0; xindex < hReso; xindex++ {
			if dir == Horizontal {
				pixelPos := float64(xindex)*pixLengthCm + 0.5*pixLengthCm
				name := rays[len(rays)-1-yindex].GetCellName(pixelPos, pixLengthCm)
				pixels.Set(xindex, yindex, pal.GetIndexByCellName(name))
			} else {
				pixelPos := float64(yindex)*pixLengthCm + 0.5*pixLengthCm
				name := rays[xindex].GetCellName(pixelPos, pixLengthCm)
				pixels.Set(xindex, vReso-1-yindex, pal.GetIndexByCellName(name))
			}
		}
	}
	return Bitmap{WidthCm: widthCm, HeightCm: heightCm, Pixels: pixels, Palette: pal}
}

// MergeBitmaps combines two sweeps' bitmaps sharing one palette into the
// final sectional image, preferring priorNames wherever the sweeps
// disagree and falling back to conflictName otherwise (§4.H step 5). A
// mismatch in physical extent between the two is only a warning and the
// merge still proceeds pixel for pixel; a mismatch in pixel resolution is
// not merged: Merge returns an error for it.
func MergeBitmaps(a, b Bitmap, priorNames []string, conflictName string) (Bitmap, error) {
	if a.Palette == nil || a.Palette.Empty() || b.Palette == nil || b.Palette.Empty() {
		fmt.Fprintln(os.Stderr, "Warning: merging a bitmap with an empty palette.")
	}
	if a.WidthCm != b.WidthCm || a.HeightCm != b.HeightCm {
		fmt.Fprintf(os.Stderr, "Warning: merging bitmaps with differing physical extents (%gx%g vs %gx%g).\n", a.WidthCm, a.HeightCm, b.WidthCm, b.HeightCm)
	}

	priorIdx := make([]int, len(priorNames))
	for i, n := range priorNames {
		priorIdx[i] = a.Palette.GetIndexByCellName(n)
	}
	conflictIdx := a.Palette.GetIndexByCellName(conflictName)

	merged, err := Merge(a.Pixels, b.Pixels, priorIdx, conflictIdx)
	if err != nil {
		return Bitmap{}, err
	}
	return Bitmap{WidthCm: a.WidthCm, HeightCm: a.HeightCm, Pixels: merged, Palette: a.Palette}, nil
}

// ExportXPM writes b as an XPM image: the "/* XPM */" C-array header, the
// color table (one line per distinct material), one quoted pixel-row
// string per scan line, and the closing brace.
func (b Bitmap) ExportXPM(w io.Writer) error {
	if b.Empty() {
		return chk.Err("render: cannot export an empty bitmap")
	}
	if _, err := io.WriteString(w, "/* XPM */\nstatic char * image_xpm[] = {\n"); err != nil {
		return err
	}
	materials := b.Palette.MaterialColorDataList()
	if err := palette.WriteColorTable(w, b.Pixels.HorizontalSize(), b.Pixels.VerticalSize(), materials); err != nil {
		return err
	}
	body, err := b.Pixels.ToXPMString(func(index int) (byte, error) {
		if index < 0 || index >= palette.MaxColorNumber() && index >= len(materials) {
			return 0, chk.Err("render: palette index %d out of range", index)
		}
		return palette.ColorChar(index), nil
	})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, body); err != nil {
		return err
	}
	_, err = io.WriteString(w, "};\n")
	return err
}

// ExportXPMFile is a convenience wrapper around ExportXPM writing directly
// to a named file, matching BitmapImage::exportToXpmFile.
func (b Bitmap) ExportXPMFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("render: cannot create %q: %v", path, err)
	}
	defer f.Close()
	return b.ExportXPM(f)
}
