// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/cpmech/gosl/io"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/palette"
)

// SectionalImage implements §4.H end to end: a horizontal sweep of hReso
// rays travelling along hdir and a vertical sweep of vReso rays travelling
// along vdir, each sub-scan pitched by the other axis's pixel size, merged
// into a single Bitmap. An empty Bitmap with a nil error means tracing was
// cancelled through cancel; quiet implies non-verbose.
func SectionalImage(origin, hdir, vdir gmath.Vector3, hReso, vReso, numThread int, verbose, quiet bool, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup, pal *palette.CellColorPalette, cancel *Cancel) (Bitmap, error) {
	if quiet {
		verbose = false
	}
	hLen, vLen := hdir.Norm(), vdir.Norm()
	hUnit, vUnit := hdir.Normalize(), vdir.Normalize()
	dh, dv := hLen/float64(hReso), vLen/float64(vReso)
	threads := GuessNumThreads(numThread)

	hRays, err := traceSweep(origin, hUnit, hLen, vUnit, dv, hReso, threads, cells, adjacency, lookup, cancel)
	if err != nil {
		return Bitmap{}, err
	}
	if len(hRays) == 0 {
		if !quiet {
			io.Pfyel("warning: section tracing was canceled.\n")
		}
		return Bitmap{}, nil
	}

	vRays, err := traceSweep(origin, vUnit, vLen, hUnit, dh, vReso, threads, cells, adjacency, lookup, cancel)
	if err != nil {
		return Bitmap{}, err
	}
	if len(vRays) == 0 {
		if !quiet {
			io.Pfyel("warning: section tracing was canceled.\n")
		}
		return Bitmap{}, nil
	}

	himg := newBitmapFromRays(Horizontal, hReso, vReso, hLen, vLen, hRays, pal)
	vimg := newBitmapFromRays(Vertical, hReso, vReso, hLen, vLen, vRays, pal)

	if verbose {
		io.Pf("tracing done, rendering %d x %d section\n", hReso, vReso)
		if err := himg.ExportXPMFile("ploth.xpm"); err != nil {
			return Bitmap{}, err
		}
		if err := vimg.ExportXPMFile("plotv.xpm"); err != nil {
			return Bitmap{}, err
		}
	}

	return MergeBitmaps(himg, vimg, []string{cell.UboundName, cell.BoundName}, cell.DoubleName)
}
