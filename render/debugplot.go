// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/cpmech/gosl/plt"
)

// DebugPlotRay renders one traced ray's cell-boundary staircase to
// /tmp/gxsview/debug_ray.png via gosl/plt: the x axis is distance along the
// ray, the y axis steps up by one at every cell crossing, so a run can
// sanity check the tracer's segment lengths visually instead of decoding
// TracingRayData by hand. Not called by the default rendering path; it is
// a debugging aid wired from the CLI's -debug-ray flag.
func DebugPlotRay(ray *TracingRayData) error {
	plt.Reset(false, nil)
	n := len(ray.cellBoundPositions)
	x := make([]float64, 0, 2*n)
	y := make([]float64, 0, 2*n)
	prev := 0.0
	for i, pos := range ray.cellBoundPositions {
		x = append(x, prev, pos)
		y = append(y, float64(i), float64(i))
		prev = pos
	}
	plt.Plot(x, y, &plt.A{C: "b", Ls: "-", L: "cell index"})
	plt.Gll("distance along ray (cm)", "cell index", nil)
	return plt.SaveD("/tmp/gxsview", "debug_ray.png")
}
