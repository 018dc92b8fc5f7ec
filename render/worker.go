// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cpmech/gosl/mpi"

	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/phys"
)

// GuessNumThreads clamps requested to the host's hardware concurrency,
// falling back to 1 if that cannot be determined, and to 1 whenever this
// process is itself one rank of an MPI job: a geometry build invoked under
// an MPI-aware batch driver fans its renderer out only within the rank,
// never across ranks (mirrors fem.NewFEM's own mpi.IsOn guard).
func GuessNumThreads(requested int) int {
	if mpi.IsOn() && mpi.Size() > 1 {
		return 1
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if requested <= 0 || requested > n {
		return n
	}
	return requested
}

// Cancel is a cooperative cancellation flag set from outside the tracing
// goroutines (e.g. a GUI cancel button in the original; unused by the CLI
// driver but kept so a future interactive front end needs no API change).
// traceSweep polls it before each ray; Merge does not poll it, so a merge
// that has started runs to completion.
type Cancel struct {
	flag int32
}

// Request marks the flag as cancelled.
func (c *Cancel) Request() { atomic.StoreInt32(&c.flag, 1) }

// Requested reports whether Request has been called. A nil *Cancel is
// never cancelled.
func (c *Cancel) Requested() bool { return c != nil && atomic.LoadInt32(&c.flag) == 1 }

// traceSweep fans a scan line of n rays across a worker pool of numThread
// goroutines, one contiguous index range per worker, and concatenates the
// per-worker result slices back into task-submission (index) order. An
// empty result signals the sweep was cancelled partway through.
func traceSweep(origin, scanDirUnit gmath.Vector3, scanLength float64, subDirUnit gmath.Vector3, subPitch float64, n, numThread int, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup, cancel *Cancel) ([]*TracingRayData, error) {
	if n <= 0 {
		return nil, nil
	}
	if numThread < 1 {
		numThread = 1
	}
	if numThread > n {
		numThread = n
	}

	type chunk struct {
		start, end int
	}
	chunkSize := (n + numThread - 1) / numThread
	var chunks []chunk
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		chunks = append(chunks, chunk{start, end})
	}

	results := make([][]*TracingRayData, len(chunks))
	errs := make([]error, len(chunks))
	var wg sync.WaitGroup
	for ci, ch := range chunks {
		wg.Add(1)
		go func(ci int, ch chunk) {
			defer wg.Done()
			if cancel.Requested() {
				return
			}
			var rays []*TracingRayData
			for i := ch.start; i < ch.end; i++ {
				if cancel.Requested() {
					return
				}
				ray, err := traceOneRay(origin, scanDirUnit, scanLength, subDirUnit, subPitch, i, cells, adjacency, lookup)
				if err != nil {
					errs[ci] = err
					return
				}
				rays = append(rays, ray)
			}
			results[ci] = rays
		}(ci, ch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if cancel.Requested() {
		return nil, nil
	}

	var all []*TracingRayData
	for _, rs := range results {
		all = append(all, rs...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Index() < all[j].Index() })
	return all, nil
}

// TraceRay traces a single ray from origin along dirUnit for length cm,
// independent of any sweep, for verbose-mode debugging (see
// DebugPlotRay): it is traceOneRay with i fixed at 0 and no sub-axis
// offset, so the ray starts exactly at origin.
func TraceRay(origin, dirUnit gmath.Vector3, length float64, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup) (*TracingRayData, error) {
	tp, err := phys.NewTracingParticle(1, origin, dirUnit, 0, nil, cells, adjacency, lookup, length, false, false)
	if err != nil {
		return nil, err
	}
	if err := tp.Trace(); err != nil {
		return nil, err
	}
	return NewTracingRayData(origin, 0, tp.PassedCells(), tp.TrackLengths(), cell.UndefName, cell.UboundName, cell.BoundName)
}

// traceOneRay builds the i'th sub-scan ray of a sweep and traces it end to
// end, mirroring TracingWorker::impl_operation: the ray origin is offset
// by -0.00001*scanDirUnit so it never starts exactly on a pixel boundary.
func traceOneRay(origin, scanDirUnit gmath.Vector3, scanLength float64, subDirUnit gmath.Vector3, subPitch float64, i int, cells []*cell.Cell, adjacency *cell.Adjacency, lookup cell.SurfaceLookup) (*TracingRayData, error) {
	const offset = 0.00001
	rayOrigin := origin.
		Add(subDirUnit.Scale((float64(i) + 0.5) * subPitch)).
		Sub(scanDirUnit.Scale(offset))

	tp, err := phys.NewTracingParticle(1, rayOrigin, scanDirUnit, 0, nil, cells, adjacency, lookup, scanLength, false, false)
	if err != nil {
		return nil, err
	}
	if err := tp.Trace(); err != nil {
		return nil, err
	}
	return NewTracingRayData(rayOrigin, i, tp.PassedCells(), tp.TrackLengths(), cell.UndefName, cell.UboundName, cell.BoundName)
}
