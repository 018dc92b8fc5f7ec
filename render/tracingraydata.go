// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

// TracingRayData is the per-ray record a sweep produces: the sequence of
// cells a single TracingParticle passed through and the cumulative
// position of each boundary along the ray, used by GetCellName to answer
// "what cell occupies this pixel" queries without re-tracing.
type TracingRayData struct {
	startPos gmath.Vector3
	index    int

	undefName      string
	undefBoundName string
	boundName      string

	cellNames          []string
	lengths            []float64
	cellBoundPositions []float64
}

// NewTracingRayData builds a TracingRayData from one particle's raw
// passed-cell/track-length pair lists, collapsing consecutive segments
// that share the same cell name (a particle can cross several internal
// surfaces of the same cell without ever changing cell) and precomputing
// the absolute position of every remaining boundary as a prefix sum of the
// collapsed lengths.
func NewTracingRayData(startPos gmath.Vector3, index int, cells []string, lengths []float64, undefName, undefBoundName, boundName string) (*TracingRayData, error) {
	if len(cells) != len(lengths) {
		return nil, chk.Err("render: TracingRayData cells/lengths length mismatch: %d vs %d", len(cells), len(lengths))
	}
	if len(cells) == 0 {
		return nil, chk.Err("render: TracingRayData requires at least one passed cell")
	}
	r := &TracingRayData{
		startPos:       startPos,
		index:          index,
		undefName:      undefName,
		undefBoundName: undefBoundName,
		boundName:      boundName,
	}
	r.cellNames = append(r.cellNames, cells[0])
	r.lengths = append(r.lengths, lengths[0])
	for i := 1; i < len(cells); i++ {
		if cells[i] != r.cellNames[len(r.cellNames)-1] {
			r.cellNames = append(r.cellNames, cells[i])
			r.lengths = append(r.lengths, lengths[i])
		} else {
			r.lengths[len(r.lengths)-1] += lengths[i]
		}
	}
	pos := 0.0
	for _, l := range r.lengths {
		pos += l
		r.cellBoundPositions = append(r.cellBoundPositions, pos)
	}
	return r, nil
}

// Index returns the ray's position among its sweep's sibling rays.
func (r *TracingRayData) Index() int { return r.index }

// GetCellName classifies the pixel centred at pos with width pixWidth:
// a stored cell boundary landing inside (or on the pixel's upper edge of)
// the pixel reports a boundary name — undefName on either side promotes it
// to the undef-boundary name, otherwise the plain boundary name — and a
// pixel clear of any boundary reports the cell occupying it. A pos past
// the ray's last recorded boundary reports the last cell and warns.
func (r *TracingRayData) GetCellName(pos, pixWidth float64) string {
	half := 0.5 * pixWidth
	last := len(r.cellBoundPositions) - 1
	for i := 0; i < last; i++ {
		distance := r.cellBoundPositions[i] - pos
		ad := distance
		if ad < 0 {
			ad = -ad
		}
		onUpperEdge := ad == half && distance > 0
		inPixel := ad <= half && (ad != half || onUpperEdge)
		if inPixel {
			if r.cellNames[i] == r.undefName || r.cellNames[i+1] == r.undefName {
				return r.undefBoundName
			}
			return r.boundName
		}
		if r.cellBoundPositions[i] > pos+half {
			return r.cellNames[i]
		}
	}
	if pos > r.cellBoundPositions[last] {
		fmt.Fprintf(os.Stderr, "Warning: x=%g is out of track length (=%g). last cell data was used.\n", pos+half, r.cellBoundPositions[last])
	}
	return r.cellNames[last]
}
