// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

// Options carries the optional per-cell parameters §6 lists (u, trcl, fill,
// lat, tmp, wwn, ext, fcl, imp, nonu, pd, pwt, vol, rho, mat); only the
// subset that influences geometry tracing is modelled, the rest is kept
// opaque for round-tripping via ToFinalInputString.
type Options struct {
	Universe   int
	Trcl       *gmath.Matrix4 // resolved cell-local transform, if any
	Importance float64
	Extra      map[string]string // everything else, preserved verbatim
}

// Cell is immutable once built: a textual name, density, Boolean
// polynomial over signed surface ids, and the precomputed front/back
// literal sets used to drive adjacency (§4.D/§4.E).
type Cell struct {
	Name    string
	ID      int // only reserved cells carry a fixed negative id; user cells are 0
	Density float64
	Poly    Polynomial
	Options Options

	frontLits []int // positive literals appearing in Poly
	backLits  []int // positive surface ids appearing negated in Poly
}

// New builds a Cell, precomputing its front/back contact-surface literal
// sets by scanning the polynomial (§4.D).
func New(name string, poly Polynomial, density float64, opts Options) *Cell {
	c := &Cell{Name: name, Density: density, Poly: poly, Options: opts}
	for _, lit := range poly.Literals() {
		if lit > 0 {
			c.frontLits = append(c.frontLits, lit)
		} else {
			c.backLits = append(c.backLits, -lit)
		}
	}
	return c
}

// FrontSurfaces returns the absolute ids this cell touches on their front side.
func (c *Cell) FrontSurfaces() []int { return c.frontLits }

// BackSurfaces returns the absolute ids this cell touches on their back side.
func (c *Cell) BackSurfaces() []int { return c.backLits }

// SurfaceLookup resolves an absolute surface id to its oriented Surface
// value (front copy); a negative literal is evaluated against that same
// front copy by comparing its sign with Matches.
type SurfaceLookup func(absID int) *surf.Surface

// Inside evaluates whether p lies inside c, per the On-counts-both-sides
// rule of §4.D: a point exactly on a boundary is reported inside every
// cell touching that boundary.
func (c *Cell) Inside(p gmath.Vector3, lookup SurfaceLookup) bool {
	return c.Poly.Eval(func(absID int) surf.Side {
		s := lookup(absID)
		if s == nil {
			chk.Panic("cell: polynomial of %q references unknown surface id %d", c.Name, absID)
		}
		return s.Sign(p)
	})
}

// NextIntersections returns the minimum positive forward parameter t among
// intersections with c's own contact surfaces (front and back), and the
// set of absolute surface ids all reaching that minimum within gmath.Eps.
// An empty surfIDs slice with t==0 indicates no forward intersection.
func (c *Cell) NextIntersections(p, d gmath.Vector3, lookup SurfaceLookup) (t float64, surfIDs []int) {
	type hit struct {
		t  float64
		id int
	}
	var hits []hit
	seen := map[int]bool{}
	for _, absID := range append(append([]int{}, c.frontLits...), c.backLits...) {
		if seen[absID] {
			continue
		}
		seen[absID] = true
		s := lookup(absID)
		if s == nil {
			continue
		}
		for _, tv := range s.Intersections(p, d) {
			hits = append(hits, hit{t: tv, id: absID})
		}
	}
	if len(hits) == 0 {
		return 0, nil
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	tmin := hits[0].t
	for _, h := range hits {
		if h.t-tmin < gmath.Eps {
			surfIDs = append(surfIDs, h.id)
		}
	}
	return tmin, dedupInts(surfIDs)
}

func dedupInts(xs []int) []int {
	seen := map[int]bool{}
	out := xs[:0]
	for _, x := range xs {
		if seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}

// GuessCell linearly scans cells and returns the first whose Inside(p) is
// true, or the undefined cell otherwise. In strict mode it additionally
// asserts uniqueness and logs a warning via gosl/io when multiple cells
// claim p.
func GuessCell(cells []*Cell, p gmath.Vector3, lookup SurfaceLookup, strict, warn bool) *Cell {
	var found *Cell
	matches := 0
	for _, c := range cells {
		if c.Name == UndefName {
			continue
		}
		if c.Inside(p, lookup) {
			matches++
			if found == nil {
				found = c
			}
			if !strict {
				return c
			}
		}
	}
	if strict && matches > 1 && warn {
		io.Pfyel("warning: point %v is claimed by %d cells; using %q\n", p, matches, found.Name)
	}
	if found != nil {
		return found
	}
	return NewUndefinedCell()
}

// ToFinalInputString serialises each non-reserved cell in a stable
// (name-sorted) order as one "name density polynomial" line (density "0"
// for void), followed by the sorted, deduplicated names of the referenced
// surfaces, resolved via idToName. Material ids and surface definitions
// are not written, so the output is not a deck that card/geometry can
// parse back into a cell map.
func ToFinalInputString(cells []*Cell, idToName func(id int) string) string {
	sorted := append([]*Cell{}, cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	surfSeen := map[int]bool{}
	var surfOrder []int
	for _, c := range sorted {
		if IsReservedName(c.Name) {
			continue
		}
		io.Ff(&b, "%s %v %s\n", c.Name, matTokenFor(c.Density), c.Poly.String(idToName))
		for _, lit := range c.Poly.Literals() {
			abs := lit
			if abs < 0 {
				abs = -abs
			}
			if !surfSeen[abs] {
				surfSeen[abs] = true
				surfOrder = append(surfOrder, abs)
			}
		}
	}
	sort.Ints(surfOrder)
	for _, id := range surfOrder {
		io.Ff(&b, "%s\n", idToName(id))
	}
	return b.String()
}

func matTokenFor(density float64) string {
	if density == 0 {
		return "0"
	}
	return io.Sf("%g", density)
}
