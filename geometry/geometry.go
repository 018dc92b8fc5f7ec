// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/cell"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/macro"
	"github.com/ohnishi-lab/gxsview/palette"
	"github.com/ohnishi-lab/gxsview/surf"
)

// Geometry is the built, queryable world §4.F describes: every cell and
// surface resolved by name, adjacency between them, and a color palette
// ready for rendering. It is immutable once Build returns.
type Geometry struct {
	Cells        map[string]*cell.Cell
	CellOrder    []string // insertion order, for stable dumps
	SurfaceIndex map[string]int
	Surfaces     map[int]*surf.Surface
	Adjacency    *cell.Adjacency
	TrMap        map[int]gmath.Matrix4
	Palette      *palette.CellColorPalette

	idToNameMap map[int]string
}

// Input groups the three card streams a deck lexer hands to Build, plus the
// knobs that control its verbose dump and default-palette behaviour.
type Input struct {
	SurfaceRecords []card.Record
	CellRecords    []card.Record
	TrRecords      []card.Record

	// ColorOverrides, if non-nil, takes priority over the default color
	// cycle during palette assignment (§4.I), matching a loaded
	// createModifiedPalette config.
	ColorOverrides map[string]palette.MaterialColorData

	Verbose bool
	Quiet   bool
	DumpDir string
}

// Build drives the five-step construction order of §4.F: expand macro
// bodies, build the surface map, parse cells, prune unused surfaces and
// initialise the undefined-cell adjacency, then assign the palette.
func Build(in Input) (*Geometry, error) {
	verbose := in.Verbose && !in.Quiet

	trMap, err := card.BuildTrMap(in.TrRecords)
	if err != nil {
		return nil, err
	}

	rawSurfCards := make([]card.SurfaceCard, 0, len(in.SurfaceRecords))
	for _, r := range in.SurfaceRecords {
		sc, err := card.ParseSurfaceCard(r)
		if err != nil {
			return nil, err
		}
		rawSurfCards = append(rawSurfCards, sc)
	}

	// Step 1: expand macro bodies into their primitive sub-surfaces,
	// remembering which expander produced which macro name so cell text
	// referencing it can be rewritten next.
	expanded := make([]card.SurfaceCard, 0, len(rawSurfCards))
	macroExpanders := map[string]macro.Expander{}
	for _, sc := range rawSurfCards {
		if e := macro.Lookup(sc.Symbol); e != nil {
			subCards, err := e.Expand(trMap, sc)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, subCards...)
			macroExpanders[sc.Name] = e
			continue
		}
		expanded = append(expanded, sc)
	}

	substitutedCellRecords := make([]card.Record, len(in.CellRecords))
	for i, r := range in.CellRecords {
		text := r.Text
		for name, e := range macroExpanders {
			text, err = macro.ReplaceInCellText(e, name, text)
			if err != nil {
				return nil, err
			}
		}
		substitutedCellRecords[i] = card.Record{File: r.File, Line: r.Line, Text: text, Echo: r.Echo}
	}

	if verbose && in.DumpDir != "" {
		if err := io.WriteFileSD(in.DumpDir, "surface.i5", formatSurfaceCards(expanded)); err != nil {
			return nil, err
		}
		if err := io.WriteFileSD(in.DumpDir, "cell.i5", formatCellRecords(substitutedCellRecords)); err != nil {
			return nil, err
		}
	}

	// Step 2: build the front-only surface map. A card's own TR field only
	// ever matters for primitive cards — macro expansion already bakes
	// trMap[sc.TR] into the sub-cards' params (see macro.Expander.Expand).
	g := &Geometry{
		Cells:        map[string]*cell.Cell{},
		SurfaceIndex: map[string]int{},
		Surfaces:     map[int]*surf.Surface{},
		TrMap:        trMap,
		idToNameMap:  map[int]string{},
	}
	for i, sc := range expanded {
		id := i + 1
		var tr *gmath.Matrix4
		if _, isMacroSub := macroExpanders[baseMacroName(sc.Name)]; !isMacroSub {
			tr = resolveTR(trMap, sc.TR)
		}
		s, err := buildSurface(sc.Name, id, sc, tr)
		if err != nil {
			return nil, err
		}
		g.SurfaceIndex[sc.Name] = id
		g.idToNameMap[id] = sc.Name
		g.Surfaces[id] = s
	}

	// Step 3: parse cell cards against the surface map just built.
	cellMatID := map[string]string{}
	for _, r := range substitutedCellRecords {
		cc, err := card.ParseCellCard(r)
		if err != nil {
			return nil, err
		}
		poly, err := cell.ParsePolynomial(cc.PolyText, g.nameToID)
		if err != nil {
			return nil, chk.Err("geometry: cell %q: %v", cc.Name, err)
		}
		opts, err := parseCellOptions(cc.Params, trMap)
		if err != nil {
			return nil, chk.Err("geometry: cell %q: %v", cc.Name, err)
		}
		c := cell.New(cc.Name, poly, cc.Density, opts)
		if _, dup := g.Cells[c.Name]; dup {
			return nil, chk.Err("geometry: duplicate cell name %q", c.Name)
		}
		g.Cells[c.Name] = c
		g.CellOrder = append(g.CellOrder, c.Name)
		cellMatID[c.Name] = cc.MatID
	}

	// Step 4: prune surfaces no cell actually touches, then attach the
	// undefined cell to whatever remains.
	cellsSlice := g.cellsSlice()
	g.Adjacency = cell.NewAdjacency()
	g.Adjacency.UpdateAdjacency(cellsSlice)
	used := g.Adjacency.UsedSurfaceIDs()
	for id := range g.Surfaces {
		if !used[id] {
			delete(g.Surfaces, id)
			delete(g.idToNameMap, id)
		}
	}
	usedIDs := make([]int, 0, len(used))
	for id := range used {
		usedIDs = append(usedIDs, id)
	}
	sort.Ints(usedIDs)
	g.Adjacency.InitUndefinedCell(usedIDs)

	// Step 5: install reserved colors, assign defaults over the user
	// cells, then re-install the reserved colors so no override can
	// shadow them.
	pal := palette.NewCellColorPalette()
	if err := pal.InstallReserved(cell.UndefName, cell.VoidName, cell.UboundName, cell.BoundName, cell.DoubleName, cell.OmittedName); err != nil {
		return nil, err
	}
	materials := make([]palette.CellMaterial, 0, len(g.CellOrder))
	for _, name := range g.CellOrder {
		matName := cellMatID[name]
		if matName == "0" {
			matName = palette.MatVoid
		}
		materials = append(materials, palette.CellMaterial{CellName: name, MatName: matName})
	}
	if err := pal.AssignDefaultColors(materials, in.ColorOverrides); err != nil {
		return nil, err
	}
	if err := pal.InstallReserved(cell.UndefName, cell.VoidName, cell.UboundName, cell.BoundName, cell.DoubleName, cell.OmittedName); err != nil {
		return nil, err
	}
	g.Palette = pal

	return g, nil
}

// cellsSlice returns every built cell plus the undefined-cell singleton, in
// the order the callers below (Adjacency, NextCell, SectionalImage) expect.
func (g *Geometry) cellsSlice() []*cell.Cell {
	out := make([]*cell.Cell, 0, len(g.Cells)+1)
	for _, name := range g.CellOrder {
		out = append(out, g.Cells[name])
	}
	out = append(out, cell.NewUndefinedCell())
	return out
}

// Lookup resolves an absolute surface id to its front-oriented Surface,
// satisfying cell.SurfaceLookup.
func (g *Geometry) Lookup(absID int) *surf.Surface {
	return g.Surfaces[absID]
}

// nameToID resolves a (possibly '-'-prefixed) surface name token from a
// cell polynomial to its signed id, satisfying what cell.ParsePolynomial
// needs.
func (g *Geometry) nameToID(name string) (int, error) {
	bare := name
	neg := false
	if strings.HasPrefix(name, "-") {
		neg = true
		bare = name[1:]
	}
	id, ok := g.SurfaceIndex[bare]
	if !ok {
		return 0, chk.Err("geometry: cell polynomial references unknown surface %q", name)
	}
	if neg {
		return -id, nil
	}
	return id, nil
}

// IDToName resolves a signed surface id back to its "-name"/"name" textual
// form, satisfying cell.ToFinalInputString.
func (g *Geometry) IDToName(id int) string {
	abs := id
	neg := id < 0
	if neg {
		abs = -id
	}
	name := g.idToNameMap[abs]
	if neg {
		return surf.ReverseName(name)
	}
	return name
}

// ToFinalInputString renders every user cell plus the names of the
// surfaces it references, in the form cell.ToFinalInputString documents
// (not re-parseable as a deck).
func (g *Geometry) ToFinalInputString() string {
	return cell.ToFinalInputString(g.cellsSlice(), g.IDToName)
}

// baseMacroName strips a ".k" sub-surface suffix, recovering the macro name
// a sub-card like "B1.2" was expanded from, so the surface-map loop above
// can tell a macro sub-surface (already in world space) from a primitive
// card carrying its own unresolved TR list.
func baseMacroName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			return name[:i]
		}
	}
	return name
}

// resolveTR composes the chain of TR transforms a primitive surface card
// carries into one affine matrix, mirroring macro.applyTR (unexported in
// that package, so duplicated here rather than exported solely for this
// one call site).
func resolveTR(trMap map[int]gmath.Matrix4, trIDs []int) *gmath.Matrix4 {
	if len(trIDs) == 0 {
		return nil
	}
	ms := make([]gmath.Matrix4, 0, len(trIDs))
	for _, id := range trIDs {
		ms = append(ms, trMap[id])
	}
	m := gmath.Compose(ms...)
	return &m
}

// parseCellOptions extracts the subset of §6's cell parameters that affect
// geometry tracing (u, trcl, imp); everything else is kept verbatim in
// Extra, matching cell.Options's documented scope.
func parseCellOptions(params map[string]string, trMap map[int]gmath.Matrix4) (cell.Options, error) {
	opts := cell.Options{Extra: map[string]string{}}
	for k, v := range params {
		switch {
		case k == "u":
			n, err := strconv.Atoi(v)
			if err != nil {
				opts.Extra[k] = v
				continue
			}
			opts.Universe = n
		case k == "trcl":
			n, err := strconv.Atoi(v)
			if err != nil {
				opts.Extra[k] = v
				continue
			}
			m, ok := trMap[n]
			if !ok {
				opts.Extra[k] = v
				continue
			}
			opts.Trcl = &m
		case strings.HasPrefix(k, "imp"):
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				opts.Extra[k] = v
				continue
			}
			opts.Importance = f
		default:
			opts.Extra[k] = v
		}
	}
	return opts, nil
}

// formatSurfaceCards re-serialises the post-expansion surface cards for the
// "surface.i5" verbose dump, one "name [trN...] symbol params..." line per
// card.
func formatSurfaceCards(cards []card.SurfaceCard) string {
	var b strings.Builder
	for _, sc := range cards {
		fmt.Fprintf(&b, "%s", sc.Name)
		for _, tr := range sc.TR {
			fmt.Fprintf(&b, " tr%d", tr)
		}
		fmt.Fprintf(&b, " %s", sc.Symbol)
		for _, p := range sc.Params {
			fmt.Fprintf(&b, " %g", p)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatCellRecords re-serialises the post-macro-substitution cell records
// for the "cell.i5" verbose dump.
func formatCellRecords(recs []card.Record) string {
	var b strings.Builder
	for _, r := range recs {
		b.WriteString(r.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
