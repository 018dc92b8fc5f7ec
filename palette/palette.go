// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// NotIndex is returned by the lookups below when nothing matches.
const NotIndex = math.MaxInt32

// Reserved material names for the six singleton region cells every
// geometry carries, mirrored from the original's mat::Material namespace.
const (
	MatUndef   = "*undef*"
	MatVoid    = "*void*"
	MatUbound  = "*ubound*"
	MatBound   = "*bound*"
	MatDouble  = "*double*"
	MatOmitted = "*omitted*"
)

// CellColorPalette maps cell names to colors through an intermediate
// material grouping: cells sharing a material share one MaterialColorData
// entry (and one palette index), so two materials that happen to resolve
// to the identical color collapse to the same index as well (getIndexByColor
// compares by color value, not material identity — ported faithfully since
// render.PixelArray stores palette indices, not material names).
type CellColorPalette struct {
	materialList  []*MaterialColorData
	cellColorData map[string]*MaterialColorData
}

// NewCellColorPalette returns an empty palette.
func NewCellColorPalette() *CellColorPalette {
	return &CellColorPalette{cellColorData: map[string]*MaterialColorData{}}
}

// Empty reports whether no material has been registered yet.
func (p *CellColorPalette) Empty() bool { return len(p.materialList) == 0 }

// Size returns the number of distinct materials registered.
func (p *CellColorPalette) Size() int { return len(p.materialList) }

// Clear removes every registration.
func (p *CellColorPalette) Clear() {
	p.materialList = nil
	p.cellColorData = map[string]*MaterialColorData{}
}

// RegisterColor is the simple three-argument form (no alias, unit print
// size) used for the reserved colors and for plain default-color
// assignment.
func (p *CellColorPalette) RegisterColor(cellName, matName string, color RGBA) error {
	return p.RegisterColorFull(cellName, matName, "", 1.0, color)
}

// RegisterColorFull registers cellName under matName with the given alias,
// print size and color.
//
//   - matName unseen, cellName unseen: a new MaterialColorData is created
//     and cellName is mapped to it.
//   - matName unseen, cellName already registered: an error — a cell name
//     cannot change which material it belongs to.
//   - matName already registered, cellName unseen: cellName is mapped to
//     the EXISTING MaterialColorData; the alias/size/color arguments are
//     ignored, matching the original (cells sharing a material share one
//     color entry, set by whichever cell registered the material first).
//   - both already registered: no-op.
func (p *CellColorPalette) RegisterColorFull(cellName, matName, aliasName string, printSize float64, color RGBA) error {
	var existing *MaterialColorData
	for _, m := range p.materialList {
		if m.MatName == matName {
			existing = m
			break
		}
	}
	prior, cellSeen := p.cellColorData[cellName]
	switch {
	case existing == nil && !cellSeen:
		m := &MaterialColorData{MatName: matName, AliasName: aliasName, PrintSize: printSize, Color: color}
		p.materialList = append(p.materialList, m)
		p.cellColorData[cellName] = m
	case existing == nil && cellSeen:
		return chk.Err("palette: color data for cell=%q are duplicated, current material=%q, already registered=%q", cellName, matName, prior.MatName)
	case existing != nil && !cellSeen:
		p.cellColorData[cellName] = existing
	}
	return nil
}

// GetColorByCellName returns the color registered for cellName.
func (p *CellColorPalette) GetColorByCellName(cellName string) (RGBA, bool) {
	m, ok := p.cellColorData[cellName]
	if !ok {
		return RGBA{}, false
	}
	return m.Color, true
}

// GetIndexByCellName resolves cellName to a palette index via its color,
// returning NotIndex if cellName was never registered.
func (p *CellColorPalette) GetIndexByCellName(cellName string) int {
	m, ok := p.cellColorData[cellName]
	if !ok {
		return NotIndex
	}
	return p.GetIndexByColor(m.Color)
}

// GetIndexByColor returns the index of the first registered material whose
// color equals color, or NotIndex.
func (p *CellColorPalette) GetIndexByColor(color RGBA) int {
	for i, m := range p.materialList {
		if m.Color.Equal(color) {
			return i
		}
	}
	return NotIndex
}

// ColorMap returns a snapshot keyed by material name.
func (p *CellColorPalette) ColorMap() map[string]MaterialColorData {
	out := make(map[string]MaterialColorData, len(p.materialList))
	for _, m := range p.materialList {
		out[m.MatName] = *m
	}
	return out
}

// MaterialColorDataList returns the registered materials in registration
// order, the order the XPM color table and bitmap index space use.
func (p *CellColorPalette) MaterialColorDataList() []MaterialColorData {
	out := make([]MaterialColorData, len(p.materialList))
	for i, m := range p.materialList {
		out[i] = *m
	}
	return out
}

// InstallReserved registers the six singleton region names with their
// fixed reserved colors, matching geometry's setReservedPalette. It is
// meant to run once on an empty palette and again as the last step of
// building a geometry's palette, so no user override can shadow a
// reserved name.
func (p *CellColorPalette) InstallReserved(undef, void, ubound, bound, double, omitted string) error {
	reserved := []struct {
		cell, mat string
		color     RGBA
	}{
		{undef, MatUndef, UndefColor},
		{void, MatVoid, VoidColor},
		{ubound, MatUbound, UboundColor},
		{bound, MatBound, BoundColor},
		{double, MatDouble, DoubleColor},
		{omitted, MatOmitted, OmittedColor},
	}
	for _, r := range reserved {
		if err := p.RegisterColor(r.cell, r.mat, r.color); err != nil {
			return err
		}
	}
	return nil
}

// AssignDefaultColors registers every (cellName, matName) pair in cells
// under a color from the fixed default cycle, one index per distinct
// material name sorted lexically — matching setDefaultPalette's use of a
// std::set (ordered, not insertion-order) to number materials before
// indexing into getDefaultColor. overrides, if non-nil, supplies
// per-material colors (keyed by material name) that take priority over the
// default cycle, matching createModifiedPalette.
func (p *CellColorPalette) AssignDefaultColors(cells []CellMaterial, overrides map[string]MaterialColorData) error {
	names := make([]string, 0, len(cells))
	seen := map[string]bool{}
	for _, c := range cells {
		if !seen[c.MatName] {
			seen[c.MatName] = true
			names = append(names, c.MatName)
		}
	}
	sort.Strings(names)
	matIndex := make(map[string]int, len(names))
	for i, n := range names {
		matIndex[n] = i
	}
	for _, c := range cells {
		if ov, ok := overrides[c.MatName]; ok {
			if err := p.RegisterColorFull(c.CellName, c.MatName, ov.AliasName, ov.PrintSize, ov.Color); err != nil {
				return err
			}
			continue
		}
		if err := p.RegisterColor(c.CellName, c.MatName, DefaultColor(matIndex[c.MatName])); err != nil {
			return err
		}
	}
	return nil
}

// CellMaterial is the (cell name, material name) pair AssignDefaultColors
// needs; geometry.Geometry builds a slice of these from its cell map.
type CellMaterial struct {
	CellName string
	MatName  string
}
