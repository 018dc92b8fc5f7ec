// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package macro implements the macro-body expander of §4.C: composite body
// keywords (BOX, RCC, RHP, ...) are rewritten into equivalent unions or
// intersections of primitive planes/quadrics, editing both the
// surface-card and cell-card streams in place.
package macro

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
)

// Expander is the per-macro-body contract (DESIGN NOTES §9): a small
// interface rather than free functions, registered in a static table keyed
// by mnemonic.
type Expander interface {
	Mnemonic() string
	NumSurfaces() int
	// Expand rewrites one macro-body surface card into its NumSurfaces()
	// primitive sub-surface cards, named "<macroName>.1".."<macroName>.k",
	// with trMap[sc.TR] applied if present.
	Expand(trMap map[int]gmath.Matrix4, sc card.SurfaceCard) ([]card.SurfaceCard, error)
	// Replace returns the parenthesised Boolean expression of sub-surfaces
	// that reproduces the macro body's interior ("-macroName" reference) or
	// its De Morgan complement ("+macroName" reference).
	Replace(macroName string, negated bool) string
}

var registry = map[string]Expander{}

func register(e Expander) { registry[e.Mnemonic()] = e }

func init() {
	register(boxExpander{})
	register(rppExpander{})
	register(sphExpander{})
	register(ellExpander{})
	register(rccExpander{})
	register(recExpander{})
	register(trcExpander{})
	register(rhpExpander{mnemonic: "rhp"})
	register(rhpExpander{mnemonic: "hex"})
	register(wedExpander{})
	register(torExpander{})
	register(quaExpander{})
	register(arbExpander{})
	register(axisExpander{mnemonic: "x", axis: gmath.NewVector3(1, 0, 0)})
	register(axisExpander{mnemonic: "y", axis: gmath.NewVector3(0, 1, 0)})
	register(axisExpander{mnemonic: "z", axis: gmath.NewVector3(0, 0, 1)})
}

// Lookup returns the registered Expander for mnemonic (case-insensitive),
// or nil if mnemonic is not a known macro body.
func Lookup(mnemonic string) Expander {
	return registry[strings.ToLower(mnemonic)]
}

// standardExpand builds the common "sub-surfaces with standard signs, AND'd
// for -M, De Morgan OR for +M" replacement text, used by every macro except
// TOR and QUA which carry bespoke multi-piece interiors (§4.C).
func standardExpand(macroName string, signs []int, negated bool) string {
	parts := make([]string, len(signs))
	for i, sign := range signs {
		sub := fmt.Sprintf("%s.%d", macroName, i+1)
		s := sign
		if negated {
			s = -s
		}
		if s < 0 {
			parts[i] = "-" + sub
		} else {
			parts[i] = sub
		}
	}
	if !negated {
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "(" + strings.Join(parts, ":") + ")"
}

// macroRefPattern finds a bare macro-body name token inside a cell-card
// polynomial: an optional leading '-' or '+', then the macro name, not
// immediately followed by a '.' (which would indicate an already-expanded
// sub-surface reference).
func macroRefPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`([+-]?)\b` + regexp.QuoteMeta(name) + `\b(\.\d+)?`)
}

// ReplaceInCellText scans cellText for references to macroName and
// substitutes the Boolean expression that reproduces its interior (for a
// bare or '-' reference) or its complement (for a '+' reference).
func ReplaceInCellText(e Expander, macroName, cellText string) (string, error) {
	re := macroRefPattern(macroName)
	var outerErr error
	result := re.ReplaceAllStringFunc(cellText, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if sub[2] != "" {
			return m // already an expanded sub-surface reference like "B1.2"
		}
		negated := sub[1] == "+"
		return e.Replace(macroName, negated)
	})
	if outerErr != nil {
		return "", outerErr
	}
	return result, nil
}

func mustParams(sc card.SurfaceCard, n int) error {
	if len(sc.Params) != n {
		return chk.Err("macro: %s expects %d parameters, got %d (card %q)", sc.Symbol, n, len(sc.Params), sc.Name)
	}
	return nil
}

func applyTR(trMap map[int]gmath.Matrix4, trIDs []int) *gmath.Matrix4 {
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

func subName(macroName string, i int) string {
	return fmt.Sprintf("%s.%d", macroName, i)
}
