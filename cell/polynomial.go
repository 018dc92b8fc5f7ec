// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cell implements the Boolean-polynomial cell model of §4.D/§4.E:
// a cell is a disjunction of conjunctions over signed surface ids, with its
// front/back contact-surface sets precomputed for adjacency.
package cell

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/surf"
)

// Conjunction is an AND of signed surface ids (positive = front, negative =
// back side of that surface).
type Conjunction []int

// Polynomial is an OR of Conjunctions: the CSG expression of a cell.
type Polynomial []Conjunction

// ParsePolynomial parses the textual Boolean expression a cell card carries
// (surface names joined by spaces for AND, ':' for OR, parens for
// grouping) into a Polynomial over signed surface ids, using nameToID to
// resolve each literal's (possibly '-'-prefixed) surface name to its
// signed id.
//
// Only the restricted grammar actually emitted by macro-body expansion and
// plain MCNP/PHITS cell cards is supported: an optional top-level
// parenthesisation, OR (':') at the top level, and AND (implicit,
// whitespace) within each parenthesised/unparenthesised group. Nested
// parens are flattened via recursive distribution, which is sufficient for
// every construct this geometry core itself generates or consumes.
func ParsePolynomial(text string, nameToID func(name string) (int, error)) (Polynomial, error) {
	toks, err := tokenizePoly(text)
	if err != nil {
		return nil, err
	}
	p := &polyParser{toks: toks, nameToID: nameToID}
	poly, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, chk.Err("cell: unexpected trailing tokens in polynomial %q", text)
	}
	return poly, nil
}

type token struct {
	kind byte // '(', ')', ':', 'L' (literal)
	text string
}

func tokenizePoly(text string) ([]token, error) {
	var toks []token
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, token{kind: 'L', text: cur.String()})
			cur.Reset()
		}
	}
	for _, r := range text {
		switch r {
		case '(', ')', ':':
			flush()
			toks = append(toks, token{kind: byte(r)})
		case ' ', '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks, nil
}

type polyParser struct {
	toks     []token
	pos      int
	nameToID func(string) (int, error)
}

func (p *polyParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

// parseOr := parseAnd (':' parseAnd)*
func (p *polyParser) parseOr() (Polynomial, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	poly := first
	for {
		t, ok := p.peek()
		if !ok || t.kind != ':' {
			break
		}
		p.pos++
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		poly = append(poly, next...)
	}
	return poly, nil
}

// parseAnd := factor+  — returns a Polynomial that is the cross-product AND
// of each factor's own disjunction (each factor is a literal or a
// parenthesised sub-polynomial).
func (p *polyParser) parseAnd() (Polynomial, error) {
	acc := Polynomial{Conjunction{}}
	count := 0
	for {
		t, ok := p.peek()
		if !ok || t.kind == ')' || t.kind == ':' {
			break
		}
		var factor Polynomial
		var err error
		if t.kind == '(' {
			p.pos++
			factor, err = p.parseOr()
			if err != nil {
				return nil, err
			}
			ct, ok := p.peek()
			if !ok || ct.kind != ')' {
				return nil, chk.Err("cell: unmatched '(' in polynomial")
			}
			p.pos++
		} else if t.kind == 'L' {
			p.pos++
			id, err2 := literalID(t.text, p.nameToID)
			if err2 != nil {
				return nil, err2
			}
			factor = Polynomial{{id}}
		} else {
			return nil, chk.Err("cell: unexpected token in polynomial")
		}
		acc = crossAnd(acc, factor)
		count++
	}
	if count == 0 {
		return nil, chk.Err("cell: empty AND group in polynomial")
	}
	return acc, nil
}

func crossAnd(a, b Polynomial) Polynomial {
	out := make(Polynomial, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make(Conjunction, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}

func literalID(text string, nameToID func(string) (int, error)) (int, error) {
	return nameToID(text)
}

// Matches reports whether side matches the signed literal lit (positive =
// front, negative = back); On matches both, per the §4.D rule.
func Matches(lit int, side surf.Side) bool {
	if side == surf.On {
		return true
	}
	if lit > 0 {
		return side == surf.Front
	}
	return side == surf.Back
}

// Eval evaluates the polynomial given a function reporting the side of the
// surface referenced by the absolute value of each literal.
func (poly Polynomial) Eval(sideOf func(absID int) surf.Side) bool {
	for _, conj := range poly {
		allMatch := true
		for _, lit := range conj {
			abs := lit
			if abs < 0 {
				abs = -abs
			}
			if !Matches(lit, sideOf(abs)) {
				allMatch = false
				break
			}
		}
		if allMatch {
			return true
		}
	}
	return false
}

// Literals returns the sorted, de-duplicated set of signed literals
// appearing anywhere in the polynomial.
func (poly Polynomial) Literals() []int {
	seen := map[int]bool{}
	var out []int
	for _, conj := range poly {
		for _, lit := range conj {
			if !seen[lit] {
				seen[lit] = true
				out = append(out, lit)
			}
		}
	}
	sort.Ints(out)
	return out
}

// String renders the polynomial back to the "(-1 2):-3" textual form,
// resolving each signed id to a name via idToName.
func (poly Polynomial) String(idToName func(id int) string) string {
	parts := make([]string, 0, len(poly))
	for _, conj := range poly {
		lits := make([]string, 0, len(conj))
		for _, lit := range conj {
			lits = append(lits, idToName(lit))
		}
		joined := strings.Join(lits, " ")
		if len(poly) > 1 && len(conj) > 1 {
			joined = "(" + joined + ")"
		}
		parts = append(parts, joined)
	}
	return strings.Join(parts, ":")
}
