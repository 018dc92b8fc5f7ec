// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package card turns the already-cleaned {file,line,text} records the
// external lexer produces into the structured surface/cell/transform cards
// the rest of the geometry core consumes. Comment stripping, continuation
// joining, i/j/m/r expansion and {set:} substitution have already happened
// upstream; this package only parses a single clean logical line.
package card

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Record is one cleaned logical line from the external lexer.
type Record struct {
	File string
	Line int
	Text string
	Echo bool
}

func (r Record) pos() string {
	if r.File == "" {
		return ""
	}
	return r.File + ":" + strconv.Itoa(r.Line) + ": "
}

// knownMnemonics is the set of primitive and macro-body surface mnemonics
// recognised by §4.B/§4.C. Matching is case-insensitive.
var knownMnemonics = map[string]bool{
	"p": true, "px": true, "py": true, "pz": true,
	"so": true, "s": true, "sx": true, "sy": true, "sz": true, "sph": true,
	"c/x": true, "c/y": true, "c/z": true, "cx": true, "cy": true, "cz": true,
	"k/x": true, "k/y": true, "k/z": true, "kx": true, "ky": true, "kz": true,
	"tx": true, "ty": true, "tz": true,
	"gq": true, "sq": true, "qua": true,
	"arb": true, "box": true, "ell": true, "rcc": true, "rec": true,
	"rhp": true, "hex": true, "rpp": true, "tor": true, "trc": true, "wed": true,
	"x": true, "y": true, "z": true,
}

// SurfaceCard is the parsed form of "<name> [TR...] <mnemonic> <params...>".
type SurfaceCard struct {
	Name   string
	TR     []int
	Symbol string
	Params []float64
}

// ParseSurfaceCard parses one cleaned surface-section line.
func ParseSurfaceCard(rec Record) (SurfaceCard, error) {
	fields := strings.Fields(rec.Text)
	if len(fields) < 2 {
		return SurfaceCard{}, chk.Err("%scard: surface card has too few fields: %q", rec.pos(), rec.Text)
	}
	sc := SurfaceCard{Name: fields[0]}
	i := 1
	for i < len(fields) {
		tok := strings.ToLower(fields[i])
		if knownMnemonics[tok] {
			sc.Symbol = tok
			i++
			break
		}
		n, ok := parseTRToken(fields[i])
		if !ok {
			return SurfaceCard{}, chk.Err("%scard: expected TR token or mnemonic, got %q", rec.pos(), fields[i])
		}
		sc.TR = append(sc.TR, n)
		i++
	}
	if sc.Symbol == "" {
		return SurfaceCard{}, chk.Err("%scard: no mnemonic found in surface card %q", rec.pos(), rec.Text)
	}
	for ; i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return SurfaceCard{}, chk.Err("%scard: malformed surface parameter %q: %v", rec.pos(), fields[i], err)
		}
		sc.Params = append(sc.Params, v)
	}
	return sc, nil
}

// parseTRToken accepts either a bare TR number ("3") or an explicit "TR3"
// token, matching Scenario 6's "S1 TR1 TR2 PY 0" style as well as the
// single bare-number MCNP convention.
func parseTRToken(tok string) (int, bool) {
	lower := strings.ToLower(tok)
	if strings.HasPrefix(lower, "tr") && len(lower) > 2 {
		n, err := strconv.Atoi(lower[2:])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
