// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// paramKeys are the recognized cell-card parameter keys (§6); matching is
// case-insensitive and also accepts "key:suffix" forms like "imp:n".
var paramKeys = map[string]bool{
	"u": true, "trcl": true, "fill": true, "lat": true, "tmp": true,
	"wwn": true, "ext": true, "fcl": true, "imp": true, "nonu": true,
	"pd": true, "pwt": true, "vol": true, "rho": true, "mat": true,
}

// CellCard is the parsed form of "<name> <mat-id> <density> <polynomial> [params...]".
type CellCard struct {
	Name     string
	MatID    string
	Density  float64 // grams/cc; negative = atom-density convention; 0 for void (mat-id "0")
	PolyText string
	Params   map[string]string
}

// ParseCellCard parses one cleaned cell-section line.
func ParseCellCard(rec Record) (CellCard, error) {
	fields := strings.Fields(rec.Text)
	if len(fields) < 2 {
		return CellCard{}, chk.Err("%scard: cell card has too few fields: %q", rec.pos(), rec.Text)
	}
	cc := CellCard{Name: fields[0], MatID: fields[1], Params: map[string]string{}}
	idx := 2
	if cc.MatID != "0" {
		if len(fields) < 3 {
			return CellCard{}, chk.Err("%scard: cell card with non-void material missing density: %q", rec.pos(), rec.Text)
		}
		d, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return CellCard{}, chk.Err("%scard: malformed density %q: %v", rec.pos(), fields[2], err)
		}
		cc.Density = d
		idx = 3
	}

	paramStart := len(fields)
	for j := idx; j < len(fields); j++ {
		if isParamKeyToken(fields[j]) {
			paramStart = j
			break
		}
	}
	cc.PolyText = strings.TrimSpace(strings.Join(fields[idx:paramStart], " "))
	if cc.PolyText == "" {
		return CellCard{}, chk.Err("%scard: cell card %q has an empty polynomial", rec.pos(), cc.Name)
	}

	if err := parseParams(fields[paramStart:], cc.Params); err != nil {
		return CellCard{}, chk.Err("%s%v", rec.pos(), err)
	}
	return cc, nil
}

func isParamKeyToken(tok string) bool {
	lower := strings.ToLower(tok)
	if i := strings.IndexAny(lower, ":="); i >= 0 {
		lower = lower[:i]
	}
	return paramKeys[lower]
}

// parseParams joins "key value..." or "key=value" / "key:tag=value" runs,
// collecting parenthesised multi-token lists into a single value string.
func parseParams(fields []string, out map[string]string) error {
	i := 0
	for i < len(fields) {
		tok := fields[i]
		key := tok
		var inlineVal string
		hasInline := false
		if j := strings.IndexAny(tok, "="); j >= 0 {
			key, inlineVal = tok[:j], tok[j+1:]
			hasInline = true
		}
		if !isParamKeyToken(key) {
			return chk.Err("card: unexpected token %q where a parameter key was expected", tok)
		}
		key = strings.ToLower(key)
		i++
		if hasInline {
			out[key] = inlineVal
			continue
		}
		var valParts []string
		for i < len(fields) && !isParamKeyToken(fields[i]) {
			valParts = append(valParts, fields[i])
			i++
		}
		out[key] = strings.Join(valParts, " ")
	}
	return nil
}
