// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"io"

	"github.com/cpmech/gosl/chk"
)

// colorJSON mirrors Color::jsonValue's {"r","g","b","a"} object. Unlike the
// original, which truncates "a" to an int before storing it, alpha is kept
// as a float64 end to end — the original's int-cast reads every fractional
// override alpha as 0, which is almost certainly an oversight rather than
// an intended format, so this port does not reproduce it.
type colorJSON struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// materialColorJSON mirrors MaterialColorData::jsonValue's object shape.
type materialColorJSON struct {
	MatName   string    `json:"matName_"`
	AliasName string    `json:"aliasName_"`
	PrintSize float64   `json:"printSize_"`
	Color     colorJSON `json:"color_"`
}

// LoadConfig reads a JSON array of material-color override entries and
// returns them keyed by material name, ready to pass to
// CellColorPalette.AssignDefaultColors as its overrides argument.
func LoadConfig(r io.Reader) (map[string]MaterialColorData, error) {
	var entries []materialColorJSON
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, chk.Err("palette: parsing json config failed: %v", err)
	}
	out := make(map[string]MaterialColorData, len(entries))
	for _, e := range entries {
		out[e.MatName] = MaterialColorData{
			MatName:   e.MatName,
			AliasName: e.AliasName,
			PrintSize: e.PrintSize,
			Color:     RGBA{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: e.Color.A},
		}
	}
	return out, nil
}
