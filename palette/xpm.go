// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"io"
	"strings"
)

// asciiChars is the XPM pixel-character catalog, ordered so the most
// visually distinct characters come first; the first ColorIndexOffset
// entries are reserved for the first five singleton regions
// InstallReserved registers (undefined, void, unbounded boundary, bounded
// boundary, double).
const asciiChars = "!.ilI+-:;=@_$0123456789<ABCDEFGHJKLMNOPQRSTUVWXYZ^abcdefghjkmnopqrstuvwxyz~"

// ColorIndexOffset is the number of reserved leading characters in
// asciiChars that colorChar's wraparound never reuses.
const ColorIndexOffset = 5

// MaxColorNumber returns the number of distinct pixel characters available.
// The original computes this as sizeof(asciichars), which in C counts the
// string's terminating NUL byte; porting that literally would let
// ColorChar return a NUL byte for the one index equal to len(asciiChars).
// This port returns the true printable character count instead, so the
// wraparound below never emits a NUL into XPM output (DESIGN.md).
func MaxColorNumber() int { return len(asciiChars) }

// ColorChar maps a palette index to its XPM pixel character. Once index
// reaches MaxColorNumber, characters are reused starting after the
// reserved prefix.
func ColorChar(index int) byte {
	if index < len(asciiChars) {
		return asciiChars[index]
	}
	return asciiChars[ColorIndexOffset+index%(len(asciiChars)-ColorIndexOffset)]
}

// WriteColorTable writes the XPM header line and one color-definition line
// per registered material, in materialList order — the same order
// ColorChar indexes into, so row i's character always names
// materialList[i]'s color.
func WriteColorTable(w io.Writer, hResolution, vResolution int, materialList []MaterialColorData) error {
	if len(materialList) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\"%d %d %d 1\",\n", hResolution, vResolution, len(materialList)); err != nil {
		return err
	}
	nameWidth := 0
	for _, m := range materialList {
		if len(m.MatName) > nameWidth {
			nameWidth = len(m.MatName)
		}
	}
	for i, m := range materialList {
		colorStr := "none"
		if m.Color.A > 0 {
			colorStr = m.Color.ToRgbString()
		}
		if _, err := fmt.Fprintf(w, "\"%c s %-*s c %s\",\n", ColorChar(i), nameWidth+1, m.MatName, colorStr); err != nil {
			return err
		}
	}
	return nil
}

// RowToXPM renders one pixel row (already resolved to palette indices) as
// a quoted XPM row string, terminated by a comma and newline except for the
// last row of the image.
func RowToXPM(indices []int, last bool) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, idx := range indices {
		sb.WriteByte(ColorChar(idx))
	}
	sb.WriteByte('"')
	if !last {
		sb.WriteByte(',')
	}
	sb.WriteByte('\n')
	return sb.String()
}
