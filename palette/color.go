// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette assigns and serializes the colors a rendered bitmap uses
// to tell cells apart: a fixed default-color cycle, optional per-material
// overrides loaded from JSON, and the XPM color-table encoding the bitmap
// writer needs.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// RGBA is a color with an 8-bit-per-channel color and a floating-point
// alpha in [0,1], matching the original's mixed-precision representation
// (alpha is a blend weight, not a fourth byte channel).
type RGBA struct {
	R, G, B int
	A       float64
}

// NotColor is the sentinel returned by lookups that find nothing; it can
// never equal a real registered color because no channel ever reaches
// math.MaxInt32.
var NotColor = RGBA{R: math.MaxInt32, G: math.MaxInt32, B: math.MaxInt32, A: 0}

// Equal compares color channels exactly and alpha with the same 1e-4
// tolerance the original uses, since alpha round-trips through JSON and
// command-line text as a decimal.
func (c RGBA) Equal(o RGBA) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && math.Abs(c.A-o.A) < 1e-4
}

// ToRgbString renders the color as a zero-padded "#RRGGBB" string; alpha is
// not part of the hex form.
func (c RGBA) ToRgbString() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses a "#RRGGBB" string with a separately supplied alpha.
func ParseHexColor(s string, alpha float64) (RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGBA{}, chk.Err("palette: %q is not a valid RGB string", s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return RGBA{}, chk.Err("palette: %q is not a valid RGB string", s)
		}
	}
	if alpha < 0 || alpha > 1 {
		return RGBA{}, chk.Err("palette: %v is not a valid alpha value", alpha)
	}
	r, _ := strconv.ParseInt(s[1:3], 16, 32)
	g, _ := strconv.ParseInt(s[3:5], 16, 32)
	b, _ := strconv.ParseInt(s[5:7], 16, 32)
	return RGBA{R: int(r), G: int(g), B: int(b), A: alpha}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ParseNumericHSB parses the reduced numeric form of a PHITS color string:
// either a single value (positive is a hue with full saturation/brightness,
// negative is a grayscale brightness) or three space-separated H,S,B
// values, each expected in [0,1]. Braces around the value list, if present,
// are stripped. The named HSB color vocabulary is not ported (DESIGN.md);
// only this numeric fallback is.
func ParseNumericHSB(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.Fields(s)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RGBA{}, chk.Err("palette: invalid HSB color string %q: %v", s, err)
		}
		values = append(values, v)
	}
	var h, sat, v float64
	switch len(values) {
	case 1:
		if values[0] > 0 {
			h, sat, v = values[0], 1, 1
		} else {
			h, sat, v = 0, 0, -values[0]
		}
	case 3:
		h, sat, v = values[0], values[1], values[2]
		h = (1.0 - h) * 0.83333333
	default:
		return RGBA{}, chk.Err("palette: HSB color string should consist of 1 or 3 elements, string=%q", s)
	}
	for _, x := range []float64{h, sat, v} {
		if x > 1 || x < 0 {
			return RGBA{}, chk.Err("palette: hsb values should be <1 and >0, data=%q", s)
		}
	}
	rr, gg, bb := hsvToRGB(h, sat, v)
	return RGBA{
		R: int(math.Round(255.0 * rr)),
		G: int(math.Round(255.0 * gg)),
		B: int(math.Round(255.0 * bb)),
		A: 1,
	}, nil
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	r, g, b = v, v, v
	if s <= 0 {
		return
	}
	h *= 6.0
	i := int(h)
	f := h - float64(i)
	switch i {
	default:
	case 0:
		g *= 1 - s*(1-f)
		b *= 1 - s
	case 1:
		r *= 1 - s*f
		b *= 1 - s
	case 2:
		r *= 1 - s
		b *= 1 - s*(1-f)
	case 3:
		r *= 1 - s
		g *= 1 - s*f
	case 4:
		r *= 1 - s*(1-f)
		g *= 1 - s
	case 5:
		g *= 1 - s
		b *= 1 - s*f
	}
	return
}

// defaultColors is the fixed 22-entry cycle getDefaultColor hardcodes.
var defaultColors = [22]string{
	"#ee99cc", "#0000ee", "#cc99ee", "#ee00ee",
	"#ee8000", "#eeee99", "#80ee00", "#99ee99",
	"#00ee80", "#99eeee", "#0080ee", "#9999ee",
	"#7f00ee", "#ee99ee", "#ee007f", "#eecc99",
	"#eeee00", "#ccee99", "#00ee00", "#99eecc",
	"#00eeee", "#99ccee",
}

// DefaultColor returns the i-th color of the fixed default cycle, wrapping
// around every 22 entries.
func DefaultColor(i int) RGBA {
	c, err := ParseHexColor(defaultColors[i%len(defaultColors)], 1)
	if err != nil {
		panic(err)
	}
	return c
}

// Reserved colors for the six singleton region names every geometry
// carries, matching the palette entries the original installs before any
// user material gets a default color.
var (
	UndefColor  = RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}
	VoidColor   = RGBA{R: 0xff, G: 0xff, B: 0xff, A: 1}
	UboundColor = RGBA{R: 0xff, G: 0, B: 0, A: 1}
	BoundColor  = RGBA{R: 0, G: 0, B: 0, A: 1}
	DoubleColor = RGBA{R: 0x66, G: 0x66, B: 0x66, A: 1}
	OmittedColor = RGBA{R: 0x33, G: 0, B: 0x99, A: 1}
)
