// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry implements the facade of §4.F: it drives the
// macro-expansion, surface-map, cell-map and adjacency passes in order and
// exposes the resulting world to NextCell and SectionalImage.
package geometry

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/surf"
)

// buildSurface turns one already macro-expanded (or already primitive)
// surface card into a concrete *surf.Surface, carrying its resolved TR (if
// any) in the surface's own Transform field so every kind — not just
// CylGeneral/Quadric — can be placed off the card's local axis.
func buildSurface(name string, id int, sc card.SurfaceCard, tr *gmath.Matrix4) (*surf.Surface, error) {
	p := sc.Params
	switch strings.ToLower(sc.Symbol) {
	case "p":
		if err := wantParams(sc, 4); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Plane, []float64{p[0], p[1], p[2], p[3]}, tr), nil
	case "px":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Plane, []float64{1, 0, 0, p[0]}, tr), nil
	case "py":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Plane, []float64{0, 1, 0, p[0]}, tr), nil
	case "pz":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Plane, []float64{0, 0, 1, p[0]}, tr), nil

	case "so":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Sphere, []float64{0, 0, 0, p[0]}, tr), nil
	case "s", "sph":
		if err := wantParams(sc, 4); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Sphere, []float64{p[0], p[1], p[2], p[3]}, tr), nil
	case "sx":
		if err := wantParams(sc, 2); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Sphere, []float64{p[0], 0, 0, p[1]}, tr), nil
	case "sy":
		if err := wantParams(sc, 2); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Sphere, []float64{0, p[0], 0, p[1]}, tr), nil
	case "sz":
		if err := wantParams(sc, 2); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Sphere, []float64{0, 0, p[0], p[1]}, tr), nil

	case "cx":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylX, []float64{0, 0, p[0]}, tr), nil
	case "cy":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylY, []float64{0, 0, p[0]}, tr), nil
	case "cz":
		if err := wantParams(sc, 1); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylZ, []float64{0, 0, p[0]}, tr), nil
	case "c/x":
		if err := wantParams(sc, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylX, []float64{p[0], p[1], p[2]}, tr), nil
	case "c/y":
		if err := wantParams(sc, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylY, []float64{p[0], p[1], p[2]}, tr), nil
	case "c/z":
		if err := wantParams(sc, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.CylZ, []float64{p[0], p[1], p[2]}, tr), nil

	case "kx":
		if err := wantParams(sc, 2, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeX, coneParams(0, p), tr), nil
	case "ky":
		if err := wantParams(sc, 2, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeY, coneParams(1, p), tr), nil
	case "kz":
		if err := wantParams(sc, 2, 3); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeZ, coneParams(2, p), tr), nil
	case "k/x":
		if err := wantParams(sc, 4, 5); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeX, coneParamsGeneral(p), tr), nil
	case "k/y":
		if err := wantParams(sc, 4, 5); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeY, coneParamsGeneral(p), tr), nil
	case "k/z":
		if err := wantParams(sc, 4, 5); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.ConeZ, coneParamsGeneral(p), tr), nil

	case "tx":
		if err := wantParams(sc, 6); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.TorusX, p, tr), nil
	case "ty":
		if err := wantParams(sc, 6); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.TorusY, p, tr), nil
	case "tz":
		if err := wantParams(sc, 6); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.TorusZ, p, tr), nil

	case "gq":
		if err := wantParams(sc, 10); err != nil {
			return nil, err
		}
		var coeffs [10]float64
		copy(coeffs[:], p)
		return surf.New(name, id, surf.Quadric, coeffs[:], tr), nil
	case "sq":
		if err := wantParams(sc, 10); err != nil {
			return nil, err
		}
		return surf.New(name, id, surf.Quadric, sqToGQ(p), tr), nil
	}
	return nil, chk.Err("geometry: unknown primitive surface mnemonic %q (card %q)", sc.Symbol, sc.Name)
}

// coneParams builds the axis-on-center [x0,y0,z0,t2,sheet] cone params for
// the apex-on-axis KX/KY/KZ cards, where only the along-axis coordinate and
// t2 (plus optional sheet) are given; axis (0=x, 1=y, 2=z) selects which
// apex coordinate that along-axis value fills.
func coneParams(axis int, p []float64) []float64 {
	sheet := 0.0
	if len(p) > 2 {
		sheet = p[2]
	}
	out := []float64{0, 0, 0, p[1], sheet}
	out[axis] = p[0]
	return out
}

// coneParamsGeneral builds the cone params for the K/X,K/Y,K/Z cards, which
// give the full off-axis apex plus t2 and an optional sheet selector.
func coneParamsGeneral(p []float64) []float64 {
	sheet := 0.0
	if len(p) > 4 {
		sheet = p[4]
	}
	return []float64{p[0], p[1], p[2], p[3], sheet}
}

// sqToGQ expands the MCNP "SQ" reduced quadric (axis-aligned coefficients
// A,B,C,D,E,F,G plus a separate center x0,y0,z0) into the general ten-term
// GQ form surf.Quadric expects:
//
//	A(x-x0)^2 + B(y-y0)^2 + C(z-z0)^2 + 2D(x-x0) + 2E(y-y0) + 2F(z-z0) + G = 0
func sqToGQ(p []float64) []float64 {
	a, b, c, d, e, f, g, x0, y0, z0 := p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8], p[9]
	return []float64{
		a, b, c,
		0, 0, 0,
		2*d - 2*a*x0,
		2*e - 2*b*y0,
		2*f - 2*c*z0,
		a*x0*x0 + b*y0*y0 + c*z0*z0 - 2*d*x0 - 2*e*y0 - 2*f*z0 + g,
	}
}

func wantParams(sc card.SurfaceCard, counts ...int) error {
	for _, n := range counts {
		if len(sc.Params) == n {
			return nil
		}
	}
	return chk.Err("geometry: surface %q (%s) expects %v parameters, got %d", sc.Name, sc.Symbol, counts, len(sc.Params))
}
