// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surf implements the quadric/toroidal surface library: the
// per-kind implicit functions, their signed-distance sign, ray
// intersections and the front/back reverse-copy convention.
package surf

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

// Kind tags which quadric form a Surface implements.
type Kind int

// The supported surface kinds; CylGeneral and Quadric cover any axis via
// the optional Transform.
const (
	Plane Kind = iota
	Sphere
	CylX
	CylY
	CylZ
	CylGeneral
	ConeX
	ConeY
	ConeZ
	TorusX
	TorusY
	TorusZ
	Quadric
)

// Side is the result of Sign: which side of a surface a point lies on.
type Side int

const (
	Front Side = iota
	Back
	On
)

// Surface is immutable once built. Name is user-facing ("-" prefix denotes
// the complementary/reverse side); ID is the internal signed integer id
// (positive front, negated back). Params holds the kind-specific numeric
// parameters; Transform, if non-nil, is applied to candidate points/dirs
// before evaluating the implicit function (used for macro-body TR and
// general quadric placement).
type Surface struct {
	Name      string
	ID        int
	Kind      Kind
	Params    []float64
	Transform *gmath.Matrix4
	flipped   bool // true for the reverse (-) copy: f' = -f
}

// New builds a front-oriented surface with the given positive id.
func New(name string, id int, kind Kind, params []float64, tr *gmath.Matrix4) *Surface {
	if id <= 0 {
		chk.Panic("surf: front surface id must be positive, got %d", id)
	}
	return &Surface{Name: name, ID: id, Kind: kind, Params: params, Transform: tr}
}

// toLocalPoint maps a world-space point into the surface's local frame, undoing
// Transform if present.
func (s *Surface) toLocalPoint(p gmath.Vector3) gmath.Vector3 {
	if s.Transform == nil {
		return p
	}
	return gmath.AffineTransform(p, invertAffine(*s.Transform))
}

func (s *Surface) toLocalDir(d gmath.Vector3) gmath.Vector3 {
	if s.Transform == nil {
		return d
	}
	return gmath.RotationTransform(d, invertAffine(*s.Transform))
}

// implicit evaluates the untransformed, unflipped f(p) for this surface's
// kind, in the surface's own local frame.
func (s *Surface) implicit(p gmath.Vector3) float64 {
	switch s.Kind {
	case Plane:
		return planeF(s.Params, p)
	case Sphere:
		return sphereF(s.Params, p)
	case CylX, CylY, CylZ, CylGeneral:
		return cylF(s.Kind, s.Params, p)
	case ConeX, ConeY, ConeZ:
		return coneF(s.Kind, s.Params, p)
	case TorusX, TorusY, TorusZ:
		return torusF(s.Kind, s.Params, p)
	case Quadric:
		return quadricF(s.Params, p)
	}
	chk.Panic("surf: unknown kind %d", int(s.Kind))
	return 0
}

// f evaluates the fully-oriented implicit function in world space.
func (s *Surface) f(p gmath.Vector3) float64 {
	lp := s.toLocalPoint(p)
	v := s.implicit(lp)
	if s.flipped {
		return -v
	}
	return v
}

// Sign returns which side of the surface p lies on, On within gmath.Eps.
func (s *Surface) Sign(p gmath.Vector3) Side {
	v := s.f(p)
	switch {
	case v > gmath.Eps:
		return Front
	case v < -gmath.Eps:
		return Back
	default:
		return On
	}
}

// Intersections returns the ordered forward parameter values t>eps along
// p+t*d where this surface is crossed, discarding grazing tangencies
// (|f(p+td)|<eps roots already excluded by construction) and non-forward
// roots.
func (s *Surface) Intersections(p, d gmath.Vector3) []float64 {
	lp := s.toLocalPoint(p)
	ld := s.toLocalDir(d)
	var raw []float64
	switch s.Kind {
	case Plane:
		raw = planeRoots(s.Params, lp, ld)
	case Sphere:
		raw = sphereRoots(s.Params, lp, ld)
	case CylX, CylY, CylZ, CylGeneral:
		raw = cylRoots(s.Kind, s.Params, lp, ld)
	case ConeX, ConeY, ConeZ:
		raw = coneRoots(s.Kind, s.Params, lp, ld)
	case TorusX, TorusY, TorusZ:
		raw = torusRoots(s.Kind, s.Params, lp, ld)
	case Quadric:
		raw = quadricRoots(s.Params, lp, ld)
	default:
		chk.Panic("surf: unknown kind %d", int(s.Kind))
	}
	out := make([]float64, 0, len(raw))
	for _, t := range raw {
		if t <= gmath.Eps {
			continue
		}
		out = append(out, t)
	}
	sort.Float64s(out)
	return dedupT(out)
}

func dedupT(ts []float64) []float64 {
	out := ts[:0]
	for _, t := range ts {
		if len(out) > 0 && t-out[len(out)-1] < gmath.Eps {
			continue
		}
		out = append(out, t)
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ReverseOf returns a new Surface with identical shape but flipped sign
// convention; its ID is negated and its Name follows ReverseName.
func (s *Surface) ReverseOf() *Surface {
	r := *s
	r.ID = -s.ID
	r.Name = ReverseName(s.Name)
	r.flipped = !s.flipped
	return &r
}

// ReverseName prepends "-" unless already prefixed, in which case it strips
// the prefix.
func ReverseName(n string) string {
	if strings.HasPrefix(n, "-") {
		return strings.TrimPrefix(n, "-")
	}
	return "-" + n
}

// ExtractSurfaceNames returns the list of surface names referenced in a
// polynomial string, ignoring the operators "(", ")", ":" and whitespace.
func ExtractSurfaceNames(poly string) []string {
	var names []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			names = append(names, cur.String())
			cur.Reset()
		}
	}
	for _, r := range poly {
		switch r {
		case '(', ')', ':', ' ', '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return names
}

// invertAffine inverts an affine transform (linear part L + translation t):
// L^-1 comes from the 3x3 cofactor formula in invert3 for every transform
// (for a proper rotation this equals L^T), and t' = -L^-1 t.
func invertAffine(m gmath.Matrix4) gmath.Matrix4 {
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}
	inv := invert3(r)
	var out gmath.Matrix4
	for i := 0; i < 3; i++ {
		out[i][i] = 0
		for j := 0; j < 3; j++ {
			out[i][j] = inv[i][j]
		}
	}
	tx, ty, tz := m[0][3], m[1][3], m[2][3]
	out[0][3] = -(inv[0][0]*tx + inv[0][1]*ty + inv[0][2]*tz)
	out[1][3] = -(inv[1][0]*tx + inv[1][1]*ty + inv[1][2]*tz)
	out[2][3] = -(inv[2][0]*tx + inv[2][1]*ty + inv[2][2]*tz)
	out[3][3] = 1
	return out
}

func invert3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if abs(det) < gmath.Eps {
		chk.Panic("surf: transform is singular, cannot invert")
	}
	invDet := 1 / det
	var out [3][3]float64
	out[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return out
}
