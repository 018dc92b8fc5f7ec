// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/ohnishi-lab/gxsview/gmath"
)

// TRCard is a single "TR<n> dx dy dz [3x3 rotation row-major]" transform
// card. A bare translation (3 numbers) yields the identity rotation.
type TRCard struct {
	ID     int
	Matrix gmath.Matrix4
}

// ParseTRCard parses one cleaned transform-section line of the form
// "tr<n> dx dy dz [b1..b9]".
func ParseTRCard(rec Record) (TRCard, error) {
	fields := strings.Fields(rec.Text)
	if len(fields) < 4 {
		return TRCard{}, chk.Err("%scard: TR card has too few fields: %q", rec.pos(), rec.Text)
	}
	name := strings.ToLower(fields[0])
	if !strings.HasPrefix(name, "tr") {
		return TRCard{}, chk.Err("%scard: expected a TR card, got %q", rec.pos(), fields[0])
	}
	id, err := strconv.Atoi(name[2:])
	if err != nil {
		return TRCard{}, chk.Err("%scard: malformed TR id in %q: %v", rec.pos(), fields[0], err)
	}
	nums := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return TRCard{}, chk.Err("%scard: malformed TR parameter %q: %v", rec.pos(), f, err)
		}
		nums = append(nums, v)
	}
	m := gmath.Translation(gmath.NewVector3(nums[0], nums[1], nums[2]))
	if len(nums) >= 12 {
		m[0][0], m[0][1], m[0][2] = nums[3], nums[4], nums[5]
		m[1][0], m[1][1], m[1][2] = nums[6], nums[7], nums[8]
		m[2][0], m[2][1], m[2][2] = nums[9], nums[10], nums[11]
	}
	return TRCard{ID: id, Matrix: m}, nil
}

// BuildTrMap builds the TR number -> affine matrix map from a set of
// cleaned transform-section records.
func BuildTrMap(recs []Record) (map[int]gmath.Matrix4, error) {
	out := map[int]gmath.Matrix4{}
	for _, r := range recs {
		tr, err := ParseTRCard(r)
		if err != nil {
			return nil, err
		}
		out[tr.ID] = tr.Matrix
	}
	return out, nil
}
