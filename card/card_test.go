// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceCardRoundTrip(t *testing.T) {
	sc, err := ParseSurfaceCard(Record{Text: "S1 SPH 0 0 0 20"})
	require.NoError(t, err)
	assert.Equal(t, "S1", sc.Name)
	assert.Equal(t, "sph", sc.Symbol)
	assert.Equal(t, []float64{0, 0, 0, 20}, sc.Params)
	assert.Empty(t, sc.TR)
}

func TestSurfaceCardWithTR(t *testing.T) {
	sc, err := ParseSurfaceCard(Record{Text: "S1 TR1 TR2 PY 0"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sc.TR)
	assert.Equal(t, "py", sc.Symbol)
	assert.Equal(t, []float64{0}, sc.Params)
}

func TestSurfaceCardUnknownMnemonic(t *testing.T) {
	_, err := ParseSurfaceCard(Record{Text: "S1 bogus 1 2 3"})
	require.Error(t, err)
}

func TestCellCardRoundTrip(t *testing.T) {
	cc, err := ParseCellCard(Record{Text: "C1 0 -S1"})
	require.NoError(t, err)
	assert.Equal(t, "C1", cc.Name)
	assert.Equal(t, "0", cc.MatID)
	assert.Equal(t, 0.0, cc.Density)
	assert.Equal(t, "-S1", cc.PolyText)
}

func TestCellCardWithDensityAndParams(t *testing.T) {
	cc, err := ParseCellCard(Record{Text: "C2 1 -2.7 -S1 S2 imp:n=1 u=3"})
	require.NoError(t, err)
	assert.Equal(t, "1", cc.MatID)
	assert.Equal(t, -2.7, cc.Density)
	assert.Equal(t, "-S1 S2", cc.PolyText)
	assert.Equal(t, "1", cc.Params["imp"])
	assert.Equal(t, "3", cc.Params["u"])
}

func TestBuildTrMapComposition(t *testing.T) {
	trMap, err := BuildTrMap([]Record{{Text: "tr1 5 0 0"}})
	require.NoError(t, err)
	m, ok := trMap[1]
	require.True(t, ok)
	assert.Equal(t, 5.0, m[0][3])
}
