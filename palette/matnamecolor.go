// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// MaterialColorData bundles a material's display name, a shorter alias used
// in labels, a relative print/font size and its assigned color.
type MaterialColorData struct {
	MatName   string
	AliasName string
	PrintSize float64
	Color     RGBA
}

// IsUserDefinedColor reports whether a MaterialColorData came from a user
// override rather than the reserved or default cycle: the original treats
// an empty or "*"-prefixed material name as not user-defined.
func IsUserDefinedColor(m MaterialColorData) bool {
	return m.MatName != "" && m.MatName[0] != '*'
}
