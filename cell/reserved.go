// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

// Reserved cell names (§3): singletons always present in a built geometry.
const (
	UndefName   = "*C_undef*"
	VoidName    = "*C_void*"
	UboundName  = "*C_ubound*"
	BoundName   = "*C_bound*"
	DoubleName  = "*C_double*"
	OmittedName = "*C_omitted*"
)

// Reserved cell ids: predefined negative/zero constants, never reused by a
// user cell's surface literals.
const (
	UndefID   = -1
	VoidID    = -2
	UboundID  = -3
	BoundID   = -4
	DoubleID  = -5
	OmittedID = -6
)

// NewUndefinedCell returns the singleton cell representing any point not
// covered by a user cell. Its polynomial is intentionally empty: Inside
// always evaluates false, so GuessCell falls back to it only when no other
// cell claims a point.
func NewUndefinedCell() *Cell {
	return &Cell{Name: UndefName, ID: UndefID, Density: 0}
}

// IsReservedName reports whether name is one of the six reserved cell
// singletons.
func IsReservedName(name string) bool {
	switch name {
	case UndefName, VoidName, UboundName, BoundName, DoubleName, OmittedName:
		return true
	}
	return false
}
