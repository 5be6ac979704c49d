// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes and key actions that the
// demos react to, independent of the windowing library that reports them.
package key

// Codes are the physical key codes
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeEscape
	CodeReturnEnter
	CodeSpacebar
	CodeTab

	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodesN
)

// Actions are what happened to a key
type Actions int32

const (
	// Release is sent when the key goes up
	Release Actions = iota

	// Press is sent when the key goes down
	Press

	// Repeat is sent while the key is held down
	Repeat

	ActionsN
)

// Down returns true for the actions sent while the key is down
func (ac Actions) Down() bool {
	return ac == Press || ac == Repeat
}
