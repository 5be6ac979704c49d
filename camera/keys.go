// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/gldemo/key"
)

// Bases are the camera vectors a Move action can follow
type Bases int32

const (
	Direction Bases = iota
	Right
	Up
)

// ActionKinds are the kinds of camera Action
type ActionKinds int32

const (
	// MoveAction moves the position along a basis
	MoveAction ActionKinds = iota

	// RotateAction rotates the direction about the up vector
	RotateAction
)

// Action is what a bound key does to the camera.
// Basis is only used by MoveAction.
type Action struct {
	Kind  ActionKinds
	Basis Bases
	Sign  float32
}

// Bindings maps keys to the camera action they perform
type Bindings map[key.Codes]Action

// DefaultBindings are the five fixed camera keys:
// W / S forward and back, A / D left and right, Q turns.
var DefaultBindings = Bindings{
	key.CodeW: {Kind: MoveAction, Basis: Direction, Sign: 1},
	key.CodeS: {Kind: MoveAction, Basis: Direction, Sign: -1},
	key.CodeA: {Kind: MoveAction, Basis: Right, Sign: -1},
	key.CodeD: {Kind: MoveAction, Basis: Right, Sign: 1},
	key.CodeQ: {Kind: RotateAction, Sign: 1},
}

// Controller applies key events to a Camera through its Bindings
type Controller struct {
	Camera   *Camera
	Bindings Bindings
}

// NewController returns a controller for the camera using DefaultBindings
func NewController(cm *Camera) *Controller {
	return &Controller{Camera: cm, Bindings: DefaultBindings}
}

// Key handles one key event, returning true if it changed the camera.
// Press and Repeat both apply the bound action; Release is ignored.
func (ct *Controller) Key(code key.Codes, action key.Actions) bool {
	if !action.Down() {
		return false
	}
	ac, ok := ct.Bindings[code]
	if !ok {
		return false
	}
	ct.Camera.Apply(ac)
	return true
}
