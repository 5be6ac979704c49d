// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a keyboard-driven camera: a position, view direction
// and up vector that key events move or rotate in fixed increments, and the
// model / view / projection matrices derived from them each frame.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"cogentcore.org/gldemo/config"
)

// Camera is the mutable camera state. No normalization is applied:
// repeated rotations accumulate floating point error in Direction.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	// distance moved per Move action
	Step float32

	// radians rotated per Rotate action, scaled by the action sign
	Angle float32

	// vertical field of view in degrees
	FOV  float32
	Near float32
	Far  float32
}

// New returns a camera in the initial state given by the config
func New(cf *config.Camera) *Camera {
	return &Camera{
		Position:  cf.Position,
		Direction: cf.Direction,
		Up:        cf.Up,
		Step:      cf.Step,
		Angle:     cf.Angle,
		FOV:       cf.FOV,
		Near:      cf.Near,
		Far:       cf.Far,
	}
}

// Right returns the direction to the right of the view: Direction x Up
func (cm *Camera) Right() mgl32.Vec3 {
	return cm.Direction.Cross(cm.Up)
}

// Basis returns the vector moved along for the given basis
func (cm *Camera) Basis(b Bases) mgl32.Vec3 {
	switch b {
	case Right:
		return cm.Right()
	case Up:
		return cm.Up
	}
	return cm.Direction
}

// Move moves the position by sign * Step along the given basis
func (cm *Camera) Move(b Bases, sign float32) {
	cm.Position = cm.Position.Add(cm.Basis(b).Mul(sign * cm.Step))
}

// Rotate rotates Direction about Up by sign * Angle radians
func (cm *Camera) Rotate(sign float32) {
	rot := mgl32.HomogRotate3D(sign*cm.Angle, cm.Up)
	cm.Direction = rot.Mul4x1(cm.Direction.Vec4(0)).Vec3()
}

// Apply performs the given action on the camera
func (cm *Camera) Apply(ac Action) {
	switch ac.Kind {
	case MoveAction:
		cm.Move(ac.Basis, ac.Sign)
	case RotateAction:
		cm.Rotate(ac.Sign)
	}
}

// Model returns the model matrix, which is always the identity
func (cm *Camera) Model() mgl32.Mat4 {
	return mgl32.Ident4()
}

// View returns the view matrix looking from Position along Direction
func (cm *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(cm.Position, cm.Position.Add(cm.Direction), cm.Up)
}

// Projection returns the perspective projection for the given aspect ratio
func (cm *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cm.FOV), aspect, cm.Near, cm.Far)
}

// Finite returns true if all of the camera vectors have finite components
func (cm *Camera) Finite() bool {
	for _, v := range []mgl32.Vec3{cm.Position, cm.Direction, cm.Up} {
		for _, c := range v {
			if math32.IsNaN(c) || math32.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
