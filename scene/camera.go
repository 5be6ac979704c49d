// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"goki.dev/grr"

	"cogentcore.org/gldemo/camera"
	"cogentcore.org/gldemo/mesh"
	"cogentcore.org/gldemo/shaders"
)

// Uniform names in the camera vertex shader
const (
	ModelUniform      = "u_Model"
	ViewUniform       = "u_View"
	ProjectionUniform = "u_Projection"
)

// Camera draws the mesh through the model / view / projection
// matrices of a camera, recomputed every frame.
type Camera struct {
	*Drawable

	Camera *camera.Camera

	// Aspect returns the current width / height ratio for the projection
	Aspect func() float32
}

// NewCamera builds the program and buffers for the triangle mesh, drawn
// through the given camera
func NewCamera(cm *camera.Camera, aspect func() float32) (*Camera, error) {
	dr, err := newDrawable("camera", shaders.CameraVert, shaders.ColorFrag, mesh.Triangle(),
		ModelUniform, ViewUniform, ProjectionUniform)
	if err != nil {
		return nil, err
	}
	return &Camera{Drawable: dr, Camera: cm, Aspect: aspect}, nil
}

// SetMatrices uploads the model, view and projection matrices
// of the current camera state
func (cs *Camera) SetMatrices() error {
	pr := cs.Program
	pr.Activate()
	if err := pr.UniformByName(ModelUniform).SetValue(cs.Camera.Model()); err != nil {
		return err
	}
	if err := pr.UniformByName(ViewUniform).SetValue(cs.Camera.View()); err != nil {
		return err
	}
	return pr.UniformByName(ProjectionUniform).SetValue(cs.Camera.Projection(cs.Aspect()))
}

// Render draws one frame
func (cs *Camera) Render() {
	grr.Log(cs.SetMatrices())
	cs.Draw()
}
