// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/gldemo/mesh"
	"cogentcore.org/gldemo/shaders"
)

// Triangle draws the mesh with positions used directly as clip coordinates
type Triangle struct {
	*Drawable
}

// NewTriangle builds the program and buffers for the triangle mesh
func NewTriangle() (*Triangle, error) {
	dr, err := newDrawable("triangle", shaders.TriangleVert, shaders.ColorFrag, mesh.Triangle())
	if err != nil {
		return nil, err
	}
	return &Triangle{Drawable: dr}, nil
}

// Render draws one frame
func (tr *Triangle) Render() {
	tr.Draw()
}
