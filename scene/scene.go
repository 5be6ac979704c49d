// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the two demo renderers: Triangle, which draws
// the mesh as-is, and Camera, which draws it through a movable camera.
// Both build all of their GPU resources once, in their constructor,
// and must be used with the GL context current.
package scene

import (
	"image/color"

	"cogentcore.org/gldemo/glgpu"
	"cogentcore.org/gldemo/mesh"
)

// Drawable is a mesh uploaded to the GPU together with the program that draws it
type Drawable struct {
	Program *glgpu.Program
	Array   glgpu.VertexArray
	Vectors glgpu.VectorsBuffer
	Indexes glgpu.IndexesBuffer
}

// newDrawable compiles a program from the given vertex and fragment sources,
// with the given matrix uniforms, and uploads the mesh. On error all GPU
// resources created so far are released.
func newDrawable(name, vert, frag string, ms *mesh.Mesh, uniforms ...string) (*Drawable, error) {
	pr := glgpu.NewProgram(name)
	if _, err := pr.AddShader(glgpu.VertexShader, name+".vert", vert); err != nil {
		return nil, err
	}
	if _, err := pr.AddShader(glgpu.FragmentShader, name+".frag", frag); err != nil {
		return nil, err
	}
	for _, u := range uniforms {
		pr.AddUniform(u, glgpu.Mat4fUniType)
	}
	if err := pr.Compile(); err != nil {
		return nil, err
	}
	pr.Activate()

	dr := &Drawable{Program: pr}
	dr.Array.Activate()

	dr.Vectors.SetLayout(mesh.Layout())
	if err := dr.Vectors.Set(ms.Interleave()); err != nil {
		dr.Delete()
		return nil, err
	}
	dr.Vectors.Activate()
	dr.Vectors.Transfer()
	if err := dr.Vectors.BindAttribs(pr); err != nil {
		dr.Delete()
		return nil, err
	}

	dr.Indexes.Set(ms.Indexes)
	dr.Indexes.Activate()
	dr.Indexes.Transfer()

	glgpu.ClearColor(color.Black)
	return dr, nil
}

// Draw clears the color buffer and draws all of the indexes
func (dr *Drawable) Draw() {
	glgpu.Clear(true, false)
	dr.Program.Activate()
	dr.Array.Activate()
	glgpu.TrianglesIndexed(dr.Indexes.Len())
}

// Delete releases the GPU resources
func (dr *Drawable) Delete() {
	dr.Indexes.Delete()
	dr.Vectors.Delete()
	dr.Array.Delete()
	dr.Program.Delete()
}
