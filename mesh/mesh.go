// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the fixed triangle drawn by the demos
// and the interleaved layout of its vertex data.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"cogentcore.org/gldemo/glgpu"
)

// Attribute names, matching the 'in' variables of the vertex shaders.
const (
	PositionAttrib = "a_Position"
	ColorAttrib    = "a_Color"
)

// Vertex is one vertex: position then color, interleaved in that order.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// Mesh is a list of vertices with the indexes of its triangles
type Mesh struct {
	Vertices []Vertex
	Indexes  []uint32
}

// Triangle returns the single blue / green / red triangle.
func Triangle() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Pos: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},
			{Pos: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},
			{Pos: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},
		},
		Indexes: []uint32{0, 1, 2},
	}
}

// Layout returns the layout of the interleaved vertex data:
// a_Position at offset 0 and a_Color right after it, 6 floats per vertex.
func Layout() glgpu.Layout {
	return glgpu.NewLayout(
		[]string{PositionAttrib, ColorAttrib},
		[]glgpu.VectorType{glgpu.Vec3fVecType, glgpu.Vec3fVecType})
}

// Interleave returns the vertex data packed according to Layout
func (ms *Mesh) Interleave() []float32 {
	data := make([]float32, 0, len(ms.Vertices)*6)
	for _, v := range ms.Vertices {
		data = append(data, v.Pos[:]...)
		data = append(data, v.Color[:]...)
	}
	return data
}
