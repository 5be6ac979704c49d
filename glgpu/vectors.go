// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray manages a vertex array object, which records the
// attribute pointers and the element buffer used for drawing.
type VertexArray struct {
	init   bool
	handle uint32
}

// Activate binds the vertex array, creating it on first use
func (va *VertexArray) Activate() {
	if !va.init {
		gl.GenVertexArrays(1, &va.handle)
		va.init = true
	}
	gl.BindVertexArray(va.handle)
}

// Handle returns the unique handle for this vertex array -- only valid after Activate()
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Delete deletes the GPU resources associated with this vertex array
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	gl.DeleteVertexArrays(1, &va.handle)
	va.handle = 0
	va.init = false
}

// VectorsBuffer manages an interleaved buffer of float32 vertex data
// (GL_ARRAY_BUFFER) described by a Layout.
type VectorsBuffer struct {
	init   bool
	handle uint32
	layout Layout
	data   []float32
}

// SetLayout sets the attribute layout of the data
func (vb *VectorsBuffer) SetLayout(ly Layout) {
	vb.layout = ly
}

// Layout returns the attribute layout of the data
func (vb *VectorsBuffer) Layout() Layout {
	return vb.layout
}

// Set sets the interleaved data by copying it. The length must be a
// whole number of vertices according to the layout.
func (vb *VectorsBuffer) Set(data []float32) error {
	nf := vb.layout.Floats()
	if nf == 0 || len(data)%nf != 0 {
		return fmt.Errorf("glgpu VectorsBuffer Set: %d floats is not a multiple of stride %d", len(data), nf)
	}
	vb.data = make([]float32, len(data))
	copy(vb.data, data)
	return nil
}

// Len returns the number of vertices in the buffer
func (vb *VectorsBuffer) Len() int {
	nf := vb.layout.Floats()
	if nf == 0 {
		return 0
	}
	return len(vb.data) / nf
}

// Activate binds buffer as active one
func (vb *VectorsBuffer) Activate() {
	if !vb.init {
		gl.GenBuffers(1, &vb.handle)
		vb.init = true
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (vb *VectorsBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer transfers data to GPU -- Activate must have been called with no other
// such buffers activated in between.
func (vb *VectorsBuffer) Transfer() {
	if len(vb.data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vb.data)*TypeBytes(Float32), gl.Ptr(vb.data), gl.STATIC_DRAW)
}

// BindAttribs describes each layout attribute to the currently bound
// vertex array, looking up locations by name in the given program,
// and enables them. The buffer must be active.
func (vb *VectorsBuffer) BindAttribs(pr *Program) error {
	stride := int32(vb.layout.Stride())
	for _, at := range vb.layout.Attribs {
		loc, err := pr.AttribLocation(at.Name)
		if err != nil {
			return err
		}
		gl.VertexAttribPointer(loc, int32(at.Type.Vec), at.Type.Type.GLType(), false, stride, gl.PtrOffset(at.Offset))
		gl.EnableVertexAttribArray(loc)
	}
	return nil
}

// Delete deletes the GPU resources associated with this buffer
func (vb *VectorsBuffer) Delete() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	vb.handle = 0
	vb.init = false
}
