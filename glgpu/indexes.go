// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// IndexesBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
// The element array binding is recorded in the currently bound VertexArray.
type IndexesBuffer struct {
	init   bool
	handle uint32
	idxs   []uint32
}

// Set sets the indexes by copying given data
func (ib *IndexesBuffer) Set(idxs []uint32) {
	ib.idxs = make([]uint32, len(idxs))
	copy(ib.idxs, idxs)
}

// Len returns the number of indexes in buffer
func (ib *IndexesBuffer) Len() int {
	return len(ib.idxs)
}

// Indexes returns the indexes (direct copy of internal buffer -- can be modified)
func (ib *IndexesBuffer) Indexes() []uint32 {
	return ib.idxs
}

// Activate binds buffer as active one
func (ib *IndexesBuffer) Activate() {
	if !ib.init {
		gl.GenBuffers(1, &ib.handle)
		ib.init = true
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (ib *IndexesBuffer) Handle() uint32 {
	return ib.handle
}

// Transfer transfers data to GPU -- Activate must have been called with no other
// such buffers activated in between.
func (ib *IndexesBuffer) Transfer() {
	if len(ib.idxs) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(ib.idxs)*TypeBytes(UInt), gl.Ptr(ib.idxs), gl.STATIC_DRAW)
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (ib *IndexesBuffer) Delete() {
	if !ib.init {
		return
	}
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
	ib.init = false
}
