// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Clear clears the given properties of the current render target
func Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// ClearColor sets the color used by Clear
func ClearColor(c color.Color) {
	r, g, b, a := c.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// TrianglesIndexed uses all existing settings to draw count indexes
// from the element buffer bound in the active vertex array.
func TrianglesIndexed(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Version returns the GL version string of the current context
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Init loads the GL function pointers for the current context
func Init() error {
	return gl.Init()
}
