// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is a list of GPU data types
type Types int32

const (
	UndefType Types = iota
	Bool
	Int
	UInt
	Float32
	Float64
)

// TypeNames are the GLSL type names
var TypeNames = map[Types]string{
	UndefType: "none",
	Bool:      "bool",
	Int:       "int",
	UInt:      "uint",
	Float32:   "float",
	Float64:   "double",
}

var glTypes = map[Types]uint32{
	UndefType: gl.FLOAT,
	Bool:      gl.BOOL,
	Int:       gl.INT,
	UInt:      gl.UNSIGNED_INT,
	Float32:   gl.FLOAT,
	Float64:   gl.DOUBLE,
}

func (tp Types) String() string {
	return TypeNames[tp]
}

// GLType returns the GL enum for this type
func (tp Types) GLType() uint32 {
	return glTypes[tp]
}

// TypeBytes returns number of bytes for given type -- 4 except Float64 = 8
func TypeBytes(tp Types) int {
	if tp == Float64 {
		return 8
	}
	return 4
}

// ShaderTypes are the shader stages
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

var glShaders = map[ShaderTypes]uint32{
	VertexShader:   gl.VERTEX_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
}

// UniType represents a fully-specified GPU uniform type, including vectors and matricies
type UniType struct {
	// data type
	Type Types

	// if a vector, this is the length of the vector, 0 for scalar (valid values are 2,3,4)
	Vec int

	// square matrix dimensions, if a matrix (valid values are 3,4)
	Mat int
}

// FUniType is a single float32
var FUniType = UniType{Type: Float32}

// Vec3fUniType is a 3-vector of float32
var Vec3fUniType = UniType{Type: Float32, Vec: 3}

// Mat4fUniType is a 4x4 matrix of float32
var Mat4fUniType = UniType{Type: Float32, Mat: 4}

// Name returns the full GLSL type name for the type
func (ty UniType) Name() string {
	if ty.Vec == 0 && ty.Mat == 0 {
		return TypeNames[ty.Type]
	}
	pfx := TypeNames[ty.Type][0:1]
	if ty.Type == Float32 {
		pfx = ""
	}
	if ty.Vec > 0 {
		return fmt.Sprintf("%svec%d", pfx, ty.Vec)
	}
	return fmt.Sprintf("%smat%d", pfx, ty.Mat)
}

// VectorType represents a fully-specified GPU vector type, e.g., for inputs
// to shader programs
type VectorType struct {
	// data type
	Type Types

	// length of vector (valid values are 2,3,4)
	Vec int
}

// Vec3fVecType is a 3-vector of float32
var Vec3fVecType = VectorType{Type: Float32, Vec: 3}

// Bytes returns number of bytes per Vector element (len * 4 basically)
func (ty VectorType) Bytes() int {
	return TypeBytes(ty.Type) * ty.Vec
}

// Attrib is one vertex attribute within an interleaved vertex buffer:
// the 'in' variable name in the vertex shader, its type, and its
// byte offset from the start of each vertex.
type Attrib struct {
	Name   string
	Type   VectorType
	Offset int
}

// Layout describes interleaved vertex data: a list of attributes
// packed one after the other within each vertex.
type Layout struct {
	Attribs []Attrib
}

// NewLayout returns a Layout with the given named attributes packed in order,
// computing the offset of each from the sizes of those before it.
func NewLayout(names []string, types []VectorType) Layout {
	var ly Layout
	off := 0
	for i, nm := range names {
		ly.Attribs = append(ly.Attribs, Attrib{Name: nm, Type: types[i], Offset: off})
		off += types[i].Bytes()
	}
	return ly
}

// Stride returns the number of bytes per vertex
func (ly *Layout) Stride() int {
	st := 0
	for _, at := range ly.Attribs {
		st += at.Type.Bytes()
	}
	return st
}

// Floats returns the number of float32 values per vertex
func (ly *Layout) Floats() int {
	return ly.Stride() / TypeBytes(Float32)
}

// AttribByName returns the attribute of given name, and false if not found
func (ly *Layout) AttribByName(name string) (Attrib, bool) {
	for _, at := range ly.Attribs {
		if at.Name == name {
			return at, true
		}
	}
	return Attrib{}, false
}
