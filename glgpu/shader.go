// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader manages a single shader stage
type Shader struct {
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// NewShader returns a new shader of given type, unique name and source code.
// It is not compiled until Compile is called.
func NewShader(typ ShaderTypes, name, src string) *Shader {
	return &Shader{name: name, typ: typ, src: src}
}

// Name returns the unique name of this shader
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the type of the shader
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code for the shader
// excluding any null terminator.
func (sh *Shader) Source() string {
	return strings.TrimSuffix(sh.src, "\x00")
}

// Compile compiles the source code for the shader.
// On failure the driver's info log is returned in a *CompileError,
// and the failed shader object is released.
// Context must be current.
func (sh *Shader) Compile() error {
	handle := gl.CreateShader(glShaders[sh.typ])

	csources, free := gl.Strs(cString(sh.src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		return &CompileError{Name: sh.name, Type: sh.typ, Log: goString(msg)}
	}

	sh.handle = handle
	sh.init = true
	return nil
}

// Handle returns the GPU handle for this shader, 0 if not compiled
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Delete deletes the shader
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}

// cString returns a null-terminated string if not already
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns the string up to the first null terminator
func goString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
