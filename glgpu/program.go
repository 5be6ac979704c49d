// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// shaderOrder is the order in which stages are compiled, so the
// first failing stage is always the one reported
var shaderOrder = []ShaderTypes{VertexShader, FragmentShader}

// Program manages a vertex + fragment shader pair and its uniforms.
// All uniforms must be added before compiling program.
type Program struct {
	init    bool
	handle  uint32
	name    string
	shaders map[ShaderTypes]*Shader
	unis    map[string]*Uniform
}

// NewProgram returns a new Program with given name
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns name of program
func (pr *Program) Name() string {
	return pr.name
}

// AddShader adds shader of given type, unique name and source code.
func (pr *Program) AddShader(typ ShaderTypes, name string, src string) (*Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[ShaderTypes]*Shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, fmt.Errorf("glgpu Program %s AddShader: shader of type %s already added", pr.name, typ)
	}
	sh := NewShader(typ, name, src)
	pr.shaders[typ] = sh
	return sh, nil
}

// ShaderByType returns shader by its type, nil if not added
func (pr *Program) ShaderByType(typ ShaderTypes) *Shader {
	return pr.shaders[typ]
}

// AddUniform adds an individual standalone uniform variable to the program of given type.
// Its location is bound when the program is compiled.
func (pr *Program) AddUniform(name string, typ UniType) *Uniform {
	if pr.unis == nil {
		pr.unis = make(map[string]*Uniform)
	}
	u := &Uniform{name: name, typ: typ, handle: -1}
	pr.unis[name] = u
	return u
}

// UniformByName returns a Uniform based on unique name, nil if not found
func (pr *Program) UniformByName(name string) *Uniform {
	return pr.unis[name]
}

// Compile compiles all the shaders and links the program, then binds the uniforms.
// The first shader compile failure is returned as a *CompileError, and a link
// failure as a *LinkError, each carrying the driver's log.
// Context must be current.
func (pr *Program) Compile() error {
	for _, typ := range shaderOrder {
		if _, has := pr.shaders[typ]; !has {
			return fmt.Errorf("glgpu Program %s Compile: no %s shader", pr.name, typ)
		}
	}
	for _, typ := range shaderOrder {
		if err := pr.shaders[typ].Compile(); err != nil {
			pr.deleteShaders()
			return err
		}
	}

	handle := gl.CreateProgram()
	for _, sh := range pr.shaders {
		gl.AttachShader(handle, sh.handle)
	}
	gl.LinkProgram(handle)

	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
	}
	pr.deleteShaders()

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)

		return &LinkError{Name: pr.name, Log: goString(lg)}
	}

	for _, u := range pr.unis {
		u.handle = gl.GetUniformLocation(handle, gl.Str(cString(u.name)))
		if u.handle < 0 {
			gl.DeleteProgram(handle)
			return fmt.Errorf("glgpu Program %s Compile: uniform %q: %w", pr.name, u.name, ErrNotFound)
		}
	}

	pr.handle = handle
	pr.init = true
	return nil
}

func (pr *Program) deleteShaders() {
	for _, sh := range pr.shaders {
		sh.Delete()
	}
}

// AttribLocation returns the location of the given vertex shader 'in'
// variable. Only valid after Compile.
func (pr *Program) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(pr.handle, gl.Str(cString(name)))
	if loc < 0 {
		return 0, fmt.Errorf("glgpu Program %s: input %q: %w", pr.name, name, ErrNotFound)
	}
	return uint32(loc), nil
}

// Handle returns the handle for the program -- only valid after a Compile call
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate activates this as the active program -- must have been Compiled first.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Delete deletes the GPU resources associated with this program
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
	for _, u := range pr.unis {
		u.handle = -1
	}
}
