// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform represents a single standalone uniform variable.
// See Program.AddUniform to create a new one.
type Uniform struct {
	name   string
	handle int32
	typ    UniType
}

// Name returns name of the uniform
func (un *Uniform) Name() string {
	return un.name
}

// Type returns type of the uniform
func (un *Uniform) Type() UniType {
	return un.typ
}

// Handle returns the location of this uniform in its program,
// -1 until the program is compiled.
func (un *Uniform) Handle() int32 {
	return un.handle
}

// SetValue sets the value of the uniform to given value, which must
// match the uniform type: float32, mgl32.Vec3 or mgl32.Mat4.
// The owning program must be active.
func (un *Uniform) SetValue(val any) error {
	if err := un.checkValue(val); err != nil {
		return err
	}
	if un.handle < 0 {
		return fmt.Errorf("glgpu Uniform %s SetValue: program not compiled", un.name)
	}
	switch v := val.(type) {
	case float32:
		gl.Uniform1f(un.handle, v)
	case mgl32.Vec3:
		gl.Uniform3fv(un.handle, 1, &v[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(un.handle, 1, false, &v[0])
	}
	return nil
}

// checkValue returns an error if val is not of the Go type for this uniform
func (un *Uniform) checkValue(val any) error {
	ok := false
	switch val.(type) {
	case float32:
		ok = un.typ == FUniType
	case mgl32.Vec3:
		ok = un.typ == Vec3fUniType
	case mgl32.Mat4:
		ok = un.typ == Mat4fUniType
	}
	if !ok {
		return fmt.Errorf("glgpu Uniform %s SetValue: %T is not a %s", un.name, val, un.typ.Name())
	}
	return nil
}
