// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a named attribute or uniform
// is not active in a linked program.
var ErrNotFound = errors.New("glgpu: name not found in program")

// CompileError is returned when the driver rejects a shader.
// Log is the driver's info log for the shader.
type CompileError struct {
	Name string
	Type ShaderTypes
	Log  string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("glgpu: failed to compile %s shader %q:\n%s", ce.Type, ce.Name, ce.Log)
}

// LinkError is returned when the driver fails to link a program.
// Log is the driver's info log for the program.
type LinkError struct {
	Name string
	Log  string
}

func (le *LinkError) Error() string {
	return fmt.Sprintf("glgpu: failed to link program %q:\n%s", le.Name, le.Log)
}
