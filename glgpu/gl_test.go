// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVert = `#version 330 core
in vec3 a_Position;
in vec3 a_Color;
uniform mat4 u_View;
out vec3 v_Color;
void main() {
	gl_Position = u_View * vec4(a_Position, 1.0);
	v_Color = a_Color;
}
`

const testFrag = `#version 330 core
in vec3 v_Color;
out vec4 f_Color;
void main() {
	f_Color = vec4(v_Color, 1.0);
}
`

// newTestContext makes a hidden window with a current 3.3 core context,
// skipping the test if there is no display or driver to provide one.
func newTestContext(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		t.Skip("no display available for OpenGL:", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	w, err := glfw.CreateWindow(64, 64, "test", nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		t.Skip("no OpenGL 3.3 core context available:", err)
	}
	w.MakeContextCurrent()
	if err := Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		t.Skip("OpenGL functions not available:", err)
	}
	t.Cleanup(func() {
		w.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
	})
}

func newTestProgram(t *testing.T, vert, frag string) (*Program, error) {
	pr := NewProgram("test")
	_, err := pr.AddShader(VertexShader, "test.vert", vert)
	require.NoError(t, err)
	_, err = pr.AddShader(FragmentShader, "test.frag", frag)
	require.NoError(t, err)
	return pr, pr.Compile()
}

func TestProgramCompile(t *testing.T) {
	newTestContext(t)
	pr, err := newTestProgram(t, testVert, testFrag)
	require.NoError(t, err)
	defer pr.Delete()
	assert.NotZero(t, pr.Handle())

	_, err = pr.AttribLocation("a_Position")
	assert.NoError(t, err)
	_, err = pr.AttribLocation("a_Normal")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramCompileFailure(t *testing.T) {
	newTestContext(t)
	_, err := newTestProgram(t, "#version 330 core\nvoid main() { this is not glsl }\n", testFrag)
	require.Error(t, err)
	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, VertexShader, ce.Type)
	assert.NotEmpty(t, ce.Log)
}

func TestProgramCompileFailureOrder(t *testing.T) {
	newTestContext(t)
	bad := "#version 330 core\nvoid main() { this is not glsl }\n"
	for i := 0; i < 4; i++ {
		_, err := newTestProgram(t, bad, bad)
		var ce *CompileError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, VertexShader, ce.Type)
		assert.Equal(t, "test.vert", ce.Name)
	}
}

func TestProgramLinkFailure(t *testing.T) {
	newTestContext(t)
	// compiles on its own, but a program needs a main in every stage
	frag := `#version 330 core
in vec3 v_Color;
out vec4 f_Color;
vec4 shade() {
	return vec4(v_Color, 1.0);
}
`
	pr, err := newTestProgram(t, testVert, frag)
	var le *LinkError
	require.True(t, errors.As(err, &le), "got %v", err)
	assert.Equal(t, "test", le.Name)
	assert.NotEmpty(t, le.Log)
	assert.Zero(t, pr.Handle())
}

func TestProgramMissingUniform(t *testing.T) {
	newTestContext(t)
	pr := NewProgram("test")
	pr.AddShader(VertexShader, "test.vert", testVert)
	pr.AddShader(FragmentShader, "test.frag", testFrag)
	pr.AddUniform("u_Projection", Mat4fUniType)
	assert.ErrorIs(t, pr.Compile(), ErrNotFound)
	assert.Zero(t, pr.Handle())
}

func TestUniformSetValue(t *testing.T) {
	newTestContext(t)
	pr := NewProgram("test")
	pr.AddShader(VertexShader, "test.vert", testVert)
	pr.AddShader(FragmentShader, "test.frag", testFrag)
	u := pr.AddUniform("u_View", Mat4fUniType)
	require.NoError(t, pr.Compile())
	defer pr.Delete()
	assert.GreaterOrEqual(t, u.Handle(), int32(0))

	pr.Activate()
	assert.NoError(t, u.SetValue(mgl32.Ident4()))
	var got [16]float32
	gl.GetUniformfv(pr.Handle(), u.Handle(), &got[0])
	assert.Equal(t, [16]float32(mgl32.Ident4()), got)
}

func TestBuffersLayout(t *testing.T) {
	newTestContext(t)
	pr, err := newTestProgram(t, testVert, testFrag)
	require.NoError(t, err)
	defer pr.Delete()

	var va VertexArray
	va.Activate()
	defer va.Delete()

	var vb VectorsBuffer
	vb.SetLayout(NewLayout([]string{"a_Position", "a_Color"}, []VectorType{Vec3fVecType, Vec3fVecType}))
	require.NoError(t, vb.Set([]float32{
		-0.5, -0.5, 0, 0, 0, 1,
		0, 0.5, 0, 0, 1, 0,
		0.5, -0.5, 0, 1, 0, 0,
	}))
	vb.Activate()
	vb.Transfer()
	require.NoError(t, vb.BindAttribs(pr))
	defer vb.Delete()

	var ib IndexesBuffer
	ib.Set([]uint32{0, 1, 2})
	ib.Activate()
	ib.Transfer()
	defer ib.Delete()

	wantOffset := map[string]uintptr{"a_Position": 0, "a_Color": 12}
	for name, off := range wantOffset {
		loc, err := pr.AttribLocation(name)
		require.NoError(t, err)
		var stride, size, enabled int32
		gl.GetVertexAttribiv(loc, gl.VERTEX_ATTRIB_ARRAY_STRIDE, &stride)
		gl.GetVertexAttribiv(loc, gl.VERTEX_ATTRIB_ARRAY_SIZE, &size)
		gl.GetVertexAttribiv(loc, gl.VERTEX_ATTRIB_ARRAY_ENABLED, &enabled)
		var ptr unsafe.Pointer
		gl.GetVertexAttribPointerv(loc, gl.VERTEX_ATTRIB_ARRAY_POINTER, &ptr)
		assert.Equal(t, int32(24), stride, name)
		assert.Equal(t, int32(3), size, name)
		assert.Equal(t, int32(gl.TRUE), enabled, name)
		assert.Equal(t, off, uintptr(ptr), name)
	}

	got := make([]uint32, 3)
	gl.GetBufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, 3*4, gl.Ptr(got))
	assert.Equal(t, []uint32{0, 1, 2}, got)

	Clear(true, false)
	pr.Activate()
	TrianglesIndexed(ib.Len())
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}
