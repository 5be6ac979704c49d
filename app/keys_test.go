// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/gldemo/camera"
	"cogentcore.org/gldemo/key"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeW, GlfwKeyCode(glfw.KeyW))
	assert.Equal(t, key.CodeQ, GlfwKeyCode(glfw.KeyQ))
	assert.Equal(t, key.CodeUpArrow, GlfwKeyCode(glfw.KeyUp))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyF12))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyUnknown))

	// every camera binding is reachable from a glfw key
	reached := map[key.Codes]bool{}
	for _, cd := range glfwKeyCodes {
		assert.False(t, reached[cd], "code %d mapped twice", cd)
		reached[cd] = true
	}
	for cd := range camera.DefaultBindings {
		assert.True(t, reached[cd], "code %d", cd)
	}
}

func TestGlfwAction(t *testing.T) {
	assert.Equal(t, key.Press, GlfwAction(glfw.Press))
	assert.Equal(t, key.Repeat, GlfwAction(glfw.Repeat))
	assert.Equal(t, key.Release, GlfwAction(glfw.Release))
}
