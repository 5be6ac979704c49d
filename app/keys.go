// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/gldemo/key"
)

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA: key.CodeA,
	glfw.KeyB: key.CodeB,
	glfw.KeyC: key.CodeC,
	glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE,
	glfw.KeyF: key.CodeF,
	glfw.KeyG: key.CodeG,
	glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI,
	glfw.KeyJ: key.CodeJ,
	glfw.KeyK: key.CodeK,
	glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM,
	glfw.KeyN: key.CodeN,
	glfw.KeyO: key.CodeO,
	glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ,
	glfw.KeyR: key.CodeR,
	glfw.KeyS: key.CodeS,
	glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU,
	glfw.KeyV: key.CodeV,
	glfw.KeyW: key.CodeW,
	glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY,
	glfw.KeyZ: key.CodeZ,

	glfw.KeyEscape: key.CodeEscape,
	glfw.KeyEnter:  key.CodeReturnEnter,
	glfw.KeySpace:  key.CodeSpacebar,
	glfw.KeyTab:    key.CodeTab,

	glfw.KeyRight: key.CodeRightArrow,
	glfw.KeyLeft:  key.CodeLeftArrow,
	glfw.KeyDown:  key.CodeDownArrow,
	glfw.KeyUp:    key.CodeUpArrow,
}

// GlfwKeyCode returns the key code for a glfw key,
// key.CodeUnknown for keys the demos have no code for.
func GlfwKeyCode(ky glfw.Key) key.Codes {
	return glfwKeyCodes[ky]
}

// GlfwAction returns the key action for a glfw action
func GlfwAction(action glfw.Action) key.Actions {
	switch action {
	case glfw.Press:
		return key.Press
	case glfw.Repeat:
		return key.Repeat
	}
	return key.Release
}
