// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders holds the GLSL 330 core sources for the demos.
package shaders

import _ "embed"

// TriangleVert passes position and color straight through.
//
//go:embed triangle.vert
var TriangleVert string

// CameraVert transforms position by the u_Model, u_View
// and u_Projection uniforms.
//
//go:embed camera.vert
var CameraVert string

// ColorFrag outputs the interpolated vertex color.
//
//go:embed color.frag
var ColorFrag string
