// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app manages the window system for the demos: it initializes glfw,
// opens the single window with its OpenGL core context, loads the GL
// functions, and runs the frame loop until the window is closed.
// All of its functions must be called from the main thread,
// which must be locked with runtime.LockOSThread.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/gldemo/config"
	"cogentcore.org/gldemo/glgpu"
	"cogentcore.org/gldemo/key"
)

var (
	// ErrGLFW is returned when the windowing system cannot be initialized
	ErrGLFW = errors.New("failed to initialize GLFW")

	// ErrWindow is returned when the window or its context cannot be created
	ErrWindow = errors.New("failed to create window")

	// ErrGLLoader is returned when the GL functions cannot be loaded
	ErrGLLoader = errors.New("failed to initialize OpenGL function loader")
)

// FPSInterval is how often the frame rate is logged, at debug level
var FPSInterval = 10 * time.Second

// Scene is something the frame loop renders once per frame
type Scene interface {
	Render()
}

// App is the window and its current OpenGL context
type App struct {
	Window *glfw.Window
	Config *config.Config
}

// Options are extra settings for New beyond the config
type Options struct {
	// Hidden creates the window without showing it, for offscreen tests
	Hidden bool
}

// New initializes glfw and returns an App with a new window whose context
// is current. On failure the returned error wraps ErrGLFW, ErrWindow or
// ErrGLLoader, and glfw has already been terminated.
func New(cf *config.Config, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGLFW, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cf.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cf.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cf.Width, cf.Height, cf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrWindow, err)
	}
	window.MakeContextCurrent()

	if err := glgpu.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrGLLoader, err)
	}
	slog.Debug("opened window", "title", cf.Title, "width", cf.Width, "height", cf.Height, "gl", glgpu.Version())

	return &App{Window: window, Config: cf}, nil
}

// SetKeyHandler sets the function called for key events during event polling.
// Keys without a code are passed as key.CodeUnknown. The handler returns
// true if it used the event.
func (ap *App) SetKeyHandler(fun func(code key.Codes, action key.Actions) bool) {
	ap.Window.SetKeyCallback(func(w *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		cd, ac := GlfwKeyCode(ky), GlfwAction(action)
		if fun(cd, ac) {
			slog.Debug("key handled", "code", cd, "action", ac)
		}
	})
}

// Aspect returns the width / height ratio of the window framebuffer
func (ap *App) Aspect() float32 {
	w, h := ap.Window.GetFramebufferSize()
	if h == 0 {
		return ap.Config.Aspect()
	}
	return float32(w) / float32(h)
}

// Run polls events, renders the scene and presents it, once per frame,
// until the window is marked to close or maxFrames frames have been
// rendered (no limit if maxFrames <= 0). It returns the number of frames.
func (ap *App) Run(sc Scene, maxFrames int) int {
	frames := 0
	frameCount := 0
	stTime := time.Now()
	for !ap.Window.ShouldClose() {
		glfw.PollEvents()
		sc.Render()
		ap.Window.SwapBuffers()

		frames++
		frameCount++
		eTime := time.Now()
		dur := eTime.Sub(stTime)
		if dur > FPSInterval {
			fps := float64(frameCount) / dur.Seconds()
			slog.Debug("frame rate", "fps", fmt.Sprintf("%.0f", fps))
			frameCount = 0
			stTime = eTime
		}
		if maxFrames > 0 && frames >= maxFrames {
			break
		}
	}
	return frames
}

// Terminate destroys the window and shuts down glfw.
// Call as the last thing before quitting.
func (ap *App) Terminate() {
	ap.Window.Destroy()
	glfw.Terminate()
}
