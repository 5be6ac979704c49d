// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings shared by the demo programs.
// The defaults reproduce the fixed window and camera of the demos;
// a TOML file can override any subset of them.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
type Config struct {

	// the window title
	Title string

	// the window width in screen coordinates
	Width int

	// the window height in screen coordinates
	Height int

	// the OpenGL context version, always a core profile
	GL GL

	// the initial camera state and its key-press increments (camera demo only)
	Camera Camera

	// the minimum level of log messages written to stderr
	LogLevel slog.Level
}

// GL is the requested OpenGL context version
type GL struct {
	Major int
	Minor int
}

// Camera holds the initial camera vectors, the movement step and rotation
// angle applied per key event, and the perspective projection parameters.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	// distance moved per key event
	Step float32

	// radians rotated about Up per key event
	Angle float32

	// vertical field of view in degrees
	FOV float32

	Near float32
	Far  float32
}

// Default returns the fixed settings of the demos
func Default() *Config {
	return &Config{
		Title:  "OpenGL",
		Width:  1280,
		Height: 720,
		GL:     GL{Major: 3, Minor: 3},
		Camera: Camera{
			Position:  mgl32.Vec3{0, 0, 2},
			Direction: mgl32.Vec3{0, 0, -1},
			Up:        mgl32.Vec3{0, 1, 0},
			Step:      0.05,
			Angle:     0.05,
			FOV:       45,
			Near:      0.1,
			Far:       100,
		},
		LogLevel: slog.LevelInfo,
	}
}

// Aspect returns the width / height ratio of the window
func (cf *Config) Aspect() float32 {
	return float32(cf.Width) / float32(cf.Height)
}

// Open returns the defaults overridden by the TOML file at path.
// Keys not present in the file keep their default values.
func Open(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cf := Default()
	if err := toml.Unmarshal(b, cf); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cf, nil
}

// Save writes the config to the TOML file at path
func (cf *Config) Save(path string) error {
	b, err := toml.Marshal(cf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate returns an error describing every setting that cannot
// produce a window or a usable projection.
func (cf *Config) Validate() error {
	var errs []error
	if cf.Width <= 0 || cf.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cf.Width, cf.Height))
	}
	if cf.GL.Major < 3 || (cf.GL.Major == 3 && cf.GL.Minor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is below the required 3.3 core profile", cf.GL.Major, cf.GL.Minor))
	}
	cm := &cf.Camera
	scalars := []struct {
		name string
		val  float32
	}{{"step", cm.Step}, {"angle", cm.Angle}, {"FOV", cm.FOV}, {"near", cm.Near}, {"far", cm.Far}}
	for _, sc := range scalars {
		if math32.IsNaN(sc.val) || math32.IsInf(sc.val, 0) {
			errs = append(errs, fmt.Errorf("camera %s %g must be finite", sc.name, sc.val))
		}
	}
	if !(cm.Step > 0) {
		errs = append(errs, fmt.Errorf("camera step %g must be positive", cm.Step))
	}
	if !(cm.FOV > 0 && cm.FOV < 180) {
		errs = append(errs, fmt.Errorf("camera FOV %g must be within (0, 180) degrees", cm.FOV))
	}
	if !(cm.Near > 0 && cm.Near < cm.Far) {
		errs = append(errs, fmt.Errorf("camera near %g must be positive and less than far %g", cm.Near, cm.Far))
	}
	for _, v := range []mgl32.Vec3{cm.Position, cm.Direction, cm.Up} {
		if !finite(v) {
			errs = append(errs, fmt.Errorf("camera vector %v must be finite", v))
		}
	}
	if cm.Direction.Len() == 0 || cm.Up.Len() == 0 {
		errs = append(errs, errors.New("camera direction and up must be non-zero"))
	} else if cm.Direction.Cross(cm.Up).Len() == 0 {
		// LookAtV has no right vector to build the view from
		errs = append(errs, fmt.Errorf("camera direction %v must not be parallel to up %v", cm.Direction, cm.Up))
	}
	return errors.Join(errs...)
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
