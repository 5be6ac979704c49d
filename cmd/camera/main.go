// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command camera draws a single colored triangle through a camera
// moved with the keyboard: W / S forward and back, A / D left and right,
// and Q to turn.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/gldemo/app"
	"cogentcore.org/gldemo/camera"
	"cogentcore.org/gldemo/scene"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("camera", os.Args[1:], func(ap *app.App) (app.Scene, error) {
		cm := camera.New(&ap.Config.Camera)
		ap.SetKeyHandler(camera.NewController(cm).Key)
		cs, err := scene.NewCamera(cm, ap.Aspect)
		if err != nil {
			return nil, err
		}
		return cs, nil
	}))
}
