// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a single colored triangle
// until the window is closed.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/gldemo/app"
	"cogentcore.org/gldemo/scene"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("triangle", os.Args[1:], func(ap *app.App) (app.Scene, error) {
		tr, err := scene.NewTriangle()
		if err != nil {
			return nil, err
		}
		return tr, nil
	}))
}
