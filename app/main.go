// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"goki.dev/grr"

	"cogentcore.org/gldemo/config"
)

// ExitFailure is the process status for any startup failure
const ExitFailure = -1

// Flags are the optional command line flags of the demo programs
type Flags struct {
	// TOML file overriding the default config
	Config string

	// minimum log level, overriding the config
	LogLevel string
}

// ParseFlags parses the command line arguments (without the program name)
func ParseFlags(name string, args []string) (*Flags, error) {
	fl := &Flags{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&fl.Config, "config", "c", "", "TOML file overriding the default settings")
	fs.StringVar(&fl.LogLevel, "log-level", "", "minimum log level: debug, info, warn or error")
	// parse errors are returned, not printed
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Usage of %s:\n%s", name, fs.FlagUsages())
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%s: unexpected arguments: %v", name, fs.Args())
	}
	return fl, nil
}

// LoadConfig returns the config selected by the flags:
// the defaults, or the named TOML file, with any log level override applied.
func LoadConfig(fl *Flags) (*config.Config, error) {
	cf := config.Default()
	if fl.Config != "" {
		var err error
		if cf, err = config.Open(fl.Config); err != nil {
			return nil, err
		}
	}
	if fl.LogLevel != "" {
		if err := cf.LogLevel.UnmarshalText([]byte(fl.LogLevel)); err != nil {
			return nil, fmt.Errorf("log-level: %w", err)
		}
	}
	return cf, nil
}

// SetLogger makes a text handler on stderr at the given level the default logger
func SetLogger(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Main runs a demo program: it parses the flags, opens the window,
// builds the scene with newScene and renders it until the window is closed.
// It returns the process exit status: 0 on a normal close and
// ExitFailure if anything fails before the frame loop starts, including
// a shader that does not compile or link. Each failure is logged here,
// once; the packages it calls only return errors.
func Main(name string, args []string, newScene func(ap *App) (Scene, error)) int {
	fl, err := ParseFlags(name, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		grr.Log(err)
		return ExitFailure
	}
	cf, err := LoadConfig(fl)
	if err != nil {
		grr.Log(err)
		return ExitFailure
	}
	SetLogger(cf.LogLevel)

	ap, err := New(cf, nil)
	if err != nil {
		grr.Log(err)
		return ExitFailure
	}
	sc, err := newScene(ap)
	if err != nil {
		// the error text of compile and link errors includes the driver log
		grr.Log(err)
		ap.Terminate()
		return ExitFailure
	}
	frames := ap.Run(sc, 0)
	slog.Debug("window closed", "frames", frames)
	ap.Terminate()
	return 0
}
