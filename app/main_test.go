// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gldemo/config"
)

func TestParseFlags(t *testing.T) {
	fl, err := ParseFlags("test", nil)
	require.NoError(t, err)
	assert.Equal(t, &Flags{}, fl)

	fl, err = ParseFlags("test", []string{"-c", "a.toml", "--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "a.toml", fl.Config)
	assert.Equal(t, "debug", fl.LogLevel)

	_, err = ParseFlags("test", []string{"extra"})
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = ParseFlags("test", []string{"--bogus"})
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cf, err := LoadConfig(&Flags{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cf)

	cf, err = LoadConfig(&Flags{LogLevel: "warn"})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cf.LogLevel)

	_, err = LoadConfig(&Flags{LogLevel: "loud"})
	assert.ErrorContains(t, err, "log-level")

	fn := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Title = \"From file\"\n"), 0o644))
	cf, err = LoadConfig(&Flags{Config: fn, LogLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, "From file", cf.Title)
	assert.Equal(t, slog.LevelError, cf.LogLevel)
}

func TestMainBadFlags(t *testing.T) {
	called := false
	code := Main("test", []string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, func(ap *App) (Scene, error) {
		called = true
		return nil, nil
	})
	assert.Equal(t, ExitFailure, code)
	assert.False(t, called)

	assert.Equal(t, ExitFailure, Main("test", []string{"stray"}, nil))
	assert.Equal(t, 0, Main("test", []string{"--help"}, nil))
}

func TestMainLogsOnce(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	fn := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Width = -1\n"), 0o644))
	tests := [][]string{
		{"--config", filepath.Join(t.TempDir(), "missing.toml")},
		{"--config", fn},
		{"--bogus"},
		{"stray"},
	}
	for _, args := range tests {
		buf.Reset()
		assert.Equal(t, ExitFailure, Main("test", args, nil), args)
		assert.Equal(t, 1, strings.Count(buf.String(), "level=ERROR"), "%v: %s", args, buf.String())
	}
}
