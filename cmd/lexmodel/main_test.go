// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"cogentcore.org/lexmodel/base/logx"
	"cogentcore.org/lexmodel/cmd/lexmodel/config"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	old, oldLevel := slog.Default(), logx.UserLevel.Level()
	defer func() {
		slog.SetDefault(old)
		logx.UserLevel.Set(oldLevel)
	}()
	var b bytes.Buffer
	root := newRootCmd()
	root.SetOut(&b)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return b.String()
}

func TestVerbosityFlags(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	assert.Contains(t, run(t, "config", "--format", "yaml"), "log_level: info")
	assert.Contains(t, run(t, "config", "--format", "yaml", "-v"), "log_level: INFO")
	assert.Contains(t, run(t, "config", "--format", "yaml", "-q"), "log_level: ERROR")
	assert.Contains(t, run(t, "config", "--format", "yaml", "--vv", "-q"), "log_level: DEBUG")
	assert.Contains(t, run(t, "config", "--format", "yaml", "--log-level", "warn", "-v"), "log_level: INFO")
}

func TestConfigSave(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	file := filepath.Join(t.TempDir(), "lex.toml")
	assert.Empty(t, run(t, "config", "--style", "vim", "--save", file))
	c, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "vim", c.Style)
	assert.Equal(t, "java", c.Language)
}
