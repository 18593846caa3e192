// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	l, err := LevelFromString("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	l, err = LevelFromString(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	old := UserLevel.Level()
	defer UserLevel.Set(old)
	UserLevel.Set(slog.LevelInfo)

	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, termenv.Ascii))
	lg.Debug("hidden")
	lg.Info("shown", "n", 3)
	assert.Equal(t, "INFO shown n=3\n", b.String())

	b.Reset()
	lg.With("a", 1).WithGroup("g").Info("msg", "k", "two words")
	assert.Equal(t, "INFO msg a=1 g.k=\"two words\"\n", b.String())

	b.Reset()
	lg = slog.New(NewHandler(&b, termenv.ANSI))
	lg.Warn("colored")
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "colored")
}

func TestSetDefault(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	file := filepath.Join(t.TempDir(), "lexmodel.log")
	var b bytes.Buffer
	c, err := SetDefault(&b, file)
	require.NoError(t, err)
	slog.Warn("to both", "k", "v")
	require.NoError(t, c.Close())

	assert.Equal(t, "WARN to both k=v\n", b.String())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to both"`)
	assert.Contains(t, string(data), `"k":"v"`)
}
