// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the lexmodel command.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/base/fsx"
	"cogentcore.org/lexmodel/base/indent"
	"cogentcore.org/lexmodel/base/iox/tomlx"
	"cogentcore.org/lexmodel/base/iox/yamlx"
	"cogentcore.org/lexmodel/base/logx"
	"cogentcore.org/lexmodel/reduced/highlight"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
)

// DefaultFile is the config file read when no other is given.
// A missing default file is not an error.
const DefaultFile = "~/.config/lexmodel/config.toml"

// Config is the configuration information for the lexmodel command.
type Config struct {

	// Style is the name of the chroma style used for highlighting.
	Style string `toml:"style" yaml:"style"`

	// TabWidth is the number of spaces per indent level.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// IndentChar is the indentation character, "tab" or "space".
	IndentChar string `toml:"indent_char" yaml:"indent_char"`

	// Language names the reserved-word set: java, go or c.
	Language string `toml:"language" yaml:"language"`

	// Keywords are extra reserved words added to the language set.
	Keywords []string `toml:"keywords,omitempty" yaml:"keywords,omitempty"`

	// LogLevel is the minimum level of log messages shown.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFile, if set, also receives all log messages in JSON form.
	LogFile string `toml:"log_file,omitempty" yaml:"log_file,omitempty"`
}

//go:embed default.toml
var defaultConfig []byte

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	errors.Must(tomlx.ReadBytes(c, defaultConfig))
	return c
}

// Open reads the config from the given file, TOML or YAML by extension.
// The path may start with ~.
func (c *Config) Open(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	switch fileFormat(path) {
	case "toml":
		return tomlx.Open(c, path)
	case "yaml":
		return yamlx.Open(c, path)
	}
	return fmt.Errorf("config: unsupported config file type %q", path)
}

// Save writes the config to the given file, TOML or YAML by extension.
// The path may start with ~.
func (c *Config) Save(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	switch fileFormat(path) {
	case "toml":
		return tomlx.Save(c, path)
	case "yaml":
		return yamlx.Save(c, path)
	}
	return fmt.Errorf("config: unsupported config file type %q", path)
}

// Marshal returns the config encoded as "toml" or "yaml".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return tomlx.WriteBytes(c)
	case "yaml", "yml":
		return yamlx.WriteBytes(c)
	}
	return nil, fmt.Errorf("config: unsupported format %q", format)
}

func fileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// Load returns the default configuration overlaid with [DefaultFile]
// when it exists, and then with file when it is non-empty.
func Load(file string) (*Config, error) {
	c := Default()
	if def := errors.Log1(homedir.Expand(DefaultFile)); def != "" && errors.Ignore1(fsx.FileExists(def)) {
		if err := c.Open(def); err != nil {
			return nil, err
		}
		slog.Debug("config: loaded", "file", def)
	}
	if file != "" {
		if err := c.Open(file); err != nil {
			return nil, err
		}
		slog.Debug("config: loaded", "file", file)
	}
	return c, nil
}

// Merge copies the non-empty fields of o over c.
func (c *Config) Merge(o *Config) error {
	return copier.CopyWithOption(c, o, copier.Option{IgnoreEmpty: true, DeepCopy: true})
}

// KeywordSet returns the reserved words of the configured language
// together with the extra keywords.
func (c *Config) KeywordSet() (highlight.Keywords, error) {
	base, err := highlight.KeywordsFor(c.Language)
	if err != nil {
		return nil, err
	}
	kw := highlight.NewKeywords(base.Words()...)
	kw.Add(c.Keywords...)
	return kw, nil
}

// IndentPolicy returns the configured indentation policy.
func (c *Config) IndentPolicy() (indent.Policy, error) {
	ich, err := indent.ParseCharacter(c.IndentChar)
	if err != nil {
		return indent.DefaultPolicy, err
	}
	return indent.Policy{Char: ich, Width: max(c.TabWidth, 1)}, nil
}

// ApplyLogging sets [logx.UserLevel] from LogLevel.
func (c *Config) ApplyLogging() error {
	l, err := logx.LevelFromString(c.LogLevel)
	if err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	logx.UserLevel.Set(l)
	return nil
}
