// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

//go:generate core generate

import (
	"fmt"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32 //enums:enum

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// ParseCharacter returns the Character named "tab" or "space".
func ParseCharacter(s string) (Character, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab", "tabs", "":
		return Tab, nil
	case "space", "spaces":
		return Space, nil
	}
	return Tab, fmt.Errorf("indent: unknown indent character %q", s)
}

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Len returns the length of the indent string given indent character and indent level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * width
}

// Leading returns the leading spaces and tabs of line.
func Leading(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// Policy decides the indentation of new lines.
type Policy struct {
	// Char is the character indentation is made of.
	Char Character

	// Width is the number of spaces per level, and the
	// width a tab counts for when reading existing indentation.
	Width int
}

// DefaultPolicy indents with one tab per level, tabs 4 wide.
var DefaultPolicy = Policy{Char: Tab, Width: 4}

// Level returns the indent level of the leading whitespace of line.
// A tab counts as Width columns; partial levels round down.
func (p Policy) Level(line string) int {
	w := max(p.Width, 1)
	cols := 0
	for _, r := range Leading(line) {
		if r == '\t' {
			cols += w - cols%w
		} else {
			cols++
		}
	}
	return cols / w
}

// String returns the indent string for n levels.
func (p Policy) String(n int) string {
	return String(p.Char, max(n, 0), max(p.Width, 1))
}

// ForLine returns the indentation for a line inside the bracket that
// opens on braceLine: one level deeper than braceLine, or the same
// level when the line starts by closing that bracket.
func (p Policy) ForLine(braceLine string, closing bool) string {
	n := p.Level(braceLine)
	if !closing {
		n++
	}
	return p.String(n)
}
