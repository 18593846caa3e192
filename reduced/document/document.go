// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document provides a minimal text document that owns a
// [reduced.Model] and keeps it in lockstep with its text, moving the
// model cursor to each edit position before applying the edit.
package document

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"cogentcore.org/lexmodel/base/indent"
	"cogentcore.org/lexmodel/reduced"
	"cogentcore.org/lexmodel/reduced/highlight"
	"cogentcore.org/lexmodel/reduced/token"
)

// Document is a text buffer with its reduced model.
type Document struct {
	// Keywords are the reserved words split out by [Document.Highlight].
	Keywords highlight.Keywords

	// Indent is the indentation policy used by [Document.IndentString].
	Indent indent.Policy

	text  []rune
	model *reduced.Model
}

// New returns a new empty [Document] with the Java reserved words
// and the default indentation policy.
func New() *Document {
	return &Document{
		Keywords: highlight.Java,
		Indent:   indent.DefaultPolicy,
		model:    reduced.New(),
	}
}

// SetText replaces the whole text, rebuilding the model.
func (d *Document) SetText(s string) {
	d.text = []rune(s)
	d.model.Reset()
	d.model.InsertString(s)
	slog.Debug("document: set text", "length", len(d.text))
}

// Text returns the text.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the number of characters in the text.
func (d *Document) Len() int {
	return len(d.text)
}

// Model returns the reduced model of the text.
func (d *Document) Model() *reduced.Model {
	return d.model
}

// seek moves the model cursor to pos.
func (d *Document) seek(pos int) error {
	if pos < 0 || pos > len(d.text) {
		return fmt.Errorf("%w: position %d of %d", token.ErrOutOfRange, pos, len(d.text))
	}
	return d.model.Move(pos - d.model.AbsOffset())
}

// Insert inserts s at pos.
func (d *Document) Insert(pos int, s string) error {
	if err := d.seek(pos); err != nil {
		return err
	}
	d.model.InsertString(s)
	d.text = slices.Insert(d.text, pos, []rune(s)...)
	return nil
}

// Delete removes n characters starting at pos.
func (d *Document) Delete(pos, n int) error {
	if n < 0 || pos+n > len(d.text) {
		return fmt.Errorf("%w: delete [%d:%d] of %d", token.ErrOutOfRange, pos, pos+n, len(d.text))
	}
	if err := d.seek(pos); err != nil {
		return err
	}
	if err := d.model.Delete(n); err != nil {
		return err
	}
	d.text = slices.Delete(d.text, pos, pos+n)
	return nil
}

// Highlight returns the highlighting runs of [start, start+n), with
// reserved words split out of the free runs.
func (d *Document) Highlight(start, n int) ([]highlight.Status, error) {
	runs, err := d.model.HighlightStatus(start, n)
	if err != nil {
		return nil, err
	}
	return highlight.SplitKeywords(runs, d.text, d.Keywords), nil
}

// IndentInfo returns the indentation distances at pos.
func (d *Document) IndentInfo(pos int) (reduced.IndentInfo, error) {
	if err := d.seek(pos); err != nil {
		return reduced.IndentInfo{}, err
	}
	return d.model.IndentInfo(), nil
}

// IndentString returns the indentation for the line starting at pos:
// one level deeper than the line holding the enclosing bracket, or the
// same level when the line begins with the bracket's closing partner.
// Lines not enclosed by any bracket get no indentation.
func (d *Document) IndentString(pos int) (string, error) {
	ii, err := d.IndentInfo(pos)
	if err != nil || !ii.HasBrace() {
		return "", err
	}
	start := 0
	if ii.DistToNewline >= 0 {
		start = pos - ii.DistToNewline + 1
	}
	line := d.line(start)
	rest := strings.TrimLeft(string(d.text[pos:]), " \t")
	closing := false
	if rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		if ty, ok := token.ForRune(r); ok {
			closing = ii.BraceType.Matches(ty)
		}
	}
	return d.Indent.ForLine(line, closing), nil
}

// line returns the text of the line starting at start, without the newline.
func (d *Document) line(start int) string {
	end := start
	for end < len(d.text) && d.text[end] != '\n' {
		end++
	}
	return string(d.text[start:end])
}

// Balance returns the position of the bracket matching the one at pos:
// the open bracket right at pos is matched forward, otherwise the closing
// bracket just before pos is matched backward. It returns -1 when there
// is no match.
func (d *Document) Balance(pos int) (int, error) {
	if err := d.seek(pos); err != nil {
		return -1, err
	}
	if f := d.model.BalanceForward(); f >= 0 {
		return pos + f - 1, nil
	}
	if b := d.model.BalanceBackward(); b >= 0 {
		return pos - b, nil
	}
	return -1, nil
}
