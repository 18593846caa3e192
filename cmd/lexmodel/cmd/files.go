// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the lexmodel tool.
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/lexmodel/base/fsx"
	"cogentcore.org/lexmodel/cmd/lexmodel/config"
	"cogentcore.org/lexmodel/reduced/document"
	"cogentcore.org/lexmodel/reduced/highlight"
	"github.com/muesli/termenv"
)

// NewDocument returns a new document set up from the config.
func NewDocument(c *config.Config) (*document.Document, error) {
	d := document.New()
	kw, err := c.KeywordSet()
	if err != nil {
		return nil, err
	}
	d.Keywords = kw
	if d.Indent, err = c.IndentPolicy(); err != nil {
		return nil, err
	}
	return d, nil
}

// OpenDocument reads the given file into a new document.
func OpenDocument(c *config.Config, file string) (*document.Document, error) {
	d, err := NewDocument(c)
	if err != nil {
		return nil, err
	}
	text, err := fsx.ReadText(file)
	if err != nil {
		return nil, err
	}
	d.SetText(text)
	return d, nil
}

// Tokens writes the tokens of the file, one per line: position,
// size, lexeme and shadow state.
func Tokens(c *config.Config, w io.Writer, file string) error {
	d, err := OpenDocument(c, file)
	if err != nil {
		return err
	}
	pos := 0
	for _, ti := range d.Model().Tokens() {
		lex := "gap"
		if !ti.Gap {
			lex = strconv.Quote(ti.Text)
		}
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%v\n", pos, ti.Size, lex, ti.State); err != nil {
			return err
		}
		pos += ti.Size
	}
	return nil
}

// Highlight writes the file with comments, quotes and keywords styled
// for the given terminal profile.
func Highlight(c *config.Config, w io.Writer, file string, profile termenv.Profile) error {
	d, err := OpenDocument(c, file)
	if err != nil {
		return err
	}
	return render(c, w, d, profile)
}

func render(c *config.Config, w io.Writer, d *document.Document, profile termenv.Profile) error {
	runs, err := d.Highlight(0, d.Len())
	if err != nil {
		return err
	}
	return highlight.Render(w, []rune(d.Text()), runs, highlight.Style(c.Style), profile)
}

// LineStart returns the position of the first character of the given
// 1-based line of d.
func LineStart(d *document.Document, line int) (int, error) {
	if line < 1 {
		return 0, fmt.Errorf("line %d: lines start at 1", line)
	}
	ln := 1
	for i, r := range []rune(d.Text()) {
		if ln == line {
			return i, nil
		}
		if r == '\n' {
			ln++
		}
	}
	if ln == line {
		return d.Len(), nil
	}
	return 0, fmt.Errorf("line %d: past last line %d", line, ln)
}

// Indent writes the indentation distances and indent string for the
// start of the given 1-based line of the file.
func Indent(c *config.Config, w io.Writer, file string, line int) error {
	d, err := OpenDocument(c, file)
	if err != nil {
		return err
	}
	pos, err := LineStart(d, line)
	if err != nil {
		return err
	}
	ii, err := d.IndentInfo(pos)
	if err != nil {
		return err
	}
	s, err := d.IndentString(pos)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\nindent %q\n", ii, s)
	return err
}

// Balance writes the position of the bracket matching the one at pos
// in the file, or -1.
func Balance(c *config.Config, w io.Writer, file string, pos int) error {
	d, err := OpenDocument(c, file)
	if err != nil {
		return err
	}
	partner, err := d.Balance(pos)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, partner)
	return err
}
