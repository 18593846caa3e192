// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reduced provides the reduced lexical model of a source text
// buffer: an incremental, cursor-addressable token structure that knows,
// for every position, whether it is plain code or inside a string or a
// comment, and that matches brackets, all while the text is edited one
// character at a time.
//
// The owning text document calls [Model] on every edit, keeping the
// model's cursor in lockstep with its own by calling [Model.Move] after
// any jump. The model only sees characters, never lines or files.
package reduced

import (
	"fmt"
	"strings"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/reduced/bracket"
	"cogentcore.org/lexmodel/reduced/highlight"
	"cogentcore.org/lexmodel/reduced/shadow"
	"cogentcore.org/lexmodel/reduced/token"
	"cogentcore.org/lexmodel/reduced/tokenlist"
)

// Model composes the shadow and bracket layers over one token list and
// one cursor.
type Model struct {
	list   *tokenlist.List
	cursor tokenlist.Cursor
	shadow *shadow.Layer
	braces *bracket.Layer

	// pos is the absolute position of cursor.
	pos int
}

// New returns a new empty [Model] with the cursor at the start.
func New() *Model {
	m := &Model{list: tokenlist.New()}
	m.shadow = shadow.New(m.list)
	m.braces = bracket.New(m.shadow)
	m.cursor = m.list.Start()
	return m
}

// Reset clears the model.
func (m *Model) Reset() {
	m.list.Reset()
	m.cursor = m.list.Start()
	m.pos = 0
}

// InsertChar inserts one character at the cursor and moves the cursor
// past it.
func (m *Model) InsertChar(ch rune) {
	c, err := m.insert(ch)
	if errors.Log(err) != nil {
		return
	}
	m.cursor = c
	m.pos++
}

func (m *Model) insert(ch rune) (tokenlist.Cursor, error) {
	switch ch {
	case '{', '}', '(', ')', '[', ']':
		return m.braces.Insert(m.cursor, ch)
	case '/', '*', '\\':
		return m.shadow.InsertSpecial(m.cursor, ch)
	case '"', '\'':
		return m.shadow.InsertQuote(m.cursor, ch)
	case '\n':
		return m.shadow.InsertNewline(m.cursor), nil
	}
	return m.shadow.InsertGap(m.cursor, 1)
}

// InsertString inserts each character of s in turn.
func (m *Model) InsertString(s string) {
	for _, r := range s {
		m.InsertChar(r)
	}
}

// InsertGap inserts n ordinary characters at the cursor.
func (m *Model) InsertGap(n int) error {
	c, err := m.shadow.InsertGap(m.cursor, n)
	if err != nil {
		return err
	}
	m.cursor = c
	m.pos += n
	return nil
}

// Delete removes count characters: forward from the cursor when count is
// positive, backward when negative. The cursor ends at the deletion
// point. A span past either end of the text is an [token.ErrOutOfRange].
func (m *Model) Delete(count int) error {
	c, err := m.shadow.Delete(m.cursor, count)
	if err != nil {
		return err
	}
	m.cursor = c
	m.pos += min(count, 0)
	return nil
}

// Move moves the cursor by count characters without changing any token.
// Moving past either end of the text is an [token.ErrOutOfRange].
func (m *Model) Move(count int) error {
	c, err := m.cursor.Move(count)
	if err != nil {
		return err
	}
	m.cursor = c
	m.pos += count
	return nil
}

// AbsOffset returns the absolute position of the cursor.
func (m *Model) AbsOffset() int {
	return m.pos
}

// Length returns the number of characters the model covers.
func (m *Model) Length() int {
	return m.list.Length()
}

// StateAtCurrent returns the shadow state at the cursor.
func (m *Model) StateAtCurrent() token.State {
	return m.shadow.StateAt(m.cursor)
}

// BalanceForward returns the distance from the cursor to just past the
// partner of the open bracket right of the cursor, or -1.
func (m *Model) BalanceForward() int {
	return m.braces.BalanceForward(m.cursor)
}

// BalanceBackward returns the distance from the cursor back to the
// partner of the closing bracket left of the cursor, or -1.
func (m *Model) BalanceBackward() int {
	return m.braces.BalanceBackward(m.cursor)
}

// PreviousBrace returns the distance back to the previous matchable
// bracket, or -1.
func (m *Model) PreviousBrace() int {
	return m.braces.PreviousBrace(m.cursor)
}

// NextBrace returns the distance forward to the next matchable bracket,
// or -1.
func (m *Model) NextBrace() int {
	return m.braces.NextBrace(m.cursor)
}

// DistToPreviousNewline returns the distance from rel characters before
// the cursor back to the preceding newline, or -1.
func (m *Model) DistToPreviousNewline(rel int) int {
	return m.braces.DistToPreviousNewline(m.cursor, rel)
}

// DistToNextNewline returns the distance to the next newline, or to the
// end of the text.
func (m *Model) DistToNextNewline() int {
	return m.braces.DistToNextNewline(m.cursor)
}

// DistToEnclosingBrace returns the distance back to the open bracket
// enclosing the cursor's line and its type, or -1 and [token.Empty].
func (m *Model) DistToEnclosingBrace() (int, token.Type) {
	return m.braces.DistToEnclosingBrace(m.cursor)
}

// IndentInfo returns the distances an indentation policy needs at the
// cursor. See [IndentInfo].
func (m *Model) IndentInfo() IndentInfo {
	ii := IndentInfo{
		DistToNewline:     -1,
		DistToPrevNewline: m.braces.DistToPreviousNewline(m.cursor, 0),
	}
	ii.DistToBrace, ii.BraceType = m.braces.DistToEnclosingBrace(m.cursor)
	if ii.DistToBrace >= 0 {
		if nl := m.braces.DistToPreviousNewline(m.cursor, ii.DistToBrace); nl >= 0 {
			ii.DistToNewline = ii.DistToBrace + nl
		}
	}
	return ii
}

// HighlightStatus returns the highlighting runs of the characters
// [start, start+length): maximal runs of one shadow state, with comment
// and quote delimiters taking the state they open or close. Keywords
// are not split out, since the model does not hold the text; see
// [highlight.SplitKeywords].
func (m *Model) HighlightStatus(start, length int) ([]highlight.Status, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: highlight length %d", token.ErrOutOfRange, length)
	}
	c, err := m.list.CursorAt(start)
	if err != nil {
		return nil, err
	}
	var runs []highlight.Status
	pos, end := start, start+length
	for pos < end && !c.AtEnd() {
		tk := c.Token()
		n := min(tk.Size()-c.Offset(), end-pos)
		runs = highlight.Append(runs, pos, n, highlight.KindOf(shadow.Display(tk)))
		pos += n
		c = c.Next()
	}
	if pos < end {
		return runs, fmt.Errorf("%w: highlight [%d:%d] past end %d", token.ErrOutOfRange, start, end, pos)
	}
	return runs, nil
}

// TokenInfo describes one token for diagnostics.
type TokenInfo struct {
	// Text is the lexeme of a brace, and "" for a gap.
	Text string

	// Size is the number of characters covered.
	Size int

	// Gap is true for a run of ordinary characters.
	Gap bool

	// State is the shadow state of the token.
	State token.State
}

// Tokens returns a description of every token, in order.
func (m *Model) Tokens() []TokenInfo {
	tks := m.list.Tokens()
	ti := make([]TokenInfo, len(tks))
	for i := range tks {
		tk := &tks[i]
		ti[i] = TokenInfo{Text: tk.Text(), Size: tk.Size(), Gap: tk.IsGap(), State: tk.State}
	}
	return ti
}

// String returns the tokens and the cursor position in debugging form.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString(m.list.String())
	fmt.Fprintf(&b, " @%d", m.pos)
	return b.String()
}
