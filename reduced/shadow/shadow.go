// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadow is the comment / quote layer of the reduced model.
// It keeps the shadow state of every token correct and keeps the
// two-character lexemes // /* */ \\ \" \' fused or split according to
// the state they start in, re-deriving states forward after each edit.
package shadow

import (
	"fmt"
	"log/slog"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/reduced/token"
	"cogentcore.org/lexmodel/reduced/tokenlist"
)

// Layer maintains the shadow states of a token list.
type Layer struct {
	// List is the token list, shared with the bracket layer.
	List *tokenlist.List
}

// New returns a new [Layer] over the given list.
func New(l *tokenlist.List) *Layer {
	return &Layer{List: l}
}

// StateBefore returns the state in force at the start of the current
// token of c: the state after the previous token.
func (ly *Layer) StateBefore(c tokenlist.Cursor) token.State {
	if pt := c.PrevToken(); pt != nil {
		return After(pt)
	}
	return token.Free
}

// StateAt returns the shadow state at the cursor position, which is the
// state a character typed there would be lexed in. Inside a token it is
// the token's own state.
func (ly *Layer) StateAt(c tokenlist.Cursor) token.State {
	if c.Offset() > 0 {
		return c.Token().State
	}
	return ly.StateBefore(c)
}

// InsertSpecial inserts one of the characters that can fuse with a
// neighbor into a two-character lexeme: '/', '*' or '\\'.
func (ly *Layer) InsertSpecial(c tokenlist.Cursor, ch rune) (tokenlist.Cursor, error) {
	switch ch {
	case '/', '*', '\\':
		t, _ := token.ForRune(ch)
		return ly.Insert(c, t), nil
	}
	return c, fmt.Errorf("%w: %q is not a special character", token.ErrInvalidLexeme, ch)
}

// InsertQuote inserts a ' or " character.
func (ly *Layer) InsertQuote(c tokenlist.Cursor, ch rune) (tokenlist.Cursor, error) {
	switch ch {
	case '"', '\'':
		t, _ := token.ForRune(ch)
		return ly.Insert(c, t), nil
	}
	return c, fmt.Errorf("%w: %q is not a quote", token.ErrInvalidLexeme, ch)
}

// InsertNewline inserts a line feed.
func (ly *Layer) InsertNewline(c tokenlist.Cursor) tokenlist.Cursor {
	return ly.Insert(c, token.Newline)
}

// Insert inserts a single-character brace of type t at the cursor and
// returns the cursor just past it, with shadow states re-derived.
func (ly *Layer) Insert(c tokenlist.Cursor, t token.Type) tokenlist.Cursor {
	if c.AtStart() {
		c = c.Next()
	}
	at, ok := before(c)
	l := ly.List
	switch {
	case l.Len() == 0 || c.AtEnd():
		ly.insertAtBoundary(c, t)
	case c.Offset() > 0 && !c.Token().IsGap():
		// inside a two-character brace: split it and insert between the halves
		c = l.Break(c)
		ly.insertAtBoundary(c, t)
	case c.Offset() > 0:
		c = l.Break(c)
		l.Insert(c, token.Brace(t))
	default:
		if c.Token().IsMultiChar() {
			l.SplitBrace(c)
		}
		ly.insertAtBoundary(c, t)
	}
	return ly.settle(at, ok, 1)
}

// insertAtBoundary inserts t at a cursor with offset 0, fusing it into
// the preceding token when the two make a lexeme in the state the
// preceding token starts in.
func (ly *Layer) insertAtBoundary(c tokenlist.Cursor, t token.Type) {
	if pt := c.PrevToken(); pt != nil && !pt.IsGap() {
		if ft, ok := token.Combine(pt.Type(), t, ly.StateBefore(c.Prev())); ok {
			errors.Log(pt.SetType(ft))
			return
		}
	}
	ly.List.Insert(c, token.Brace(t))
}

// InsertGap inserts n ordinary characters at the cursor, growing an
// adjacent gap when there is one.
func (ly *Layer) InsertGap(c tokenlist.Cursor, n int) (tokenlist.Cursor, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: gap of %d", token.ErrOutOfRange, n)
	}
	if n == 0 {
		return c, nil
	}
	at, ok := before(c)
	l := ly.List
	switch {
	case c.Offset() > 0 && c.Token().IsGap():
		errors.Log(c.Token().Grow(n))
	case c.Offset() > 0:
		c = l.Break(c)
		l.Insert(c, token.NewGap(n))
	default:
		if pt := c.PrevToken(); pt != nil && pt.IsGap() {
			errors.Log(pt.Grow(n))
		} else if tk := c.Token(); tk != nil && tk.IsGap() {
			errors.Log(tk.Grow(n))
		} else {
			l.Insert(c, token.NewGap(n))
		}
	}
	return ly.settle(at, ok, n), nil
}

// Delete removes count characters at the cursor, forward when count is
// positive and backward when negative, and returns the cursor at the
// deletion point. Deleting past either end of the text is an
// [token.ErrOutOfRange] and changes nothing.
func (ly *Layer) Delete(c tokenlist.Cursor, count int) (tokenlist.Cursor, error) {
	if count == 0 {
		return c, nil
	}
	from, to := c, c
	var err error
	if count > 0 {
		to, err = c.Move(count)
	} else {
		from, err = c.Move(count)
	}
	if err != nil {
		return c, fmt.Errorf("delete %d: %w", count, err)
	}
	at, ok := before(from)
	ly.List.Delete(from, to)
	return ly.settle(at, ok, 0), nil
}

// before returns a cursor on the character just before c, and false
// when c is at the start of the text. The token it is on keeps its
// place in the list through an edit at c, since edits only change the
// characters from c on.
func before(c tokenlist.Cursor) (tokenlist.Cursor, bool) {
	b, err := c.Move(-1)
	return b, err == nil
}

// settle re-derives shadow states starting at the token of at, which
// holds the character before the edit, and returns the cursor n
// characters past the edit position. With ok false the edit was at the
// start of the text. Only the tokens from at onward are visited.
func (ly *Layer) settle(at tokenlist.Cursor, ok bool, n int) tokenlist.Cursor {
	if !ok {
		ly.Walk(ly.List.Start())
		return ly.cursorFrom(ly.List.Start(), n)
	}
	start := at.TokenStart()
	ly.Walk(start)
	return ly.cursorFrom(start, at.Offset()+1+n)
}

func (ly *Layer) cursorFrom(start tokenlist.Cursor, n int) tokenlist.Cursor {
	c, err := start.Move(n)
	if err != nil {
		slog.Error("shadow: cursor lost after edit", "err", err)
		return ly.List.End()
	}
	return c
}

// Walk re-derives shadow states from the start of the current token of c
// to the end of the list. Along the way it drops empty tokens, merges
// adjacent gaps, splits two-character lexemes that are not valid in the
// state they start in, and fuses single characters that form a lexeme.
func (ly *Layer) Walk(c tokenlist.Cursor) {
	l := ly.List
	c = c.TokenStart()
	if c.AtStart() {
		c = c.Next()
	}
	st := ly.StateBefore(c)
	splits, merges := 0, 0
	for !c.AtEnd() {
		tk := c.Token()
		switch {
		case tk.Size() == 0:
			c = l.Remove(c)
			continue
		case tk.IsGap():
			if nt := c.NextToken(); nt != nil && nt.IsGap() {
				errors.Log(tk.Grow(nt.Size()))
				l.Remove(c.Next())
				merges++
				continue
			}
		case tk.IsMultiChar() && !tk.Type().ValidIn(st):
			l.SplitBrace(c)
			splits++
			continue
		case ly.fuse(c, st):
			merges++
			continue
		}
		st = Transition(st, c.Token())
		c = c.Next()
	}
	if splits > 0 || merges > 0 {
		slog.Debug("shadow walk", "splits", splits, "merges", merges)
	}
}

// fuse merges the single-character brace at c with the first character
// of the following brace when they form a lexeme in state st.
func (ly *Layer) fuse(c tokenlist.Cursor, st token.State) bool {
	tk := c.Token()
	if tk.IsGap() || tk.IsMultiChar() {
		return false
	}
	nt := c.NextToken()
	if nt == nil || nt.IsGap() {
		return false
	}
	ft, ok := token.Combine(tk.Type(), nt.Type().First(), st)
	if !ok {
		return false
	}
	next := c.Next()
	if nt.IsMultiChar() {
		ly.List.SplitBrace(next)
	}
	errors.Log(c.Token().SetType(ft))
	ly.List.Remove(next)
	return true
}
