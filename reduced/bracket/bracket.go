// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bracket is the brace-matching layer of the reduced model.
// It reads the token list shared with the [shadow] layer and only
// considers matchable tokens: brackets whose shadow state is free.
package bracket

import (
	"fmt"

	"cogentcore.org/lexmodel/reduced/shadow"
	"cogentcore.org/lexmodel/reduced/token"
	"cogentcore.org/lexmodel/reduced/tokenlist"
)

// Layer matches brackets over a token list.
type Layer struct {
	// List is the token list, shared with the shadow layer.
	List *tokenlist.List

	// Shadow is the shadow layer that keeps token states current.
	Shadow *shadow.Layer
}

// New returns a new [Layer] that shares the list of the given shadow layer.
func New(sh *shadow.Layer) *Layer {
	return &Layer{List: sh.List, Shadow: sh}
}

// Insert inserts one of { } ( ) [ ] at the cursor. Brackets never fuse
// with their neighbors; the shadow layer re-derives the state of the new
// token and of everything after it.
func (ly *Layer) Insert(c tokenlist.Cursor, ch rune) (tokenlist.Cursor, error) {
	t, ok := token.ForRune(ch)
	if !ok || !t.IsBracket() {
		return c, fmt.Errorf("%w: %q is not a bracket", token.ErrInvalidLexeme, ch)
	}
	return ly.Shadow.Insert(c, t), nil
}

// PreviousBrace returns the distance from the cursor back to the start of
// the nearest matchable bracket before it, or -1 if there is none.
func (ly *Layer) PreviousBrace(c tokenlist.Cursor) int {
	dist := c.Offset()
	for it := c.Prev(); !it.AtStart(); it = it.Prev() {
		tk := it.Token()
		dist += tk.Size()
		if tk.IsMatchable() {
			return dist
		}
	}
	return -1
}

// NextBrace returns the distance from the cursor forward to the start of
// the nearest matchable bracket at or after it, or -1 if there is none.
// A bracket immediately to the right of the cursor is at distance 0.
func (ly *Layer) NextBrace(c tokenlist.Cursor) int {
	dist := 0
	it := c
	if c.Offset() > 0 {
		dist = c.Token().Size() - c.Offset()
		it = c.Next()
	}
	for ; !it.AtEnd(); it = it.Next() {
		tk := it.Token()
		if tk.IsMatchable() {
			return dist
		}
		dist += tk.Size()
	}
	return -1
}

// BalanceForward matches the open bracket immediately to the right of the
// cursor with its closing partner, and returns the distance from the
// cursor to just past that partner. It returns -1 when there is no
// matchable open bracket at the cursor, when brackets of different kinds
// cross, or when the end of the text is reached first.
func (ly *Layer) BalanceForward(c tokenlist.Cursor) int {
	if c.AtEnd() || c.AtStart() || c.Offset() != 0 {
		return -1
	}
	if tk := c.Token(); !tk.IsMatchable() || !tk.IsOpen() {
		return -1
	}
	var stack []token.Type
	dist := 0
	for it := c; !it.AtEnd(); it = it.Next() {
		tk := it.Token()
		dist += tk.Size()
		if !tk.IsMatchable() {
			continue
		}
		if tk.IsOpen() {
			stack = append(stack, tk.Type())
			continue
		}
		if !stack[len(stack)-1].Matches(tk.Type()) {
			return -1
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return dist
		}
	}
	return -1
}

// BalanceBackward is the mirror of [Layer.BalanceForward]: it matches the
// closing bracket immediately to the left of the cursor with its open
// partner, and returns the distance back to the start of that partner,
// or -1.
func (ly *Layer) BalanceBackward(c tokenlist.Cursor) int {
	if c.Offset() != 0 {
		return -1
	}
	start := c.Prev()
	if start.AtStart() {
		return -1
	}
	if tk := start.Token(); !tk.IsMatchable() || !tk.IsClosed() {
		return -1
	}
	var stack []token.Type
	dist := 0
	for it := start; !it.AtStart(); it = it.Prev() {
		tk := it.Token()
		dist += tk.Size()
		if !tk.IsMatchable() {
			continue
		}
		if tk.IsClosed() {
			stack = append(stack, tk.Type())
			continue
		}
		if !stack[len(stack)-1].Matches(tk.Type()) {
			return -1
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return dist
		}
	}
	return -1
}
