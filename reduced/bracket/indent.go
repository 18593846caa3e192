// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bracket

import (
	"cogentcore.org/lexmodel/reduced/token"
	"cogentcore.org/lexmodel/reduced/tokenlist"
)

// DistToPreviousNewline returns the distance from the position rel
// characters before the cursor back to the newline that precedes it,
// counting the newline itself, or -1 if there is no such newline.
func (ly *Layer) DistToPreviousNewline(c tokenlist.Cursor, rel int) int {
	if rel != 0 {
		var err error
		if c, err = c.Move(-rel); err != nil {
			return -1
		}
	}
	dist := c.Offset()
	for it := c.Prev(); !it.AtStart(); it = it.Prev() {
		tk := it.Token()
		dist += tk.Size()
		if tk.Is(token.Newline) {
			return dist
		}
	}
	return -1
}

// DistToNextNewline returns the distance from the cursor forward to the
// next newline, or to the end of the text if there is none.
func (ly *Layer) DistToNextNewline(c tokenlist.Cursor) int {
	dist := 0
	it := c
	if c.Offset() > 0 {
		dist = c.Token().Size() - c.Offset()
		it = c.Next()
	}
	for ; !it.AtEnd(); it = it.Next() {
		tk := it.Token()
		if tk.Is(token.Newline) {
			return dist
		}
		dist += tk.Size()
	}
	return dist
}

// DistToEnclosingBrace finds the innermost matchable open bracket that is
// still unmatched at the start of the cursor's line. It returns the
// distance from the cursor back to the start of that bracket and its
// type, or -1 and [token.Empty] when the line is not enclosed.
func (ly *Layer) DistToEnclosingBrace(c tokenlist.Cursor) (int, token.Type) {
	dist := c.Offset()
	it := c.Prev()
	for ; !it.AtStart(); it = it.Prev() {
		tk := it.Token()
		dist += tk.Size()
		if tk.Is(token.Newline) {
			break
		}
	}
	if it.AtStart() {
		return -1, token.Empty
	}
	var stack []token.Type
	for it = it.Prev(); !it.AtStart(); it = it.Prev() {
		tk := it.Token()
		dist += tk.Size()
		if !tk.IsMatchable() {
			continue
		}
		if tk.IsClosed() {
			stack = append(stack, tk.Type())
			continue
		}
		if len(stack) == 0 {
			return dist, tk.Type()
		}
		if !stack[len(stack)-1].Matches(tk.Type()) {
			return -1, token.Empty
		}
		stack = stack[:len(stack)-1]
	}
	return -1, token.Empty
}
