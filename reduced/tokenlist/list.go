// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokenlist provides the mutable token sequence of the reduced
// model. Tokens live in an arena addressed by stable indices, linked by
// explicit prev / next fields, so a [Cursor] is a plain (index, offset)
// value that can be copied freely.
package tokenlist

import (
	"fmt"
	"strings"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/reduced/token"
)

// head and tail are the before-start and after-end sentinels.
const (
	head = 0
	tail = 1
)

type node struct {
	tok        token.Token
	prev, next int
}

// List is an ordered sequence of tokens whose sizes sum to the length
// of the text it covers.
type List struct {
	nodes []node

	// free holds recycled arena slots.
	free []int

	// count is the number of live tokens.
	count int
}

// New returns a new empty [List].
func New() *List {
	l := &List{}
	l.Reset()
	return l
}

// Reset removes all tokens.
func (l *List) Reset() {
	l.nodes = []node{{prev: -1, next: tail}, {prev: head, next: -1}}
	l.free = l.free[:0]
	l.count = 0
}

// Len returns the number of tokens.
func (l *List) Len() int {
	return l.count
}

// Length returns the number of characters covered by all tokens.
func (l *List) Length() int {
	n := 0
	for i := l.nodes[head].next; i != tail; i = l.nodes[i].next {
		n += l.nodes[i].tok.Size()
	}
	return n
}

// Start returns a cursor on the first token, which is the end
// position for an empty list.
func (l *List) Start() Cursor {
	return Cursor{list: l, at: l.nodes[head].next}
}

// End returns the cursor after the last token.
func (l *List) End() Cursor {
	return Cursor{list: l, at: tail}
}

// CursorAt returns a cursor at the given absolute character position.
func (l *List) CursorAt(pos int) (Cursor, error) {
	if pos < 0 {
		return l.Start(), fmt.Errorf("%w: position %d", token.ErrOutOfRange, pos)
	}
	return l.Start().Move(pos)
}

// Tokens returns a copy of the tokens, in order.
func (l *List) Tokens() []token.Token {
	tks := make([]token.Token, 0, l.count)
	for i := l.nodes[head].next; i != tail; i = l.nodes[i].next {
		tks = append(tks, l.nodes[i].tok)
	}
	return tks
}

// String returns the tokens in debugging form.
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := l.nodes[head].next; i != tail; i = l.nodes[i].next {
		if i != l.nodes[head].next {
			b.WriteByte(' ')
		}
		b.WriteString(l.nodes[i].tok.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List) alloc(tok token.Token) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node{tok: tok}
		return i
	}
	l.nodes = append(l.nodes, node{tok: tok})
	return len(l.nodes) - 1
}

// insertBefore links a new node holding tok before node at
// and returns its index.
func (l *List) insertBefore(at int, tok token.Token) int {
	if at == head {
		at = l.nodes[head].next
	}
	i := l.alloc(tok)
	p := l.nodes[at].prev
	l.nodes[i].prev = p
	l.nodes[i].next = at
	l.nodes[p].next = i
	l.nodes[at].prev = i
	l.count++
	return i
}

// unlink removes node i and returns the index that followed it.
func (l *List) unlink(i int) int {
	nd := l.nodes[i]
	l.nodes[nd.prev].next = nd.next
	l.nodes[nd.next].prev = nd.prev
	l.nodes[i] = node{prev: -1, next: -1}
	l.free = append(l.free, i)
	l.count--
	return nd.next
}

// Insert inserts tok immediately before the cursor's current token. The
// returned cursor is past the new token, still on the same current token.
// A cursor before the start inserts at the start.
func (l *List) Insert(c Cursor, tok token.Token) Cursor {
	if c.at == head {
		c = c.Next()
	}
	l.insertBefore(c.at, tok)
	return c
}

// Remove deletes the current token and returns a cursor on the token
// that followed it. Sentinel positions are left unchanged.
func (l *List) Remove(c Cursor) Cursor {
	if c.at == head || c.at == tail {
		return c
	}
	return Cursor{list: l, at: l.unlink(c.at)}
}

// Collapse removes every token strictly between the current tokens
// of from and to, which must be in that order.
func (l *List) Collapse(from, to Cursor) {
	if from.at == tail {
		return
	}
	i := l.nodes[from.at].next
	for i != to.at && i != tail {
		i = l.unlink(i)
	}
}

// Break splits the current token at the cursor offset so that the cursor
// lands on a token boundary. A gap is cut in two; a two-character brace is
// split into its single-character lexemes. The returned cursor is on the
// second half with offset 0. A cursor already at offset 0 is returned as is.
func (l *List) Break(c Cursor) Cursor {
	if c.offset == 0 || c.at == head || c.at == tail {
		return c
	}
	tk := &l.nodes[c.at].tok
	var rest token.Token
	if tk.IsGap() {
		rest = token.NewGap(tk.Size() - c.offset)
		errors.Log(tk.Shrink(rest.Size()))
	} else {
		first, second, ok := tk.Type().Split()
		if !ok {
			return c
		}
		errors.Log(tk.SetType(first))
		rest = token.Brace(second)
	}
	rest.State = tk.State
	next := l.nodes[c.at].next
	i := l.insertBefore(next, rest)
	return Cursor{list: l, at: i}
}

// SplitBrace splits the current token of c, a two-character brace, into
// its single-character lexemes and returns a cursor on the second one.
// Any other token is left alone.
func (l *List) SplitBrace(c Cursor) Cursor {
	if tk := c.Token(); tk == nil || !tk.IsMultiChar() {
		return c
	}
	c.offset = 1
	return l.Break(c)
}

// trim removes the characters [from, to) of the token at index i,
// removing the token when nothing is left of it.
func (l *List) trim(i, from, to int) {
	tk := &l.nodes[i].tok
	sz := tk.Size()
	if from <= 0 && to >= sz {
		l.unlink(i)
		return
	}
	if tk.IsGap() {
		errors.Log(tk.Shrink(to - from))
		return
	}
	first, second, ok := tk.Type().Split()
	if !ok {
		return
	}
	if from == 0 {
		errors.Log(tk.SetType(second))
	} else {
		errors.Log(tk.SetType(first))
	}
}

// Delete removes the characters between the two cursors, which must be
// in document order. Whole tokens in between are collapsed and the two
// boundary tokens are shrunk, or un-fused when they are two-character
// braces. Shadow states are not re-derived.
func (l *List) Delete(from, to Cursor) {
	if from.at == to.at {
		if from.at != tail && to.offset > from.offset {
			l.trim(from.at, from.offset, to.offset)
		}
		return
	}
	l.Collapse(from, to)
	if to.at != tail && to.offset > 0 {
		l.trim(to.at, 0, to.offset)
	}
	if from.at != head && from.at != tail {
		l.trim(from.at, from.offset, l.nodes[from.at].tok.Size())
	}
}
