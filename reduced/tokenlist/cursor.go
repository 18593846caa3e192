// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokenlist

import (
	"fmt"

	"cogentcore.org/lexmodel/reduced/token"
)

// Cursor is a position in a [List]: the current token plus an offset into
// it. Offset 0 means the position between the previous token and the
// current one. The offset is always less than the size of the current
// token. Cursors are values and may be copied freely.
type Cursor struct {
	list   *List
	at     int
	offset int
}

// Offset returns the offset into the current token.
func (c Cursor) Offset() int {
	return c.offset
}

// AtStart is true for the before-start sentinel position.
func (c Cursor) AtStart() bool {
	return c.at == head
}

// AtEnd is true for the after-end position.
func (c Cursor) AtEnd() bool {
	return c.at == tail
}

// Token returns the current token, or nil at a sentinel. The pointer is
// only valid until the next insertion into the list.
func (c Cursor) Token() *token.Token {
	if c.at == head || c.at == tail {
		return nil
	}
	return &c.list.nodes[c.at].tok
}

// PrevToken returns the token before the current one, or nil.
func (c Cursor) PrevToken() *token.Token {
	if c.at == head {
		return nil
	}
	p := c.list.nodes[c.at].prev
	if p == head {
		return nil
	}
	return &c.list.nodes[p].tok
}

// NextToken returns the token after the current one, or nil.
func (c Cursor) NextToken() *token.Token {
	if c.at == tail {
		return nil
	}
	n := c.list.nodes[c.at].next
	if n == tail {
		return nil
	}
	return &c.list.nodes[n].tok
}

// Next steps to the following token with offset 0.
// The end position stays where it is.
func (c Cursor) Next() Cursor {
	if c.at != tail {
		c.at = c.list.nodes[c.at].next
	}
	c.offset = 0
	return c
}

// Prev steps to the previous token with offset 0.
// The before-start position stays where it is.
func (c Cursor) Prev() Cursor {
	if c.at != head {
		c.at = c.list.nodes[c.at].prev
	}
	c.offset = 0
	return c
}

// TokenStart returns the cursor moved back to the start of its token.
func (c Cursor) TokenStart() Cursor {
	c.offset = 0
	return c
}

// Move returns the cursor moved by count characters, forward when count
// is positive. The rest of the current token is consumed before stepping
// to a neighbor. Moving past the first or last token is an
// [token.ErrOutOfRange] and leaves the cursor unchanged.
func (c Cursor) Move(count int) (Cursor, error) {
	orig := c
	if c.at == head {
		c = c.Next()
	}
	nd := c.list.nodes
	for count > 0 {
		if c.at == tail {
			return orig, fmt.Errorf("%w: move %d past end", token.ErrOutOfRange, count)
		}
		rem := nd[c.at].tok.Size() - c.offset
		if count < rem {
			c.offset += count
			return c, nil
		}
		count -= rem
		c.at = nd[c.at].next
		c.offset = 0
	}
	for count < 0 {
		if -count <= c.offset {
			c.offset += count
			return c, nil
		}
		count += c.offset
		p := nd[c.at].prev
		if p == head {
			return orig, fmt.Errorf("%w: move %d before start", token.ErrOutOfRange, count)
		}
		c.at = p
		c.offset = nd[p].tok.Size()
	}
	return c, nil
}

// AbsOffset returns the absolute character position of the cursor:
// the sizes of all tokens before the current one plus the offset.
func (c Cursor) AbsOffset() int {
	if c.at == head {
		return 0
	}
	n := c.offset
	nd := c.list.nodes
	for i := nd[c.at].prev; i != head; i = nd[i].prev {
		n += nd[i].tok.Size()
	}
	return n
}
