// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bracket

import (
	"testing"

	"cogentcore.org/lexmodel/reduced/shadow"
	"cogentcore.org/lexmodel/reduced/token"
	"cogentcore.org/lexmodel/reduced/tokenlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build types s into a new layer and returns it with a cursor at pos.
func build(t *testing.T, s string, pos int) (*Layer, tokenlist.Cursor) {
	ly := New(shadow.New(tokenlist.New()))
	c := ly.List.Start()
	var err error
	for _, r := range s {
		ty, ok := token.ForRune(r)
		switch {
		case ok && ty.IsBracket():
			c, err = ly.Insert(c, r)
		case ok:
			c = ly.Shadow.Insert(c, ty)
		default:
			c, err = ly.Shadow.InsertGap(c, 1)
		}
		require.NoError(t, err)
	}
	c, err = ly.List.CursorAt(pos)
	require.NoError(t, err)
	return ly, c
}

func TestInsert(t *testing.T) {
	ly, c := build(t, "", 0)
	_, err := ly.Insert(c, '/')
	assert.ErrorIs(t, err, token.ErrInvalidLexeme)
	c, err = ly.Insert(c, '{')
	require.NoError(t, err)
	assert.Equal(t, 1, c.AbsOffset())
	assert.Equal(t, `["{"]`, ly.List.String())
}

func TestBalance(t *testing.T) {
	tests := []struct {
		text     string
		pos      int
		forward  int
		backward int
	}{
		{"(a[b]c)", 0, 7, -1},
		{"(a[b]c)", 7, -1, 7},
		{"(a[b]c)", 2, 3, -1},
		{"(a[b]c)", 5, -1, 3},
		{"(a[b]c)", 1, -1, -1},
		{"(]", 0, -1, -1},
		{"(]", 2, -1, -1},
		{"((", 0, -1, -1},
		{`("(")`, 0, 5, -1},
		{`("(")`, 5, -1, 5},
		{"/*(*/)", 6, -1, -1},
		{"{//}\n}", 0, 6, -1},
	}
	for _, tt := range tests {
		ly, c := build(t, tt.text, tt.pos)
		assert.Equal(t, tt.forward, ly.BalanceForward(c), "forward %q @%d", tt.text, tt.pos)
		assert.Equal(t, tt.backward, ly.BalanceBackward(c), "backward %q @%d", tt.text, tt.pos)
	}
}

func TestNextPreviousBrace(t *testing.T) {
	ly, c := build(t, "ab(cd", 1)
	assert.Equal(t, 1, ly.NextBrace(c))
	assert.Equal(t, -1, ly.PreviousBrace(c))

	c, err := ly.List.CursorAt(2)
	require.NoError(t, err)
	assert.Equal(t, 0, ly.NextBrace(c))

	c = ly.List.End()
	assert.Equal(t, 3, ly.PreviousBrace(c))
	assert.Equal(t, -1, ly.NextBrace(c))

	ly, c = build(t, `"(" x`, 0)
	assert.Equal(t, -1, ly.NextBrace(c))
}

func TestNewlines(t *testing.T) {
	ly, c := build(t, "ab\ncd", 5)
	assert.Equal(t, 3, ly.DistToPreviousNewline(c, 0))
	assert.Equal(t, 0, ly.DistToNextNewline(c))
	assert.Equal(t, -1, ly.DistToPreviousNewline(c, 3))
	assert.Equal(t, 1, ly.DistToPreviousNewline(c, 2))
	assert.Equal(t, -1, ly.DistToPreviousNewline(c, 9))

	c, err := ly.List.CursorAt(0)
	require.NoError(t, err)
	assert.Equal(t, 2, ly.DistToNextNewline(c))
	c, err = ly.List.CursorAt(4)
	require.NoError(t, err)
	assert.Equal(t, 1, ly.DistToNextNewline(c))
}

func TestDistToEnclosingBrace(t *testing.T) {
	tests := []struct {
		text string
		dist int
		typ  token.Type
	}{
		{"{\n(x\ny", 4, token.OpenParen},
		{"{()\nx", 5, token.OpenBrace},
		{"(x", -1, token.Empty},
		{"{(]\nx", -1, token.Empty},
		{"x\ny", -1, token.Empty},
		{"[ \"{\" \n", 7, token.OpenBracket},
	}
	for _, tt := range tests {
		ly, c := build(t, tt.text, len([]rune(tt.text)))
		dist, typ := ly.DistToEnclosingBrace(c)
		assert.Equal(t, tt.dist, dist, "%q", tt.text)
		assert.Equal(t, tt.typ, typ, "%q", tt.text)
	}
}
