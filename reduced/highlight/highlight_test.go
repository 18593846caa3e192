// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"bytes"
	"testing"

	"cogentcore.org/lexmodel/reduced/token"
	"github.com/alecthomas/chroma/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Normal, KindOf(token.Free))
	assert.Equal(t, LineComment, KindOf(token.InsideLineComment))
	assert.Equal(t, BlockComment, KindOf(token.InsideBlockComment))
	assert.Equal(t, SingleQuoted, KindOf(token.InsideSingleQuote))
	assert.Equal(t, DoubleQuoted, KindOf(token.InsideDoubleQuote))

	assert.Equal(t, chroma.Keyword, Keyword.TokenType())
	assert.Equal(t, chroma.CommentMultiline, BlockComment.TokenType())
	assert.Equal(t, chroma.Text, Normal.TokenType())
	assert.Equal(t, "DoubleQuoted[2:5]", Status{2, 3, DoubleQuoted}.String())
}

func TestAppend(t *testing.T) {
	var runs []Status
	runs = Append(runs, 0, 2, Normal)
	runs = Append(runs, 2, 3, Normal)
	runs = Append(runs, 5, 0, Keyword)
	runs = Append(runs, 5, 1, LineComment)
	assert.Equal(t, []Status{{0, 5, Normal}, {5, 1, LineComment}}, runs)
}

func TestKeywords(t *testing.T) {
	kw, err := KeywordsFor("Go")
	require.NoError(t, err)
	assert.True(t, kw.Has("func"))
	assert.False(t, kw.Has("class"))
	assert.True(t, Java.Has("class"))

	_, err = KeywordsFor("cobol")
	assert.Error(t, err)

	kw = NewKeywords("b", "a")
	kw.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, kw.Words())
}

func TestSplitKeywords(t *testing.T) {
	src := []rune("int x = 1; // int")
	runs := []Status{{0, 11, Normal}, {11, 6, LineComment}}
	got := SplitKeywords(runs, src, Java)
	assert.Equal(t, []Status{{0, 3, Keyword}, {3, 8, Normal}, {11, 6, LineComment}}, got)

	src = []rune("intx int")
	got = SplitKeywords([]Status{{0, 8, Normal}}, src, Java)
	assert.Equal(t, []Status{{0, 5, Normal}, {5, 3, Keyword}}, got)

	src = []rune(`if"a"`)
	runs = []Status{{0, 2, Normal}, {2, 3, DoubleQuoted}}
	got = SplitKeywords(runs, src, Java)
	assert.Equal(t, []Status{{0, 2, Keyword}, {2, 3, DoubleQuoted}}, got)

	// a run that starts inside a word does not make a keyword of it
	src = []rune("xif")
	got = SplitKeywords([]Status{{1, 2, Normal}}, src, Java)
	assert.Equal(t, []Status{{1, 2, Normal}}, got)

	got = SplitKeywords([]Status{{0, 3, Normal}}, src, nil)
	assert.Equal(t, []Status{{0, 3, Normal}}, got)
}

func TestRender(t *testing.T) {
	src := []rune("int x; // c")
	runs := SplitKeywords([]Status{{0, 7, Normal}, {7, 4, LineComment}}, src, Java)

	var b bytes.Buffer
	require.NoError(t, Render(&b, src, runs, Style(""), termenv.Ascii))
	assert.Equal(t, string(src), b.String())

	b.Reset()
	require.NoError(t, Render(&b, src, runs, Style("monokai"), termenv.TrueColor))
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "int")

	assert.NotNil(t, Style("no-such-style"))
}
