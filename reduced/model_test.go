// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduced

import (
	"math/rand"
	"testing"

	"cogentcore.org/lexmodel/reduced/highlight"
	"cogentcore.org/lexmodel/reduced/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typed(s string) *Model {
	m := New()
	m.InsertString(s)
	return m
}

func texts(m *Model) []string {
	var s []string
	for _, ti := range m.Tokens() {
		if ti.Gap {
			s = append(s, "_")
			continue
		}
		s = append(s, ti.Text)
	}
	return s
}

func TestBlockCommentScenario(t *testing.T) {
	m := typed("/**/")
	assert.Equal(t, []string{"/*", "*/"}, texts(m))
	for _, ti := range m.Tokens() {
		assert.Equal(t, token.Free, ti.State)
	}
	assert.Equal(t, 4, m.Length())
	assert.Equal(t, token.Free, m.StateAtCurrent())
}

func TestQuoteScenario(t *testing.T) {
	m := typed(`""`)
	require.NoError(t, m.Move(-1))
	m.InsertChar('A')
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())
	require.NoError(t, m.Move(-2))
	assert.Equal(t, 0, m.AbsOffset())
	assert.Equal(t, token.Free, m.StateAtCurrent())
	require.NoError(t, m.Move(3))
	assert.Equal(t, token.Free, m.StateAtCurrent())
}

func TestLineCommentScenario(t *testing.T) {
	m := typed("//*\n")
	assert.Equal(t, []string{"//", "*", "\n"}, texts(m))
	assert.Equal(t, token.InsideLineComment, m.Tokens()[1].State)
	assert.Equal(t, token.Free, m.StateAtCurrent())
}

func TestMoveZero(t *testing.T) {
	m := typed(`a("b/*`)
	require.NoError(t, m.Move(-3))
	before := m.String()
	st := m.StateAtCurrent()
	require.NoError(t, m.Move(0))
	assert.Equal(t, before, m.String())
	assert.Equal(t, st, m.StateAtCurrent())
}

func TestMoveOutOfRange(t *testing.T) {
	m := typed("abc")
	assert.ErrorIs(t, m.Move(1), token.ErrOutOfRange)
	assert.ErrorIs(t, m.Move(-4), token.ErrOutOfRange)
	assert.Equal(t, 3, m.AbsOffset())
	assert.ErrorIs(t, m.Delete(1), token.ErrOutOfRange)
	assert.ErrorIs(t, m.Delete(-4), token.ErrOutOfRange)
	assert.Equal(t, 3, m.Length())
	assert.ErrorIs(t, m.InsertGap(-1), token.ErrOutOfRange)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		src      string
		pos      int
		forward  int
		backward int
	}{
		{"(....)", 0, 6, -1},
		{"(....)", 6, -1, 6},
		{"(", 0, -1, -1},
		{"(]", 0, -1, -1},
		{"(]", 2, -1, -1},
		{"({[]})", 0, 6, -1},
		{"({[]})", 1, 4, -1},
		{"({[]})", 5, -1, 4},
		{"(/*)*/)", 0, 7, -1},
		{`("(")`, 0, 5, -1},
		{"(// )\n)", 0, 7, -1},
		{"a(b)", 1, 3, -1},
		{"a(b)", 2, -1, -1},
		{"a(b)", 4, -1, 3},
	}
	for _, tt := range tests {
		m := typed(tt.src)
		require.NoError(t, m.Move(tt.pos-m.AbsOffset()))
		assert.Equal(t, tt.forward, m.BalanceForward(), "forward %q @%d", tt.src, tt.pos)
		assert.Equal(t, tt.backward, m.BalanceBackward(), "backward %q @%d", tt.src, tt.pos)
	}
}

func TestNextPreviousBrace(t *testing.T) {
	m := typed("a(bc)d")
	require.NoError(t, m.Move(-6))
	assert.Equal(t, 1, m.NextBrace())
	assert.Equal(t, -1, m.PreviousBrace())

	require.NoError(t, m.Move(1))
	assert.Equal(t, 0, m.NextBrace())

	require.NoError(t, m.Move(2))
	assert.Equal(t, 2, m.PreviousBrace())
	assert.Equal(t, 1, m.NextBrace())

	require.NoError(t, m.Move(3))
	assert.Equal(t, 2, m.PreviousBrace())
	assert.Equal(t, -1, m.NextBrace())

	m = typed(`"(" // )`)
	require.NoError(t, m.Move(-8))
	assert.Equal(t, -1, m.NextBrace())
}

func TestQuoteEclipsing(t *testing.T) {
	m := typed(`"abc`)
	require.NoError(t, m.Move(-4))
	m.InsertChar('\'')
	assert.Equal(t, token.InsideSingleQuote, m.StateAtCurrent())
	require.NoError(t, m.Move(4))
	assert.Equal(t, token.InsideSingleQuote, m.StateAtCurrent())

	m = typed(`'abc`)
	require.NoError(t, m.Move(-4))
	m.InsertChar('"')
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())
	require.NoError(t, m.Move(4))
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())
}

func TestEscapeFusion(t *testing.T) {
	m := typed(`\`)
	require.NoError(t, m.Move(-1))
	m.InsertChar('\\')
	tks := m.Tokens()
	require.Len(t, tks, 1)
	assert.Equal(t, `\\`, tks[0].Text)
	assert.Equal(t, 2, tks[0].Size)

	require.NoError(t, m.Delete(-1))
	assert.Equal(t, []string{`\`}, texts(m))
	assert.Equal(t, token.Free, m.Tokens()[0].State)

	m = typed(`"`)
	require.NoError(t, m.Move(-1))
	m.InsertChar('\\')
	assert.Equal(t, []string{`\"`}, texts(m))
	require.NoError(t, m.Move(1))
	assert.Equal(t, token.Free, m.StateAtCurrent())

	// deleting the backslash leaves an opening quote
	require.NoError(t, m.Move(-1))
	require.NoError(t, m.Delete(-1))
	assert.Equal(t, []string{`"`}, texts(m))
	require.NoError(t, m.Move(1))
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())

	// deleting the quote leaves a backslash inside the string
	m = typed(`"a\"`)
	require.NoError(t, m.Delete(-1))
	assert.Equal(t, []string{`"`, "_", `\`}, texts(m))
	assert.Equal(t, token.InsideDoubleQuote, m.Tokens()[2].State)
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())
	assert.Equal(t, 3, m.AbsOffset())
	m.InsertChar('"')
	assert.Equal(t, []string{`"`, "_", `\"`}, texts(m))
	assert.Equal(t, token.InsideDoubleQuote, m.StateAtCurrent())
}

func TestEscapeInString(t *testing.T) {
	m := typed(`"a\"b"`)
	assert.Equal(t, []string{`"`, "_", `\"`, "_", `"`}, texts(m))
	assert.Equal(t, token.Free, m.StateAtCurrent())

	m = typed(`"a\\"b`)
	assert.Equal(t, []string{`"`, "_", `\\`, `"`, "_"}, texts(m))
	assert.Equal(t, token.Free, m.StateAtCurrent())
}

func TestCommentsAndQuotes(t *testing.T) {
	tests := []struct {
		src  string
		want token.State
	}{
		{`"/*"`, token.Free},
		{`"/*`, token.InsideDoubleQuote},
		{"/* // */x", token.Free},
		{"/* \" */", token.Free},
		{"// \"\nx", token.Free},
		{"\"abc\nx", token.Free},
		{"'a", token.InsideSingleQuote},
		{"/*/", token.InsideBlockComment},
		{"/* **/", token.Free},
		{"x */", token.Free},
		{"///*\n", token.Free},
	}
	for _, tt := range tests {
		m := typed(tt.src)
		assert.Equal(t, tt.want, m.StateAtCurrent(), "%q", tt.src)
	}
}

func TestReopenComment(t *testing.T) {
	m := typed("a*/b")
	assert.Equal(t, []string{"_", "*", "/", "_"}, texts(m))

	require.NoError(t, m.Move(-4))
	m.InsertString("/*")
	assert.Equal(t, []string{"/*", "_", "*/", "_"}, texts(m))
	require.NoError(t, m.Move(4))
	assert.Equal(t, token.Free, m.StateAtCurrent())

	require.NoError(t, m.Move(-6))
	require.NoError(t, m.Delete(2))
	assert.Equal(t, []string{"_", "*", "/", "_"}, texts(m))
	assert.Equal(t, 4, m.Length())
}

func TestSplitOnInsert(t *testing.T) {
	m := typed("//")
	require.NoError(t, m.Move(-1))
	m.InsertChar('x')
	assert.Equal(t, []string{"/", "_", "/"}, texts(m))
	require.NoError(t, m.Delete(-1))
	assert.Equal(t, []string{"//"}, texts(m))
	require.NoError(t, m.Move(1))
	assert.Equal(t, token.InsideLineComment, m.StateAtCurrent())
}

func TestHighlightStatus(t *testing.T) {
	src := "int x; // c\n\"s\""
	m := typed(src)
	runs, err := m.HighlightStatus(0, len(src))
	require.NoError(t, err)
	assert.Equal(t, []highlight.Status{
		{Location: 0, Length: 7, Kind: highlight.Normal},
		{Location: 7, Length: 4, Kind: highlight.LineComment},
		{Location: 11, Length: 1, Kind: highlight.Normal},
		{Location: 12, Length: 3, Kind: highlight.DoubleQuoted},
	}, runs)

	runs, err = m.HighlightStatus(8, 5)
	require.NoError(t, err)
	assert.Equal(t, []highlight.Status{
		{Location: 8, Length: 3, Kind: highlight.LineComment},
		{Location: 11, Length: 1, Kind: highlight.Normal},
		{Location: 12, Length: 1, Kind: highlight.DoubleQuoted},
	}, runs)

	_, err = m.HighlightStatus(10, 10)
	assert.ErrorIs(t, err, token.ErrOutOfRange)
}

func TestIndentInfo(t *testing.T) {
	m := typed("class A {\n  int x;\n  ")
	ii := m.IndentInfo()
	assert.Equal(t, 3, ii.DistToPrevNewline)
	assert.Equal(t, token.OpenBrace, ii.BraceType)
	assert.Equal(t, 13, ii.DistToBrace)
	assert.Equal(t, -1, ii.DistToNewline)
	assert.True(t, ii.HasBrace())

	m = typed("x\n  f(a,\n")
	ii = m.IndentInfo()
	assert.Equal(t, 1, ii.DistToPrevNewline)
	assert.Equal(t, token.OpenParen, ii.BraceType)
	assert.Equal(t, 4, ii.DistToBrace)
	assert.Equal(t, 8, ii.DistToNewline)

	m = typed("{ }\nx")
	ii = m.IndentInfo()
	assert.False(t, ii.HasBrace())
	assert.Equal(t, -1, ii.DistToBrace)
	assert.Equal(t, token.Empty, ii.BraceType)
}

func TestNewlineDistances(t *testing.T) {
	m := typed("ab\ncd\nef")
	require.NoError(t, m.Move(-4))
	assert.Equal(t, 4, m.AbsOffset())
	assert.Equal(t, 2, m.DistToPreviousNewline(0))
	assert.Equal(t, 1, m.DistToNextNewline())
	assert.Equal(t, -1, m.DistToPreviousNewline(2))
	require.NoError(t, m.Move(3))
	assert.Equal(t, 1, m.DistToNextNewline())
	require.NoError(t, m.Move(1))
	assert.Equal(t, 0, m.DistToNextNewline())
}

func TestReset(t *testing.T) {
	m := typed("(abc)")
	m.Reset()
	assert.Equal(t, 0, m.Length())
	assert.Equal(t, 0, m.AbsOffset())
	assert.Empty(t, m.Tokens())
}

// TestIncremental checks that random edits leave the model exactly as if
// the resulting text had been typed into a fresh model.
func TestIncremental(t *testing.T) {
	alphabet := []rune("ab /*\\\"'\n(){}[]")
	rnd := rand.New(rand.NewSource(17))
	m := New()
	var text []rune
	for i := 0; i < 2000; i++ {
		pos := 0
		if len(text) > 0 {
			pos = rnd.Intn(len(text) + 1)
		}
		require.NoError(t, m.Move(pos-m.AbsOffset()))
		if len(text) == 0 || rnd.Intn(3) > 0 {
			r := alphabet[rnd.Intn(len(alphabet))]
			m.InsertChar(r)
			text = append(text[:pos], append([]rune{r}, text[pos:]...)...)
			pos++
		} else {
			n := rnd.Intn(3) + 1
			if rnd.Intn(2) == 0 {
				n = min(n, len(text)-pos)
				if n == 0 {
					continue
				}
				require.NoError(t, m.Delete(n))
				text = append(text[:pos], text[pos+n:]...)
			} else {
				n = min(n, pos)
				if n == 0 {
					continue
				}
				require.NoError(t, m.Delete(-n))
				text = append(text[:pos-n], text[pos:]...)
				pos -= n
			}
		}
		require.Equal(t, len(text), m.Length(), "length after edit %d", i)
		require.Equal(t, pos, m.AbsOffset(), "cursor after edit %d", i)
		require.Equal(t, pos, m.cursor.AbsOffset(), "cursor tokens after edit %d", i)
		require.Equal(t, typed(string(text)).Tokens(), m.Tokens(), "tokens after edit %d of %q", i, string(text))
	}
}
