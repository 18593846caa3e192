// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight turns the shadow states of the reduced model into
// highlighting runs, splits free runs into keywords and plain text, and
// renders runs with chroma styles.
package highlight

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/lexmodel/reduced/token"
	"github.com/alecthomas/chroma/v2"
)

// Kind is the highlighting class of a run.
type Kind int32 //enums:enum

const (
	// Normal is plain, unshadowed text.
	Normal Kind = iota

	// Keyword is a reserved word in unshadowed text.
	Keyword

	// LineComment is a // comment, delimiter included.
	LineComment

	// BlockComment is a /* */ comment, delimiters included.
	BlockComment

	// SingleQuoted is a ' quoted literal, quotes included.
	SingleQuoted

	// DoubleQuoted is a " quoted string, quotes included.
	DoubleQuoted
)

// KindOf returns the kind for a shadow state.
func KindOf(st token.State) Kind {
	switch st {
	case token.InsideLineComment:
		return LineComment
	case token.InsideBlockComment:
		return BlockComment
	case token.InsideSingleQuote:
		return SingleQuoted
	case token.InsideDoubleQuote:
		return DoubleQuoted
	}
	return Normal
}

// TokenType returns the chroma token type used to style the kind.
func (k Kind) TokenType() chroma.TokenType {
	switch k {
	case Keyword:
		return chroma.Keyword
	case LineComment:
		return chroma.CommentSingle
	case BlockComment:
		return chroma.CommentMultiline
	case SingleQuoted:
		return chroma.LiteralStringSingle
	case DoubleQuoted:
		return chroma.LiteralStringDouble
	}
	return chroma.Text
}

// Status is one highlighting run: Length characters starting at the
// absolute position Location, all of the same Kind.
type Status struct {
	Location int
	Length   int
	Kind     Kind
}

// End returns the position just past the run.
func (s Status) End() int {
	return s.Location + s.Length
}

func (s Status) String() string {
	return fmt.Sprintf("%v[%d:%d]", s.Kind, s.Location, s.End())
}

// Append adds a run to the list, extending the last run instead when it
// is adjacent and of the same kind. Empty runs are dropped.
func Append(runs []Status, loc, n int, k Kind) []Status {
	if n <= 0 {
		return runs
	}
	if last := len(runs) - 1; last >= 0 && runs[last].Kind == k && runs[last].End() == loc {
		runs[last].Length += n
		return runs
	}
	return append(runs, Status{Location: loc, Length: n, Kind: k})
}
