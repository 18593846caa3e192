// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "fmt"

// Type is the lexeme of a brace token: an index into the fixed lexeme table.
// Bracket pairs, comment delimiters and quotes are laid out in open / closed
// pairs, so the orientation of a lexeme is derived from its table position.
type Type int32 //enums:enum

const (
	// OpenBrace is {
	OpenBrace Type = iota

	// CloseBrace is }
	CloseBrace

	// OpenParen is (
	OpenParen

	// CloseParen is )
	CloseParen

	// OpenBracket is [
	OpenBracket

	// CloseBracket is ]
	CloseBracket

	// BlockCommentStart is /*
	BlockCommentStart

	// BlockCommentEnd is */
	BlockCommentEnd

	// LineComment is //
	LineComment

	// Newline is a line feed.
	Newline

	// Slash is a lone /
	Slash

	// Star is a lone *
	Star

	// OpenDoubleQuote is a " that opens a string.
	OpenDoubleQuote

	// CloseDoubleQuote is a " that closes a string.
	CloseDoubleQuote

	// OpenSingleQuote is a ' that opens a character literal.
	OpenSingleQuote

	// CloseSingleQuote is a ' that closes a character literal.
	CloseSingleQuote

	// DoubleBackslash is an escaped backslash.
	DoubleBackslash

	// Backslash is a lone backslash.
	Backslash

	// EscapedSingleQuote is \'
	EscapedSingleQuote

	// EscapedDoubleQuote is \"
	EscapedDoubleQuote

	// Empty is the zero-length sentinel lexeme. It is also what
	// [Token.Type] reports for a gap.
	Empty
)

var lexemes = [TypeN]string{
	"{", "}", "(", ")", "[", "]",
	"/*", "*/", "//", "\n", "/", "*",
	`"`, `"`, "'", "'",
	`\\`, `\`, `\'`, `\"`,
	"",
}

// Parse returns the lexeme for the given text. A quote parses as its
// open orientation. Unknown text is an [ErrInvalidLexeme].
func Parse(text string) (Type, error) {
	for i, lx := range lexemes {
		if lx == text {
			return Type(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidLexeme, text)
}

// ForRune returns the single-character lexeme for the given rune,
// and false if the rune is ordinary text.
func ForRune(r rune) (Type, bool) {
	switch r {
	case '{':
		return OpenBrace, true
	case '}':
		return CloseBrace, true
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	case '[':
		return OpenBracket, true
	case ']':
		return CloseBracket, true
	case '\n':
		return Newline, true
	case '/':
		return Slash, true
	case '*':
		return Star, true
	case '"':
		return OpenDoubleQuote, true
	case '\'':
		return OpenSingleQuote, true
	case '\\':
		return Backslash, true
	}
	return Empty, false
}

// Text returns the characters of the lexeme.
func (t Type) Text() string {
	if t < 0 || t >= TypeN {
		return ""
	}
	return lexemes[t]
}

// Size is the number of characters in the lexeme.
func (t Type) Size() int {
	return len(t.Text())
}

// IsMultiChar is true for the two-character lexemes.
func (t Type) IsMultiChar() bool {
	return t.Size() > 1
}

// IsBracket is true for { } ( ) [ ].
func (t Type) IsBracket() bool {
	return t >= OpenBrace && t <= CloseBracket
}

// IsOpen reports whether the lexeme opens a pair:
// brackets, block comment start and open quotes.
func (t Type) IsOpen() bool {
	switch {
	case t >= OpenBrace && t <= BlockCommentEnd:
		return t%2 == 0
	case t == OpenDoubleQuote, t == OpenSingleQuote:
		return true
	}
	return false
}

// IsClosed reports whether the lexeme closes a pair.
func (t Type) IsClosed() bool {
	switch {
	case t >= OpenBrace && t <= BlockCommentEnd:
		return t%2 == 1
	case t == CloseDoubleQuote, t == CloseSingleQuote:
		return true
	}
	return false
}

// Matches reports whether t and o are the two halves of one bracket pair,
// in either order.
func (t Type) Matches(o Type) bool {
	if !t.IsBracket() || !o.IsBracket() {
		return false
	}
	return t^1 == o
}

// IsDoubleQuote is true for either orientation of ".
func (t Type) IsDoubleQuote() bool {
	return t == OpenDoubleQuote || t == CloseDoubleQuote
}

// IsSingleQuote is true for either orientation of '.
func (t Type) IsSingleQuote() bool {
	return t == OpenSingleQuote || t == CloseSingleQuote
}

// IsQuote is true for either quote character.
func (t Type) IsQuote() bool {
	return t.IsDoubleQuote() || t.IsSingleQuote()
}

// Flipped returns the other orientation of a quote lexeme.
func (t Type) Flipped() (Type, bool) {
	switch t {
	case OpenDoubleQuote:
		return CloseDoubleQuote, true
	case CloseDoubleQuote:
		return OpenDoubleQuote, true
	case OpenSingleQuote:
		return CloseSingleQuote, true
	case CloseSingleQuote:
		return OpenSingleQuote, true
	}
	return t, false
}

// Split returns the two single-character lexemes a multi-character
// lexeme is made of. Quotes come back in open orientation.
func (t Type) Split() (first, second Type, ok bool) {
	switch t {
	case BlockCommentStart:
		return Slash, Star, true
	case BlockCommentEnd:
		return Star, Slash, true
	case LineComment:
		return Slash, Slash, true
	case DoubleBackslash:
		return Backslash, Backslash, true
	case EscapedSingleQuote:
		return Backslash, OpenSingleQuote, true
	case EscapedDoubleQuote:
		return Backslash, OpenDoubleQuote, true
	}
	return t, Empty, false
}

// First returns the lexeme of the first character of t.
func (t Type) First() Type {
	if f, _, ok := t.Split(); ok {
		return f
	}
	return t
}

// ValidIn reports whether the lexeme keeps its meaning when it starts
// in the given shadow state. Comment delimiters only exist where they
// can open or close a comment; everywhere else they are plain characters.
func (t Type) ValidIn(st State) bool {
	switch t {
	case LineComment, BlockCommentStart:
		return st == Free
	case BlockCommentEnd:
		return st == InsideBlockComment
	}
	return true
}

// Combine returns the two-character lexeme that a followed by b fuse
// into when a starts in the given state, and false if they stay apart.
func Combine(a, b Type, st State) (Type, bool) {
	switch a {
	case Slash:
		if st != Free {
			return Empty, false
		}
		switch b {
		case Slash:
			return LineComment, true
		case Star:
			return BlockCommentStart, true
		}
	case Star:
		if st == InsideBlockComment && b == Slash {
			return BlockCommentEnd, true
		}
	case Backslash:
		switch {
		case b == Backslash:
			return DoubleBackslash, true
		case b.IsDoubleQuote():
			return EscapedDoubleQuote, true
		case b.IsSingleQuote():
			return EscapedSingleQuote, true
		}
	}
	return Empty, false
}
