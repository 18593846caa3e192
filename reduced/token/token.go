// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the atomic units of the reduced lexical model:
// brace tokens, which hold one lexeme from a small fixed table, and gap
// tokens, which stand for a run of ordinary characters. Each token carries
// the shadow state (comment / quote classification) it was lexed in.
package token

//go:generate core generate

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidLexeme is returned when a brace is built from unknown text.
	ErrInvalidLexeme = errors.New("token: invalid lexeme")

	// ErrUnsupported is returned for operations that do not apply to the
	// kind of token: retyping or flipping a gap, growing or shrinking a brace.
	ErrUnsupported = errors.New("token: unsupported operation")

	// ErrOutOfRange is returned when an operation would pass the bounds
	// of a token or of the token list.
	ErrOutOfRange = errors.New("token: out of range")
)

// Token is either a brace, holding a lexeme [Type], or a gap of ordinary
// characters that only has a size. The zero value is an empty gap.
type Token struct {
	gap  bool
	typ  Type
	size int

	// State is the shadow state the token was lexed in.
	// Delimiters that open or close a comment or quote are Free.
	State State
}

// NewBrace returns a brace token for the given lexeme text.
func NewBrace(text string) (Token, error) {
	t, err := Parse(text)
	if err != nil {
		return Token{}, err
	}
	return Brace(t), nil
}

// Brace returns a brace token of the given lexeme type.
func Brace(t Type) Token {
	return Token{typ: t}
}

// NewGap returns a gap token of the given size.
func NewGap(size int) Token {
	return Token{gap: true, typ: Empty, size: size}
}

// IsGap is true for gap tokens.
func (tk *Token) IsGap() bool {
	return tk.gap
}

// Size is the number of characters covered by the token.
func (tk *Token) Size() int {
	if tk.gap {
		return tk.size
	}
	return tk.typ.Size()
}

// Type returns the lexeme of a brace, and [Empty] for a gap.
func (tk *Token) Type() Type {
	if tk.gap {
		return Empty
	}
	return tk.typ
}

// Text returns the lexeme text of a brace, and "" for a gap.
func (tk *Token) Text() string {
	return tk.Type().Text()
}

// SetType changes the lexeme of a brace.
func (tk *Token) SetType(t Type) error {
	if tk.gap {
		return fmt.Errorf("%w: SetType on gap", ErrUnsupported)
	}
	tk.typ = t
	return nil
}

// Flip toggles the orientation of a quote.
func (tk *Token) Flip() error {
	if tk.gap {
		return fmt.Errorf("%w: Flip on gap", ErrUnsupported)
	}
	ft, ok := tk.typ.Flipped()
	if !ok {
		return fmt.Errorf("%w: Flip on %v", ErrUnsupported, tk.typ)
	}
	tk.typ = ft
	return nil
}

// Grow adds n characters to a gap.
func (tk *Token) Grow(n int) error {
	if !tk.gap {
		return fmt.Errorf("%w: Grow on brace %v", ErrUnsupported, tk.typ)
	}
	tk.size += n
	return nil
}

// Shrink removes n characters from a gap.
func (tk *Token) Shrink(n int) error {
	if !tk.gap {
		return fmt.Errorf("%w: Shrink on brace %v", ErrUnsupported, tk.typ)
	}
	if n > tk.size {
		return fmt.Errorf("%w: shrink gap of %d by %d", ErrOutOfRange, tk.size, n)
	}
	tk.size -= n
	return nil
}

// IsMultiChar is true for braces holding a two-character lexeme.
func (tk *Token) IsMultiChar() bool {
	return !tk.gap && tk.typ.IsMultiChar()
}

// IsOpen is true for braces that open a pair.
func (tk *Token) IsOpen() bool {
	return !tk.gap && tk.typ.IsOpen()
}

// IsClosed is true for braces that close a pair.
func (tk *Token) IsClosed() bool {
	return !tk.gap && tk.typ.IsClosed()
}

// IsMatchable is true for an unshadowed bracket, the only kind of token
// that takes part in brace matching.
func (tk *Token) IsMatchable() bool {
	return !tk.gap && tk.typ.IsBracket() && tk.State == Free
}

// Is reports whether the token is a brace of the given lexeme.
func (tk *Token) Is(t Type) bool {
	return !tk.gap && tk.typ == t
}

// String returns a compact debugging form: the quoted lexeme of a brace
// or gap(n), followed by the state when shadowed.
func (tk Token) String() string {
	s := ""
	if tk.gap {
		s = fmt.Sprintf("gap(%d)", tk.size)
	} else {
		s = strconv.Quote(tk.typ.Text())
	}
	if tk.State != Free {
		s += ":" + tk.State.String()
	}
	return s
}
