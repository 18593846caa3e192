// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import "cogentcore.org/lexmodel/reduced/token"

// Transition lexes one token in the given state: it tags the token with
// its shadow state, fixes the orientation of quotes, and returns the
// state in force after the token. Opening and closing delimiters are
// tagged [token.Free]; everything they shadow is tagged with the
// comment or quote state.
func Transition(st token.State, tk *token.Token) token.State {
	ty := tk.Type()
	switch st {
	case token.Free:
		tk.State = token.Free
		switch {
		case ty == token.LineComment:
			return token.InsideLineComment
		case ty == token.BlockCommentStart:
			return token.InsideBlockComment
		case ty.IsDoubleQuote():
			orient(tk, true)
			return token.InsideDoubleQuote
		case ty.IsSingleQuote():
			orient(tk, true)
			return token.InsideSingleQuote
		}
		return token.Free
	case token.InsideLineComment:
		if ty == token.Newline {
			tk.State = token.Free
			return token.Free
		}
	case token.InsideBlockComment:
		if ty == token.BlockCommentEnd {
			tk.State = token.Free
			return token.Free
		}
	case token.InsideDoubleQuote:
		if ty.IsDoubleQuote() {
			orient(tk, false)
			tk.State = token.Free
			return token.Free
		}
		if ty == token.Newline {
			tk.State = token.Free
			return token.Free
		}
	case token.InsideSingleQuote:
		if ty.IsSingleQuote() {
			orient(tk, false)
			tk.State = token.Free
			return token.Free
		}
		if ty == token.Newline {
			tk.State = token.Free
			return token.Free
		}
	}
	// shadowed quotes are plain text and sit in open orientation
	if ty.IsQuote() {
		orient(tk, true)
	}
	tk.State = st
	return st
}

// After returns the state in force right after a token that has
// already been lexed by [Transition].
func After(tk *token.Token) token.State {
	if tk.State != token.Free {
		return tk.State
	}
	switch tk.Type() {
	case token.LineComment:
		return token.InsideLineComment
	case token.BlockCommentStart:
		return token.InsideBlockComment
	case token.OpenDoubleQuote:
		return token.InsideDoubleQuote
	case token.OpenSingleQuote:
		return token.InsideSingleQuote
	}
	return token.Free
}

// Display returns the state used to color a token: delimiters take the
// state of the comment or quote they open or close, so that a whole
// comment or string, delimiters included, is one run.
func Display(tk *token.Token) token.State {
	if tk.State != token.Free {
		return tk.State
	}
	if st := After(tk); st != token.Free {
		return st
	}
	switch tk.Type() {
	case token.BlockCommentEnd:
		return token.InsideBlockComment
	case token.CloseDoubleQuote:
		return token.InsideDoubleQuote
	case token.CloseSingleQuote:
		return token.InsideSingleQuote
	}
	return token.Free
}

func orient(tk *token.Token, open bool) {
	if tk.IsOpen() != open {
		tk.Flip()
	}
}
