// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// State is the shadow state of a position: whether it is ordinary code
// or shadowed by a comment or a quote.
type State int32 //enums:enum

const (
	// Free is ordinary, unshadowed code.
	Free State = iota

	// InsideLineComment is inside a // comment.
	InsideLineComment

	// InsideBlockComment is inside a /* */ comment.
	InsideBlockComment

	// InsideSingleQuote is inside a ' quoted literal.
	InsideSingleQuote

	// InsideDoubleQuote is inside a " quoted string.
	InsideDoubleQuote
)
