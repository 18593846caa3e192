// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduced

import (
	"fmt"

	"cogentcore.org/lexmodel/reduced/token"
)

// IndentInfo holds the raw distances an indentation policy works from.
// All distances are measured back from the cursor, and are -1 when the
// thing measured to does not exist.
type IndentInfo struct {
	// DistToNewline is the distance to the newline before the enclosing brace.
	DistToNewline int

	// DistToPrevNewline is the distance to the newline before the cursor.
	DistToPrevNewline int

	// BraceType is the enclosing open bracket, [token.Empty] if none.
	BraceType token.Type

	// DistToBrace is the distance to the start of the enclosing brace.
	DistToBrace int
}

// HasBrace reports whether an enclosing brace was found.
func (ii IndentInfo) HasBrace() bool {
	return ii.BraceType != token.Empty && ii.DistToBrace >= 0
}

func (ii IndentInfo) String() string {
	return fmt.Sprintf("brace %q at %d, newline before brace at %d, previous newline at %d",
		ii.BraceType.Text(), ii.DistToBrace, ii.DistToNewline, ii.DistToPrevNewline)
}
