// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Keywords is a set of reserved words.
type Keywords map[string]struct{}

// NewKeywords returns a set holding the given words.
func NewKeywords(words ...string) Keywords {
	kw := make(Keywords, len(words))
	kw.Add(words...)
	return kw
}

// Add adds words to the set.
func (kw Keywords) Add(words ...string) {
	for _, w := range words {
		kw[w] = struct{}{}
	}
}

// Has reports whether w is in the set.
func (kw Keywords) Has(w string) bool {
	_, ok := kw[w]
	return ok
}

// Words returns the sorted words of the set.
func (kw Keywords) Words() []string {
	return slices.Sorted(maps.Keys(kw))
}

// Java is the reserved-word set of the Java language, the default.
var Java = NewKeywords(
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "true", "false", "null",
)

// Go is the reserved-word set of the Go language.
var Go = NewKeywords(
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
)

// C is the reserved-word set of the C language.
var C = NewKeywords(
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if", "inline",
	"int", "long", "register", "restrict", "return", "short", "signed",
	"sizeof", "static", "struct", "switch", "typedef", "union", "unsigned",
	"void", "volatile", "while",
)

// Languages are the named reserved-word sets.
var Languages = map[string]Keywords{
	"java": Java,
	"go":   Go,
	"c":    C,
}

// KeywordsFor returns the reserved words of the named language.
func KeywordsFor(lang string) (Keywords, error) {
	kw, ok := Languages[strings.ToLower(lang)]
	if !ok {
		return nil, fmt.Errorf("highlight: no keywords for language %q", lang)
	}
	return kw, nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SplitKeywords splits every [Normal] run into [Keyword] and [Normal]
// sub-runs. src is the full text the run locations index into; a word is
// only a keyword when the whole word, which may extend past the run,
// matches the set exactly. Other runs are passed through.
func SplitKeywords(runs []Status, src []rune, kw Keywords) []Status {
	out := make([]Status, 0, len(runs))
	for _, r := range runs {
		if r.Kind != Normal || len(kw) == 0 {
			out = Append(out, r.Location, r.Length, r.Kind)
			continue
		}
		end := min(r.End(), len(src))
		pos := r.Location
		for i := r.Location; i < end; {
			if !isWordRune(src[i]) {
				i++
				continue
			}
			ws := i
			for ws > 0 && isWordRune(src[ws-1]) {
				ws--
			}
			we := i
			for we < len(src) && isWordRune(src[we]) {
				we++
			}
			if kw.Has(string(src[ws:we])) {
				out = Append(out, pos, i-pos, Normal)
				kend := min(we, end)
				out = Append(out, i, kend-i, Keyword)
				pos = kend
			}
			i = we
		}
		out = Append(out, pos, r.End()-pos, Normal)
	}
	return out
}
