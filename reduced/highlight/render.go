// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// DefaultStyle is the chroma style used when none is given.
var DefaultStyle = "monokai"

// Style returns the named chroma style, falling back on [DefaultStyle]
// with a warning when the name is unknown.
func Style(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	st, ok := styles.Registry[name]
	if !ok {
		slog.Warn("highlight: unknown style, using default", "style", name, "default", DefaultStyle)
		return styles.Get(DefaultStyle)
	}
	return st
}

// Render writes src to w, styling each run with the chroma style entry of
// its kind. Characters not covered by any run are written plain. The
// terminal color profile decides the escape sequences; [termenv.Ascii]
// writes the text unstyled.
func Render(w io.Writer, src []rune, runs []Status, style *chroma.Style, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	pos := 0
	for _, r := range runs {
		if r.Location > pos {
			if _, err := io.WriteString(w, string(src[pos:r.Location])); err != nil {
				return err
			}
		}
		end := min(r.End(), len(src))
		txt := string(src[r.Location:end])
		if _, err := io.WriteString(w, styled(out, txt, style.Get(r.Kind.TokenType())).String()); err != nil {
			return err
		}
		pos = end
	}
	if pos < len(src) {
		_, err := io.WriteString(w, string(src[pos:]))
		return err
	}
	return nil
}

func styled(out *termenv.Output, txt string, e chroma.StyleEntry) termenv.Style {
	s := out.String(txt)
	if e.Colour.IsSet() {
		s = s.Foreground(out.Color(e.Colour.String()))
	}
	if e.Background.IsSet() {
		s = s.Background(out.Color(e.Background.String()))
	}
	if e.Bold == chroma.Yes {
		s = s.Bold()
	}
	if e.Italic == chroma.Yes {
		s = s.Italic()
	}
	if e.Underline == chroma.Yes {
		s = s.Underline()
	}
	return s
}
