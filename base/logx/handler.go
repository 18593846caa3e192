// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	slogmulti "github.com/samber/slog-multi"
)

// LevelColors are the ANSI colors used for the level names
// in terminal output.
var LevelColors = map[slog.Level]string{
	slog.LevelDebug: "12", // bright blue
	slog.LevelInfo:  "10", // bright green
	slog.LevelWarn:  "11", // bright yellow
	slog.LevelError: "9",  // bright red
}

// Handler is a [slog.Handler] for terminals that writes one line per
// record: the colored level, the message, and key=value attributes.
type Handler struct {
	w      io.Writer
	out    *termenv.Output
	level  slog.Leveler
	mu     *sync.Mutex
	prefix string
	attrs  string
}

// NewHandler returns a [Handler] writing to w at [UserLevel], with the
// level names colored for the given terminal profile.
func NewHandler(w io.Writer, profile termenv.Profile) *Handler {
	return &Handler{
		w:     w,
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		level: UserLevel,
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	lv := h.out.String(r.Level.String())
	if c, ok := LevelColors[r.Level]; ok {
		lv = lv.Foreground(h.out.Color(c)).Bold()
	}
	b.WriteString(lv.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range as {
		appendAttr(&b, h.prefix, a)
	}
	nh := *h
	nh.attrs += b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix += name + "."
	return &nh
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, p, ga)
		}
		return
	}
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(s)
}

// SetDefault installs a terminal [Handler] on w as the default logger.
// If file is non-empty, records are also appended to that file in JSON
// form, fanned out with slog-multi; the returned closer closes the file.
func SetDefault(w io.Writer, file string) (io.Closer, error) {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok {
		profile = termenv.NewOutput(f).EnvColorProfile()
	}
	handlers := []slog.Handler{NewHandler(w, profile)}
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: UserLevel}))
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return closer, nil
}
