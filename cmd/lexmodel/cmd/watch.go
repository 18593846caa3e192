// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/base/fsx"
	"cogentcore.org/lexmodel/cmd/lexmodel/config"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// Watch highlights the file, and again each time it is written, until
// ctx is done. It watches the directory of the file, so that saves that
// rename a new file into place are seen.
func Watch(ctx context.Context, c *config.Config, w io.Writer, file string, profile termenv.Profile) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	d, err := NewDocument(c)
	if err != nil {
		return err
	}
	update := func() error {
		text, err := fsx.ReadText(abs)
		if err != nil {
			return err
		}
		d.SetText(text)
		if _, err := fmt.Fprintf(w, "==> %s <==\n", file); err != nil {
			return err
		}
		return render(c, w, d, profile)
	}
	if err := update(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("watch: changed", "file", file, "op", event.Op)
				errors.Log(update())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "file", file, "err", err)
		}
	}
}
