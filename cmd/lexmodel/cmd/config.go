// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"

	"cogentcore.org/lexmodel/cmd/lexmodel/config"
)

// Config writes the effective configuration to w in the given format,
// or saves it to the file save when that is non-empty.
func Config(c *config.Config, w io.Writer, format, save string) error {
	if save != "" {
		if err := c.Save(save); err != nil {
			return err
		}
		slog.Info("config: saved", "file", save)
		return nil
	}
	b, err := c.Marshal(format)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
