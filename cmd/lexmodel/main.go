// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexmodel runs the reduced lexical model over files and edit
// scripts: it lists tokens, highlights comments, quotes and keywords,
// matches brackets and computes indentation.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/lexmodel/base/errors"
	"cogentcore.org/lexmodel/base/logx"
	"cogentcore.org/lexmodel/cmd/lexmodel/cmd"
	"cogentcore.org/lexmodel/cmd/lexmodel/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// flags are the command line values that override the config file.
type flags struct {
	config   string
	style    string
	lang     string
	tabWidth int
	indent   string
	logLevel string
	logFile  string
	plain    bool
}

func newRootCmd() *cobra.Command {
	var (
		fl      flags
		cfg     *config.Config
		logFile io.Closer
	)
	root := &cobra.Command{
		Use:           "lexmodel",
		Short:         "Incremental comment, quote and bracket model for source text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(fl.config)
			if err != nil {
				return err
			}
			if err := applyFlags(c, &fl, cfg); err != nil {
				return err
			}
			if err := cfg.ApplyLogging(); err != nil {
				return err
			}
			logFile, err = logx.SetDefault(os.Stderr, cfg.LogFile)
			return err
		},
		PersistentPostRunE: func(c *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.config, "config", "", "config file (.toml or .yaml); default "+config.DefaultFile)
	pf.StringVar(&fl.style, "style", "", "chroma style for highlighting")
	pf.StringVar(&fl.lang, "lang", "", "reserved-word set: java, go or c")
	pf.IntVar(&fl.tabWidth, "tab-width", 0, "spaces per indent level")
	pf.StringVar(&fl.indent, "indent-char", "", "indent character: tab or space")
	pf.StringVar(&fl.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&fl.logFile, "log-file", "", "also write JSON logs to this file")
	pf.BoolVar(&fl.plain, "plain", false, "write highlighted output without colors")
	pf.Bool("vv", false, "log debug messages")
	pf.BoolP("verbose", "v", false, "log info messages")
	pf.BoolP("quiet", "q", false, "only log errors")
	errors.Must(root.MarkPersistentFlagFilename("config", "toml", "yaml", "yml"))

	profile := func() termenv.Profile {
		if fl.plain {
			return termenv.Ascii
		}
		return termenv.NewOutput(os.Stdout).EnvColorProfile()
	}

	var format, save string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or save it with --save",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Config(cfg, c.OutOrStdout(), format, save)
		},
	}
	configCmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	configCmd.Flags().StringVar(&save, "save", "", "save to this file (.toml or .yaml) instead of printing")

	root.AddCommand(
		configCmd,
		&cobra.Command{
			Use:   "replay [script]",
			Short: "Run an edit script against an empty model (stdin if no script)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				in := io.Reader(os.Stdin)
				if len(args) == 1 {
					f, err := os.Open(args[0])
					if err != nil {
						return err
					}
					defer f.Close()
					in = f
				}
				return cmd.NewReplayer(c.OutOrStdout()).Run(in)
			},
		},
		&cobra.Command{
			Use:   "tokens file",
			Short: "List the tokens of a file with their shadow states",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return cmd.Tokens(cfg, c.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "highlight file",
			Short: "Print a file with comments, quotes and keywords highlighted",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return cmd.Highlight(cfg, c.OutOrStdout(), args[0], profile())
			},
		},
		&cobra.Command{
			Use:   "indent file line",
			Short: "Show the indentation of a line of a file",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				line, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				return cmd.Indent(cfg, c.OutOrStdout(), args[0], line)
			},
		},
		&cobra.Command{
			Use:   "balance file pos",
			Short: "Print the position of the bracket matching the one at pos",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				pos, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				return cmd.Balance(cfg, c.OutOrStdout(), args[0], pos)
			},
		},
		&cobra.Command{
			Use:   "watch file",
			Short: "Highlight a file again each time it changes",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return cmd.Watch(ctx, cfg, c.OutOrStdout(), args[0], profile())
			},
		},
	)
	return root
}

// applyFlags copies the flags the user set over the config values.
// The verbosity flags take precedence over --log-level.
func applyFlags(c *cobra.Command, fl *flags, cfg *config.Config) error {
	f := c.Flags()
	var o config.Config
	if f.Changed("style") {
		o.Style = fl.style
	}
	if f.Changed("lang") {
		o.Language = fl.lang
	}
	if f.Changed("tab-width") {
		o.TabWidth = fl.tabWidth
	}
	if f.Changed("indent-char") {
		o.IndentChar = fl.indent
	}
	if f.Changed("log-level") {
		o.LogLevel = fl.logLevel
	}
	if f.Changed("log-file") {
		o.LogFile = fl.logFile
	}
	if f.Changed("vv") || f.Changed("verbose") || f.Changed("quiet") {
		l := logx.LevelFromFlags(errors.Must1(f.GetBool("vv")), errors.Must1(f.GetBool("verbose")), errors.Must1(f.GetBool("quiet")))
		o.LogLevel = l.String()
	}
	return cfg.Merge(&o)
}
