// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/lexmodel/reduced"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mattn/go-shellwords"
)

// Replayer runs edit scripts against a [reduced.Model], one command per
// line, writing the results of queries to Out. Blank lines and lines
// starting with # are ignored.
type Replayer struct {
	// Model is the model being edited.
	Model *reduced.Model

	// Out receives query results.
	Out io.Writer

	// Builtins are the script commands by name.
	Builtins map[string]func(args ...string) error
}

// NewReplayer returns a new [Replayer] with an empty model.
func NewReplayer(out io.Writer) *Replayer {
	r := &Replayer{Model: reduced.New(), Out: out}
	r.InstallBuiltins()
	return r
}

// InstallBuiltins adds the script commands to [Replayer.Builtins].
func (r *Replayer) InstallBuiltins() {
	m := r.Model
	r.Builtins = map[string]func(args ...string) error{
		"insert": func(args ...string) error {
			m.InsertString(strings.Join(args, " "))
			return nil
		},
		"newline": func(args ...string) error {
			n, err := intArg(args, 1)
			for range n {
				m.InsertChar('\n')
			}
			return err
		},
		"gap": func(args ...string) error {
			n, err := intArg(args, 1)
			if err != nil {
				return err
			}
			return m.InsertGap(n)
		},
		"move": func(args ...string) error {
			n, err := intArg(args, 0)
			if err != nil {
				return err
			}
			return m.Move(n)
		},
		"goto": func(args ...string) error {
			n, err := intArg(args, 0)
			if err != nil {
				return err
			}
			return m.Move(n - m.AbsOffset())
		},
		"delete": func(args ...string) error {
			n, err := intArg(args, 1)
			if err != nil {
				return err
			}
			return m.Delete(n)
		},
		"reset": func(args ...string) error {
			m.Reset()
			return nil
		},
		"pos": func(args ...string) error {
			return r.println(m.AbsOffset())
		},
		"state": func(args ...string) error {
			return r.println(m.StateAtCurrent())
		},
		"balance": func(args ...string) error {
			switch firstArg(args) {
			case "forward":
				return r.println(m.BalanceForward())
			case "backward":
				return r.println(m.BalanceBackward())
			}
			return fmt.Errorf("balance: want forward or backward, got %q", firstArg(args))
		},
		"brace": func(args ...string) error {
			switch firstArg(args) {
			case "next":
				return r.println(m.NextBrace())
			case "prev":
				return r.println(m.PreviousBrace())
			}
			return fmt.Errorf("brace: want next or prev, got %q", firstArg(args))
		},
		"indent": func(args ...string) error {
			return r.println(m.IndentInfo())
		},
		"highlight": func(args ...string) error {
			if len(args) != 2 {
				return fmt.Errorf("highlight: want start and length")
			}
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			runs, err := m.HighlightStatus(start, n)
			if err != nil {
				return err
			}
			strs := make([]string, len(runs))
			for i, s := range runs {
				strs[i] = s.String()
			}
			return r.println(strings.Join(strs, " "))
		},
		"dump": func(args ...string) error {
			return r.println(m)
		},
	}
}

func (r *Replayer) println(v any) error {
	_, err := fmt.Fprintln(r.Out, v)
	return err
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// intArg returns the first argument as an int, or def if there is none.
func intArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	return strconv.Atoi(args[0])
}

// Exec runs one script line.
func (r *Replayer) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("error parsing args %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	fn, ok := r.Builtins[args[0]]
	if !ok {
		if s := r.suggest(args[0]); s != "" {
			return fmt.Errorf("unknown command %q (did you mean %q?)", args[0], s)
		}
		return fmt.Errorf("unknown command %q", args[0])
	}
	return fn(args[1:]...)
}

// suggest returns the builtin most similar to name, or "" when none
// is close enough.
func (r *Replayer) suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.5
	for _, b := range slices.Sorted(maps.Keys(r.Builtins)) {
		if sim := strutil.Similarity(name, b, lev); sim > score {
			best, score = b, sim
		}
	}
	return best
}

// Run runs every line of the script, stopping at the first error.
func (r *Replayer) Run(script io.Reader) error {
	sc := bufio.NewScanner(script)
	ln := 0
	for sc.Scan() {
		ln++
		if err := r.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
	}
	return sc.Err()
}
