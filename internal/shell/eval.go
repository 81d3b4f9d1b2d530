package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/quocvuong92/gsh/internal/executor"
	"github.com/quocvuong92/gsh/internal/logging"
	"github.com/quocvuong92/gsh/internal/parser"
)

// streams are the effective output destinations for one evaluation:
// the first openable redirect per stream, or the console writers.
type streams struct {
	out io.Writer
	err io.Writer
}

// Eval parses and runs one input line. Builtins are dispatched first
// and are never shadowed by search-path entries; anything else is
// resolved and spawned as an external process.
func (s *Shell) Eval(ctx context.Context, line string) {
	name, cmd := parser.Parse(line).Split()
	if name == "" {
		return
	}

	s.log.Debug("evaluating", logging.Fields{
		"command":   name,
		"args":      len(cmd.Args),
		"redirects": len(cmd.Redirects),
	})

	// Naming a redirect target creates (or truncates) it even when the
	// command never writes there, and even when the command does not
	// exist. Open failures are deliberately swallowed.
	for _, r := range cmd.Redirects {
		if f, err := executor.OpenRedirect(r); err == nil {
			f.Close()
		} else {
			s.log.Warn("redirect target not openable", logging.Fields{
				"target": r.Target,
				"stream": r.Stream.String(),
			})
		}
	}

	st, cleanup := s.openStreams(cmd.Redirects)
	defer cleanup()

	if fn, ok := s.builtins[name]; ok {
		fn(s, cmd.Args, st)
		return
	}

	path, ok := s.resolver.Resolve(name)
	if !ok {
		fmt.Fprintf(st.err, "%s: command not found\n", name)
		return
	}

	if err := executor.Run(ctx, path, name, cmd.Args, cmd.Redirects, s.out, s.errw); err != nil {
		fmt.Fprintf(st.err, "%s: %v\n", name, err)
	}
}

// openStreams picks the effective stdout and stderr for builtin output
// and diagnostics: the first redirect per stream whose target opens,
// later duplicates shadowed. The returned cleanup closes whatever was
// opened.
func (s *Shell) openStreams(redirects []parser.Redirect) (*streams, func()) {
	st := &streams{out: s.out, err: s.errw}
	var closers []io.Closer

	outSet, errSet := false, false
	for _, r := range redirects {
		switch r.Stream {
		case parser.Stdout:
			if outSet {
				continue
			}
			if f, err := executor.OpenRedirect(r); err == nil {
				st.out = f
				closers = append(closers, f)
				outSet = true
			}
		case parser.Stderr:
			if errSet {
				continue
			}
			if f, err := executor.OpenRedirect(r); err == nil {
				st.err = f
				closers = append(closers, f)
				errSet = true
			}
		}
	}

	return st, func() {
		for _, c := range closers {
			c.Close()
		}
	}
}
