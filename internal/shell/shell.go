// Package shell ties the session together: the read-eval loop, tab
// completion, builtins and redirect plumbing.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/quocvuong92/gsh/internal/config"
	"github.com/quocvuong92/gsh/internal/editor"
	"github.com/quocvuong92/gsh/internal/executor"
	"github.com/quocvuong92/gsh/internal/logging"
	"github.com/quocvuong92/gsh/internal/terminal"
)

// Shell is one interactive session. It exclusively owns the line
// editor and the search path list; parsed commands are transient.
type Shell struct {
	cfg      *config.Config
	out      io.Writer
	errw     io.Writer
	ed       *editor.Editor
	hist     *editor.History
	resolver *executor.Resolver
	builtins map[string]builtin
	log      *logging.FieldLogger

	ctrl terminal.Controller
	keys terminal.KeySource

	promptStyle lipgloss.Style
	menuStyle   lipgloss.Style
}

// New builds a session over the given configuration and console
// writers. The search path list is taken from cfg once and never
// refreshed.
func New(cfg *config.Config, out, errw io.Writer, log *logging.Logger) *Shell {
	s := &Shell{
		cfg:      cfg,
		out:      out,
		errw:     errw,
		ed:       editor.New(),
		hist:     editor.NewHistory(),
		resolver: executor.NewResolver(cfg.SearchPaths),
		log:      log.WithFields(logging.Fields{"session": uuid.NewString()}),

		ctrl: terminal.NewController(),
		keys: terminal.NewKeySource(),

		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		menuStyle:   lipgloss.NewStyle().Faint(true),
	}
	s.registerBuiltins()
	return s
}

// Run is the interactive read-eval loop. It returns when the user ends
// the session (Ctrl-D on an empty line) or when the terminal cannot be
// switched into raw mode.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Info("interactive session started", logging.Fields{
		"search_dirs": len(s.cfg.SearchPaths),
	})

	for {
		more, err := s.readLine()
		if err != nil {
			return err
		}
		if !more {
			s.log.Info("session ended")
			return nil
		}

		line := s.ed.String()
		s.hist.Add(strings.TrimSpace(line))
		s.Eval(ctx, line)
	}
}

// RunLines evaluates plain lines from r without any line editing. Used
// when stdin is not a terminal.
func (s *Shell) RunLines(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.Eval(ctx, scanner.Text())
	}
	return scanner.Err()
}

// readLine runs one raw-mode editing session and leaves the submitted
// line in the editor. It reports more=false when the session should
// end. Raw mode is released on every exit path.
func (s *Shell) readLine() (more bool, err error) {
	s.ed.Clear()
	fmt.Fprint(s.out, s.prompt())

	if err := s.ctrl.Enable(); err != nil {
		return false, fmt.Errorf("enabling raw mode: %w", err)
	}
	defer s.ctrl.Restore()

	for {
		key, err := s.keys.Next()
		if err != nil {
			return false, err
		}

		switch key.Type {
		case terminal.KeyNone:
			// Poll timeout; nothing to do.
		case terminal.KeyEnter:
			fmt.Fprintln(s.out)
			return true, nil
		case terminal.KeyTab:
			s.handleTab()
		case terminal.KeyBackspace:
			s.ed.Backspace()
			s.redraw()
		case terminal.KeyDelete:
			s.ed.Delete()
			s.redraw()
		case terminal.KeyLeft:
			s.ed.MoveLeft()
			s.redraw()
		case terminal.KeyRight:
			s.ed.MoveRight()
			s.redraw()
		case terminal.KeyHome, terminal.KeyCtrlA:
			s.ed.MoveHome()
			s.redraw()
		case terminal.KeyEnd, terminal.KeyCtrlE:
			s.ed.MoveEnd()
			s.redraw()
		case terminal.KeyUp:
			if line, ok := s.hist.Prev(); ok {
				s.ed.Set(line)
				s.redraw()
			}
		case terminal.KeyDown:
			if line, ok := s.hist.Next(); ok {
				s.ed.Set(line)
				s.redraw()
			}
		case terminal.KeyCtrlC:
			fmt.Fprintln(s.out, "^C")
			s.ed.Clear()
			return true, nil
		case terminal.KeyCtrlD:
			if s.ed.Len() == 0 {
				fmt.Fprintln(s.out)
				return false, nil
			}
		case terminal.KeyChar:
			s.ed.Insert(key.Ch)
			s.redraw()
		case terminal.KeyUnknown:
			// Ignored.
		}
	}
}

// prompt returns the styled prompt string. Styling is zero-width, so
// cursor arithmetic uses the plain prompt length.
func (s *Shell) prompt() string {
	return s.promptStyle.Render(s.cfg.Prompt)
}

// redraw repaints the prompt line around the current buffer and puts
// the terminal cursor at the editor cursor. Repeated calls without
// intervening edits are idempotent.
func (s *Shell) redraw() {
	fmt.Fprintf(s.out, "\r\x1b[K%s%s", s.prompt(), s.ed.String())
	if s.ed.Cursor() < s.ed.Len() {
		fmt.Fprintf(s.out, "\r\x1b[%dC", s.ed.Cursor()+len(s.cfg.Prompt))
	}
}
