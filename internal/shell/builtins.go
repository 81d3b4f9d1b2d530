package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/quocvuong92/gsh/internal/logging"
)

// builtin is a command implemented by the shell itself. Builtins write
// through the effective streams so redirects apply to them the same
// way they apply to external commands.
type builtin func(s *Shell, args []string, st *streams)

func (s *Shell) registerBuiltins() {
	s.builtins = map[string]builtin{
		"echo": cmdEcho,
		"type": cmdType,
		"pwd":  cmdPwd,
		"cd":   cmdCd,
		"exit": cmdExit,
		"help": cmdHelp,
	}
}

func cmdEcho(s *Shell, args []string, st *streams) {
	fmt.Fprintln(st.out, strings.Join(args, " "))
}

func cmdType(s *Shell, args []string, st *streams) {
	for _, name := range args {
		if name == "" {
			continue
		}
		if _, ok := s.builtins[name]; ok {
			fmt.Fprintf(st.out, "%s is a shell builtin\n", name)
			continue
		}
		if path, ok := s.resolver.Resolve(name); ok {
			fmt.Fprintf(st.out, "%s is %s\n", name, path)
			continue
		}
		fmt.Fprintf(st.err, "%s: not found\n", name)
	}
}

func cmdPwd(s *Shell, args []string, st *streams) {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(st.err, "pwd: %v\n", err)
		return
	}
	fmt.Fprintln(st.out, dir)
}

func cmdCd(s *Shell, args []string, st *streams) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	var target string
	switch {
	case arg == "" || arg == "~":
		target = s.cfg.Home
	case strings.HasPrefix(arg, "~/"):
		target = s.cfg.Home + arg[1:]
	default:
		target = arg
	}

	if err := os.Chdir(target); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(st.err, "cd: %s: No such file or directory\n", target)
		} else {
			fmt.Fprintf(st.err, "cd: %s: %v\n", target, err)
		}
	}
}

// cmdExit terminates the process immediately; it never returns to the
// evaluator. Raw mode has already been restored by the time any
// command runs.
func cmdExit(s *Shell, args []string, st *streams) {
	code := exitCode(args)
	s.log.Info("exit", logging.Fields{"code": code})
	os.Exit(code)
}

// exitCode parses the exit argument, defaulting to 0 when absent or
// unparseable.
func exitCode(args []string) int {
	if len(args) == 0 {
		return 0
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return 0
	}
	return code
}

const helpText = `# gsh

A small interactive shell.

## Builtins

| Command | Description |
|---------|-------------|
| echo    | Print its arguments joined by single spaces |
| type    | Report whether a name is a builtin or an executable on the search path |
| pwd     | Print the current working directory |
| cd      | Change directory; ` + "`~`" + ` expands to the home directory |
| exit    | Leave the shell with an optional exit code |
| help    | Show this text |

## Editing

Arrow keys move the cursor, Home/End and Ctrl-A/Ctrl-E jump to the
line edges, Up/Down walk this session's history. Tab completes builtin
and executable names. Ctrl-C abandons the current line; Ctrl-D on an
empty line ends the session.

## Redirection

` + "`>`" + `, ` + "`>>`" + `, ` + "`1>`" + `, ` + "`1>>`" + `, ` + "`2>`" + ` and ` + "`2>>`" + ` route
stdout or stderr to a file, truncating or appending.
`

func cmdHelp(s *Shell, args []string, st *streams) {
	rendered, err := glamour.Render(helpText, "dark")
	if err != nil {
		fmt.Fprint(st.out, helpText)
		return
	}
	fmt.Fprint(st.out, rendered)
}
